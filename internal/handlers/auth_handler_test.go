package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "rentdesk/internal/errors"
	"rentdesk/internal/middleware"
	"rentdesk/internal/models"
	"rentdesk/internal/pagination"
	"rentdesk/internal/services"
	"rentdesk/internal/validator"
)

// --- mock user service ---

type mockUserService struct {
	registerOwnerFn         func(accountName, email, password, firstName, lastName, phone string) (*models.User, error)
	createManagerFn         func(actor services.Actor, email, password, firstName, lastName, phone string) (*models.User, error)
	listUsersFn             func(actor services.Actor, page pagination.PageRequest) (*pagination.PageResponse[models.User], error)
	deleteManagerFn         func(actor services.Actor, userID string) error
	getUserByIDFn           func(id string) (*models.User, error)
	attemptLoginFn          func(email, password string) (*models.User, error)
	storeRefreshTokenHashFn func(userID, tokenHash string) error
	getRefreshTokenHashFn   func(userID string) (string, error)
}

func (m *mockUserService) RegisterOwner(accountName, email, password, firstName, lastName, phone string) (*models.User, error) {
	if m.registerOwnerFn != nil {
		return m.registerOwnerFn(accountName, email, password, firstName, lastName, phone)
	}
	return testUser(models.RoleOwner), nil
}

func (m *mockUserService) CreateManager(actor services.Actor, email, password, firstName, lastName, phone string) (*models.User, error) {
	if m.createManagerFn != nil {
		return m.createManagerFn(actor, email, password, firstName, lastName, phone)
	}
	return testUser(models.RoleManager), nil
}

func (m *mockUserService) ListUsers(actor services.Actor, page pagination.PageRequest) (*pagination.PageResponse[models.User], error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(actor, page)
	}
	resp := pagination.NewPageResponse([]models.User{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockUserService) DeleteManager(actor services.Actor, userID string) error {
	if m.deleteManagerFn != nil {
		return m.deleteManagerFn(actor, userID)
	}
	return nil
}

func (m *mockUserService) GetUserByID(id string) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return testUser(models.RoleOwner), nil
}

func (m *mockUserService) AttemptLogin(email, password string) (*models.User, error) {
	if m.attemptLoginFn != nil {
		return m.attemptLoginFn(email, password)
	}
	return testUser(models.RoleOwner), nil
}

func (m *mockUserService) StoreRefreshTokenHash(userID, tokenHash string) error {
	if m.storeRefreshTokenHashFn != nil {
		return m.storeRefreshTokenHashFn(userID, tokenHash)
	}
	return nil
}

func (m *mockUserService) GetRefreshTokenHash(userID string) (string, error) {
	if m.getRefreshTokenHashFn != nil {
		return m.getRefreshTokenHashFn(userID)
	}
	return "", nil
}

var _ services.UserServicer = (*mockUserService)(nil)

type mockAuditService struct {
	entries []services.AuditEntry
}

func (m *mockAuditService) Log(entry services.AuditEntry) {
	m.entries = append(m.entries, entry)
}

func (m *mockAuditService) ListLogs(_ services.Actor, _ services.AuditFilter, _ pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	resp := pagination.NewPageResponse([]models.AuditLog{}, 1, 20, 0)
	return &resp, nil
}

var _ services.AuditServicer = (*mockAuditService)(nil)

// --- test helpers ---

const (
	testUserID    = "0192aa00-0000-7000-8000-000000000001"
	testAccountID = "0192aa00-0000-7000-8000-000000000002"
)

func testUser(role models.Role) *models.User {
	return &models.User{
		Base:      models.Base{ID: testUserID},
		AccountID: testAccountID,
		Email:     "owner@example.com",
		Role:      role,
		IsActive:  true,
	}
}

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func injectActor(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxUserID, testUserID)
		c.Set(middleware.CtxAccountID, testAccountID)
		c.Set(middleware.CtxRole, string(role))
		c.Set(middleware.CtxEmail, "owner@example.com")
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)
	r.POST("/auth/refresh", handler.Refresh)
	r.POST("/auth/logout", injectActor(models.RoleOwner), handler.Logout)
	r.GET("/auth/me", injectActor(models.RoleOwner), handler.Me)
	return r
}

// --- tests ---

func TestAuthHandler_Register(t *testing.T) {
	t.Run("returns 201 with token pair", func(t *testing.T) {
		audit := &mockAuditService{}
		handler := NewAuthHandler(&mockUserService{}, audit)
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/register",
			`{"account_name":"Sharma Rentals","email":"owner@example.com","password":"password123"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["access_token"] == "" || result["refresh_token"] == "" {
			t.Error("expected both tokens in response")
		}
		if len(audit.entries) != 1 || audit.entries[0].Action != models.AuditCreate {
			t.Errorf("expected a CREATE audit entry, got %+v", audit.entries)
		}
	})

	t.Run("returns 400 on short password", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{}, &mockAuditService{})
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/register",
			`{"account_name":"X","email":"owner@example.com","password":"short"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 409 on duplicate email", func(t *testing.T) {
		svc := &mockUserService{
			registerOwnerFn: func(_, _, _, _, _, _ string) (*models.User, error) {
				return nil, apperrors.ErrDuplicateEmail
			},
		}
		handler := NewAuthHandler(svc, &mockAuditService{})
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/register",
			`{"account_name":"X","email":"owner@example.com","password":"password123"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_EMAIL")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns 200 with tokens", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{}, &mockAuditService{})
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/login",
			`{"email":"owner@example.com","password":"password123"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 401 on bad credentials", func(t *testing.T) {
		svc := &mockUserService{
			attemptLoginFn: func(_, _ string) (*models.User, error) {
				return nil, apperrors.ErrInvalidCredentials
			},
		}
		handler := NewAuthHandler(svc, &mockAuditService{})
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/login",
			`{"email":"owner@example.com","password":"wrong"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CREDENTIALS")
	})

	t.Run("returns 423 when locked", func(t *testing.T) {
		svc := &mockUserService{
			attemptLoginFn: func(_, _ string) (*models.User, error) {
				return nil, apperrors.ErrUserLocked
			},
		}
		handler := NewAuthHandler(svc, &mockAuditService{})
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/login",
			`{"email":"owner@example.com","password":"password123"}`)

		if rec.Code != http.StatusLocked {
			t.Fatalf("expected 423, got %d", rec.Code)
		}
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Run("rotates a valid refresh token", func(t *testing.T) {
		user := testUser(models.RoleOwner)
		token, err := middleware.GenerateRefreshToken(user)
		if err != nil {
			t.Fatalf("generate refresh token: %v", err)
		}

		svc := &mockUserService{
			getRefreshTokenHashFn: func(_ string) (string, error) {
				return middleware.HashToken(token), nil
			},
		}
		handler := NewAuthHandler(svc, &mockAuditService{})
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/refresh", `{"refresh_token":"`+token+`"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("rejects a token that does not match the stored hash", func(t *testing.T) {
		user := testUser(models.RoleOwner)
		token, err := middleware.GenerateRefreshToken(user)
		if err != nil {
			t.Fatalf("generate refresh token: %v", err)
		}

		svc := &mockUserService{
			getRefreshTokenHashFn: func(_ string) (string, error) {
				return "stale-hash", nil
			},
		}
		handler := NewAuthHandler(svc, &mockAuditService{})
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/refresh", `{"refresh_token":"`+token+`"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("rejects garbage tokens", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{}, &mockAuditService{})
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/refresh", `{"refresh_token":"not-a-jwt"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("clears the stored refresh token", func(t *testing.T) {
		var cleared bool
		svc := &mockUserService{
			storeRefreshTokenHashFn: func(userID, hash string) error {
				if userID == testUserID && hash == "" {
					cleared = true
				}
				return nil
			},
		}
		handler := NewAuthHandler(svc, &mockAuditService{})
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/auth/logout", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !cleared {
			t.Error("expected refresh token hash cleared")
		}
	})

	t.Run("returns 401 without auth context", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{}, &mockAuditService{})
		r := gin.New()
		r.POST("/auth/logout", handler.Logout)

		rec := doRequest(r, "POST", "/auth/logout", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}
