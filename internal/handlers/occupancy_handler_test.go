package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "rentdesk/internal/errors"
	"rentdesk/internal/models"
	"rentdesk/internal/pagination"
	"rentdesk/internal/services"
)

// --- mock occupancy service ---

type mockOccupancyService struct {
	assignFn           func(actor services.Actor, req services.AssignRequest) (*models.Occupancy, error)
	listOccupanciesFn  func(actor services.Actor, isActive *bool, page pagination.PageRequest) (*pagination.PageResponse[models.Occupancy], error)
	getOccupancyByIDFn func(actor services.Actor, occupancyID string) (*models.Occupancy, error)
	reassignFn         func(actor services.Actor, occupancyID string, unitID, bedID *string, rent *int64) (*models.Occupancy, error)
	giveNoticeFn       func(actor services.Actor, occupancyID string, noticeDate time.Time, reason string) (*models.Occupancy, error)
	vacateFn           func(actor services.Actor, occupancyID string) (*models.Occupancy, error)
}

func (m *mockOccupancyService) Assign(actor services.Actor, req services.AssignRequest) (*models.Occupancy, error) {
	if m.assignFn != nil {
		return m.assignFn(actor, req)
	}
	return &models.Occupancy{}, nil
}

func (m *mockOccupancyService) ListOccupancies(actor services.Actor, isActive *bool, page pagination.PageRequest) (*pagination.PageResponse[models.Occupancy], error) {
	if m.listOccupanciesFn != nil {
		return m.listOccupanciesFn(actor, isActive, page)
	}
	resp := pagination.NewPageResponse([]models.Occupancy{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockOccupancyService) GetOccupancyByID(actor services.Actor, occupancyID string) (*models.Occupancy, error) {
	if m.getOccupancyByIDFn != nil {
		return m.getOccupancyByIDFn(actor, occupancyID)
	}
	return &models.Occupancy{}, nil
}

func (m *mockOccupancyService) Reassign(actor services.Actor, occupancyID string, unitID, bedID *string, rent *int64) (*models.Occupancy, error) {
	if m.reassignFn != nil {
		return m.reassignFn(actor, occupancyID, unitID, bedID, rent)
	}
	return &models.Occupancy{}, nil
}

func (m *mockOccupancyService) GiveNotice(actor services.Actor, occupancyID string, noticeDate time.Time, reason string) (*models.Occupancy, error) {
	if m.giveNoticeFn != nil {
		return m.giveNoticeFn(actor, occupancyID, noticeDate, reason)
	}
	return &models.Occupancy{}, nil
}

func (m *mockOccupancyService) Vacate(actor services.Actor, occupancyID string) (*models.Occupancy, error) {
	if m.vacateFn != nil {
		return m.vacateFn(actor, occupancyID)
	}
	return &models.Occupancy{}, nil
}

var _ services.OccupancyServicer = (*mockOccupancyService)(nil)

func setupOccupancyRouter(handler *OccupancyHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectActor(models.RoleOwner))
	auth.POST("/occupancies", handler.Assign)
	auth.GET("/occupancies", handler.ListOccupancies)
	auth.GET("/occupancies/:id", handler.GetOccupancy)
	auth.POST("/occupancies/:id/reassign", handler.Reassign)
	auth.POST("/occupancies/:id/notice", handler.GiveNotice)
	auth.POST("/occupancies/:id/vacate", handler.Vacate)
	return r
}

const testTenantID = "0192aa00-0000-7000-8000-000000000010"
const testUnitID = "0192aa00-0000-7000-8000-000000000011"
const testBuildingID = "0192aa00-0000-7000-8000-000000000012"

// --- tests ---

func TestOccupancyHandler_Assign(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		audit := &mockAuditService{}
		svc := &mockOccupancyService{
			assignFn: func(_ services.Actor, req services.AssignRequest) (*models.Occupancy, error) {
				return &models.Occupancy{
					Base:     models.Base{ID: "o1"},
					TenantID: req.TenantID,
					UnitID:   req.UnitID,
					Rent:     req.Rent,
					IsActive: true,
					Unit: &models.Unit{
						Base:       models.Base{ID: *req.UnitID},
						BuildingID: testBuildingID,
					},
				}, nil
			},
		}
		handler := NewOccupancyHandler(svc, audit)
		r := setupOccupancyRouter(handler)

		rec := doRequest(r, "POST", "/occupancies",
			`{"tenant_id":"`+testTenantID+`","unit_id":"`+testUnitID+`","rent":1500000,"is_primary":true}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		occ := result["occupancy"].(map[string]interface{})
		if occ["rent"].(float64) != 1500000 {
			t.Errorf("expected rent 1500000, got %v", occ["rent"])
		}
		if len(audit.entries) != 1 || audit.entries[0].Action != models.AuditAssignTenant {
			t.Errorf("expected ASSIGN_TENANT audit entry, got %+v", audit.entries)
		}
		if audit.entries[0].BuildingID == nil || *audit.entries[0].BuildingID != testBuildingID {
			t.Errorf("expected audit entry scoped to the unit's building, got %v", audit.entries[0].BuildingID)
		}
	})

	t.Run("returns 400 on zero rent", func(t *testing.T) {
		handler := NewOccupancyHandler(&mockOccupancyService{}, &mockAuditService{})
		r := setupOccupancyRouter(handler)

		rec := doRequest(r, "POST", "/occupancies",
			`{"tenant_id":"`+testTenantID+`","unit_id":"`+testUnitID+`","rent":0}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 409 when the unit is taken", func(t *testing.T) {
		svc := &mockOccupancyService{
			assignFn: func(_ services.Actor, _ services.AssignRequest) (*models.Occupancy, error) {
				return nil, apperrors.ErrUnitOccupied
			},
		}
		handler := NewOccupancyHandler(svc, &mockAuditService{})
		r := setupOccupancyRouter(handler)

		rec := doRequest(r, "POST", "/occupancies",
			`{"tenant_id":"`+testTenantID+`","unit_id":"`+testUnitID+`","rent":1500000}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "UNIT_OCCUPIED")
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		handler := NewOccupancyHandler(&mockOccupancyService{}, &mockAuditService{})
		r := gin.New()
		r.POST("/occupancies", handler.Assign)

		rec := doRequest(r, "POST", "/occupancies",
			`{"tenant_id":"`+testTenantID+`","unit_id":"`+testUnitID+`","rent":1500000}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestOccupancyHandler_ListOccupancies(t *testing.T) {
	t.Run("parses is_active filter", func(t *testing.T) {
		var got *bool
		svc := &mockOccupancyService{
			listOccupanciesFn: func(_ services.Actor, isActive *bool, _ pagination.PageRequest) (*pagination.PageResponse[models.Occupancy], error) {
				got = isActive
				resp := pagination.NewPageResponse([]models.Occupancy{}, 1, 20, 0)
				return &resp, nil
			},
		}
		handler := NewOccupancyHandler(svc, &mockAuditService{})
		r := setupOccupancyRouter(handler)

		rec := doRequest(r, "GET", "/occupancies?is_active=true", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got == nil || !*got {
			t.Error("expected is_active=true passed through")
		}
	})
}

func TestOccupancyHandler_GiveNotice(t *testing.T) {
	t.Run("returns 400 when notice was already given", func(t *testing.T) {
		svc := &mockOccupancyService{
			giveNoticeFn: func(_ services.Actor, _ string, _ time.Time, _ string) (*models.Occupancy, error) {
				return nil, apperrors.ErrNoticeAlreadyGiven
			},
		}
		handler := NewOccupancyHandler(svc, &mockAuditService{})
		r := setupOccupancyRouter(handler)

		rec := doRequest(r, "POST", "/occupancies/o1/notice", `{"reason":"relocating"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "NOTICE_ALREADY_GIVEN")
	})
}

func TestOccupancyHandler_Vacate(t *testing.T) {
	t.Run("returns 200 and audits the move-out", func(t *testing.T) {
		audit := &mockAuditService{}
		svc := &mockOccupancyService{
			vacateFn: func(_ services.Actor, occupancyID string) (*models.Occupancy, error) {
				return &models.Occupancy{Base: models.Base{ID: occupancyID}, IsActive: false}, nil
			},
		}
		handler := NewOccupancyHandler(svc, audit)
		r := setupOccupancyRouter(handler)

		rec := doRequest(r, "POST", "/occupancies/o1/vacate", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if len(audit.entries) != 1 || audit.entries[0].Action != models.AuditVacate {
			t.Errorf("expected VACATE audit entry, got %+v", audit.entries)
		}
	})

	t.Run("returns 400 when already inactive", func(t *testing.T) {
		svc := &mockOccupancyService{
			vacateFn: func(_ services.Actor, _ string) (*models.Occupancy, error) {
				return nil, apperrors.ErrOccupancyInactive
			},
		}
		handler := NewOccupancyHandler(svc, &mockAuditService{})
		r := setupOccupancyRouter(handler)

		rec := doRequest(r, "POST", "/occupancies/o1/vacate", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
