package services

import (
	"testing"

	"rentdesk/internal/models"
	"rentdesk/internal/pagination"
	"rentdesk/internal/testutil"
)

func actorFor(user *models.User) Actor {
	return Actor{UserID: user.ID, AccountID: user.AccountID, Role: user.Role}
}

func TestRegisterOwner(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, NewAccountService(db))

		user, err := svc.RegisterOwner("Sharma Rentals", "owner@example.com", "password123", "Priya", "Sharma", "9800000001")
		testutil.AssertNoError(t, err)

		if user.ID == "" {
			t.Fatal("expected user ID to be set")
		}
		if user.Role != models.RoleOwner {
			t.Errorf("expected OWNER role, got %s", user.Role)
		}
		if user.Account == nil || user.Account.Plan != models.PlanFree {
			t.Error("expected a FREE plan account to be created")
		}
		if user.AccountID == "" {
			t.Error("expected user to belong to the new account")
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, NewAccountService(db))

		_, err := svc.RegisterOwner("First", "dup@example.com", "password123", "", "", "")
		testutil.AssertNoError(t, err)

		_, err = svc.RegisterOwner("Second", "dup@example.com", "password123", "", "", "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("missing_credentials", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, NewAccountService(db))

		_, err := svc.RegisterOwner("No Password", "nopass@example.com", "", "", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestCreateManager(t *testing.T) {
	t.Run("owner_creates_manager", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, NewAccountService(db))
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)

		manager, err := svc.CreateManager(actorFor(owner), "manager@example.com", "password123", "Ravi", "Kumar", "")
		testutil.AssertNoError(t, err)

		if manager.Role != models.RoleManager {
			t.Errorf("expected MANAGER role, got %s", manager.Role)
		}
		if manager.AccountID != account.ID {
			t.Error("expected manager in the owner's account")
		}
	})

	t.Run("manager_cannot_create", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, NewAccountService(db))
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		manager := testutil.CreateTestManager(t, db, account.ID)

		_, err := svc.CreateManager(actorFor(manager), "another@example.com", "password123", "", "", "")
		testutil.AssertAppError(t, err, "OWNER_ONLY")
	})

	t.Run("free_plan_manager_limit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, NewAccountService(db))
		account := testutil.CreateTestAccount(t, db, models.PlanFree)
		owner := testutil.CreateTestOwner(t, db, account.ID)

		// FREE allows one manager.
		_, err := svc.CreateManager(actorFor(owner), "m1@example.com", "password123", "", "", "")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateManager(actorFor(owner), "m2@example.com", "password123", "", "", "")
		testutil.AssertAppError(t, err, "MANAGER_LIMIT_EXCEEDED")
	})
}

func TestListUsers(t *testing.T) {
	t.Run("scoped_to_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, NewAccountService(db))
		account1 := testutil.CreateTestAccount(t, db, models.PlanPro)
		account2 := testutil.CreateTestAccount(t, db, models.PlanPro)
		owner := testutil.CreateTestOwner(t, db, account1.ID)
		testutil.CreateTestManager(t, db, account1.ID)
		testutil.CreateTestOwner(t, db, account2.ID)

		page, err := svc.ListUsers(actorFor(owner), pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 2 {
			t.Errorf("expected 2 users in account, got %d", page.TotalItems)
		}
	})
}

func TestDeleteManager(t *testing.T) {
	t.Run("deletes_manager_and_grants", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, NewAccountService(db))
		account := testutil.CreateTestAccount(t, db, models.PlanPro)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		manager := testutil.CreateTestManager(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		testutil.GrantTestAccess(t, db, manager.ID, building.ID)

		err := svc.DeleteManager(actorFor(owner), manager.ID)
		testutil.AssertNoError(t, err)

		var grants int64
		db.Model(&models.BuildingAccess{}).Where("user_id = ?", manager.ID).Count(&grants)
		if grants != 0 {
			t.Errorf("expected grants to be removed, found %d", grants)
		}
	})

	t.Run("cannot_delete_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, NewAccountService(db))
		account := testutil.CreateTestAccount(t, db, models.PlanPro)
		owner := testutil.CreateTestOwner(t, db, account.ID)

		err := svc.DeleteManager(actorFor(owner), owner.ID)
		testutil.AssertAppError(t, err, "CANNOT_DELETE_OWNER")
	})

	t.Run("other_account_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, NewAccountService(db))
		account1 := testutil.CreateTestAccount(t, db, models.PlanPro)
		account2 := testutil.CreateTestAccount(t, db, models.PlanPro)
		owner := testutil.CreateTestOwner(t, db, account1.ID)
		foreign := testutil.CreateTestManager(t, db, account2.ID)

		err := svc.DeleteManager(actorFor(owner), foreign.ID)
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestAttemptLogin(t *testing.T) {
	t.Run("valid_credentials", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, NewAccountService(db))
		account := testutil.CreateTestAccount(t, db, models.PlanFree)
		owner := testutil.CreateTestOwner(t, db, account.ID)

		user, err := svc.AttemptLogin(owner.Email, "password123")
		testutil.AssertNoError(t, err)

		if user.LastLoginAt == nil {
			t.Error("expected last login timestamp to be set")
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, NewAccountService(db))
		account := testutil.CreateTestAccount(t, db, models.PlanFree)
		owner := testutil.CreateTestOwner(t, db, account.ID)

		_, err := svc.AttemptLogin(owner.Email, "wrong-password")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("unknown_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, NewAccountService(db))

		_, err := svc.AttemptLogin("ghost@example.com", "password123")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("lockout_after_repeated_failures", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, NewAccountService(db))
		account := testutil.CreateTestAccount(t, db, models.PlanFree)
		owner := testutil.CreateTestOwner(t, db, account.ID)

		for i := 0; i < maxFailedLogins; i++ {
			_, err := svc.AttemptLogin(owner.Email, "wrong-password")
			testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
		}

		// Even the right password is rejected while locked.
		_, err := svc.AttemptLogin(owner.Email, "password123")
		testutil.AssertAppError(t, err, "USER_LOCKED")
	})
}

func TestRefreshTokenHash(t *testing.T) {
	t.Run("store_and_fetch", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, NewAccountService(db))
		account := testutil.CreateTestAccount(t, db, models.PlanFree)
		owner := testutil.CreateTestOwner(t, db, account.ID)

		err := svc.StoreRefreshTokenHash(owner.ID, "abc123")
		testutil.AssertNoError(t, err)

		hash, err := svc.GetRefreshTokenHash(owner.ID)
		testutil.AssertNoError(t, err)
		if hash != "abc123" {
			t.Errorf("expected stored hash, got %q", hash)
		}

		// Clearing on logout.
		err = svc.StoreRefreshTokenHash(owner.ID, "")
		testutil.AssertNoError(t, err)
		hash, err = svc.GetRefreshTokenHash(owner.ID)
		testutil.AssertNoError(t, err)
		if hash != "" {
			t.Errorf("expected hash cleared, got %q", hash)
		}
	})
}
