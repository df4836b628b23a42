package services

import (
	"testing"

	"gorm.io/gorm"

	"rentdesk/internal/models"
	"rentdesk/internal/pagination"
	"rentdesk/internal/testutil"
)

func newBuildingService(db *gorm.DB) BuildingServicer {
	return NewBuildingService(db, NewAccountService(db), NewAccessService(db))
}

func TestCreateBuilding(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newBuildingService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)

		building, err := svc.CreateBuilding(actorFor(owner), "Green View", "12 MG Road", 4, 30)
		testutil.AssertNoError(t, err)

		if building.NoticePeriodDays != 30 {
			t.Errorf("expected 30 day notice period, got %d", building.NoticePeriodDays)
		}
	})

	t.Run("manager_forbidden", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newBuildingService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		manager := testutil.CreateTestManager(t, db, account.ID)

		_, err := svc.CreateBuilding(actorFor(manager), "Nope", "Nowhere", 1, 30)
		testutil.AssertAppError(t, err, "OWNER_ONLY")
	})

	t.Run("plan_limit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newBuildingService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanFree)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		testutil.CreateTestBuilding(t, db, account.ID)
		testutil.CreateTestBuilding(t, db, account.ID)

		_, err := svc.CreateBuilding(actorFor(owner), "One Too Many", "Addr", 2, 30)
		testutil.AssertAppError(t, err, "BUILDING_LIMIT_EXCEEDED")
	})
}

func TestListBuildings(t *testing.T) {
	t.Run("manager_scoped_to_grants", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newBuildingService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanPro)
		manager := testutil.CreateTestManager(t, db, account.ID)
		granted := testutil.CreateTestBuilding(t, db, account.ID)
		testutil.CreateTestBuilding(t, db, account.ID)
		testutil.GrantTestAccess(t, db, manager.ID, granted.ID)

		page, err := svc.ListBuildings(actorFor(manager), pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 1 {
			t.Errorf("expected 1 accessible building, got %d", page.TotalItems)
		}
	})
}

func TestGetBuildingByID(t *testing.T) {
	t.Run("manager_without_grant", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newBuildingService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanPro)
		manager := testutil.CreateTestManager(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)

		_, err := svc.GetBuildingByID(actorFor(manager), building.ID)
		testutil.AssertAppError(t, err, "BUILDING_NOT_FOUND")
	})
}

func TestDeleteBuilding(t *testing.T) {
	t.Run("blocked_by_units", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newBuildingService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanPro)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)

		err := svc.DeleteBuilding(actorFor(owner), building.ID)
		testutil.AssertAppError(t, err, "BUILDING_HAS_UNITS")
	})

	t.Run("empty_building", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newBuildingService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanPro)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)

		err := svc.DeleteBuilding(actorFor(owner), building.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.GetBuildingByID(actorFor(owner), building.ID)
		testutil.AssertAppError(t, err, "BUILDING_NOT_FOUND")
	})
}

func TestGrantAccess(t *testing.T) {
	t.Run("valid_grant", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newBuildingService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanPro)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		manager := testutil.CreateTestManager(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)

		grant, err := svc.GrantAccess(actorFor(owner), building.ID, manager.ID)
		testutil.AssertNoError(t, err)

		if grant.UserID != manager.ID || grant.BuildingID != building.ID {
			t.Errorf("unexpected grant: %+v", grant)
		}
	})

	t.Run("grant_to_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newBuildingService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanPro)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)

		_, err := svc.GrantAccess(actorFor(owner), building.ID, owner.ID)
		testutil.AssertAppError(t, err, "GRANT_TO_OWNER")
	})

	t.Run("cross_account_grant", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newBuildingService(db)
		account1 := testutil.CreateTestAccount(t, db, models.PlanPro)
		account2 := testutil.CreateTestAccount(t, db, models.PlanPro)
		owner := testutil.CreateTestOwner(t, db, account1.ID)
		building := testutil.CreateTestBuilding(t, db, account1.ID)
		foreign := testutil.CreateTestManager(t, db, account2.ID)

		_, err := svc.GrantAccess(actorFor(owner), building.ID, foreign.ID)
		testutil.AssertAppError(t, err, "CROSS_ACCOUNT_GRANT")
	})

	t.Run("duplicate_grant", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newBuildingService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanPro)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		manager := testutil.CreateTestManager(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		testutil.GrantTestAccess(t, db, manager.ID, building.ID)

		_, err := svc.GrantAccess(actorFor(owner), building.ID, manager.ID)
		testutil.AssertAppError(t, err, "DUPLICATE_ACCESS")
	})
}

func TestRevokeAccess(t *testing.T) {
	t.Run("revoke_removes_grant", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newBuildingService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanPro)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		manager := testutil.CreateTestManager(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		testutil.GrantTestAccess(t, db, manager.ID, building.ID)

		err := svc.RevokeAccess(actorFor(owner), building.ID, manager.ID)
		testutil.AssertNoError(t, err)

		access := NewAccessService(db)
		ok, err := access.CanAccessBuilding(actorFor(manager), building.ID)
		testutil.AssertNoError(t, err)
		if ok {
			t.Error("expected access revoked")
		}
	})
}
