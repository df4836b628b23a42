package services

import (
	"testing"

	"rentdesk/internal/models"
	"rentdesk/internal/testutil"
)

func TestAccessibleBuildingIDs(t *testing.T) {
	t.Run("owner_sees_all", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccessService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanPro)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		testutil.CreateTestBuilding(t, db, account.ID)
		testutil.CreateTestBuilding(t, db, account.ID)

		ids, err := svc.AccessibleBuildingIDs(actorFor(owner))
		testutil.AssertNoError(t, err)
		if len(ids) != 2 {
			t.Errorf("expected 2 buildings, got %d", len(ids))
		}
	})

	t.Run("manager_sees_granted_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccessService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanPro)
		manager := testutil.CreateTestManager(t, db, account.ID)
		granted := testutil.CreateTestBuilding(t, db, account.ID)
		testutil.CreateTestBuilding(t, db, account.ID)
		testutil.GrantTestAccess(t, db, manager.ID, granted.ID)

		ids, err := svc.AccessibleBuildingIDs(actorFor(manager))
		testutil.AssertNoError(t, err)
		if len(ids) != 1 || ids[0] != granted.ID {
			t.Errorf("expected only granted building, got %v", ids)
		}
	})

	t.Run("owner_scoped_to_own_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccessService(db)
		account1 := testutil.CreateTestAccount(t, db, models.PlanPro)
		account2 := testutil.CreateTestAccount(t, db, models.PlanPro)
		owner := testutil.CreateTestOwner(t, db, account1.ID)
		testutil.CreateTestBuilding(t, db, account2.ID)

		ids, err := svc.AccessibleBuildingIDs(actorFor(owner))
		testutil.AssertNoError(t, err)
		if len(ids) != 0 {
			t.Errorf("expected no buildings across accounts, got %v", ids)
		}
	})
}

func TestCanAccessBuilding(t *testing.T) {
	t.Run("manager_without_grant", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccessService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanPro)
		manager := testutil.CreateTestManager(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)

		ok, err := svc.CanAccessBuilding(actorFor(manager), building.ID)
		testutil.AssertNoError(t, err)
		if ok {
			t.Error("expected access denied without a grant")
		}

		testutil.GrantTestAccess(t, db, manager.ID, building.ID)
		ok, err = svc.CanAccessBuilding(actorFor(manager), building.ID)
		testutil.AssertNoError(t, err)
		if !ok {
			t.Error("expected access after grant")
		}
	})

	t.Run("owner_cross_account_denied", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAccessService(db)
		account1 := testutil.CreateTestAccount(t, db, models.PlanPro)
		account2 := testutil.CreateTestAccount(t, db, models.PlanPro)
		owner := testutil.CreateTestOwner(t, db, account1.ID)
		foreign := testutil.CreateTestBuilding(t, db, account2.ID)

		ok, err := svc.CanAccessBuilding(actorFor(owner), foreign.ID)
		testutil.AssertNoError(t, err)
		if ok {
			t.Error("expected cross-account building to be inaccessible")
		}
	})
}
