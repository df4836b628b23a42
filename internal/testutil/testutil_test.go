package testutil_test

import (
	"testing"

	"rentdesk/internal/errors"
	"rentdesk/internal/models"
	"rentdesk/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"accounts", "users", "buildings", "building_accesses", "units", "pg_rooms", "beds", "tenants", "tenant_documents", "occupancies", "rents", "issues", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	account := testutil.CreateTestAccount(t, db, models.PlanFree)
	if account.ID == "" {
		t.Fatal("account should have an ID")
	}

	owner := testutil.CreateTestOwner(t, db, account.ID)
	if owner.Role != models.RoleOwner {
		t.Errorf("expected OWNER role, got %s", owner.Role)
	}

	manager := testutil.CreateTestManager(t, db, account.ID)
	if manager.Role != models.RoleManager {
		t.Errorf("expected MANAGER role, got %s", manager.Role)
	}

	building := testutil.CreateTestBuilding(t, db, account.ID)
	testutil.GrantTestAccess(t, db, manager.ID, building.ID)

	flat := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)
	if flat.Status != models.StatusVacant {
		t.Errorf("expected new unit to be VACANT, got %s", flat.Status)
	}

	pg := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypePG)
	room, beds := testutil.CreateTestRoomWithBeds(t, db, pg.ID, 3)
	if room.SharingType != 3 || len(beds) != 3 {
		t.Errorf("expected 3 beds, got %d (sharing %d)", len(beds), room.SharingType)
	}

	tenant := testutil.CreateTestTenant(t, db, account.ID)
	occupancy := testutil.CreateTestOccupancy(t, db, tenant.ID, flat.ID)
	if !occupancy.IsActive {
		t.Error("expected occupancy to be active")
	}

	var unit models.Unit
	if err := db.First(&unit, "id = ?", flat.ID).Error; err != nil {
		t.Fatalf("failed to reload unit: %v", err)
	}
	if unit.Status != models.StatusOccupied {
		t.Errorf("expected unit to be OCCUPIED after move-in, got %s", unit.Status)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrBuildingNotFound, "custom message")
	testutil.AssertAppError(t, err, "BUILDING_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
