package services

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"rentdesk/internal/models"
	"rentdesk/internal/pagination"
	"rentdesk/internal/testutil"
)

func newOccupancyService(db *gorm.DB) OccupancyServicer {
	return NewOccupancyService(db, NewAccessService(db))
}

func TestAssign(t *testing.T) {
	t.Run("flat_assignment", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newOccupancyService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		unit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)
		tenant := testutil.CreateTestTenant(t, db, account.ID)

		occ, err := svc.Assign(actorFor(owner), AssignRequest{
			TenantID:  tenant.ID,
			UnitID:    &unit.ID,
			Rent:      1_500_000,
			Deposit:   3_000_000,
			IsPrimary: true,
		})
		testutil.AssertNoError(t, err)

		if !occ.IsActive {
			t.Error("expected active occupancy")
		}

		var got models.Unit
		db.First(&got, "id = ?", unit.ID)
		if got.Status != models.StatusOccupied {
			t.Errorf("expected unit OCCUPIED, got %s", got.Status)
		}
	})

	t.Run("bed_assignment", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newOccupancyService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		unit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypePG)
		_, beds := testutil.CreateTestRoomWithBeds(t, db, unit.ID, 2)
		tenant := testutil.CreateTestTenant(t, db, account.ID)

		occ, err := svc.Assign(actorFor(owner), AssignRequest{
			TenantID: tenant.ID,
			BedID:    &beds[0].ID,
			Rent:     800_000,
		})
		testutil.AssertNoError(t, err)

		if occ.BedID == nil || *occ.BedID != beds[0].ID {
			t.Error("expected occupancy bound to the bed")
		}

		var got models.Bed
		db.First(&got, "id = ?", beds[0].ID)
		if got.Status != models.StatusOccupied {
			t.Errorf("expected bed OCCUPIED, got %s", got.Status)
		}
	})

	t.Run("occupied_unit_conflict", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newOccupancyService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		unit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)
		first := testutil.CreateTestTenant(t, db, account.ID)
		second := testutil.CreateTestTenant(t, db, account.ID)
		testutil.CreateTestOccupancy(t, db, first.ID, unit.ID)

		_, err := svc.Assign(actorFor(owner), AssignRequest{
			TenantID:  second.ID,
			UnitID:    &unit.ID,
			Rent:      1_500_000,
			IsPrimary: true,
		})
		testutil.AssertAppError(t, err, "UNIT_OCCUPIED")
	})

	t.Run("flatmate_joins_occupied_flat", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newOccupancyService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		unit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)
		primary := testutil.CreateTestTenant(t, db, account.ID)
		flatmate := testutil.CreateTestTenant(t, db, account.ID)
		testutil.CreateTestOccupancy(t, db, primary.ID, unit.ID)

		occ, err := svc.Assign(actorFor(owner), AssignRequest{
			TenantID: flatmate.ID,
			UnitID:   &unit.ID,
			Rent:     750_000,
		})
		testutil.AssertNoError(t, err)
		if occ.IsPrimary {
			t.Error("expected non-primary flatmate occupancy")
		}
	})

	t.Run("occupied_bed_conflict", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newOccupancyService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		unit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypePG)
		_, beds := testutil.CreateTestRoomWithBeds(t, db, unit.ID, 1)
		first := testutil.CreateTestTenant(t, db, account.ID)
		second := testutil.CreateTestTenant(t, db, account.ID)
		testutil.CreateTestBedOccupancy(t, db, first.ID, beds[0].ID)

		_, err := svc.Assign(actorFor(owner), AssignRequest{
			TenantID: second.ID,
			BedID:    &beds[0].ID,
			Rent:     800_000,
		})
		testutil.AssertAppError(t, err, "BED_OCCUPIED")
	})

	t.Run("unit_and_bed_both_set", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newOccupancyService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		tenant := testutil.CreateTestTenant(t, db, account.ID)

		unitID, bedID := "u", "b"
		_, err := svc.Assign(actorFor(owner), AssignRequest{
			TenantID: tenant.ID,
			UnitID:   &unitID,
			BedID:    &bedID,
			Rent:     1,
		})
		testutil.AssertAppError(t, err, "UNIT_AND_BED_SET")
	})

	t.Run("neither_unit_nor_bed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newOccupancyService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		tenant := testutil.CreateTestTenant(t, db, account.ID)

		_, err := svc.Assign(actorFor(owner), AssignRequest{TenantID: tenant.ID, Rent: 1})
		testutil.AssertAppError(t, err, "UNIT_OR_BED_REQUIRED")
	})

	t.Run("pg_unit_rejected_for_flat_assignment", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newOccupancyService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		unit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypePG)
		tenant := testutil.CreateTestTenant(t, db, account.ID)

		_, err := svc.Assign(actorFor(owner), AssignRequest{
			TenantID:  tenant.ID,
			UnitID:    &unit.ID,
			Rent:      900_000,
			IsPrimary: true,
		})
		testutil.AssertAppError(t, err, "NOT_FLAT_UNIT")
	})

	t.Run("manager_without_access", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newOccupancyService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		manager := testutil.CreateTestManager(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		unit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)
		tenant := testutil.CreateTestTenant(t, db, account.ID)

		_, err := svc.Assign(actorFor(manager), AssignRequest{
			TenantID:  tenant.ID,
			UnitID:    &unit.ID,
			Rent:      1_500_000,
			IsPrimary: true,
		})
		testutil.AssertAppError(t, err, "BUILDING_NOT_FOUND")
	})
}

func TestListOccupancies(t *testing.T) {
	t.Run("filter_by_active", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newOccupancyService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		unit1 := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)
		unit2 := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)
		tenant1 := testutil.CreateTestTenant(t, db, account.ID)
		tenant2 := testutil.CreateTestTenant(t, db, account.ID)
		testutil.CreateTestOccupancy(t, db, tenant1.ID, unit1.ID)
		occ := testutil.CreateTestOccupancy(t, db, tenant2.ID, unit2.ID)

		_, err := svc.Vacate(actorFor(owner), occ.ID)
		testutil.AssertNoError(t, err)

		active := true
		page, err := svc.ListOccupancies(actorFor(owner), &active, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 1 {
			t.Errorf("expected 1 active occupancy, got %d", page.TotalItems)
		}
	})
}

func TestReassign(t *testing.T) {
	t.Run("flat_to_flat", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newOccupancyService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		oldUnit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)
		newUnit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)
		tenant := testutil.CreateTestTenant(t, db, account.ID)
		occ := testutil.CreateTestOccupancy(t, db, tenant.ID, oldUnit.ID)

		newRent := int64(1_700_000)
		updated, err := svc.Reassign(actorFor(owner), occ.ID, &newUnit.ID, nil, &newRent)
		testutil.AssertNoError(t, err)

		if updated.UnitID == nil || *updated.UnitID != newUnit.ID {
			t.Error("expected occupancy moved to the new unit")
		}
		if updated.Rent != newRent {
			t.Errorf("expected rent %d, got %d", newRent, updated.Rent)
		}

		var old models.Unit
		db.First(&old, "id = ?", oldUnit.ID)
		if old.Status != models.StatusVacant {
			t.Errorf("expected old unit freed, got %s", old.Status)
		}
	})

	t.Run("target_occupied", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newOccupancyService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		unit1 := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)
		unit2 := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)
		tenant1 := testutil.CreateTestTenant(t, db, account.ID)
		tenant2 := testutil.CreateTestTenant(t, db, account.ID)
		occ := testutil.CreateTestOccupancy(t, db, tenant1.ID, unit1.ID)
		testutil.CreateTestOccupancy(t, db, tenant2.ID, unit2.ID)

		_, err := svc.Reassign(actorFor(owner), occ.ID, &unit2.ID, nil, nil)
		testutil.AssertAppError(t, err, "UNIT_OCCUPIED")
	})

	t.Run("vacated_occupancy_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newOccupancyService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		oldUnit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)
		newUnit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)
		tenant := testutil.CreateTestTenant(t, db, account.ID)
		occ := testutil.CreateTestOccupancy(t, db, tenant.ID, oldUnit.ID)

		_, err := svc.Vacate(actorFor(owner), occ.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.Reassign(actorFor(owner), occ.ID, &newUnit.ID, nil, nil)
		testutil.AssertAppError(t, err, "OCCUPANCY_INACTIVE")

		var got models.Unit
		db.First(&got, "id = ?", newUnit.ID)
		if got.Status != models.StatusVacant {
			t.Errorf("expected target unit untouched, got %s", got.Status)
		}
	})
}

func TestGiveNotice(t *testing.T) {
	t.Run("computes_checkout_from_notice_period", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newOccupancyService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		unit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)
		tenant := testutil.CreateTestTenant(t, db, account.ID)
		occ := testutil.CreateTestOccupancy(t, db, tenant.ID, unit.ID)

		noticeDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		updated, err := svc.GiveNotice(actorFor(owner), occ.ID, noticeDate, "relocating")
		testutil.AssertNoError(t, err)

		if !updated.HasGivenNotice() {
			t.Error("expected notice flag set")
		}
		want := noticeDate.AddDate(0, 0, building.NoticePeriodDays)
		if updated.ExpectedCheckoutDate == nil || !updated.ExpectedCheckoutDate.Equal(want) {
			t.Errorf("expected checkout %v, got %v", want, updated.ExpectedCheckoutDate)
		}
	})

	t.Run("reports_notice_status", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newOccupancyService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		unit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)
		tenant := testutil.CreateTestTenant(t, db, account.ID)
		occ := testutil.CreateTestOccupancy(t, db, tenant.ID, unit.ID)

		fetched, err := svc.GetOccupancyByID(actorFor(owner), occ.ID)
		testutil.AssertNoError(t, err)
		if fetched.NoticeState != "" {
			t.Errorf("expected no notice status before notice, got %s", fetched.NoticeState)
		}

		updated, err := svc.GiveNotice(actorFor(owner), occ.ID, time.Now(), "relocating")
		testutil.AssertNoError(t, err)
		if updated.NoticeState != models.NoticeInPeriod {
			t.Errorf("expected IN_NOTICE_PERIOD, got %s", updated.NoticeState)
		}

		// Backdate past the building's 30-day notice period.
		backdated := time.Now().AddDate(0, 0, -40)
		if err := db.Model(&models.Occupancy{}).Where("id = ?", occ.ID).
			Update("notice_date", backdated).Error; err != nil {
			t.Fatalf("backdate notice: %v", err)
		}

		fetched, err = svc.GetOccupancyByID(actorFor(owner), occ.ID)
		testutil.AssertNoError(t, err)
		if fetched.NoticeState != models.NoticeEligible {
			t.Errorf("expected ELIGIBLE after period elapsed, got %s", fetched.NoticeState)
		}
	})

	t.Run("notice_already_given", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newOccupancyService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		unit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)
		tenant := testutil.CreateTestTenant(t, db, account.ID)
		occ := testutil.CreateTestOccupancy(t, db, tenant.ID, unit.ID)

		_, err := svc.GiveNotice(actorFor(owner), occ.ID, time.Now(), "")
		testutil.AssertNoError(t, err)

		_, err = svc.GiveNotice(actorFor(owner), occ.ID, time.Now(), "")
		testutil.AssertAppError(t, err, "NOTICE_ALREADY_GIVEN")
	})
}

func TestVacate(t *testing.T) {
	t.Run("frees_unit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newOccupancyService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		unit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)
		tenant := testutil.CreateTestTenant(t, db, account.ID)
		occ := testutil.CreateTestOccupancy(t, db, tenant.ID, unit.ID)

		vacated, err := svc.Vacate(actorFor(owner), occ.ID)
		testutil.AssertNoError(t, err)

		if vacated.IsActive {
			t.Error("expected occupancy inactive")
		}
		if vacated.EndDate == nil {
			t.Error("expected end date stamped")
		}

		var got models.Unit
		db.First(&got, "id = ?", unit.ID)
		if got.Status != models.StatusVacant {
			t.Errorf("expected unit VACANT, got %s", got.Status)
		}
	})

	t.Run("unit_stays_occupied_while_flatmates_remain", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newOccupancyService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		unit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)
		primary := testutil.CreateTestTenant(t, db, account.ID)
		flatmate := testutil.CreateTestTenant(t, db, account.ID)
		testutil.CreateTestOccupancy(t, db, primary.ID, unit.ID)

		mate, err := svc.Assign(actorFor(owner), AssignRequest{
			TenantID: flatmate.ID,
			UnitID:   &unit.ID,
			Rent:     700_000,
		})
		testutil.AssertNoError(t, err)

		_, err = svc.Vacate(actorFor(owner), mate.ID)
		testutil.AssertNoError(t, err)

		var got models.Unit
		db.First(&got, "id = ?", unit.ID)
		if got.Status != models.StatusOccupied {
			t.Errorf("expected unit still OCCUPIED, got %s", got.Status)
		}
	})

	t.Run("frees_bed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newOccupancyService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		unit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypePG)
		_, beds := testutil.CreateTestRoomWithBeds(t, db, unit.ID, 1)
		tenant := testutil.CreateTestTenant(t, db, account.ID)
		occ := testutil.CreateTestBedOccupancy(t, db, tenant.ID, beds[0].ID)

		_, err := svc.Vacate(actorFor(owner), occ.ID)
		testutil.AssertNoError(t, err)

		var got models.Bed
		db.First(&got, "id = ?", beds[0].ID)
		if got.Status != models.StatusVacant {
			t.Errorf("expected bed VACANT, got %s", got.Status)
		}
	})

	t.Run("already_inactive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newOccupancyService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		unit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)
		tenant := testutil.CreateTestTenant(t, db, account.ID)
		occ := testutil.CreateTestOccupancy(t, db, tenant.ID, unit.ID)

		_, err := svc.Vacate(actorFor(owner), occ.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.Vacate(actorFor(owner), occ.ID)
		testutil.AssertAppError(t, err, "OCCUPANCY_INACTIVE")
	})

	t.Run("concurrent_vacates_end_once", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		// One connection so both calls contend for the same row.
		sqlDB, err := db.DB()
		if err != nil {
			t.Fatalf("get sql db: %v", err)
		}
		sqlDB.SetMaxOpenConns(1)

		svc := newOccupancyService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		unit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)
		tenant := testutil.CreateTestTenant(t, db, account.ID)
		occ := testutil.CreateTestOccupancy(t, db, tenant.ID, unit.ID)

		errs := make(chan error, 2)
		for i := 0; i < 2; i++ {
			go func() {
				_, err := svc.Vacate(actorFor(owner), occ.ID)
				errs <- err
			}()
		}

		var failed int
		for i := 0; i < 2; i++ {
			if err := <-errs; err != nil {
				failed++
				testutil.AssertAppError(t, err, "OCCUPANCY_INACTIVE")
			}
		}
		if failed != 1 {
			t.Fatalf("expected exactly one of two vacates to report inactive, got %d", failed)
		}

		var got models.Unit
		db.First(&got, "id = ?", unit.ID)
		if got.Status != models.StatusVacant {
			t.Errorf("expected unit VACANT, got %s", got.Status)
		}
	})
}
