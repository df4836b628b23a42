package services

import (
	"testing"

	"gorm.io/gorm"

	"rentdesk/internal/models"
	"rentdesk/internal/pagination"
	"rentdesk/internal/testutil"
)

func newIssueService(db *gorm.DB) IssueServicer {
	return NewIssueService(db, NewAccessService(db))
}

func TestCreateIssue(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newIssueService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		unit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)

		issue, err := svc.CreateIssue(actorFor(owner), unit.ID, nil, "Leaking tap", "Kitchen tap drips constantly", "")
		testutil.AssertNoError(t, err)

		if issue.Status != models.IssueOpen {
			t.Errorf("expected OPEN, got %s", issue.Status)
		}
		if issue.Priority != models.PriorityMedium {
			t.Errorf("expected default MEDIUM priority, got %s", issue.Priority)
		}
	})

	t.Run("missing_title", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newIssueService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		unit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)

		_, err := svc.CreateIssue(actorFor(owner), unit.ID, nil, "", "desc", models.PriorityLow)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("manager_without_access", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newIssueService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		manager := testutil.CreateTestManager(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		unit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)

		_, err := svc.CreateIssue(actorFor(manager), unit.ID, nil, "Broken lock", "Main door lock jams", models.PriorityHigh)
		testutil.AssertAppError(t, err, "UNIT_NOT_FOUND")
	})
}

func TestListIssues(t *testing.T) {
	t.Run("filter_by_status_and_priority", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newIssueService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		unit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)
		testutil.CreateTestIssue(t, db, unit.ID, models.PriorityUrgent)
		testutil.CreateTestIssue(t, db, unit.ID, models.PriorityLow)

		urgent := models.PriorityUrgent
		page, err := svc.ListIssues(actorFor(owner), nil, &urgent, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 1 {
			t.Errorf("expected 1 urgent issue, got %d", page.TotalItems)
		}
	})
}

func TestUpdateIssue(t *testing.T) {
	t.Run("resolving_stamps_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newIssueService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		unit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)
		issue := testutil.CreateTestIssue(t, db, unit.ID, models.PriorityMedium)

		resolved := models.IssueResolved
		updated, err := svc.UpdateIssue(actorFor(owner), issue.ID, IssueUpdateFields{Status: &resolved})
		testutil.AssertNoError(t, err)

		if updated.ResolvedDate == nil {
			t.Error("expected resolved date stamped")
		}
	})

	t.Run("reopening_clears_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newIssueService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		unit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)
		issue := testutil.CreateTestIssue(t, db, unit.ID, models.PriorityMedium)

		resolved := models.IssueResolved
		_, err := svc.UpdateIssue(actorFor(owner), issue.ID, IssueUpdateFields{Status: &resolved})
		testutil.AssertNoError(t, err)

		open := models.IssueOpen
		updated, err := svc.UpdateIssue(actorFor(owner), issue.ID, IssueUpdateFields{Status: &open})
		testutil.AssertNoError(t, err)

		if updated.ResolvedDate != nil {
			t.Error("expected resolved date cleared on reopen")
		}
	})
}

func TestDeleteIssue(t *testing.T) {
	t.Run("removes_issue", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newIssueService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		unit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)
		issue := testutil.CreateTestIssue(t, db, unit.ID, models.PriorityMedium)

		err := svc.DeleteIssue(actorFor(owner), issue.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.GetIssueByID(actorFor(owner), issue.ID)
		testutil.AssertAppError(t, err, "ISSUE_NOT_FOUND")
	})
}
