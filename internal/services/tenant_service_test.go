package services

import (
	"testing"

	"rentdesk/internal/models"
	"rentdesk/internal/pagination"
	"rentdesk/internal/testutil"
)

func TestCreateTenant(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTenantService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)

		tenant, err := svc.CreateTenant(actorFor(owner), "Anita Desai", "9822222222", "anita@example.com", "AADHAAR", "1234-5678-9012", "", "")
		testutil.AssertNoError(t, err)

		if tenant.AccountID != account.ID {
			t.Error("expected tenant scoped to the actor's account")
		}
	})

	t.Run("missing_phone", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTenantService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)

		_, err := svc.CreateTenant(actorFor(owner), "No Phone", "", "", "", "", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestListTenants(t *testing.T) {
	t.Run("search_by_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTenantService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		actor := actorFor(owner)

		_, err := svc.CreateTenant(actor, "Ramesh Gupta", "9810000001", "", "", "", "", "")
		testutil.AssertNoError(t, err)
		_, err = svc.CreateTenant(actor, "Suresh Iyer", "9810000002", "", "", "", "", "")
		testutil.AssertNoError(t, err)

		page, err := svc.ListTenants(actor, "ramesh", pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 1 {
			t.Errorf("expected 1 match, got %d", page.TotalItems)
		}
	})

	t.Run("account_isolation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTenantService(db)
		account1 := testutil.CreateTestAccount(t, db, models.PlanBasic)
		account2 := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account1.ID)
		testutil.CreateTestTenant(t, db, account2.ID)

		page, err := svc.ListTenants(actorFor(owner), "", pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 0 {
			t.Errorf("expected no tenants across accounts, got %d", page.TotalItems)
		}
	})
}

func TestDeleteTenant(t *testing.T) {
	t.Run("blocked_by_active_occupancy", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTenantService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		building := testutil.CreateTestBuilding(t, db, account.ID)
		unit := testutil.CreateTestUnit(t, db, account.ID, building.ID, models.UnitTypeFlat)
		tenant := testutil.CreateTestTenant(t, db, account.ID)
		testutil.CreateTestOccupancy(t, db, tenant.ID, unit.ID)

		err := svc.DeleteTenant(actorFor(owner), tenant.ID)
		testutil.AssertAppError(t, err, "TENANT_HAS_OCCUPANCY")
	})
}

func TestDocuments(t *testing.T) {
	t.Run("add_and_list", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTenantService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		tenant := testutil.CreateTestTenant(t, db, account.ID)

		doc, err := svc.AddDocument(actorFor(owner), tenant.ID, models.DocumentAadhaar, "1234-5678-9012", "", nil, nil)
		testutil.AssertNoError(t, err)

		if doc.VerificationStatus != models.VerificationPending {
			t.Errorf("expected new document PENDING, got %s", doc.VerificationStatus)
		}

		docs, err := svc.ListDocuments(actorFor(owner), tenant.ID)
		testutil.AssertNoError(t, err)
		if len(docs) != 1 {
			t.Errorf("expected 1 document, got %d", len(docs))
		}
	})

	t.Run("verify_owner_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTenantService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		manager := testutil.CreateTestManager(t, db, account.ID)
		tenant := testutil.CreateTestTenant(t, db, account.ID)

		doc, err := svc.AddDocument(actorFor(owner), tenant.ID, models.DocumentPAN, "ABCDE1234F", "", nil, nil)
		testutil.AssertNoError(t, err)

		_, err = svc.VerifyDocument(actorFor(manager), doc.ID, models.VerificationVerified, "")
		testutil.AssertAppError(t, err, "OWNER_ONLY")

		verified, err := svc.VerifyDocument(actorFor(owner), doc.ID, models.VerificationVerified, "checked against original")
		testutil.AssertNoError(t, err)
		if verified.VerifiedBy == nil || *verified.VerifiedBy != owner.ID {
			t.Error("expected verifier recorded")
		}
		if verified.VerifiedAt == nil {
			t.Error("expected verification timestamp")
		}
	})

	t.Run("verify_back_to_pending", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTenantService(db)
		account := testutil.CreateTestAccount(t, db, models.PlanBasic)
		owner := testutil.CreateTestOwner(t, db, account.ID)
		tenant := testutil.CreateTestTenant(t, db, account.ID)
		doc, err := svc.AddDocument(actorFor(owner), tenant.ID, models.DocumentPhoto, "", "", nil, nil)
		testutil.AssertNoError(t, err)

		_, err = svc.VerifyDocument(actorFor(owner), doc.ID, models.VerificationPending, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}
