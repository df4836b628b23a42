package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"rentdesk/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestAccount creates an account on the given plan.
func CreateTestAccount(t *testing.T, db *gorm.DB, plan models.Plan) *models.Account {
	t.Helper()

	account := &models.Account{
		Name:     fmt.Sprintf("Account %d", nextID()),
		Plan:     plan,
		IsActive: true,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

func createTestUser(t *testing.T, db *gorm.DB, accountID string, role models.Role) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		AccountID: accountID,
		Email:     fmt.Sprintf("user%d@test.com", nextID()),
		Password:  string(hash),
		Role:      role,
		IsActive:  true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestOwner creates an OWNER user in the account.
func CreateTestOwner(t *testing.T, db *gorm.DB, accountID string) *models.User {
	t.Helper()
	return createTestUser(t, db, accountID, models.RoleOwner)
}

// CreateTestManager creates a MANAGER user in the account.
func CreateTestManager(t *testing.T, db *gorm.DB, accountID string) *models.User {
	t.Helper()
	return createTestUser(t, db, accountID, models.RoleManager)
}

// CreateTestBuilding creates a building with a 30 day notice period.
func CreateTestBuilding(t *testing.T, db *gorm.DB, accountID string) *models.Building {
	t.Helper()

	building := &models.Building{
		AccountID:        accountID,
		Name:             fmt.Sprintf("Building %d", nextID()),
		Address:          "12 Test Street",
		TotalFloors:      3,
		NoticePeriodDays: 30,
	}
	if err := db.Create(building).Error; err != nil {
		t.Fatalf("failed to create test building: %v", err)
	}
	return building
}

// GrantTestAccess grants a manager access to a building.
func GrantTestAccess(t *testing.T, db *gorm.DB, userID, buildingID string) *models.BuildingAccess {
	t.Helper()

	access := &models.BuildingAccess{
		UserID:     userID,
		BuildingID: buildingID,
	}
	if err := db.Create(access).Error; err != nil {
		t.Fatalf("failed to create test building access: %v", err)
	}
	return access
}

// CreateTestUnit creates a vacant unit of the given type. Rent is in minor
// currency units.
func CreateTestUnit(t *testing.T, db *gorm.DB, accountID, buildingID string, unitType models.UnitType) *models.Unit {
	t.Helper()

	unit := &models.Unit{
		AccountID:    accountID,
		BuildingID:   buildingID,
		UnitNumber:   fmt.Sprintf("U-%d", nextID()),
		UnitType:     unitType,
		ExpectedRent: 1_500_000,
		Deposit:      3_000_000,
		Status:       models.StatusVacant,
	}
	if unitType == models.UnitTypeFlat {
		unit.BHKType = "2BHK"
	}
	if err := db.Create(unit).Error; err != nil {
		t.Fatalf("failed to create test unit: %v", err)
	}
	return unit
}

// CreateTestRoomWithBeds creates a PG room with the given number of beds.
func CreateTestRoomWithBeds(t *testing.T, db *gorm.DB, unitID string, bedCount int) (*models.PGRoom, []models.Bed) {
	t.Helper()

	room := &models.PGRoom{
		UnitID:      unitID,
		RoomNumber:  fmt.Sprintf("R-%d", nextID()),
		SharingType: bedCount,
	}
	if err := db.Create(room).Error; err != nil {
		t.Fatalf("failed to create test room: %v", err)
	}

	beds := make([]models.Bed, 0, bedCount)
	for i := 1; i <= bedCount; i++ {
		bed := models.Bed{
			RoomID:    room.ID,
			BedNumber: fmt.Sprintf("Bed %d", i),
			Status:    models.StatusVacant,
		}
		if err := db.Create(&bed).Error; err != nil {
			t.Fatalf("failed to create test bed: %v", err)
		}
		beds = append(beds, bed)
	}
	return room, beds
}

// CreateTestTenant creates a tenant in the account.
func CreateTestTenant(t *testing.T, db *gorm.DB, accountID string) *models.Tenant {
	t.Helper()

	tenant := &models.Tenant{
		AccountID: accountID,
		Name:      fmt.Sprintf("Tenant %d", nextID()),
		Phone:     fmt.Sprintf("98%08d", nextID()),
	}
	if err := db.Create(tenant).Error; err != nil {
		t.Fatalf("failed to create test tenant: %v", err)
	}
	return tenant
}

// CreateTestOccupancy creates an active primary occupancy for a flat unit
// and marks the unit occupied.
func CreateTestOccupancy(t *testing.T, db *gorm.DB, tenantID, unitID string) *models.Occupancy {
	t.Helper()

	occupancy := &models.Occupancy{
		TenantID:  tenantID,
		UnitID:    &unitID,
		Rent:      1_500_000,
		Deposit:   3_000_000,
		IsPrimary: true,
		StartDate: time.Now().AddDate(0, -1, 0),
		IsActive:  true,
	}
	if err := db.Create(occupancy).Error; err != nil {
		t.Fatalf("failed to create test occupancy: %v", err)
	}
	if err := db.Model(&models.Unit{}).Where("id = ?", unitID).
		Update("status", models.StatusOccupied).Error; err != nil {
		t.Fatalf("failed to mark unit occupied: %v", err)
	}
	return occupancy
}

// CreateTestBedOccupancy creates an active occupancy for a PG bed and
// marks the bed occupied.
func CreateTestBedOccupancy(t *testing.T, db *gorm.DB, tenantID, bedID string) *models.Occupancy {
	t.Helper()

	occupancy := &models.Occupancy{
		TenantID:  tenantID,
		BedID:     &bedID,
		Rent:      800_000,
		IsPrimary: true,
		StartDate: time.Now().AddDate(0, -1, 0),
		IsActive:  true,
	}
	if err := db.Create(occupancy).Error; err != nil {
		t.Fatalf("failed to create test bed occupancy: %v", err)
	}
	if err := db.Model(&models.Bed{}).Where("id = ?", bedID).
		Update("status", models.StatusOccupied).Error; err != nil {
		t.Fatalf("failed to mark bed occupied: %v", err)
	}
	return occupancy
}

// CreateTestRent creates a pending rent entry for the occupancy and month.
func CreateTestRent(t *testing.T, db *gorm.DB, occupancyID string, month time.Time, amount int64) *models.Rent {
	t.Helper()

	rent := &models.Rent{
		OccupancyID: occupancyID,
		Month:       models.MonthStart(month),
		Amount:      amount,
	}
	if err := db.Create(rent).Error; err != nil {
		t.Fatalf("failed to create test rent: %v", err)
	}
	return rent
}

// CreateTestIssue creates an OPEN issue against a unit.
func CreateTestIssue(t *testing.T, db *gorm.DB, unitID string, priority models.IssuePriority) *models.Issue {
	t.Helper()

	issue := &models.Issue{
		UnitID:      unitID,
		Title:       fmt.Sprintf("Issue %d", nextID()),
		Description: "Something is broken",
		Status:      models.IssueOpen,
		Priority:    priority,
	}
	if err := db.Create(issue).Error; err != nil {
		t.Fatalf("failed to create test issue: %v", err)
	}
	return issue
}
