package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "rentdesk/internal/errors"
	"rentdesk/internal/models"
	"rentdesk/internal/pagination"
)

// buildingService handles building CRUD and manager access grants.
type buildingService struct {
	db       *gorm.DB
	accounts AccountServicer
	access   AccessServicer
}

// NewBuildingService creates a new BuildingServicer.
func NewBuildingService(db *gorm.DB, accounts AccountServicer, access AccessServicer) BuildingServicer {
	return &buildingService{db: db, accounts: accounts, access: access}
}

// CreateBuilding creates a building in the actor's account. Owner only;
// the account's building limit is enforced.
func (s *buildingService) CreateBuilding(actor Actor, name, address string, totalFloors, noticePeriodDays int) (*models.Building, error) {
	if !actor.IsOwner() {
		return nil, apperrors.ErrOwnerOnly
	}
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "building name is required")
	}
	if err := s.accounts.CheckBuildingLimit(actor.AccountID); err != nil {
		return nil, err
	}

	if totalFloors <= 0 {
		totalFloors = 1
	}
	if noticePeriodDays <= 0 {
		noticePeriodDays = 30
	}

	building := &models.Building{
		AccountID:        actor.AccountID,
		Name:             name,
		Address:          address,
		TotalFloors:      totalFloors,
		NoticePeriodDays: noticePeriodDays,
	}
	if err := s.db.Create(building).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return building, nil
}

// ListBuildings retrieves the buildings the actor can access.
func (s *buildingService) ListBuildings(actor Actor, page pagination.PageRequest) (*pagination.PageResponse[models.Building], error) {
	page.Defaults()

	ids, err := s.access.AccessibleBuildingIDs(actor)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		result := pagination.NewPageResponse([]models.Building{}, page.Page, page.PageSize, 0)
		return &result, nil
	}

	var totalItems int64
	base := s.db.Model(&models.Building{}).Where("account_id = ? AND id IN ?", actor.AccountID, ids)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var buildings []models.Building
	if err := base.Order("name").Scopes(pagination.Paginate(page)).Find(&buildings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(buildings, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetBuildingByID retrieves one accessible building.
func (s *buildingService) GetBuildingByID(actor Actor, buildingID string) (*models.Building, error) {
	ok, err := s.access.CanAccessBuilding(actor, buildingID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrBuildingNotFound
	}

	var building models.Building
	if err := s.db.Where("id = ? AND account_id = ?", buildingID, actor.AccountID).First(&building).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBuildingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &building, nil
}

// UpdateBuilding updates an accessible building. Owner only.
func (s *buildingService) UpdateBuilding(actor Actor, buildingID string, name, address *string, totalFloors, noticePeriodDays *int) (*models.Building, error) {
	if !actor.IsOwner() {
		return nil, apperrors.ErrOwnerOnly
	}
	building, err := s.GetBuildingByID(actor, buildingID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != nil && *name != "" {
		updates["name"] = *name
	}
	if address != nil {
		updates["address"] = *address
	}
	if totalFloors != nil && *totalFloors > 0 {
		updates["total_floors"] = *totalFloors
	}
	if noticePeriodDays != nil && *noticePeriodDays >= 0 {
		updates["notice_period_days"] = *noticePeriodDays
	}

	if len(updates) > 0 {
		if err := s.db.Model(building).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Where("id = ?", building.ID).First(building).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return building, nil
}

// DeleteBuilding soft-deletes a building and its access grants. Owner only.
func (s *buildingService) DeleteBuilding(actor Actor, buildingID string) error {
	if !actor.IsOwner() {
		return apperrors.ErrOwnerOnly
	}
	building, err := s.GetBuildingByID(actor, buildingID)
	if err != nil {
		return err
	}

	var units int64
	if err := s.db.Model(&models.Unit{}).Where("building_id = ?", building.ID).Count(&units).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if units > 0 {
		return apperrors.ErrBuildingHasUnits
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("building_id = ?", building.ID).Delete(&models.BuildingAccess{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(building).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// GrantAccess gives a manager access to a building. Owner only. Grants to
// owners and cross-account grants are rejected.
func (s *buildingService) GrantAccess(actor Actor, buildingID, userID string) (*models.BuildingAccess, error) {
	if !actor.IsOwner() {
		return nil, apperrors.ErrOwnerOnly
	}

	building, err := s.GetBuildingByID(actor, buildingID)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if user.AccountID != building.AccountID {
		return nil, apperrors.ErrCrossAccountGrant
	}
	if user.Role == models.RoleOwner {
		return nil, apperrors.ErrGrantToOwner
	}

	var count int64
	s.db.Model(&models.BuildingAccess{}).
		Where("user_id = ? AND building_id = ?", user.ID, building.ID).
		Count(&count)
	if count > 0 {
		return nil, apperrors.ErrDuplicateAccess
	}

	grantedBy := actor.UserID
	grant := &models.BuildingAccess{
		UserID:     user.ID,
		BuildingID: building.ID,
		CreatedBy:  &grantedBy,
	}
	if err := s.db.Create(grant).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return grant, nil
}

// RevokeAccess removes a manager's access to a building. Owner only.
func (s *buildingService) RevokeAccess(actor Actor, buildingID, userID string) error {
	if !actor.IsOwner() {
		return apperrors.ErrOwnerOnly
	}
	if _, err := s.GetBuildingByID(actor, buildingID); err != nil {
		return err
	}

	var grant models.BuildingAccess
	if err := s.db.Where("user_id = ? AND building_id = ?", userID, buildingID).First(&grant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAccessNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&grant).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ListAccess retrieves the access grants for a building. Owner only.
func (s *buildingService) ListAccess(actor Actor, buildingID string) ([]models.BuildingAccess, error) {
	if !actor.IsOwner() {
		return nil, apperrors.ErrOwnerOnly
	}
	if _, err := s.GetBuildingByID(actor, buildingID); err != nil {
		return nil, err
	}

	var grants []models.BuildingAccess
	if err := s.db.Preload("User").
		Where("building_id = ?", buildingID).
		Order("created_at DESC").
		Find(&grants).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return grants, nil
}
