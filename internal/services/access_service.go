package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "rentdesk/internal/errors"
	"rentdesk/internal/models"
)

// accessService answers building-level access questions for owners and managers.
type accessService struct {
	db *gorm.DB
}

// NewAccessService creates a new AccessServicer.
func NewAccessService(db *gorm.DB) AccessServicer {
	return &accessService{db: db}
}

// AccessibleBuildingIDs returns the IDs of all buildings the actor may
// access: every building in the account for owners, granted buildings for
// managers.
func (s *accessService) AccessibleBuildingIDs(actor Actor) ([]string, error) {
	var ids []string

	if actor.IsOwner() {
		if err := s.db.Model(&models.Building{}).
			Where("account_id = ?", actor.AccountID).
			Pluck("id", &ids).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return ids, nil
	}

	if err := s.db.Model(&models.BuildingAccess{}).
		Joins("JOIN buildings ON buildings.id = building_accesses.building_id").
		Where("building_accesses.user_id = ? AND buildings.account_id = ?", actor.UserID, actor.AccountID).
		Pluck("building_accesses.building_id", &ids).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return ids, nil
}

// CanAccessBuilding reports whether the actor may access the given
// building. The building must belong to the actor's account, and managers
// additionally need an explicit grant.
func (s *accessService) CanAccessBuilding(actor Actor, buildingID string) (bool, error) {
	var building models.Building
	if err := s.db.Where("id = ?", buildingID).First(&building).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if building.AccountID != actor.AccountID {
		return false, nil
	}
	if actor.IsOwner() {
		return true, nil
	}

	var count int64
	if err := s.db.Model(&models.BuildingAccess{}).
		Where("user_id = ? AND building_id = ?", actor.UserID, buildingID).
		Count(&count).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count > 0, nil
}
