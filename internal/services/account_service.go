package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "rentdesk/internal/errors"
	"rentdesk/internal/models"
)

// accountService handles account management and plan limit enforcement.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// GetAccount retrieves the actor's account.
func (s *accountService) GetAccount(actor Actor) (*models.Account, error) {
	return s.getAccount(actor.AccountID)
}

func (s *accountService) getAccount(accountID string) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("id = ? AND is_active = ?", accountID, true).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// UpdateAccount updates account profile fields. Owner only.
func (s *accountService) UpdateAccount(actor Actor, name, phone, address *string) (*models.Account, error) {
	if !actor.IsOwner() {
		return nil, apperrors.ErrOwnerOnly
	}

	account, err := s.getAccount(actor.AccountID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != nil && *name != "" {
		updates["name"] = *name
	}
	if phone != nil {
		updates["phone"] = *phone
	}
	if address != nil {
		updates["address"] = *address
	}

	if len(updates) > 0 {
		if err := s.db.Model(account).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Where("id = ?", account.ID).First(account).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return account, nil
}

// GetLimits reports building and manager usage against the account's plan limits.
func (s *accountService) GetLimits(actor Actor) (*AccountLimits, error) {
	account, err := s.getAccount(actor.AccountID)
	if err != nil {
		return nil, err
	}

	buildings, err := s.countBuildings(account.ID)
	if err != nil {
		return nil, err
	}
	managers, err := s.countManagers(account.ID)
	if err != nil {
		return nil, err
	}

	return &AccountLimits{
		Buildings: usage(buildings, account.BuildingLimit()),
		Managers:  usage(managers, account.ManagerLimit()),
	}, nil
}

// CheckBuildingLimit returns ErrBuildingLimitReached when the account is
// at its building limit. A limit of 0 means unlimited.
func (s *accountService) CheckBuildingLimit(accountID string) error {
	account, err := s.getAccount(accountID)
	if err != nil {
		return err
	}
	limit := account.BuildingLimit()
	if limit == 0 {
		return nil
	}
	current, err := s.countBuildings(accountID)
	if err != nil {
		return err
	}
	if current >= limit {
		return apperrors.ErrBuildingLimitReached
	}
	return nil
}

// CheckManagerLimit returns ErrManagerLimitReached when the account is at
// its manager limit. A limit of 0 means unlimited.
func (s *accountService) CheckManagerLimit(accountID string) error {
	account, err := s.getAccount(accountID)
	if err != nil {
		return err
	}
	limit := account.ManagerLimit()
	if limit == 0 {
		return nil
	}
	current, err := s.countManagers(accountID)
	if err != nil {
		return err
	}
	if current >= limit {
		return apperrors.ErrManagerLimitReached
	}
	return nil
}

func (s *accountService) countBuildings(accountID string) (int, error) {
	var count int64
	if err := s.db.Model(&models.Building{}).Where("account_id = ?", accountID).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return int(count), nil
}

func (s *accountService) countManagers(accountID string) (int, error) {
	var count int64
	if err := s.db.Model(&models.User{}).
		Where("account_id = ? AND role = ?", accountID, models.RoleManager).
		Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return int(count), nil
}

func usage(current, max int) LimitUsage {
	return LimitUsage{
		Current:   current,
		Max:       max,
		Unlimited: max == 0,
		CanAdd:    max == 0 || current < max,
	}
}
