package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "rentdesk/internal/errors"
	"rentdesk/internal/models"
	"rentdesk/internal/pagination"
)

// occupancyService manages the tenant-to-unit/bed lifecycle: assignment,
// notice, and vacating.
type occupancyService struct {
	db     *gorm.DB
	access AccessServicer
}

// NewOccupancyService creates a new OccupancyServicer.
func NewOccupancyService(db *gorm.DB, access AccessServicer) OccupancyServicer {
	return &occupancyService{db: db, access: access}
}

// lockRow adds a row-level lock on the postgres dialect. SQLite serializes
// writers at the database level, so the clause is skipped there.
func lockRow(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// Assign moves a tenant into a flat unit or a PG bed. The target row is
// locked inside the transaction; a second concurrent assignment to the
// same unit or bed fails with a conflict error.
func (s *occupancyService) Assign(actor Actor, req AssignRequest) (*models.Occupancy, error) {
	if req.UnitID == nil && req.BedID == nil {
		return nil, apperrors.ErrUnitOrBedRequired
	}
	if req.UnitID != nil && req.BedID != nil {
		return nil, apperrors.ErrUnitAndBedSet
	}
	if req.Rent <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "rent must be positive")
	}
	if req.StartDate.IsZero() {
		req.StartDate = time.Now()
	}

	var tenant models.Tenant
	if err := s.db.Where("id = ? AND account_id = ?", req.TenantID, actor.AccountID).
		First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	occupancy := &models.Occupancy{
		TenantID:  tenant.ID,
		UnitID:    req.UnitID,
		BedID:     req.BedID,
		Rent:      req.Rent,
		Deposit:   req.Deposit,
		IsPrimary: req.IsPrimary,
		StartDate: req.StartDate,
		IsActive:  true,
		Notes:     req.Notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if req.UnitID != nil {
			if err := s.claimUnit(tx, actor, *req.UnitID, req.IsPrimary); err != nil {
				return err
			}
		} else {
			if err := s.claimBed(tx, actor, *req.BedID); err != nil {
				return err
			}
		}
		return tx.Create(occupancy).Error
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetOccupancyByID(actor, occupancy.ID)
}

// claimUnit locks a flat unit and marks it occupied. A non-primary
// assignment to an already-occupied flat is a flatmate and is allowed.
func (s *occupancyService) claimUnit(tx *gorm.DB, actor Actor, unitID string, isPrimary bool) error {
	var unit models.Unit
	if err := lockRow(tx).
		Where("id = ? AND account_id = ?", unitID, actor.AccountID).
		First(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUnitNotFound
		}
		return err
	}
	ok, err := s.access.CanAccessBuilding(actor, unit.BuildingID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrBuildingNotFound
	}
	if unit.UnitType != models.UnitTypeFlat {
		return apperrors.ErrNotFlatUnit
	}

	if unit.Status == models.StatusOccupied {
		if isPrimary {
			return apperrors.ErrUnitOccupied
		}
		var primaries int64
		if err := tx.Model(&models.Occupancy{}).
			Where("unit_id = ? AND is_active = ? AND is_primary = ?", unit.ID, true, true).
			Count(&primaries).Error; err != nil {
			return err
		}
		if primaries == 0 {
			return apperrors.ErrUnitOccupied
		}
		return nil
	}

	return tx.Model(&unit).Update("status", models.StatusOccupied).Error
}

// claimBed locks a PG bed and marks it occupied. Beds hold exactly one
// tenant, so any active occupancy is a conflict.
func (s *occupancyService) claimBed(tx *gorm.DB, actor Actor, bedID string) error {
	var bed models.Bed
	if err := lockRow(tx).
		Joins("JOIN pg_rooms ON pg_rooms.id = beds.room_id").
		Joins("JOIN units ON units.id = pg_rooms.unit_id").
		Where("beds.id = ? AND units.account_id = ?", bedID, actor.AccountID).
		First(&bed).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBedNotFound
		}
		return err
	}

	var unit models.Unit
	if err := tx.Joins("JOIN pg_rooms ON pg_rooms.unit_id = units.id").
		Where("pg_rooms.id = ?", bed.RoomID).
		First(&unit).Error; err != nil {
		return err
	}
	ok, err := s.access.CanAccessBuilding(actor, unit.BuildingID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrBuildingNotFound
	}

	if bed.Status == models.StatusOccupied {
		return apperrors.ErrBedOccupied
	}
	return tx.Model(&bed).Update("status", models.StatusOccupied).Error
}

// ListOccupancies retrieves occupancies in the actor's accessible buildings.
func (s *occupancyService) ListOccupancies(actor Actor, isActive *bool, page pagination.PageRequest) (*pagination.PageResponse[models.Occupancy], error) {
	page.Defaults()

	buildingIDs, err := s.access.AccessibleBuildingIDs(actor)
	if err != nil {
		return nil, err
	}
	if len(buildingIDs) == 0 {
		result := pagination.NewPageResponse([]models.Occupancy{}, page.Page, page.PageSize, 0)
		return &result, nil
	}

	base := s.db.Model(&models.Occupancy{}).
		Where("occupancies.unit_id IN (?) OR occupancies.bed_id IN (?)",
			s.db.Model(&models.Unit{}).Select("id").Where("building_id IN ?", buildingIDs),
			s.db.Model(&models.Bed{}).Select("beds.id").
				Joins("JOIN pg_rooms ON pg_rooms.id = beds.room_id").
				Joins("JOIN units ON units.id = pg_rooms.unit_id").
				Where("units.building_id IN ?", buildingIDs),
		)
	if isActive != nil {
		base = base.Where("occupancies.is_active = ?", *isActive)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var occupancies []models.Occupancy
	if err := base.Preload("Tenant").Preload("Unit").Preload("Bed").
		Order("occupancies.start_date DESC").
		Scopes(pagination.Paginate(page)).
		Find(&occupancies).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(occupancies, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetOccupancyByID retrieves a single occupancy with its tenant and location.
func (s *occupancyService) GetOccupancyByID(actor Actor, occupancyID string) (*models.Occupancy, error) {
	var occupancy models.Occupancy
	if err := s.db.Preload("Tenant").Preload("Unit").Preload("Bed.Room.Unit").
		Where("id = ?", occupancyID).
		First(&occupancy).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOccupancyNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	buildingID, err := s.buildingOf(&occupancy)
	if err != nil {
		return nil, err
	}
	ok, err := s.access.CanAccessBuilding(actor, buildingID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrOccupancyNotFound
	}

	if occupancy.HasGivenNotice() {
		var building models.Building
		if err := s.db.Select("notice_period_days").Where("id = ?", buildingID).
			First(&building).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		occupancy.NoticeState = occupancy.NoticeStatus(building.NoticePeriodDays, time.Now())
	}
	return &occupancy, nil
}

// buildingOf resolves the building an occupancy belongs to, through the
// unit directly or through the bed's room.
func (s *occupancyService) buildingOf(o *models.Occupancy) (string, error) {
	if o.UnitID != nil {
		var unit models.Unit
		if err := s.db.Select("building_id").Where("id = ?", *o.UnitID).First(&unit).Error; err != nil {
			return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return unit.BuildingID, nil
	}
	var unit models.Unit
	if err := s.db.Select("units.building_id").
		Joins("JOIN pg_rooms ON pg_rooms.unit_id = units.id").
		Joins("JOIN beds ON beds.room_id = pg_rooms.id").
		Where("beds.id = ?", *o.BedID).
		First(&unit).Error; err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return unit.BuildingID, nil
}

// Reassign moves an active occupancy to a different unit or bed. The old
// location is released and the new one claimed in one transaction, with
// the same locking as Assign.
func (s *occupancyService) Reassign(actor Actor, occupancyID string, unitID, bedID *string, rent *int64) (*models.Occupancy, error) {
	if unitID == nil && bedID == nil {
		return nil, apperrors.ErrUnitOrBedRequired
	}
	if unitID != nil && bedID != nil {
		return nil, apperrors.ErrUnitAndBedSet
	}

	occupancy, err := s.GetOccupancyByID(actor, occupancyID)
	if err != nil {
		return nil, err
	}
	if !occupancy.IsActive {
		return nil, apperrors.ErrOccupancyInactive
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Re-read under lock: a concurrent vacate or reassign may have
		// ended this occupancy after the fetch above.
		var current models.Occupancy
		if err := lockRow(tx).Where("id = ?", occupancy.ID).First(&current).Error; err != nil {
			return err
		}
		if !current.IsActive {
			return apperrors.ErrOccupancyInactive
		}

		if err := s.releaseLocation(tx, occupancy); err != nil {
			return err
		}
		if unitID != nil {
			if err := s.claimUnit(tx, actor, *unitID, occupancy.IsPrimary); err != nil {
				return err
			}
		} else {
			if err := s.claimBed(tx, actor, *bedID); err != nil {
				return err
			}
		}

		updates := map[string]interface{}{
			"unit_id": unitID,
			"bed_id":  bedID,
		}
		if rent != nil && *rent > 0 {
			updates["rent"] = *rent
		}
		return tx.Model(occupancy).Updates(updates).Error
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetOccupancyByID(actor, occupancyID)
}

// GiveNotice records the tenant's notice to vacate and computes the
// expected checkout date from the building's notice period.
func (s *occupancyService) GiveNotice(actor Actor, occupancyID string, noticeDate time.Time, reason string) (*models.Occupancy, error) {
	occupancy, err := s.GetOccupancyByID(actor, occupancyID)
	if err != nil {
		return nil, err
	}
	if !occupancy.IsActive {
		return nil, apperrors.ErrOccupancyInactive
	}
	if occupancy.HasGivenNotice() {
		return nil, apperrors.ErrNoticeAlreadyGiven
	}
	if noticeDate.IsZero() {
		noticeDate = time.Now()
	}

	buildingID, err := s.buildingOf(occupancy)
	if err != nil {
		return nil, err
	}
	var building models.Building
	if err := s.db.Where("id = ?", buildingID).First(&building).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	checkout := noticeDate.AddDate(0, 0, building.NoticePeriodDays)
	if err := s.db.Model(occupancy).Updates(map[string]interface{}{
		"notice_date":            noticeDate,
		"expected_checkout_date": checkout,
		"notice_reason":          reason,
	}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	occupancy.NoticeDate = &noticeDate
	occupancy.ExpectedCheckoutDate = &checkout
	occupancy.NoticeReason = reason
	occupancy.NoticeState = occupancy.NoticeStatus(building.NoticePeriodDays, time.Now())
	return occupancy, nil
}

// Vacate ends an active occupancy and frees the unit or bed. The unit
// stays occupied if other flatmates remain. The occupancy row is locked
// for the duration of the transaction so the location is released once.
func (s *occupancyService) Vacate(actor Actor, occupancyID string) (*models.Occupancy, error) {
	occupancy, err := s.GetOccupancyByID(actor, occupancyID)
	if err != nil {
		return nil, err
	}
	if !occupancy.IsActive {
		return nil, apperrors.ErrOccupancyInactive
	}

	now := time.Now()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var current models.Occupancy
		if err := lockRow(tx).Where("id = ?", occupancy.ID).First(&current).Error; err != nil {
			return err
		}
		if !current.IsActive {
			return apperrors.ErrOccupancyInactive
		}

		if err := tx.Model(occupancy).Updates(map[string]interface{}{
			"is_active": false,
			"end_date":  now,
		}).Error; err != nil {
			return err
		}
		return s.releaseLocation(tx, occupancy)
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	occupancy.IsActive = false
	occupancy.EndDate = &now
	return occupancy, nil
}

// releaseLocation marks the occupancy's unit or bed vacant once no other
// active occupancy holds it.
func (s *occupancyService) releaseLocation(tx *gorm.DB, o *models.Occupancy) error {
	if o.UnitID != nil {
		var remaining int64
		if err := tx.Model(&models.Occupancy{}).
			Where("unit_id = ? AND is_active = ? AND id <> ?", *o.UnitID, true, o.ID).
			Count(&remaining).Error; err != nil {
			return err
		}
		if remaining == 0 {
			return tx.Model(&models.Unit{}).Where("id = ?", *o.UnitID).
				Update("status", models.StatusVacant).Error
		}
		return nil
	}
	return tx.Model(&models.Bed{}).Where("id = ?", *o.BedID).
		Update("status", models.StatusVacant).Error
}
