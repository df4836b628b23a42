package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "rentdesk/internal/errors"
	"rentdesk/internal/logger"
	"rentdesk/internal/models"
	"rentdesk/internal/pagination"
)

// rentService manages the monthly rent ledger.
type rentService struct {
	db     *gorm.DB
	access AccessServicer
}

// NewRentService creates a new RentServicer.
func NewRentService(db *gorm.DB, access AccessServicer) RentServicer {
	return &rentService{db: db, access: access}
}

// CreateRent adds a manual ledger entry for an occupancy and month. The
// month is normalized to its first day; one entry per occupancy per month.
func (s *rentService) CreateRent(actor Actor, occupancyID string, month time.Time, amount int64, notes string) (*models.Rent, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}

	occupancy, err := s.occupancyInScope(actor, occupancyID)
	if err != nil {
		return nil, err
	}

	month = models.MonthStart(month)
	var existing int64
	s.db.Model(&models.Rent{}).
		Where("occupancy_id = ? AND month = ?", occupancy.ID, month).
		Count(&existing)
	if existing > 0 {
		return nil, apperrors.ErrDuplicateRent
	}

	rent := &models.Rent{
		OccupancyID: occupancy.ID,
		Month:       month,
		Amount:      amount,
		Notes:       notes,
	}
	if err := s.db.Create(rent).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetRentByID(actor, rent.ID)
}

// occupancyInScope loads an occupancy and verifies the actor can reach its
// building.
func (s *rentService) occupancyInScope(actor Actor, occupancyID string) (*models.Occupancy, error) {
	buildingIDs, err := s.access.AccessibleBuildingIDs(actor)
	if err != nil {
		return nil, err
	}

	var occupancy models.Occupancy
	if err := s.db.Where("id = ?", occupancyID).First(&occupancy).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOccupancyNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	buildingID, err := s.occupancyBuilding(&occupancy)
	if err != nil {
		return nil, err
	}
	for _, id := range buildingIDs {
		if id == buildingID {
			return &occupancy, nil
		}
	}
	return nil, apperrors.ErrOccupancyNotFound
}

func (s *rentService) occupancyBuilding(o *models.Occupancy) (string, error) {
	var unit models.Unit
	if o.UnitID != nil {
		if err := s.db.Select("building_id").Where("id = ?", *o.UnitID).First(&unit).Error; err != nil {
			return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return unit.BuildingID, nil
	}
	if err := s.db.Select("units.building_id").
		Joins("JOIN pg_rooms ON pg_rooms.unit_id = units.id").
		Joins("JOIN beds ON beds.room_id = pg_rooms.id").
		Where("beds.id = ?", *o.BedID).
		First(&unit).Error; err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return unit.BuildingID, nil
}

// scopedRentQuery builds the base rent query restricted to the actor's
// accessible buildings plus the given filters.
func (s *rentService) scopedRentQuery(actor Actor, filter RentFilter) (*gorm.DB, error) {
	buildingIDs, err := s.access.AccessibleBuildingIDs(actor)
	if err != nil {
		return nil, err
	}
	if filter.BuildingID != nil {
		allowed := false
		for _, id := range buildingIDs {
			if id == *filter.BuildingID {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, apperrors.ErrBuildingNotFound
		}
		buildingIDs = []string{*filter.BuildingID}
	}
	if len(buildingIDs) == 0 {
		// Force an empty result set rather than leaking other accounts' rows.
		return s.db.Model(&models.Rent{}).Where("1 = 0"), nil
	}

	query := s.db.Model(&models.Rent{}).
		Where("rents.occupancy_id IN (?)",
			s.db.Model(&models.Occupancy{}).Select("occupancies.id").
				Joins("LEFT JOIN units flat_units ON flat_units.id = occupancies.unit_id").
				Joins("LEFT JOIN beds ON beds.id = occupancies.bed_id").
				Joins("LEFT JOIN pg_rooms ON pg_rooms.id = beds.room_id").
				Joins("LEFT JOIN units pg_units ON pg_units.id = pg_rooms.unit_id").
				Where("flat_units.building_id IN ? OR pg_units.building_id IN ?", buildingIDs, buildingIDs),
		)
	if filter.Month != nil {
		query = query.Where("rents.month = ?", models.MonthStart(*filter.Month))
	}
	if filter.Status != nil {
		query = query.Where("rents.status = ?", *filter.Status)
	}
	return query, nil
}

// ListRents retrieves ledger entries for the actor's accessible buildings,
// optionally filtered by month, status, and building.
func (s *rentService) ListRents(actor Actor, filter RentFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Rent], error) {
	page.Defaults()

	query, err := s.scopedRentQuery(actor, filter)
	if err != nil {
		return nil, err
	}

	var totalItems int64
	if err := query.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var rents []models.Rent
	if err := query.Preload("Occupancy.Tenant").Preload("Occupancy.Unit").
		Order("rents.month DESC, rents.created_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&rents).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(rents, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetRentByID retrieves one ledger entry with its occupancy and tenant.
func (s *rentService) GetRentByID(actor Actor, rentID string) (*models.Rent, error) {
	var rent models.Rent
	if err := s.db.Preload("Occupancy.Tenant").Preload("Occupancy.Unit").Preload("Occupancy.Bed.Room.Unit").
		Where("id = ?", rentID).
		First(&rent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if _, err := s.occupancyInScope(actor, rent.OccupancyID); err != nil {
		return nil, apperrors.ErrRentNotFound
	}
	return &rent, nil
}

// RecordPayment adds a payment toward a month's rent. The status and paid
// date are derived on save; overpayment is rejected.
func (s *rentService) RecordPayment(actor Actor, rentID string, amount int64, notes string) (*models.Rent, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "payment amount must be positive")
	}

	rent, err := s.GetRentByID(actor, rentID)
	if err != nil {
		return nil, err
	}
	if rent.PaidAmount+amount > rent.Amount {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			fmt.Sprintf("payment exceeds pending amount of %d", rent.PendingAmount()))
	}

	rent.PaidAmount += amount
	if notes != "" {
		if rent.Notes != "" {
			rent.Notes += "\n"
		}
		rent.Notes += notes
	}
	if err := s.db.Save(rent).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rent, nil
}

// GenerateForMonth creates pending ledger entries for every active primary
// occupancy in one account that does not already have an entry for the
// month. Safe to run repeatedly.
func (s *rentService) GenerateForMonth(month time.Time, accountID string) (*GenerationResult, error) {
	month = models.MonthStart(month)
	result := &GenerationResult{Month: month}

	var occupancies []models.Occupancy
	if err := s.db.
		Joins("LEFT JOIN units flat_units ON flat_units.id = occupancies.unit_id").
		Joins("LEFT JOIN beds ON beds.id = occupancies.bed_id").
		Joins("LEFT JOIN pg_rooms ON pg_rooms.id = beds.room_id").
		Joins("LEFT JOIN units pg_units ON pg_units.id = pg_rooms.unit_id").
		Where("occupancies.is_active = ?", true).
		Where("occupancies.unit_id IS NULL OR occupancies.is_primary = ?", true).
		Where("flat_units.account_id = ? OR pg_units.account_id = ?", accountID, accountID).
		Find(&occupancies).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, occupancy := range occupancies {
		var existing int64
		if err := s.db.Model(&models.Rent{}).
			Where("occupancy_id = ? AND month = ?", occupancy.ID, month).
			Count(&existing).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if existing > 0 {
			result.Skipped++
			continue
		}
		rent := models.Rent{
			OccupancyID: occupancy.ID,
			Month:       month,
			Amount:      occupancy.Rent,
		}
		if err := s.db.Create(&rent).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		result.Created++
	}
	return result, nil
}

// GenerateForAllAccounts runs the monthly generation across every account.
// Used by the scheduler; a failing account is logged and skipped so one
// bad account does not block the rest.
func (s *rentService) GenerateForAllAccounts(month time.Time) (*GenerationResult, error) {
	month = models.MonthStart(month)
	total := &GenerationResult{Month: month}

	var accountIDs []string
	if err := s.db.Model(&models.Account{}).Pluck("id", &accountIDs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, accountID := range accountIDs {
		result, err := s.GenerateForMonth(month, accountID)
		if err != nil {
			logger.Get().Errorw("rent generation failed for account",
				"account_id", accountID, "month", month.Format("2006-01"), "error", err)
			continue
		}
		total.Created += result.Created
		total.Skipped += result.Skipped
	}
	return total, nil
}

// ExportRows flattens the filtered ledger into report rows for CSV/XLSX
// export.
func (s *rentService) ExportRows(actor Actor, filter RentFilter) ([]RentReportRow, error) {
	query, err := s.scopedRentQuery(actor, filter)
	if err != nil {
		return nil, err
	}

	var rents []models.Rent
	if err := query.Preload("Occupancy.Tenant").
		Preload("Occupancy.Unit").
		Preload("Occupancy.Bed.Room.Unit").
		Order("rents.month DESC").
		Find(&rents).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	rows := make([]RentReportRow, 0, len(rents))
	for _, rent := range rents {
		row := RentReportRow{
			Month:    rent.Month.Format("2006-01"),
			Expected: rent.Amount,
			Paid:     rent.PaidAmount,
			Pending:  rent.PendingAmount(),
			Status:   string(rent.Status),
		}
		if rent.PaidDate != nil {
			row.PaidDate = rent.PaidDate.Format("2006-01-02")
		}
		if o := rent.Occupancy; o != nil {
			if o.Tenant != nil {
				row.TenantName = o.Tenant.Name
			}
			switch {
			case o.Unit != nil:
				row.Location = o.Unit.UnitNumber
			case o.Bed != nil && o.Bed.Room != nil && o.Bed.Room.Unit != nil:
				row.Location = fmt.Sprintf("%s / %s / %s",
					o.Bed.Room.Unit.UnitNumber, o.Bed.Room.RoomNumber, o.Bed.BedNumber)
			case o.Bed != nil:
				row.Location = o.Bed.BedNumber
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
