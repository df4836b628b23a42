package services

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	apperrors "rentdesk/internal/errors"
	"rentdesk/internal/models"
	"rentdesk/internal/pagination"
)

// unitService handles units, PG rooms, and beds.
type unitService struct {
	db     *gorm.DB
	access AccessServicer
}

// NewUnitService creates a new UnitServicer.
func NewUnitService(db *gorm.DB, access AccessServicer) UnitServicer {
	return &unitService{db: db, access: access}
}

// CreateUnit creates a flat or PG unit inside an accessible building.
func (s *unitService) CreateUnit(actor Actor, buildingID, unitNumber string, unitType models.UnitType, bhkType string, expectedRent, deposit int64) (*models.Unit, error) {
	if unitNumber == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unit number is required")
	}
	if expectedRent < 0 || deposit < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amounts must not be negative")
	}

	ok, err := s.access.CanAccessBuilding(actor, buildingID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrBuildingNotFound
	}

	var count int64
	s.db.Model(&models.Unit{}).
		Where("building_id = ? AND unit_number = ?", buildingID, unitNumber).
		Count(&count)
	if count > 0 {
		return nil, apperrors.ErrDuplicateUnit
	}

	if unitType != models.UnitTypeFlat {
		bhkType = ""
	}

	unit := &models.Unit{
		AccountID:    actor.AccountID,
		BuildingID:   buildingID,
		UnitNumber:   unitNumber,
		UnitType:     unitType,
		BHKType:      bhkType,
		ExpectedRent: expectedRent,
		Deposit:      deposit,
		Status:       models.StatusVacant,
	}
	if err := s.db.Create(unit).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return unit, nil
}

// ListUnits retrieves units in an accessible building, optionally filtered
// by status.
func (s *unitService) ListUnits(actor Actor, buildingID string, status *models.OccupancyStatus, page pagination.PageRequest) (*pagination.PageResponse[models.Unit], error) {
	page.Defaults()

	ok, err := s.access.CanAccessBuilding(actor, buildingID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrBuildingNotFound
	}

	base := s.db.Model(&models.Unit{}).
		Where("account_id = ? AND building_id = ?", actor.AccountID, buildingID)
	if status != nil {
		base = base.Where("status = ?", *status)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var units []models.Unit
	if err := base.Order("unit_number").Scopes(pagination.Paginate(page)).Find(&units).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(units, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetUnitByID retrieves one unit the actor can access.
func (s *unitService) GetUnitByID(actor Actor, unitID string) (*models.Unit, error) {
	var unit models.Unit
	if err := s.db.Preload("Rooms.Beds").
		Where("id = ? AND account_id = ?", unitID, actor.AccountID).
		First(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnitNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	ok, err := s.access.CanAccessBuilding(actor, unit.BuildingID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrUnitNotFound
	}
	return &unit, nil
}

// UpdateUnit updates an accessible unit.
func (s *unitService) UpdateUnit(actor Actor, unitID string, fields UnitUpdateFields) (*models.Unit, error) {
	unit, err := s.GetUnitByID(actor, unitID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.UnitNumber != nil && *fields.UnitNumber != "" && *fields.UnitNumber != unit.UnitNumber {
		var count int64
		s.db.Model(&models.Unit{}).
			Where("building_id = ? AND unit_number = ? AND id <> ?", unit.BuildingID, *fields.UnitNumber, unit.ID).
			Count(&count)
		if count > 0 {
			return nil, apperrors.ErrDuplicateUnit
		}
		updates["unit_number"] = *fields.UnitNumber
	}
	if fields.BHKType != nil && unit.UnitType == models.UnitTypeFlat {
		updates["bhk_type"] = *fields.BHKType
	}
	if fields.ExpectedRent != nil && *fields.ExpectedRent >= 0 {
		updates["expected_rent"] = *fields.ExpectedRent
	}
	if fields.Deposit != nil && *fields.Deposit >= 0 {
		updates["deposit"] = *fields.Deposit
	}

	if len(updates) > 0 {
		if err := s.db.Model(unit).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Where("id = ?", unit.ID).First(unit).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return unit, nil
}

// DeleteUnit soft-deletes a unit without an active occupancy.
func (s *unitService) DeleteUnit(actor Actor, unitID string) error {
	unit, err := s.GetUnitByID(actor, unitID)
	if err != nil {
		return err
	}

	var count int64
	s.db.Model(&models.Occupancy{}).
		Where("unit_id = ? AND is_active = ?", unit.ID, true).
		Count(&count)
	if count == 0 && unit.UnitType == models.UnitTypePG {
		// PG units are occupied via beds
		s.db.Model(&models.Occupancy{}).
			Joins("JOIN beds ON beds.id = occupancies.bed_id").
			Joins("JOIN pg_rooms ON pg_rooms.id = beds.room_id").
			Where("pg_rooms.unit_id = ? AND occupancies.is_active = ?", unit.ID, true).
			Count(&count)
	}
	if count > 0 {
		return apperrors.ErrUnitHasOccupancy
	}

	if err := s.db.Delete(unit).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// CreateRoom adds a room with its beds to a PG unit. SharingType beds are
// created automatically, numbered "Bed 1".."Bed N".
func (s *unitService) CreateRoom(actor Actor, unitID, roomNumber string, sharingType int) (*models.PGRoom, error) {
	if roomNumber == "" || sharingType <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "room number and sharing type are required")
	}

	unit, err := s.GetUnitByID(actor, unitID)
	if err != nil {
		return nil, err
	}
	if unit.UnitType != models.UnitTypePG {
		return nil, apperrors.ErrNotPGUnit
	}

	var count int64
	s.db.Model(&models.PGRoom{}).
		Where("unit_id = ? AND room_number = ?", unit.ID, roomNumber).
		Count(&count)
	if count > 0 {
		return nil, apperrors.ErrDuplicateRoom
	}

	room := &models.PGRoom{
		UnitID:      unit.ID,
		RoomNumber:  roomNumber,
		SharingType: sharingType,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(room).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for i := 1; i <= sharingType; i++ {
			bed := &models.Bed{
				RoomID:    room.ID,
				BedNumber: bedNumber(i),
				Status:    models.StatusVacant,
			}
			if err := tx.Create(bed).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			room.Beds = append(room.Beds, *bed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	room.Unit = unit
	return room, nil
}

// ListRooms retrieves the rooms (with beds) of a PG unit.
func (s *unitService) ListRooms(actor Actor, unitID string) ([]models.PGRoom, error) {
	unit, err := s.GetUnitByID(actor, unitID)
	if err != nil {
		return nil, err
	}

	var rooms []models.PGRoom
	if err := s.db.Preload("Beds").
		Where("unit_id = ?", unit.ID).
		Order("room_number").
		Find(&rooms).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rooms, nil
}

// CreateBed adds an extra bed to an existing room.
func (s *unitService) CreateBed(actor Actor, roomID, bedNumber string) (*models.Bed, error) {
	if bedNumber == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "bed number is required")
	}

	room, err := s.getRoom(actor, roomID)
	if err != nil {
		return nil, err
	}

	var count int64
	s.db.Model(&models.Bed{}).
		Where("room_id = ? AND bed_number = ?", room.ID, bedNumber).
		Count(&count)
	if count > 0 {
		return nil, apperrors.ErrDuplicateBed
	}

	bed := &models.Bed{
		RoomID:    room.ID,
		BedNumber: bedNumber,
		Status:    models.StatusVacant,
	}
	if err := s.db.Create(bed).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	bed.Room = room
	return bed, nil
}

// ListBeds retrieves the beds of a room.
func (s *unitService) ListBeds(actor Actor, roomID string) ([]models.Bed, error) {
	room, err := s.getRoom(actor, roomID)
	if err != nil {
		return nil, err
	}

	var beds []models.Bed
	if err := s.db.Where("room_id = ?", room.ID).Order("bed_number").Find(&beds).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return beds, nil
}

func (s *unitService) getRoom(actor Actor, roomID string) (*models.PGRoom, error) {
	var room models.PGRoom
	if err := s.db.Where("id = ?", roomID).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	// Access check runs through the owning unit.
	unit, err := s.GetUnitByID(actor, room.UnitID)
	if err != nil {
		return nil, apperrors.ErrRoomNotFound
	}
	room.Unit = unit
	return &room, nil
}

func bedNumber(i int) string {
	return "Bed " + strconv.Itoa(i)
}
