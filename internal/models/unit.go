package models

// UnitType distinguishes full flats from PG (paying guest) units.
type UnitType string

const (
	UnitTypeFlat UnitType = "FLAT"
	UnitTypePG   UnitType = "PG"
)

// OccupancyStatus is the derived VACANT/OCCUPIED status of a unit or bed.
type OccupancyStatus string

const (
	StatusVacant   OccupancyStatus = "VACANT"
	StatusOccupied OccupancyStatus = "OCCUPIED"
)

// Unit represents a rentable flat or PG unit inside a building.
type Unit struct {
	Base
	AccountID  string `gorm:"type:uuid;not null;index:idx_units_account_status" json:"account_id"`
	BuildingID string `gorm:"type:uuid;not null;uniqueIndex:idx_units_building_number;index:idx_units_building_status" json:"building_id"`
	UnitNumber string `gorm:"size:50;not null;uniqueIndex:idx_units_building_number" json:"unit_number"`

	UnitType UnitType `gorm:"size:10;not null" json:"unit_type"`
	// BHKType applies to flats only, e.g. "1BHK", "2BHK".
	BHKType string `gorm:"size:10" json:"bhk_type,omitempty"`

	// Amounts in minor currency units.
	ExpectedRent int64 `gorm:"not null" json:"expected_rent"`
	Deposit      int64 `gorm:"not null;default:0" json:"deposit"`

	Status OccupancyStatus `gorm:"size:20;not null;default:'VACANT';index:idx_units_account_status;index:idx_units_building_status" json:"status"`

	Building *Building `gorm:"foreignKey:BuildingID" json:"building,omitempty"`
	Rooms    []PGRoom  `gorm:"foreignKey:UnitID" json:"rooms,omitempty"`
}

// PGRoom represents a room inside a PG unit.
type PGRoom struct {
	Base
	UnitID     string `gorm:"type:uuid;not null;uniqueIndex:idx_rooms_unit_number" json:"unit_id"`
	RoomNumber string `gorm:"size:20;not null;uniqueIndex:idx_rooms_unit_number" json:"room_number"`
	// SharingType is the number of beds in the room.
	SharingType int `gorm:"not null" json:"sharing_type"`

	Unit *Unit `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	Beds []Bed `gorm:"foreignKey:RoomID" json:"beds,omitempty"`
}

// Bed represents a single bed in a PG room.
type Bed struct {
	Base
	RoomID    string          `gorm:"type:uuid;not null;uniqueIndex:idx_beds_room_number" json:"room_id"`
	BedNumber string          `gorm:"size:10;not null;uniqueIndex:idx_beds_room_number" json:"bed_number"`
	Status    OccupancyStatus `gorm:"size:20;not null;default:'VACANT';index" json:"status"`

	Room *PGRoom `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}
