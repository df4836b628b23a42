// Package errors provides custom error types for the RentDesk API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
	ErrUserLocked         = &AppError{Code: "USER_LOCKED", Message: "User is temporarily locked", StatusCode: http.StatusLocked}
	ErrOwnerOnly          = &AppError{Code: "OWNER_ONLY", Message: "Only account owners may perform this action", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User & account errors.
var (
	ErrUserNotFound         = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail       = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
	ErrAccountNotFound      = &AppError{Code: "ACCOUNT_NOT_FOUND", Message: "Account not found", StatusCode: http.StatusNotFound}
	ErrBuildingLimitReached = &AppError{Code: "BUILDING_LIMIT_EXCEEDED", Message: "Account building limit reached", StatusCode: http.StatusForbidden}
	ErrManagerLimitReached  = &AppError{Code: "MANAGER_LIMIT_EXCEEDED", Message: "Account manager limit reached", StatusCode: http.StatusForbidden}
	ErrCannotDeleteOwner    = &AppError{Code: "CANNOT_DELETE_OWNER", Message: "Account owners cannot be removed", StatusCode: http.StatusBadRequest}
)

// Building & access errors.
var (
	ErrBuildingNotFound  = &AppError{Code: "BUILDING_NOT_FOUND", Message: "Building not found", StatusCode: http.StatusNotFound}
	ErrAccessNotFound    = &AppError{Code: "ACCESS_NOT_FOUND", Message: "Building access grant not found", StatusCode: http.StatusNotFound}
	ErrDuplicateAccess   = &AppError{Code: "DUPLICATE_ACCESS", Message: "Manager already has access to this building", StatusCode: http.StatusConflict}
	ErrGrantToOwner      = &AppError{Code: "GRANT_TO_OWNER", Message: "Owners already have access to all buildings", StatusCode: http.StatusBadRequest}
	ErrCrossAccountGrant = &AppError{Code: "CROSS_ACCOUNT_GRANT", Message: "User and building must belong to the same account", StatusCode: http.StatusBadRequest}
	ErrBuildingHasUnits  = &AppError{Code: "BUILDING_HAS_UNITS", Message: "Building still has units", StatusCode: http.StatusConflict}
)

// Unit, room & bed errors.
var (
	ErrUnitNotFound     = &AppError{Code: "UNIT_NOT_FOUND", Message: "Unit not found", StatusCode: http.StatusNotFound}
	ErrDuplicateUnit    = &AppError{Code: "DUPLICATE_UNIT", Message: "A unit with this number already exists in the building", StatusCode: http.StatusConflict}
	ErrRoomNotFound     = &AppError{Code: "ROOM_NOT_FOUND", Message: "PG room not found", StatusCode: http.StatusNotFound}
	ErrDuplicateRoom    = &AppError{Code: "DUPLICATE_ROOM", Message: "A room with this number already exists in the unit", StatusCode: http.StatusConflict}
	ErrBedNotFound      = &AppError{Code: "BED_NOT_FOUND", Message: "Bed not found", StatusCode: http.StatusNotFound}
	ErrDuplicateBed     = &AppError{Code: "DUPLICATE_BED", Message: "A bed with this number already exists in the room", StatusCode: http.StatusConflict}
	ErrNotPGUnit        = &AppError{Code: "NOT_PG_UNIT", Message: "Rooms can only be added to PG units", StatusCode: http.StatusBadRequest}
	ErrUnitHasOccupancy = &AppError{Code: "UNIT_HAS_OCCUPANCY", Message: "Unit has an active occupancy", StatusCode: http.StatusConflict}
)

// Tenant errors.
var (
	ErrTenantNotFound     = &AppError{Code: "TENANT_NOT_FOUND", Message: "Tenant not found", StatusCode: http.StatusNotFound}
	ErrTenantHasOccupancy = &AppError{Code: "TENANT_HAS_OCCUPANCY", Message: "Tenant has an active occupancy", StatusCode: http.StatusConflict}
	ErrDocumentNotFound   = &AppError{Code: "DOCUMENT_NOT_FOUND", Message: "Tenant document not found", StatusCode: http.StatusNotFound}
)

// Occupancy errors.
var (
	ErrOccupancyNotFound  = &AppError{Code: "OCCUPANCY_NOT_FOUND", Message: "Occupancy not found", StatusCode: http.StatusNotFound}
	ErrUnitOccupied       = &AppError{Code: "UNIT_OCCUPIED", Message: "Unit is currently being edited or already occupied. Please retry.", StatusCode: http.StatusConflict}
	ErrBedOccupied        = &AppError{Code: "BED_OCCUPIED", Message: "Bed is currently being edited or already occupied. Please retry.", StatusCode: http.StatusConflict}
	ErrOccupancyInactive  = &AppError{Code: "OCCUPANCY_INACTIVE", Message: "Occupancy is already inactive", StatusCode: http.StatusBadRequest}
	ErrUnitOrBedRequired  = &AppError{Code: "UNIT_OR_BED_REQUIRED", Message: "Either unit (for flat) or bed (for PG) must be set", StatusCode: http.StatusBadRequest}
	ErrUnitAndBedSet      = &AppError{Code: "UNIT_AND_BED_SET", Message: "Cannot set both unit and bed", StatusCode: http.StatusBadRequest}
	ErrNotFlatUnit        = &AppError{Code: "NOT_FLAT_UNIT", Message: "Unit must be of type FLAT", StatusCode: http.StatusBadRequest}
	ErrNoticeAlreadyGiven = &AppError{Code: "NOTICE_ALREADY_GIVEN", Message: "Notice has already been given for this occupancy", StatusCode: http.StatusBadRequest}
)

// Rent errors.
var (
	ErrRentNotFound  = &AppError{Code: "RENT_NOT_FOUND", Message: "Rent record not found", StatusCode: http.StatusNotFound}
	ErrDuplicateRent = &AppError{Code: "DUPLICATE_RENT", Message: "A rent record already exists for this occupancy and month", StatusCode: http.StatusConflict}
)

// Issue errors.
var (
	ErrIssueNotFound = &AppError{Code: "ISSUE_NOT_FOUND", Message: "Issue not found", StatusCode: http.StatusNotFound}
)
