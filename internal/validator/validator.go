// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("plan", validatePlan)
		_ = v.RegisterValidation("user_role", validateUserRole)
		_ = v.RegisterValidation("unit_type", validateUnitType)
		_ = v.RegisterValidation("issue_status", validateIssueStatus)
		_ = v.RegisterValidation("issue_priority", validateIssuePriority)
		_ = v.RegisterValidation("rent_status", validateRentStatus)
		_ = v.RegisterValidation("document_type", validateDocumentType)
		_ = v.RegisterValidation("verification_status", validateVerificationStatus)
	}
}

func validatePlan(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "FREE", "BASIC", "PRO", "ENTERPRISE":
		return true
	}
	return false
}

func validateUserRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "OWNER", "MANAGER":
		return true
	}
	return false
}

func validateUnitType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "FLAT", "PG":
		return true
	}
	return false
}

func validateIssueStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "OPEN", "ASSIGNED", "IN_PROGRESS", "RESOLVED":
		return true
	}
	return false
}

func validateIssuePriority(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "LOW", "MEDIUM", "HIGH", "URGENT":
		return true
	}
	return false
}

func validateRentStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "PAID", "PARTIAL", "PENDING":
		return true
	}
	return false
}

func validateDocumentType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "AADHAAR", "PAN", "PASSPORT", "DRIVING_LICENSE", "VOTER_ID",
		"POLICE_VERIFICATION", "RENT_AGREEMENT", "PHOTO", "ADDRESS_PROOF",
		"EMPLOYMENT_PROOF", "OTHER":
		return true
	}
	return false
}

func validateVerificationStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "PENDING", "VERIFIED", "REJECTED", "EXPIRED":
		return true
	}
	return false
}
