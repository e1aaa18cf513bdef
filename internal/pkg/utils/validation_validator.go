package utils

import (
	"pulseflow-service/internal/app/services/core/encounters"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var uhidPattern = regexp.MustCompile(`^PF\d{4,}$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("uhid", validateUHID)
	validate.RegisterValidation("encounterstatus", validateEncounterStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateUHID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return uhidPattern.MatchString(value)
}

// validateEncounterStatus defers to the state machine's vocabulary so the
// DTO layer and the transition table cannot drift apart.
func validateEncounterStatus(fl validator.FieldLevel) bool {
	return encounters.IsValidStatus(fl.Field().String())
}
