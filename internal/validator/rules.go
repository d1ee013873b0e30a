package validator

import (
	"log"

	"brandmatch_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules adds the domain validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-campaign-status", validateCampaignStatus)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-payout-status", validatePayoutStatus)
	mustRegister("is-currency-code", validateCurrencyCode)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is handled by 'required'
	}
	switch models.UserRole(value) {
	case models.UserRoleCreator, models.UserRoleBrand, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validateCampaignStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.CampaignStatus(value) {
	case models.CampaignStatusActive, models.CampaignStatusClosed, models.CampaignStatusCompleted:
		return true
	default:
		return false
	}
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ApplicationStatus(value) {
	case models.ApplicationStatusPending, models.ApplicationStatusAccepted, models.ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

func validatePayoutStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.PayoutStatus(value) {
	case models.PayoutStatusPending, models.PayoutStatusSuccess, models.PayoutStatusFailed:
		return true
	default:
		return false
	}
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	if len(value) != 3 {
		return false
	}
	for _, r := range value {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
