// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"cfcs/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom validators on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("category", validateCategory)
	_ = v.RegisterValidation("flow", validateFlow)
	_ = v.RegisterValidation("share_target", validateShareTarget)
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

// validateCategory accepts catalog entries that a transaction may carry,
// which excludes the separator.
func validateCategory(fl validator.FieldLevel) bool {
	flow, ok := models.FlowOf(fl.Field().String())
	return ok && flow.Valid()
}

func validateFlow(fl validator.FieldLevel) bool {
	return models.Flow(fl.Field().String()).Valid()
}

func validateShareTarget(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "whatsapp", "telegram":
		return true
	}
	return false
}
