// Package validator registers custom binding validators with gin.
package validator

import (
	"collabase/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validateSkill validates that a string is one of the catalog skills.
func validateSkill(fl validator.FieldLevel) bool {
	return models.ValidSkill(fl.Field().String())
}

// validateRole validates that a string is one of the catalog roles.
func validateRole(fl validator.FieldLevel) bool {
	for _, role := range models.Roles {
		if role == fl.Field().String() {
			return true
		}
	}
	return false
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("skill", validateSkill)
		_ = v.RegisterValidation("role", validateRole)
	}
}
