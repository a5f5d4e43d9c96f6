package validator

import (
	"testing"

	"collabase/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type skillPayload struct {
	Skills []string `binding:"required,min=1,dive,skill"`
}

type rolePayload struct {
	Role string `binding:"required,role"`
}

func engine(t *testing.T) *validator.Validate {
	t.Helper()
	RegisterCustomValidators()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return v
}

func TestSkillValidator(t *testing.T) {
	v := engine(t)

	tests := []struct {
		name   string
		skills []string
		valid  bool
	}{
		{"catalog skill", []string{"Backend"}, true},
		{"several catalog skills", []string{"Frontend", "UI/UX Design", "ML/AI"}, true},
		{"slash skill", []string{"Testing/QA"}, true},
		{"unknown skill", []string{"Cooking"}, false},
		{"wrong case", []string{"backend"}, false},
		{"mixed valid and invalid", []string{"Backend", "Astrology"}, false},
		{"empty string", []string{""}, false},
		{"empty list", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(skillPayload{Skills: tt.skills})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRoleValidator(t *testing.T) {
	v := engine(t)

	for _, role := range models.Roles {
		assert.NoError(t, v.Struct(rolePayload{Role: role}), "role: %q", role)
	}

	assert.Error(t, v.Struct(rolePayload{Role: "Wizard"}))
	assert.Error(t, v.Struct(rolePayload{Role: "developer"}))
}

func TestRegisterCustomValidators(t *testing.T) {
	t.Run("does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			RegisterCustomValidators()
		})
	})
}
