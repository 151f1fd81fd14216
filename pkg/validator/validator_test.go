package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string  `json:"name" validate:"required,max=5"`
	Email  string  `json:"email" validate:"omitempty,email"`
	Rating float64 `json:"rating" validate:"gte=1,lte=5"`
	Code   string  `json:"code" validate:"omitempty,len=2"`
	Role   string  `json:"role" validate:"omitempty,oneof=User Administrator"`
}

func TestValidate_OK(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Validate(&sample{Name: "Inn", Rating: 3, Code: "GB", Role: "User"}))
}

func TestFormatValidationErrors_UsesJSONNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sample{Name: "", Email: "nope", Rating: 9, Code: "GBR", Role: "Root"})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "name is required", errs["name"])
	assert.Equal(t, "email must be a valid email address", errs["email"])
	assert.Equal(t, "rating must be less than or equal to 5", errs["rating"])
	assert.Equal(t, "code must be exactly 2 characters", errs["code"])
	assert.Equal(t, "role must be one of: User Administrator", errs["role"])
}

func TestFormatValidationErrors_NonValidationError(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.FormatValidationErrors(errors.New("boom")))
}
