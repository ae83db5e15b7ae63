package request

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/koberec/eshop/internal/validate"
)

func TestRegisterValidation(t *testing.T) {
	v := validate.New()

	assert.NoError(t, v.Struct(Register{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "password123",
	}))
	assert.Error(t, v.Struct(Register{Name: "Jo", Email: "jane@example.com", Password: "password123"}))
	assert.Error(t, v.Struct(Register{Name: "Jane Doe", Email: "not-an-email", Password: "password123"}))
	assert.Error(t, v.Struct(Register{Name: "Jane Doe", Email: "jane@example.com", Password: "short"}))
}

func TestLoginValidation(t *testing.T) {
	v := validate.New()

	assert.NoError(t, v.Struct(Login{Email: "jane@example.com", Password: "password123"}))
	assert.Error(t, v.Struct(Login{Email: "", Password: "password123"}))
	assert.Error(t, v.Struct(Login{Email: "jane@example.com", Password: ""}))
}
