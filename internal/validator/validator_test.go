package validator_test

import (
	"testing"

	"storefront/internal/validator"

	"github.com/stretchr/testify/assert"
)

type form struct {
	ProductID string `validate:"notblank,max=8"`
	Action    string `validate:"oneof=update delete"`
}

func TestValidator_Struct(t *testing.T) {
	v := validator.New()

	assert.NoError(t, v.Struct(form{ProductID: "p1", Action: "update"}))

	for _, f := range []form{
		{ProductID: "", Action: "update"},
		{ProductID: "   ", Action: "update"},
		{ProductID: "p123456789", Action: "update"},
		{ProductID: "p1", Action: "explode"},
	} {
		assert.ErrorIs(t, v.Struct(f), validator.ErrInvalidInput, "%+v", f)
	}
}

func TestValidator_Var(t *testing.T) {
	v := validator.New()

	assert.NoError(t, v.Var("shirt", "max=500"))
	assert.ErrorIs(t, v.Var(" ", "notblank"), validator.ErrInvalidInput)
}
