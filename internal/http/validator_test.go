package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct_ISBN(t *testing.T) {
	type payload struct {
		ISBN string `json:"isbn" validate:"required,isbn"`
	}

	valid := []string{
		"9780441013593",
		"978-0-441-01359-3",
		"0441013597",
		"043942089X",
	}
	for _, isbn := range valid {
		assert.Nil(t, ValidateStruct(payload{ISBN: isbn}), "isbn %s", isbn)
	}

	invalid := []string{
		"",
		"12345",
		"97804410135931",
		"abcdefghijklm",
	}
	for _, isbn := range invalid {
		assert.NotNil(t, ValidateStruct(payload{ISBN: isbn}), "isbn %s", isbn)
	}
}

func TestValidateStruct_NLCode(t *testing.T) {
	type payload struct {
		NLCode string `json:"nl_code" validate:"required,nl_code"`
	}

	assert.Nil(t, ValidateStruct(payload{NLCode: "NL1"}))
	assert.Nil(t, ValidateStruct(payload{NLCode: "NL004211"}))

	for _, code := range []string{"nl123", "NL", "XL123", "NL12a", ""} {
		assert.NotNil(t, ValidateStruct(payload{NLCode: code}), "code %q", code)
	}
}

func TestValidateStruct_FieldNamesAreLowerCamel(t *testing.T) {
	type payload struct {
		Username string `json:"username" validate:"required"`
	}

	errs := ValidateStruct(payload{})
	require.Len(t, errs, 1)
	assert.Equal(t, "username", errs[0].Field)
	assert.Contains(t, errs[0].Message, "required")
}
