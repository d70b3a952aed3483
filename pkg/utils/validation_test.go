package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email string `validate:"required,email"`
	Rows  int    `validate:"required,gt=0"`
	Name  string `validate:"omitempty,min=3"`
}

func TestValidateStructOK(t *testing.T) {
	errs := ValidateStruct(&sampleRequest{Email: "user@example.com", Rows: 5})
	assert.Nil(t, errs)
}

func TestValidateStructCollectsFieldErrors(t *testing.T) {
	errs := ValidateStruct(&sampleRequest{Email: "not-an-email", Rows: 0, Name: "ab"})

	assert.Len(t, errs, 3)
	assert.Equal(t, "Invalid email format", errs["Email"])
	assert.Equal(t, "This field is required", errs["Rows"])
	assert.Equal(t, "Minimum is 3", errs["Name"])
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 10, ParseInt("", 10))
	assert.Equal(t, 10, ParseInt("abc", 10))
	assert.Equal(t, 10, ParseInt("0", 10))
	assert.Equal(t, 3, ParseInt("3", 10))
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 2, CalculateTotalPages(11, 10))
	assert.Equal(t, 0, CalculateTotalPages(5, 0))
}
