package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	ID       string  `validate:"required"`
	Title    string  `validate:"max=10"`
	Price    float64 `validate:"gte=0"`
	Quantity int     `validate:"gte=0,lte=100"`
}

func TestValidate_Valid(t *testing.T) {
	err := Validate(sampleRequest{ID: "p1", Title: "Widget", Price: 9.99, Quantity: 2})
	assert.NoError(t, err)
}

func TestValidate_RequiredField(t *testing.T) {
	err := Validate(sampleRequest{Price: 10})

	require.Error(t, err)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Fields(), "ID")
	assert.Equal(t, "is required", valErr.Fields()["ID"])
}

func TestValidate_MultipleFailures(t *testing.T) {
	err := Validate(sampleRequest{Title: "this title is way too long", Price: -1})

	require.Error(t, err)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)

	fields := valErr.Fields()
	assert.Len(t, fields, 3)
	assert.Contains(t, fields["Title"], "at most 10")
	assert.Contains(t, fields["Price"], "greater than or equal to 0")
}

func TestValidationError_Message(t *testing.T) {
	err := Validate(sampleRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 'ID' is required")
}
