package e

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	err := Wrap("CartUseCase.AddItem", ErrProductNotFound)

	assert.EqualError(t, err, "CartUseCase.AddItem: product not found")
	assert.True(t, errors.Is(err, ErrProductNotFound))
}

func TestValidationError(t *testing.T) {
	err := Wrap("op", NewValidationError("customerEmail", "Enter a valid email address."))

	assert.True(t, errors.Is(err, ErrInvalidCheckoutInfo))

	vErr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "customerEmail", vErr.Field)
	assert.Equal(t, "Enter a valid email address.", vErr.Message)

	_, ok = AsValidationError(ErrEmptyCart)
	assert.False(t, ok)
}
