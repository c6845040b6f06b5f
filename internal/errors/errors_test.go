package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("validation failed",
		ValidationDetail{Field: "name", Message: "required field"},
		ValidationDetail{Field: "phone", Message: "required field"},
	)

	assert.Equal(t, "validation failed", err.Error())
	assert.Len(t, err.Details, 2)

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.NotNil(t, ve)

	_, ok = IsValidationError(errors.New("other"))
	assert.False(t, ok)
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("product not found")

	assert.Equal(t, "product not found", err.Error())

	nfe, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.Equal(t, "product not found", nfe.Message)

	_, ok = IsNotFoundError(errors.New("other"))
	assert.False(t, ok)
}

func TestEmptyCartError(t *testing.T) {
	err := NewEmptyCartError("cart is empty")

	assert.Equal(t, "cart is empty", err.Error())

	_, ok := IsEmptyCartError(err)
	assert.True(t, ok)

	_, ok = IsEmptyCartError(NewNotFoundError("x"))
	assert.False(t, ok)
}

func TestIncompleteProfileError(t *testing.T) {
	err := NewIncompleteProfileError("profile is incomplete", "name", "address.city")

	assert.Equal(t, "profile is incomplete", err.Error())
	assert.Equal(t, []string{"name", "address.city"}, err.MissingFields)

	ipe, ok := IsIncompleteProfileError(err)
	assert.True(t, ok)
	assert.Len(t, ipe.MissingFields, 2)

	_, ok = IsIncompleteProfileError(errors.New("other"))
	assert.False(t, ok)
}

func TestCatalogLoadError(t *testing.T) {
	cause := errors.New("no such file")
	err := NewCatalogLoadError("reading catalog document", cause)

	assert.Contains(t, err.Error(), "reading catalog document")
	assert.Contains(t, err.Error(), "no such file")
	assert.True(t, errors.Is(err, cause))

	_, ok := IsCatalogLoadError(err)
	assert.True(t, ok)
}

func TestCorruptProfileError(t *testing.T) {
	cause := errors.New("invalid character")
	err := NewCorruptProfileError("stored profile is unreadable", cause)

	assert.Contains(t, err.Error(), "stored profile is unreadable")
	assert.Equal(t, cause, err.Unwrap())

	_, ok := IsCorruptProfileError(err)
	assert.True(t, ok)
}

func TestConflictError(t *testing.T) {
	err := NewConflictError("no order awaiting confirmation")

	_, ok := IsConflictError(err)
	assert.True(t, ok)

	_, ok = IsConflictError(errors.New("other"))
	assert.False(t, ok)
}

func TestInternalError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternalError("saving profile", cause)

	assert.Contains(t, err.Error(), "saving profile")
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, errors.Is(err, cause))

	bare := NewInternalError("no cause", nil)
	assert.Equal(t, "no cause", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
