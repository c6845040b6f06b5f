package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFulfillmentMode_Label(t *testing.T) {
	assert.Equal(t, "Delivery", ModeDelivery.Label())
	assert.Equal(t, "Retirada no Local", ModePickup.Label())
}

func TestParseFulfillmentMode(t *testing.T) {
	mode, ok := ParseFulfillmentMode("DELIVERY")
	assert.True(t, ok)
	assert.Equal(t, ModeDelivery, mode)

	mode, ok = ParseFulfillmentMode("PICKUP")
	assert.True(t, ok)
	assert.Equal(t, ModePickup, mode)

	_, ok = ParseFulfillmentMode("delivery")
	assert.False(t, ok)

	_, ok = ParseFulfillmentMode("")
	assert.False(t, ok)
}
