package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreConfig_NormalizeFillsEveryGap(t *testing.T) {
	normalized := StoreConfig{}.Normalize()

	assert.Equal(t, DefaultEstablishmentName, normalized.EstablishmentName)
	assert.Equal(t, DefaultWhatsAppContact, normalized.WhatsAppContact)
	assert.Equal(t, DefaultDeliveryFee, normalized.DeliveryFee)
	assert.Equal(t, DefaultDurationMin, normalized.DeliveryMinMinutes)
	assert.Equal(t, DefaultDurationMax, normalized.DeliveryMaxMinutes)
	assert.Equal(t, DefaultDurationMin, normalized.PickupMinMinutes)
	assert.Equal(t, DefaultDurationMax, normalized.PickupMaxMinutes)
}

func TestStoreConfig_NormalizeKeepsConfiguredValues(t *testing.T) {
	cfg := StoreConfig{
		EstablishmentName:  "Bar do Zé",
		WhatsAppContact:    "+5521988887777",
		DeliveryFee:        7.50,
		DeliveryMinMinutes: 20,
		DeliveryMaxMinutes: 35,
		PickupMinMinutes:   10,
		PickupMaxMinutes:   15,
	}

	assert.Equal(t, cfg, cfg.Normalize())
}

func TestStoreConfig_NormalizeTreatsZeroFeeAsAbsent(t *testing.T) {
	cfg := StoreConfig{DeliveryFee: 0}.Normalize()
	assert.Equal(t, DefaultDeliveryFee, cfg.DeliveryFee)

	cfg = StoreConfig{DeliveryFee: -1}.Normalize()
	assert.Equal(t, DefaultDeliveryFee, cfg.DeliveryFee)
}

func TestStoreConfig_FeeFor(t *testing.T) {
	cfg := DefaultStoreConfig()

	assert.Equal(t, cfg.DeliveryFee, cfg.FeeFor(ModeDelivery))
	assert.Equal(t, 0.0, cfg.FeeFor(ModePickup))
}

func TestStoreConfig_DurationBounds(t *testing.T) {
	cfg := StoreConfig{
		DeliveryMinMinutes: 30,
		DeliveryMaxMinutes: 45,
		PickupMinMinutes:   15,
		PickupMaxMinutes:   25,
	}

	min, max := cfg.DurationBounds(ModeDelivery)
	assert.Equal(t, 30, min)
	assert.Equal(t, 45, max)

	min, max = cfg.DurationBounds(ModePickup)
	assert.Equal(t, 15, min)
	assert.Equal(t, 25, max)
}
