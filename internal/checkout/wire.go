package checkout

import "go.uber.org/zap"

func NewModule(cart CartSession, profiles ProfileLoader, config ConfigSource, logger *zap.Logger) (*Controller, *Checkout) {
	machine := NewCheckout(cart, profiles, config, logger)
	return NewController(machine, logger), machine
}
