package checkout

import (
	"context"
	"sync"

	"risorte/internal/errors"

	"go.uber.org/zap"
)

type State string

const (
	StateIdle            State = "IDLE"
	StateValidating      State = "VALIDATING"
	StateProfileRequired State = "PROFILE_REQUIRED"
	StateConfirming      State = "CONFIRMING"
	StateProcessing      State = "PROCESSING"
	StateCompleted       State = "COMPLETED"
)

// Checkout drives the order hand-off state machine:
//
//	Idle -> Validating -> {ProfileRequired | Confirming} -> Processing -> Completed
//
// Cancel returns to Idle from any cancellable state without touching the
// cart. Validating and Processing are transient: both resolve within a
// single call while the lock is held.
type Checkout struct {
	mu        sync.Mutex
	state     State
	cart      CartSession
	profiles  ProfileLoader
	config    ConfigSource
	logger    *zap.Logger
	pending   *Order
	completed *Order
}

func NewCheckout(cart CartSession, profiles ProfileLoader, config ConfigSource, logger *zap.Logger) *Checkout {
	return &Checkout{
		state:    StateIdle,
		cart:     cart,
		profiles: profiles,
		config:   config,
		logger:   logger,
	}
}

func (c *Checkout) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Begin validates the session and, on success, composes the order preview
// and moves to Confirming. An empty cart rejects and stays Idle; an
// incomplete profile moves to ProfileRequired so the caller can collect one
// and call Begin again.
func (c *Checkout) Begin(ctx context.Context) (*Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = StateValidating

	if c.cart.IsEmpty() {
		c.state = StateIdle
		return nil, errors.NewEmptyCartError("cart is empty")
	}

	p, err := c.profiles.Load(ctx)
	if err != nil {
		c.state = StateIdle
		return nil, err
	}

	mode := c.cart.Mode()
	if missing := p.MissingFields(mode); len(missing) > 0 {
		c.state = StateProfileRequired
		c.logger.Info("checkout needs profile data",
			zap.String("mode", string(mode)), zap.Strings("missing", missing))
		return nil, errors.NewIncompleteProfileError("profile is incomplete for checkout", missing...)
	}

	order := Compose(c.cart.Lines(), p, mode, c.config.StoreConfig())
	c.pending = &order
	c.state = StateConfirming

	c.logger.Info("checkout ready for confirmation",
		zap.String("mode", string(mode)),
		zap.Int("lineCount", len(order.Lines)),
		zap.Float64("total", order.Total))

	return &order, nil
}

// Confirm hands the order off: the message and link are composed from the
// live cart, the ledger is cleared, and the machine lands in Completed.
// Only legal from Confirming.
func (c *Checkout) Confirm(ctx context.Context) (*Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateConfirming {
		return nil, errors.NewConflictError("no order awaiting confirmation")
	}

	c.state = StateProcessing

	// The cart can mutate between Begin and Confirm; recompose so the
	// handed-off message always matches the ledger.
	if c.cart.IsEmpty() {
		c.state = StateIdle
		c.pending = nil
		return nil, errors.NewEmptyCartError("cart is empty")
	}

	p, err := c.profiles.Load(ctx)
	if err != nil {
		c.state = StateConfirming
		return nil, err
	}

	order := Compose(c.cart.Lines(), p, c.cart.Mode(), c.config.StoreConfig())

	c.cart.Clear()
	c.pending = nil
	c.completed = &order
	c.state = StateCompleted

	c.logger.Info("order handed off",
		zap.String("mode", string(order.Mode)),
		zap.Int("lineCount", len(order.Lines)),
		zap.Float64("total", order.Total))

	return &order, nil
}

// Cancel returns to Idle without mutating the cart.
func (c *Checkout) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = nil
	c.state = StateIdle
}

// Pending is the preview composed by Begin, if the machine is Confirming.
func (c *Checkout) Pending() *Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// LastCompleted is the most recently handed-off order, kept so its QR code
// can still be rendered after the cart is cleared.
func (c *Checkout) LastCompleted() *Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.completed
}
