package cart

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// DefaultTicketPlaces is the number of decimal places AverageTicket rounds to.
const DefaultTicketPlaces int32 = 2

const meterName = "github.com/xenking/kart-ticket/internal/domain/cart"

// RegistryOption configures a Registry.
type RegistryOption func(*registryOptions)

type registryOptions struct {
	lg           *zap.Logger
	meter        metric.MeterProvider
	ticketPlaces int32
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(lg *zap.Logger) RegistryOption {
	return func(o *registryOptions) {
		if lg != nil {
			o.lg = lg
		}
	}
}

// WithMeterProvider sets the meter provider used for registry instruments.
func WithMeterProvider(mp metric.MeterProvider) RegistryOption {
	return func(o *registryOptions) {
		if mp != nil {
			o.meter = mp
		}
	}
}

// WithTicketPlaces sets the rounding precision of AverageTicket.
func WithTicketPlaces(places int32) RegistryOption {
	return func(o *registryOptions) {
		o.ticketPlaces = places
	}
}

// Registry keeps at most one Cart per customer.
//
// Registry is not safe for concurrent use; callers serving several clients
// must guard it with their own lock.
type Registry struct {
	carts  map[string]*Cart
	lg     *zap.Logger
	places int32

	created     metric.Int64Counter
	invalidated metric.Int64Counter
	active      metric.Int64UpDownCounter
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...RegistryOption) (*Registry, error) {
	o := registryOptions{
		lg:           zap.NewNop(),
		meter:        noop.NewMeterProvider(),
		ticketPlaces: DefaultTicketPlaces,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.ticketPlaces < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "ticket places %d is negative", o.ticketPlaces)
	}

	meter := o.meter.Meter(meterName)
	created, err := meter.Int64Counter("cart.registry.created",
		metric.WithDescription("Carts created by the registry"),
		metric.WithUnit("{cart}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create counter")
	}
	invalidated, err := meter.Int64Counter("cart.registry.invalidated",
		metric.WithDescription("Carts removed from the registry"),
		metric.WithUnit("{cart}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalidate counter")
	}
	active, err := meter.Int64UpDownCounter("cart.registry.active",
		metric.WithDescription("Carts currently registered"),
		metric.WithUnit("{cart}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "active counter")
	}

	return &Registry{
		carts:       make(map[string]*Cart),
		lg:          o.lg,
		places:      o.ticketPlaces,
		created:     created,
		invalidated: invalidated,
		active:      active,
	}, nil
}

// Create returns the cart registered for customerID, creating and registering
// a new one if there is none. Repeated calls return the same *Cart.
func (r *Registry) Create(customerID string) (*Cart, error) {
	if c, ok := r.carts[customerID]; ok {
		return c, nil
	}

	c, err := New(customerID)
	if err != nil {
		r.lg.Warn("Rejected cart", zap.String("customer_id", customerID), zap.Error(err))
		return nil, errors.Wrap(err, "new cart")
	}
	r.carts[customerID] = c

	ctx := context.Background()
	r.created.Add(ctx, 1)
	r.active.Add(ctx, 1)
	r.lg.Debug("Cart created", zap.String("customer_id", customerID))
	return c, nil
}

// Get returns the cart registered for customerID, if any.
func (r *Registry) Get(customerID string) (*Cart, bool) {
	c, ok := r.carts[customerID]
	return c, ok
}

// Len returns the number of registered carts.
func (r *Registry) Len() int { return len(r.carts) }

// Invalidate removes the cart of customerID, e.g. on checkout or session
// expiry, and reports whether one was registered.
func (r *Registry) Invalidate(customerID string) bool {
	if _, ok := r.carts[customerID]; !ok {
		return false
	}
	delete(r.carts, customerID)

	ctx := context.Background()
	r.invalidated.Add(ctx, 1)
	r.active.Add(ctx, -1)
	r.lg.Debug("Cart invalidated", zap.String("customer_id", customerID))
	return true
}

// AverageTicket returns the mean cart total across all registered carts,
// rounded half-up to the configured number of decimal places.
func (r *Registry) AverageTicket() (decimal.Decimal, error) {
	if len(r.carts) == 0 {
		return decimal.Zero, ErrEmptyRegistry
	}

	sum := decimal.Zero
	for _, c := range r.carts {
		sum = sum.Add(c.Total())
	}
	avg := sum.DivRound(decimal.NewFromInt(int64(len(r.carts))), r.places)

	r.lg.Debug("Average ticket",
		zap.Int("carts", len(r.carts)),
		zap.Stringer("sum", sum),
		zap.Stringer("average", avg),
	)
	return avg, nil
}
