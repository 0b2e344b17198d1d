// Package app wires the cart core for an embedding caller: configuration,
// logging and telemetry are built here and injected into the registry.
package app

import (
	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xenking/kart-ticket/internal/domain/cart"
)

// NewLogger builds a production JSON logger at the configured level.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "parse log level")
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	lg, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return lg, nil
}

// NewRegistry creates a cart registry configured from cfg. A nil meter
// provider leaves the registry on the no-op provider.
func NewRegistry(lg *zap.Logger, mp metric.MeterProvider, cfg *Config) (*cart.Registry, error) {
	lg.Info("Initializing cart registry", zap.Int32("ticket_places", cfg.Ticket.Places))

	r, err := cart.NewRegistry(
		cart.WithLogger(lg.Named("cart")),
		cart.WithMeterProvider(mp),
		cart.WithTicketPlaces(cfg.Ticket.Places),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create registry")
	}
	return r, nil
}
