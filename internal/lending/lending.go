package lending

import (
	"context"
	"errors"
	"fmt"
	"library/internal/config"
	"library/pkg/domain"
	"library/pkg/logger"
	"library/pkg/metrics"
	"library/pkg/storage"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "library/lending"

// Options configure the lending rules.
type Options struct {
	// Policy holds the numeric limits of the rules.
	Policy Policy
	// Location is the time zone whose calendar days are counted when deciding
	// whether a loan is overdue. Defaults to time.Local.
	Location *time.Location
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) (Options, error) {
	policy, err := NewPolicy(cfg)
	if err != nil {
		return Options{}, err
	}

	loc, err := time.LoadLocation(cfg.Lending.TimeZone)
	if err != nil {
		return Options{}, fmt.Errorf("could not load lending time zone: %w", err)
	}

	return Options{
		Policy:   policy,
		Location: loc,
	}, nil
}

// lending is the concrete implementation of the Lending interface.
type lending struct {
	options Options
	storage storage.Storage
	tracer  trace.Tracer
	orders  *metrics.Orders
}

// New creates a Lending instance backed by the provided storage. The policy
// in options is copied, so later changes to the caller's value have no effect.
func New(storage storage.Storage, options Options) (Lending, error) {
	if err := options.Policy.Validate(); err != nil {
		return nil, err
	}
	if options.Location == nil {
		options.Location = time.Local
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	options.Policy = options.Policy.clone()

	orders, err := metrics.NewOrders(otel.Meter(instrumentationName))
	if err != nil {
		return nil, err
	}

	return &lending{
		options: options,
		storage: storage,
		tracer:  otel.Tracer(instrumentationName),
		orders:  orders,
	}, nil
}

// observe runs an order inside a span, counts its outcome and logs the
// result. The error of fn is returned unchanged.
func (l *lending) observe(ctx context.Context,
	orderType domain.OrderType,
	userID domain.UserID,
	itemIDs []domain.ItemID,
	fn func(ctx context.Context) error) error {
	ctx, span := l.tracer.Start(ctx, "lending."+string(orderType), trace.WithAttributes(
		attribute.Int64("user.id", int64(userID)),
		attribute.Int("order.items", len(itemIDs)),
	))
	defer span.End()

	ctx = logger.WithFields(ctx,
		zap.String("orderType", string(orderType)),
		zap.Int64("userID", int64(userID)),
		zap.Any("itemIDs", itemIDs),
	)

	start := time.Now()
	err := fn(ctx)

	outcome := "success"
	switch {
	case err == nil:
	case errors.Is(err, ErrOrderFailed):
		outcome = Reason(err)
		span.SetAttributes(attribute.String("order.reason", outcome))
		logger.Debug(ctx, "order rejected", zap.Error(err))
	default:
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error(ctx, "order could not be processed", zap.Error(err))
	}
	l.orders.Record(ctx, string(orderType), outcome, time.Since(start))

	return err
}
