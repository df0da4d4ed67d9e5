package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
	mnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tnoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/seesamjagan/bakery-storefront-api/internal/domain"
)

func testTelemetry() (trace.Tracer, metric.Meter, *slog.Logger) {
	tracer := tnoop.NewTracerProvider().Tracer("test")
	meter := mnoop.NewMeterProvider().Meter("test")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return tracer, meter, logger
}

func testProduct(id int, name string, price int64) domain.Product {
	return domain.Product{
		ID:    id,
		Name:  name,
		Price: decimal.NewFromInt(price),
	}
}

func testCatalog() domain.Catalog {
	return domain.Catalog{
		testProduct(1, "Classic Vanilla Cake", 650),
		testProduct(2, "Butter Croissant", 90),
		testProduct(3, "Blueberry Muffin", 200),
	}
}

// stubStorage lets tests inject load/save failures and inspect what was
// persisted.
type stubStorage struct {
	items   []domain.CartItem
	loadErr error
	saveErr error
	saves   int
}

func (s *stubStorage) Save(_ context.Context, items []domain.CartItem) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.items = append([]domain.CartItem(nil), items...)
	return nil
}

func (s *stubStorage) Load(_ context.Context) ([]domain.CartItem, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.items, nil
}
