package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/seesamjagan/bakery-storefront-api/internal/app/dto"
	"github.com/seesamjagan/bakery-storefront-api/internal/domain"
)

// CartService wraps the pure cart transitions with persistence: every mutation
// applies to the in-memory cart, then the full snapshot is written to the
// storage slot. Storage failures are logged and swallowed; the cart keeps
// working in memory, which is exactly how the storefront behaves when the
// browser storage slot is unavailable.
type CartService struct {
	mu         sync.Mutex
	cart       *domain.Cart
	catalog    domain.Catalog
	storage    domain.CartStorage
	tracer     trace.Tracer
	logger     *slog.Logger
	operations metric.Int64Counter
	itemsAdded metric.Int64Counter
}

// NewCartService creates the cart service and restores the persisted snapshot.
// A missing, malformed or unreadable slot yields an empty cart with a warning
// log; initialization never fails because of the cart slot.
func NewCartService(
	ctx context.Context,
	catalog domain.Catalog,
	storage domain.CartStorage,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *CartService {
	operations, _ := meter.Int64Counter(
		"cart.operations",
		metric.WithDescription("Total number of cart operations"),
	)
	itemsAdded, _ := meter.Int64Counter(
		"cart.items.added",
		metric.WithDescription("Total number of units added to the cart"),
	)

	s := &CartService{
		catalog:    catalog,
		storage:    storage,
		tracer:     tracer,
		logger:     logger,
		operations: operations,
		itemsAdded: itemsAdded,
	}

	items, err := storage.Load(ctx)
	if err != nil {
		logger.WarnContext(ctx, "Failed to restore cart, starting empty",
			slog.String("error", err.Error()),
		)
		items = nil
	}
	s.cart = domain.NewCart(items)

	logger.InfoContext(ctx, "Cart initialized",
		slog.Int("items", s.cart.Len()),
		slog.Int("units", s.cart.UnitCount()),
	)
	return s
}

// AddProduct adds one unit of the identified catalog product to the cart and
// persists the result. Ids not present in the catalog are rejected.
func (s *CartService) AddProduct(ctx context.Context, productID int) (dto.CartResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.AddProduct")
	defer span.End()

	span.SetAttributes(attribute.Int("product.id", productID))

	product, err := s.catalog.FindByID(productID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Product not found")
		s.logger.WarnContext(ctx, "Cannot add unknown product to cart",
			slog.Int("product_id", productID),
		)
		s.operations.Add(ctx, 1,
			metric.WithAttributes(
				attribute.String("operation", "add"),
				attribute.String("result", "not_found"),
			),
		)
		return dto.CartResponse{}, err
	}

	span.SetAttributes(attribute.String("product.name", product.Name))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Add(product)
	s.persist(ctx, span)

	s.itemsAdded.Add(ctx, 1)
	s.operations.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", "add"),
			attribute.String("result", "success"),
		),
	)

	s.logger.InfoContext(ctx, "Product added to cart",
		slog.Int("product_id", product.ID),
		slog.Int("units", s.cart.UnitCount()),
	)

	span.SetStatus(codes.Ok, "Product added")
	return s.response(), nil
}

// RemoveItem deletes the entry with the given product id. Unknown ids are a
// no-op, not an error.
func (s *CartService) RemoveItem(ctx context.Context, id int) dto.CartResponse {
	ctx, span := s.tracer.Start(ctx, "CartService.RemoveItem")
	defer span.End()

	span.SetAttributes(attribute.Int("product.id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Remove(id)
	s.persist(ctx, span)

	s.operations.Add(ctx, 1,
		metric.WithAttributes(attribute.String("operation", "remove")),
	)

	s.logger.InfoContext(ctx, "Cart item removed",
		slog.Int("product_id", id),
	)

	span.SetStatus(codes.Ok, "Item removed")
	return s.response()
}

// SetQuantity sets an entry's quantity exactly; zero or negative quantities
// remove the entry. Unknown ids are a no-op.
func (s *CartService) SetQuantity(ctx context.Context, id, quantity int) dto.CartResponse {
	ctx, span := s.tracer.Start(ctx, "CartService.SetQuantity")
	defer span.End()

	span.SetAttributes(
		attribute.Int("product.id", id),
		attribute.Int("cart.quantity", quantity),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.SetQuantity(id, quantity)
	s.persist(ctx, span)

	s.operations.Add(ctx, 1,
		metric.WithAttributes(attribute.String("operation", "update")),
	)

	span.SetStatus(codes.Ok, "Quantity updated")
	return s.response()
}

// Clear empties the cart and persists the empty snapshot.
func (s *CartService) Clear(ctx context.Context) dto.CartResponse {
	ctx, span := s.tracer.Start(ctx, "CartService.Clear")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	s.persist(ctx, span)

	s.operations.Add(ctx, 1,
		metric.WithAttributes(attribute.String("operation", "clear")),
	)

	s.logger.InfoContext(ctx, "Cart cleared")
	span.SetStatus(codes.Ok, "Cart cleared")
	return s.response()
}

// Get returns the current cart with derived totals.
func (s *CartService) Get(ctx context.Context) dto.CartResponse {
	_, span := s.tracer.Start(ctx, "CartService.Get")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	span.SetAttributes(
		attribute.Int("cart.items", s.cart.Len()),
		attribute.Int("cart.units", s.cart.UnitCount()),
	)
	span.SetStatus(codes.Ok, "Cart retrieved")
	return s.response()
}

// Snapshot returns a copy of the item sequence plus derived totals, for the
// checkout flow.
func (s *CartService) Snapshot(ctx context.Context) ([]domain.CartItem, decimal.Decimal, int) {
	_, span := s.tracer.Start(ctx, "CartService.Snapshot")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items(), s.cart.Total(), s.cart.UnitCount()
}

// persist writes the full snapshot to the storage slot. Failures are recorded
// on the span and logged, never propagated: a broken slot must not take the
// cart down with it. Callers hold the mutex.
func (s *CartService) persist(ctx context.Context, span trace.Span) {
	if err := s.storage.Save(ctx, s.cart.Items()); err != nil {
		span.RecordError(err)
		s.logger.ErrorContext(ctx, "Failed to persist cart",
			slog.String("error", err.Error()),
		)
	}
}

// response builds the CartResponse under the caller's lock.
func (s *CartService) response() dto.CartResponse {
	return dto.ToCartResponse(s.cart.Items(), s.cart.Total(), s.cart.UnitCount())
}
