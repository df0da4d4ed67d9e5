package service

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/seesamjagan/bakery-storefront-api/internal/domain"
)

// FavoritesService is the session-scoped "liked" set. Unlike the cart it is
// not persisted: the set resets on restart.
type FavoritesService struct {
	mu      sync.Mutex
	ids     map[int]struct{}
	catalog domain.Catalog
	tracer  trace.Tracer
	logger  *slog.Logger
	toggles metric.Int64Counter
}

// NewFavoritesService creates an empty favorites set over the given catalog.
func NewFavoritesService(
	catalog domain.Catalog,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *FavoritesService {
	toggles, _ := meter.Int64Counter(
		"favorites.toggles.total",
		metric.WithDescription("Total number of favorite toggles"),
	)

	return &FavoritesService{
		ids:     make(map[int]struct{}),
		catalog: catalog,
		tracer:  tracer,
		logger:  logger,
		toggles: toggles,
	}
}

// Toggle flips membership for the given product id and reports the resulting
// state. Ids not present in the catalog are rejected.
func (s *FavoritesService) Toggle(ctx context.Context, id int) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "FavoritesService.Toggle")
	defer span.End()

	span.SetAttributes(attribute.Int("product.id", id))

	if _, err := s.catalog.FindByID(id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Product not found")
		return false, err
	}

	s.mu.Lock()
	_, favorite := s.ids[id]
	if favorite {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
	s.mu.Unlock()

	s.toggles.Add(ctx, 1,
		metric.WithAttributes(attribute.Bool("favorite", !favorite)),
	)
	s.logger.DebugContext(ctx, "Favorite toggled",
		slog.Int("product_id", id),
		slog.Bool("favorite", !favorite),
	)

	span.SetStatus(codes.Ok, "Favorite toggled")
	return !favorite, nil
}

// List returns the favorite product ids in ascending order.
func (s *FavoritesService) List(ctx context.Context) []int {
	_, span := s.tracer.Start(ctx, "FavoritesService.List")
	defer span.End()

	s.mu.Lock()
	ids := make([]int, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	sort.Ints(ids)
	span.SetAttributes(attribute.Int("favorites.count", len(ids)))
	span.SetStatus(codes.Ok, "Favorites listed")
	return ids
}
