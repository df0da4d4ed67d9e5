package service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/seesamjagan/bakery-storefront-api/internal/app/dto"
	"github.com/seesamjagan/bakery-storefront-api/internal/domain"
)

// CatalogService serves the static product catalog through the filter/sort
// pipeline. The catalog itself is immutable; every request carries its own
// filter state.
type CatalogService struct {
	catalog        domain.Catalog
	tracer         trace.Tracer
	logger         *slog.Logger
	searchCounter  metric.Int64Counter
	catalogQueries metric.Int64Counter
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	catalog domain.Catalog,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *CatalogService {
	searchCounter, _ := meter.Int64Counter(
		"catalog.searches.total",
		metric.WithDescription("Total number of catalog searches with a non-empty search term"),
	)
	catalogQueries, _ := meter.Int64Counter(
		"catalog.queries",
		metric.WithDescription("Total number of catalog queries"),
	)

	return &CatalogService{
		catalog:        catalog,
		tracer:         tracer,
		logger:         logger,
		searchCounter:  searchCounter,
		catalogQueries: catalogQueries,
	}
}

// ListProducts returns the visible subset of the catalog for the given filter
// state. An empty result is a valid display state, not an error.
func (s *CatalogService) ListProducts(ctx context.Context, state domain.FilterState) []dto.ProductResponse {
	ctx, span := s.tracer.Start(ctx, "CatalogService.ListProducts")
	defer span.End()

	span.SetAttributes(
		attribute.String("filter.category", state.Category),
		attribute.String("filter.sort", string(state.Sort)),
		attribute.Bool("filter.has_search", state.Search != ""),
	)

	visible := domain.VisibleProducts(s.catalog, state)

	if state.Search != "" {
		s.searchCounter.Add(ctx, 1)
	}
	s.catalogQueries.Add(ctx, 1,
		metric.WithAttributes(attribute.String("operation", "list")),
	)

	span.SetAttributes(attribute.Int("product.count", len(visible)))
	s.logger.DebugContext(ctx, "Catalog filtered",
		slog.Int("visible", len(visible)),
		slog.Int("catalog", len(s.catalog)),
	)

	span.SetStatus(codes.Ok, "Products listed successfully")
	return dto.ToProductResponseList(visible)
}

// GetProductByID retrieves a single product by its id
func (s *CatalogService) GetProductByID(ctx context.Context, id int) (*dto.ProductResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.GetProductByID")
	defer span.End()

	span.SetAttributes(attribute.Int("product.id", id))

	product, err := s.catalog.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Product not found")
		s.logger.WarnContext(ctx, "Product not found",
			slog.Int("product_id", id),
		)
		s.catalogQueries.Add(ctx, 1,
			metric.WithAttributes(
				attribute.String("operation", "get"),
				attribute.String("result", "not_found"),
			),
		)
		return nil, err
	}

	s.catalogQueries.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", "get"),
			attribute.String("result", "success"),
		),
	)

	span.SetStatus(codes.Ok, "Product found")
	resp := dto.ToProductResponse(product)
	return &resp, nil
}

// Categories returns the selectable category list: the "all" sentinel followed
// by the distinct catalog categories in catalog order.
func (s *CatalogService) Categories(ctx context.Context) dto.CategoriesResponse {
	_, span := s.tracer.Start(ctx, "CatalogService.Categories")
	defer span.End()

	categories := append([]string{domain.CategoryAll}, s.catalog.Categories()...)
	span.SetAttributes(attribute.Int("category.count", len(categories)))

	resp := dto.CategoriesResponse{Categories: categories}
	if min, max, ok := s.catalog.PriceBounds(); ok {
		resp.PriceMin = &min
		resp.PriceMax = &max
	}

	span.SetStatus(codes.Ok, "Categories listed")
	return resp
}
