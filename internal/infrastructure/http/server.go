package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/seesamjagan/bakery-storefront-api/internal/infrastructure/config"
	"github.com/seesamjagan/bakery-storefront-api/internal/infrastructure/http/handler"
	"github.com/seesamjagan/bakery-storefront-api/internal/infrastructure/http/middleware"
	"github.com/seesamjagan/bakery-storefront-api/internal/infrastructure/telemetry"
)

// Handlers groups the storefront's HTTP handlers for server construction
type Handlers struct {
	Catalog   *handler.CatalogHandler
	Cart      *handler.CartHandler
	Order     *handler.OrderHandler
	Favorites *handler.FavoritesHandler
}

// Server represents the HTTP server
type Server struct {
	router    *chi.Mux
	config    *config.ServerConfig
	handlers  Handlers
	logger    *slog.Logger
	telemetry *telemetry.Telemetry
}

// NewServer creates a new HTTP server
func NewServer(
	cfg *config.ServerConfig,
	handlers Handlers,
	logger *slog.Logger,
	telem *telemetry.Telemetry,
) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		config:    cfg,
		handlers:  handlers,
		logger:    logger,
		telemetry: telem,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware configures the middleware chain
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.StructuredLogger(s.logger))
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(chimiddleware.RequestID)

	// Add HTTP route to context so all logs include it automatically
	s.router.Use(middleware.HTTPRouteContext())

	meter := s.telemetry.MeterProvider.Meter("storefront-api")
	s.router.Use(middleware.ActiveRequests(meter))
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	s.router.Route("/products", func(r chi.Router) {
		r.Get("/", s.handlers.Catalog.ListProducts)
		r.Get("/{id}", s.handlers.Catalog.GetProduct)
	})
	s.router.Get("/categories", s.handlers.Catalog.ListCategories)

	s.router.Route("/cart", func(r chi.Router) {
		r.Get("/", s.handlers.Cart.GetCart)
		r.Delete("/", s.handlers.Cart.ClearCart)
		r.Post("/items", s.handlers.Cart.AddItem)
		r.Put("/items/{id}", s.handlers.Cart.UpdateItem)
		r.Delete("/items/{id}", s.handlers.Cart.RemoveItem)
	})

	s.router.Post("/orders", s.handlers.Order.Checkout)
	s.router.Post("/contact", s.handlers.Order.Contact)

	s.router.Route("/favorites", func(r chi.Router) {
		r.Get("/", s.handlers.Favorites.List)
		r.Post("/{id}", s.handlers.Favorites.Toggle)
	})

	// Health check endpoint
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Prometheus metrics endpoint - exposes OpenTelemetry metrics
	s.router.Get("/metrics", promhttp.Handler().ServeHTTP)
}

// Router exposes the configured router, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.Host, s.config.Port)
	s.logger.Info("Starting HTTP server",
		slog.String("address", addr),
	)

	// Wrap the entire router with otelhttp for automatic HTTP metrics and tracing
	handler := otelhttp.NewHandler(s.router, "http-server",
		otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
			return fmt.Sprintf("%s %s", r.Method, r.URL.Path)
		}),
		otelhttp.WithMeterProvider(s.telemetry.MeterProvider),
		otelhttp.WithMetricAttributesFn(func(r *http.Request) []attribute.KeyValue {
			routePattern := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					routePattern = pattern
				}
			}
			return []attribute.KeyValue{
				attribute.String("http.route", routePattern),
			}
		}),
	)

	return http.ListenAndServe(addr, handler)
}
