package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/seesamjagan/bakery-storefront-api/internal/app/dto"
	"github.com/seesamjagan/bakery-storefront-api/internal/domain"
	"github.com/seesamjagan/bakery-storefront-api/internal/infrastructure/config"
)

// ErrEmptyCart is returned when checkout is attempted with nothing in the cart.
var ErrEmptyCart = errors.New("cart is empty")

// OrderService turns the cart snapshot plus customer info into the order
// message and the WhatsApp/email deep links that carry it. No payment and no
// server-side order record: the hand-off to the external channel is the whole
// checkout.
type OrderService struct {
	cart            *CartService
	business        config.BusinessConfig
	validate        *validator.Validate
	tracer          trace.Tracer
	logger          *slog.Logger
	ordersSubmitted metric.Int64Counter
	contactSubmits  metric.Int64Counter
}

// NewOrderService creates a new order service
func NewOrderService(
	cart *CartService,
	business config.BusinessConfig,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *OrderService {
	ordersSubmitted, _ := meter.Int64Counter(
		"orders.submitted.total",
		metric.WithDescription("Total number of orders handed off to an external channel"),
	)
	contactSubmits, _ := meter.Int64Counter(
		"contact.submissions.total",
		metric.WithDescription("Total number of contact form submissions"),
	)

	return &OrderService{
		cart:            cart,
		business:        business,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
		tracer:          tracer,
		logger:          logger,
		ordersSubmitted: ordersSubmitted,
		contactSubmits:  contactSubmits,
	}
}

// Checkout validates the customer info, renders the order message from the
// current cart, builds the outbound links and clears the cart. The cart is
// cleared only after the message and links are built, mirroring the
// "clear after successful hand-off" behavior of the storefront.
func (s *OrderService) Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.OrderResponse, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.Checkout")
	defer span.End()

	info := req.ToCustomerInfo()
	if err := s.validate.StructCtx(ctx, info); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Validation failed")
		s.logger.WarnContext(ctx, "Invalid customer info",
			slog.String("error", err.Error()),
		)
		s.ordersSubmitted.Add(ctx, 1,
			metric.WithAttributes(attribute.String("result", "invalid")),
		)
		return nil, err
	}

	items, total, unitCount := s.cart.Snapshot(ctx)
	if len(items) == 0 {
		span.SetStatus(codes.Error, "Cart is empty")
		s.ordersSubmitted.Add(ctx, 1,
			metric.WithAttributes(attribute.String("result", "empty_cart")),
		)
		return nil, ErrEmptyCart
	}

	business := domain.Business{Name: s.business.Name, Currency: s.business.Currency}
	message := domain.FormatOrderMessage(info, items, total, business)
	subject := domain.OrderEmailSubject(info, business)

	reference := uuid.New().String()
	span.SetAttributes(
		attribute.String("order.reference", reference),
		attribute.Int("order.items", len(items)),
		attribute.Int("order.units", unitCount),
		attribute.String("order.total", total.String()),
	)

	s.cart.Clear(ctx)

	s.ordersSubmitted.Add(ctx, 1,
		metric.WithAttributes(attribute.String("result", "success")),
	)
	s.logger.InfoContext(ctx, "Order submitted",
		slog.String("order_reference", reference),
		slog.Int("items", len(items)),
		slog.String("total", total.String()),
	)

	span.SetStatus(codes.Ok, "Order submitted")
	return &dto.OrderResponse{
		Reference:   reference,
		Message:     message,
		WhatsAppURL: s.business.WhatsAppURL(message),
		EmailURL:    s.business.EmailURL(subject, message),
		Total:       total,
		ItemCount:   unitCount,
	}, nil
}

// Contact validates a contact-form submission and builds the outbound links
// for it. The cart is not involved.
func (s *OrderService) Contact(ctx context.Context, req dto.ContactRequest) (*dto.ContactResponse, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.Contact")
	defer span.End()

	form := req.ToContactForm()
	if err := s.validate.StructCtx(ctx, form); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Validation failed")
		s.logger.WarnContext(ctx, "Invalid contact form",
			slog.String("error", err.Error()),
		)
		s.contactSubmits.Add(ctx, 1,
			metric.WithAttributes(attribute.String("result", "invalid")),
		)
		return nil, err
	}

	subject, body := domain.FormatContactEmail(form)

	s.contactSubmits.Add(ctx, 1,
		metric.WithAttributes(attribute.String("result", "success")),
	)
	s.logger.InfoContext(ctx, "Contact form submitted")

	span.SetStatus(codes.Ok, "Contact form submitted")
	return &dto.ContactResponse{
		WhatsAppURL: s.business.WhatsAppURL(domain.FormatContactGreeting(form)),
		EmailURL:    s.business.EmailURL(subject, body),
		PhoneURL:    s.business.PhoneURL(),
		MapsURL:     s.business.MapsURL(),
	}, nil
}
