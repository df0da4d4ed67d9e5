package dto

import (
	"github.com/shopspring/decimal"

	"github.com/seesamjagan/bakery-storefront-api/internal/domain"
)

// CheckoutRequest carries the customer fields entered on the order form
type CheckoutRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ToCustomerInfo converts a CheckoutRequest to the domain CustomerInfo
func (r CheckoutRequest) ToCustomerInfo() domain.CustomerInfo {
	return domain.CustomerInfo{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
	}
}

// OrderResponse is the checkout hand-off: the rendered order message plus the
// deep links that carry it to WhatsApp or email
type OrderResponse struct {
	Reference   string          `json:"reference"`
	Message     string          `json:"message"`
	WhatsAppURL string          `json:"whatsapp_url"`
	EmailURL    string          `json:"email_url"`
	Total       decimal.Decimal `json:"total"`
	ItemCount   int             `json:"item_count"`
}

// ContactRequest carries a contact-page submission
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ToContactForm converts a ContactRequest to the domain ContactForm
func (r ContactRequest) ToContactForm() domain.ContactForm {
	return domain.ContactForm{
		CustomerInfo: domain.CustomerInfo{
			Name:  r.Name,
			Email: r.Email,
			Phone: r.Phone,
		},
		Message: r.Message,
	}
}

// ContactResponse returns the outbound links built from a contact submission
type ContactResponse struct {
	WhatsAppURL string `json:"whatsapp_url"`
	EmailURL    string `json:"email_url"`
	PhoneURL    string `json:"phone_url"`
	MapsURL     string `json:"maps_url"`
}
