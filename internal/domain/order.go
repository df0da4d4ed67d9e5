package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CustomerInfo identifies who is placing an order.
type CustomerInfo struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// ContactForm is the contact-page submission: customer identity plus a free
// text message.
type ContactForm struct {
	CustomerInfo
	Message string `json:"message" validate:"required"`
}

// Business carries the branding fields the formatters need. Both site variants
// feed this from configuration, so the formatting logic stays business-agnostic.
type Business struct {
	Name     string
	Currency string
}

// FormatOrderMessage renders the cart snapshot plus customer info into the
// human-readable order text handed to WhatsApp and email. The load-bearing
// content is one block per entry with correct line totals and a grand total
// matching the cart total; the emoji and punctuation are cosmetic.
func FormatOrderMessage(info CustomerInfo, items []CartItem, total decimal.Decimal, business Business) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🛒 *Order from %s*\n\n", info.Name)
	fmt.Fprintf(&b, "📞 Phone: %s\n", info.Phone)
	fmt.Fprintf(&b, "📧 Email: %s\n\n", info.Email)
	b.WriteString("📋 *Order Details:*\n")

	for i, item := range items {
		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.CartQuantity)))
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.Name)
		fmt.Fprintf(&b, "   Quantity: %d\n", item.CartQuantity)
		fmt.Fprintf(&b, "   Price: %s%s x %d = %s%s\n\n",
			business.Currency, item.Price, item.CartQuantity, business.Currency, lineTotal)
	}

	fmt.Fprintf(&b, "💰 *Total Amount: %s%s*\n\n", business.Currency, total)
	fmt.Fprintf(&b, "Thank you for choosing %s! 🧁", business.Name)
	return b.String()
}

// OrderEmailSubject builds the subject line for an emailed order.
func OrderEmailSubject(info CustomerInfo, business Business) string {
	return fmt.Sprintf("Order from %s - %s", info.Name, business.Name)
}

// FormatContactGreeting renders the short WhatsApp text for a contact-form
// submission.
func FormatContactGreeting(form ContactForm) string {
	return fmt.Sprintf("Hi! I'm %s. %s", form.Name, form.Message)
}

// FormatContactEmail renders the subject and plain-text body for an emailed
// contact-form submission.
func FormatContactEmail(form ContactForm) (subject, body string) {
	subject = fmt.Sprintf("Contact from %s", form.Name)
	body = fmt.Sprintf("Name: %s\nPhone: %s\nEmail: %s\n\nMessage:\n%s",
		form.Name, form.Phone, form.Email, form.Message)
	return subject, body
}
