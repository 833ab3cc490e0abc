// Package payment wraps the hosted-checkout payment provider behind a small
// interface so the order flow can be tested without network calls.
package payment

import "context"

// LineItem is one priced row of a checkout session. UnitAmount is in minor
// currency units (paise, cents).
type LineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
}

// Session is a hosted checkout session the customer is redirected to.
type Session struct {
	ID  string
	URL string
}

// Gateway creates hosted checkout sessions.
type Gateway interface {
	// CreateCheckoutSession builds a session for the given line items.
	// successURL and cancelURL are where the provider redirects the
	// customer after the payment attempt.
	CreateCheckoutSession(ctx context.Context, items []LineItem, successURL, cancelURL string) (*Session, error)
}
