package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
)

// StripeGateway implements Gateway over Stripe Checkout.
type StripeGateway struct {
	currency string
}

// NewStripeGateway configures the Stripe client with the given secret key
// and returns a gateway that charges in the given currency.
func NewStripeGateway(secretKey, currency string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{currency: currency}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, items []LineItem, successURL, cancelURL string) (*Session, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, it := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(it.Quantity),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(g.currency),
				UnitAmount: stripe.Int64(it.UnitAmount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(it.Name),
				},
			},
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
	}
	params.Context = ctx

	s, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("payment: create checkout session: %w", err)
	}

	return &Session{ID: s.ID, URL: s.URL}, nil
}
