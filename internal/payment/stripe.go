package payment

import (
	"context"
	"fmt"
	"strconv"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

// StripeProvider drives Stripe Checkout hosted sessions. The shopper
// is redirected to the page Stripe hosts and lands back on
// /complete or /cancel.
type StripeProvider struct {
	baseURL string
}

// NewStripe sets the process-wide API key and returns the provider.
func NewStripe(secretKey, baseURL string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{baseURL: baseURL}
}

const metadataUserID = "user_id"

// allowedCountries restricts shipping on the hosted page.
var allowedCountries = []string{"US", "CA"}

func (p *StripeProvider) CreateSession(ctx context.Context, userID uint, items []LineItem) (string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, it := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(it.Currency),
				UnitAmount: stripe.Int64(it.AmountCents),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(it.Name),
				},
			},
			Quantity: stripe.Int64(it.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(allowedCountries),
		},
		SuccessURL: stripe.String(p.baseURL + "/complete?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(p.baseURL + "/cancel"),
	}
	params.AddMetadata(metadataUserID, strconv.FormatUint(uint64(userID), 10))

	s, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return s.URL, nil
}

func (p *StripeProvider) ConfirmSession(ctx context.Context, sessionID string) (*Confirmation, error) {
	s, err := session.Get(sessionID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, fmt.Errorf("retrieve checkout session: %w", err)
	}

	conf := &Confirmation{
		Paid:       s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		SessionID:  s.ID,
		TotalCents: s.AmountTotal,
	}
	if raw, ok := s.Metadata[metadataUserID]; ok {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			conf.UserID = uint(id)
		}
	}
	return conf, nil
}
