package checkout

import (
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
)

// SessionCreator creates one payment-processor checkout session. The
// handler depends on this instead of the Stripe package directly so
// tests can verify the downstream call is skipped on configuration
// errors.
type SessionCreator interface {
	Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// StripeSessions is the production SessionCreator.
type StripeSessions struct{}

func (StripeSessions) Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.New(params)
}

// SessionParams translates a session-creation request into Stripe
// checkout-session parameters: payment mode, redirect URLs, customer
// email, required billing address, Norwegian shipping allow-list,
// phone collection, customer metadata, and one entry per line item.
func SessionParams(req CheckoutRequest) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		Mode:                     stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:               stripe.String(req.SuccessURL),
		CancelURL:                stripe.String(req.CancelURL),
		CustomerEmail:            stripe.String(req.CustomerInfo.Email),
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionRequired)),
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice([]string{"NO"}),
		},
		PhoneNumberCollection: &stripe.CheckoutSessionPhoneNumberCollectionParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Metadata = map[string]string{
		"customer_name":        req.CustomerInfo.Name,
		"customer_phone":       req.CustomerInfo.Phone,
		"shipping_address":     req.CustomerInfo.Address,
		"shipping_city":        req.CustomerInfo.City,
		"shipping_postal_code": req.CustomerInfo.PostalCode,
	}

	for _, item := range req.LineItems {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.PriceData.ProductData.Name),
		}
		if item.PriceData.ProductData.Description != "" {
			productData.Description = stripe.String(item.PriceData.ProductData.Description)
		}
		if len(item.PriceData.ProductData.Images) > 0 && item.PriceData.ProductData.Images[0] != "" {
			productData.Images = stripe.StringSlice(item.PriceData.ProductData.Images[:1])
		}

		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(item.PriceData.Currency),
				ProductData: productData,
				UnitAmount:  stripe.Int64(item.PriceData.UnitAmount),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	return params
}
