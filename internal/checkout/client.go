package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"storefront-service/internal/cart"
)

// Pricing constants for the shop. Orders at or above the threshold
// ship free; everything else pays the flat rate. Whole NOK.
const (
	Currency              = "nok"
	FreeShippingThreshold = 500
	ShippingFlatRate      = 49
)

const (
	shippingName        = "Frakt"
	shippingDescription = "Levering til din adresse"

	// The processor substitutes the real session id into the success
	// URL after payment.
	sessionIDPlaceholder = "{CHECKOUT_SESSION_ID}"
)

// ShippingCost returns the shipping charge in whole NOK for a cart
// subtotal.
func ShippingCost(subtotal int) int {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return ShippingFlatRate
}

// BuildLineItems converts cart lines into processor line items, with
// unit amounts in øre, and appends the shipping line when the order
// does not qualify for free shipping.
func BuildLineItems(lines []cart.Line) []LineItem {
	subtotal := 0
	for _, l := range lines {
		subtotal += l.Product.Price * l.Quantity
	}

	items := make([]LineItem, 0, len(lines)+1)
	for _, l := range lines {
		items = append(items, LineItem{
			PriceData: PriceData{
				Currency: Currency,
				ProductData: ProductData{
					Name:        l.Product.Name,
					Description: l.Product.Description,
					Images:      []string{l.Product.Image},
					Metadata: map[string]string{
						"category": l.Product.Category,
						"weight":   l.Product.Weight,
					},
				},
				UnitAmount: int64(l.Product.Price) * 100,
			},
			Quantity: int64(l.Quantity),
		})
	}

	if cost := ShippingCost(subtotal); cost > 0 {
		items = append(items, LineItem{
			PriceData: PriceData{
				Currency: Currency,
				ProductData: ProductData{
					Name:        shippingName,
					Description: shippingDescription,
				},
				UnitAmount: int64(cost) * 100,
			},
			Quantity: 1,
		})
	}

	return items
}

// Client calls the checkout-session service on behalf of the
// storefront. BaseURL is the storefront origin used to build the
// success and cancel URLs the processor redirects back to.
type Client struct {
	ServiceURL string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(serviceURL, baseURL string) *Client {
	return &Client{
		ServiceURL: serviceURL,
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
	}
}

// CreateSession submits the cart and customer info and returns the
// session to redirect to. One outbound call, no retries; any failure
// is surfaced to the caller as-is.
func (cl *Client) CreateSession(ctx context.Context, lines []cart.Line, info CustomerInfo) (*CheckoutSession, error) {
	reqBody := CheckoutRequest{
		LineItems:    BuildLineItems(lines),
		CustomerInfo: info,
		SuccessURL:   fmt.Sprintf("%s/success?session_id=%s", cl.BaseURL, sessionIDPlaceholder),
		CancelURL:    fmt.Sprintf("%s/cart", cl.BaseURL),
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("error encoding checkout request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cl.ServiceURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := cl.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling checkout service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Error != "" {
			return nil, fmt.Errorf("%s", errResp.Error)
		}
		return nil, fmt.Errorf("failed to create checkout session")
	}

	var session CheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("error decoding checkout session: %w", err)
	}
	return &session, nil
}
