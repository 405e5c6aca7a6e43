package checkout

// Wire types for the session-creation request the storefront client
// sends to this service. Field names follow the payment processor's
// line-item shape so the service can translate them one to one.

type ProductData struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Images      []string          `json:"images,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type PriceData struct {
	Currency    string      `json:"currency"`
	ProductData ProductData `json:"product_data"`
	// UnitAmount is in the processor's minor unit (øre).
	UnitAmount int64 `json:"unit_amount"`
}

type LineItem struct {
	PriceData PriceData `json:"price_data"`
	Quantity  int64     `json:"quantity"`
}

// CustomerInfo is the shipping/contact form as submitted at checkout.
// It is forwarded once to the payment processor and never stored here.
type CustomerInfo struct {
	Email      string `json:"email" validate:"required,shopemail"`
	Name       string `json:"name" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required,postalcode"`
	Phone      string `json:"phone" validate:"required"`
}

type CheckoutRequest struct {
	LineItems    []LineItem   `json:"line_items"`
	CustomerInfo CustomerInfo `json:"customer_info"`
	SuccessURL   string       `json:"success_url"`
	CancelURL    string       `json:"cancel_url"`
}

// CheckoutSession is the successful result of a session-creation call.
// The processor owns the session's lifecycle after the redirect.
type CheckoutSession struct {
	URL       string `json:"url"`
	SessionID string `json:"sessionId"`
}
