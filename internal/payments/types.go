package payments

import "errors"

// ErrMissingConfig signals that a provider is missing a required merchant
// identifier or secret key. Adapters must return it before any outbound
// side effect so the caller can surface a configuration error instead of
// dispatching a request the provider would reject anyway.
var ErrMissingConfig = errors.New("payment provider configuration missing")

// ErrUnknownGateway is returned when no adapter is registered for a method.
var ErrUnknownGateway = errors.New("payment gateway not registered")

// DispatchMode tells the client how to execute a built payment request.
type DispatchMode string

const (
	// ModeRedirect: full-page redirect to PaymentURL.
	ModeRedirect DispatchMode = "redirect"
	// ModeFormPost: synthetic form POST of Data to PaymentURL.
	ModeFormPost DispatchMode = "form_post"
	// ModeDeepLink: custom URI scheme that opens a wallet app.
	ModeDeepLink DispatchMode = "deep_link"
)

// Placeholder customer info used when the checkout client supplies none.
const (
	defaultCustomerName  = "Customer"
	defaultCustomerEmail = "customer@example.com"
	defaultCustomerPhone = "9800000000"
)

type PaymentRequest struct {
	Amount        float64
	ProductName   string
	ProductURL    string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

type PaymentResponse struct {
	Mode       DispatchMode
	PaymentURL string
	Reference  string            // time-derived reference id, unique per attempt
	Data       map[string]string // form fields or query params, per provider
}
