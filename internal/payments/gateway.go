package payments

import "context"

// PaymentGateway defines a common interface for all payment providers.
// InitiatePayment builds (and signs, where the provider requires it) exactly
// one outbound payment request and describes how to dispatch it.
type PaymentGateway interface {
	InitiatePayment(ctx context.Context, req PaymentRequest) (PaymentResponse, error)
}
