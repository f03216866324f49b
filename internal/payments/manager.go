package payments

import (
	"context"
	"fmt"
)

type PaymentManager struct {
	gateways map[string]PaymentGateway
}

func NewPaymentManager() *PaymentManager {
	return &PaymentManager{gateways: make(map[string]PaymentGateway)}
}

func (m *PaymentManager) RegisterGateway(method string, gateway PaymentGateway) {
	m.gateways[method] = gateway
}

func (m *PaymentManager) InitiatePayment(ctx context.Context, method string, req PaymentRequest) (PaymentResponse, error) {
	gateway, ok := m.gateways[method]
	if !ok {
		return PaymentResponse{}, fmt.Errorf("%w: %s", ErrUnknownGateway, method)
	}
	return gateway.InitiatePayment(ctx, req)
}
