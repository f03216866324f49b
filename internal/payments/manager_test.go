package payments

import (
	"context"
	"errors"
	"testing"
)

type stubGateway struct {
	resp PaymentResponse
	err  error
}

func (s stubGateway) InitiatePayment(ctx context.Context, req PaymentRequest) (PaymentResponse, error) {
	return s.resp, s.err
}

func TestManagerRoutesToRegisteredGateway(t *testing.T) {
	m := NewPaymentManager()
	m.RegisterGateway("stub", stubGateway{resp: PaymentResponse{Reference: "ref-1"}})

	resp, err := m.InitiatePayment(context.Background(), "stub", PaymentRequest{Amount: 1})
	if err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}
	if resp.Reference != "ref-1" {
		t.Errorf("reference = %q, want ref-1", resp.Reference)
	}
}

func TestManagerUnknownGateway(t *testing.T) {
	m := NewPaymentManager()

	_, err := m.InitiatePayment(context.Background(), "nope", PaymentRequest{Amount: 1})
	if !errors.Is(err, ErrUnknownGateway) {
		t.Errorf("err = %v, want ErrUnknownGateway", err)
	}
}
