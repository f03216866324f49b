package payments

import (
	"context"
	"net/url"
	"strings"
	"testing"
)

func TestKhaltiDeepLink(t *testing.T) {
	d := NewKhaltiDeepLink("MERCHANT_ID", "Mahaseth Mobile All Solution")

	resp, err := d.InitiatePayment(context.Background(), PaymentRequest{
		Amount:      1000,
		ProductName: "Widget & Co",
	})
	if err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}

	if resp.Mode != ModeDeepLink {
		t.Errorf("mode = %q, want %q", resp.Mode, ModeDeepLink)
	}
	if !strings.HasPrefix(resp.PaymentURL, "khalti://pay?") {
		t.Fatalf("link = %q, want khalti://pay scheme", resp.PaymentURL)
	}

	u, err := url.Parse(resp.PaymentURL)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	q := u.Query()
	if q.Get("amount") != "100000" {
		t.Errorf("amount = %q, want 100000 paisa", q.Get("amount"))
	}
	if q.Get("product_name") != "Widget & Co" {
		t.Errorf("product_name = %q, want URL-encoded round trip", q.Get("product_name"))
	}
	if q.Get("merchant_name") != "Mahaseth Mobile All Solution" {
		t.Errorf("merchant_name = %q", q.Get("merchant_name"))
	}
	if q.Get("transaction_uuid") == "" {
		t.Error("missing transaction_uuid")
	}
}

func TestEsewaDeepLink(t *testing.T) {
	d := NewEsewaDeepLink("EPAYTEST")

	resp, err := d.InitiatePayment(context.Background(), PaymentRequest{
		Amount:      1000,
		ProductName: "Widget",
	})
	if err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}

	if !strings.HasPrefix(resp.PaymentURL, "esewa://pay?") {
		t.Fatalf("link = %q, want esewa://pay scheme", resp.PaymentURL)
	}
	u, _ := url.Parse(resp.PaymentURL)
	q := u.Query()
	if q.Get("amount") != "1000.00" {
		t.Errorf("amount = %q, want decimal string 1000.00", q.Get("amount"))
	}
	if q.Get("ref_id") == "" {
		t.Error("missing ref_id")
	}
}

func TestDeepLinkMissingConfig(t *testing.T) {
	if _, err := NewKhaltiDeepLink("", "").InitiatePayment(context.Background(), PaymentRequest{Amount: 1}); !errorsIsMissingConfig(err) {
		t.Errorf("khalti err = %v, want ErrMissingConfig", err)
	}
	if _, err := NewEsewaDeepLink("").InitiatePayment(context.Background(), PaymentRequest{Amount: 1}); !errorsIsMissingConfig(err) {
		t.Errorf("esewa err = %v, want ErrMissingConfig", err)
	}
}
