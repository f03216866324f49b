package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"testing"
)

func testEsewaAdapter() *EsewaAdapter {
	return NewEsewaAdapter(
		"EPAYTEST",
		"8gBm/:&EnhH.1/q",
		"https://rc-epay.esewa.com.np/api/epay/main/v2/form",
		"http://localhost:5173/payment-success",
		"http://localhost:5173/payment-failure",
	)
}

func TestEsewaCanonicalString(t *testing.T) {
	got := esewaCanonicalString("1000.00", "TXN-1700000000000", "EPAYTEST")
	want := "total_amount=1000.00,transaction_uuid=TXN-1700000000000,product_code=EPAYTEST"
	if got != want {
		t.Errorf("canonical string = %q, want %q", got, want)
	}
}

func TestEsewaSignatureDeterministic(t *testing.T) {
	e := testEsewaAdapter()

	first := e.sign("1000.00", "TXN-1700000000000")
	second := e.sign("1000.00", "TXN-1700000000000")
	if first != second {
		t.Errorf("same inputs signed differently: %q vs %q", first, second)
	}

	// changing any single input must change the signature
	if e.sign("1000.01", "TXN-1700000000000") == first {
		t.Error("amount change did not change signature")
	}
	if e.sign("1000.00", "TXN-1700000000001") == first {
		t.Error("transaction id change did not change signature")
	}
	other := *e
	other.MerchantCode = "OTHER"
	if other.sign("1000.00", "TXN-1700000000000") == first {
		t.Error("product code change did not change signature")
	}
}

func TestEsewaSignatureMatchesHMAC(t *testing.T) {
	e := testEsewaAdapter()

	got := e.sign("1000.00", "TXN-1700000000000")

	mac := hmac.New(sha256.New, []byte(e.SecretKey))
	mac.Write([]byte("total_amount=1000.00,transaction_uuid=TXN-1700000000000,product_code=EPAYTEST"))
	want := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	if got != want {
		t.Errorf("signature = %q, want independently computed %q", got, want)
	}
	if _, err := base64.StdEncoding.DecodeString(got); err != nil {
		t.Errorf("signature is not valid base64: %v", err)
	}
}

func TestEsewaInitiateBuildsSignedForm(t *testing.T) {
	e := testEsewaAdapter()

	// Widget x2 at Rs. 500 -> total 1000
	resp, err := e.InitiatePayment(context.Background(), PaymentRequest{
		Amount:      1000,
		ProductName: "Widget",
	})
	if err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}

	if resp.Mode != ModeFormPost {
		t.Errorf("mode = %q, want %q", resp.Mode, ModeFormPost)
	}
	if resp.PaymentURL != e.FormURL {
		t.Errorf("payment url = %q, want %q", resp.PaymentURL, e.FormURL)
	}
	if resp.Data["total_amount"] != "1000.00" {
		t.Errorf("total_amount = %q, want 1000.00", resp.Data["total_amount"])
	}
	if !strings.HasPrefix(resp.Data["transaction_uuid"], "TXN-") {
		t.Errorf("transaction_uuid = %q, want TXN- prefix", resp.Data["transaction_uuid"])
	}
	if resp.Data["signed_field_names"] != "total_amount,transaction_uuid,product_code" {
		t.Errorf("signed_field_names = %q", resp.Data["signed_field_names"])
	}

	// the form signature must cover exactly the signed field set
	want := e.sign(resp.Data["total_amount"], resp.Data["transaction_uuid"])
	if resp.Data["signature"] != want {
		t.Errorf("signature = %q, want %q", resp.Data["signature"], want)
	}
}

func TestEsewaInitiateMissingConfig(t *testing.T) {
	for _, tc := range []struct {
		name     string
		merchant string
		secret   string
	}{
		{"empty secret", "EPAYTEST", ""},
		{"empty merchant", "", "secret"},
		{"both empty", "", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEsewaAdapter(tc.merchant, tc.secret, "", "", "")
			_, err := e.InitiatePayment(context.Background(), PaymentRequest{Amount: 100})
			if !errorsIsMissingConfig(err) {
				t.Errorf("err = %v, want ErrMissingConfig", err)
			}
		})
	}
}
