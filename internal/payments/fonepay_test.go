package payments

import (
	"context"
	"strings"
	"testing"
)

func testFonepayAdapter() *FonepayAdapter {
	return NewFonepayAdapter(
		"2222610015419744",
		"fonepay-secret",
		"https://dev-clientapi.fonepay.com/api/merchantRequest",
		"http://localhost:5173/payment-success",
		"Kshireshwarnath MC",
	)
}

func TestFonepaySignatureShape(t *testing.T) {
	f := testFonepayAdapter()

	fields := map[string]string{
		"PID": f.MerchantCode,
		"MD":  "P",
		"PRN": "PRN-1700000000000",
		"AMT": "1000.00",
		"CRN": "NPR",
		"DT":  "20260830",
		"R1":  "Widget",
		"R2":  f.Remarks,
		"RU":  f.ReturnURL,
	}

	sig := f.sign(fields)
	if len(sig) != 128 {
		t.Errorf("signature length = %d, want 128 hex chars for SHA-512", len(sig))
	}
	if sig != strings.ToUpper(sig) {
		t.Errorf("signature is not upper-case: %q", sig)
	}
	if sig != f.sign(fields) {
		t.Error("same inputs signed differently")
	}

	fields["AMT"] = "1000.01"
	if f.sign(fields) == sig {
		t.Error("amount change did not change signature")
	}
}

func TestFonepayInitiateFieldOrder(t *testing.T) {
	f := testFonepayAdapter()

	resp, err := f.InitiatePayment(context.Background(), PaymentRequest{
		Amount:      1000,
		ProductName: "Widget",
	})
	if err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}

	if resp.Mode != ModeRedirect {
		t.Errorf("mode = %q, want %q", resp.Mode, ModeRedirect)
	}
	if resp.Data["AMT"] != "1000.00" {
		t.Errorf("AMT = %q, want 1000.00", resp.Data["AMT"])
	}
	if resp.Data["CRN"] != "NPR" {
		t.Errorf("CRN = %q, want NPR", resp.Data["CRN"])
	}
	if len(resp.Data["DT"]) != 8 {
		t.Errorf("DT = %q, want YYYYMMDD", resp.Data["DT"])
	}
	if !strings.HasPrefix(resp.Data["PRN"], "PRN-") {
		t.Errorf("PRN = %q, want PRN- prefix", resp.Data["PRN"])
	}

	// redirect URL carries the fields in signing order, DV last
	idx := -1
	for _, key := range append(fonepayFieldOrder, "DV") {
		pos := strings.Index(resp.PaymentURL, key+"=")
		if pos < 0 {
			t.Fatalf("redirect URL missing %s: %s", key, resp.PaymentURL)
		}
		if pos < idx {
			t.Errorf("field %s out of order in redirect URL", key)
		}
		idx = pos
	}

	if resp.Data["DV"] != f.sign(resp.Data) {
		t.Error("DV does not match recomputed signature over the field set")
	}
}

func TestFonepayInitiateMissingConfig(t *testing.T) {
	f := NewFonepayAdapter("", "", "https://dev-clientapi.fonepay.com", "", "")
	_, err := f.InitiatePayment(context.Background(), PaymentRequest{Amount: 100})
	if !errorsIsMissingConfig(err) {
		t.Errorf("err = %v, want ErrMissingConfig", err)
	}
}
