package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// fonepayFieldOrder is the fixed field order whose delimiter-free value
// concatenation is the signing input (PID+MD+PRN+AMT+CRN+DT+R1+R2+RU).
var fonepayFieldOrder = []string{"PID", "MD", "PRN", "AMT", "CRN", "DT", "R1", "R2", "RU"}

type FonepayAdapter struct {
	MerchantCode string // PID
	SecretKey    string
	BaseURL      string
	ReturnURL    string
	Remarks      string // R2, typically the merchant address
}

func NewFonepayAdapter(merchantCode, secretKey, baseURL, returnURL, remarks string) *FonepayAdapter {
	return &FonepayAdapter{
		MerchantCode: merchantCode,
		SecretKey:    secretKey,
		BaseURL:      baseURL,
		ReturnURL:    returnURL,
		Remarks:      remarks,
	}
}

func (f *FonepayAdapter) InitiatePayment(ctx context.Context, req PaymentRequest) (PaymentResponse, error) {
	if f.MerchantCode == "" || f.SecretKey == "" {
		return PaymentResponse{}, fmt.Errorf("fonepay: %w", ErrMissingConfig)
	}

	now := time.Now()
	prn := fmt.Sprintf("PRN-%d", now.UnixMilli())

	remarks := f.Remarks
	if remarks == "" {
		remarks = "N/A"
	}

	fields := map[string]string{
		"PID": f.MerchantCode,
		"MD":  "P",
		"PRN": prn,
		"AMT": decimalAmount(req.Amount),
		"CRN": "NPR",
		"DT":  now.Format("20060102"),
		"R1":  req.ProductName,
		"R2":  remarks,
		"RU":  f.ReturnURL,
	}
	fields["DV"] = f.sign(fields)

	// Query params are emitted in signing order; the hosted page is
	// order-insensitive but it keeps the redirect URL inspectable.
	var q strings.Builder
	for _, key := range fonepayFieldOrder {
		if q.Len() > 0 {
			q.WriteByte('&')
		}
		q.WriteString(key)
		q.WriteByte('=')
		q.WriteString(url.QueryEscape(fields[key]))
	}
	q.WriteString("&DV=")
	q.WriteString(fields["DV"])

	return PaymentResponse{
		Mode:       ModeRedirect,
		PaymentURL: f.BaseURL + "?" + q.String(),
		Reference:  prn,
		Data:       fields,
	}, nil
}

// sign computes HMAC-SHA512 over the raw field value concatenation,
// hex encoded and upper-cased as the gateway expects.
func (f *FonepayAdapter) sign(fields map[string]string) string {
	var raw strings.Builder
	for _, key := range fonepayFieldOrder {
		raw.WriteString(fields[key])
	}
	mac := hmac.New(sha512.New, []byte(f.SecretKey))
	mac.Write([]byte(raw.String()))
	return strings.ToUpper(hex.EncodeToString(mac.Sum(nil)))
}
