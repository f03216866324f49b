package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"time"
)

// esewaSignedFields is the exact signed field set, in order, that eSewa's
// verification expects. Any deviation invalidates the signature remotely.
const esewaSignedFields = "total_amount,transaction_uuid,product_code"

type EsewaAdapter struct {
	MerchantCode string
	SecretKey    string
	FormURL      string
	SuccessURL   string
	FailureURL   string
}

func NewEsewaAdapter(merchantCode, secretKey, formURL, successURL, failureURL string) *EsewaAdapter {
	return &EsewaAdapter{
		MerchantCode: merchantCode,
		SecretKey:    secretKey,
		FormURL:      formURL,
		SuccessURL:   successURL,
		FailureURL:   failureURL,
	}
}

func (e *EsewaAdapter) InitiatePayment(ctx context.Context, req PaymentRequest) (PaymentResponse, error) {
	if e.MerchantCode == "" || e.SecretKey == "" {
		return PaymentResponse{}, fmt.Errorf("esewa: %w", ErrMissingConfig)
	}

	transactionUUID := txnReference(time.Now())
	total := decimalAmount(req.Amount)
	signature := e.sign(total, transactionUUID)

	customerName := req.CustomerName
	if customerName == "" {
		customerName = defaultCustomerName
	}
	customerEmail := req.CustomerEmail
	if customerEmail == "" {
		customerEmail = defaultCustomerEmail
	}
	customerPhone := req.CustomerPhone
	if customerPhone == "" {
		customerPhone = defaultCustomerPhone
	}

	formFields := map[string]string{
		"amount":                  total,
		"total_amount":            total,
		"transaction_uuid":        transactionUUID,
		"product_code":            e.MerchantCode,
		"success_url":             e.SuccessURL,
		"failure_url":             e.FailureURL,
		"signed_field_names":      esewaSignedFields,
		"signature":               signature,
		"tax_amount":              "0",
		"product_service_charge":  "0",
		"product_delivery_charge": "0",
		"customer_firstname":      customerName,
		"customer_email":          customerEmail,
		"customer_phone":          customerPhone,
	}

	return PaymentResponse{
		Mode:       ModeFormPost,
		PaymentURL: e.FormURL,
		Reference:  transactionUUID,
		Data:       formFields,
	}, nil
}

// sign computes the v2 form signature over the canonical string from the
// esewa docs: key=value pairs of the signed fields, in order, comma joined.
func (e *EsewaAdapter) sign(totalAmount, transactionUUID string) string {
	raw := esewaCanonicalString(totalAmount, transactionUUID, e.MerchantCode)
	mac := hmac.New(sha256.New, []byte(e.SecretKey))
	mac.Write([]byte(raw))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func esewaCanonicalString(totalAmount, transactionUUID, productCode string) string {
	return fmt.Sprintf("total_amount=%s,transaction_uuid=%s,product_code=%s", totalAmount, transactionUUID, productCode)
}
