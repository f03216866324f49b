package payments

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Legacy wallet deep links. These open the native app directly instead of a
// hosted payment page; the wallet shows its own confirmation UI, so there is
// nothing to sign and no response to parse.

type KhaltiDeepLink struct {
	MerchantID   string
	MerchantName string
}

func NewKhaltiDeepLink(merchantID, merchantName string) *KhaltiDeepLink {
	return &KhaltiDeepLink{MerchantID: merchantID, MerchantName: merchantName}
}

func (d *KhaltiDeepLink) InitiatePayment(ctx context.Context, req PaymentRequest) (PaymentResponse, error) {
	if d.MerchantID == "" {
		return PaymentResponse{}, fmt.Errorf("khalti deep link: %w", ErrMissingConfig)
	}

	ref := strconv.FormatInt(time.Now().UnixMilli(), 10)
	amount := strconv.Itoa(paisa(req.Amount))

	link := fmt.Sprintf(
		"khalti://pay?amount=%s&merchant_id=%s&transaction_uuid=%s&product_name=%s&product_url=%s&product_category=&merchant_name=%s",
		amount,
		url.QueryEscape(d.MerchantID),
		ref,
		url.QueryEscape(req.ProductName),
		url.QueryEscape(req.ProductURL),
		url.QueryEscape(d.MerchantName),
	)

	return PaymentResponse{
		Mode:       ModeDeepLink,
		PaymentURL: link,
		Reference:  ref,
	}, nil
}

type EsewaDeepLink struct {
	MerchantCode string
}

func NewEsewaDeepLink(merchantCode string) *EsewaDeepLink {
	return &EsewaDeepLink{MerchantCode: merchantCode}
}

func (d *EsewaDeepLink) InitiatePayment(ctx context.Context, req PaymentRequest) (PaymentResponse, error) {
	if d.MerchantCode == "" {
		return PaymentResponse{}, fmt.Errorf("esewa deep link: %w", ErrMissingConfig)
	}

	ref := strconv.FormatInt(time.Now().UnixMilli(), 10)

	link := fmt.Sprintf(
		"esewa://pay?amount=%s&merchant_code=%s&ref_id=%s&product_name=%s",
		decimalAmount(req.Amount),
		url.QueryEscape(d.MerchantCode),
		ref,
		url.QueryEscape(req.ProductName),
	)

	return PaymentResponse{
		Mode:       ModeDeepLink,
		PaymentURL: link,
		Reference:  ref,
	}, nil
}
