package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

type KhaltiAdapter struct {
	MerchantID   string
	MerchantName string
	SecretKey    string
	BaseURL      string
	ReturnURL    string
	WebsiteURL   string
	httpClient   *http.Client
	breaker      *gobreaker.CircuitBreaker
}

func NewKhaltiAdapter(merchantID, merchantName, secretKey, baseURL, returnURL, websiteURL string) *KhaltiAdapter {
	return &KhaltiAdapter{
		MerchantID:   merchantID,
		MerchantName: merchantName,
		SecretKey:    secretKey,
		BaseURL:      baseURL,
		ReturnURL:    returnURL,
		WebsiteURL:   websiteURL,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "khalti-initiate",
			Timeout: 30 * time.Second,
		}),
	}
}

type khaltiInitiateResponse struct {
	Pidx       string `json:"pidx"`
	PaymentURL string `json:"payment_url"`
	ExpiresAt  string `json:"expires_at"`
	ExpiresIn  int    `json:"expires_in"`
}

func (k *KhaltiAdapter) InitiatePayment(ctx context.Context, req PaymentRequest) (PaymentResponse, error) {
	if k.MerchantID == "" || k.SecretKey == "" {
		return PaymentResponse{}, fmt.Errorf("khalti: %w", ErrMissingConfig)
	}

	orderID := orderReference(time.Now())

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

	payload := map[string]any{
		"amount":              paisa(req.Amount),
		"purchase_order_id":   orderID,
		"purchase_order_name": req.ProductName,
		"customer_info": map[string]string{
			"name":  customerName,
			"email": customerEmail,
			"phone": customerPhone,
		},
		"return_url":  k.ReturnURL,
		"website_url": k.WebsiteURL,
		"merchant_info": map[string]string{
			"name": k.MerchantName,
		},
	}

	body, _ := json.Marshal(payload)

	out, err := k.breaker.Execute(func() (any, error) {
		return k.doInitiate(ctx, body)
	})
	if err != nil {
		return PaymentResponse{}, fmt.Errorf("khalti initiate: %w", err)
	}
	res := out.(khaltiInitiateResponse)

	return PaymentResponse{
		Mode:       ModeRedirect,
		PaymentURL: res.PaymentURL,
		Reference:  orderID,
		Data: map[string]string{
			"pidx":        res.Pidx,
			"payment_url": res.PaymentURL,
			"expires_at":  res.ExpiresAt,
		},
	}, nil
}

func (k *KhaltiAdapter) doInitiate(ctx context.Context, body []byte) (khaltiInitiateResponse, error) {
	url := k.BaseURL + "/epayment/initiate/"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return khaltiInitiateResponse{}, err
	}
	httpReq.Header.Set("Authorization", "Key "+k.SecretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := k.httpClient.Do(httpReq)
	if err != nil {
		return khaltiInitiateResponse{}, err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		// keep the raw body for logging/support
		return khaltiInitiateResponse{}, fmt.Errorf("http=%d body=%s", resp.StatusCode, string(raw))
	}

	var res khaltiInitiateResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return khaltiInitiateResponse{}, fmt.Errorf("decode: %w body=%s", err, string(raw))
	}
	if res.PaymentURL == "" {
		return khaltiInitiateResponse{}, fmt.Errorf("no payment_url in response body=%s", string(raw))
	}
	return res, nil
}
