package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RazorpayService opens payment orders with the Razorpay gateway. The
// service is inert unless both halves of the key pair are configured, in
// which case bookings skip the payment step entirely.
type RazorpayService struct {
	keyID     string
	keySecret string
	client    *http.Client
	baseURL   string
}

// RazorpayOrder is the subset of the gateway's order response the booking
// flow needs.
type RazorpayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// NewRazorpayService constructs a RazorpayService.
func NewRazorpayService(keyID, keySecret string) *RazorpayService {
	return &RazorpayService{
		keyID:     keyID,
		keySecret: keySecret,
		client:    &http.Client{Timeout: 15 * time.Second},
		baseURL:   "https://api.razorpay.com",
	}
}

// Enabled reports whether the gateway credential pair is configured.
func (s *RazorpayService) Enabled() bool {
	return s.keyID != "" && s.keySecret != ""
}

// KeyID returns the publishable key handed to clients for checkout.
func (s *RazorpayService) KeyID() string {
	return s.keyID
}

// CreateOrder opens a gateway order for the given amount in minor currency
// units (paise for INR).
func (s *RazorpayService) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*RazorpayOrder, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("razorpay credentials not configured")
	}

	payload, err := json.Marshal(map[string]any{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	})
	if err != nil {
		return nil, fmt.Errorf("razorpay order marshal: %w", err)
	}

	var order RazorpayOrder
	err = withRetry(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			s.baseURL+"/v1/orders", bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("razorpay request build: %w", err)
		}
		req.SetBasicAuth(s.keyID, s.keySecret)
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.client.Do(req)
		if err != nil {
			return fmt.Errorf("razorpay request: %w", err)
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("razorpay order failed: status %d, body: %s", resp.StatusCode, string(body))
		}

		if err := json.Unmarshal(body, &order); err != nil {
			return fmt.Errorf("razorpay order unmarshal: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}
