package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// WhatsAppService delivers one-time codes over Twilio's WhatsApp channel.
// Without live credentials it logs the code instead, so the demo flow keeps
// working with no Twilio account.
type WhatsAppService struct {
	sid        string
	authToken  string
	fromNumber string
	client     *http.Client
	baseURL    string
}

// NewWhatsAppService constructs a WhatsAppService.
func NewWhatsAppService(sid, authToken, fromNumber string) *WhatsAppService {
	return &WhatsAppService{
		sid:        sid,
		authToken:  authToken,
		fromNumber: fromNumber,
		client:     &http.Client{Timeout: 15 * time.Second},
		baseURL:    "https://api.twilio.com",
	}
}

// Live reports whether real Twilio credentials are configured.
func (s *WhatsAppService) Live() bool {
	return s.sid != "" && s.authToken != ""
}

// SendCode delivers a verification code to the given phone number. In demo
// mode the code is written to the server log instead.
func (s *WhatsAppService) SendCode(ctx context.Context, phone, code string) error {
	if !s.Live() {
		log.Printf("[WhatsApp] simulated OTP for %s: %s", phone, code)
		return nil
	}

	body := fmt.Sprintf("Your Shipra verification code is %s", code)
	return withRetry(ctx, func() error {
		return s.send(ctx, phone, body)
	})
}

func (s *WhatsAppService) send(ctx context.Context, phone, body string) error {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.baseURL, s.sid)

	form := url.Values{}
	form.Set("From", "whatsapp:"+s.fromNumber)
	form.Set("To", "whatsapp:"+phone)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("twilio request build: %w", err)
	}
	req.SetBasicAuth(s.sid, s.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("twilio request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("twilio message failed: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
