package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/shipra/internal/config"
	"github.com/example/shipra/internal/middleware"
	"github.com/example/shipra/internal/services"
	"github.com/example/shipra/internal/store"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:    "test-secret",
		TokenExpires: time.Hour,
		UseMockAuth:  true,
	}
}

// newTestApp wires the handlers exactly like the route registration does,
// but with stubbed provider adapters and an in-memory store.
func newTestApp(st *store.Store, cfg *config.Config, gateway PaymentGateway, google GoogleVerifier, whatsapp CodeSender) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})

	authHandler := NewAuthHandler(st, cfg, google, whatsapp)
	bookingHandler := NewBookingHandler(st, gateway)
	fleetHandler := NewFleetHandler(st)
	profileHandler := NewProfileHandler(st)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/google", authHandler.GoogleLogin)
	auth.Post("/whatsapp/send", authHandler.SendWhatsAppCode)
	auth.Post("/whatsapp/verify", authHandler.VerifyWhatsAppCode)

	api.Get("/locations", fleetHandler.ListLocations)
	api.Get("/birds/available", fleetHandler.ListAvailableBirds)

	api.Post("/bookings", bookingHandler.CreateBooking)
	api.Get("/bookings/history", bookingHandler.GetHistory)
	api.Get("/bookings/:id", bookingHandler.GetBookingStatus)
	api.Post("/bookings/:id/status", middleware.AuthMiddleware(cfg), bookingHandler.UpdateBookingStatus)

	api.Get("/user/profile", profileHandler.GetUserProfile)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any, headers map[string]string) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	resp.Body.Close()

	var decoded map[string]any
	if len(raw) > 0 {
		// Array responses are decoded by the callers that expect them.
		_ = json.Unmarshal(raw, &decoded)
	}
	resp.Body = io.NopCloser(bytes.NewReader(raw))
	return resp, decoded
}

type stubGateway struct {
	enabled    bool
	orderID    string
	err        error
	lastAmount int64
}

func (g *stubGateway) Enabled() bool { return g.enabled }

func (g *stubGateway) KeyID() string { return "rzp_test_key" }

func (g *stubGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*services.RazorpayOrder, error) {
	g.lastAmount = amount
	if g.err != nil {
		return nil, g.err
	}
	return &services.RazorpayOrder{ID: g.orderID, Amount: amount, Currency: currency, Receipt: receipt, Status: "created"}, nil
}

type stubVerifier struct {
	claims *services.GoogleClaims
	err    error
}

func (v *stubVerifier) VerifyIDToken(ctx context.Context, idToken string) (*services.GoogleClaims, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.claims, nil
}

type stubSender struct {
	live     bool
	lastCode string
	err      error
}

func (s *stubSender) Live() bool { return s.live }

func (s *stubSender) SendCode(ctx context.Context, phone, code string) error {
	if s.err != nil {
		return s.err
	}
	s.lastCode = code
	return nil
}
