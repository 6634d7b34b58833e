package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWhatsAppSimulatedWithoutCredentials(t *testing.T) {
	svc := NewWhatsAppService("", "", "")
	if svc.Live() {
		t.Fatalf("Live() = true without credentials")
	}
	// Demo mode logs the code instead of calling Twilio.
	if err := svc.SendCode(context.Background(), "9876543210", "123456"); err != nil {
		t.Fatalf("SendCode in demo mode: %v", err)
	}
}

func TestWhatsAppSendCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if got := r.FormValue("To"); got != "whatsapp:+919876543210" {
			t.Errorf("To = %q", got)
		}
		if got := r.FormValue("From"); got != "whatsapp:+14155238886" {
			t.Errorf("From = %q", got)
		}
		if got := r.FormValue("Body"); got != "Your Shipra verification code is 424242" {
			t.Errorf("Body = %q", got)
		}
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"sid":"SM1"}`)
	}))
	defer srv.Close()

	svc := NewWhatsAppService("AC123", "token", "+14155238886")
	svc.baseURL = srv.URL

	if !svc.Live() {
		t.Fatalf("Live() = false with credentials")
	}
	if err := svc.SendCode(context.Background(), "+919876543210", "424242"); err != nil {
		t.Fatalf("SendCode: %v", err)
	}
}
