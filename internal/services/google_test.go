package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func tokenInfoServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id_token") == "" {
			t.Errorf("missing id_token query parameter")
		}
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
}

func TestVerifyIDToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()
	srv := tokenInfoServer(t, http.StatusOK, fmt.Sprintf(
		`{"sub":"sub-1","email":"rider@example.com","name":"Rider","picture":"p","aud":"client-1","exp":"%d"}`, exp))
	defer srv.Close()

	svc := NewGoogleService("client-1")
	svc.endpoint = srv.URL

	claims, err := svc.VerifyIDToken(context.Background(), "token")
	if err != nil {
		t.Fatalf("VerifyIDToken: %v", err)
	}
	if claims.Sub != "sub-1" || claims.Email != "rider@example.com" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestVerifyIDTokenAudienceMismatch(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()
	srv := tokenInfoServer(t, http.StatusOK, fmt.Sprintf(
		`{"sub":"sub-1","aud":"someone-else","exp":"%d"}`, exp))
	defer srv.Close()

	svc := NewGoogleService("client-1")
	svc.endpoint = srv.URL

	if _, err := svc.VerifyIDToken(context.Background(), "token"); err == nil {
		t.Fatalf("expected audience mismatch error")
	}
}

func TestVerifyIDTokenExpired(t *testing.T) {
	exp := time.Now().Add(-time.Hour).Unix()
	srv := tokenInfoServer(t, http.StatusOK, fmt.Sprintf(
		`{"sub":"sub-1","aud":"client-1","exp":"%d"}`, exp))
	defer srv.Close()

	svc := NewGoogleService("client-1")
	svc.endpoint = srv.URL

	if _, err := svc.VerifyIDToken(context.Background(), "token"); err == nil {
		t.Fatalf("expected expiry error")
	}
}

func TestVerifyIDTokenRejected(t *testing.T) {
	srv := tokenInfoServer(t, http.StatusBadRequest, `{"error":"invalid_token"}`)
	defer srv.Close()

	svc := NewGoogleService("client-1")
	svc.endpoint = srv.URL

	if _, err := svc.VerifyIDToken(context.Background(), "garbage"); err == nil {
		t.Fatalf("expected rejection error")
	}
}
