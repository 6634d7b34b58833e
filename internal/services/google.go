package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// GoogleService verifies externally-issued Google ID tokens against the
// configured OAuth client ID.
type GoogleService struct {
	clientID string
	client   *http.Client
	endpoint string
}

// GoogleClaims carries the identity fields extracted from a verified token.
type GoogleClaims struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Aud     string `json:"aud"`
	Exp     string `json:"exp"`
}

// NewGoogleService constructs a GoogleService.
func NewGoogleService(clientID string) *GoogleService {
	return &GoogleService{
		clientID: clientID,
		client:   &http.Client{Timeout: 15 * time.Second},
		endpoint: googleTokenInfoURL,
	}
}

// VerifyIDToken validates the token through Google's tokeninfo endpoint,
// which checks the signature server-side; audience and expiry are checked
// here. Returns the token's identity claims.
func (s *GoogleService) VerifyIDToken(ctx context.Context, idToken string) (*GoogleClaims, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		s.endpoint+"?id_token="+url.QueryEscape(idToken), nil)
	if err != nil {
		return nil, fmt.Errorf("google tokeninfo request build: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google tokeninfo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("google tokeninfo rejected token: status %d, body: %s", resp.StatusCode, string(body))
	}

	var claims GoogleClaims
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		return nil, fmt.Errorf("google tokeninfo unmarshal: %w", err)
	}

	if s.clientID != "" && claims.Aud != s.clientID {
		return nil, fmt.Errorf("google token audience mismatch")
	}

	if exp, err := strconv.ParseInt(claims.Exp, 10, 64); err == nil {
		if time.Unix(exp, 0).Before(time.Now()) {
			return nil, fmt.Errorf("google token expired")
		}
	}

	if claims.Sub == "" {
		return nil, fmt.Errorf("google token missing subject")
	}

	return &claims, nil
}
