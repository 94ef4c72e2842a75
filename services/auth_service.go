package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// AuthVerifier resolves a bearer credential from the auth platform to the
// user it was issued for.
type AuthVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

// PlatformAuthVerifier checks the credential against the auth platform's
// user endpoint.
type PlatformAuthVerifier struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewPlatformAuthVerifier(baseURL string) *PlatformAuthVerifier {
	return &PlatformAuthVerifier{BaseURL: baseURL, HTTPClient: http.DefaultClient}
}

// VerifyToken returns the authenticated user ID for a valid credential, or
// an error for a missing, expired or forged one.
func (pv *PlatformAuthVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", errors.New("missing credential")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pv.BaseURL+"/auth/v1/user", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := pv.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to verify credential: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("credential rejected with status %d", resp.StatusCode)
	}

	var user struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return "", fmt.Errorf("failed to parse auth response: %w", err)
	}
	if user.ID == "" {
		return "", errors.New("credential resolved to no user")
	}
	return user.ID, nil
}
