// Package github drives the three-step OAuth handshake against GitHub:
// authorization code in, provider access token, then the user profile.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultTokenURL = "https://github.com/login/oauth/access_token"
	defaultUserURL  = "https://api.github.com/user"

	// requestTimeout bounds each provider round trip so a slow or
	// unreachable provider cannot hang a login request indefinitely.
	requestTimeout = 10 * time.Second
)

// ErrUpstream covers every provider failure: unreachable host, rejected
// code, unusable payload. Callers report it uniformly as an invalid code.
var ErrUpstream = errors.New("github: provider request failed")

// Profile is the normalized external identity returned by the provider.
type Profile struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccessToken string `json:"-"`
}

// Client exchanges authorization codes for GitHub identities. The zero
// endpoints default to github.com; tests point them at a stub server.
type Client struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	UserURL      string

	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient builds a federation client with a bounded-timeout HTTP client
// and an outbound limiter so a burst of federated logins cannot hammer the
// provider.
func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     defaultTokenURL,
		UserURL:      defaultUserURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(10), 20),
	}
}

// ExchangeCode trades an authorization code for a provider access token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	q := url.Values{}
	q.Set("client_id", c.ClientID)
	q.Set("client_secret", c.ClientSecret)
	q.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.TokenURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: token endpoint returned %d", ErrUpstream, resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if payload.AccessToken == "" {
		// GitHub reports a rejected code as 200 with an error body.
		return "", fmt.Errorf("%w: no access token in response", ErrUpstream)
	}

	return payload.AccessToken, nil
}

// FetchUser loads the provider profile for an access token.
func (c *Client) FetchUser(ctx context.Context, accessToken string) (Profile, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Profile{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.UserURL, nil)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Profile{}, fmt.Errorf("%w: user endpoint returned %d", ErrUpstream, resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return Profile{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	profile.AccessToken = accessToken
	return profile, nil
}

// Identity runs the full handshake: code to token to profile. Both round
// trips are sequential; the second depends on the first's output.
func (c *Client) Identity(ctx context.Context, code string) (Profile, error) {
	token, err := c.ExchangeCode(ctx, code)
	if err != nil {
		return Profile{}, err
	}
	return c.FetchUser(ctx, token)
}
