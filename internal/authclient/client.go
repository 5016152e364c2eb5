// Package authclient talks to the external auth provider (a GoTrue
// compatible REST API). This service never checks credentials itself, every
// session operation is delegated here.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ProviderError carries the provider's own message so it can be shown to
// the user verbatim when available.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("auth provider returned status %d", e.StatusCode)
	}

	return e.Message
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SignInWithPassword performs the password grant against the provider's
// token endpoint and returns the issued session.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (Session, error) {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return Session{}, fmt.Errorf("json.Marshal -> %w", err)
	}

	url := c.baseURL + "/auth/v1/token?grant_type=password"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Session{}, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("c.httpClient.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidCredentials, readProviderError(resp))
	}
	if resp.StatusCode != http.StatusOK {
		return Session{}, readProviderError(resp)
	}

	var session Session
	if err = json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return Session{}, fmt.Errorf("json.Decode -> %w", err)
	}

	return session, nil
}

// GetUser resolves an access token to the user it belongs to, or an error
// when there is no live session behind it.
func (c *Client) GetUser(ctx context.Context, accessToken string) (User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return User{}, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return User{}, fmt.Errorf("c.httpClient.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return User{}, readProviderError(resp)
	}

	var user User
	if err = json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return User{}, fmt.Errorf("json.Decode -> %w", err)
	}

	return user, nil
}

// SignOut asks the provider to revoke the session behind the token.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/v1/logout", nil)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("c.httpClient.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return readProviderError(resp)
	}

	return nil
}

func readProviderError(resp *http.Response) error {
	payload := struct {
		Msg              string `json:"msg"`
		ErrorDescription string `json:"error_description"`
	}{}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil {
		_ = json.Unmarshal(body, &payload)
	}

	message := payload.Msg
	if message == "" {
		message = payload.ErrorDescription
	}

	return &ProviderError{
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}
