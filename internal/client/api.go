// Package client implements the HTTP client authctl uses to talk to the
// authentication server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type APIClient struct {
	baseURL string
	hc      *http.Client
}

func New(baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: 15 * time.Second},
	}
}

type envelope struct {
	Type      string          `json:"type"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *APIClient) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	env := &envelope{}
	if err := json.NewDecoder(resp.Body).Decode(env); err != nil {
		return nil, fmt.Errorf("unexpected response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s", env.Message)
	}

	return env, nil
}

// Register creates an account and returns its public id.
func (c *APIClient) Register(ctx context.Context, email, password string) (string, error) {
	env, err := c.do(ctx, http.MethodPost, "/user/signup/register", credentials{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	var data struct {
		User struct {
			UserID string `json:"userId"`
		} `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", fmt.Errorf("unexpected response: %w", err)
	}

	return data.User.UserID, nil
}

// Login verifies the credentials and returns the bearer token.
func (c *APIClient) Login(ctx context.Context, email, password string) (string, error) {
	env, err := c.do(ctx, http.MethodPost, "/user/signin/login", credentials{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", fmt.Errorf("unexpected response: %w", err)
	}

	return data.Token, nil
}

// Status reports the server's status message.
func (c *APIClient) Status(ctx context.Context) (string, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/status", nil)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}
