// Package contract talks to the contract backend: the remote service that
// exchanges an attach token for a machine credential and the entitlement
// set the subscription grants. enable and disable never touch the
// network; only attach, detach and refresh go through this client.
package contract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dixonmyles/ubuntu-advantage-client/pkg/logging"
)

const (
	defaultBaseURL = "https://contracts.canonical.com"
	requestTimeout = 30 * time.Second
)

// APIError is a structured error returned by the contract backend.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("contract API error %d: %s", e.Code, e.Message)
}

// InvalidToken reports whether the backend rejected the credential.
func (e *APIError) InvalidToken() bool {
	return e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden
}

// Subscription is the backend's view of an attached machine.
type Subscription struct {
	AccountName  string    `json:"accountName"`
	MachineToken string    `json:"machineToken"`
	Entitlements []string  `json:"entitlements"`
	Expires      time.Time `json:"expires"`
}

// Client is an HTTP client for the contract backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the default backend. The base URL can be
// overridden with UA_CONTRACT_URL, which staging environments rely on.
func NewClient() *Client {
	base := os.Getenv("UA_CONTRACT_URL")
	if base == "" {
		base = defaultBaseURL
	}
	return NewClientWithURL(base)
}

// NewClientWithURL creates a client against a specific base URL.
func NewClientWithURL(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Attach exchanges an attach token for a machine subscription.
func (c *Client) Attach(ctx context.Context, token string) (Subscription, error) {
	var sub Subscription
	err := c.do(ctx, "/v1/context/machines/token", token, map[string]string{"attachToken": token}, &sub)
	return sub, err
}

// Refresh re-fetches the entitlement set using the machine token obtained
// at attach time.
func (c *Client) Refresh(ctx context.Context, machineToken string) (Subscription, error) {
	var sub Subscription
	err := c.do(ctx, "/v1/context/machines/refresh", machineToken, nil, &sub)
	return sub, err
}

// Detach releases the machine from its subscription.
func (c *Client) Detach(ctx context.Context, machineToken string) error {
	return c.do(ctx, "/v1/context/machines/detach", machineToken, nil, nil)
}

func (c *Client) do(ctx context.Context, path, bearer string, body interface{}, out interface{}) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+bearer)
	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)

	logging.Debug("Contract", "POST %s (request %s)", path, requestID)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("contacting contract backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Code: resp.StatusCode}
		data, _ := io.ReadAll(resp.Body)
		var decoded struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &decoded) == nil && decoded.Message != "" {
			apiErr.Message = decoded.Message
		} else {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		logging.Error("Contract", apiErr, "request %s failed", requestID)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding contract response: %w", err)
	}
	return nil
}
