package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/authgate/internal/client/models"
)

// HTTPClient talks JSON over HTTP to the authentication server.
// Every request carries the configured timeout; there are no retries.
type HTTPClient struct {
	endpointURL string
	httpClient  *http.Client
}

func NewHTTPClient(endpointURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		endpointURL: strings.TrimRight(endpointURL, "/"),
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// credentialsRequest is the body of /register and /login.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// errorResponse is the {"error": ...} body the server sends on failure.
type errorResponse struct {
	Error string `json:"error"`
}

const usernameTakenMessage = "Username already exists."

// doJSON executes a request and decodes the response body into out (when out
// is non-nil and the status is 2xx). Network failures map to ErrUnavailable.
func (c *HTTPClient) doJSON(ctx context.Context, method, path, token string, body any, out any) (int, *errorResponse, error) {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpointURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out != nil {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return resp.StatusCode, nil, fmt.Errorf("error decoding response: %w", err)
			}
		}
		return resp.StatusCode, nil, nil
	}

	// error body is best effort, the status code alone is enough to map
	var er errorResponse
	_ = json.NewDecoder(resp.Body).Decode(&er)
	return resp.StatusCode, &er, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, password string) error {
	status, er, err := c.doJSON(ctx, http.MethodPost, "/register", "", credentialsRequest{Username: username, Password: password}, nil)
	if err != nil {
		return err
	}
	return c.mapError(status, er)
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	status, er, err := c.doJSON(ctx, http.MethodPost, "/login", "", credentialsRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	if err := c.mapError(status, er); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Profile(ctx context.Context, token string) (*models.Profile, error) {
	var p models.Profile
	status, er, err := c.doJSON(ctx, http.MethodGet, "/api/profile", token, nil, &p)
	if err != nil {
		return nil, err
	}
	if err := c.mapError(status, er); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// mapError translates an HTTP error status into a package sentinel.
func (c *HTTPClient) mapError(status int, er *errorResponse) error {
	if status >= 200 && status < 300 {
		return nil
	}

	msg := ""
	if er != nil {
		msg = er.Error
	}

	switch {
	case status == http.StatusBadRequest && msg == usernameTakenMessage:
		return ErrUsernameTaken
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status >= 500:
		return ErrServer
	default:
		if msg != "" {
			return fmt.Errorf("server rejected request: %s", msg)
		}
		return fmt.Errorf("unexpected status %d", status)
	}
}
