package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/gymdesk/gymdesk/internal/config"
)

// Client is a typed HTTP client for the gym backend. Not safe for
// concurrent use while the token is being swapped.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// New builds a client from the loaded configuration. A zero RATE_LIMIT_RPS
// disables client-side throttling.
func New(cfg *config.Config) *Client {
	c := &Client{
		baseURL:    cfg.APIBaseURL,
		token:      cfg.APIToken,
		httpClient: &http.Client{Timeout: time.Duration(cfg.APITimeoutSec) * time.Second},
	}
	if cfg.RateLimitRPS > 0 {
		burst := cfg.RateLimitBurst
		if burst <= 0 {
			burst = cfg.RateLimitRPS
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), burst)
	}
	return c
}

// SetToken installs the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError carries the backend's error payload for a non-2xx response.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// GenericErrorMessage is the fallback shown when the backend gives us
// nothing usable.
const GenericErrorMessage = "request failed, please try again"

// errorPayload matches the two error shapes the backend produces.
type errorPayload struct {
	TranslatedMessage string `json:"translatedMessage"`
	Err               struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// decodeAPIError picks the most specific message available:
// translatedMessage, then error.message, then the generic fallback.
func decodeAPIError(status int, body []byte) *APIError {
	var payload errorPayload
	_ = json.Unmarshal(body, &payload)

	msg := payload.TranslatedMessage
	if msg == "" {
		msg = payload.Err.Message
	}
	if msg == "" {
		msg = GenericErrorMessage
	}
	return &APIError{Status: status, Code: payload.Err.Code, Message: msg}
}

// do issues one request and decodes the response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		return decodeAPIError(resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// createdResponse is the backend's reply to every create call.
type createdResponse struct {
	ID string `json:"id"`
}

// Login exchanges credentials for a bearer token and installs it on the
// client.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login response missing token")
	}
	c.token = resp.Token
	return resp.Token, nil
}
