package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Luffyt01/HemoLink-sub000/domain"
)

// Client implements domain.BackendGateway against the HemoLink backend
// REST API. Every call carries the same request timeout; outcomes are
// normalized into ActionResults and transport failures never escape as
// Go errors.
type Client struct {
	authBase string
	reqBase  string
	http     *http.Client
	log      *zap.Logger
}

// NewClient creates a gateway client. authBase serves the auth/profile
// endpoints, reqBase the blood-request endpoints; both may point at the
// same host.
func NewClient(authBase, reqBase string, timeout time.Duration, log *zap.Logger) *Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
		ForceAttemptHTTP2:   true,
	}
	return &Client{
		authBase: authBase,
		reqBase:  reqBase,
		http: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		log: log,
	}
}

// errorBody is the union of error shapes the backend emits. Different
// endpoints populate different subsets; message extraction prefers
// "message" over "error".
type errorBody struct {
	Message    string              `json:"message"`
	Error      string              `json:"error"`
	StatusCode json.RawMessage     `json:"statusCode"`
	Errors     map[string][]string `json:"errors"`
}

type response struct {
	status int
	raw    json.RawMessage
	fail   errorBody
}

const missingTokenMessage = "Authorization token required"

// requireToken short-circuits protected calls that hold no bearer token.
// No HTTP request is issued in that case.
func requireToken(token string) (domain.ActionResult, bool) {
	if token == "" {
		return domain.AuthFailure(http.StatusUnauthorized, missingTokenMessage), false
	}
	return domain.ActionResult{}, true
}

// send issues exactly one HTTP call. A nil payload sends an explicit
// empty JSON body. The returned error is only ever a transport failure.
func (c *Client) send(ctx context.Context, method, url, token string, payload any) (*response, error) {
	if payload == nil {
		payload = struct{}{}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	out := &response{status: resp.StatusCode}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if len(raw) > 0 {
			out.raw = json.RawMessage(raw)
		}
		return out, nil
	}
	// Error bodies are best-effort JSON; an unparseable body just leaves
	// the generic message in place.
	_ = json.Unmarshal(raw, &out.fail)
	return out, nil
}

// finish maps a send outcome into the uniform result contract.
func (c *Client) finish(op, successMessage, genericMessage string, resp *response, err error) domain.ActionResult {
	if err != nil {
		c.log.Warn("backend: request failed",
			zap.String("operation", op), zap.Error(err))
		return domain.NetworkFailure(err.Error())
	}

	if resp.status >= 200 && resp.status < 300 {
		return domain.Success(successMessage, resp.raw)
	}

	message := resp.fail.Message
	if message == "" {
		message = resp.fail.Error
	}
	if message == "" {
		message = genericMessage
	}

	c.log.Info("backend: error response",
		zap.String("operation", op), zap.Int("status", resp.status), zap.String("message", message))

	switch resp.status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.AuthFailure(resp.status, message)
	case http.StatusNotFound:
		return domain.NotFoundFailure(message)
	default:
		return domain.RemoteFailure(resp.status, message, resp.fail.Errors)
	}
}
