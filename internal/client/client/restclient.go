package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/oshepkov/lockbank/internal/client/models"
	"github.com/oshepkov/lockbank/internal/logging"
)

const (
	// httpTimeout is the default HTTP request timeout.
	httpTimeout = 30 * time.Second

	// maxResponseBody is the maximum response body size to read (1 MB).
	maxResponseBody = 1 << 20
)

// RESTClient talks JSON over HTTP(S) to the banking service.
type RESTClient struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
}

// Options configures the REST client.
type Options struct {
	// HTTPClient overrides the default HTTP client (useful for testing).
	HTTPClient *http.Client
	// Logger overrides the default slog-backed logger.
	Logger logging.Logger
}

// NewRESTClient builds a client bound to server:port. With useTLS the scheme
// is https and TLS 1.2 is the floor; certificate validation is left to the
// standard library.
func NewRESTClient(server, port string, useTLS bool, opts *Options) *RESTClient {
	scheme := "http"
	if useTLS {
		scheme = "https"
	}

	c := &RESTClient{
		baseURL: fmt.Sprintf("%s://%s:%s", scheme, server, port),
		httpClient: &http.Client{
			Timeout: httpTimeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{MinVersion: tls.VersionTLS12},
			},
		},
		log: logging.NewSlogLogger(slog.Default()),
	}

	if opts != nil {
		if opts.HTTPClient != nil {
			c.httpClient = opts.HTTPClient
		}
		if opts.Logger != nil {
			c.log = opts.Logger
		}
	}

	return c
}

func (c *RESTClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// statusResponse is the service's envelope for calls that return only a
// status code.
type statusResponse struct {
	StatusCode Status `json:"statusCode"`
}

// loginResponse is the body of a successful login call.
type loginResponse struct {
	StatusCode        Status `json:"statusCode"`
	SessionKey        string `json:"sessionKey"`
	SessionCreateDate string `json:"sessionCreateDate"`
}

// Login authenticates against the service. A non-NoError status is not an
// error at the transport level; it is returned inside the result for the
// caller to interpret.
func (c *RESTClient) Login(ctx context.Context, username, password string) (LoginResult, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/login", nil, map[string]any{
		"username": username,
		"password": password,
	})
	if err != nil {
		return LoginResult{}, err
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return LoginResult{}, fmt.Errorf("%w: decoding login response: %v", ErrCommunication, err)
	}

	return LoginResult{
		Status:            resp.StatusCode,
		SessionKey:        resp.SessionKey,
		SessionCreateDate: resp.SessionCreateDate,
	}, nil
}

// FetchAccounts lists the accounts visible to the current session.
func (c *RESTClient) FetchAccounts(ctx context.Context, sessionKey string) ([]models.Account, error) {
	params := url.Values{}
	params.Set("session_key", sessionKey)

	body, err := c.doRequest(ctx, http.MethodGet, "/accounts", params, nil)
	if err != nil {
		return nil, err
	}

	var accounts []models.Account
	if err := json.Unmarshal(body, &accounts); err != nil {
		return nil, fmt.Errorf("%w: decoding accounts response: %v", ErrCommunication, err)
	}
	return accounts, nil
}

// FetchStatement downloads the current statement content (HTML).
func (c *RESTClient) FetchStatement(ctx context.Context, sessionKey string) ([]byte, error) {
	params := url.Values{}
	params.Set("session_key", sessionKey)

	return c.doRequest(ctx, http.MethodGet, "/statement", params, nil)
}

// Transfer moves funds between two accounts and returns the service status.
func (c *RESTClient) Transfer(ctx context.Context, fromAccount, toAccount int, amount float64, sessionKey string) (Status, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/transfer", nil, map[string]any{
		"fromAccount": fromAccount,
		"toAccount":   toAccount,
		"amount":      amount,
		"sessionKey":  sessionKey,
	})
	if err != nil {
		return StatusNoOp, err
	}

	var resp statusResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return StatusNoOp, fmt.Errorf("%w: decoding transfer response: %v", ErrCommunication, err)
	}
	return resp.StatusCode, nil
}

// doRequest performs one HTTP round trip and returns the response body.
// Every request carries a generated request ID for log correlation.
func (c *RESTClient) doRequest(ctx context.Context, method, path string, params url.Values, payload any) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.log.With("request_id", requestID)
	log.Info(ctx, "banking service request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		mapped := mapTransportError(err)
		log.Error(ctx, "banking service request failed", "error", err)
		return nil, mapped
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrCommunication, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		log.Warn(ctx, "banking service rejected the session key", "path", path)
		return nil, fmt.Errorf("%w: %s", ErrAuthRejected, path)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: unexpected HTTP status %d", ErrCommunication, resp.StatusCode)
	}

	return body, nil
}

// mapTransportError folds low-level request errors into the client's
// sentinel taxonomy: certificate problems become ErrTrust, everything else
// ErrCommunication.
func mapTransportError(err error) error {
	var (
		certVerify  *tls.CertificateVerificationError
		unknownAuth x509.UnknownAuthorityError
		hostname    x509.HostnameError
		certInvalid x509.CertificateInvalidError
	)
	if errors.As(err, &certVerify) ||
		errors.As(err, &unknownAuth) ||
		errors.As(err, &hostname) ||
		errors.As(err, &certInvalid) {
		return fmt.Errorf("%w: %v", ErrTrust, err)
	}
	return fmt.Errorf("%w: %v", ErrCommunication, err)
}
