package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ticket_checkout/internal/usecase/interfaces"
)

var (
	ErrGatewayNotConfigured  = errors.New("payment gateway not configured")
	ErrMissingGatewayBaseURL = errors.New("missing PAYMENT_GATEWAY_BASE_URL")
	ErrInitiationRejected    = errors.New("payment gateway rejected initiation")
	ErrVerificationUnusable  = errors.New("payment gateway returned no usable verification response")
)

const (
	initiationPath   = "/collections"
	verifyPathPrefix = "/transactions/"
	verifyPathSuffix = "/status"
	verifyPostPath   = "/transactions/status"

	maxResponseBytes = 1 << 20
	defaultTimeout   = 30 * time.Second
)

// MobileMoneyGateway talks to the mobile-money payment gateway over HTTP.
//
// Endpoints, relative to the configured base URL:
//   - POST /collections                      initiation
//   - GET  /transactions/{reference}/status  verification, tried first
//   - POST /transactions/status              verification fallback, body {"reference": ...}

type MobileMoneyGateway struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IPaymentGateway = (*MobileMoneyGateway)(nil)

func NewMobileMoneyGateway(baseURL string, timeout time.Duration) (*MobileMoneyGateway, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[payment][gateway] missing PAYMENT_GATEWAY_BASE_URL")
		return nil, ErrMissingGatewayBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("parse gateway base url: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	log.Printf("[payment][gateway] mobile money client initialized base_url=%s", baseURL)
	return &MobileMoneyGateway{baseURL: baseURL, client: &http.Client{Timeout: timeout}}, nil
}

// Initiate posts the collection request. Any non-2xx status is an error wrapping
// ErrInitiationRejected.
func (g *MobileMoneyGateway) Initiate(ctx context.Context, req interfaces.InitiationRequest) (json.RawMessage, error) {
	if g == nil || g.client == nil {
		return nil, ErrGatewayNotConfigured
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	log.Printf("[payment][gateway] initiate start network=%s amount=%s", req.Network, req.Amount)

	status, raw, err := g.do(ctx, http.MethodPost, g.baseURL+initiationPath, body)
	if err != nil {
		log.Printf("[payment][gateway] initiate transport failed err=%v", err)
		return nil, err
	}
	if status < 200 || status > 299 {
		log.Printf("[payment][gateway] initiate rejected http_status=%d payload_len=%d", status, len(raw))
		return nil, fmt.Errorf("%w: http status %d", ErrInitiationRejected, status)
	}
	log.Printf("[payment][gateway] initiate success http_status=%d payload_len=%d", status, len(raw))
	return raw, nil
}

// Verify asks for the status of one reference, by GET first and by POST when the GET
// does not produce a usable response.
func (g *MobileMoneyGateway) Verify(ctx context.Context, reference string) (json.RawMessage, error) {
	if g == nil || g.client == nil {
		return nil, ErrGatewayNotConfigured
	}

	attempts := []struct {
		method      string
		url         string
		body        []byte
		hasFallback bool
	}{
		{method: http.MethodGet, url: g.baseURL + verifyPathPrefix + url.PathEscape(reference) + verifyPathSuffix, hasFallback: true},
		{method: http.MethodPost, url: g.baseURL + verifyPostPath, body: mustJSON(map[string]string{"reference": reference})},
	}

	var lastErr error
	for _, a := range attempts {
		status, raw, err := g.do(ctx, a.method, a.url, a.body)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			log.Printf("[payment][gateway] verify %s transport failed reference=%s err=%v", a.method, reference, err)
			continue
		}
		if usable(status, raw, a.hasFallback) {
			return raw, nil
		}
		lastErr = fmt.Errorf("%w: %s http status %d", ErrVerificationUnusable, a.method, status)
		log.Printf("[payment][gateway] verify %s unusable reference=%s http_status=%d payload_len=%d", a.method, reference, status, len(raw))
	}
	return nil, lastErr
}

func (g *MobileMoneyGateway) do(ctx context.Context, method, target string, body []byte) (int, json.RawMessage, error) {
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, rdr)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, raw, nil
}

// usable accepts 2xx JSON object responses. Declines often come back as 4xx with a
// JSON body describing them, so those are usable too. When a fallback request
// remains, a 400 means the gateway rejected this request shape and is not usable.
func usable(status int, raw []byte, hasFallback bool) bool {
	if status >= 500 || status == http.StatusNotFound || status == http.StatusMethodNotAllowed {
		return false
	}
	if hasFallback && status == http.StatusBadRequest {
		return false
	}
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{' && json.Valid(trimmed)
}

func mustJSON(v any) []byte {
	b, _ := json.Marshal(v)
	return b
}
