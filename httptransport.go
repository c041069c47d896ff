package liqpay

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/liqpay-go/liqpay/signature"
)

// Transport delivers a signed envelope to the gateway and returns the raw
// reply. The client core performs no network I/O itself; implement this
// interface to route requests through a proxy, a queue, or a test double.
type Transport interface {
	Send(ctx context.Context, envelope signature.Envelope) (status int, body []byte, err error)
}

// TransportFunc lifts bare functions into [Transport].
type TransportFunc func(ctx context.Context, envelope signature.Envelope) (int, []byte, error)

// Send delegates to the wrapped function.
func (f TransportFunc) Send(ctx context.Context, envelope signature.Envelope) (int, []byte, error) {
	return f(ctx, envelope)
}

// maxResponseBytes caps how much of a gateway reply is read. Real replies
// are a few KB; registry exports are the largest at a few MB.
const maxResponseBytes = 16 << 20

// HTTPTransport posts envelopes as `data`/`signature` form fields, which is
// the wire format the gateway mandates.
type HTTPTransport struct {
	endpoint string
	client   *http.Client
}

// NewHTTPTransport builds the default transport. A nil client falls back to
// http.DefaultClient.
func NewHTTPTransport(endpoint string, client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{endpoint: endpoint, client: client}
}

// Send implements [Transport].
func (t *HTTPTransport) Send(ctx context.Context, envelope signature.Envelope) (int, []byte, error) {
	form := url.Values{
		"data":      {envelope.Data},
		"signature": {envelope.Signature},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return 0, nil, fmt.Errorf("liqpay: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("liqpay: send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("liqpay: read response: %w", err)
	}
	return resp.StatusCode, body, nil
}
