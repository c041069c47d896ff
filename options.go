package liqpay

import (
	"net/http"

	"github.com/liqpay-go/liqpay/signature"
)

type config struct {
	endpoint         string
	checkoutEndpoint string
	httpClient       *http.Client
	transport        Transport
	callbackAlg      signature.Algorithm
	algOverride      *signature.Algorithm
	sandbox          bool
}

// Option customizes client behavior.
type Option func(*config)

// WithHTTPClient replaces the http.Client used by the default transport.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = client
	}
}

// WithEndpoint points the default transport at a different API URL, e.g. a
// staging gateway or a local stub.
func WithEndpoint(endpoint string) Option {
	if endpoint == "" {
		panic("liqpay: endpoint must not be empty")
	}
	return func(cfg *config) {
		cfg.endpoint = endpoint
	}
}

// WithCheckoutEndpoint overrides the hosted checkout base URL.
func WithCheckoutEndpoint(endpoint string) Option {
	if endpoint == "" {
		panic("liqpay: checkout endpoint must not be empty")
	}
	return func(cfg *config) {
		cfg.checkoutEndpoint = endpoint
	}
}

// WithTransport swaps out the transport entirely. WithHTTPClient and
// WithEndpoint have no effect once a custom transport is set.
func WithTransport(t Transport) Option {
	return func(cfg *config) {
		cfg.transport = t
	}
}

// WithAlgorithm forces one digest for every request, overriding the
// per-operation bindings. Intended for gateways or test rigs that accept a
// single scheme.
func WithAlgorithm(alg signature.Algorithm) Option {
	return func(cfg *config) {
		cfg.algOverride = &alg
	}
}

// WithSandbox switches every outgoing request into the gateway's test mode:
// payments are simulated and no real funds move. A sandbox field already set
// on a request wins over the client-level flag.
func WithSandbox() Option {
	return func(cfg *config) {
		cfg.sandbox = true
	}
}

// WithCallbackAlgorithm sets the digest used to verify server callbacks.
// The default is SHA-1, which is what the gateway signs callbacks with.
func WithCallbackAlgorithm(alg signature.Algorithm) Option {
	return func(cfg *config) {
		cfg.callbackAlg = alg
	}
}
