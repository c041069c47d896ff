package liqpay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/liqpay-go/liqpay/secret"
	"github.com/liqpay-go/liqpay/signature"
)

const (
	// DefaultEndpoint receives every server-server API call.
	DefaultEndpoint = "https://www.liqpay.ua/api/request"
	// DefaultCheckoutEndpoint hosts the redirect checkout page.
	DefaultCheckoutEndpoint = "https://www.liqpay.ua/api/3/checkout"
)

// Client prepares signed API calls and verifies gateway callbacks. It is
// immutable after construction and safe for concurrent use.
type Client struct {
	creds            signature.Credentials
	transport        Transport
	checkoutEndpoint string
	callbackAlg      signature.Algorithm
	algOverride      *signature.Algorithm
	sandbox          bool
}

// New builds a client for the given merchant credentials. The private key
// never leaves the client except inside signature digests.
func New(publicKey string, privateKey secret.Secret, opts ...Option) *Client {
	cfg := config{
		endpoint:         DefaultEndpoint,
		checkoutEndpoint: DefaultCheckoutEndpoint,
		callbackAlg:      signature.SHA1,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.transport == nil {
		cfg.transport = NewHTTPTransport(cfg.endpoint, cfg.httpClient)
	}
	return &Client{
		creds:            signature.Credentials{PublicKey: publicKey, PrivateKey: privateKey},
		transport:        cfg.transport,
		checkoutEndpoint: cfg.checkoutEndpoint,
		callbackAlg:      cfg.callbackAlg,
		algOverride:      cfg.algOverride,
		sandbox:          cfg.sandbox,
	}
}

// Sign validates req and produces its signed envelope without sending it.
// Useful with a custom [Transport] or for embedding the envelope in a form.
func (c *Client) Sign(req Request) (signature.Envelope, error) {
	if v, ok := req.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return signature.Envelope{}, err
		}
	}
	payload, err := requestPayload(req, c.creds.PublicKey, c.sandbox)
	if err != nil {
		return signature.Envelope{}, err
	}
	return signature.Sign(payload, c.creds, c.algorithmFor(req))
}

// Send signs req, delivers it through the transport, and decodes the reply
// into out (which may be nil to discard the body). Gateway-level rejections
// come back as *Error.
func (c *Client) Send(ctx context.Context, req Request, out any) error {
	envelope, err := c.Sign(req)
	if err != nil {
		return err
	}
	status, body, err := c.transport.Send(ctx, envelope)
	if err != nil {
		return err
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return &StatusError{StatusCode: status}
	}

	var probe struct {
		Result         Result `json:"result"`
		ErrCode        string `json:"err_code"`
		ErrDescription string `json:"err_description"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return fmt.Errorf("liqpay: decode %s response: %w", req.action(), err)
	}
	if probe.Result == ResultError || probe.ErrCode != "" {
		return &Error{Code: probe.ErrCode, Description: probe.ErrDescription}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("liqpay: decode %s response: %w", req.action(), err)
	}
	return nil
}

// CheckoutLink signs req and returns the hosted checkout URL the customer
// should be redirected to.
func (c *Client) CheckoutLink(req Request) (string, error) {
	envelope, err := c.Sign(req)
	if err != nil {
		return "", err
	}
	query := url.Values{
		"data":      {envelope.Data},
		"signature": {envelope.Signature},
	}
	return c.checkoutEndpoint + "?" + query.Encode(), nil
}

func (c *Client) algorithmFor(req Request) signature.Algorithm {
	if c.algOverride != nil {
		return *c.algOverride
	}
	return req.algorithm()
}

// NewOrderID returns a fresh unique order identifier. The gateway requires
// order ids to be unique per shop.
func NewOrderID() string {
	return uuid.NewString()
}
