package liqpay

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/liqpay-go/liqpay/signature"
)

// Callback is the payload the gateway POSTs to the merchant server_url when
// a payment changes state. It shares the shape of [Response].
type Callback struct {
	Response
}

// VerifyCallback checks the data/signature pair of a raw callback without
// decoding it. It fails closed on malformed input.
func (c *Client) VerifyCallback(data, sig string) signature.VerificationResult {
	return signature.Verify(data, sig, c.creds, c.callbackAlg)
}

// ParseCallback verifies and decodes a callback from its form values.
// A failing signature yields a *CallbackError; the payload is never decoded
// before the signature checks out.
func (c *Client) ParseCallback(values url.Values) (*Callback, error) {
	data := values.Get("data")
	sig := values.Get("signature")
	if data == "" || sig == "" {
		return nil, &CallbackError{Reason: signature.FailureMalformed}
	}
	if res := c.VerifyCallback(data, sig); !res.OK {
		return nil, &CallbackError{Reason: res.Reason}
	}
	raw, err := signature.DecodeData(data)
	if err != nil {
		return nil, &CallbackError{Reason: signature.FailureMalformed}
	}
	var cb Callback
	if err := json.Unmarshal(raw, &cb); err != nil {
		return nil, fmt.Errorf("liqpay: decode callback: %w", err)
	}
	return &cb, nil
}

// HandleCallback adapts [Client.ParseCallback] to an incoming HTTP request,
// parsing the form body first.
func (c *Client) HandleCallback(r *http.Request) (*Callback, error) {
	if err := r.ParseForm(); err != nil {
		return nil, &CallbackError{Reason: signature.FailureMalformed}
	}
	return c.ParseCallback(r.PostForm)
}
