package liqpay

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/liqpay-go/liqpay/signature"
)

// Request is implemented by every typed API request in this package. The
// methods are unexported on purpose: the operation catalog is a closed set,
// and each request carries its own digest binding.
type Request interface {
	action() Action
	algorithm() signature.Algorithm
}

// apiRequest carries the fields common to every call. Request types embed
// it; constructors fill it in.
type apiRequest struct {
	Version Version `json:"version" validate:"required"`
	Action  Action  `json:"action" validate:"required"`
}

func (r apiRequest) action() Action { return r.Action }

func (r apiRequest) algorithm() signature.Algorithm { return signature.SHA3256 }

// legacyRequest marks the operations the gateway still signs with SHA-1
// (token payments and dictionary lookups).
type legacyRequest struct {
	apiRequest
}

func (legacyRequest) algorithm() signature.Algorithm { return signature.SHA1 }

// requestPayload produces the canonical signing payload for req with the
// shop's public key injected, and the sandbox flag when the client runs in
// test mode. Numbers pass through json.Number so that re-encoding cannot
// change their textual form.
func requestPayload(req Request, publicKey string, sandbox bool) ([]byte, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("liqpay: marshal %s request: %w", req.action(), err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("liqpay: canonicalize %s request: %w", req.action(), err)
	}
	fields["public_key"] = publicKey
	if sandbox {
		if _, set := fields["sandbox"]; !set {
			fields["sandbox"] = "1"
		}
	}
	return signature.Canonicalize(fields)
}
