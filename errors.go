package liqpay

import (
	"fmt"

	"github.com/liqpay-go/liqpay/signature"
)

// Error is the structured error payload the gateway returns when a request
// is rejected (result "error"). Payment failures reported through the
// status field are not errors at this level; inspect [Response.Status] for
// those.
type Error struct {
	Code        string `json:"err_code"`
	Description string `json:"err_description"`
}

// Error satisfies the stdlib error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Description == "" {
		return "liqpay: " + e.Code
	}
	return fmt.Sprintf("liqpay: %s: %s", e.Code, e.Description)
}

// Gateway error codes the client inspects. The full catalog lives in the
// provider documentation; only codes with client-side meaning are named.
const (
	ErrCodeAccess       = "err_access"
	ErrCodeMissingField = "err_missing"
	ErrCodeOrderID      = "order_id_empty"
	ErrCodeSignature    = "err_signature"
	ErrCodePublicKey    = "public_key_not_found"
	ErrCodePayment      = "payment_err_status"
	ErrCodeDuplicate    = "err_duplicate"
)

// CallbackError reports a server callback that failed signature
// verification or arrived malformed. The handler must treat the callback as
// untrusted and discard it.
type CallbackError struct {
	Reason signature.FailureReason
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("liqpay: callback rejected: %s", e.Reason)
}

// StatusError reports a non-2xx HTTP response from the gateway, returned
// before any payload could be interpreted.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("liqpay: gateway returned HTTP %d", e.StatusCode)
}
