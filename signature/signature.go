// Package signature implements the LiqPay request signing protocol.
//
// Every API call travels as two form fields: `data`, the standard-base64
// encoding of the canonical JSON request, and `signature`, the
// standard-base64 digest of `private_key + data + private_key`. The same
// construction authenticates server callbacks, so [Verify] recomputes the
// expected signature and compares in constant time.
package signature

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	canonicaljson "github.com/gibson042/canonicaljson-go"
	"golang.org/x/crypto/sha3"

	"github.com/liqpay-go/liqpay/secret"
)

// Credentials identifies the merchant shop. PublicKey travels inside every
// request payload; PrivateKey only ever enters the signature digest.
type Credentials struct {
	PublicKey  string
	PrivateKey secret.Secret
}

// Algorithm selects the digest used inside the signature. Current API
// versions sign with SHA3-256; a few legacy operations (token payments,
// dictionary lookups) still use SHA-1.
type Algorithm int

const (
	SHA3256 Algorithm = iota
	SHA1
	SHA256
)

// String names the algorithm for diagnostics.
func (a Algorithm) String() string {
	switch a {
	case SHA1:
		return "sha1"
	case SHA256:
		return "sha256"
	default:
		return "sha3-256"
	}
}

func (a Algorithm) digest(input []byte) []byte {
	switch a {
	case SHA1:
		sum := sha1.Sum(input)
		return sum[:]
	case SHA256:
		sum := sha256.Sum256(input)
		return sum[:]
	default:
		sum := sha3.Sum256(input)
		return sum[:]
	}
}

// Params is the generic parameter bag accepted at the encoding boundary.
// Values must be JSON primitives; nested structures are rejected.
type Params map[string]any

// Envelope is the signed request unit handed to the transport. It is never
// mutated after [Sign] returns it.
type Envelope struct {
	PublicKey string
	Data      string
	Signature string
}

// EncodingError reports a parameter that cannot be represented as a
// primitive value.
type EncodingError struct {
	Key   string
	Value any
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("signature: parameter %q has unsupported type %T", e.Key, e.Value)
}

// CredentialsError reports missing or malformed signing credentials.
type CredentialsError struct {
	Reason string
}

func (e *CredentialsError) Error() string {
	return "signature: " + e.Reason
}

// FailureReason classifies why a verification did not succeed.
type FailureReason string

const (
	FailureNone      FailureReason = ""
	FailureMismatch  FailureReason = "signature_mismatch"
	FailureMalformed FailureReason = "malformed_input"
)

// VerificationResult is the outcome of [Verify]. Reason is set only when OK
// is false.
type VerificationResult struct {
	OK     bool
	Reason FailureReason
}

// Encode serializes params into canonical JSON bytes. Identical parameter
// sets produce byte-identical output regardless of insertion order; the
// canonical form sorts object members by key.
func Encode(params Params) ([]byte, error) {
	for key, value := range params {
		if !primitive(value) {
			return nil, &EncodingError{Key: key, Value: value}
		}
	}
	return canonicaljson.Marshal(params)
}

// Canonicalize produces canonical JSON bytes for an arbitrary request
// value. Unlike [Encode] it admits nested structures, which typed request
// models (rro_info, threeDSInfo) require.
func Canonicalize(v any) ([]byte, error) {
	return canonicaljson.Marshal(v)
}

func primitive(v any) bool {
	switch v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return true
	}
	return false
}

// Sign produces the signed envelope for a canonical payload. Signing is
// deterministic: the same payload and credentials always yield the same
// envelope.
func Sign(payload []byte, creds Credentials, alg Algorithm) (Envelope, error) {
	key := creds.PrivateKey.Reveal()
	if strings.TrimSpace(key) == "" {
		return Envelope{}, &CredentialsError{Reason: "private key is empty"}
	}
	data := base64.StdEncoding.EncodeToString(payload)
	return Envelope{
		PublicKey: creds.PublicKey,
		Data:      data,
		Signature: base64.StdEncoding.EncodeToString(alg.digest([]byte(key + data + key))),
	}, nil
}

// Verify checks that providedSignature authenticates data. It fails closed:
// malformed base64 in either input yields a failing result, never a panic
// or a skipped check.
func Verify(data, providedSignature string, creds Credentials, alg Algorithm) VerificationResult {
	key := creds.PrivateKey.Reveal()
	if strings.TrimSpace(key) == "" {
		return VerificationResult{Reason: FailureMalformed}
	}
	if _, err := base64.StdEncoding.DecodeString(data); err != nil {
		return VerificationResult{Reason: FailureMalformed}
	}
	provided, err := base64.StdEncoding.DecodeString(providedSignature)
	if err != nil {
		return VerificationResult{Reason: FailureMalformed}
	}
	expected := alg.digest([]byte(key + data + key))
	if !hmac.Equal(provided, expected) {
		return VerificationResult{Reason: FailureMismatch}
	}
	return VerificationResult{OK: true}
}

// DecodeData recovers the canonical payload bytes from the base64 `data`
// field of an envelope or callback.
func DecodeData(data string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("signature: decode data: %w", err)
	}
	return raw, nil
}
