// Package secret wraps sensitive strings such as API private keys and card
// numbers. A [Secret] serializes to its real value when marshaled for the
// wire, but prints as a redacted placeholder everywhere else so that logging
// a request or an error can never leak the underlying material.
package secret

import "encoding/json"

const redacted = "[REDACTED]"

// Secret holds a sensitive string value.
type Secret struct {
	value string
}

// New wraps value in a [Secret].
func New(value string) Secret {
	return Secret{value: value}
}

// Reveal returns the underlying value.
func (s Secret) Reveal() string {
	return s.value
}

// IsZero reports whether the secret holds no value.
func (s Secret) IsZero() bool {
	return s.value == ""
}

// String implements [fmt.Stringer] and always redacts.
func (s Secret) String() string {
	return redacted
}

// GoString redacts the value in %#v output as well.
func (s Secret) GoString() string {
	return "secret.Secret(" + redacted + ")"
}

// MarshalJSON emits the real value. Payloads that carry secrets (card
// numbers, tokens) need them on the wire; redaction applies to printing,
// not serialization.
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}

// UnmarshalJSON restores the wrapped value.
func (s *Secret) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &s.value)
}
