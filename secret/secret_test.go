package secret

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestSecretRedactsWhenPrinted(t *testing.T) {
	t.Parallel()

	s := New("sk_live_12345")
	if got := fmt.Sprintf("%s %v %#v", s, s, s); got != "[REDACTED] [REDACTED] secret.Secret([REDACTED])" {
		t.Fatalf("secret leaked through formatting: %q", got)
	}
	if got := fmt.Sprintf("key=%s", s); got != "key=[REDACTED]" {
		t.Fatalf("secret leaked: %q", got)
	}
}

func TestSecretMarshalsRealValue(t *testing.T) {
	t.Parallel()

	payload := struct {
		Card Secret `json:"card"`
	}{Card: New("4242424242424242")}

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"card":"4242424242424242"}` {
		t.Fatalf("unexpected wire form %s", raw)
	}

	var decoded struct {
		Card Secret `json:"card"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Card.Reveal() != "4242424242424242" {
		t.Fatalf("round trip lost value")
	}
}

func TestSecretIsZero(t *testing.T) {
	t.Parallel()

	if !New("").IsZero() {
		t.Fatal("empty secret should be zero")
	}
	if New("x").IsZero() {
		t.Fatal("non-empty secret should not be zero")
	}
}
