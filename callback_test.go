package liqpay

import (
	"errors"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/liqpay-go/liqpay/secret"
	"github.com/liqpay-go/liqpay/signature"
)

// signCallback produces the data/signature pair the gateway would POST for
// the given JSON payload.
func signCallback(t *testing.T, payload string, alg signature.Algorithm) (string, string) {
	t.Helper()
	env, err := signature.Sign([]byte(payload), testCreds(), alg)
	if err != nil {
		t.Fatalf("sign callback: %v", err)
	}
	return env.Data, env.Signature
}

func TestParseCallback(t *testing.T) {
	t.Parallel()

	client := New(testPublicKey, secret.New(testPrivateKey))

	data, sig := signCallback(t, `{"result":"ok","status":"success","order_id":"ORD1","amount":1.5}`, signature.SHA1)
	cb, err := client.ParseCallback(url.Values{"data": {data}, "signature": {sig}})
	if err != nil {
		t.Fatalf("parse callback: %v", err)
	}
	if cb.Status != StatusSuccess {
		t.Fatalf("unexpected status %s", cb.Status)
	}
	if cb.OrderID == nil || *cb.OrderID != "ORD1" {
		t.Fatalf("unexpected order id %v", cb.OrderID)
	}
	if !cb.Status.Final() {
		t.Fatal("success should be final")
	}
}

func TestParseCallbackRejectsTampering(t *testing.T) {
	t.Parallel()

	client := New(testPublicKey, secret.New(testPrivateKey))
	data, sig := signCallback(t, `{"result":"ok","status":"success","order_id":"ORD1"}`, signature.SHA1)

	tamperedData, _ := signCallback(t, `{"result":"ok","status":"success","order_id":"ORD2"}`, signature.SHA1)

	cases := map[string]url.Values{
		"swapped payload":   {"data": {tamperedData}, "signature": {sig}},
		"altered signature": {"data": {data}, "signature": {flipFirstChar(sig)}},
		"missing data":      {"signature": {sig}},
		"missing signature": {"data": {data}},
		"garbage data":      {"data": {"%%%not-base64%%%"}, "signature": {sig}},
	}
	for name, values := range cases {
		values := values
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := client.ParseCallback(values)
			var cbErr *CallbackError
			if !errors.As(err, &cbErr) {
				t.Fatalf("expected *CallbackError, got %v", err)
			}
		})
	}
}

func TestParseCallbackRejectsForeignCredentials(t *testing.T) {
	t.Parallel()

	other := signature.Credentials{PublicKey: "pub_2", PrivateKey: secret.New("other-key")}
	env, err := signature.Sign([]byte(`{"result":"ok","status":"success"}`), other, signature.SHA1)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	client := New(testPublicKey, secret.New(testPrivateKey))
	_, err = client.ParseCallback(url.Values{"data": {env.Data}, "signature": {env.Signature}})
	var cbErr *CallbackError
	if !errors.As(err, &cbErr) {
		t.Fatalf("expected *CallbackError, got %v", err)
	}
	if cbErr.Reason != signature.FailureMismatch {
		t.Fatalf("unexpected reason %s", cbErr.Reason)
	}
}

func TestParseCallbackAlgorithmOption(t *testing.T) {
	t.Parallel()

	client := New(testPublicKey, secret.New(testPrivateKey), WithCallbackAlgorithm(signature.SHA3256))

	data, sig := signCallback(t, `{"result":"ok","status":"success"}`, signature.SHA3256)
	if _, err := client.ParseCallback(url.Values{"data": {data}, "signature": {sig}}); err != nil {
		t.Fatalf("parse callback: %v", err)
	}

	data, sig = signCallback(t, `{"result":"ok","status":"success"}`, signature.SHA1)
	if _, err := client.ParseCallback(url.Values{"data": {data}, "signature": {sig}}); err == nil {
		t.Fatal("SHA-1 callback accepted by SHA3-256 client")
	}
}

func TestHandleCallback(t *testing.T) {
	t.Parallel()

	client := New(testPublicKey, secret.New(testPrivateKey))
	data, sig := signCallback(t, `{"result":"ok","status":"failure","err_code":"payment_err_status"}`, signature.SHA1)

	form := url.Values{"data": {data}, "signature": {sig}}
	req := httptest.NewRequest("POST", "/liqpay/callback", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	cb, err := client.HandleCallback(req)
	if err != nil {
		t.Fatalf("handle callback: %v", err)
	}
	var apiErr *Error
	if !errors.As(cb.Err(), &apiErr) {
		t.Fatalf("expected *Error from callback body, got %v", cb.Err())
	}
	if apiErr.Code != "payment_err_status" {
		t.Fatalf("unexpected code %s", apiErr.Code)
	}
}

func flipFirstChar(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] == 'A' {
		b[0] = 'B'
	} else {
		b[0] = 'A'
	}
	return string(b)
}
