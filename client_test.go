package liqpay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/liqpay-go/liqpay/secret"
	"github.com/liqpay-go/liqpay/signature"
)

const (
	testPublicKey  = "pub_1"
	testPrivateKey = "sekret"
)

func testCreds() signature.Credentials {
	return signature.Credentials{
		PublicKey:  testPublicKey,
		PrivateKey: secret.New(testPrivateKey),
	}
}

// newGateway spins up a stub gateway that verifies the request signature
// with alg, hands the decoded payload to respond, and writes the returned
// value as JSON.
func newGateway(t *testing.T, alg signature.Algorithm, respond func(t *testing.T, payload map[string]any) any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
			return
		}
		data := r.PostForm.Get("data")
		sig := r.PostForm.Get("signature")
		if res := signature.Verify(data, sig, testCreds(), alg); !res.OK {
			t.Errorf("gateway rejected signature: %+v", res)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		raw, err := signature.DecodeData(data)
		if err != nil {
			t.Errorf("decode data: %v", err)
			return
		}
		var payload map[string]any
		if err := json.Unmarshal(raw, &payload); err != nil {
			t.Errorf("decode payload: %v", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(respond(t, payload))
	}))
}

func TestClientSendStatusRoundTrip(t *testing.T) {
	t.Parallel()

	srv := newGateway(t, signature.SHA3256, func(t *testing.T, payload map[string]any) any {
		if payload["public_key"] != testPublicKey {
			t.Errorf("public key not injected: %v", payload["public_key"])
		}
		if payload["action"] != "status" {
			t.Errorf("unexpected action %v", payload["action"])
		}
		if payload["order_id"] != "ORD1" {
			t.Errorf("unexpected order id %v", payload["order_id"])
		}
		return map[string]any{
			"result":     "ok",
			"status":     "success",
			"order_id":   "ORD1",
			"payment_id": 1234,
			"amount":     1.50,
		}
	})
	defer srv.Close()

	client := New(testPublicKey, secret.New(testPrivateKey), WithEndpoint(srv.URL))

	var resp Response
	if err := client.Send(context.Background(), NewStatusRequest("ORD1"), &resp); err != nil {
		t.Fatalf("send: %v", err)
	}
	if resp.Status != StatusSuccess {
		t.Fatalf("unexpected status %s", resp.Status)
	}
	if resp.PaymentID == nil || *resp.PaymentID != 1234 {
		t.Fatalf("unexpected payment id %v", resp.PaymentID)
	}
	if resp.Amount == nil || resp.Amount.String() != "1.5" {
		t.Fatalf("unexpected amount %v", resp.Amount)
	}
	if err := resp.Err(); err != nil {
		t.Fatalf("unexpected response error %v", err)
	}
}

func TestClientSendLegacyOperationsSignWithSHA1(t *testing.T) {
	t.Parallel()

	srv := newGateway(t, signature.SHA1, func(t *testing.T, payload map[string]any) any {
		if payload["action"] != "paytoken" {
			t.Errorf("unexpected action %v", payload["action"])
		}
		if payload["version"] != "3" {
			t.Errorf("unexpected version %v", payload["version"])
		}
		return map[string]any{"result": "ok", "status": "success"}
	})
	defer srv.Close()

	client := New(testPublicKey, secret.New(testPrivateKey), WithEndpoint(srv.URL))

	req := NewTokenPaymentRequest(NewAmount(100, 0), UAH, secret.New("tok_abc"), "ORD2", "token charge")
	if err := client.Send(context.Background(), req, nil); err != nil {
		t.Fatalf("send: %v", err)
	}
}

func TestClientSendSurfacesGatewayError(t *testing.T) {
	t.Parallel()

	srv := newGateway(t, signature.SHA3256, func(t *testing.T, payload map[string]any) any {
		return map[string]any{
			"result":          "error",
			"err_code":        ErrCodeAccess,
			"err_description": "public key not allowed",
		}
	})
	defer srv.Close()

	client := New(testPublicKey, secret.New(testPrivateKey), WithEndpoint(srv.URL))

	err := client.Send(context.Background(), NewStatusRequest("ORD1"), &Response{})
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Code != ErrCodeAccess {
		t.Fatalf("unexpected code %s", apiErr.Code)
	}
	if !strings.Contains(apiErr.Error(), "public key not allowed") {
		t.Fatalf("description missing from %q", apiErr.Error())
	}
}

func TestClientSendSurfacesHTTPFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := New(testPublicKey, secret.New(testPrivateKey), WithEndpoint(srv.URL))

	err := client.Send(context.Background(), NewStatusRequest("ORD1"), nil)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status %d", statusErr.StatusCode)
	}
}

func TestClientSendValidatesBeforeTransport(t *testing.T) {
	t.Parallel()

	client := New(testPublicKey, secret.New(testPrivateKey), WithTransport(TransportFunc(
		func(ctx context.Context, envelope signature.Envelope) (int, []byte, error) {
			t.Fatal("transport reached with invalid request")
			return 0, nil, nil
		})))

	err := client.Send(context.Background(), NewStatusRequest(""), nil)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "order_id") {
		t.Fatalf("error does not name the field: %v", err)
	}
}

func TestClientSignRejectsEmptyPrivateKey(t *testing.T) {
	t.Parallel()

	client := New(testPublicKey, secret.New(""))

	_, err := client.Sign(NewStatusRequest("ORD1"))
	var credErr *signature.CredentialsError
	if !errors.As(err, &credErr) {
		t.Fatalf("expected CredentialsError, got %v", err)
	}
}

func TestClientSignIsDeterministic(t *testing.T) {
	t.Parallel()

	client := New(testPublicKey, secret.New(testPrivateKey))

	first, err := client.Sign(NewStatusRequest("ORD1"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	second, err := client.Sign(NewStatusRequest("ORD1"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if first != second {
		t.Fatalf("envelopes differ: %+v vs %+v", first, second)
	}
}

func TestClientAlgorithmOverride(t *testing.T) {
	t.Parallel()

	client := New(testPublicKey, secret.New(testPrivateKey), WithAlgorithm(signature.SHA256))

	env, err := client.Sign(NewStatusRequest("ORD1"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if res := signature.Verify(env.Data, env.Signature, testCreds(), signature.SHA256); !res.OK {
		t.Fatalf("override not applied: %+v", res)
	}
}

func TestClientSandboxMode(t *testing.T) {
	t.Parallel()

	live := New(testPublicKey, secret.New(testPrivateKey))
	sandbox := New(testPublicKey, secret.New(testPrivateKey), WithSandbox())

	for name, tc := range map[string]struct {
		client *Client
		want   bool
	}{
		"live":    {live, false},
		"sandbox": {sandbox, true},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			env, err := tc.client.Sign(NewStatusRequest("ORD1"))
			if err != nil {
				t.Fatalf("sign: %v", err)
			}
			raw, err := signature.DecodeData(env.Data)
			if err != nil {
				t.Fatalf("decode data: %v", err)
			}
			if got := strings.Contains(string(raw), `"sandbox":"1"`); got != tc.want {
				t.Fatalf("sandbox flag present=%t, want %t: %s", got, tc.want, raw)
			}
		})
	}
}

func TestCheckoutLink(t *testing.T) {
	t.Parallel()

	client := New(testPublicKey, secret.New(testPrivateKey))

	req := NewInvoiceSendRequest(NewAmount(250, -1), UAH, "ORD3", "buyer@example.com")
	link, err := client.CheckoutLink(req)
	if err != nil {
		t.Fatalf("checkout link: %v", err)
	}

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	if got := parsed.Scheme + "://" + parsed.Host + parsed.Path; got != DefaultCheckoutEndpoint {
		t.Fatalf("unexpected base %s", got)
	}
	query := parsed.Query()
	if res := signature.Verify(query.Get("data"), query.Get("signature"), testCreds(), signature.SHA3256); !res.OK {
		t.Fatalf("link signature invalid: %+v", res)
	}
	raw, err := signature.DecodeData(query.Get("data"))
	if err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if !strings.Contains(string(raw), `"amount":25`) {
		t.Fatalf("amount missing from payload %s", raw)
	}
}

func TestNewOrderID(t *testing.T) {
	t.Parallel()

	a, b := NewOrderID(), NewOrderID()
	if a == "" || a == b {
		t.Fatalf("order ids not unique: %q %q", a, b)
	}
}
