package liqpay

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/liqpay-go/liqpay/secret"
)

func TestRequestPayloadInjectsPublicKey(t *testing.T) {
	t.Parallel()

	payload, err := requestPayload(NewStatusRequest("ORD1"), testPublicKey, false)
	if err != nil {
		t.Fatalf("payload: %v", err)
	}
	want := `{"action":"status","order_id":"ORD1","public_key":"pub_1","version":"7"}`
	if string(payload) != want {
		t.Fatalf("payload = %s, want %s", payload, want)
	}
}

func TestRequestPayloadSandboxFlag(t *testing.T) {
	t.Parallel()

	payload, err := requestPayload(NewStatusRequest("ORD1"), testPublicKey, true)
	if err != nil {
		t.Fatalf("payload: %v", err)
	}
	want := `{"action":"status","order_id":"ORD1","public_key":"pub_1","sandbox":"1","version":"7"}`
	if string(payload) != want {
		t.Fatalf("payload = %s, want %s", payload, want)
	}

	req := NewP2PDebitRequest(NewAmount(1, 0), UAH, "ORD1", "transfer")
	explicit := "0"
	req.Sandbox = &explicit
	payload, err = requestPayload(req, testPublicKey, true)
	if err != nil {
		t.Fatalf("payload: %v", err)
	}
	if !strings.Contains(string(payload), `"sandbox":"0"`) {
		t.Fatalf("request-level sandbox overridden: %s", payload)
	}
}

func TestRequestPayloadIsCanonical(t *testing.T) {
	t.Parallel()

	req := NewRefundRequest(NewAmount(110, -2), "ORD1")
	first, err := requestPayload(req, testPublicKey, false)
	if err != nil {
		t.Fatalf("payload: %v", err)
	}
	second, err := requestPayload(req, testPublicKey, false)
	if err != nil {
		t.Fatalf("payload: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("payload not stable: %s vs %s", first, second)
	}
	if !strings.Contains(string(first), `"amount":1.1`) {
		t.Fatalf("amount missing from %s", first)
	}
}

func TestRequestPayloadFlattensEmbeddedGroups(t *testing.T) {
	t.Parallel()

	req := NewPaymentRequest(NewAmount(100, 0), UAH, secret.New("4242424242424242"), "12", "29", "ORD1", "coffee")
	name := "Jane"
	req.SenderFirstName = &name

	payload, err := requestPayload(req, testPublicKey, false)
	if err != nil {
		t.Fatalf("payload: %v", err)
	}
	if !strings.Contains(string(payload), `"sender_first_name":"Jane"`) {
		t.Fatalf("sender fields not flattened: %s", payload)
	}
	if strings.Contains(string(payload), `"Sender"`) {
		t.Fatalf("embedded struct leaked as object: %s", payload)
	}
}

func TestRequestPayloadRevealsCardOnWire(t *testing.T) {
	t.Parallel()

	req := NewPaymentRequest(NewAmount(100, 0), UAH, secret.New("4242424242424242"), "12", "29", "ORD1", "coffee")
	payload, err := requestPayload(req, testPublicKey, false)
	if err != nil {
		t.Fatalf("payload: %v", err)
	}
	if !strings.Contains(string(payload), `"card":"4242424242424242"`) {
		t.Fatalf("card number absent from wire payload: %s", payload)
	}
}

func TestDetailAddendaMarshalsAsBase64(t *testing.T) {
	t.Parallel()

	dae := DetailAddenda{Airline: "PS", TicketNumber: "123456789", FlightNumber: "PS101"}
	raw, err := json.Marshal(dae)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		t.Fatalf("dae not a JSON string: %s", raw)
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("dae not base64: %v", err)
	}
	if !strings.Contains(string(decoded), `"airLine":"PS"`) {
		t.Fatalf("unexpected dae payload %s", decoded)
	}
}

func TestLegacyRequestsBindSHA1(t *testing.T) {
	t.Parallel()

	legacy := []Request{
		NewTokenPaymentRequest(NewAmount(1, 0), UAH, secret.New("tok"), "o", "d"),
		NewInvoiceUnitsRequest(),
	}
	for _, req := range legacy {
		if got := req.algorithm().String(); got != "sha1" {
			t.Fatalf("%s binds %s, want sha1", req.action(), got)
		}
	}
	if got := NewStatusRequest("o").algorithm().String(); got != "sha3-256" {
		t.Fatalf("status binds %s, want sha3-256", got)
	}
}

func TestCatalogActionBindings(t *testing.T) {
	t.Parallel()

	cases := map[Action]Request{
		ActionPayCash:      NewCashPaymentRequest(NewAmount(1, 0), UAH, "o", "d"),
		ActionPayQR:        NewDynamicQRRequest(NewAmount(1, 0), UAH, "o", "d"),
		ActionQRCreate:     NewStaticQRRequest(NewAmount(1, 0), UAH, "o", "d"),
		ActionCompensation: NewCompensationReportByID("comp_1"),
	}
	for want, req := range cases {
		if got := req.action(); got != want {
			t.Errorf("action = %s, want %s", got, want)
		}
		if got := req.algorithm().String(); got != "sha3-256" {
			t.Errorf("%s binds %s, want sha3-256", want, got)
		}
	}
}
