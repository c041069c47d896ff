// Package liqpay is an unofficial Go client for the LiqPay payment API.
// It prepares signed server-server requests, verifies gateway callbacks,
// and models the most common operations: payments, two-step holds, refunds,
// invoices, subscriptions, card tokens, P2P transfers, and status queries.
//
// # Signing
//
// Every request travels as a base64 canonical JSON payload plus a
// signature computed over `private_key + data + private_key`. The
// [signature] package implements that protocol; [Client] wires it to the
// operation catalog and a pluggable [Transport].
//
// # Usage
//
// Construct a [Client] with the shop credentials and send typed requests:
//
//	client := liqpay.New("pub_key", secret.New("priv_key"))
//	var resp liqpay.Response
//	err := client.Send(ctx, liqpay.NewStatusRequest("order_1"), &resp)
//
// Server callbacks arrive as signed form posts; [Client.HandleCallback]
// verifies them before decoding. Verification fails closed: a callback
// whose signature does not check out is never parsed.
//
// This package only prepares and validates authenticated API calls; it is
// not a payment processor and does not interpret business outcomes beyond
// surfacing the gateway's result, status, and error codes.
package liqpay
