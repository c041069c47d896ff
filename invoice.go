package liqpay

import "github.com/oapi-codegen/runtime/types"

// InvoiceSendRequest emails a payment invoice to a customer (action
// "invoice_send").
type InvoiceSendRequest struct {
	apiRequest
	Amount   Amount      `json:"amount" validate:"required,gt=0"`
	Currency Currency    `json:"currency" validate:"required,oneof=UAH EUR USD"`
	OrderID  string      `json:"order_id" validate:"required,max=255"`
	Email    types.Email `json:"email" validate:"required,email"`

	Description   *string   `json:"description,omitempty" validate:"omitempty,max=2990"`
	Phone         *string   `json:"phone,omitempty"`
	RROInfo       *RRO      `json:"rro_info,omitempty"`
	ActionPayment *Action   `json:"action_payment,omitempty" validate:"omitempty,oneof=pay hold subscribe paydonate"`
	ExpiredDate   *string   `json:"expired_date,omitempty"`
	Goods         *string   `json:"goods,omitempty"`
	Language      *Language `json:"language,omitempty"`
	ResultURL     *string   `json:"result_url,omitempty" validate:"omitempty,url"`
	ServerURL     *string   `json:"server_url,omitempty" validate:"omitempty,url"`
}

// NewInvoiceSendRequest builds an invoice for the given customer email.
func NewInvoiceSendRequest(amount Amount, currency Currency, orderID string, email types.Email) *InvoiceSendRequest {
	return &InvoiceSendRequest{
		apiRequest: apiRequest{Version: Version7, Action: ActionInvoiceSend},
		Amount:     amount,
		Currency:   currency,
		OrderID:    orderID,
		Email:      email,
	}
}

// Validate checks the request against the gateway schema constraints.
func (r *InvoiceSendRequest) Validate() error { return validateRequest(r) }

// InvoiceCancelRequest withdraws a previously issued invoice.
type InvoiceCancelRequest struct {
	apiRequest
	OrderID string `json:"order_id" validate:"required,max=255"`
}

// NewInvoiceCancelRequest cancels the invoice issued for orderID.
func NewInvoiceCancelRequest(orderID string) *InvoiceCancelRequest {
	return &InvoiceCancelRequest{
		apiRequest: apiRequest{Version: Version7, Action: ActionInvoiceCancel},
		OrderID:    orderID,
	}
}

// Validate checks the request against the gateway schema constraints.
func (r *InvoiceCancelRequest) Validate() error { return validateRequest(r) }

// InvoiceUnitsRequest fetches the dictionary of measurement units usable in
// invoice line items. One of the legacy endpoints still signed with SHA-1.
type InvoiceUnitsRequest struct {
	legacyRequest
	HideNameLang *bool     `json:"hide_name_lang,omitempty"`
	Language     *Language `json:"language,omitempty"`
}

// NewInvoiceUnitsRequest builds a unit dictionary lookup.
func NewInvoiceUnitsRequest() *InvoiceUnitsRequest {
	return &InvoiceUnitsRequest{
		legacyRequest: legacyRequest{apiRequest{Version: Version3, Action: ActionInvoiceUnits}},
	}
}

// Validate checks the request against the gateway schema constraints.
func (r *InvoiceUnitsRequest) Validate() error { return validateRequest(r) }
