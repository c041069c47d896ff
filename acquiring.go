package liqpay

import "github.com/liqpay-go/liqpay/secret"

// PaymentRequest charges a card directly (action "pay"). Requires the
// merchant to be PCI DSS certified; most integrations should use
// [Client.CheckoutLink] or [InvoiceSendRequest] instead.
type PaymentRequest struct {
	apiRequest
	Amount       Amount        `json:"amount" validate:"required,gt=0"`
	Currency     Currency      `json:"currency" validate:"required,oneof=UAH EUR USD"`
	Card         secret.Secret `json:"card" validate:"required,credit_card"`
	CardExpMonth string        `json:"card_exp_month" validate:"required,len=2,numeric"`
	CardExpYear  string        `json:"card_exp_year" validate:"required,numeric,min=2,max=4"`
	OrderID      string        `json:"order_id" validate:"required,max=255"`
	Description  string        `json:"description" validate:"required,max=2990"`

	CardCVV          *secret.Secret `json:"card_cvv,omitempty" validate:"omitempty,numeric,min=3,max=4"`
	IP               *string        `json:"ip,omitempty" validate:"omitempty,ip"`
	Phone            *string        `json:"phone,omitempty"`
	PayType          *PayType       `json:"paytype,omitempty"`
	TAVV             *string        `json:"tavv,omitempty"`
	TID              *string        `json:"tid,omitempty"`
	Language         *Language      `json:"language,omitempty"`
	Prepare          *Prepare       `json:"prepare,omitempty"`
	RecurringByToken *string        `json:"recurringbytoken,omitempty"`
	Recurring        *bool          `json:"recurring,omitempty"`
	ResultURL        *string        `json:"result_url,omitempty" validate:"omitempty,url"`
	ServerURL        *string        `json:"server_url,omitempty" validate:"omitempty,url"`
	ECI              *string        `json:"eci,omitempty"`
	CAVV             *string        `json:"cavv,omitempty"`
	TDSV             *string        `json:"tdsv,omitempty"`
	DSTransID        *string        `json:"dsTransID,omitempty"`
	RROInfo          *RRO           `json:"rro_info,omitempty"`
	SplitRules       *string        `json:"split_rules,omitempty"`
	SplitTicketsOnly *bool          `json:"split_tickets_only,omitempty"`
	Customer         *string        `json:"customer,omitempty"`
	DAE              *DetailAddenda `json:"dae,omitempty"`
	Info             *string        `json:"info,omitempty"`
	Sender
	Product
}

// NewPaymentRequest builds a direct card payment.
func NewPaymentRequest(amount Amount, currency Currency, card secret.Secret, expMonth, expYear, orderID, description string) *PaymentRequest {
	return &PaymentRequest{
		apiRequest:   apiRequest{Version: Version7, Action: ActionPay},
		Amount:       amount,
		Currency:     currency,
		Card:         card,
		CardExpMonth: expMonth,
		CardExpYear:  expYear,
		OrderID:      orderID,
		Description:  description,
	}
}

// Validate checks the request against the gateway schema constraints.
func (r *PaymentRequest) Validate() error { return validateRequest(r) }

// CashPaymentRequest issues a payment the customer settles in cash at a
// self-service terminal (action "paycash").
type CashPaymentRequest struct {
	apiRequest
	Amount      Amount   `json:"amount" validate:"required,gt=0"`
	Currency    Currency `json:"currency" validate:"required,oneof=UAH EUR USD"`
	OrderID     string   `json:"order_id" validate:"required,max=255"`
	Description string   `json:"description" validate:"required,max=2990"`

	IP          *string        `json:"ip,omitempty" validate:"omitempty,ip"`
	Phone       *string        `json:"phone,omitempty"`
	ExpiredDate *string        `json:"expired_date,omitempty"`
	Language    *Language      `json:"language,omitempty"`
	Prepare     *Prepare       `json:"prepare,omitempty"`
	ServerURL   *string        `json:"server_url,omitempty" validate:"omitempty,url"`
	SplitRules  *string        `json:"split_rules,omitempty"`
	Customer    *string        `json:"customer,omitempty"`
	DAE         *DetailAddenda `json:"dae,omitempty"`
	Info        *string        `json:"info,omitempty"`
	Product
}

// NewCashPaymentRequest builds a cash payment.
func NewCashPaymentRequest(amount Amount, currency Currency, orderID, description string) *CashPaymentRequest {
	return &CashPaymentRequest{
		apiRequest:  apiRequest{Version: Version7, Action: ActionPayCash},
		Amount:      amount,
		Currency:    currency,
		OrderID:     orderID,
		Description: description,
	}
}

// Validate checks the request against the gateway schema constraints.
func (r *CashPaymentRequest) Validate() error { return validateRequest(r) }

// DynamicQRRequest starts a payment the customer completes by scanning a
// one-off QR code (action "payqr").
type DynamicQRRequest struct {
	apiRequest
	Amount      Amount   `json:"amount" validate:"required,gt=0"`
	Currency    Currency `json:"currency" validate:"required,oneof=UAH EUR USD"`
	OrderID     string   `json:"order_id" validate:"required,max=255"`
	Description string   `json:"description" validate:"required,max=2990"`

	IP               *string        `json:"ip,omitempty" validate:"omitempty,ip"`
	Language         *Language      `json:"language,omitempty"`
	Prepare          *Prepare       `json:"prepare,omitempty"`
	RecurringByToken *string        `json:"recurringbytoken,omitempty"`
	ServerURL        *string        `json:"server_url,omitempty" validate:"omitempty,url"`
	SplitRules       *string        `json:"split_rules,omitempty"`
	SplitTicketsOnly *bool          `json:"split_tickets_only,omitempty"`
	Customer         *string        `json:"customer,omitempty"`
	DAE              *DetailAddenda `json:"dae,omitempty"`
	Info             *string        `json:"info,omitempty"`
	Product
}

// NewDynamicQRRequest builds a dynamic QR code payment.
func NewDynamicQRRequest(amount Amount, currency Currency, orderID, description string) *DynamicQRRequest {
	return &DynamicQRRequest{
		apiRequest:  apiRequest{Version: Version7, Action: ActionPayQR},
		Amount:      amount,
		Currency:    currency,
		OrderID:     orderID,
		Description: description,
	}
}

// Validate checks the request against the gateway schema constraints.
func (r *DynamicQRRequest) Validate() error { return validateRequest(r) }

// StaticQRRequest registers a reusable QR code that stays valid until
// final_date (action "staticQrCreate"). The gateway returns the code in the
// qrdata response field.
type StaticQRRequest struct {
	apiRequest
	Amount      Amount   `json:"amount" validate:"required,gt=0"`
	Currency    Currency `json:"currency" validate:"required,oneof=UAH EUR USD"`
	OrderID     string   `json:"order_id" validate:"required,max=255"`
	Description string   `json:"description" validate:"required,max=2990"`

	ServerURL *string `json:"server_url,omitempty" validate:"omitempty,url"`
	FinalDate *string `json:"final_date,omitempty"`
}

// NewStaticQRRequest builds a static QR code registration.
func NewStaticQRRequest(amount Amount, currency Currency, orderID, description string) *StaticQRRequest {
	return &StaticQRRequest{
		apiRequest:  apiRequest{Version: Version7, Action: ActionQRCreate},
		Amount:      amount,
		Currency:    currency,
		OrderID:     orderID,
		Description: description,
	}
}

// Validate checks the request against the gateway schema constraints.
func (r *StaticQRRequest) Validate() error { return validateRequest(r) }

// HoldRequest blocks funds on the payer's account (action "hold") for a
// later [HoldCompletionRequest]. The card credential may be a PAN or a
// wallet token.
type HoldRequest struct {
	apiRequest
	Amount      Amount   `json:"amount" validate:"required,gt=0"`
	Currency    Currency `json:"currency" validate:"required,oneof=UAH EUR USD"`
	OrderID     string   `json:"order_id" validate:"required,max=255"`
	Description string   `json:"description" validate:"required,max=2990"`

	Card             *secret.Secret `json:"card,omitempty" validate:"omitempty,credit_card"`
	CardCVV          *secret.Secret `json:"card_cvv,omitempty" validate:"omitempty,numeric,min=3,max=4"`
	CardExpMonth     *string        `json:"card_exp_month,omitempty" validate:"omitempty,len=2,numeric"`
	CardExpYear      *string        `json:"card_exp_year,omitempty" validate:"omitempty,numeric,min=2,max=4"`
	ApplePayToken    *string        `json:"applepay_token,omitempty"`
	GooglePayToken   *string        `json:"gpay_token,omitempty"`
	IP               *string        `json:"ip,omitempty" validate:"omitempty,ip"`
	Phone            *string        `json:"phone,omitempty"`
	PayType          *PayType       `json:"paytype,omitempty"`
	TID              *string        `json:"tid,omitempty"`
	Language         *Language      `json:"language,omitempty"`
	Prepare          *Prepare       `json:"prepare,omitempty"`
	RecurringByToken *string        `json:"recurringbytoken,omitempty"`
	Recurring        *bool          `json:"recurring,omitempty"`
	ServerURL        *string        `json:"server_url,omitempty" validate:"omitempty,url"`
	TAVV             *string        `json:"tavv,omitempty"`
	ECI              *string        `json:"eci,omitempty"`
	CAVV             *string        `json:"cavv,omitempty"`
	TDSV             *string        `json:"tdsv,omitempty"`
	DSTransID        *string        `json:"dsTransID,omitempty"`
	SplitRules       *string        `json:"split_rules,omitempty"`
	Customer         *string        `json:"customer,omitempty"`
	DAE              *DetailAddenda `json:"dae,omitempty"`
	Info             *string        `json:"info,omitempty"`
	Sender
}

// NewHoldRequest builds a two-step funds blocking request.
func NewHoldRequest(amount Amount, currency Currency, orderID, description string) *HoldRequest {
	return &HoldRequest{
		apiRequest:  apiRequest{Version: Version7, Action: ActionHold},
		Amount:      amount,
		Currency:    currency,
		OrderID:     orderID,
		Description: description,
	}
}

// Validate checks the request against the gateway schema constraints.
func (r *HoldRequest) Validate() error { return validateRequest(r) }

// HoldCompletionRequest debits previously blocked funds. The amount may be
// lower than the held amount; the remainder is released.
type HoldCompletionRequest struct {
	apiRequest
	Amount  Amount `json:"amount" validate:"required,gt=0"`
	OrderID string `json:"order_id" validate:"required,max=255"`

	RROInfo          *RRO  `json:"rro_info,omitempty"`
	SplitTicketsOnly *bool `json:"split_tickets_only,omitempty"`
}

// NewHoldCompletionRequest builds the completion step of a two-step
// payment.
func NewHoldCompletionRequest(amount Amount, orderID string) *HoldCompletionRequest {
	return &HoldCompletionRequest{
		apiRequest: apiRequest{Version: Version7, Action: ActionHoldCompletion},
		Amount:     amount,
		OrderID:    orderID,
	}
}

// Validate checks the request against the gateway schema constraints.
func (r *HoldCompletionRequest) Validate() error { return validateRequest(r) }

// RefundRequest returns funds for a completed payment, fully or partially.
type RefundRequest struct {
	apiRequest
	OrderID string `json:"order_id" validate:"required,max=255"`
	Amount  Amount `json:"amount" validate:"required,gt=0"`
}

// NewRefundRequest builds a refund for the given order.
func NewRefundRequest(amount Amount, orderID string) *RefundRequest {
	return &RefundRequest{
		apiRequest: apiRequest{Version: Version7, Action: ActionRefund},
		OrderID:    orderID,
		Amount:     amount,
	}
}

// Validate checks the request against the gateway schema constraints.
func (r *RefundRequest) Validate() error { return validateRequest(r) }
