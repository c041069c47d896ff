package liqpay

import "github.com/liqpay-go/liqpay/secret"

// TokenPaymentRequest charges a previously stored card token (action
// "paytoken"). One of the legacy endpoints still signed with SHA-1.
type TokenPaymentRequest struct {
	legacyRequest
	Amount      Amount        `json:"amount" validate:"required,gt=0"`
	CardToken   secret.Secret `json:"card_token" validate:"required"`
	Currency    Currency      `json:"currency" validate:"required,oneof=UAH EUR USD"`
	OrderID     string        `json:"order_id" validate:"required,max=255"`
	Description string        `json:"description" validate:"required,max=2990"`

	IP               *string        `json:"ip,omitempty" validate:"omitempty,ip"`
	Phone            *string        `json:"phone,omitempty"`
	Language         *Language      `json:"language,omitempty"`
	Prepare          *Prepare       `json:"prepare,omitempty"`
	ServerURL        *string        `json:"server_url,omitempty" validate:"omitempty,url"`
	SplitRules       *string        `json:"split_rules,omitempty"`
	SplitTicketsOnly *bool          `json:"split_tickets_only,omitempty"`
	Customer         *string        `json:"customer,omitempty"`
	DAE              *DetailAddenda `json:"dae,omitempty"`
	Info             *string        `json:"info,omitempty"`
	Sender
	Product
}

// NewTokenPaymentRequest builds a payment by stored card token.
func NewTokenPaymentRequest(amount Amount, currency Currency, cardToken secret.Secret, orderID, description string) *TokenPaymentRequest {
	return &TokenPaymentRequest{
		legacyRequest: legacyRequest{apiRequest{Version: Version3, Action: ActionPayToken}},
		Amount:        amount,
		CardToken:     cardToken,
		Currency:      currency,
		OrderID:       orderID,
		Description:   description,
	}
}

// Validate checks the request against the gateway schema constraints.
func (r *TokenPaymentRequest) Validate() error { return validateRequest(r) }

// TokenCreateRequest tokenizes a card for later debit or credit operations
// (action "token_create"; use [NewUniqueTokenCreateRequest] for
// "token_create_unique").
type TokenCreateRequest struct {
	apiRequest
	IsDebit  bool `json:"is_debit"`
	IsCredit bool `json:"is_credit"`

	Card               *secret.Secret `json:"card,omitempty" validate:"omitempty,credit_card"`
	CardCVV            *secret.Secret `json:"card_cvv,omitempty" validate:"omitempty,numeric,min=3,max=4"`
	CardExpMonth       *string        `json:"card_exp_month,omitempty" validate:"omitempty,len=2,numeric"`
	CardExpYear        *string        `json:"card_exp_year,omitempty" validate:"omitempty,numeric,min=2,max=4"`
	Customer           *string        `json:"customer,omitempty"`
	ExpiredDate        *string        `json:"expired_date,omitempty"`
	PushAccountReceipt *string        `json:"pushAccountReceipt,omitempty"`
	PushData           *string        `json:"pushData,omitempty"`
}

// NewTokenCreateRequest tokenizes a card. The debit and credit flags scope
// what the resulting token may be used for.
func NewTokenCreateRequest(debit, credit bool) *TokenCreateRequest {
	return &TokenCreateRequest{
		apiRequest: apiRequest{Version: Version7, Action: ActionTokenCreate},
		IsDebit:    debit,
		IsCredit:   credit,
	}
}

// NewUniqueTokenCreateRequest is like [NewTokenCreateRequest] but the
// gateway guarantees at most one token per card and shop.
func NewUniqueTokenCreateRequest(debit, credit bool) *TokenCreateRequest {
	req := NewTokenCreateRequest(debit, credit)
	req.Action = ActionTokenCreateUnique
	return req
}

// Validate checks the request against the gateway schema constraints.
func (r *TokenCreateRequest) Validate() error { return validateRequest(r) }

// TokenStatusRequest suspends, reactivates, or deletes a stored card token
// (action "token_update").
type TokenStatusRequest struct {
	apiRequest
	CardToken       secret.Secret   `json:"card_token" validate:"required"`
	CardTokenAction CardTokenAction `json:"card_token_action" validate:"required,oneof=SUSPEND UNSUSPEND DELETE"`
}

// NewTokenStatusRequest changes the lifecycle state of cardToken.
func NewTokenStatusRequest(cardToken secret.Secret, action CardTokenAction) *TokenStatusRequest {
	return &TokenStatusRequest{
		apiRequest:      apiRequest{Version: Version7, Action: ActionTokenUpdate},
		CardToken:       cardToken,
		CardTokenAction: action,
	}
}

// Validate checks the request against the gateway schema constraints.
func (r *TokenStatusRequest) Validate() error { return validateRequest(r) }
