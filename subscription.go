package liqpay

import "github.com/liqpay-go/liqpay/secret"

// SubscribeRequest sets up a recurring card payment (action "subscribe").
type SubscribeRequest struct {
	apiRequest
	Amount               Amount               `json:"amount" validate:"required,gt=0"`
	Currency             Currency             `json:"currency" validate:"required,oneof=UAH EUR USD"`
	Card                 secret.Secret        `json:"card" validate:"required,credit_card"`
	CardExpMonth         string               `json:"card_exp_month" validate:"required,len=2,numeric"`
	CardExpYear          string               `json:"card_exp_year" validate:"required,numeric,min=2,max=4"`
	OrderID              string               `json:"order_id" validate:"required,max=255"`
	Description          string               `json:"description" validate:"required,max=2990"`
	SubscribeDateStart   string               `json:"subscribe_date_start" validate:"required"`
	SubscribePeriodicity SubscribePeriodicity `json:"subscribe_periodicity" validate:"required,oneof=day week month year"`

	CardCVV          *secret.Secret `json:"card_cvv,omitempty" validate:"omitempty,numeric,min=3,max=4"`
	IP               *string        `json:"ip,omitempty" validate:"omitempty,ip"`
	Phone            *string        `json:"phone,omitempty"`
	Language         *Language      `json:"language,omitempty"`
	Prepare          *Prepare       `json:"prepare,omitempty"`
	RecurringByToken *string        `json:"recurringbytoken,omitempty"`
	Recurring        *bool          `json:"recurring,omitempty"`
	ServerURL        *string        `json:"server_url,omitempty" validate:"omitempty,url"`
	Customer         *string        `json:"customer,omitempty"`
	DAE              *DetailAddenda `json:"dae,omitempty"`
	Info             *string        `json:"info,omitempty"`
	Sender
	Product
}

// NewSubscribeRequest builds a subscription starting at dateStart, in the
// gateway's "2015-03-31 00:00:00" UTC format.
func NewSubscribeRequest(amount Amount, currency Currency, card secret.Secret, expMonth, expYear, orderID, description, dateStart string, periodicity SubscribePeriodicity) *SubscribeRequest {
	return &SubscribeRequest{
		apiRequest:           apiRequest{Version: Version7, Action: ActionSubscribe},
		Amount:               amount,
		Currency:             currency,
		Card:                 card,
		CardExpMonth:         expMonth,
		CardExpYear:          expYear,
		OrderID:              orderID,
		Description:          description,
		SubscribeDateStart:   dateStart,
		SubscribePeriodicity: periodicity,
	}
}

// Validate checks the request against the gateway schema constraints.
func (r *SubscribeRequest) Validate() error { return validateRequest(r) }

// SubscribeUpdateRequest changes the amount or description of an active
// subscription.
type SubscribeUpdateRequest struct {
	apiRequest
	Amount      Amount   `json:"amount" validate:"required,gt=0"`
	Currency    Currency `json:"currency" validate:"required,oneof=UAH EUR USD"`
	OrderID     string   `json:"order_id" validate:"required,max=255"`
	Description string   `json:"description" validate:"required,max=2990"`
}

// NewSubscribeUpdateRequest builds an update for the subscription tied to
// orderID.
func NewSubscribeUpdateRequest(amount Amount, currency Currency, orderID, description string) *SubscribeUpdateRequest {
	return &SubscribeUpdateRequest{
		apiRequest:  apiRequest{Version: Version7, Action: ActionSubscribeUpdate},
		Amount:      amount,
		Currency:    currency,
		OrderID:     orderID,
		Description: description,
	}
}

// Validate checks the request against the gateway schema constraints.
func (r *SubscribeUpdateRequest) Validate() error { return validateRequest(r) }

// UnsubscribeRequest cancels an active subscription.
type UnsubscribeRequest struct {
	apiRequest
	OrderID string `json:"order_id" validate:"required,max=255"`
}

// NewUnsubscribeRequest cancels the subscription tied to orderID.
func NewUnsubscribeRequest(orderID string) *UnsubscribeRequest {
	return &UnsubscribeRequest{
		apiRequest: apiRequest{Version: Version7, Action: ActionUnsubscribe},
		OrderID:    orderID,
	}
}

// Validate checks the request against the gateway schema constraints.
func (r *UnsubscribeRequest) Validate() error { return validateRequest(r) }
