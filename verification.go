package liqpay

import (
	"github.com/oapi-codegen/runtime/types"

	"github.com/liqpay-go/liqpay/secret"
)

// ThreeDSInfo carries browser fingerprint data for the 3-D Secure
// authentication flow.
type ThreeDSInfo struct {
	Size       *string `json:"size,omitempty"`
	JavaEnable *string `json:"javaEnable,omitempty"`
	Language   *string `json:"language,omitempty"`
	Height     *string `json:"height,omitempty"`
	Width      *string `json:"width,omitempty"`
	TimeZone   *string `json:"timeZone,omitempty"`
	ColorDepth *string `json:"colorDepth,omitempty"`
	UserAgent  *string `json:"userAgent,omitempty"`
	Accept     *string `json:"accept,omitempty"`
}

// MPIRequest runs a card through 3-D Secure before the actual payment
// (action "mpi").
type MPIRequest struct {
	apiRequest
	Amount       Amount        `json:"amount" validate:"required,gt=0"`
	Card         secret.Secret `json:"card" validate:"required,credit_card"`
	CardExpMonth string        `json:"card_exp_month" validate:"required,len=2,numeric"`
	CardExpYear  string        `json:"card_exp_year" validate:"required,numeric,min=2,max=4"`
	Currency     Currency      `json:"currency" validate:"required,oneof=UAH EUR USD"`
	OrderID      string        `json:"order_id" validate:"required,max=255"`
	Description  string        `json:"description" validate:"required,max=2990"`

	CardCVV         *secret.Secret `json:"card_cvv,omitempty" validate:"omitempty,numeric,min=3,max=4"`
	Email           *types.Email   `json:"email,omitempty" validate:"omitempty,email"`
	IP              *string        `json:"ip,omitempty" validate:"omitempty,ip"`
	ActionPayment   *Action        `json:"action_payment,omitempty" validate:"omitempty,oneof=pay hold subscribe paydonate"`
	Language        *Language      `json:"language,omitempty"`
	SenderFirstName *string        `json:"sender_first_name,omitempty"`
	SenderLastName  *string        `json:"sender_last_name,omitempty"`
	ThreeDSInfo     *ThreeDSInfo   `json:"threeDSInfo,omitempty"`
}

// NewMPIRequest builds a 3-D Secure pre-authentication check.
func NewMPIRequest(amount Amount, currency Currency, card secret.Secret, expMonth, expYear, orderID, description string) *MPIRequest {
	return &MPIRequest{
		apiRequest:   apiRequest{Version: Version7, Action: ActionMPI},
		Amount:       amount,
		Card:         card,
		CardExpMonth: expMonth,
		CardExpYear:  expYear,
		Currency:     currency,
		OrderID:      orderID,
		Description:  description,
	}
}

// Validate checks the request against the gateway schema constraints.
func (r *MPIRequest) Validate() error { return validateRequest(r) }

// CardVerificationRequest checks that a card is live and belongs to the
// customer without debiting it (action "cardverification").
type CardVerificationRequest struct {
	apiRequest
	Card         secret.Secret `json:"card" validate:"required,credit_card"`
	CardExpMonth string        `json:"card_exp_month" validate:"required,len=2,numeric"`
	CardExpYear  string        `json:"card_exp_year" validate:"required,numeric,min=2,max=4"`
	OrderID      string        `json:"order_id" validate:"required,max=255"`
	Description  string        `json:"description" validate:"required,max=2990"`

	CardCVV    *secret.Secret `json:"card_cvv,omitempty" validate:"omitempty,numeric,min=3,max=4"`
	IP         *string        `json:"ip,omitempty" validate:"omitempty,ip"`
	Language   *Language      `json:"language,omitempty"`
	VerifyCode *string        `json:"verify_code,omitempty"`
}

// NewCardVerificationRequest builds a zero-amount card check.
func NewCardVerificationRequest(card secret.Secret, expMonth, expYear, orderID, description string) *CardVerificationRequest {
	return &CardVerificationRequest{
		apiRequest:   apiRequest{Version: Version7, Action: ActionCardVerification},
		Card:         card,
		CardExpMonth: expMonth,
		CardExpYear:  expYear,
		OrderID:      orderID,
		Description:  description,
	}
}

// Validate checks the request against the gateway schema constraints.
func (r *CardVerificationRequest) Validate() error { return validateRequest(r) }

// OTPConfirmRequest submits the one-time password a customer received for
// a payment awaiting otp_verify (action "confirm").
type OTPConfirmRequest struct {
	apiRequest
	OTP          string        `json:"otp" validate:"required"`
	ConfirmToken secret.Secret `json:"confirm_token" validate:"required"`
}

// NewOTPConfirmRequest confirms a pending payment with the customer's OTP.
func NewOTPConfirmRequest(otp string, confirmToken secret.Secret) *OTPConfirmRequest {
	return &OTPConfirmRequest{
		apiRequest:   apiRequest{Version: Version7, Action: ActionConfirm},
		OTP:          otp,
		ConfirmToken: confirmToken,
	}
}

// Validate checks the request against the gateway schema constraints.
func (r *OTPConfirmRequest) Validate() error { return validateRequest(r) }
