package liqpay

import "github.com/liqpay-go/liqpay/secret"

// P2PCreditRequest sends funds to a receiver card, account, or company
// (action "p2pcredit").
type P2PCreditRequest struct {
	apiRequest
	Amount      Amount   `json:"amount" validate:"required,gt=0"`
	Currency    Currency `json:"currency" validate:"required,oneof=UAH EUR USD"`
	OrderID     string   `json:"order_id" validate:"required,max=255"`
	Description string   `json:"description" validate:"required,max=2990"`

	IP                *string        `json:"ip,omitempty" validate:"omitempty,ip"`
	Language          *Language      `json:"language,omitempty"`
	ServerURL         *string        `json:"server_url,omitempty" validate:"omitempty,url"`
	Taxed             *string        `json:"taxed,omitempty"`
	ReceiverAccount   *string        `json:"receiver_account,omitempty"`
	ReceiverMFO       *string        `json:"receiver_mfo,omitempty"`
	ReceiverOKPO      *string        `json:"receiver_okpo,omitempty"`
	ReceiverCompany   *string        `json:"receiver_company,omitempty"`
	ReceiverCard      *secret.Secret `json:"receiver_card,omitempty" validate:"omitempty,credit_card"`
	ReceiverCardToken *secret.Secret `json:"receiver_card_token,omitempty"`
	ReceiverFirstName *string        `json:"receiver_first_name,omitempty"`
	ReceiverLastName  *string        `json:"receiver_last_name,omitempty"`
	Customer          *string        `json:"customer,omitempty"`
	Info              *string        `json:"info,omitempty"`
	Sender
}

// NewP2PCreditRequest builds a payout. Exactly one receiver credential
// (card, card token, or bank account) must be set before sending.
func NewP2PCreditRequest(amount Amount, currency Currency, orderID, description string) *P2PCreditRequest {
	return &P2PCreditRequest{
		apiRequest:  apiRequest{Version: Version7, Action: ActionP2PCredit},
		Amount:      amount,
		Currency:    currency,
		OrderID:     orderID,
		Description: description,
	}
}

// Validate checks the request against the gateway schema constraints.
func (r *P2PCreditRequest) Validate() error { return validateRequest(r) }

// P2PDebitRequest withdraws funds from a sender card for a card-to-card
// transfer (action "p2pdebit").
type P2PDebitRequest struct {
	apiRequest
	Amount      Amount   `json:"amount" validate:"required,gt=0"`
	Currency    Currency `json:"currency" validate:"required,oneof=UAH EUR USD"`
	OrderID     string   `json:"order_id" validate:"required,max=255"`
	Description string   `json:"description" validate:"required,max=2990"`

	Card             *secret.Secret `json:"card,omitempty" validate:"omitempty,credit_card"`
	CardCVV          *secret.Secret `json:"card_cvv,omitempty" validate:"omitempty,numeric,min=3,max=4"`
	CardExpMonth     *string        `json:"card_exp_month,omitempty" validate:"omitempty,len=2,numeric"`
	CardExpYear      *string        `json:"card_exp_year,omitempty" validate:"omitempty,numeric,min=2,max=4"`
	CardToken        *secret.Secret `json:"card_token,omitempty"`
	Phone            *string        `json:"phone,omitempty"`
	Language         *Language      `json:"language,omitempty"`
	Prepare          *Prepare       `json:"prepare,omitempty"`
	RecurringByToken *string        `json:"recurringbytoken,omitempty"`
	ResultURL        *string        `json:"result_url,omitempty" validate:"omitempty,url"`
	ServerURL        *string        `json:"server_url,omitempty" validate:"omitempty,url"`
	Sandbox          *string        `json:"sandbox,omitempty"`
	MPIECI           *MPIECI        `json:"mpi_eci,omitempty"`
	MPICres          *string        `json:"mpi_cres,omitempty"`
	Sender
}

// NewP2PDebitRequest builds the debit leg of a card-to-card transfer.
func NewP2PDebitRequest(amount Amount, currency Currency, orderID, description string) *P2PDebitRequest {
	return &P2PDebitRequest{
		apiRequest:  apiRequest{Version: Version7, Action: ActionP2PDebit},
		Amount:      amount,
		Currency:    currency,
		OrderID:     orderID,
		Description: description,
	}
}

// Validate checks the request against the gateway schema constraints.
func (r *P2PDebitRequest) Validate() error { return validateRequest(r) }
