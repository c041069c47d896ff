package liqpay

// Response is the payload shape shared by most gateway operations. Fields
// outside the handful that are always present are pointers: the gateway
// omits everything that does not apply to the operation.
type Response struct {
	Result Result `json:"result"`
	Status Status `json:"status"`

	AcquirerID         *int64    `json:"acq_id,omitempty"`
	Action             *Action   `json:"action,omitempty"`
	AgentCommission    *Amount   `json:"agent_commission,omitempty"`
	Amount             *Amount   `json:"amount,omitempty"`
	AmountBonus        *Amount   `json:"amount_bonus,omitempty"`
	AmountCredit       *Amount   `json:"amount_credit,omitempty"`
	AmountDebit        *Amount   `json:"amount_debit,omitempty"`
	AuthCodeCredit     *string   `json:"authcode_credit,omitempty"`
	AuthCodeDebit      *string   `json:"authcode_debit,omitempty"`
	BonusPercent       *float64  `json:"bonus_procent,omitempty"`
	BonusType          *Bonus    `json:"bonus_type,omitempty"`
	CardToken          *string   `json:"card_token,omitempty"`
	CommissionCredit   *Amount   `json:"commission_credit,omitempty"`
	CommissionDebit    *Amount   `json:"commission_debit,omitempty"`
	ConfirmPhone       *string   `json:"confirm_phone,omitempty"`
	CreateDate         *int64    `json:"create_date,omitempty"`
	Currency           *Currency `json:"currency,omitempty"`
	CurrencyCredit     *Currency `json:"currency_credit,omitempty"`
	CurrencyDebit      *Currency `json:"currency_debit,omitempty"`
	Description        *string   `json:"description,omitempty"`
	EndDate            *int64    `json:"end_date,omitempty"`
	FinalDate          *int64    `json:"final_date,omitempty"`
	IP                 *string   `json:"ip,omitempty"`
	Is3DS              *bool     `json:"is_3ds,omitempty"`
	Language           *Language `json:"language,omitempty"`
	LiqPayOrderID      *string   `json:"liqpay_order_id,omitempty"`
	MPIECI             *MPIECI   `json:"mpi_eci,omitempty"`
	MPICres            *string   `json:"mpi_cres,omitempty"`
	OrderID            *string   `json:"order_id,omitempty"`
	PaymentID          *int64    `json:"payment_id,omitempty"`
	PaymentURL         *string   `json:"url,omitempty"`
	PayType            *PayType  `json:"paytype,omitempty"`
	QRData             *string   `json:"qrdata,omitempty"`
	PublicKey          *string   `json:"public_key,omitempty"`
	ReceiverCommission *Amount   `json:"receiver_commission,omitempty"`
	RedirectTo         *string   `json:"redirect_to,omitempty"`
	RRNCredit          *string   `json:"rrn_credit,omitempty"`
	RRNDebit           *string   `json:"rrn_debit,omitempty"`
	SenderBonus        *Amount   `json:"sender_bonus,omitempty"`
	SenderCardBank     *string   `json:"sender_card_bank,omitempty"`
	SenderCardCountry  *int64    `json:"sender_card_country,omitempty"`
	SenderCardMask     *string   `json:"sender_card_mask2,omitempty"`
	SenderCardType     *string   `json:"sender_card_type,omitempty"`
	SenderCommission   *Amount   `json:"sender_commission,omitempty"`
	SenderFirstName    *string   `json:"sender_first_name,omitempty"`
	SenderLastName     *string   `json:"sender_last_name,omitempty"`
	SenderPhone        *string   `json:"sender_phone,omitempty"`
	TransactionID      *int64    `json:"transaction_id,omitempty"`
	OperationType      *string   `json:"type,omitempty"`
	Version            *Version  `json:"version,omitempty"`

	ErrCode        string `json:"err_code,omitempty"`
	ErrDescription string `json:"err_description,omitempty"`
}

// Err returns the API error carried by the response, or nil when the
// request was accepted.
func (r *Response) Err() error {
	if r.Result == ResultError || r.ErrCode != "" {
		return &Error{Code: r.ErrCode, Description: r.ErrDescription}
	}
	return nil
}

// Unit is a measurement unit entry from the invoice units dictionary.
type Unit struct {
	ID          int64   `json:"id"`
	RROUnitID   *int64  `json:"rro_unit_id,omitempty"`
	FullName    *string `json:"full_name,omitempty"`
	FullNameEN  *string `json:"full_name_en,omitempty"`
	FullNameUK  *string `json:"full_name_uk,omitempty"`
	ShortName   *string `json:"short_name,omitempty"`
	ShortNameEN *string `json:"short_name_en,omitempty"`
	ShortNameUK *string `json:"short_name_uk,omitempty"`
}

// InvoiceUnitsResponse is returned by the invoice units dictionary lookup.
type InvoiceUnitsResponse struct {
	Result         Result `json:"result"`
	Status         Status `json:"status"`
	Units          []Unit `json:"units,omitempty"`
	ErrCode        string `json:"err_code,omitempty"`
	ErrDescription string `json:"err_description,omitempty"`
}

// Err returns the API error carried by the response, or nil.
func (r *InvoiceUnitsResponse) Err() error {
	if r.Result == ResultError || r.ErrCode != "" {
		return &Error{Code: r.ErrCode, Description: r.ErrDescription}
	}
	return nil
}

// ArchiveResponse is returned by archive report requests.
type ArchiveResponse struct {
	Result         Result     `json:"result"`
	Status         Status     `json:"status"`
	Data           []Response `json:"data,omitempty"`
	ErrCode        string     `json:"err_code,omitempty"`
	ErrDescription string     `json:"err_description,omitempty"`
}

// Err returns the API error carried by the response, or nil.
func (r *ArchiveResponse) Err() error {
	if r.Result == ResultError || r.ErrCode != "" {
		return &Error{Code: r.ErrCode, Description: r.ErrDescription}
	}
	return nil
}
