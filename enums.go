package liqpay

// Version selects the API protocol version carried in every request.
type Version string

const (
	Version3 Version = "3"
	Version7 Version = "7"
)

// Action names the API operation a request performs.
type Action string

const (
	ActionPay               Action = "pay"
	ActionPayCash           Action = "paycash"
	ActionPayQR             Action = "payqr"
	ActionQRCreate          Action = "staticQrCreate"
	ActionHold              Action = "hold"
	ActionHoldCompletion    Action = "hold_completion"
	ActionRefund            Action = "refund"
	ActionStatus            Action = "status"
	ActionInvoiceSend       Action = "invoice_send"
	ActionInvoiceCancel     Action = "invoice_cancel"
	ActionInvoiceUnits      Action = "invoice_units_get_list"
	ActionSubscribe         Action = "subscribe"
	ActionSubscribeUpdate   Action = "subscribe_update"
	ActionUnsubscribe       Action = "unsubscribe"
	ActionPayToken          Action = "paytoken"
	ActionTokenCreate       Action = "token_create"
	ActionTokenCreateUnique Action = "token_create_unique"
	ActionTokenUpdate       Action = "token_update"
	ActionP2PCredit         Action = "p2pcredit"
	ActionP2PDebit          Action = "p2pdebit"
	ActionCardVerification  Action = "cardverification"
	ActionMPI               Action = "mpi"
	ActionConfirm           Action = "confirm"
	ActionTicket            Action = "ticket"
	ActionData              Action = "data"
	ActionReports           Action = "reports"
	ActionCompensation      Action = "reports_compensation"
	ActionAuth              Action = "auth"
	ActionPayDonate         Action = "paydonate"
	ActionRegular           Action = "regular"
)

// Currency is the ISO-4217 code of a payment currency. The gateway accepts
// UAH, EUR, and USD.
type Currency string

const (
	UAH Currency = "UAH"
	EUR Currency = "EUR"
	USD Currency = "USD"
)

// Language selects the customer-facing language of hosted pages and
// messages.
type Language string

const (
	LanguageEN Language = "en"
	LanguageUK Language = "uk"
)

// PayType identifies the instrument a payment was made with.
type PayType string

const (
	PayTypeCard              PayType = "card"
	PayTypeLiqPay            PayType = "liqpay"
	PayTypePrivat24          PayType = "privat24"
	PayTypeMasterpass        PayType = "masterpass"
	PayTypeMomentPart        PayType = "moment_part"
	PayTypePayPart           PayType = "paypart"
	PayTypeCash              PayType = "cash"
	PayTypeInvoice           PayType = "invoice"
	PayTypeQR                PayType = "qr"
	PayTypeApplePay          PayType = "apay"
	PayTypeGooglePay         PayType = "gpay"
	PayTypeApplePayDecrypted PayType = "apay_tavv"
	PayTypeGooglePayTavv     PayType = "gpay_tavv"
	PayTypeTavv              PayType = "tavv"
)

// Result is the coarse outcome of a request: ok or error.
type Result string

const (
	ResultOK    Result = "ok"
	ResultError Result = "error"
)

// Status reports the state of a payment or operation.
type Status string

const (
	StatusErrored          Status = "error"
	StatusFailure          Status = "failure"
	StatusReversed         Status = "reversed"
	StatusSuccess          Status = "success"
	StatusVerify3DS        Status = "3ds_verify"
	StatusVerifyCVV        Status = "cvv_verify"
	StatusVerifyOTP        Status = "otp_verify"
	StatusVerifyIVR        Status = "ivr_verify"
	StatusVerifyPassword   Status = "password_verify"
	StatusVerifyPhone      Status = "phone_verify"
	StatusVerifyPIN        Status = "pin_verify"
	StatusVerifyReceiver   Status = "receiver_verify"
	StatusVerifySender     Status = "sender_verify"
	StatusVerifySenderApp  Status = "senderapp_verify"
	StatusVerifyCaptcha    Status = "captcha_verify"
	StatusVerifyMasterPass Status = "mp_verify"
	StatusWaitAccept       Status = "wait_accept"
	StatusWaitCard         Status = "wait_card"
	StatusWaitCompensation Status = "wait_compensation"
	StatusWaitLC           Status = "wait_lc"
	StatusWaitReserve      Status = "wait_reserve"
	StatusWaitSecure       Status = "wait_secure"
	StatusWaitQR           Status = "wait_qr"
	StatusWaitSender       Status = "wait_sender"
	StatusWaitCash         Status = "cash_wait"
	StatusWaitHold         Status = "hold_wait"
	StatusWaitInvoice      Status = "invoice_wait"
	StatusSubscribed       Status = "subscribed"
	StatusUnsubscribed     Status = "unsubscribed"
	StatusPrepared         Status = "prepared"
	StatusProcessing       Status = "processing"
	StatusTryAgain         Status = "try_again"
	StatusActive           Status = "active"
)

// Final reports whether the status is terminal: the gateway will not move
// the payment further without another API call.
func (s Status) Final() bool {
	switch s {
	case StatusSuccess, StatusFailure, StatusErrored, StatusReversed, StatusUnsubscribed:
		return true
	}
	return false
}

// Bonus is the loyalty program a bonus was accrued under.
type Bonus string

const (
	BonusPlus         Bonus = "bonusplus"
	BonusDiscountClub Bonus = "discount_club"
	BonusPersonal     Bonus = "personal"
	BonusPromo        Bonus = "promo"
)

// MPIECI is the Electronic Commerce Indicator reported after 3-D Secure
// processing: 5 passed with 3DS, 6 issuer does not support 3DS, 7 passed
// without 3DS.
type MPIECI string

const (
	MPIECISuccess3DS      MPIECI = "5"
	MPIECINotSupported3DS MPIECI = "6"
	MPIECIWithout3DS      MPIECI = "7"
)

// Prepare switches a request into dry-run mode: "1" validates without
// debiting, "tariffs" additionally returns the applicable commission.
type Prepare string

const (
	PrepareEnable  Prepare = "1"
	PrepareTariffs Prepare = "tariffs"
)

// SubscribePeriodicity is the interval of a recurring payment.
type SubscribePeriodicity string

const (
	PeriodicityDay   SubscribePeriodicity = "day"
	PeriodicityWeek  SubscribePeriodicity = "week"
	PeriodicityMonth SubscribePeriodicity = "month"
	PeriodicityYear  SubscribePeriodicity = "year"
)

// CardTokenAction changes the lifecycle state of a stored card token.
type CardTokenAction string

const (
	CardTokenSuspend   CardTokenAction = "SUSPEND"
	CardTokenUnsuspend CardTokenAction = "UNSUSPEND"
	CardTokenDelete    CardTokenAction = "DELETE"
)

// ReportFormat selects the payload format of archive and registry exports.
type ReportFormat string

const (
	ReportFormatJSON ReportFormat = "json"
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatXML  ReportFormat = "xml"
)
