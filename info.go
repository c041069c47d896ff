package liqpay

import "github.com/oapi-codegen/runtime/types"

// StatusRequest queries the current state of a payment (action "status").
type StatusRequest struct {
	apiRequest
	OrderID string `json:"order_id" validate:"required,max=255"`
}

// NewStatusRequest builds a status query for orderID.
func NewStatusRequest(orderID string) *StatusRequest {
	return &StatusRequest{
		apiRequest: apiRequest{Version: Version7, Action: ActionStatus},
		OrderID:    orderID,
	}
}

// Validate checks the request against the gateway schema constraints.
func (r *StatusRequest) Validate() error { return validateRequest(r) }

// ReceiptRequest emails a fiscal receipt for a completed payment (action
// "ticket").
type ReceiptRequest struct {
	apiRequest
	Email   types.Email `json:"email" validate:"required,email"`
	OrderID string      `json:"order_id" validate:"required,max=255"`

	PaymentID *string   `json:"payment_id,omitempty"`
	Language  *Language `json:"language,omitempty"`
}

// NewReceiptRequest sends the receipt for orderID to email.
func NewReceiptRequest(orderID string, email types.Email) *ReceiptRequest {
	return &ReceiptRequest{
		apiRequest: apiRequest{Version: Version7, Action: ActionTicket},
		Email:      email,
		OrderID:    orderID,
	}
}

// Validate checks the request against the gateway schema constraints.
func (r *ReceiptRequest) Validate() error { return validateRequest(r) }

// AddDataRequest attaches merchant info to an existing payment (action
// "data").
type AddDataRequest struct {
	apiRequest
	OrderID string `json:"order_id" validate:"required,max=255"`
	Info    string `json:"info" validate:"required"`
}

// NewAddDataRequest attaches info to the payment tied to orderID.
func NewAddDataRequest(orderID, info string) *AddDataRequest {
	return &AddDataRequest{
		apiRequest: apiRequest{Version: Version7, Action: ActionData},
		OrderID:    orderID,
		Info:       info,
	}
}

// Validate checks the request against the gateway schema constraints.
func (r *AddDataRequest) Validate() error { return validateRequest(r) }

// ArchiveRequest exports the registry of payments for a date range (action
// "reports"). Dates are in the gateway's "2015-03-31 00:00:00" UTC format.
type ArchiveRequest struct {
	apiRequest
	DateFrom string       `json:"date_from" validate:"required"`
	DateTo   string       `json:"date_to" validate:"required"`
	Format   ReportFormat `json:"resp_format" validate:"required,oneof=json csv xml"`
}

// CompensationReportRequest fetches the settlement report for one payout
// (action "reports_compensation"), selected either by compensation id or by
// payout date.
type CompensationReportRequest struct {
	apiRequest
	CompensationID *string      `json:"compensation_id,omitempty" validate:"required_without=Date"`
	Date           *string      `json:"date,omitempty" validate:"required_without=CompensationID"`
	Format         ReportFormat `json:"resp_format" validate:"required,oneof=json csv xml"`
}

// NewCompensationReportByID builds a settlement report lookup for one
// compensation id.
func NewCompensationReportByID(compensationID string) *CompensationReportRequest {
	return &CompensationReportRequest{
		apiRequest:     apiRequest{Version: Version7, Action: ActionCompensation},
		CompensationID: &compensationID,
		Format:         ReportFormatJSON,
	}
}

// NewCompensationReportByDate builds a settlement report lookup for a payout
// date, in the gateway's "2015-03-31 00:00:00" UTC format.
func NewCompensationReportByDate(date string) *CompensationReportRequest {
	return &CompensationReportRequest{
		apiRequest: apiRequest{Version: Version7, Action: ActionCompensation},
		Date:       &date,
		Format:     ReportFormatJSON,
	}
}

// Validate checks the request against the gateway schema constraints.
func (r *CompensationReportRequest) Validate() error { return validateRequest(r) }

// NewArchiveRequest builds a payment registry export.
func NewArchiveRequest(dateFrom, dateTo string, format ReportFormat) *ArchiveRequest {
	return &ArchiveRequest{
		apiRequest: apiRequest{Version: Version7, Action: ActionReports},
		DateFrom:   dateFrom,
		DateTo:     dateTo,
		Format:     format,
	}
}

// Validate checks the request against the gateway schema constraints.
func (r *ArchiveRequest) Validate() error { return validateRequest(r) }
