package liqpay

import (
	"encoding/base64"
	"encoding/json"
)

// RROItem is one fiscalized position of an order.
type RROItem struct {
	ID    int64  `json:"id"`
	Count int64  `json:"amount"`
	Cost  Amount `json:"cost"`
	Price Amount `json:"price"`
}

// RRO carries fiscalization data for jurisdictions that require cash
// register reporting.
type RRO struct {
	Items          []RROItem `json:"items,omitempty"`
	DeliveryEmails []string  `json:"delivery_emails,omitempty"`
}

// DetailAddenda describes an airline ticket purchase. On the wire it
// travels as the base64 of its own JSON encoding, which MarshalJSON takes
// care of.
type DetailAddenda struct {
	Airline         string `json:"airLine,omitempty"`
	TicketNumber    string `json:"ticketNumber,omitempty"`
	PassengerName   string `json:"passengerName,omitempty"`
	FlightNumber    string `json:"flightNumber,omitempty"`
	OriginCity      string `json:"originCity,omitempty"`
	DestinationCity string `json:"destinationCity,omitempty"`
	DepartureDate   int64  `json:"departureDate,omitempty"`
}

// MarshalJSON emits the base64-wrapped JSON form the gateway expects for
// the dae field.
func (d DetailAddenda) MarshalJSON() ([]byte, error) {
	type plain DetailAddenda
	raw, err := json.Marshal(plain(d))
	if err != nil {
		return nil, err
	}
	return json.Marshal(base64.StdEncoding.EncodeToString(raw))
}

// Sender describes the payer. All fields are optional; acquirers use them
// for AML screening.
type Sender struct {
	SenderFirstName     *string `json:"sender_first_name,omitempty"`
	SenderLastName      *string `json:"sender_last_name,omitempty"`
	SenderEmail         *string `json:"sender_email,omitempty"`
	SenderCountryCode   *string `json:"sender_country_code,omitempty"`
	SenderCity          *string `json:"sender_city,omitempty"`
	SenderAddress       *string `json:"sender_address,omitempty"`
	SenderState         *string `json:"sender_state,omitempty"`
	SenderShippingState *string `json:"sender_shipping_state,omitempty"`
	SenderPostalCode    *string `json:"sender_postal_code,omitempty"`
}

// Product describes the goods being paid for.
type Product struct {
	ProductCategory    *string `json:"product_category,omitempty" validate:"omitempty,max=25"`
	ProductDescription *string `json:"product_description,omitempty" validate:"omitempty,max=500"`
	ProductName        *string `json:"product_name,omitempty" validate:"omitempty,max=100"`
	ProductURL         *string `json:"product_url,omitempty" validate:"omitempty,url,max=2000"`
}
