package models

import (
	"strconv"
	"strings"
	"time"
)

// fulfillment status, in canonical menu order
const (
	StatusOrderPlaced    = "Order Placed"
	StatusConfirmed      = "Confirmed"
	StatusPending        = "Pending"
	StatusPacking        = "Packing"
	StatusShipped        = "Shipped"
	StatusOutForDelivery = "Out for delivery"
	StatusDelivered      = "Delivered"
	StatusCanceled       = "Canceled"
)

// Statuses returns the fulfillment statuses in canonical menu order.
// The menu is not a strict sequence: any status may be submitted from any
// other one, the upstream decides whether the transition is legal.
func Statuses() []string {
	return []string{
		StatusOrderPlaced,
		StatusConfirmed,
		StatusPending,
		StatusPacking,
		StatusShipped,
		StatusOutForDelivery,
		StatusDelivered,
		StatusCanceled,
	}
}

// IsValidStatus reports whether s is one of the known fulfillment statuses.
func IsValidStatus(s string) bool {
	for _, known := range Statuses() {
		if s == known {
			return true
		}
	}
	return false
}

// LineItem is a single ordered product line.
type LineItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size,omitempty"`
}

// Address is a delivery address. It is edited through a detached draft that
// is validated and submitted as a whole, never partially.
type Address struct {
	RecipientName string `json:"recipientName"`
	Phone         string `json:"phone"`
	AddressLine1  string `json:"addressLine1"`
	District      string `json:"district"`
	PostalCode    string `json:"postalCode"`
}

// Order is the upstream's order entity. The backoffice holds a read-only
// copy per fetch cycle; all mutations go through the upstream.
type Order struct {
	ID            string     `json:"_id"`
	Items         []LineItem `json:"items"`
	Amount        Amount     `json:"amount"`
	Address       Address    `json:"address"`
	PaymentMethod string     `json:"paymentMethod"`
	Payment       bool       `json:"payment"`
	Status        string     `json:"status"`
	Date          Timestamp  `json:"date"`
}

// Timestamp decodes the upstream's order date, which appears either as a
// unix-milliseconds number or as a formatted string. Unparsable values
// decode as epoch 0 so they sort as oldest.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		t.Time = time.UnixMilli(ms).UTC()
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		raw := s[1 : len(s)-1]
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
			if parsed, err := time.Parse(layout, raw); err == nil {
				t.Time = parsed.UTC()
				return nil
			}
		}
	}
	t.Time = time.UnixMilli(0).UTC()
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(t.Time.UnixMilli(), 10)), nil
}

// Amount is a monetary value. Missing or non-numeric upstream values count
// as zero instead of failing the whole decode.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = Amount(v)
	return nil
}
