package entity

import "time"

// InvoiceStatus is the payment state machine:
// pending -> paid -> refunded.
type InvoiceStatus string

const (
	InvoicePending  InvoiceStatus = "pending"
	InvoicePaid     InvoiceStatus = "paid"
	InvoiceRefunded InvoiceStatus = "refunded"
)

// CanTransitionTo reports whether s may move to next.
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	switch s {
	case InvoicePending:
		return next == InvoicePaid
	case InvoicePaid:
		return next == InvoiceRefunded
	}
	return false
}

// InvoiceItem is one billed service line.
type InvoiceItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Invoice bills a completed appointment. At most one invoice per appointment.
type Invoice struct {
	ID            string
	AppointmentID string
	PatientID     string
	Items         []InvoiceItem
	Total         float64
	Status        InvoiceStatus
	PaidAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SumItems returns the total of all line amounts.
func SumItems(items []InvoiceItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Amount
	}
	return total
}
