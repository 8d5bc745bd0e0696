package repository

import (
	"context"
	"time"

	"github.com/medicore/hms-api/internal/domain/entity"
)

// InvoiceFilter narrows List results. Zero values mean "no filter".
type InvoiceFilter struct {
	PatientID string
	Status    entity.InvoiceStatus
	Limit     int
	Offset    int
}

// InvoiceRepository defines database operations for invoices.
// Create returns ErrDuplicate when the appointment is already billed.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	GetByAppointmentID(ctx context.Context, appointmentID string) (*entity.Invoice, error)
	// UpdateStatus performs a compare-and-set from "from" to "to"; ErrConflict
	// when the row exists but is not in "from".
	UpdateStatus(ctx context.Context, id string, from, to entity.InvoiceStatus, paidAt *time.Time) (*entity.Invoice, error)
	List(ctx context.Context, f InvoiceFilter) ([]*entity.Invoice, error)
}
