package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/medicore/hms-api/internal/domain/entity"
	repo "github.com/medicore/hms-api/internal/domain/repository"
	"github.com/medicore/hms-api/pkg/helpers"
	"github.com/medicore/hms-api/pkg/mailer"
)

// BillingService creates invoices for completed appointments and walks them
// through pending -> paid -> refunded.
type BillingService struct {
	Invoices     repo.InvoiceRepository
	Appointments repo.AppointmentRepository
	Patients     repo.PatientRepository
	Pub          *helpers.RabbitPublisher
	Logger       *logrus.Logger
}

func NewBillingService(invoices repo.InvoiceRepository, appointments repo.AppointmentRepository, patients repo.PatientRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger) *BillingService {
	return &BillingService{Invoices: invoices, Appointments: appointments, Patients: patients, Pub: pub, Logger: logger}
}

type CreateInvoiceInput struct {
	AppointmentID string
	Items         []entity.InvoiceItem
}

func (s *BillingService) Create(ctx context.Context, in CreateInvoiceInput) (*entity.Invoice, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one line item required", ErrInvalidInput)
	}
	for _, it := range in.Items {
		if it.Amount < 0 {
			return nil, fmt.Errorf("%w: negative amount for %q", ErrInvalidInput, it.Description)
		}
	}

	a, err := s.Appointments.GetByID(ctx, in.AppointmentID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("%w: appointment %s", ErrNotFound, in.AppointmentID)
		}
		return nil, err
	}
	if a.Status != entity.AppointmentCompleted {
		return nil, ErrAppointmentNotCompleted
	}

	inv := &entity.Invoice{
		AppointmentID: a.ID,
		PatientID:     a.PatientID,
		Items:         in.Items,
		Total:         entity.SumItems(in.Items),
		Status:        entity.InvoicePending,
	}
	if err := s.Invoices.Create(ctx, inv); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateInvoice
		}
		return nil, err
	}
	return inv, nil
}

func (s *BillingService) Get(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, err := s.Invoices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

// Pay moves a pending invoice to paid and enqueues the receipt email.
func (s *BillingService) Pay(ctx context.Context, id string) (*entity.Invoice, error) {
	now := time.Now().UTC()
	inv, err := s.Invoices.UpdateStatus(ctx, id, entity.InvoicePending, entity.InvoicePaid, &now)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			return nil, ErrNotFound
		case errors.Is(err, repo.ErrConflict):
			return nil, ErrInvalidTransition
		}
		return nil, err
	}
	s.sendReceipt(ctx, inv)
	return inv, nil
}

// Refund moves a paid invoice to refunded.
func (s *BillingService) Refund(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, err := s.Invoices.UpdateStatus(ctx, id, entity.InvoicePaid, entity.InvoiceRefunded, nil)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			return nil, ErrNotFound
		case errors.Is(err, repo.ErrConflict):
			return nil, ErrInvalidTransition
		}
		return nil, err
	}
	return inv, nil
}

func (s *BillingService) List(ctx context.Context, f repo.InvoiceFilter) ([]*entity.Invoice, error) {
	f.Limit = normalizeLimit(f.Limit)
	return s.Invoices.List(ctx, f)
}

func (s *BillingService) sendReceipt(ctx context.Context, inv *entity.Invoice) {
	if s.Pub == nil {
		return
	}
	patient, err := s.Patients.GetByID(ctx, inv.PatientID)
	if err != nil || patient.Email == "" {
		return
	}
	job := mailer.EmailJob{
		To:       patient.Email,
		Template: mailer.TemplateInvoiceReceipt,
		Data: map[string]any{
			"PatientName": patient.Name,
			"InvoiceID":   inv.ID,
			"Total":       fmt.Sprintf("%.2f", inv.Total),
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("invoice_id", inv.ID).Warn("receipt publish failed")
	}
}
