package application

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/medicore/hms-api/internal/domain/entity"
	"github.com/medicore/hms-api/internal/domain/repository"
)

// Compile-time checks that the mocks satisfy the repository contracts.
var (
	_ repository.UserRepository        = (*MockUserRepository)(nil)
	_ repository.PatientRepository     = (*MockPatientRepository)(nil)
	_ repository.DoctorRepository      = (*MockDoctorRepository)(nil)
	_ repository.AppointmentRepository = (*MockAppointmentRepository)(nil)
	_ repository.InvoiceRepository     = (*MockInvoiceRepository)(nil)
	_ repository.DashboardRepository   = (*MockDashboardRepository)(nil)
)

// MockUserRepository is a function-field mock of repository.UserRepository.
type MockUserRepository struct {
	CreateFunc     func(ctx context.Context, u *entity.User) error
	GetByIDFunc    func(ctx context.Context, id string) (*entity.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	UpdateFunc     func(ctx context.Context, u *entity.User) error
	ListFunc       func(ctx context.Context, limit, offset int) ([]*entity.User, error)
}

func (m *MockUserRepository) Create(ctx context.Context, u *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, errors.New("GetByEmailFunc not implemented in mock")
}

func (m *MockUserRepository) Update(ctx context.Context, u *entity.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	return nil, nil
}

// MockPatientRepository is a function-field mock of repository.PatientRepository.
type MockPatientRepository struct {
	CreateFunc     func(ctx context.Context, p *entity.Patient) error
	GetByIDFunc    func(ctx context.Context, id string) (*entity.Patient, error)
	UpdateFunc     func(ctx context.Context, p *entity.Patient) error
	SoftDeleteFunc func(ctx context.Context, id string) error
	ListFunc       func(ctx context.Context, f repository.PatientFilter) ([]*entity.Patient, error)

	UpdateCallCount int32
}

func (m *MockPatientRepository) Create(ctx context.Context, p *entity.Patient) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id string) (*entity.Patient, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockPatientRepository) Update(ctx context.Context, p *entity.Patient) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *MockPatientRepository) SoftDelete(ctx context.Context, id string) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, id)
	}
	return errors.New("SoftDeleteFunc not implemented in mock")
}

func (m *MockPatientRepository) List(ctx context.Context, f repository.PatientFilter) ([]*entity.Patient, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return nil, nil
}

// MockDoctorRepository is a function-field mock of repository.DoctorRepository.
type MockDoctorRepository struct {
	CreateFunc              func(ctx context.Context, d *entity.Doctor) error
	GetByIDFunc             func(ctx context.Context, id string) (*entity.Doctor, error)
	UpdateFunc              func(ctx context.Context, d *entity.Doctor) error
	SoftDeleteFunc          func(ctx context.Context, id string) error
	ListFunc                func(ctx context.Context, f repository.DoctorFilter) ([]*entity.Doctor, error)
	ReplaceAvailabilityFunc func(ctx context.Context, doctorID string, slots []entity.Availability) error
}

func (m *MockDoctorRepository) Create(ctx context.Context, d *entity.Doctor) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, d)
	}
	return nil
}

func (m *MockDoctorRepository) GetByID(ctx context.Context, id string) (*entity.Doctor, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockDoctorRepository) Update(ctx context.Context, d *entity.Doctor) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, d)
	}
	return nil
}

func (m *MockDoctorRepository) SoftDelete(ctx context.Context, id string) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, id)
	}
	return errors.New("SoftDeleteFunc not implemented in mock")
}

func (m *MockDoctorRepository) List(ctx context.Context, f repository.DoctorFilter) ([]*entity.Doctor, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return nil, nil
}

func (m *MockDoctorRepository) ReplaceAvailability(ctx context.Context, doctorID string, slots []entity.Availability) error {
	if m.ReplaceAvailabilityFunc != nil {
		return m.ReplaceAvailabilityFunc(ctx, doctorID, slots)
	}
	return nil
}

// MockAppointmentRepository is a function-field mock of repository.AppointmentRepository.
type MockAppointmentRepository struct {
	CreateFunc          func(ctx context.Context, a *entity.Appointment) error
	GetByIDFunc         func(ctx context.Context, id string) (*entity.Appointment, error)
	RescheduleFunc      func(ctx context.Context, id string, startsAt, endsAt time.Time) (*entity.Appointment, error)
	UpdateStatusFunc    func(ctx context.Context, id string, status entity.AppointmentStatus) (*entity.Appointment, error)
	ListFunc            func(ctx context.Context, f repository.AppointmentFilter) ([]*entity.Appointment, error)
	ListForDoctorOnFunc func(ctx context.Context, doctorID string, dayStart, dayEnd time.Time) ([]*entity.Appointment, error)
}

func (m *MockAppointmentRepository) Create(ctx context.Context, a *entity.Appointment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *MockAppointmentRepository) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockAppointmentRepository) Reschedule(ctx context.Context, id string, startsAt, endsAt time.Time) (*entity.Appointment, error) {
	if m.RescheduleFunc != nil {
		return m.RescheduleFunc(ctx, id, startsAt, endsAt)
	}
	return nil, errors.New("RescheduleFunc not implemented in mock")
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, id string, status entity.AppointmentStatus) (*entity.Appointment, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil, errors.New("UpdateStatusFunc not implemented in mock")
}

func (m *MockAppointmentRepository) List(ctx context.Context, f repository.AppointmentFilter) ([]*entity.Appointment, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) ListForDoctorOn(ctx context.Context, doctorID string, dayStart, dayEnd time.Time) ([]*entity.Appointment, error) {
	if m.ListForDoctorOnFunc != nil {
		return m.ListForDoctorOnFunc(ctx, doctorID, dayStart, dayEnd)
	}
	return nil, nil
}

// MockInvoiceRepository is a function-field mock of repository.InvoiceRepository.
type MockInvoiceRepository struct {
	CreateFunc             func(ctx context.Context, inv *entity.Invoice) error
	GetByIDFunc            func(ctx context.Context, id string) (*entity.Invoice, error)
	GetByAppointmentIDFunc func(ctx context.Context, appointmentID string) (*entity.Invoice, error)
	UpdateStatusFunc       func(ctx context.Context, id string, from, to entity.InvoiceStatus, paidAt *time.Time) (*entity.Invoice, error)
	ListFunc               func(ctx context.Context, f repository.InvoiceFilter) ([]*entity.Invoice, error)
}

func (m *MockInvoiceRepository) Create(ctx context.Context, inv *entity.Invoice) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, inv)
	}
	return nil
}

func (m *MockInvoiceRepository) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockInvoiceRepository) GetByAppointmentID(ctx context.Context, appointmentID string) (*entity.Invoice, error) {
	if m.GetByAppointmentIDFunc != nil {
		return m.GetByAppointmentIDFunc(ctx, appointmentID)
	}
	return nil, errors.New("GetByAppointmentIDFunc not implemented in mock")
}

func (m *MockInvoiceRepository) UpdateStatus(ctx context.Context, id string, from, to entity.InvoiceStatus, paidAt *time.Time) (*entity.Invoice, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, from, to, paidAt)
	}
	return nil, errors.New("UpdateStatusFunc not implemented in mock")
}

func (m *MockInvoiceRepository) List(ctx context.Context, f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return nil, nil
}

// MockDashboardRepository is a function-field mock of repository.DashboardRepository.
type MockDashboardRepository struct {
	CountPatientsFunc        func(ctx context.Context) (int64, error)
	CountDoctorsFunc         func(ctx context.Context) (int64, error)
	AppointmentsByStatusFunc func(ctx context.Context, from, to time.Time) ([]repository.StatusCount, error)
	AppointmentsPerDayFunc   func(ctx context.Context, from, to time.Time) ([]repository.DayCount, error)
	PaidRevenueFunc          func(ctx context.Context, from, to time.Time) (float64, error)
	RevenuePerMonthFunc      func(ctx context.Context, from, to time.Time) ([]repository.MonthRevenue, error)
	RevenuePerDoctorFunc     func(ctx context.Context, from, to time.Time) ([]repository.DoctorRevenue, error)
	RevenuePerSpecialtyFunc  func(ctx context.Context, from, to time.Time) ([]repository.SpecialtyRevenue, error)
}

func (m *MockDashboardRepository) CountPatients(ctx context.Context) (int64, error) {
	if m.CountPatientsFunc != nil {
		return m.CountPatientsFunc(ctx)
	}
	return 0, nil
}

func (m *MockDashboardRepository) CountDoctors(ctx context.Context) (int64, error) {
	if m.CountDoctorsFunc != nil {
		return m.CountDoctorsFunc(ctx)
	}
	return 0, nil
}

func (m *MockDashboardRepository) AppointmentsByStatus(ctx context.Context, from, to time.Time) ([]repository.StatusCount, error) {
	if m.AppointmentsByStatusFunc != nil {
		return m.AppointmentsByStatusFunc(ctx, from, to)
	}
	return nil, nil
}

func (m *MockDashboardRepository) AppointmentsPerDay(ctx context.Context, from, to time.Time) ([]repository.DayCount, error) {
	if m.AppointmentsPerDayFunc != nil {
		return m.AppointmentsPerDayFunc(ctx, from, to)
	}
	return nil, nil
}

func (m *MockDashboardRepository) PaidRevenue(ctx context.Context, from, to time.Time) (float64, error) {
	if m.PaidRevenueFunc != nil {
		return m.PaidRevenueFunc(ctx, from, to)
	}
	return 0, nil
}

func (m *MockDashboardRepository) RevenuePerMonth(ctx context.Context, from, to time.Time) ([]repository.MonthRevenue, error) {
	if m.RevenuePerMonthFunc != nil {
		return m.RevenuePerMonthFunc(ctx, from, to)
	}
	return nil, nil
}

func (m *MockDashboardRepository) RevenuePerDoctor(ctx context.Context, from, to time.Time) ([]repository.DoctorRevenue, error) {
	if m.RevenuePerDoctorFunc != nil {
		return m.RevenuePerDoctorFunc(ctx, from, to)
	}
	return nil, nil
}

func (m *MockDashboardRepository) RevenuePerSpecialty(ctx context.Context, from, to time.Time) ([]repository.SpecialtyRevenue, error) {
	if m.RevenuePerSpecialtyFunc != nil {
		return m.RevenuePerSpecialtyFunc(ctx, from, to)
	}
	return nil, nil
}
