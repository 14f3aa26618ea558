package contracts

import (
	"context"
	"time"

	"clinicflow-service/internal/app/models"
	"clinicflow-service/internal/pkg/dto/requests"
	"clinicflow-service/internal/pkg/dto/responses"
)

type BillingUsecase interface {
	FindAllInvoices(ctx context.Context, session *models.Session, query *requests.QueryParams) ([]responses.Invoice, *responses.Pagination, error)
	FindInvoiceByID(ctx context.Context, session *models.Session, invoiceID string) (*responses.Invoice, error)
	GetInvoiceDocumentURL(ctx context.Context, session *models.Session, invoiceID string) (string, error)
	RecordPayment(ctx context.Context, session *models.Session, request *requests.RecordPayment) (*responses.Payment, error)
	CheckMedicareEligibility(ctx context.Context, session *models.Session, request *requests.MedicareCheck) (*responses.MedicareCheck, error)
	FindMedicareClaims(ctx context.Context, session *models.Session, patientID string) ([]responses.MedicareClaim, error)
	// CreateInvoiceForAppointment issues an invoice (and a Medicare claim when
	// the patient holds a valid card and rebated sessions remain) after a
	// completed session.
	CreateInvoiceForAppointment(ctx context.Context, appointment *models.Appointment) (*models.Invoice, error)
}

type InvoiceRepository interface {
	CreateInvoice(ctx context.Context, invoiceModel *models.Invoice) (invoiceID string, err error)
	FindAll(ctx context.Context, query *requests.QueryParams) ([]models.Invoice, int64, error)
	FindByID(ctx context.Context, invoiceID string) (*models.Invoice, error)
	FindByPatientID(ctx context.Context, patientID string, query *requests.QueryParams) ([]models.Invoice, int64, error)
	FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Invoice, error)
	SumAmountsBetween(ctx context.Context, from, to time.Time) (invoiced, collected float64, err error)
	UpdateInvoice(ctx context.Context, invoiceModel *models.Invoice) error
}

type PaymentRepository interface {
	CreatePayment(ctx context.Context, paymentModel *models.Payment) (paymentID string, err error)
	FindByInvoiceID(ctx context.Context, invoiceID string) ([]models.Payment, error)
}

type MedicareClaimRepository interface {
	CreateClaim(ctx context.Context, claimModel *models.MedicareClaim) (claimID string, err error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.MedicareClaim, error)
	CountClaimsInYear(ctx context.Context, patientID string, year int) (int64, error)
}
