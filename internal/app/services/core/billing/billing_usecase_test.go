package billing

import (
	"context"
	"io"
	"testing"
	"time"

	"clinicflow-service/internal/app/config"
	"clinicflow-service/internal/app/models"
	"clinicflow-service/internal/pkg/constvars"
	"clinicflow-service/internal/pkg/dto/requests"
	"clinicflow-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) CreateInvoice(ctx context.Context, invoiceModel *models.Invoice) (string, error) {
	args := m.Called(ctx, invoiceModel)
	return args.String(0), args.Error(1)
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context, query *requests.QueryParams) ([]models.Invoice, int64, error) {
	args := m.Called(ctx, query)
	var list []models.Invoice
	if args.Get(0) != nil {
		list = args.Get(0).([]models.Invoice)
	}
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	var invoice *models.Invoice
	if args.Get(0) != nil {
		invoice = args.Get(0).(*models.Invoice)
	}
	return invoice, args.Error(1)
}

func (m *MockInvoiceRepository) FindByPatientID(ctx context.Context, patientID string, query *requests.QueryParams) ([]models.Invoice, int64, error) {
	args := m.Called(ctx, patientID, query)
	var list []models.Invoice
	if args.Get(0) != nil {
		list = args.Get(0).([]models.Invoice)
	}
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *MockInvoiceRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Invoice, error) {
	args := m.Called(ctx, appointmentID)
	var invoice *models.Invoice
	if args.Get(0) != nil {
		invoice = args.Get(0).(*models.Invoice)
	}
	return invoice, args.Error(1)
}

func (m *MockInvoiceRepository) SumAmountsBetween(ctx context.Context, from, to time.Time) (float64, float64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(float64), args.Get(1).(float64), args.Error(2)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoiceModel *models.Invoice) error {
	args := m.Called(ctx, invoiceModel)
	return args.Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) CreatePayment(ctx context.Context, paymentModel *models.Payment) (string, error) {
	args := m.Called(ctx, paymentModel)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentRepository) FindByInvoiceID(ctx context.Context, invoiceID string) ([]models.Payment, error) {
	args := m.Called(ctx, invoiceID)
	var list []models.Payment
	if args.Get(0) != nil {
		list = args.Get(0).([]models.Payment)
	}
	return list, args.Error(1)
}

type MockMedicareClaimRepository struct {
	mock.Mock
}

func (m *MockMedicareClaimRepository) CreateClaim(ctx context.Context, claimModel *models.MedicareClaim) (string, error) {
	args := m.Called(ctx, claimModel)
	return args.String(0), args.Error(1)
}

func (m *MockMedicareClaimRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.MedicareClaim, error) {
	args := m.Called(ctx, patientID)
	var list []models.MedicareClaim
	if args.Get(0) != nil {
		list = args.Get(0).([]models.MedicareClaim)
	}
	return list, args.Error(1)
}

func (m *MockMedicareClaimRepository) CountClaimsInYear(ctx context.Context, patientID string, year int) (int64, error) {
	args := m.Called(ctx, patientID, year)
	return args.Get(0).(int64), args.Error(1)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) CreatePatient(ctx context.Context, patientModel *models.Patient) (string, error) {
	args := m.Called(ctx, patientModel)
	return args.String(0), args.Error(1)
}

func (m *MockPatientRepository) FindAll(ctx context.Context, query *requests.QueryParams) ([]models.Patient, int64, error) {
	args := m.Called(ctx, query)
	var list []models.Patient
	if args.Get(0) != nil {
		list = args.Get(0).([]models.Patient)
	}
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	var patient *models.Patient
	if args.Get(0) != nil {
		patient = args.Get(0).(*models.Patient)
	}
	return patient, args.Error(1)
}

func (m *MockPatientRepository) FindByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	args := m.Called(ctx, userID)
	var patient *models.Patient
	if args.Get(0) != nil {
		patient = args.Get(0).(*models.Patient)
	}
	return patient, args.Error(1)
}

func (m *MockPatientRepository) CountCreatedBetween(ctx context.Context, from, to string) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientRepository) UpdatePatient(ctx context.Context, patientModel *models.Patient) error {
	args := m.Called(ctx, patientModel)
	return args.Error(0)
}

type MockServiceUsecase struct {
	mock.Mock
}

func (m *MockServiceUsecase) CreateService(ctx context.Context, session *models.Session, request *requests.CreateService) (*responses.Service, error) {
	args := m.Called(ctx, session, request)
	var service *responses.Service
	if args.Get(0) != nil {
		service = args.Get(0).(*responses.Service)
	}
	return service, args.Error(1)
}

func (m *MockServiceUsecase) FindAllServices(ctx context.Context) ([]responses.Service, error) {
	args := m.Called(ctx)
	var list []responses.Service
	if args.Get(0) != nil {
		list = args.Get(0).([]responses.Service)
	}
	return list, args.Error(1)
}

func (m *MockServiceUsecase) FindServiceByID(ctx context.Context, serviceID int64) (*responses.Service, error) {
	args := m.Called(ctx, serviceID)
	var service *responses.Service
	if args.Get(0) != nil {
		service = args.Get(0).(*responses.Service)
	}
	return service, args.Error(1)
}

func (m *MockServiceUsecase) UpdateServiceByID(ctx context.Context, session *models.Session, serviceID int64, request *requests.UpdateService) (*responses.Service, error) {
	args := m.Called(ctx, session, serviceID, request)
	var service *responses.Service
	if args.Get(0) != nil {
		service = args.Get(0).(*responses.Service)
	}
	return service, args.Error(1)
}

func (m *MockServiceUsecase) ResolveServiceBySlug(ctx context.Context, slug string) (*models.Service, error) {
	args := m.Called(ctx, slug)
	var service *models.Service
	if args.Get(0) != nil {
		service = args.Get(0).(*models.Service)
	}
	return service, args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadObject(ctx context.Context, bucketName, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	args := m.Called(ctx, bucketName, objectName, contentType, reader, size)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) RemoveObject(ctx context.Context, bucketName, objectName string) error {
	args := m.Called(ctx, bucketName, objectName)
	return args.Error(0)
}

type MockMailerService struct {
	mock.Mock
}

func (m *MockMailerService) EnqueueEmail(ctx context.Context, payload *requests.EmailPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *MockMailerService) SendEmail(payload *requests.EmailPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}

func newBillingUsecaseForTest(claimRepo *MockMedicareClaimRepository) *billingUsecase {
	return &billingUsecase{
		InvoiceRepository:       new(MockInvoiceRepository),
		PaymentRepository:       new(MockPaymentRepository),
		MedicareClaimRepository: claimRepo,
		PatientRepository:       new(MockPatientRepository),
		ServiceUsecase:          new(MockServiceUsecase),
		Storage:                 new(MockStorage),
		MailerService:           new(MockMailerService),
		InternalConfig:          &config.InternalConfig{},
		Log:                     zap.NewNop(),
	}
}

func TestCheckMedicareEligibility(t *testing.T) {
	ctx := context.Background()
	staffSession := &models.Session{Role: constvars.RoleTypePracticeManager}

	t.Run("invalid card number fails validation without an error", func(t *testing.T) {
		claimRepo := new(MockMedicareClaimRepository)
		uc := newBillingUsecaseForTest(claimRepo)

		response, err := uc.CheckMedicareEligibility(ctx, staffSession, &requests.MedicareCheck{
			MedicareNumber: "1234567890",
		})

		require.NoError(t, err)
		assert.False(t, response.Valid)
		assert.Equal(t, constvars.ErrClientInvalidMedicareNumber, response.Message)
		claimRepo.AssertNotCalled(t, "CountClaimsInYear")
	})

	t.Run("valid card without a patient reports the full yearly cap", func(t *testing.T) {
		claimRepo := new(MockMedicareClaimRepository)
		uc := newBillingUsecaseForTest(claimRepo)

		response, err := uc.CheckMedicareEligibility(ctx, staffSession, &requests.MedicareCheck{
			MedicareNumber: "2123456701",
		})

		require.NoError(t, err)
		assert.True(t, response.Valid)
		assert.Equal(t, constvars.MedicareRebatedSessionsPerYear, response.SessionsRemaining)
	})

	t.Run("used sessions reduce the remaining count", func(t *testing.T) {
		claimRepo := new(MockMedicareClaimRepository)
		claimRepo.On("CountClaimsInYear", mock.Anything, "patient-1", time.Now().Year()).Return(int64(4), nil)
		uc := newBillingUsecaseForTest(claimRepo)

		response, err := uc.CheckMedicareEligibility(ctx, staffSession, &requests.MedicareCheck{
			MedicareNumber: "2123456701",
			PatientID:      "patient-1",
		})

		require.NoError(t, err)
		assert.Equal(t, 4, response.SessionsUsed)
		assert.Equal(t, 6, response.SessionsRemaining)
		assert.Empty(t, response.Message)
	})

	t.Run("an exhausted cap carries the alert message", func(t *testing.T) {
		claimRepo := new(MockMedicareClaimRepository)
		claimRepo.On("CountClaimsInYear", mock.Anything, "patient-2", time.Now().Year()).Return(int64(10), nil)
		uc := newBillingUsecaseForTest(claimRepo)

		response, err := uc.CheckMedicareEligibility(ctx, staffSession, &requests.MedicareCheck{
			MedicareNumber: "2123456701",
			PatientID:      "patient-2",
		})

		require.NoError(t, err)
		assert.Equal(t, 0, response.SessionsRemaining)
		assert.Equal(t, constvars.ErrClientMedicareSessionCapAlert, response.Message)
	})

	t.Run("a patient session always checks its own record", func(t *testing.T) {
		claimRepo := new(MockMedicareClaimRepository)
		claimRepo.On("CountClaimsInYear", mock.Anything, "patient-self", time.Now().Year()).Return(int64(1), nil)
		uc := newBillingUsecaseForTest(claimRepo)

		patientSession := &models.Session{Role: constvars.RoleTypePatient, PatientID: "patient-self"}
		response, err := uc.CheckMedicareEligibility(ctx, patientSession, &requests.MedicareCheck{
			MedicareNumber: "2123456701",
			PatientID:      "patient-someone-else",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, response.SessionsUsed)
		claimRepo.AssertExpectations(t)
	})
}
