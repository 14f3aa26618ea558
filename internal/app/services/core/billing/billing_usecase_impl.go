package billing

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"clinicflow-service/internal/app/config"
	"clinicflow-service/internal/app/contracts"
	"clinicflow-service/internal/app/models"
	"clinicflow-service/internal/app/services/shared/mailer"
	"clinicflow-service/internal/pkg/constvars"
	"clinicflow-service/internal/pkg/dto/requests"
	"clinicflow-service/internal/pkg/dto/responses"
	"clinicflow-service/internal/pkg/exceptions"
	"clinicflow-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	billingUsecaseInstance contracts.BillingUsecase
	onceBillingUsecase     sync.Once
)

type billingUsecase struct {
	InvoiceRepository       contracts.InvoiceRepository
	PaymentRepository       contracts.PaymentRepository
	MedicareClaimRepository contracts.MedicareClaimRepository
	PatientRepository       contracts.PatientRepository
	ServiceUsecase          contracts.ServiceUsecase
	Storage                 contracts.Storage
	MailerService           mailer.MailerService
	InternalConfig          *config.InternalConfig
	Log                     *zap.Logger
}

func NewBillingUsecase(
	invoiceRepository contracts.InvoiceRepository,
	paymentRepository contracts.PaymentRepository,
	medicareClaimRepository contracts.MedicareClaimRepository,
	patientRepository contracts.PatientRepository,
	serviceUsecase contracts.ServiceUsecase,
	storage contracts.Storage,
	mailerService mailer.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BillingUsecase {
	onceBillingUsecase.Do(func() {
		billingUsecaseInstance = &billingUsecase{
			InvoiceRepository:       invoiceRepository,
			PaymentRepository:       paymentRepository,
			MedicareClaimRepository: medicareClaimRepository,
			PatientRepository:       patientRepository,
			ServiceUsecase:          serviceUsecase,
			Storage:                 storage,
			MailerService:           mailerService,
			InternalConfig:          internalConfig,
			Log:                     logger,
		}
	})
	return billingUsecaseInstance
}

func (uc *billingUsecase) FindAllInvoices(ctx context.Context, session *models.Session, query *requests.QueryParams) ([]responses.Invoice, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("billingUsecase.FindAllInvoices called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var (
		invoices []models.Invoice
		total    int64
		err      error
	)
	switch {
	case session.IsPatient():
		invoices, total, err = uc.InvoiceRepository.FindByPatientID(ctx, session.PatientID, query)
	case session.IsPsychologist():
		query.PsychologistID = session.PsychologistID
		invoices, total, err = uc.InvoiceRepository.FindAll(ctx, query)
	default:
		invoices, total, err = uc.InvoiceRepository.FindAll(ctx, query)
	}
	if err != nil {
		return nil, nil, err
	}

	result := make([]responses.Invoice, 0, len(invoices))
	for i := range invoices {
		result = append(result, *buildInvoiceResponse(&invoices[i]))
	}

	baseURL := fmt.Sprintf("%s/%s/%s/billing/invoices", uc.InternalConfig.App.BaseUrl, uc.InternalConfig.App.EndpointPrefix, uc.InternalConfig.App.Version)
	pagination := utils.BuildPaginationResponse(int(total), query.Page, query.PageSize, baseURL)

	return result, pagination, nil
}

func (uc *billingUsecase) FindInvoiceByID(ctx context.Context, session *models.Session, invoiceID string) (*responses.Invoice, error) {
	invoice, err := uc.loadVisibleInvoice(ctx, session, invoiceID)
	if err != nil {
		return nil, err
	}

	response := buildInvoiceResponse(invoice)

	// The detail view carries the payment history so receipts reconcile
	// against the outstanding balance without a second request.
	payments, err := uc.PaymentRepository.FindByInvoiceID(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}
	for i := range payments {
		response.Payments = append(response.Payments, *buildPaymentResponse(&payments[i]))
	}
	return response, nil
}

func (uc *billingUsecase) FindMedicareClaims(ctx context.Context, session *models.Session, patientID string) ([]responses.MedicareClaim, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("billingUsecase.FindMedicareClaims called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	switch {
	case session.IsPatient():
		patientID = session.PatientID
	case session.IsStaff():
		if patientID == "" {
			return nil, exceptions.ErrURLParamIDValidation(nil, constvars.URLQueryParamPatientID)
		}
	default:
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	claims, err := uc.MedicareClaimRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	responseList := make([]responses.MedicareClaim, 0, len(claims))
	for i := range claims {
		claim := &claims[i]
		responseList = append(responseList, responses.MedicareClaim{
			ID:             claim.ID,
			InvoiceID:      claim.InvoiceID,
			PatientID:      claim.PatientID,
			MedicareNumber: claim.MedicareNumber,
			RebateAmount:   claim.RebateAmount,
			Status:         claim.Status,
			SubmittedAt:    claim.CreatedAt,
		})
	}
	return responseList, nil
}

// GetInvoiceDocumentURL presigns the stored invoice document. The URL expires;
// clients re-request rather than persist it.
func (uc *billingUsecase) GetInvoiceDocumentURL(ctx context.Context, session *models.Session, invoiceID string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("billingUsecase.GetInvoiceDocumentURL called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInvoiceIDKey, invoiceID),
	)

	invoice, err := uc.loadVisibleInvoice(ctx, session, invoiceID)
	if err != nil {
		return "", err
	}
	if invoice.DocumentObject == "" {
		return "", exceptions.ErrInvoiceDocumentMissing(nil)
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlObjectExpiryTimeHours) * time.Hour
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.InternalConfig.Minio.BucketName, invoice.DocumentObject, expiry)
	if err != nil {
		return "", err
	}
	return url, nil
}

func (uc *billingUsecase) RecordPayment(ctx context.Context, session *models.Session, request *requests.RecordPayment) (*responses.Payment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("billingUsecase.RecordPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInvoiceIDKey, request.InvoiceID),
	)

	if !session.IsStaff() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	invoice, err := uc.InvoiceRepository.FindByID(ctx, request.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, exceptions.ErrInvoiceNotExist(nil)
	}

	now := time.Now()
	payment := &models.Payment{
		InvoiceID: invoice.ID,
		PatientID: invoice.PatientID,
		Amount:    request.Amount,
		Method:    request.Method,
		Reference: request.Reference,
		PaidAt:    now,
	}
	payment.SetCreatedNow()

	paymentID, err := uc.PaymentRepository.CreatePayment(ctx, payment)
	if err != nil {
		return nil, err
	}
	payment.ID = paymentID

	invoice.AmountPaid += request.Amount
	switch {
	case invoice.AmountPaid >= invoice.Amount:
		invoice.Status = constvars.InvoiceStatusPaid
	case invoice.AmountPaid > 0:
		invoice.Status = constvars.InvoiceStatusPartiallyPaid
	default:
		invoice.Status = constvars.InvoiceStatusUnpaid
	}
	if err := uc.InvoiceRepository.UpdateInvoice(ctx, invoice); err != nil {
		return nil, err
	}

	uc.Log.Info("billingUsecase.RecordPayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInvoiceIDKey, invoice.ID),
	)
	return buildPaymentResponse(payment), nil
}

func (uc *billingUsecase) CheckMedicareEligibility(ctx context.Context, session *models.Session, request *requests.MedicareCheck) (*responses.MedicareCheck, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("billingUsecase.CheckMedicareEligibility called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response := &responses.MedicareCheck{
		MedicareNumber: request.MedicareNumber,
	}

	if !utils.ValidMedicareNumber(request.MedicareNumber) {
		response.Message = constvars.ErrClientInvalidMedicareNumber
		return response, nil
	}
	response.Valid = true

	patientID := request.PatientID
	if session.IsPatient() {
		patientID = session.PatientID
	}
	if patientID == "" {
		response.SessionsRemaining = constvars.MedicareRebatedSessionsPerYear
		return response, nil
	}

	used, err := uc.MedicareClaimRepository.CountClaimsInYear(ctx, patientID, time.Now().Year())
	if err != nil {
		return nil, err
	}

	response.SessionsUsed = int(used)
	remaining := constvars.MedicareRebatedSessionsPerYear - int(used)
	if remaining < 0 {
		remaining = 0
	}
	response.SessionsRemaining = remaining
	if remaining == 0 {
		response.Message = constvars.ErrClientMedicareSessionCapAlert
	}
	return response, nil
}

// CreateInvoiceForAppointment is idempotent per appointment: a second call
// returns the invoice already issued.
func (uc *billingUsecase) CreateInvoiceForAppointment(ctx context.Context, appointment *models.Appointment) (*models.Invoice, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("billingUsecase.CreateInvoiceForAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)

	existing, err := uc.InvoiceRepository.FindByAppointmentID(ctx, appointment.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	service, err := uc.ServiceUsecase.FindServiceByID(ctx, appointment.ServiceID)
	if err != nil {
		return nil, err
	}
	patient, err := uc.PatientRepository.FindByID(ctx, appointment.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	now := time.Now()
	rebate := 0.0
	claimable := false
	if utils.ValidMedicareNumber(patient.MedicareNumber) && service.MedicareRebate > 0 {
		used, countErr := uc.MedicareClaimRepository.CountClaimsInYear(ctx, patient.ID, now.Year())
		if countErr != nil {
			return nil, countErr
		}
		if used < constvars.MedicareRebatedSessionsPerYear {
			rebate = service.MedicareRebate
			claimable = true
		}
	}

	gap := service.Fee - rebate
	if gap < 0 {
		gap = 0
	}

	invoice := &models.Invoice{
		InvoiceNumber:  utils.GenerateInvoiceNumber(now),
		AppointmentID:  appointment.ID,
		PatientID:      appointment.PatientID,
		PsychologistID: appointment.PsychologistID,
		ServiceID:      appointment.ServiceID,
		ServiceName:    service.Name,
		Amount:         service.Fee,
		MedicareRebate: rebate,
		GapAmount:      gap,
		Status:         constvars.InvoiceStatusUnpaid,
	}
	invoice.SetCreatedNow()

	invoiceID, err := uc.InvoiceRepository.CreateInvoice(ctx, invoice)
	if err != nil {
		return nil, err
	}
	invoice.ID = invoiceID

	if claimable {
		claim := &models.MedicareClaim{
			InvoiceID:      invoiceID,
			AppointmentID:  appointment.ID,
			PatientID:      patient.ID,
			MedicareNumber: patient.MedicareNumber,
			RebateAmount:   rebate,
			ServiceDate:    appointment.AppointmentDate,
			Status:         constvars.MedicareClaimStatusPending,
		}
		claim.SetCreatedNow()
		if _, claimErr := uc.MedicareClaimRepository.CreateClaim(ctx, claim); claimErr != nil {
			uc.Log.Error("billingUsecase.CreateInvoiceForAppointment failed to create claim",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingInvoiceIDKey, invoiceID),
				zap.Error(claimErr),
			)
		}
	}

	uc.uploadInvoiceDocument(ctx, invoice, patient)

	if patient.Email != "" {
		payload := &requests.EmailPayload{
			To:      patient.Email,
			Subject: fmt.Sprintf("Invoice %s from your psychology practice", invoice.InvoiceNumber),
			Body: fmt.Sprintf("An invoice for %s has been issued. Total: $%.2f, Medicare rebate: $%.2f, gap payable: $%.2f.",
				invoice.ServiceName, invoice.Amount, invoice.MedicareRebate, invoice.GapAmount),
			Type: constvars.EmailTypeInvoiceIssued,
		}
		if mailErr := uc.MailerService.EnqueueEmail(ctx, payload); mailErr != nil {
			uc.Log.Warn("billingUsecase.CreateInvoiceForAppointment failed to enqueue email",
				zap.String(constvars.LoggingInvoiceIDKey, invoiceID),
				zap.Error(mailErr),
			)
		}
	}

	uc.Log.Info("billingUsecase.CreateInvoiceForAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInvoiceIDKey, invoiceID),
	)
	return invoice, nil
}

// uploadInvoiceDocument renders and stores the printable invoice. Storage
// failures leave DocumentObject empty; the document endpoint reports that as
// a 404 and the invoice itself stays valid.
func (uc *billingUsecase) uploadInvoiceDocument(ctx context.Context, invoice *models.Invoice, patient *models.Patient) {
	document := renderInvoiceDocument(invoice, patient)
	objectName := fmt.Sprintf("invoices/%s.txt", invoice.InvoiceNumber)

	reader := strings.NewReader(document)
	if _, err := uc.Storage.UploadObject(ctx, uc.InternalConfig.Minio.BucketName, objectName, constvars.MIMETextPlain, reader, int64(len(document))); err != nil {
		uc.Log.Error("billingUsecase.uploadInvoiceDocument failed to upload",
			zap.String(constvars.LoggingInvoiceIDKey, invoice.ID),
			zap.Error(err),
		)
		return
	}

	invoice.DocumentObject = objectName
	if err := uc.InvoiceRepository.UpdateInvoice(ctx, invoice); err != nil {
		uc.Log.Error("billingUsecase.uploadInvoiceDocument failed to store object name",
			zap.String(constvars.LoggingInvoiceIDKey, invoice.ID),
			zap.Error(err),
		)
	}
}

func renderInvoiceDocument(invoice *models.Invoice, patient *models.Patient) string {
	var b strings.Builder
	fmt.Fprintf(&b, "TAX INVOICE %s\n", invoice.InvoiceNumber)
	fmt.Fprintf(&b, "Issued: %s\n\n", invoice.CreatedAt.Format("2 January 2006"))
	fmt.Fprintf(&b, "Billed to: %s\n\n", patient.FullName())
	fmt.Fprintf(&b, "Service: %s\n", invoice.ServiceName)
	fmt.Fprintf(&b, "Fee: $%.2f\n", invoice.Amount)
	fmt.Fprintf(&b, "Medicare rebate: $%.2f\n", invoice.MedicareRebate)
	fmt.Fprintf(&b, "Gap payable: $%.2f\n", invoice.GapAmount)
	return b.String()
}

func (uc *billingUsecase) loadVisibleInvoice(ctx context.Context, session *models.Session, invoiceID string) (*models.Invoice, error) {
	invoice, err := uc.InvoiceRepository.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, exceptions.ErrInvoiceNotExist(nil)
	}

	switch {
	case session.IsStaff():
	case session.IsPatient() && invoice.PatientID == session.PatientID:
	case session.IsPsychologist() && invoice.PsychologistID == session.PsychologistID:
	default:
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}
	return invoice, nil
}

func buildPaymentResponse(payment *models.Payment) *responses.Payment {
	return &responses.Payment{
		ID:         payment.ID,
		InvoiceID:  payment.InvoiceID,
		Amount:     payment.Amount,
		Method:     payment.Method,
		Reference:  payment.Reference,
		ReceivedAt: payment.PaidAt,
	}
}

func buildInvoiceResponse(invoice *models.Invoice) *responses.Invoice {
	return &responses.Invoice{
		ID:             invoice.ID,
		InvoiceNumber:  invoice.InvoiceNumber,
		AppointmentID:  invoice.AppointmentID,
		PatientID:      invoice.PatientID,
		ServiceName:    invoice.ServiceName,
		Amount:         invoice.Amount,
		MedicareRebate: invoice.MedicareRebate,
		AmountPaid:     invoice.AmountPaid,
		Outstanding:    invoice.Outstanding(),
		Status:         invoice.Status,
		IssuedAt:       invoice.CreatedAt,
	}
}
