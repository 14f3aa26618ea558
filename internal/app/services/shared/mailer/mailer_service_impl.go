package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"sync"

	"clinicflow-service/internal/app/contracts"
	"clinicflow-service/internal/app/drivers/mailer"
	"clinicflow-service/internal/pkg/constvars"
	"clinicflow-service/internal/pkg/dto/requests"
	"clinicflow-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

var (
	mailerServiceInstance MailerService
	onceMailerService     sync.Once
)

type mailerService struct {
	queueService contracts.QueueService
	client       *mailer.SMTPClient
	queue        string
	Log          *zap.Logger
}

func NewMailerService(client *mailer.SMTPClient, queueService contracts.QueueService, queue string, logger *zap.Logger) MailerService {
	onceMailerService.Do(func() {
		mailerServiceInstance = &mailerService{
			queueService: queueService,
			client:       client,
			queue:        queue,
			Log:          logger,
		}
	})
	return mailerServiceInstance
}

func (s *mailerService) EnqueueEmail(ctx context.Context, payload *requests.EmailPayload) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("mailerService.EnqueueEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, payload.Type),
	)

	message := &contracts.QueueMessage{
		Type:    payload.Type,
		Payload: payload,
	}
	return s.queueService.Publish(ctx, s.queue, message)
}

func (s *mailerService) SendEmail(payload *requests.EmailPayload) error {
	format := constvars.EmailBasicSubjectFormat
	if payload.IsHTML {
		format = constvars.EmailHTMLSubjectFormat
	}

	msg := []byte(fmt.Sprintf(format, payload.To, payload.Subject, payload.Body))
	addr := fmt.Sprintf("%s:%d", s.client.Host, s.client.Port)
	err := smtp.SendMail(addr, s.client.Auth, s.client.Sender, []string{payload.To}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err)
	}
	return nil
}
