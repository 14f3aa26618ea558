package mailer

import (
	"context"

	"clinicflow-service/internal/pkg/dto/requests"
)

type MailerService interface {
	// EnqueueEmail publishes the payload to the mailer queue for the worker.
	EnqueueEmail(ctx context.Context, payload *requests.EmailPayload) error
	// SendEmail delivers the payload synchronously over SMTP.
	SendEmail(payload *requests.EmailPayload) error
}
