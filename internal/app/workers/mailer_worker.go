package workers

import (
	"context"

	"clinicflow-service/internal/app/config"
	"clinicflow-service/internal/app/contracts"
	"clinicflow-service/internal/app/services/shared/mailer"
	"clinicflow-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// MailerWorker drains the mailer queue and delivers each payload over SMTP.
// Failed deliveries are nacked so the broker routes them to the dead-letter
// queue instead of redelivering forever.
type MailerWorker struct {
	QueueService   contracts.QueueService
	MailerService  mailer.MailerService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewMailerWorker(
	queueService contracts.QueueService,
	mailerService mailer.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *MailerWorker {
	return &MailerWorker{
		QueueService:   queueService,
		MailerService:  mailerService,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

// Run blocks consuming the mailer queue until ctx is cancelled.
func (w *MailerWorker) Run(ctx context.Context) {
	queueName := w.InternalConfig.RabbitMQ.MailerQueue

	w.Log.Info("mailer worker started", zap.String("queue", queueName))

	err := w.QueueService.Consume(ctx, queueName, w.handleMessage)
	if err != nil && ctx.Err() == nil {
		w.Log.Error("mailer worker consume loop exited", zap.Error(err))
		return
	}

	w.Log.Info("mailer worker stopped")
}

func (w *MailerWorker) handleMessage(ctx context.Context, body []byte) error {
	var message struct {
		Type    string                `json:"type"`
		Payload requests.EmailPayload `json:"payload"`
	}
	if err := json.Unmarshal(body, &message); err != nil {
		w.Log.Error("discarding malformed mailer message", zap.Error(err))
		return err
	}

	if message.Payload.To == "" {
		w.Log.Warn("discarding mailer message without recipient", zap.String("type", message.Type))
		return nil
	}

	if err := w.MailerService.SendEmail(&message.Payload); err != nil {
		w.Log.Error("email delivery failed",
			zap.String("type", message.Type),
			zap.String("to", message.Payload.To),
			zap.Error(err),
		)
		return err
	}

	w.Log.Info("email delivered",
		zap.String("type", message.Type),
		zap.String("to", message.Payload.To),
	)
	return nil
}
