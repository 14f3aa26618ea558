package notifier

import (
	"context"
	"sync"

	"clinicflow-service/internal/app/contracts"
	"clinicflow-service/internal/pkg/constvars"
	"clinicflow-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	queueServiceInstance contracts.QueueService
	onceQueueService     sync.Once
)

type queueService struct {
	channel *amqp091.Channel
	Log     *zap.Logger

	mu       sync.Mutex
	declared map[string]bool
}

func NewQueueService(rabbitMQConnection *amqp091.Connection, logger *zap.Logger) (contracts.QueueService, error) {
	var initErr error
	onceQueueService.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			initErr = err
			return
		}
		queueServiceInstance = &queueService{
			channel:  channel,
			Log:      logger,
			declared: make(map[string]bool),
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return queueServiceInstance, nil
}

// ensureQueue declares the durable queue plus its dead-letter pair.
func (s *queueService) ensureQueue(queueName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.declared[queueName] {
		return nil
	}

	dlqName := queueName + ".dlq"
	if _, err := s.channel.QueueDeclare(dlqName, true, false, false, false, nil); err != nil {
		return err
	}

	args := amqp091.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": dlqName,
	}
	if _, err := s.channel.QueueDeclare(queueName, true, false, false, false, args); err != nil {
		return err
	}

	s.declared[queueName] = true
	return nil
}

func (s *queueService) Publish(ctx context.Context, queueName string, message *contracts.QueueMessage) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("queueService.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, queueName),
		zap.String(constvars.LoggingEventKey, message.Type),
	)

	if err := s.ensureQueue(queueName); err != nil {
		s.Log.Error("queueService.Publish error declaring queue",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublish(err)
	}

	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	publishing := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = s.channel.PublishWithContext(ctx, "", queueName, false, false, publishing)
	if err != nil {
		s.Log.Error("queueService.Publish error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublish(err)
	}

	s.Log.Info("queueService.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, queueName),
	)
	return nil
}

// Consume delivers messages to handler until ctx is cancelled. A handler
// error rejects the delivery without requeue, routing it to the DLQ.
func (s *queueService) Consume(ctx context.Context, queueName string, handler func(ctx context.Context, body []byte) error) error {
	if err := s.ensureQueue(queueName); err != nil {
		return exceptions.ErrRabbitMQConsume(err)
	}

	deliveries, err := s.channel.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQConsume(err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				if err := handler(ctx, delivery.Body); err != nil {
					s.Log.Error("queueService.Consume handler error",
						zap.String(constvars.LoggingQueueKey, queueName),
						zap.Error(err),
					)
					delivery.Nack(false, false)
					continue
				}
				delivery.Ack(false)
			}
		}
	}()

	return nil
}

func (s *queueService) Close() error {
	return s.channel.Close()
}
