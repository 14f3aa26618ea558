package contracts

import "context"

// QueueMessage is the envelope published to RabbitMQ queues.
type QueueMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type QueueService interface {
	Publish(ctx context.Context, queueName string, message *QueueMessage) error
	Consume(ctx context.Context, queueName string, handler func(ctx context.Context, body []byte) error) error
	Close() error
}
