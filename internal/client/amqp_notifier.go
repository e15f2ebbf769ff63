package client

import (
	"context"

	"meridianbank.com/fraudshield/internal/core/domain"
)

type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, message any) error
	PublishWithConfirm(ctx context.Context, exchange, routingKey string, message any) error
}

type AMQPNotifier struct {
	publisher Publisher
}

func NewAMQPNotifier(publisher Publisher) *AMQPNotifier {
	return &AMQPNotifier{
		publisher: publisher,
	}
}

func (n *AMQPNotifier) NotifyBatchIngested(ctx context.Context, message *domain.BatchIngestedMessage) error {
	return n.publisher.Publish(ctx, domain.TransactionExchange, domain.RoutingKeyBatchIngested, message)
}

// NotifySuspiciousTransaction waits for broker confirmation: fraud
// alerts must not be lost silently.
func (n *AMQPNotifier) NotifySuspiciousTransaction(ctx context.Context, message *domain.SuspiciousTransactionMessage) error {
	return n.publisher.PublishWithConfirm(ctx, domain.TransactionExchange, domain.RoutingKeyFraudDetected, message)
}
