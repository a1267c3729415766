package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/mverhoef/go-order-bridge/internal/app/entity"
	"github.com/mverhoef/go-order-bridge/internal/app/model"
)

const (
	// after this many delivery attempts a message moves to the dead-letter
	// queue instead of being retried again
	maxDeliveryAttempts = 5

	retryCountHeader = "x-retry-count"
)

// Handler processes one decoded message. A returned error makes the message
// eligible for redelivery.
type Handler func(ctx context.Context, envelope model.Envelope) error

type republisher interface {
	PublishRaw(ctx context.Context, queueName string, messageID string, body []byte, headers amqp.Table) error
	Publish(ctx context.Context, eventType entity.EventType, payload any) (entity.TrackingRecord, error)
}

// Consumer subscribes to one queue with a prefetch of a single message, so
// handling is serialized per consumer instance. Outcome per message:
// handler success acks, handler failure republishes with an incremented
// retry count (or dead-letters once the budget is spent), an undecodable
// body dead-letters immediately. A feedback event is emitted once the
// delivery attempt concludes.
type Consumer struct {
	broker    *Broker
	publisher republisher
	queueName string
	tag       string
	system    string
	handler   Handler
}

func NewConsumer(broker *Broker, publisher *Publisher, queueName string, system string, handler Handler) *Consumer {
	return &Consumer{
		broker:    broker,
		publisher: publisher,
		queueName: queueName,
		tag:       fmt.Sprintf("orderbridge.%s", queueName),
		system:    system,
		handler:   handler,
	}
}

// Run consumes until the context is cancelled. A message already handed to
// the handler at shutdown completes its acknowledgment; a missed ack simply
// becomes a redelivery on restart.
func (c *Consumer) Run(ctx context.Context) error {
	channel, err := c.broker.Channel()
	if err != nil {
		return err
	}
	defer channel.Close()

	if err := declareQueue(channel, c.queueName); err != nil {
		return err
	}
	if err := declareQueue(channel, DeadLetter(c.queueName)); err != nil {
		return err
	}

	// backpressure: never more than one unacknowledged message in flight
	if err := channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("error while setting prefetch on queue %s: %w", c.queueName, err)
	}

	deliveries, err := channel.Consume(
		c.queueName,
		c.tag,
		false, // autoAck off, acknowledgment is the state machine's job
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("error while subscribing to queue %s: %w", c.queueName, err)
	}

	zap.L().Info("consumer started", zap.String("queue", c.queueName))

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("consumer stopping", zap.String("queue", c.queueName))
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				zap.L().Info("delivery channel closed", zap.String("queue", c.queueName))
				return nil
			}
			c.process(ctx, delivery)
		}
	}
}

func (c *Consumer) process(ctx context.Context, delivery amqp.Delivery) {
	var envelope model.Envelope
	if err := json.Unmarshal(delivery.Body, &envelope); err != nil {
		zap.L().Error("undecodable message, moving to dead-letter queue",
			zap.String("queue", c.queueName),
			zap.String("message_id", delivery.MessageId),
			zap.Error(err),
		)
		c.deadLetter(ctx, delivery)
		return
	}

	if err := c.handler(ctx, envelope); err != nil {
		zap.L().Error("message handling failed",
			zap.String("queue", c.queueName),
			zap.String("event_type", envelope.EventType),
			zap.String("message_id", delivery.MessageId),
			zap.Error(err),
		)
		c.retry(ctx, delivery, envelope)
		return
	}

	if err := delivery.Ack(false); err != nil {
		zap.L().Error("error while acknowledging message", zap.String("queue", c.queueName), zap.Error(err))
		return
	}

	c.sendFeedback(ctx, envelope, "success", fmt.Sprintf("processed in %s", c.system))
}

// retry republishes the message with its retry count incremented and acks
// the original, or dead-letters it once the budget is spent. If republishing
// itself fails the message is nacked back onto the queue so it is never lost.
func (c *Consumer) retry(ctx context.Context, delivery amqp.Delivery, envelope model.Envelope) {
	attempts := retryCount(delivery.Headers)
	if attempts+1 >= maxDeliveryAttempts {
		zap.L().Warn("retry budget exhausted, moving to dead-letter queue",
			zap.String("queue", c.queueName),
			zap.String("message_id", delivery.MessageId),
			zap.Int("attempts", attempts+1),
		)
		c.deadLetter(ctx, delivery)
		c.sendFeedback(ctx, envelope, "failed", fmt.Sprintf("delivery to %s failed after %d attempts", c.system, attempts+1))
		return
	}

	headers := amqp.Table{}
	for key, value := range delivery.Headers {
		headers[key] = value
	}
	headers[retryCountHeader] = int32(attempts + 1)

	err := c.publisher.PublishRaw(ctx, c.queueName, delivery.MessageId, delivery.Body, headers)
	if err != nil {
		zap.L().Error("error while republishing, falling back to broker requeue", zap.Error(err))
		if err := delivery.Nack(false, true); err != nil {
			zap.L().Error("error while requeueing message", zap.Error(err))
		}
		return
	}

	if err := delivery.Ack(false); err != nil {
		zap.L().Error("error while acknowledging retried message", zap.Error(err))
	}
}

func (c *Consumer) deadLetter(ctx context.Context, delivery amqp.Delivery) {
	err := c.publisher.PublishRaw(ctx, DeadLetter(c.queueName), delivery.MessageId, delivery.Body, delivery.Headers)
	if err != nil {
		zap.L().Error("error while dead-lettering, falling back to broker requeue", zap.Error(err))
		if err := delivery.Nack(false, true); err != nil {
			zap.L().Error("error while requeueing message", zap.Error(err))
		}
		return
	}

	if err := delivery.Ack(false); err != nil {
		zap.L().Error("error while acknowledging dead-lettered message", zap.Error(err))
	}
}

// sendFeedback emits the delivery outcome for order events. Customer sync
// messages have no caller waiting on a feedback channel.
func (c *Consumer) sendFeedback(ctx context.Context, envelope model.Envelope, status string, message string) {
	if !strings.HasPrefix(envelope.EventType, "order.") {
		return
	}

	orderID := orderReference(envelope)
	if orderID == 0 {
		return
	}

	_, err := c.publisher.Publish(ctx, entity.EventOrderFeedback, model.FeedbackPayload{
		OrderID:   orderID,
		System:    c.system,
		Status:    status,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		zap.L().Warn("error while publishing feedback event", zap.Error(err))
	}
}

// orderReference digs the order id out of a payload, if it carries one.
func orderReference(envelope model.Envelope) int64 {
	var ref struct {
		ID      int64 `json:"id"`
		OrderID int64 `json:"order_id"`
	}
	if err := json.Unmarshal(envelope.Payload, &ref); err != nil {
		return 0
	}

	if ref.OrderID != 0 {
		return ref.OrderID
	}

	return ref.ID
}

func retryCount(headers amqp.Table) int {
	value, ok := headers[retryCountHeader]
	if !ok {
		return 0
	}

	switch count := value.(type) {
	case int32:
		return int(count)
	case int64:
		return int(count)
	case int:
		return count
	default:
		return 0
	}
}
