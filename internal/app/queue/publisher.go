package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/mverhoef/go-order-bridge/internal/app/entity"
	"github.com/mverhoef/go-order-bridge/internal/app/model"
)

// Publisher puts canonical event envelopes onto durable queues. Durability
// comes from the persistent delivery mode plus the durable queue; there is
// no wait for a publisher confirm, and no internal retry on failure.
type Publisher struct {
	broker *Broker
}

func NewPublisher(broker *Broker) *Publisher {
	return &Publisher{broker: broker}
}

// Publish wraps the payload in the message envelope and publishes it to the
// queue of its event family. The generated message id doubles as the
// caller-facing tracking id.
func (p *Publisher) Publish(ctx context.Context, eventType entity.EventType, payload any) (entity.TrackingRecord, error) {
	queueName, err := ForEvent(eventType)
	if err != nil {
		return entity.TrackingRecord{}, err
	}

	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return entity.TrackingRecord{}, fmt.Errorf("error while marshalling payload for %s: %w", eventType, err)
	}

	now := time.Now().UTC()
	body, err := json.Marshal(model.Envelope{
		EventType: string(eventType),
		Payload:   rawPayload,
		Timestamp: now,
	})
	if err != nil {
		return entity.TrackingRecord{}, fmt.Errorf("error while marshalling envelope for %s: %w", eventType, err)
	}

	messageID := uuid.NewString()
	err = p.publish(ctx, queueName, messageID, body, nil)
	if err != nil {
		return entity.TrackingRecord{}, err
	}

	zap.L().Info("event published",
		zap.String("event_type", string(eventType)),
		zap.String("queue", queueName),
		zap.String("tracking_id", messageID),
	)

	return entity.TrackingRecord{
		MessageID: messageID,
		Queue:     queueName,
		Timestamp: now,
	}, nil
}

// PublishRaw republishes an existing message body, keeping its message id.
// Used by the consumer retry and dead-letter paths.
func (p *Publisher) PublishRaw(ctx context.Context, queueName string, messageID string, body []byte, headers amqp.Table) error {
	return p.publish(ctx, queueName, messageID, body, headers)
}

func (p *Publisher) publish(ctx context.Context, queueName string, messageID string, body []byte, headers amqp.Table) error {
	channel, err := p.broker.Channel()
	if err != nil {
		return err
	}
	defer channel.Close()

	if err := declareQueue(channel, queueName); err != nil {
		return err
	}

	err = channel.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key is the queue name
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    messageID,
			Timestamp:    time.Now().UTC(),
			Headers:      headers,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("error while publishing to queue %s: %w", queueName, err)
	}

	return nil
}
