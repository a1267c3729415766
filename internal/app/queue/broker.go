package queue

import (
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Broker owns a single lazily-dialled connection to the message broker.
// Callers acquire a fresh channel per operation and close it themselves;
// the connection is shared and redialled when the broker dropped it.
type Broker struct {
	addr string

	mu   sync.Mutex
	conn *amqp.Connection
}

func NewBroker(addr string) *Broker {
	return &Broker{addr: addr}
}

func (b *Broker) Channel() (*amqp.Channel, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.conn == nil || b.conn.IsClosed() {
		conn, err := amqp.Dial(b.addr)
		if err != nil {
			return nil, fmt.Errorf("error while connecting to broker: %w", err)
		}
		b.conn = conn
	}

	channel, err := b.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("error while opening broker channel: %w", err)
	}

	return channel, nil
}

func (b *Broker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.conn == nil || b.conn.IsClosed() {
		return nil
	}

	return b.conn.Close()
}

// declareQueue is safe to call repeatedly: redeclaring with matching
// attributes is a no-op on the broker.
func declareQueue(channel *amqp.Channel, queueName string) error {
	_, err := channel.QueueDeclare(
		queueName,
		true,  // durable, survive broker restart
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("error while declaring queue %s: %w", queueName, err)
	}

	return nil
}
