package queue

import (
	"fmt"

	"github.com/mverhoef/go-order-bridge/internal/app/entity"
)

// One durable queue per message family. Customer events share the sync
// queue, the envelope's event type tells them apart.
const (
	QueueOrdersCreated    = "orders.created"
	QueueOrdersUpdated    = "orders.updated"
	QueueOrdersDeleted    = "orders.deleted"
	QueueCustomersSync    = "customers.sync"
	QueueInventoryUpdates = "inventory.updates"
	QueueNotifications    = "notifications"
	QueueAudit            = "audit"
)

const deadLetterSuffix = ".dlq"

var eventQueues = map[entity.EventType]string{
	entity.EventOrderCreated:    QueueOrdersCreated,
	entity.EventOrderUpdated:    QueueOrdersUpdated,
	entity.EventOrderDeleted:    QueueOrdersDeleted,
	entity.EventCustomerCreated: QueueCustomersSync,
	entity.EventCustomerUpdated: QueueCustomersSync,
	entity.EventCustomerDeleted: QueueCustomersSync,
	entity.EventInventoryUpdate: QueueInventoryUpdates,
	entity.EventOrderFeedback:   QueueNotifications,
	entity.EventAuditRecorded:   QueueAudit,
}

func ForEvent(eventType entity.EventType) (string, error) {
	queueName, ok := eventQueues[eventType]
	if !ok {
		return "", fmt.Errorf("no queue configured for event type %q", eventType)
	}

	return queueName, nil
}

// DeadLetter names the holding queue for messages that exhausted their
// retry budget.
func DeadLetter(queueName string) string {
	return queueName + deadLetterSuffix
}
