package entity

import "time"

type EventType string

// One event family per logical change. Each family routes to its own durable
// queue, and the envelope repeats the type for downstream routing.
const (
	EventOrderCreated    EventType = "order.created"
	EventOrderUpdated    EventType = "order.updated"
	EventOrderDeleted    EventType = "order.deleted"
	EventCustomerCreated EventType = "customer.created"
	EventCustomerUpdated EventType = "customer.updated"
	EventCustomerDeleted EventType = "customer.deleted"
	EventInventoryUpdate EventType = "inventory.updated"
	EventOrderFeedback   EventType = "order.feedback"
	EventAuditRecorded   EventType = "audit.recorded"
)

// FeedbackEvent reports the outcome of one CRM delivery attempt. Emitted
// after the attempt concludes, best effort, not retained.
type FeedbackEvent struct {
	OrderID   int64
	System    string
	Status    string
	Message   string
	Timestamp time.Time
}

type OrderDeletion struct {
	OrderID int64
	Reason  string
}
