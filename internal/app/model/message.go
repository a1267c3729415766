package model

import (
	"encoding/json"
	"time"
)

// Envelope is the canonical message format shared by every queue. EventType
// duplicates the queue-level routing so downstream consumers stay free to
// re-route without renaming queues.
type Envelope struct {
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

type OrderDeletedPayload struct {
	OrderID int64  `json:"order_id"`
	Reason  string `json:"reason"`
}

type FeedbackPayload struct {
	OrderID   int64     `json:"order_id"`
	System    string    `json:"system"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type InventoryUpdatePayload struct {
	OrderID   int64  `json:"order_id"`
	StockCode string `json:"stock_code"`
}

type AuditPayload struct {
	Action    string `json:"action"`
	OrderID   int64  `json:"order_id,omitempty"`
	RequestID string `json:"request_id,omitempty"`
	Detail    string `json:"detail,omitempty"`
}
