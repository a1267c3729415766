package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Orders []Order

// Order is the unit of work of the distribution pipeline. CustomerName and
// the line titles travel with the order for display in downstream messages
// but are never persisted.
type Order struct {
	ID           int64
	CustomerID   int64 `validate:"gt=0"`
	CustomerName string
	Date         time.Time
	Total        decimal.Decimal `validate:"gt=0"`
	Lines        []OrderLine     `validate:"min=1,dive"`
}

type OrderLine struct {
	ProductID    int64 `validate:"gt=0"`
	ProductTitle string
	Quantity     int             `validate:"gt=0"`
	UnitPrice    decimal.Decimal `validate:"gt=0"`
}

// TrackingRecord correlates a caller with the message published on its
// behalf. It is handed back once and not retained.
type TrackingRecord struct {
	MessageID string
	Queue     string
	Timestamp time.Time
}
