package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the wire form of an order as submitted by the client application.
type Order struct {
	ID           int64           `json:"id"`
	CustomerID   int64           `json:"customer_id"`
	CustomerName string          `json:"customer_name,omitempty"`
	Date         time.Time       `json:"date"`
	Total        decimal.Decimal `json:"total"`
	Lines        []OrderLine     `json:"lines"`
}

type OrderLine struct {
	ProductID    int64           `json:"product_id"`
	ProductTitle string          `json:"product_title,omitempty"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type OrderRequest struct {
	APIKey    string `json:"api_key"`
	Order     Order  `json:"order"`
	RequestID string `json:"request_id,omitempty"`
}

type CustomerSyncRequest struct {
	APIKey   string   `json:"api_key"`
	Customer Customer `json:"customer"`
}

// OrderResponse is the combined result of both integration legs.
type OrderResponse struct {
	CRMTrackingID     string    `json:"crm_tracking_id,omitempty"`
	CRMNote           string    `json:"crm_note,omitempty"`
	ERPDocumentNumber string    `json:"erp_document_number,omitempty"`
	ERPStatus         int       `json:"erp_status"`
	StockCode         string    `json:"stock_code,omitempty"`
	StatusMessage     string    `json:"status_message"`
	Success           bool      `json:"success"`
	ErrorMessage      string    `json:"error_message,omitempty"`
	ResponseTime      time.Time `json:"response_time"`
}

type PublishResponse struct {
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
	TrackingID string    `json:"tracking_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
