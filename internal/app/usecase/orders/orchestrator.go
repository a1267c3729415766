package orders

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mverhoef/go-order-bridge/internal/app/converter"
	"github.com/mverhoef/go-order-bridge/internal/app/entity"
	"github.com/mverhoef/go-order-bridge/internal/app/model"
	err_usecase "github.com/mverhoef/go-order-bridge/internal/app/usecase/errors"
	"github.com/mverhoef/go-order-bridge/internal/app/usecase/validator"
)

const crmPublishFailedNote = "order could not be queued for CRM delivery"

type CredentialValidator interface {
	Validate(key string) bool
	Explain(key string) string
}

type EventPublisher interface {
	Publish(ctx context.Context, eventType entity.EventType, payload any) (entity.TrackingRecord, error)
}

type ERPSubmitter interface {
	Submit(ctx context.Context, order entity.Order) entity.ERPResponse
}

// Result combines the outcome of both integration legs. Success is true only
// when the queue publish and the ERP submission both succeeded.
type Result struct {
	TrackingID    string
	CRMNote       string
	ERP           entity.ERPResponse
	StatusMessage string
	Success       bool
}

// Orchestrator fans an accepted order out to the CRM queue and the ERP
// gateway. Neither leg's failure aborts the other; the caller always gets a
// combined view.
type Orchestrator struct {
	credentials CredentialValidator
	publisher   EventPublisher
	gateway     ERPSubmitter
}

func New(credentials CredentialValidator, publisher EventPublisher, gateway ERPSubmitter) *Orchestrator {
	return &Orchestrator{
		credentials: credentials,
		publisher:   publisher,
		gateway:     gateway,
	}
}

func (o *Orchestrator) PlaceOrder(ctx context.Context, apiKey string, order entity.Order, requestID string) (Result, error) {
	if !o.credentials.Validate(apiKey) {
		return Result{}, fmt.Errorf("%w: %s", err_usecase.ErrUnauthorized, o.credentials.Explain(apiKey))
	}

	if err := validator.ValidateOrder(order); err != nil {
		return Result{}, err
	}

	zap.L().Info("processing order",
		zap.Int64("order_id", order.ID),
		zap.String("request_id", requestID),
	)

	type publishOutcome struct {
		record entity.TrackingRecord
		err    error
	}

	// both legs start before either is awaited, so the caller waits for the
	// slower leg rather than for the sum of both
	publishResult := make(chan publishOutcome, 1)
	erpResult := make(chan entity.ERPResponse, 1)

	go func() {
		record, err := o.publisher.Publish(ctx, entity.EventOrderCreated, converter.ConvertOrderToModel(order))
		publishResult <- publishOutcome{record: record, err: err}
	}()

	go func() {
		erpResult <- o.gateway.Submit(ctx, order)
	}()

	publish := <-publishResult
	erpResponse := <-erpResult

	result := Result{
		ERP:           erpResponse,
		StatusMessage: entity.StatusMessage(erpResponse.Status),
		Success:       publish.err == nil && erpResponse.Success,
	}

	if publish.err != nil {
		zap.L().Error("error while publishing order to queue", zap.Int64("order_id", order.ID), zap.Error(publish.err))
		result.CRMNote = crmPublishFailedNote
	} else {
		result.TrackingID = publish.record.MessageID
	}

	if erpResponse.Status == entity.ERPStatusReady {
		o.publishBestEffort(ctx, entity.EventInventoryUpdate, model.InventoryUpdatePayload{
			OrderID:   order.ID,
			StockCode: erpResponse.StockCode,
		})
	}

	o.publishBestEffort(ctx, entity.EventAuditRecorded, model.AuditPayload{
		Action:    "order.placed",
		OrderID:   order.ID,
		RequestID: requestID,
		Detail:    result.StatusMessage,
	})

	zap.L().Info("order processed",
		zap.Int64("order_id", order.ID),
		zap.String("tracking_id", result.TrackingID),
		zap.String("erp_document", erpResponse.DocumentNumber),
		zap.Int("erp_status", erpResponse.Status),
		zap.Bool("success", result.Success),
	)

	return result, nil
}

// DeleteOrder publishes a deletion event; there is no ERP-side cancellation,
// so success is publish success.
func (o *Orchestrator) DeleteOrder(ctx context.Context, apiKey string, orderID int64, reason string) (entity.TrackingRecord, error) {
	if !o.credentials.Validate(apiKey) {
		return entity.TrackingRecord{}, fmt.Errorf("%w: %s", err_usecase.ErrUnauthorized, o.credentials.Explain(apiKey))
	}

	record, err := o.publisher.Publish(ctx, entity.EventOrderDeleted, model.OrderDeletedPayload{
		OrderID: orderID,
		Reason:  reason,
	})
	if err != nil {
		return entity.TrackingRecord{}, fmt.Errorf("error while publishing order deletion: %w", err)
	}

	o.publishBestEffort(ctx, entity.EventAuditRecorded, model.AuditPayload{
		Action:  "order.deleted",
		OrderID: orderID,
		Detail:  reason,
	})

	return record, nil
}

// SyncCustomer fans a customer change out to the sync queue only; customers
// have no ERP leg.
func (o *Orchestrator) SyncCustomer(ctx context.Context, apiKey string, eventType entity.EventType, customer entity.Customer) (entity.TrackingRecord, error) {
	if !o.credentials.Validate(apiKey) {
		return entity.TrackingRecord{}, fmt.Errorf("%w: %s", err_usecase.ErrUnauthorized, o.credentials.Explain(apiKey))
	}

	record, err := o.publisher.Publish(ctx, eventType, converter.ConvertCustomerToModel(customer))
	if err != nil {
		return entity.TrackingRecord{}, fmt.Errorf("error while publishing customer sync: %w", err)
	}

	return record, nil
}

func (o *Orchestrator) publishBestEffort(ctx context.Context, eventType entity.EventType, payload any) {
	if _, err := o.publisher.Publish(ctx, eventType, payload); err != nil {
		zap.L().Warn("error while publishing event", zap.String("event_type", string(eventType)), zap.Error(err))
	}
}
