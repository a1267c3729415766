package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mverhoef/go-order-bridge/internal/app/entity"
	"github.com/mverhoef/go-order-bridge/internal/app/erp"
	"github.com/mverhoef/go-order-bridge/internal/app/usecase/auth"
	err_usecase "github.com/mverhoef/go-order-bridge/internal/app/usecase/errors"
	mock "github.com/mverhoef/go-order-bridge/internal/app/usecase/orders/mock"
)

const testKey = "test-key"

func testOrder() entity.Order {
	return entity.Order{
		ID:         42,
		CustomerID: 7,
		Date:       time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		Total:      decimal.NewFromFloat(20.00),
		Lines: []entity.OrderLine{
			{ProductID: 100, Quantity: 1, UnitPrice: decimal.NewFromFloat(10.00)},
			{ProductID: 200, Quantity: 2, UnitPrice: decimal.NewFromFloat(5.00)},
		},
	}
}

func validCredentials(ctrl *gomock.Controller) *mock.MockCredentialValidator {
	credentials := mock.NewMockCredentialValidator(ctrl)
	credentials.EXPECT().Validate(testKey).Return(true).AnyTimes()
	return credentials
}

func allowSideEvents(publisher *mock.MockEventPublisher) {
	publisher.EXPECT().
		Publish(gomock.Any(), entity.EventAuditRecorded, gomock.Any()).
		Return(entity.TrackingRecord{MessageID: "audit-id"}, nil).
		AnyTimes()
	publisher.EXPECT().
		Publish(gomock.Any(), entity.EventInventoryUpdate, gomock.Any()).
		Return(entity.TrackingRecord{MessageID: "inventory-id"}, nil).
		AnyTimes()
}

func TestPlaceOrder_BothLegsSucceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := mock.NewMockEventPublisher(ctrl)
	publisher.EXPECT().
		Publish(gomock.Any(), entity.EventOrderCreated, gomock.Any()).
		Return(entity.TrackingRecord{MessageID: "track-1", Queue: "orders.created"}, nil)
	allowSideEvents(publisher)

	gateway := mock.NewMockERPSubmitter(ctrl)
	gateway.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entity.ERPResponse{
		DocumentNumber: "4500000042",
		Status:         entity.ERPStatusProcessed,
		StockCode:      "STOCK_A",
		Success:        true,
	})

	orchestrator := New(validCredentials(ctrl), publisher, gateway)
	result, err := orchestrator.PlaceOrder(context.Background(), testKey, testOrder(), "req-1")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "track-1", result.TrackingID)
	assert.Equal(t, "4500000042", result.ERP.DocumentNumber)
	assert.Empty(t, result.CRMNote)
}

func TestPlaceOrder_PublishFailureKeepsERPResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := mock.NewMockEventPublisher(ctrl)
	publisher.EXPECT().
		Publish(gomock.Any(), entity.EventOrderCreated, gomock.Any()).
		Return(entity.TrackingRecord{}, errors.New("broker unreachable"))
	allowSideEvents(publisher)

	gateway := mock.NewMockERPSubmitter(ctrl)
	gateway.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entity.ERPResponse{
		DocumentNumber: "4500000042",
		Status:         entity.ERPStatusProcessed,
		Success:        true,
	})

	orchestrator := New(validCredentials(ctrl), publisher, gateway)
	result, err := orchestrator.PlaceOrder(context.Background(), testKey, testOrder(), "req-1")

	require.NoError(t, err, "a single leg failure is reported in the result, not as a request failure")
	assert.False(t, result.Success)
	assert.Empty(t, result.TrackingID)
	assert.NotEmpty(t, result.CRMNote)
	assert.NotEmpty(t, result.ERP.DocumentNumber, "the ERP leg must not be cancelled by the CRM leg failing")
}

func TestPlaceOrder_ERPFailureKeepsTrackingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := mock.NewMockEventPublisher(ctrl)
	publisher.EXPECT().
		Publish(gomock.Any(), entity.EventOrderCreated, gomock.Any()).
		Return(entity.TrackingRecord{MessageID: "track-1"}, nil)
	allowSideEvents(publisher)

	gateway := mock.NewMockERPSubmitter(ctrl)
	gateway.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entity.ERPResponse{
		Status:       entity.ERPStatusError,
		ErrorMessage: "ERP processing error",
		Success:      false,
	})

	orchestrator := New(validCredentials(ctrl), publisher, gateway)
	result, err := orchestrator.PlaceOrder(context.Background(), testKey, testOrder(), "req-1")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "track-1", result.TrackingID)
	assert.Equal(t, "ERP processing error", result.ERP.ErrorMessage)
}

func TestPlaceOrder_PendingStockPublishesInventoryUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := mock.NewMockEventPublisher(ctrl)
	publisher.EXPECT().
		Publish(gomock.Any(), entity.EventOrderCreated, gomock.Any()).
		Return(entity.TrackingRecord{MessageID: "track-1"}, nil)
	publisher.EXPECT().
		Publish(gomock.Any(), entity.EventInventoryUpdate, gomock.Any()).
		Return(entity.TrackingRecord{MessageID: "inventory-id"}, nil)
	publisher.EXPECT().
		Publish(gomock.Any(), entity.EventAuditRecorded, gomock.Any()).
		Return(entity.TrackingRecord{MessageID: "audit-id"}, nil)

	gateway := mock.NewMockERPSubmitter(ctrl)
	gateway.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entity.ERPResponse{
		DocumentNumber: "4500000042",
		Status:         entity.ERPStatusReady,
		StockCode:      "PENDING_STOCK_CHECK",
		Success:        true,
	})

	orchestrator := New(validCredentials(ctrl), publisher, gateway)
	_, err := orchestrator.PlaceOrder(context.Background(), testKey, testOrder(), "req-1")
	require.NoError(t, err)
}

func TestPlaceOrder_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credentials := mock.NewMockCredentialValidator(ctrl)
	credentials.EXPECT().Validate("wrong").Return(false)
	credentials.EXPECT().Explain("wrong").Return(auth.MsgKeyInvalid)

	// neither leg may start for an unauthorized request
	publisher := mock.NewMockEventPublisher(ctrl)
	gateway := mock.NewMockERPSubmitter(ctrl)

	orchestrator := New(credentials, publisher, gateway)
	_, err := orchestrator.PlaceOrder(context.Background(), "wrong", testOrder(), "req-1")

	assert.True(t, errors.Is(err, err_usecase.ErrUnauthorized))
}

func TestPlaceOrder_InvalidOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := mock.NewMockEventPublisher(ctrl)
	gateway := mock.NewMockERPSubmitter(ctrl)

	order := testOrder()
	order.Lines = nil

	orchestrator := New(validCredentials(ctrl), publisher, gateway)
	_, err := orchestrator.PlaceOrder(context.Background(), testKey, order, "req-1")

	assert.True(t, errors.Is(err, err_usecase.ErrInvalidOrder))
}

func TestDeleteOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := mock.NewMockEventPublisher(ctrl)
	publisher.EXPECT().
		Publish(gomock.Any(), entity.EventOrderDeleted, gomock.Any()).
		Return(entity.TrackingRecord{MessageID: "track-del", Queue: "orders.deleted"}, nil)
	allowSideEvents(publisher)

	orchestrator := New(validCredentials(ctrl), publisher, mock.NewMockERPSubmitter(ctrl))
	record, err := orchestrator.DeleteOrder(context.Background(), testKey, 42, "customer request")

	require.NoError(t, err)
	assert.Equal(t, "track-del", record.MessageID)
}

func TestDeleteOrder_PublishFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := mock.NewMockEventPublisher(ctrl)
	publisher.EXPECT().
		Publish(gomock.Any(), entity.EventOrderDeleted, gomock.Any()).
		Return(entity.TrackingRecord{}, errors.New("broker unreachable"))

	orchestrator := New(validCredentials(ctrl), publisher, mock.NewMockERPSubmitter(ctrl))
	_, err := orchestrator.DeleteOrder(context.Background(), testKey, 42, "customer request")

	assert.Error(t, err, "deletion success is purely publish success")
}

func TestSyncCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := mock.NewMockEventPublisher(ctrl)
	publisher.EXPECT().
		Publish(gomock.Any(), entity.EventCustomerUpdated, gomock.Any()).
		Return(entity.TrackingRecord{MessageID: "track-cust"}, nil)

	orchestrator := New(validCredentials(ctrl), publisher, mock.NewMockERPSubmitter(ctrl))
	record, err := orchestrator.SyncCustomer(context.Background(), testKey, entity.EventCustomerUpdated, entity.Customer{ID: 7, Name: "A. Reader"})

	require.NoError(t, err)
	assert.Equal(t, "track-cust", record.MessageID)
}

// Full scenario with the real credential validator and the real gateway in
// fallback mode: two lines, total 20.00, customer 7.
func TestPlaceOrder_EndToEndFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := mock.NewMockEventPublisher(ctrl)
	publisher.EXPECT().
		Publish(gomock.Any(), entity.EventOrderCreated, gomock.Any()).
		Return(entity.TrackingRecord{MessageID: "track-1"}, nil)
	allowSideEvents(publisher)

	orchestrator := New(auth.New(testKey), publisher, erp.NewGateway(""))
	result, err := orchestrator.PlaceOrder(context.Background(), testKey, testOrder(), "req-1")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "4500000042", result.ERP.DocumentNumber)
	assert.Contains(t, []int{entity.ERPStatusProcessed, entity.ERPStatusReady}, result.ERP.Status)
	assert.Empty(t, result.ERP.ErrorMessage)
}
