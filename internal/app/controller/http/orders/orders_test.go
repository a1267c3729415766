package orders

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mock "github.com/mverhoef/go-order-bridge/internal/app/controller/http/orders/mock"
	"github.com/mverhoef/go-order-bridge/internal/app/entity"
	"github.com/mverhoef/go-order-bridge/internal/app/model"
	err_usecase "github.com/mverhoef/go-order-bridge/internal/app/usecase/errors"
	usecase "github.com/mverhoef/go-order-bridge/internal/app/usecase/orders"
)

const orderRequestBody = `{
	"api_key": "test-key",
	"request_id": "req-1",
	"order": {
		"id": 42,
		"customer_id": 7,
		"date": "2024-03-15T10:00:00Z",
		"total": "20.00",
		"lines": [
			{"product_id": 100, "quantity": 1, "unit_price": "10.00"},
			{"product_id": 200, "quantity": 2, "unit_price": "5.00"}
		]
	}
}`

func TestPlaceOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		body           io.Reader
		prepare        func(processor *mock.MockOrderProcessor)
		expectedCode   int
		expectedResult func(t *testing.T, body []byte)
	}{
		{
			name: "combined success",
			body: strings.NewReader(orderRequestBody),
			prepare: func(processor *mock.MockOrderProcessor) {
				processor.EXPECT().
					PlaceOrder(gomock.Any(), "test-key", gomock.Any(), "req-1").
					Return(usecase.Result{
						TrackingID:    "track-1",
						ERP:           entity.ERPResponse{DocumentNumber: "4500000042", Status: entity.ERPStatusProcessed, StockCode: "STOCK_A", Success: true},
						StatusMessage: entity.StatusMessage(entity.ERPStatusProcessed),
						Success:       true,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedResult: func(t *testing.T, body []byte) {
				var response model.OrderResponse
				require.NoError(t, json.Unmarshal(body, &response))
				assert.True(t, response.Success)
				assert.Equal(t, "track-1", response.CRMTrackingID)
				assert.Equal(t, "4500000042", response.ERPDocumentNumber)
			},
		},
		{
			name: "unauthorized",
			body: strings.NewReader(orderRequestBody),
			prepare: func(processor *mock.MockOrderProcessor) {
				processor.EXPECT().
					PlaceOrder(gomock.Any(), "test-key", gomock.Any(), "req-1").
					Return(usecase.Result{}, fmt.Errorf("%w: bad key", err_usecase.ErrUnauthorized))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "invalid order",
			body: strings.NewReader(orderRequestBody),
			prepare: func(processor *mock.MockOrderProcessor) {
				processor.EXPECT().
					PlaceOrder(gomock.Any(), "test-key", gomock.Any(), "req-1").
					Return(usecase.Result{}, fmt.Errorf("%w: no lines", err_usecase.ErrInvalidOrder))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "unexpected failure is sanitized",
			body: strings.NewReader(orderRequestBody),
			prepare: func(processor *mock.MockOrderProcessor) {
				processor.EXPECT().
					PlaceOrder(gomock.Any(), "test-key", gomock.Any(), "req-1").
					Return(usecase.Result{}, errors.New("something internal: password=hunter2"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedResult: func(t *testing.T, body []byte) {
				assert.NotContains(t, string(body), "hunter2")
			},
		},
		{
			name:         "malformed body",
			body:         strings.NewReader("{not json"),
			prepare:      func(processor *mock.MockOrderProcessor) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			processor := mock.NewMockOrderProcessor(ctrl)
			test.prepare(processor)

			handler := New(processor)

			request := httptest.NewRequest(http.MethodPost, "/orders", test.body)
			writer := httptest.NewRecorder()

			handler.PlaceOrder().ServeHTTP(writer, request)

			assert.Equal(t, test.expectedCode, writer.Code)
			if test.expectedResult != nil {
				test.expectedResult(t, writer.Body.Bytes())
			}
		})
	}
}

func TestDeleteOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	processor := mock.NewMockOrderProcessor(ctrl)
	processor.EXPECT().
		DeleteOrder(gomock.Any(), "test-key", int64(42), "customer request").
		Return(entity.TrackingRecord{MessageID: "track-del"}, nil)

	router := chi.NewRouter()
	router.Delete("/orders/{id}", New(processor).DeleteOrder())

	request := httptest.NewRequest(http.MethodDelete, "/orders/42?reason=customer+request", nil)
	request.Header.Set("X-Api-Key", "test-key")
	writer := httptest.NewRecorder()

	router.ServeHTTP(writer, request)

	require.Equal(t, http.StatusOK, writer.Code)

	var response model.PublishResponse
	require.NoError(t, json.Unmarshal(writer.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "track-del", response.TrackingID)
}

func TestDeleteOrder_DefaultReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	processor := mock.NewMockOrderProcessor(ctrl)
	processor.EXPECT().
		DeleteOrder(gomock.Any(), "test-key", int64(42), defaultDeleteReason).
		Return(entity.TrackingRecord{MessageID: "track-del"}, nil)

	router := chi.NewRouter()
	router.Delete("/orders/{id}", New(processor).DeleteOrder())

	request := httptest.NewRequest(http.MethodDelete, "/orders/42", nil)
	request.Header.Set("X-Api-Key", "test-key")
	writer := httptest.NewRecorder()

	router.ServeHTTP(writer, request)

	assert.Equal(t, http.StatusOK, writer.Code)
}

func TestDeleteOrder_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := chi.NewRouter()
	router.Delete("/orders/{id}", New(mock.NewMockOrderProcessor(ctrl)).DeleteOrder())

	request := httptest.NewRequest(http.MethodDelete, "/orders/not-a-number", nil)
	writer := httptest.NewRecorder()

	router.ServeHTTP(writer, request)

	assert.Equal(t, http.StatusBadRequest, writer.Code)
}

func TestHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := New(mock.NewMockOrderProcessor(ctrl))

	request := httptest.NewRequest(http.MethodGet, "/orders/health", nil)
	writer := httptest.NewRecorder()

	handler.Health().ServeHTTP(writer, request)

	require.Equal(t, http.StatusOK, writer.Code)

	var response model.HealthResponse
	require.NoError(t, json.Unmarshal(writer.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response.Status)
}
