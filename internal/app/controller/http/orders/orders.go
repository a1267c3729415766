package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	httputils "github.com/mverhoef/go-order-bridge/internal/app/controller/http/utils"
	"github.com/mverhoef/go-order-bridge/internal/app/converter"
	"github.com/mverhoef/go-order-bridge/internal/app/entity"
	"github.com/mverhoef/go-order-bridge/internal/app/model"
	err_usecase "github.com/mverhoef/go-order-bridge/internal/app/usecase/errors"
	usecase "github.com/mverhoef/go-order-bridge/internal/app/usecase/orders"
)

const (
	apiKeyHeader         = "X-Api-Key"
	defaultDeleteReason  = "deleted by user"
	msgInvalidOrderData  = "invalid order data, check required fields"
	msgInternalError     = "internal server error"
	msgUnauthorizedOrder = "invalid API key"
)

type OrderProcessor interface {
	PlaceOrder(ctx context.Context, apiKey string, order entity.Order, requestID string) (usecase.Result, error)
	DeleteOrder(ctx context.Context, apiKey string, orderID int64, reason string) (entity.TrackingRecord, error)
}

type Handler struct {
	processor OrderProcessor
}

func New(processor OrderProcessor) Handler {
	return Handler{processor: processor}
}

func (h Handler) PlaceOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request model.OrderRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			zap.L().Error("error while decoding order request", zap.Error(err))
			httputils.WriteJSON(w, http.StatusBadRequest, model.ErrorResponse{Message: msgInvalidOrderData})
			return
		}
		defer r.Body.Close()

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		result, err := h.processor.PlaceOrder(ctx, request.APIKey, converter.ConvertOrderToEntity(request.Order), request.RequestID)
		if err != nil {
			h.writeProcessingError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, model.OrderResponse{
			CRMTrackingID:     result.TrackingID,
			CRMNote:           result.CRMNote,
			ERPDocumentNumber: result.ERP.DocumentNumber,
			ERPStatus:         result.ERP.Status,
			StockCode:         result.ERP.StockCode,
			StatusMessage:     result.StatusMessage,
			Success:           result.Success,
			ErrorMessage:      result.ERP.ErrorMessage,
			ResponseTime:      time.Now().UTC(),
		})
	}
}

func (h Handler) DeleteOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			httputils.WriteJSON(w, http.StatusBadRequest, model.ErrorResponse{Message: "order id must be numeric"})
			return
		}

		reason := r.URL.Query().Get("reason")
		if reason == "" {
			reason = defaultDeleteReason
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		record, err := h.processor.DeleteOrder(ctx, r.Header.Get(apiKeyHeader), orderID, reason)
		if err != nil {
			h.writeProcessingError(w, err)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, model.PublishResponse{
			Success:    true,
			Message:    "order deletion published",
			TrackingID: record.MessageID,
			Timestamp:  time.Now().UTC(),
		})
	}
}

func (h Handler) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputils.WriteJSON(w, http.StatusOK, model.HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
		})
	}
}

func (h Handler) writeProcessingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, err_usecase.ErrUnauthorized):
		zap.L().Warn("unauthorized request", zap.Error(err))
		httputils.WriteJSON(w, http.StatusUnauthorized, model.ErrorResponse{Message: msgUnauthorizedOrder})
	case errors.Is(err, err_usecase.ErrInvalidOrder):
		zap.L().Warn("invalid order rejected", zap.Error(err))
		httputils.WriteJSON(w, http.StatusBadRequest, model.ErrorResponse{Message: msgInvalidOrderData})
	default:
		zap.L().Error("error while processing order request", zap.Error(err))
		httputils.WriteJSON(w, http.StatusInternalServerError, model.ErrorResponse{Message: msgInternalError})
	}
}
