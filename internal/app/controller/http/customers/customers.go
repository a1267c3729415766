package customers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
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
)

const apiKeyHeader = "X-Api-Key"

type CustomerSyncer interface {
	SyncCustomer(ctx context.Context, apiKey string, eventType entity.EventType, customer entity.Customer) (entity.TrackingRecord, error)
}

// Handler fans customer changes out to the sync queue; customers have no
// ERP leg.
type Handler struct {
	syncer CustomerSyncer
}

func New(syncer CustomerSyncer) Handler {
	return Handler{syncer: syncer}
}

func (h Handler) CreateCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.syncFromBody(w, r, entity.EventCustomerCreated)
	}
}

func (h Handler) UpdateCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.syncFromBody(w, r, entity.EventCustomerUpdated)
	}
}

func (h Handler) DeleteCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			httputils.WriteJSON(w, http.StatusBadRequest, model.ErrorResponse{Message: "customer id must be numeric"})
			return
		}

		customer := entity.Customer{
			ID:   customerID,
			Name: r.URL.Query().Get("name"),
		}

		h.sync(w, r, r.Header.Get(apiKeyHeader), entity.EventCustomerDeleted, customer)
	}
}

func (h Handler) syncFromBody(w http.ResponseWriter, r *http.Request, eventType entity.EventType) {
	var request model.CustomerSyncRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		zap.L().Error("error while decoding customer sync request", zap.Error(err))
		httputils.WriteJSON(w, http.StatusBadRequest, model.ErrorResponse{Message: "invalid customer data"})
		return
	}
	defer r.Body.Close()

	h.sync(w, r, request.APIKey, eventType, converter.ConvertCustomerToEntity(request.Customer))
}

func (h Handler) sync(w http.ResponseWriter, r *http.Request, apiKey string, eventType entity.EventType, customer entity.Customer) {
	ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
	defer cancel()

	record, err := h.syncer.SyncCustomer(ctx, apiKey, eventType, customer)
	if err != nil {
		if errors.Is(err, err_usecase.ErrUnauthorized) {
			zap.L().Warn("unauthorized customer sync request", zap.Error(err))
			httputils.WriteJSON(w, http.StatusUnauthorized, model.ErrorResponse{Message: "invalid API key"})
			return
		}

		zap.L().Error("error while processing customer sync request", zap.Error(err))
		httputils.WriteJSON(w, http.StatusInternalServerError, model.ErrorResponse{Message: "internal server error"})
		return
	}

	httputils.WriteJSON(w, http.StatusOK, model.PublishResponse{
		Success:    true,
		Message:    fmt.Sprintf("customer %d sync published", customer.ID),
		TrackingID: record.MessageID,
		Timestamp:  time.Now().UTC(),
	})
}
