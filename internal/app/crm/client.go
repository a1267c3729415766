package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mverhoef/go-order-bridge/internal/app/converter"
	"github.com/mverhoef/go-order-bridge/internal/app/entity"
)

const requestTimeout = 3 * time.Second

// ErrNotConfigured is returned when no CRM endpoint is set. Unlike the ERP
// leg there is no simulation fallback here: the asynchronous path's
// retry/dead-letter machinery owns degradation, so a failed attempt stays
// replayable instead of being faked away.
var ErrNotConfigured = errors.New("crm endpoint is not configured")

type Client struct {
	client *http.Client
	addr   string
	token  string
}

func NewClient(addr string, token string) *Client {
	return &Client{
		client: &http.Client{Timeout: requestTimeout},
		addr:   addr,
		token:  token,
	}
}

func (c *Client) CreateOrder(ctx context.Context, order entity.Order) error {
	payload := map[string]any{
		"order":         converter.ConvertOrderToModel(order),
		"customer_name": order.CustomerName,
		"status":        "New",
		"source_system": "orderbridge",
	}

	err := c.send(ctx, http.MethodPost, "/orders", payload)
	if err != nil {
		return err
	}

	zap.L().Info("order sent to crm", zap.Int64("order_id", order.ID))
	return nil
}

func (c *Client) DeleteOrder(ctx context.Context, orderID int64, reason string) error {
	payload := map[string]any{
		"reason":        reason,
		"source_system": "orderbridge",
	}

	err := c.send(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", orderID), payload)
	if err != nil {
		return err
	}

	zap.L().Info("order deletion sent to crm", zap.Int64("order_id", orderID))
	return nil
}

func (c *Client) UpsertCustomer(ctx context.Context, customer entity.Customer) error {
	payload := map[string]any{
		"customer":      converter.ConvertCustomerToModel(customer),
		"source_system": "orderbridge",
	}

	err := c.send(ctx, http.MethodPut, fmt.Sprintf("/customers/%d", customer.ID), payload)
	if err != nil {
		return err
	}

	zap.L().Info("customer sync sent to crm", zap.Int64("customer_id", customer.ID))
	return nil
}

func (c *Client) DeleteCustomer(ctx context.Context, customerID int64) error {
	err := c.send(ctx, http.MethodDelete, fmt.Sprintf("/customers/%d", customerID), nil)
	if err != nil {
		return err
	}

	zap.L().Info("customer deletion sent to crm", zap.Int64("customer_id", customerID))
	return nil
}

func (c *Client) send(ctx context.Context, method string, path string, payload any) error {
	if c.addr == "" {
		return ErrNotConfigured
	}

	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			return fmt.Errorf("error while encoding crm payload: %w", err)
		}
	}

	request, err := http.NewRequestWithContext(ctx, method, c.addr+path, &body)
	if err != nil {
		return fmt.Errorf("error while creating crm request: %w", err)
	}

	request.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		request.Header.Set("Authorization", "Bearer "+c.token)
	}

	response, err := c.client.Do(request)
	if err != nil {
		return fmt.Errorf("error while sending crm request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status %d from crm endpoint", response.StatusCode)
	}

	return nil
}
