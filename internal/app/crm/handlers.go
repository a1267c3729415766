package crm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mverhoef/go-order-bridge/internal/app/converter"
	"github.com/mverhoef/go-order-bridge/internal/app/entity"
	"github.com/mverhoef/go-order-bridge/internal/app/model"
	"github.com/mverhoef/go-order-bridge/internal/app/queue"
)

// OrderCreatedHandler delivers a consumed order to the CRM.
func OrderCreatedHandler(client *Client) queue.Handler {
	return func(ctx context.Context, envelope model.Envelope) error {
		var order model.Order
		if err := json.Unmarshal(envelope.Payload, &order); err != nil {
			return fmt.Errorf("error while decoding order payload: %w", err)
		}

		return client.CreateOrder(ctx, converter.ConvertOrderToEntity(order))
	}
}

// OrderDeletedHandler propagates an order deletion to the CRM.
func OrderDeletedHandler(client *Client) queue.Handler {
	return func(ctx context.Context, envelope model.Envelope) error {
		var deletion model.OrderDeletedPayload
		if err := json.Unmarshal(envelope.Payload, &deletion); err != nil {
			return fmt.Errorf("error while decoding deletion payload: %w", err)
		}

		return client.DeleteOrder(ctx, deletion.OrderID, deletion.Reason)
	}
}

// CustomerSyncHandler applies customer events to the CRM; created and
// updated both land as an upsert.
func CustomerSyncHandler(client *Client) queue.Handler {
	return func(ctx context.Context, envelope model.Envelope) error {
		var customer model.Customer
		if err := json.Unmarshal(envelope.Payload, &customer); err != nil {
			return fmt.Errorf("error while decoding customer payload: %w", err)
		}

		switch entity.EventType(envelope.EventType) {
		case entity.EventCustomerDeleted:
			return client.DeleteCustomer(ctx, customer.ID)
		case entity.EventCustomerCreated, entity.EventCustomerUpdated:
			return client.UpsertCustomer(ctx, converter.ConvertCustomerToEntity(customer))
		default:
			return fmt.Errorf("unexpected event type %q on customer sync queue", envelope.EventType)
		}
	}
}
