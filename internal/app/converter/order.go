package converter

import (
	"github.com/mverhoef/go-order-bridge/internal/app/entity"
	"github.com/mverhoef/go-order-bridge/internal/app/model"
)

func ConvertOrderToEntity(order model.Order) entity.Order {
	lines := make([]entity.OrderLine, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, entity.OrderLine{
			ProductID:    line.ProductID,
			ProductTitle: line.ProductTitle,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice,
		})
	}

	return entity.Order{
		ID:           order.ID,
		CustomerID:   order.CustomerID,
		CustomerName: order.CustomerName,
		Date:         order.Date,
		Total:        order.Total,
		Lines:        lines,
	}
}

func ConvertOrderToModel(order entity.Order) model.Order {
	lines := make([]model.OrderLine, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, model.OrderLine{
			ProductID:    line.ProductID,
			ProductTitle: line.ProductTitle,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice,
		})
	}

	return model.Order{
		ID:           order.ID,
		CustomerID:   order.CustomerID,
		CustomerName: order.CustomerName,
		Date:         order.Date,
		Total:        order.Total,
		Lines:        lines,
	}
}

func ConvertCustomerToEntity(customer model.Customer) entity.Customer {
	return entity.Customer{
		ID:    customer.ID,
		Name:  customer.Name,
		Email: customer.Email,
	}
}

func ConvertCustomerToModel(customer entity.Customer) model.Customer {
	return model.Customer{
		ID:    customer.ID,
		Name:  customer.Name,
		Email: customer.Email,
	}
}
