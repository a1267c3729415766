package validator

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mverhoef/go-order-bridge/internal/app/entity"
	err_usecase "github.com/mverhoef/go-order-bridge/internal/app/usecase/errors"
)

func validOrder() entity.Order {
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

func TestValidateOrder(t *testing.T) {
	require.NoError(t, ValidateOrder(validOrder()))
}

func TestValidateOrder_AcceptsMismatchedTotal(t *testing.T) {
	// the total is only required to be positive, it is not cross-checked
	// against the line sum
	order := validOrder()
	order.Total = decimal.NewFromFloat(999.99)

	assert.NoError(t, ValidateOrder(order))
}

func TestValidateOrder_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(order *entity.Order)
	}{
		{
			name:   "zero customer id",
			mutate: func(order *entity.Order) { order.CustomerID = 0 },
		},
		{
			name:   "negative customer id",
			mutate: func(order *entity.Order) { order.CustomerID = -1 },
		},
		{
			name:   "zero total",
			mutate: func(order *entity.Order) { order.Total = decimal.Zero },
		},
		{
			name:   "negative total",
			mutate: func(order *entity.Order) { order.Total = decimal.NewFromFloat(-5.00) },
		},
		{
			name:   "no lines",
			mutate: func(order *entity.Order) { order.Lines = nil },
		},
		{
			name:   "line with zero quantity",
			mutate: func(order *entity.Order) { order.Lines[1].Quantity = 0 },
		},
		{
			name:   "line with zero unit price",
			mutate: func(order *entity.Order) { order.Lines[0].UnitPrice = decimal.Zero },
		},
		{
			name:   "line with zero product id",
			mutate: func(order *entity.Order) { order.Lines[0].ProductID = 0 },
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			order := validOrder()
			test.mutate(&order)

			err := ValidateOrder(order)
			require.Error(t, err)
			assert.True(t, errors.Is(err, err_usecase.ErrInvalidOrder))
		})
	}
}
