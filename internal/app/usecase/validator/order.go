package validator

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/mverhoef/go-order-bridge/internal/app/entity"
	err_usecase "github.com/mverhoef/go-order-bridge/internal/app/usecase/errors"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(decimalAsFloat, decimal.Decimal{})

	return v
}

// decimalAsFloat lets the numeric comparison tags apply to decimal fields.
func decimalAsFloat(field reflect.Value) interface{} {
	if value, ok := field.Interface().(decimal.Decimal); ok {
		return value.InexactFloat64()
	}

	return nil
}

// ValidateOrder checks the order invariants: positive customer id, positive
// total, at least one line, and a positive product id, quantity and unit
// price on every line. The first violation rejects the whole order. The
// total is deliberately not cross-checked against the line sum.
func ValidateOrder(order entity.Order) error {
	err := validate.Struct(order)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if errors.As(err, &violations) && len(violations) > 0 {
		first := violations[0]
		return fmt.Errorf("%w: field %s failed rule %s", err_usecase.ErrInvalidOrder, first.Namespace(), first.Tag())
	}

	return fmt.Errorf("%w: %s", err_usecase.ErrInvalidOrder, err)
}
