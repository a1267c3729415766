package usecase

import "errors"

var (
	ErrUnauthorized = errors.New("api key is not valid")
	ErrInvalidOrder = errors.New("order data is not valid")
)
