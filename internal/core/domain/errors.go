package domain

import "errors"

var (
	ErrInvalidRequest        = errors.New("invalid request")
	ErrMalformedCatalogField = errors.New("malformed catalog field")
	ErrNotFound              = errors.New("not found")
	ErrDeliveryFailure       = errors.New("delivery failure")
)
