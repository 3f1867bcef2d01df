package adapter

import "errors"

// Sentinel errors returned (wrapped) by [HubAdapter] implementations.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("hub internal error")
	ErrUnavailable         = errors.New("hub unavailable")
)
