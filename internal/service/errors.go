package service

import "errors"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrBlobNotFound     = errors.New("blob not found")
	ErrContentMismatch  = errors.New("blob does not match its content id")
	ErrPayloadTooLarge  = errors.New("payload too large")

	ErrSubscriptionClosed = errors.New("document event stream ended")
)
