package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPeerID     = errors.New("invalid peer id")
	ErrInvalidDocumentID = errors.New("invalid document id")
	ErrInvalidContentID  = errors.New("invalid content id")
	ErrEmptyKey          = errors.New("entry key is required")
	ErrInvalidSize       = errors.New("invalid entry size")
	ErrInvalidCursor     = errors.New("event cursor must not be negative")
	ErrInvalidWait       = errors.New("poll wait must not be negative")
)
