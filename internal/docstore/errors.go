package docstore

import "errors"

var (
	// ErrContentNotAvailable is returned by Fetch for content that has not
	// been replicated to this node.
	ErrContentNotAvailable = errors.New("content not available locally")
	// ErrAlreadySubscribed is returned by a second Subscribe call.
	ErrAlreadySubscribed = errors.New("document already subscribed")
	// ErrDocumentClosed is returned by operations on a closed document.
	ErrDocumentClosed = errors.New("document closed")
	// ErrDocumentNotFound is returned when opening an unknown document.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrHubMismatch is returned when a ticket names a hub the node cannot
	// reach.
	ErrHubMismatch = errors.New("ticket points at a different hub")
	// ErrContentMismatch is returned when downloaded bytes do not hash to
	// the requested content id.
	ErrContentMismatch = errors.New("content digest mismatch")
)
