// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/memclip/internal/utils"
	"github.com/MKhiriev/memclip/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldPeerID targets the peer identifier of a request.
	FieldPeerID = "peer_id"

	// FieldDocumentID targets the document identifier of a request.
	FieldDocumentID = "document_id"

	// FieldKey targets the key of an entry write.
	FieldKey = "key"

	// FieldContentID targets the content id of an entry write or blob.
	FieldContentID = "content_id"

	// FieldSize targets the declared size of an entry write.
	FieldSize = "size"

	// FieldAuthor targets the author of an entry write.
	FieldAuthor = "author"

	// FieldAfter targets the cursor of an events request.
	FieldAfter = "after"

	// FieldWait targets the wait duration of an events request.
	FieldWait = "wait"
)

type HubValidator struct {
	maxSize int64
}

// NewHubValidator returns a Validator for hub requests. Entry sizes above
// maxSize are rejected; a non-positive maxSize disables the check.
func NewHubValidator(maxSize int64) Validator {
	return &HubValidator{maxSize: maxSize}
}

// Validate implements Validator. Without fields every rule applicable to
// the value's type is checked.
func (v *HubValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PeerRequest:
		return v.validatePeerRequest(value, fields...)
	case *models.PeerRequest:
		return v.validatePeerRequest(*value, fields...)

	case models.SetEntryRequest:
		return v.validateSetEntryRequest(value, fields...)
	case *models.SetEntryRequest:
		return v.validateSetEntryRequest(*value, fields...)

	case models.EventsRequest:
		return v.validateEventsRequest(value, fields...)
	case *models.EventsRequest:
		return v.validateEventsRequest(*value, fields...)

	case models.ContentID:
		return validateContentID(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *HubValidator) validatePeerRequest(req models.PeerRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPeerID}
	}

	for _, field := range fields {
		switch field {
		case FieldPeerID:
			if err := validateID(req.PeerID, ErrInvalidPeerID); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *HubValidator) validateSetEntryRequest(req models.SetEntryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey, FieldContentID, FieldSize, FieldAuthor}
	}

	for _, field := range fields {
		switch field {
		case FieldKey:
			if req.Key == "" {
				return ErrEmptyKey
			}
		case FieldContentID:
			if err := validateContentID(req.ContentID); err != nil {
				return err
			}
		case FieldSize:
			if req.Size < 0 || (v.maxSize > 0 && req.Size > v.maxSize) {
				return fmt.Errorf("%w: %d", ErrInvalidSize, req.Size)
			}
		case FieldAuthor:
			if err := validateID(req.Author, ErrInvalidPeerID); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *HubValidator) validateEventsRequest(req models.EventsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDocumentID, FieldPeerID, FieldAfter, FieldWait}
	}

	for _, field := range fields {
		switch field {
		case FieldDocumentID:
			if err := validateID(req.DocumentID, ErrInvalidDocumentID); err != nil {
				return err
			}
		case FieldPeerID:
			if err := validateID(req.PeerID, ErrInvalidPeerID); err != nil {
				return err
			}
		case FieldAfter:
			if req.After < 0 {
				return ErrInvalidCursor
			}
		case FieldWait:
			if req.Wait < 0 {
				return ErrInvalidWait
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func validateID(id string, sentinel error) error {
	if !utils.IsID(id) {
		return fmt.Errorf("%w: %q", sentinel, id)
	}
	return nil
}

func validateContentID(id models.ContentID) error {
	if !utils.IsContentID(string(id)) {
		return fmt.Errorf("%w: %q", ErrInvalidContentID, id)
	}
	return nil
}
