package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/memclip/internal/validators"
	"github.com/MKhiriev/memclip/models"
)

// HubServiceWrapper defines middleware composition for HubService.
// Implementations wrap an existing HubService to add behavior such as
// request validation.
type HubServiceWrapper interface {
	Wrap(HubService) HubService
}

// HubValidationService checks every request before handing it to the
// wrapped HubService.
type HubValidationService struct {
	inner     HubService
	validator validators.Validator
}

func NewHubValidationService(maxBlobSize int64) HubServiceWrapper {
	return &HubValidationService{
		validator: validators.NewHubValidator(maxBlobSize),
	}
}

// Wrap implements HubServiceWrapper.
func (v *HubValidationService) Wrap(inner HubService) HubService {
	v.inner = inner
	return v
}

func (v *HubValidationService) CreateDocument(ctx context.Context, peerID string) (models.DocumentResponse, error) {
	if err := v.validator.Validate(ctx, models.PeerRequest{PeerID: peerID}); err != nil {
		return models.DocumentResponse{}, fmt.Errorf("error during document request validation: %w", err)
	}
	return v.inner.CreateDocument(ctx, peerID)
}

func (v *HubValidationService) GetDocument(ctx context.Context, docID string) (models.DocumentResponse, error) {
	if err := v.validateDocID(ctx, docID); err != nil {
		return models.DocumentResponse{}, err
	}
	return v.inner.GetDocument(ctx, docID)
}

func (v *HubValidationService) JoinDocument(ctx context.Context, docID, peerID string) (models.DocumentResponse, error) {
	if err := v.validatePeer(ctx, docID, peerID); err != nil {
		return models.DocumentResponse{}, err
	}
	return v.inner.JoinDocument(ctx, docID, peerID)
}

func (v *HubValidationService) LeaveDocument(ctx context.Context, docID, peerID string) error {
	if err := v.validatePeer(ctx, docID, peerID); err != nil {
		return err
	}
	return v.inner.LeaveDocument(ctx, docID, peerID)
}

func (v *HubValidationService) PutBlob(ctx context.Context, id models.ContentID, data []byte) error {
	if err := v.validator.Validate(ctx, id); err != nil {
		return fmt.Errorf("error during blob validation: %w", err)
	}
	return v.inner.PutBlob(ctx, id, data)
}

func (v *HubValidationService) GetBlob(ctx context.Context, id models.ContentID) ([]byte, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return nil, fmt.Errorf("error during blob validation: %w", err)
	}
	return v.inner.GetBlob(ctx, id)
}

func (v *HubValidationService) SetEntry(ctx context.Context, docID string, req models.SetEntryRequest) (models.SetEntryResponse, error) {
	if err := v.validateDocID(ctx, docID); err != nil {
		return models.SetEntryResponse{}, err
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.SetEntryResponse{}, fmt.Errorf("error during entry validation: %w", err)
	}
	return v.inner.SetEntry(ctx, docID, req)
}

func (v *HubValidationService) Events(ctx context.Context, docID, peerID string, after int64, wait time.Duration) (models.EventsResponse, error) {
	req := models.EventsRequest{DocumentID: docID, PeerID: peerID, After: after, Wait: wait}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.EventsResponse{}, fmt.Errorf("error during events request validation: %w", err)
	}
	return v.inner.Events(ctx, docID, peerID, after, wait)
}

func (v *HubValidationService) SweepPeers(ctx context.Context, ttl time.Duration) (int, error) {
	return v.inner.SweepPeers(ctx, ttl)
}

func (v *HubValidationService) validateDocID(ctx context.Context, docID string) error {
	err := v.validator.Validate(ctx, models.EventsRequest{DocumentID: docID}, validators.FieldDocumentID)
	if err != nil {
		return fmt.Errorf("error during document request validation: %w", err)
	}
	return nil
}

func (v *HubValidationService) validatePeer(ctx context.Context, docID, peerID string) error {
	err := v.validator.Validate(ctx, models.EventsRequest{DocumentID: docID, PeerID: peerID},
		validators.FieldDocumentID, validators.FieldPeerID)
	if err != nil {
		return fmt.Errorf("error during peer request validation: %w", err)
	}
	return nil
}
