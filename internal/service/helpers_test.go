// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/memclip/internal/docstore"
	"github.com/MKhiriev/memclip/internal/utils"
	"github.com/MKhiriev/memclip/models"
)

const testKey = "memclip"

var errNetwork = errors.New("network unreachable")

// fakeClipboard is an in-memory OS clipboard.
type fakeClipboard struct {
	mu     sync.Mutex
	text   string
	getErr error
	setErr error

	sets atomic.Int64
}

func newFakeClipboard(text string) *fakeClipboard {
	return &fakeClipboard{text: text}
}

func (c *fakeClipboard) Get() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return "", c.getErr
	}
	return c.text, nil
}

func (c *fakeClipboard) Set(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.sets.Add(1)
	c.text = text
	return nil
}

// copy simulates the user copying text.
func (c *fakeClipboard) copy(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
}

func (c *fakeClipboard) current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// recordingDoc is a docstore.Document that records every Set and serves
// Fetch from the blobs it was given.
type recordingDoc struct {
	mu     sync.Mutex
	sets   []string
	blobs  map[models.ContentID][]byte
	setErr error

	events chan models.LiveEvent
}

var _ docstore.Document = (*recordingDoc)(nil)

func newRecordingDoc() *recordingDoc {
	return &recordingDoc{
		blobs:  make(map[models.ContentID][]byte),
		events: make(chan models.LiveEvent, 16),
	}
}

func (d *recordingDoc) ID() string { return "doc" }

func (d *recordingDoc) Set(_ context.Context, _ string, value []byte) (models.ContentID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.setErr != nil {
		return "", d.setErr
	}
	d.sets = append(d.sets, string(value))
	id := utils.ContentIDOf(value)
	d.blobs[id] = value
	return id, nil
}

func (d *recordingDoc) failSets(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.setErr = err
}

func (d *recordingDoc) published() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.sets...)
}

// put makes data fetchable and returns the entry a peer would have written.
func (d *recordingDoc) put(data []byte) models.Entry {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := utils.ContentIDOf(data)
	d.blobs[id] = data
	return models.Entry{Key: testKey, ContentID: id, Size: int64(len(data)), Author: "peer"}
}

func (d *recordingDoc) Subscribe(_ context.Context) (<-chan models.LiveEvent, error) {
	return d.events, nil
}

func (d *recordingDoc) Fetch(_ context.Context, id models.ContentID) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	data, ok := d.blobs[id]
	if !ok {
		return nil, docstore.ErrContentNotAvailable
	}
	return data, nil
}

func (d *recordingDoc) Share(_ context.Context) (models.Ticket, error) {
	return models.Ticket{DocumentID: "doc", Hub: docstore.MemoryHub}, nil
}

func (d *recordingDoc) Close(_ context.Context) error { return nil }

func remoteComplete(entry models.Entry) models.LiveEvent {
	return models.LiveEvent{Type: models.EventInsertRemote, Entry: entry, ContentStatus: models.ContentComplete, ContentID: entry.ContentID}
}

func remoteIncomplete(entry models.Entry) models.LiveEvent {
	return models.LiveEvent{Type: models.EventInsertRemote, Entry: entry, ContentStatus: models.ContentIncomplete, ContentID: entry.ContentID}
}

func contentReady(id models.ContentID) models.LiveEvent {
	return models.LiveEvent{Type: models.EventContentReady, ContentID: id}
}
