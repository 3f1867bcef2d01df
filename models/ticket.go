// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/base32"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// TicketPrefix starts every encoded ticket.
const TicketPrefix = "memclip"

var (
	// ErrInvalidTicket is returned when a ticket string cannot be decoded.
	ErrInvalidTicket = errors.New("invalid ticket")
)

var ticketEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Ticket is a shareable, write-capable reference to a session document.
type Ticket struct {
	// DocumentID identifies the document on the hub.
	DocumentID string `json:"doc"`

	// Hub is the base URL of the hub hosting the document.
	Hub string `json:"hub"`

	// Peers lists the peer ids known to participate in the document.
	Peers []string `json:"peers,omitempty"`
}

// String encodes the ticket as prefix + lowercase unpadded base32 of its JSON
// form. A ticket that fails to marshal encodes as the empty string.
func (t Ticket) String() string {
	raw, err := json.Marshal(t)
	if err != nil {
		return ""
	}
	return TicketPrefix + strings.ToLower(ticketEncoding.EncodeToString(raw))
}

// ParseTicket decodes a string produced by [Ticket.String].
func ParseTicket(s string) (Ticket, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, TicketPrefix) {
		return Ticket{}, fmt.Errorf("%w: missing %q prefix", ErrInvalidTicket, TicketPrefix)
	}

	raw, err := ticketEncoding.DecodeString(strings.ToUpper(strings.TrimPrefix(s, TicketPrefix)))
	if err != nil {
		return Ticket{}, fmt.Errorf("%w: %v", ErrInvalidTicket, err)
	}

	var t Ticket
	if err = json.Unmarshal(raw, &t); err != nil {
		return Ticket{}, fmt.Errorf("%w: %v", ErrInvalidTicket, err)
	}
	if t.DocumentID == "" || t.Hub == "" {
		return Ticket{}, fmt.Errorf("%w: document and hub are required", ErrInvalidTicket)
	}

	return t, nil
}
