package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/memclip/internal/memclip"
	"github.com/MKhiriev/memclip/models"
	"github.com/charmbracelet/lipgloss"
)

const (
	uiDivider      = "──────────────────────────────────────────────────────"
	defaultWidth   = 80
	previewLines   = 3
	shortTicketLen = 48
)

func renderDashboard(status Status, build models.AppBuildInfo, width int, fullTicket bool, updatedAt time.Time) string {
	if width <= 0 {
		width = defaultWidth
	}
	inner := width - 8

	var b strings.Builder

	b.WriteString(titleStyle.Render("memclip " + valueOrNA(build.BuildVersion())))
	b.WriteString("\n" + uiDivider + "\n\n")

	ticket := status.Ticket.String()
	if !fullTicket {
		ticket = fitText(ticket, shortTicketLen)
	}
	b.WriteString(field("ticket", ticket))
	b.WriteString(field("hub", valueOrNA(status.Ticket.Hub)))
	b.WriteString(field("peer", valueOrNA(status.PeerID)))
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("Clipboard") + "\n")
	b.WriteString(renderValue(status.Value, inner) + "\n\n")

	b.WriteString(titleStyle.Render("Peers") + "\n")
	b.WriteString(renderPeers(status.Peers, status.PeerID) + "\n")

	b.WriteString(titleStyle.Render("Sync") + "\n")
	b.WriteString(field("local", fmt.Sprintf("%d changes, %d published, %d failed",
		status.Stats.LocalChanges, status.Stats.Published, status.Stats.PublishFailures)))
	b.WriteString(field("remote", fmt.Sprintf("%d applied, %d ignored, %d clipboard writes",
		status.Stats.RemoteApplied, status.Stats.RemoteIgnored, status.Stats.ClipboardWrites)))

	b.WriteString("\n" + uiDivider + "\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("updated %s   q: quit  r: refresh  t: ticket",
		updatedAt.Format(time.TimeOnly))))

	return b.String()
}

func field(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value) + "\n"
}

func renderValue(value memclip.SyncedValue, width int) string {
	meta := fmt.Sprintf("%d bytes  fingerprint %016x", len(value.Content), value.Fingerprint)
	if value.Content == "" {
		return valueBox.Render(helpStyle.Render("(empty)")) + "\n" + helpStyle.Render(meta)
	}

	return valueBox.Render(preview(value.Content, width)) + "\n" + helpStyle.Render(meta)
}

// preview keeps the first previewLines lines of s, each cut to width runes.
func preview(s string, width int) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	truncated := len(lines) > previewLines
	if truncated {
		lines = lines[:previewLines]
	}

	for i, line := range lines {
		lines[i] = fitText(strings.ReplaceAll(line, "\t", "    "), width)
	}
	if truncated {
		lines = append(lines, "…")
	}
	return strings.Join(lines, "\n")
}

func renderPeers(peers []models.Peer, self string) string {
	if len(peers) == 0 {
		return helpStyle.Render("  no peers yet") + "\n"
	}

	var b strings.Builder
	for _, peer := range peers {
		state := offlineStyle.Render("○ offline")
		if peer.Online {
			state = onlineStyle.Render("● online ")
		}

		name := fitText(peer.ID, 36)
		if peer.ID == self {
			name += " (this device)"
		}

		seen := "-"
		if !peer.LastSeen.IsZero() {
			seen = peer.LastSeen.Format(time.TimeOnly)
		}
		fmt.Fprintf(&b, "  %s  %-36s  %s\n", state, name, helpStyle.Render(seen))
	}
	return b.String()
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

// fitText cuts v to max runes, marking the cut with an ellipsis.
func fitText(v string, max int) string {
	if max <= 0 || utf8.RuneCountInString(v) <= max {
		return v
	}
	runes := []rune(v)
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
