// Package tui renders the memclip status dashboard: the session ticket, the
// current shared value, the peer registry and the sync tallies, refreshed
// once per second.
package tui
