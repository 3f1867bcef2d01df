// Package docstore implements the replicated key-value document the clipboard
// engine synchronises through.
//
// A [Node] is this process's identity in a session. It creates, opens or
// imports [Document] values. A document stores content-addressed values under
// keys and streams live events describing local writes, remote writes, blob
// replication progress and peer presence.
//
// Two implementations are provided: [HubNode], which relays through a memclip
// hub over HTTP, and [MemoryNetwork], an in-process network used by tests.
package docstore
