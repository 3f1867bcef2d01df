// Package http implements the hub's REST API.
//
// Documents, peers, entries and the event long-poll are JSON endpoints;
// blobs travel as raw octet streams addressed by their content id. Every
// request gets a trace id and an access log line before it is handed to the
// hub service.
package http
