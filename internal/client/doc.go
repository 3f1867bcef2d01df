// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the memclip daemon runtime.
//
// It takes the single-instance lock, opens the OS clipboard, connects to the
// hub, opens a session and runs the watcher, publisher and subscriber until
// the process is asked to stop. The optional metrics endpoint and status
// dashboard run in the same errgroup.
package client
