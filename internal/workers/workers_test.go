// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// spyWorker counts runs and blocks until its context ends.
type spyWorker struct {
	started atomic.Int32
	stopped atomic.Int32
}

func (s *spyWorker) Run(ctx context.Context) {
	s.started.Add(1)
	<-ctx.Done()
	s.stopped.Add(1)
}

func TestWorkers_RunAndWait(t *testing.T) {
	w1, w2, w3 := &spyWorker{}, &spyWorker{}, &spyWorker{}
	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	ws.Run(ctx)

	assert.Eventually(t, func() bool {
		return w1.started.Load() == 1 && w2.started.Load() == 1 && w3.started.Load() == 1
	}, time.Second, time.Millisecond)

	cancel()
	ws.Wait()

	for i, w := range []*spyWorker{w1, w2, w3} {
		assert.EqualValues(t, 1, w.stopped.Load(), "worker %d", i)
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	ws.Run(context.Background())
	ws.Wait()
}
