package service

import "sync"

// broker wakes long-polls waiting on a document. Every document has a
// channel that is closed and replaced on each notify, so all current
// waiters are released at once.
type broker struct {
	mu    sync.Mutex
	waits map[string]chan struct{}
}

func newBroker() *broker {
	return &broker{waits: make(map[string]chan struct{})}
}

// wait returns a channel that is closed on the next notify for docID. It
// must be taken before reading the event log so no append is missed.
func (b *broker) wait(docID string) <-chan struct{} {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch, ok := b.waits[docID]
	if !ok {
		ch = make(chan struct{})
		b.waits[docID] = ch
	}
	return ch
}

func (b *broker) notify(docID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.waits[docID]; ok {
		close(ch)
		delete(b.waits, docID)
	}
}
