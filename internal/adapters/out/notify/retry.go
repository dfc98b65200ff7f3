package notify

import "sync"

const maxAttempts = 5

type pending struct {
	sink     Sink
	msg      Message
	attempts int
}

// retryQueue is a bounded FIFO. Pushing onto a full queue drops the oldest
// entry.
type retryQueue struct {
	mu       sync.Mutex
	items    []pending
	capacity int
}

func newRetryQueue(capacity int) *retryQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &retryQueue{capacity: capacity}
}

func (q *retryQueue) push(p pending) (dropped bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) >= q.capacity {
		q.items = q.items[1:]
		dropped = true
	}
	q.items = append(q.items, p)
	return dropped
}

func (q *retryQueue) drain() []pending {
	q.mu.Lock()
	defer q.mu.Unlock()

	items := q.items
	q.items = nil
	return items
}

func (q *retryQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
