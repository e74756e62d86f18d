// Implements the PendingQueue, which holds requests deferred by the SSTF dispatcher.
// Requests are appended in admission order and leave exactly once, when serviced.

package sim

import (
	"fmt"
	"strings"
)

// PendingQueue is an insertion-ordered pool of requests waiting for service.
// Insertion order matters: it breaks distance ties and decides the fallback
// candidate when nothing in the queue has arrived yet.
type PendingQueue struct {
	queue []Request
}

// Enqueue adds a request to the back of the queue.
func (pq *PendingQueue) Enqueue(r Request) {
	pq.queue = append(pq.queue, r)
}

func (pq *PendingQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range pq.queue {
		sb.WriteString(fmt.Sprint(val))
		if i < len(pq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of requests in the queue.
func (pq *PendingQueue) Len() int {
	return len(pq.queue)
}

// Peek returns the oldest request without removing it.
// The boolean is false when the queue is empty.
func (pq *PendingQueue) Peek() (Request, bool) {
	if len(pq.queue) == 0 {
		return Request{}, false
	}
	return pq.queue[0], true
}

// Items returns the queue contents in insertion order.
// The returned slice is the queue's internal storage; callers MUST NOT modify it.
func (pq *PendingQueue) Items() []Request {
	return pq.queue
}

// RemoveAt removes and returns the request at index i, keeping the order of the rest.
// Panics if i is out of range.
func (pq *PendingQueue) RemoveAt(i int) Request {
	if i < 0 || i >= len(pq.queue) {
		panic(fmt.Sprintf("RemoveAt: index %d out of range [0,%d)", i, len(pq.queue)))
	}
	r := pq.queue[i]
	pq.queue = append(pq.queue[:i], pq.queue[i+1:]...)
	return r
}
