// Package input bridges asynchronous input producers (interrupt handlers,
// event pollers) with the once-per-tick simulation consumer.
package input

import (
	"sync"

	"github.com/younwookim/hookarcade/internal/domain/entity"
)

// Capacity is the number of actions the queue holds between drains.
const Capacity = 8

type slot struct {
	action entity.Action
	set    bool
}

// Batch is a drained copy of the queue, left-packed in insertion order.
type Batch struct {
	slots [Capacity]slot
}

// Len returns the number of actions in the batch.
func (b *Batch) Len() int {
	for i, s := range b.slots {
		if !s.set {
			return i
		}
	}
	return Capacity
}

// Each visits the actions in insertion order, stopping at the first empty slot.
func (b *Batch) Each(fn func(a entity.Action)) {
	for _, s := range b.slots {
		if !s.set {
			return
		}
		fn(s.action)
	}
}

// Actions returns the actions as a slice.
func (b *Batch) Actions() []entity.Action {
	out := make([]entity.Action, 0, b.Len())
	b.Each(func(a entity.Action) {
		out = append(out, a)
	})
	return out
}

// Queue is a fixed-capacity, lossy action queue shared between producers and
// the simulation loop. Critical sections only copy slots.
type Queue struct {
	mu    sync.Mutex
	slots [Capacity]slot
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push stores a in the first empty slot. When the queue is full the action
// is dropped.
func (q *Queue) Push(a entity.Action) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i := range q.slots {
		if !q.slots[i].set {
			q.slots[i] = slot{action: a, set: true}
			return
		}
	}
}

// Drain takes the whole queue, leaving it empty.
func (q *Queue) Drain() Batch {
	q.mu.Lock()
	b := Batch{slots: q.slots}
	q.slots = [Capacity]slot{}
	q.mu.Unlock()
	return b
}
