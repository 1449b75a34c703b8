package ecs

import (
	"fmt"
	"sync"
)

type operationType int

const (
	opCreate operationType = iota
	opAttach
)

type operation struct {
	typ    operationType
	entity Entity
	values []ComponentValue
}

// opQueue holds structural operations deferred while the world is locked for
// a concurrent system batch. Enqueues may race between systems of one batch;
// the flush happens single-threaded after the batch joins.
type opQueue struct {
	mu  sync.Mutex
	ops []operation
}

func (q *opQueue) enqueue(op operation) {
	q.mu.Lock()
	q.ops = append(q.ops, op)
	q.mu.Unlock()
}

func (q *opQueue) drain() []operation {
	q.mu.Lock()
	ops := q.ops
	q.ops = nil
	q.mu.Unlock()
	return ops
}

// processOperationQueue applies deferred operations in FIFO order. Called
// with the world unlocked, so queued creations are visible to later batches
// within the same tick and to the caller afterwards.
func (w *World) processOperationQueue() error {
	for _, op := range w.opQueue.drain() {
		switch op.typ {
		case opCreate:
			if _, err := w.CreateEntityWithComponents(op.values...); err != nil {
				return fmt.Errorf("failed to process queued entity creation: %w", err)
			}
		case opAttach:
			if err := w.attach(op.entity, op.values); err != nil {
				return fmt.Errorf("failed to process queued attachment: %w", err)
			}
		}
	}
	return nil
}
