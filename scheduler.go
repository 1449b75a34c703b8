package ecs

import (
	"fmt"
	"sync"

	"github.com/TheBitDrifter/mask"
)

// scheduler owns the registered systems and drives one fork/join tick.
//
// Registration order is partitioned greedily into batches of mutually
// non-conflicting systems: a conflict exists when one system's declared
// writes intersect another's declared reads or writes. Systems within a
// batch run as concurrent goroutines against the locked world; batches are
// separated by join barriers, in registration order. Systems that do not
// declare their access are full-world writers and run alone with the world
// unlocked.
type scheduler struct {
	systems *simpleRegistry[System]
}

func newScheduler() *scheduler {
	return &scheduler{systems: newRegistry[System]()}
}

func (s *scheduler) addSystem(system System) error {
	if !s.systems.Register(system.TypeKey(), system) {
		return DuplicateSystemError{Key: system.TypeKey()}
	}
	return nil
}

func (s *scheduler) removeSystem(key TypeKey) error {
	if !s.systems.Remove(key) {
		return MissingSystemError{Key: key}
	}
	return nil
}

// access is one system's component footprint for the current tick.
type access struct {
	system    System
	writes    mask.Mask
	footprint mask.Mask // reads and writes combined
	exclusive bool
}

func (a access) conflictsWith(b access) bool {
	return a.writes.ContainsAny(b.footprint) || b.writes.ContainsAny(a.footprint)
}

// resolveAccess folds a system's declared type keys into masks. A system
// without a ComponentAccessor declaration, or one declaring a type whose
// column does not exist yet, falls back to exclusive scheduling.
func resolveAccess(w *World, system System) access {
	a := access{system: system, exclusive: true}
	accessor, ok := system.(ComponentAccessor)
	if !ok {
		return a
	}
	writes, err := w.maskFor(accessor.Writes())
	if err != nil {
		return a
	}
	combined := append(append([]TypeKey{}, accessor.Reads()...), accessor.Writes()...)
	footprint, err := w.maskFor(combined)
	if err != nil {
		return a
	}
	a.writes = writes
	a.footprint = footprint
	a.exclusive = false
	return a
}

func (s *scheduler) update(w *World) error {
	for _, batch := range s.plan(w) {
		if err := s.runBatch(w, batch); err != nil {
			return err
		}
	}
	return nil
}

func (s *scheduler) plan(w *World) [][]access {
	systems := s.systems.Items()
	batches := make([][]access, 0, len(systems))
	var current []access
	for _, system := range systems {
		a := resolveAccess(w, system)
		if len(current) > 0 && canJoin(current, a) {
			current = append(current, a)
			continue
		}
		if len(current) > 0 {
			batches = append(batches, current)
		}
		current = []access{a}
	}
	if len(current) > 0 {
		batches = append(batches, current)
	}
	return batches
}

func canJoin(batch []access, a access) bool {
	if a.exclusive || batch[0].exclusive {
		return false
	}
	for _, other := range batch {
		if a.conflictsWith(other) {
			return false
		}
	}
	return true
}

// runBatch dispatches every system of the batch in its own goroutine and
// join-barriers them. The first system failure (error or recovered panic)
// aborts the tick; the deferred operation queue is still flushed so the
// world stays consistent.
func (s *scheduler) runBatch(w *World, batch []access) error {
	concurrent := !batch[0].exclusive
	if concurrent {
		w.lock()
	}
	errs := make([]error, len(batch))
	var wg sync.WaitGroup
	for i, a := range batch {
		wg.Add(1)
		go func(i int, system System) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errs[i] = fmt.Errorf("system %v panicked: %v", system.TypeKey(), r)
				}
			}()
			errs[i] = system.Update(w)
		}(i, a.system)
	}
	wg.Wait()
	var flushErr error
	if concurrent {
		flushErr = w.unlock()
	}
	for _, err := range errs {
		if err != nil {
			return fmt.Errorf("tick aborted: %w", err)
		}
	}
	return flushErr
}
