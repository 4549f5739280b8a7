package device

import (
	"sync"
	"testing"
)

func TestSuppressor_OnOffAroundScope(t *testing.T) {
	var events []string
	s := newSuppressor(
		func() { events = append(events, "on") },
		func() { events = append(events, "off") },
	)

	release := s.Acquire()
	release()

	if len(events) != 2 || events[0] != "on" || events[1] != "off" {
		t.Errorf("events = %v, want [on off]", events)
	}
}

func TestSuppressor_NestedHoldersShareState(t *testing.T) {
	ons, offs := 0, 0
	s := newSuppressor(func() { ons++ }, func() { offs++ })

	r1 := s.Acquire()
	r2 := s.Acquire()
	if ons != 1 {
		t.Errorf("on ran %d times with two holders, want 1", ons)
	}
	r1()
	if offs != 0 {
		t.Errorf("off ran while a holder remained")
	}
	r2()
	if offs != 1 {
		t.Errorf("off ran %d times after last release, want 1", offs)
	}
}

func TestSuppressor_ReleaseIdempotent(t *testing.T) {
	offs := 0
	s := newSuppressor(func() {}, func() { offs++ })

	release := s.Acquire()
	release()
	release()

	if offs != 1 {
		t.Errorf("off ran %d times after double release, want 1", offs)
	}

	// A fresh acquire/release cycle still works.
	s.Acquire()()
	if offs != 2 {
		t.Errorf("off ran %d times after second cycle, want 2", offs)
	}
}

func TestSuppressor_ConcurrentHolders(t *testing.T) {
	var mu sync.Mutex
	ons, offs := 0, 0
	s := newSuppressor(
		func() { mu.Lock(); ons++; mu.Unlock() },
		func() { mu.Lock(); offs++; mu.Unlock() },
	)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := s.Acquire()
			release()
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if ons != offs {
		t.Errorf("unbalanced transitions: %d on, %d off", ons, offs)
	}
	if s.n != 0 {
		t.Errorf("holder count = %d after all releases, want 0", s.n)
	}
}
