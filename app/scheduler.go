package app

import (
	"time"
)

// System is logic run every tick before layout.
type System interface {
	Update(f *Frame, dt time.Duration)
	Priority() int // Lower values run first
}

// Scheduler runs registered systems in priority order plus one-shot
// deferred tasks. It is driven from the frame loop and is not safe for
// concurrent use.
type Scheduler struct {
	systems  []System
	deferred []func(f *Frame)
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add registers a system and sorts by priority.
func (s *Scheduler) Add(system System) {
	s.systems = append(s.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(s.systems)-1; i++ {
		for j := 0; j < len(s.systems)-i-1; j++ {
			if s.systems[j].Priority() > s.systems[j+1].Priority() {
				s.systems[j], s.systems[j+1] = s.systems[j+1], s.systems[j]
			}
		}
	}
}

// Defer queues fn to run once at the start of the next tick, before
// any system. Tasks run in the order queued.
func (s *Scheduler) Defer(fn func(f *Frame)) {
	s.deferred = append(s.deferred, fn)
}

// Tick drains deferred tasks and runs every system once.
func (s *Scheduler) Tick(f *Frame, dt time.Duration) {
	if len(s.deferred) > 0 {
		tasks := s.deferred
		s.deferred = nil
		for _, fn := range tasks {
			fn(f)
		}
	}

	for _, system := range s.systems {
		system.Update(f, dt)
	}
}
