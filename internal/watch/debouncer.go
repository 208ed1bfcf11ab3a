// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package watch

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of events per file path: the callback runs once,
// delay after the last Trigger for that path
type Debouncer struct {
	mu       sync.Mutex
	timers   map[string]*pending
	callback func(string)
	delay    time.Duration
	stopped  bool
}

// pending is one scheduled callback; its identity tells a replaced timer apart
// from the current one
type pending struct {
	timer *time.Timer
}

// NewDebouncer creates a new debouncer with the specified delay
func NewDebouncer(delay time.Duration, callback func(string)) *Debouncer {
	return &Debouncer{
		timers:   make(map[string]*pending),
		callback: callback,
		delay:    delay,
	}
}

// Trigger schedules or resets the timer for a file path
func (d *Debouncer) Trigger(filePath string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if p, exists := d.timers[filePath]; exists {
		p.timer.Stop()
	}

	p := &pending{}
	p.timer = time.AfterFunc(d.delay, func() {
		d.fire(filePath, p)
	})
	d.timers[filePath] = p
}

// fire runs the callback for a timer that expired. A timer that was replaced
// by a later Trigger while expiring is stale and does nothing.
func (d *Debouncer) fire(filePath string, p *pending) {
	d.mu.Lock()
	if d.stopped || d.timers[filePath] != p {
		d.mu.Unlock()
		return
	}
	delete(d.timers, filePath)
	d.mu.Unlock()

	if d.callback != nil {
		d.callback(filePath)
	}
}

// Pending returns the number of paths waiting for their timer
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.timers)
}

// Stop cancels all pending timers. Later triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	for _, p := range d.timers {
		p.timer.Stop()
	}
	d.timers = make(map[string]*pending)
}
