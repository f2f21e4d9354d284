// Package lockstate tracks whether the application is locked and drives the
// automatic re-lock when every UI surface has gone to the background.
//
// The machine starts locked. Foreground/background events adjust a counter;
// each background event arms (or re-arms) a single debounced timer, and if
// the counter is still zero when the timer fires, the application locks
// itself. A foreground event before the timer fires leaves the pending check
// in place but raises the counter, so quick screen transitions do not lock
// the app.
package lockstate

import (
	"sync"
	"time"
)

// DefaultLockDelay is how long after the last background event the machine
// waits before checking whether the whole application is backgrounded.
const DefaultLockDelay = 2 * time.Second

// Machine is the lock state machine for one application instance.
// All state transitions are serialized on an internal mutex.
type Machine struct {
	mu           sync.Mutex
	locked       bool
	foregrounded int
	delay        time.Duration
	timer        *time.Timer
}

// New returns a Machine in the locked state. A non-positive delay selects
// DefaultLockDelay.
func New(delay time.Duration) *Machine {
	if delay <= 0 {
		delay = DefaultLockDelay
	}
	return &Machine{locked: true, delay: delay}
}

// Lock moves the machine to the locked state. It never fails and performs no
// remote calls; the session key is deliberately left in place (callers must
// check IsLocked before using it).
func (m *Machine) Lock() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locked = true
}

// Unlock moves the machine to the unlocked state. Called by the auth gateway
// after a successful local check plus remote login.
func (m *Machine) Unlock() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locked = false
}

// IsLocked reports the current lock state.
func (m *Machine) IsLocked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.locked
}

// Foregrounded returns the current foreground-activity count.
func (m *Machine) Foregrounded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.foregrounded
}

// RegisterForegrounded records that a UI surface entered the foreground.
// A pending background check is not cancelled here; it simply finds a
// non-zero counter when it fires and does nothing.
func (m *Machine) RegisterForegrounded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.foregrounded++
}

// RegisterBackgrounded records that a UI surface left the foreground and
// schedules the debounced check. Re-arming cancels the previously pending
// check, so only the last background event counts.
//
// The counter has no lower bound: unbalanced background events can push it
// negative, matching the original behavior.
func (m *Machine) RegisterBackgrounded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.foregrounded--
	m.stopTimerLocked()
	m.timer = time.AfterFunc(m.delay, m.checkIfBackgrounded)
}

// checkIfBackgrounded locks the application iff no surface is foregrounded
// at the moment the deferred check fires.
func (m *Machine) checkIfBackgrounded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.foregrounded == 0 {
		m.locked = true
	}
}

// Stop cancels any pending background check. For shutdown paths.
func (m *Machine) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopTimerLocked()
}

func (m *Machine) stopTimerLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}
