// Package session holds the credentials of the current authenticated session
// with the banking service: an opaque session key and the date it was issued.
//
// The manager never expires a session on its own; expiry is the server's
// business and shows up as a rejected request. Locking the application does
// not clear these fields either — callers must consult the lock state before
// trusting the key.
package session

import "sync"

// Manager owns the session fields for one application instance.
// Safe for concurrent use.
type Manager struct {
	mu         sync.RWMutex
	key        string
	createDate string
}

func NewManager() *Manager {
	return &Manager{}
}

// Set overwrites both session fields unconditionally.
func (m *Manager) Set(key, createDate string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.key = key
	m.createDate = createDate
}

// Key returns the current session key, or "" if no session was ever set.
func (m *Manager) Key() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.key
}

// CreateDate returns the issue date of the current session key, or "" if no
// session was ever set.
func (m *Manager) CreateDate() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.createDate
}
