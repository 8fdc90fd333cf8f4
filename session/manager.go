package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

var (
	managerInstance *Manager
	managerOnce     sync.Once
)

// GetManager returns the process-wide session manager.
func GetManager() *Manager {
	managerOnce.Do(func() {
		managerInstance = NewManager()
	})
	return managerInstance
}

type entry struct {
	store    *Store
	lastSeen time.Time
}

// Manager tracks one Store per widget session ID. Sessions live only for the
// process lifetime; idle ones are dropped by the sweep cron job.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry
	evict    func(id string)
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*entry)}
}

// SetEvictFunc registers a callback invoked with each swept session id, so
// layers holding per-session state (flow controllers) can release theirs.
func (m *Manager) SetEvictFunc(fn func(id string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evict = fn
}

// NewID returns an opaque session identifier for the widget cookie.
func NewID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process is in serious trouble
		panic("session: id generation: " + err.Error())
	}
	return hex.EncodeToString(buf)
}

// GetOrCreate returns the store for id, creating an empty session when the
// id is unknown (expired or first visit).
func (m *Manager) GetOrCreate(id string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		e = &entry{store: NewStore()}
		m.sessions[id] = e
	}
	e.lastSeen = time.Now()
	return e.store
}

// Get returns the store for id without creating one.
func (m *Manager) Get(id string) (*Store, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = time.Now()
	return e.store, true
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep drops sessions idle for longer than maxIdle and reports how many
// were removed.
func (m *Manager) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)
	m.mu.Lock()
	var swept []string
	for id, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			swept = append(swept, id)
		}
	}
	evict := m.evict
	m.mu.Unlock()

	if evict != nil {
		for _, id := range swept {
			evict(id)
		}
	}
	return len(swept)
}
