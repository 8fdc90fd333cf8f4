package session

import (
	"testing"
	"time"
)

func TestManager_GetOrCreate(t *testing.T) {
	m := NewManager()
	a := m.GetOrCreate("s1")
	if a == nil {
		t.Fatal("GetOrCreate returned nil")
	}
	if m.GetOrCreate("s1") != a {
		t.Error("same id should return same store")
	}
	if m.GetOrCreate("s2") == a {
		t.Error("different ids must not share a store")
	}
	if m.Len() != 2 {
		t.Errorf("Len = %d, want 2", m.Len())
	}
}

func TestManager_Get(t *testing.T) {
	m := NewManager()
	if _, ok := m.Get("missing"); ok {
		t.Error("Get(missing) = true, want false")
	}
	m.GetOrCreate("s1")
	if _, ok := m.Get("s1"); !ok {
		t.Error("Get(s1) = false, want true")
	}
}

func TestManager_Sweep(t *testing.T) {
	m := NewManager()
	var evicted []string
	m.SetEvictFunc(func(id string) { evicted = append(evicted, id) })

	m.GetOrCreate("old")
	// Backdate the entry.
	m.mu.Lock()
	m.sessions["old"].lastSeen = time.Now().Add(-time.Hour)
	m.mu.Unlock()
	m.GetOrCreate("fresh")

	removed := m.Sweep(30 * time.Minute)
	if removed != 1 {
		t.Fatalf("Sweep removed %d, want 1", removed)
	}
	if _, ok := m.Get("old"); ok {
		t.Error("old session should be gone")
	}
	if _, ok := m.Get("fresh"); !ok {
		t.Error("fresh session should survive")
	}
	if len(evicted) != 1 || evicted[0] != "old" {
		t.Errorf("evicted = %v, want [old]", evicted)
	}
}

func TestNewID_Unique(t *testing.T) {
	if NewID() == NewID() {
		t.Error("NewID returned duplicates")
	}
	if len(NewID()) != 32 {
		t.Errorf("NewID length = %d, want 32 hex chars", len(NewID()))
	}
}
