package dashboard

import (
	"sync"
	"time"
)

// defaultMemoSize bounds the number of in-process aggregates
const defaultMemoSize = 1024

type memoEntry struct {
	value  interface{}
	stored time.Time
}

// memo is the in-process aggregate cache in front of Redis.
// Entries expire after ttl; CleanStale drops them.
// ⭐ SSOT: 프로세스 내 차트 캐시는 이 구조체에서만
type memo struct {
	mu      sync.RWMutex
	entries map[string]memoEntry
	ttl     time.Duration
	maxSize int
	now     func() time.Time
}

func newMemo(ttl time.Duration, maxSize int) *memo {
	return &memo{
		entries: make(map[string]memoEntry),
		ttl:     ttl,
		maxSize: maxSize,
		now:     time.Now,
	}
}

// Get returns a fresh value for key
func (m *memo) Get(key string) (interface{}, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, exists := m.entries[key]
	if !exists || m.now().Sub(entry.stored) > m.ttl {
		return nil, false
	}
	return entry.value, true
}

// Set stores value under key. When full, stale entries are dropped first and
// the value is skipped if there is still no room.
func (m *memo) Set(key string, value interface{}) bool {
	if m.ttl <= 0 {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[key]; !exists && len(m.entries) >= m.maxSize {
		m.cleanStaleLocked()
		if len(m.entries) >= m.maxSize {
			return false
		}
	}

	m.entries[key] = memoEntry{value: value, stored: m.now()}
	return true
}

// Len returns the number of entries, stale ones included
func (m *memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}

// CleanStale removes expired entries and returns how many were removed
func (m *memo) CleanStale() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.cleanStaleLocked()
}

func (m *memo) cleanStaleLocked() int {
	now := m.now()
	count := 0

	for key, entry := range m.entries {
		if now.Sub(entry.stored) > m.ttl {
			delete(m.entries, key)
			count++
		}
	}

	return count
}
