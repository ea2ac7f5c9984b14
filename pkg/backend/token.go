package backend

import "sync"

// TokenStore holds the admin bearer token. It is injected into the client so
// tests can fake it and server deployments can scope it per session instead
// of relying on a process-wide global.
type TokenStore interface {
	Get() string
	Set(token string)
}

// MemoryTokenStore is a concurrency-safe in-memory TokenStore. An empty
// token means "not logged in".
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryTokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}
