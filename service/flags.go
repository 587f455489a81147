package service

import "sync"

// LocalFlagStore device-local fallback for the notification flag, keyed by
// enquiry id. It mirrors the web client's localStorage workaround for rows
// written before the showInNotification column existed: the persisted field
// always wins when set, this store only answers for rows where it is absent.
type LocalFlagStore struct {
	mu    sync.RWMutex
	flags map[string]bool
}

// NewLocalFlagStore creates an empty flag store.
func NewLocalFlagStore() *LocalFlagStore {
	return &LocalFlagStore{flags: make(map[string]bool)}
}

// Set marks an enquiry as flagged.
func (s *LocalFlagStore) Set(enquiryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[enquiryID] = true
}

// Clear removes the local flag for an enquiry.
func (s *LocalFlagStore) Clear(enquiryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.flags, enquiryID)
}

// IsFlagged implements FlagSource.
func (s *LocalFlagStore) IsFlagged(enquiryID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flags[enquiryID]
}
