// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import "time"

// Record is one client's counter within the current window.
type Record struct {
	// Count is the number of requests observed in the window so far.
	Count int

	// ResetTime is the end of the window; after it the record is stale.
	ResetTime time.Time
}

// Store persists per-client records. Implementations do not need to be
// goroutine-safe: [Limiter] serializes all access.
type Store interface {
	// Get returns the record for key and whether one exists.
	Get(key string) (Record, bool, error)

	// Set stores record under key, replacing any existing one.
	Set(key string, record Record) error

	// Delete removes the record for key. Deleting a missing key is not an
	// error.
	Delete(key string) error

	// Keys returns every stored key.
	Keys() ([]string, error)
}

// memoryStore is the default in-process Store.
type memoryStore struct {
	records map[string]Record
}

// NewMemoryStore returns an in-memory [Store].
func NewMemoryStore() Store {
	return &memoryStore{records: make(map[string]Record)}
}

func (s *memoryStore) Get(key string) (Record, bool, error) {
	record, found := s.records[key]
	return record, found, nil
}

func (s *memoryStore) Set(key string, record Record) error {
	s.records[key] = record
	return nil
}

func (s *memoryStore) Delete(key string) error {
	delete(s.records, key)
	return nil
}

func (s *memoryStore) Keys() ([]string, error) {
	keys := make([]string, 0, len(s.records))
	for key := range s.records {
		keys = append(keys, key)
	}
	return keys, nil
}
