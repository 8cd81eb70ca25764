package employee

import (
	"errors"
	"fmt"
)

// ErrStoreFull is returned by Add when a bounded store is at capacity.
var ErrStoreFull = errors.New("employee store is full")

// Store keeps records in insertion order. It is owned by the menu loop and is
// not safe for concurrent use.
type Store struct {
	records  []Record
	capacity int
	nextID   int
}

// NewStore returns an empty store. A capacity of 0 means unbounded.
func NewStore(capacity int) *Store {
	if capacity < 0 {
		capacity = 0
	}
	return &Store{capacity: capacity, nextID: 1}
}

// Add appends rec, assigning its ID, and returns the stored copy.
func (s *Store) Add(rec Record) (Record, error) {
	if s.capacity > 0 && len(s.records) >= s.capacity {
		return Record{}, fmt.Errorf("%w (capacity %d)", ErrStoreFull, s.capacity)
	}
	rec.ID = s.nextID
	s.nextID++
	s.records = append(s.records, rec)
	return rec, nil
}

// Records returns a copy of the stored records.
func (s *Store) Records() []Record {
	if len(s.records) == 0 {
		return nil
	}
	dup := make([]Record, len(s.records))
	copy(dup, s.records)
	return dup
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	return len(s.records)
}

// Capacity returns the configured capacity, 0 when unbounded.
func (s *Store) Capacity() int {
	return s.capacity
}
