package ltsv

import (
	"iter"
	"slices"
	"sync"
)

// Record is one decoded line: an ordered mapping of label to value. Setting a
// label that is already present replaces its value and keeps its position.
type Record interface {
	Set(label, value string)
	Get(label string) (string, bool)
	Len() int
	All() iter.Seq2[string, string]
}

// Factory produces an empty Record. It is injected into a [Parser] with
// [Parser.MapFactory] to substitute the container used for decoded lines.
type Factory func() Record

func defaultFactory() Record { return NewMap() }

// Map is the default insertion-ordered Record.
type Map struct {
	labels []string
	values map[string]string
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{values: make(map[string]string)}
}

// Set stores value under label.
func (m *Map) Set(label, value string) {
	if _, ok := m.values[label]; !ok {
		m.labels = append(m.labels, label)
	}
	m.values[label] = value
}

// Get returns the value stored under label.
func (m *Map) Get(label string) (string, bool) {
	v, ok := m.values[label]
	return v, ok
}

// Len returns the number of labels.
func (m *Map) Len() int { return len(m.labels) }

// Labels returns the labels in insertion order. The slice is a copy.
func (m *Map) Labels() []string { return slices.Clone(m.labels) }

// All iterates label/value pairs in insertion order.
func (m *Map) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, label := range m.labels {
			if !yield(label, m.values[label]) {
				return
			}
		}
	}
}

// String renders the record as a single LTSV line without a terminator.
func (m *Map) String() string { return FormatLine(m) }

// SyncMap is an ordered Record that is safe for concurrent use. Use it with
// [Parser.MapFactory] when decoded records are shared between goroutines.
type SyncMap struct {
	mu sync.RWMutex
	m  *Map
}

// NewSyncMap returns an empty SyncMap.
func NewSyncMap() *SyncMap {
	return &SyncMap{m: NewMap()}
}

// Set stores value under label.
func (s *SyncMap) Set(label, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.Set(label, value)
}

// Get returns the value stored under label.
func (s *SyncMap) Get(label string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Get(label)
}

// Len returns the number of labels.
func (s *SyncMap) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Len()
}

// All iterates over a snapshot taken when iteration starts.
func (s *SyncMap) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		s.mu.RLock()
		labels := slices.Clone(s.m.labels)
		values := make([]string, len(labels))
		for i, label := range labels {
			values[i] = s.m.values[label]
		}
		s.mu.RUnlock()
		for i, label := range labels {
			if !yield(label, values[i]) {
				return
			}
		}
	}
}
