package models

import "sync"

// SequenceStart is the first number handed out by a fresh Sequence
const SequenceStart int64 = 1000

// Sequence hands out account numbers. It is safe for concurrent use.
type Sequence struct {
	mu   sync.Mutex
	next int64
}

// NewSequence creates a sequence whose first value is start
func NewSequence(start int64) *Sequence {
	return &Sequence{next: start}
}

// Next returns the current value and advances the sequence
func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.next
	s.next++
	return n
}

// Peek returns the value the next call to Next will return
func (s *Sequence) Peek() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

// Reset rewinds the sequence to start
func (s *Sequence) Reset(start int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next = start
}

// defaultSequence is the process-wide counter used by constructors
// that are not given an explicit sequence. It starts at SequenceStart
// when the package is loaded and only moves forward unless ResetSequence
// is called.
var defaultSequence = NewSequence(SequenceStart)

// DefaultSequence returns the process-wide account sequence
func DefaultSequence() *Sequence {
	return defaultSequence
}

// ResetSequence rewinds the process-wide sequence to SequenceStart.
// Account IDs issued before the reset may be issued again afterwards.
func ResetSequence() {
	defaultSequence.Reset(SequenceStart)
}
