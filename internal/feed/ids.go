package feed

import (
	"sync"
	"time"
)

// IDSource hands out strictly increasing post ids. Ids follow the wall clock
// in milliseconds but never repeat or go backwards, even for several posts in
// the same millisecond or after a clock step back.
type IDSource struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewIDSource returns an IDSource that issues ids above floor.
func NewIDSource(floor int64) *IDSource {
	return &IDSource{last: floor, now: time.Now}
}

// Next returns a fresh id.
func (s *IDSource) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
