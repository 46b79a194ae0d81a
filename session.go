package sspe

import "time"

// Clock supplies timestamps for velocity estimation. The engine uses
// the wall clock by default; tests inject a synthetic clock so both
// sides of the velocity gate can be exercised deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// dragSampleCap bounds the rolling sample buffer. Five samples cover
// enough pointer history to smooth instantaneous velocity without
// lagging behind direction changes.
const dragSampleCap = 5

type dragSample struct {
	point Point
	at    time.Time
}

// dragSession tracks one in-progress handle drag. It exists only
// between StartDrag and EndDrag and is never serialized.
type dragSession struct {
	commandID    string
	handle       HandleType
	originalType Classification
	start        Point
	samples      []dragSample
}

// push appends a sample, evicting the oldest once the buffer is full.
func (s *dragSession) push(p Point, at time.Time) {
	if len(s.samples) == dragSampleCap {
		copy(s.samples, s.samples[1:])
		s.samples = s.samples[:dragSampleCap-1]
	}
	s.samples = append(s.samples, dragSample{point: p, at: at})
}

// velocity estimates the drag speed in coordinate units per second:
// the straight-line distance between the oldest and newest sample over
// the elapsed time. Returns 0 with fewer than two samples or a
// non-positive elapsed interval.
func (s *dragSession) velocity() float64 {
	if len(s.samples) < 2 {
		return 0
	}
	first := s.samples[0]
	last := s.samples[len(s.samples)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return first.point.Distance(last.point) / dt
}
