package sspe

import (
	"testing"
	"time"
)

// fakeClock is a manually advanced Clock so velocity estimation is
// deterministic in tests.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// buildAnchorPair builds a subpath [M, C, C] whose middle anchor sits
// at anchor with flanking handles h1 (stored on the first curve's
// Control2) and h2 (stored on the second curve's Control1). Returns the
// ids of the two curve commands.
func buildAnchorPair(doc *Document, anchor, h1, h2 Point) (c1, c2 string) {
	sp := doc.AddPath().AddSubPath()
	sp.MoveTo(anchor.Add(Pt(-40, 0)))
	c1 = sp.CubicTo(anchor.Add(Pt(-30, 10)), h1, anchor)
	c2 = sp.CubicTo(h2, anchor.Add(Pt(30, 10)), anchor.Add(Pt(40, 0)))
	return c1, c2
}

func newTestEngine(t *testing.T, doc *Document, opts ...EngineOption) *Engine {
	t.Helper()
	e, err := NewEngine(doc, opts...)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

// control reads a control slot or fails the test.
func control(t *testing.T, doc *Document, id string, slot ControlSlot) Point {
	t.Helper()
	p, ok := doc.controlAt(id, slot)
	if !ok {
		t.Fatalf("no control %v on command %s", slot, id)
	}
	return p
}
