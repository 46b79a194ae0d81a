package sspe

import (
	"testing"
	"time"
)

func TestNewEngine_NilDocument(t *testing.T) {
	if _, err := NewEngine(nil); err == nil {
		t.Fatal("expected an error for a nil document")
	}
}

func TestStartDrag_UnknownCommand(t *testing.T) {
	doc := NewDocument()
	c1, c2 := buildAnchorPair(doc, Pt(0, 0), Pt(10, 0), Pt(-10, 0))
	e := newTestEngine(t, doc)

	e.StartDrag("missing", HandleOutgoing, Pt(10, 0))
	// No session was opened, so the move must not land anywhere.
	e.UpdateDrag(Pt(0, 20))

	if got := control(t, doc, c1, SlotControl2); !got.Approx(Pt(10, 0), 1e-10) {
		t.Errorf("handle moved to %v after a failed drag start", got)
	}
	if got := control(t, doc, c2, SlotControl1); !got.Approx(Pt(-10, 0), 1e-10) {
		t.Errorf("paired handle moved to %v after a failed drag start", got)
	}
}

func TestModifierBreaksCoupling(t *testing.T) {
	doc := NewDocument()
	c1, c2 := buildAnchorPair(doc, Pt(0, 0), Pt(10, 0), Pt(-10, 0))
	keys := &ManualKeySource{}
	clock := newFakeClock()
	e := newTestEngine(t, doc, WithClock(clock), WithKeySource(keys))
	defer e.Cleanup()

	keys.Press()
	if !e.ModifierActive() {
		t.Fatal("modifier not tracked")
	}

	e.StartDrag(c1, HandleOutgoing, Pt(10, 0))
	clock.advance(16 * time.Millisecond)
	e.UpdateDrag(Pt(0, 20))
	e.EndDrag()
	keys.Release()

	if got := control(t, doc, c1, SlotControl2); !got.Approx(Pt(0, 20), 1e-10) {
		t.Errorf("dragged handle = %v, want (0, 20)", got)
	}
	if got := control(t, doc, c2, SlotControl1); !got.Approx(Pt(-10, 0), 1e-10) {
		t.Errorf("paired handle = %v, want untouched (-10, 0)", got)
	}
	info := e.Classify(c1)
	if info == nil || info.Classification != ClassIndependent {
		t.Errorf("broken anchor must reclassify as independent, got %+v", info)
	}
}

func TestModifierReleaseMidDrag(t *testing.T) {
	doc := NewDocument()
	c1, c2 := buildAnchorPair(doc, Pt(0, 0), Pt(10, 0), Pt(-10, 0))
	keys := &ManualKeySource{}
	clock := newFakeClock()
	e := newTestEngine(t, doc, WithClock(clock), WithKeySource(keys))
	defer e.Cleanup()

	e.StartDrag(c1, HandleOutgoing, Pt(10, 0))
	keys.Press()
	clock.advance(16 * time.Millisecond)
	e.UpdateDrag(Pt(0, 20))
	keys.Release()

	// The pair is now perpendicular; without the modifier the coupling
	// stays broken until alignment is re-achieved.
	clock.advance(16 * time.Millisecond)
	e.UpdateDrag(Pt(-1, 20))
	e.EndDrag()

	if got := control(t, doc, c2, SlotControl1); !got.Approx(Pt(-10, 0), 1e-10) {
		t.Errorf("paired handle = %v, want still broken at (-10, 0)", got)
	}
}

func TestModifierToggleNotifies(t *testing.T) {
	keys := &ManualKeySource{}
	e := newTestEngine(t, NewDocument(), WithKeySource(keys))
	defer e.Cleanup()

	calls := 0
	e.AddListener(func() { calls++ })

	keys.Press()
	keys.Press() // repeat key events must not re-notify
	keys.Release()

	if calls != 2 {
		t.Errorf("modifier toggles notified %d times, want 2", calls)
	}
}

func TestObserver_OrderAndRemoval(t *testing.T) {
	doc := NewDocument()
	c1, _ := buildAnchorPair(doc, Pt(0, 0), Pt(10, 0), Pt(-10, 0))
	e := newTestEngine(t, doc)

	var order []string
	e.AddListener(func() { order = append(order, "a") })
	removeB := e.AddListener(func() { order = append(order, "b") })
	e.AddListener(func() { order = append(order, "c") })

	e.RefreshForSelection([]string{c1})
	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Fatalf("notification order = %v, want [a b c]", order)
	}

	order = nil
	removeB()
	removeB() // removing twice is harmless
	e.RefreshForSelection([]string{c1})
	if len(order) != 2 || order[0] != "a" || order[1] != "c" {
		t.Errorf("after removal order = %v, want [a c]", order)
	}
}

func TestRefreshForSelection(t *testing.T) {
	doc := NewDocument()
	c1, c2 := buildAnchorPair(doc, Pt(0, 0), Pt(10, 0), Pt(-10, 0))
	e := newTestEngine(t, doc)

	infos := e.RefreshForSelection([]string{c1, "missing", c2})
	if len(infos) != 2 {
		t.Fatalf("got %d infos, want 2 (unknown ids skipped)", len(infos))
	}
	if infos[0].CommandID != c1 || infos[1].CommandID != c2 {
		t.Errorf("infos out of order: %s, %s", infos[0].CommandID, infos[1].CommandID)
	}
	if infos[0].Classification != ClassMirrored {
		t.Errorf("classification = %v, want mirrored", infos[0].Classification)
	}
}

func TestVelocityThresholdAccessors(t *testing.T) {
	e := newTestEngine(t, NewDocument())
	if got := e.VelocityThreshold(); got != DefaultTolerances().VelocityLimit {
		t.Errorf("default threshold = %v", got)
	}
	e.SetVelocityThreshold(250)
	if got := e.VelocityThreshold(); got != 250 {
		t.Errorf("threshold = %v, want 250", got)
	}
}

func TestCleanup(t *testing.T) {
	doc := NewDocument()
	c1, _ := buildAnchorPair(doc, Pt(0, 0), Pt(10, 0), Pt(-10, 0))
	keys := &ManualKeySource{}
	e := newTestEngine(t, doc, WithKeySource(keys))

	e.StartDrag(c1, HandleOutgoing, Pt(10, 0))
	e.Cleanup()

	keys.Press()
	if e.ModifierActive() {
		t.Error("key events must not reach the engine after Cleanup")
	}

	// The drag session is gone as well.
	calls := 0
	e.AddListener(func() { calls++ })
	e.UpdateDrag(Pt(0, 20))
	if calls != 0 {
		t.Errorf("update after Cleanup notified %d listeners, want 0", calls)
	}
}
