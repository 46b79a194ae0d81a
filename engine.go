package sspe

import "errors"

// KeySource feeds the engine the state of the option/modifier key. The
// host adapts its document-level keyboard stream to this interface;
// tests drive a ManualKeySource directly. The subscription is created
// when the engine is constructed and torn down by Cleanup, because the
// modifier can change while no drag is active.
type KeySource interface {
	// Subscribe registers a callback invoked with true on key-down and
	// false on key-up, and returns a cancel function.
	Subscribe(fn func(pressed bool)) (cancel func())
}

// ManualKeySource is a KeySource driven programmatically. It serves
// hosts without a real keyboard stream and deterministic tests.
type ManualKeySource struct {
	nextID   int
	handlers []keyHandler
}

type keyHandler struct {
	id int
	fn func(bool)
}

// Subscribe implements KeySource.
func (s *ManualKeySource) Subscribe(fn func(pressed bool)) func() {
	s.nextID++
	id := s.nextID
	s.handlers = append(s.handlers, keyHandler{id: id, fn: fn})
	return func() {
		for i := range s.handlers {
			if s.handlers[i].id == id {
				s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
				return
			}
		}
	}
}

// Press reports the modifier key going down.
func (s *ManualKeySource) Press() { s.dispatch(true) }

// Release reports the modifier key going up.
func (s *ManualKeySource) Release() { s.dispatch(false) }

func (s *ManualKeySource) dispatch(pressed bool) {
	for _, h := range s.handlers {
		h.fn(pressed)
	}
}

// EngineOption configures an Engine during creation.
type EngineOption func(*engineOptions)

type engineOptions struct {
	clock Clock
	keys  KeySource
	tol   Tolerances
}

// WithClock sets the timestamp source for velocity estimation.
func WithClock(c Clock) EngineOption {
	return func(o *engineOptions) {
		o.clock = c
	}
}

// WithKeySource sets the modifier-key event source the engine
// subscribes to.
func WithKeySource(s KeySource) EngineOption {
	return func(o *engineOptions) {
		o.keys = s
	}
}

// WithTolerances replaces all policy thresholds at once.
func WithTolerances(t Tolerances) EngineOption {
	return func(o *engineOptions) {
		o.tol = t
	}
}

// WithVelocityThreshold sets the drag speed above which coupling is
// skipped, in coordinate units per second.
func WithVelocityThreshold(limit float64) EngineOption {
	return func(o *engineOptions) {
		o.tol.VelocityLimit = limit
	}
}

// Engine couples the two control handles that meet at a shared path
// anchor while one of them is dragged. All methods must be called from
// a single goroutine, in true event order.
type Engine struct {
	doc        *Document
	clock      Clock
	tol        Tolerances
	session    *dragSession
	optionDown bool
	keyCancel  func()
	listeners  listenerList
}

// NewEngine creates an engine bound to a document. The document is the
// only required collaborator; clock, key source, and tolerances default
// to the wall clock, no modifier source, and DefaultTolerances.
func NewEngine(doc *Document, opts ...EngineOption) (*Engine, error) {
	if doc == nil {
		return nil, errors.New("sspe: nil document")
	}
	o := engineOptions{
		clock: systemClock{},
		tol:   DefaultTolerances(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	e := &Engine{
		doc:   doc,
		clock: o.clock,
		tol:   o.tol,
	}
	if o.keys != nil {
		e.keyCancel = o.keys.Subscribe(e.setModifier)
	}
	return e, nil
}

// setModifier tracks the option/modifier key. Toggling is
// state-affecting, so listeners are notified.
func (e *Engine) setModifier(pressed bool) {
	if e.optionDown == pressed {
		return
	}
	e.optionDown = pressed
	e.notify()
}

// ModifierActive reports whether the option/modifier key is held.
func (e *Engine) ModifierActive() bool {
	return e.optionDown
}

// StartDrag begins a handle drag. The current classification of the
// command is snapshotted as the drag's original type. Ignored, with a
// warning, when the command cannot be classified (unknown id or a
// command without an anchor).
func (e *Engine) StartDrag(id string, handle HandleType, start Point) {
	info := e.classifyAt(id, e.tol.AlignDrag)
	if info == nil {
		Logger().Warn("drag start ignored: command not classifiable", "command", id)
		return
	}
	if e.session != nil {
		Logger().Debug("drag restarted without end", "command", e.session.commandID)
	}
	e.session = &dragSession{
		commandID:    id,
		handle:       handle,
		originalType: info.Classification,
		start:        start,
	}
	e.notify()
}

// UpdateDrag feeds a new target point into the active drag. No-op while
// idle. With the modifier key held, only the dragged handle moves and
// the pair is left broken; otherwise the move is propagated to the
// paired handle per the coupling rules.
func (e *Engine) UpdateDrag(p Point) {
	s := e.session
	if s == nil {
		return
	}
	s.push(p, e.clock.Now())
	if e.optionDown {
		e.doc.UpdateCommand(s.commandID, slotUpdate(s.handle.slot(), p))
		s.originalType = ClassIndependent
		e.notify()
		return
	}
	e.propagate(s.commandID, s.handle, p, s.velocity())
	e.notify()
}

// EndDrag finishes the active drag and discards its sample history.
// No-op while idle. The last-applied geometry stays in place; reverting
// is the host's concern.
func (e *Engine) EndDrag() {
	if e.session == nil {
		return
	}
	e.session = nil
	e.notify()
}

// RefreshForSelection reclassifies the given commands with the static
// threshold, in order, skipping unknown ids. Used by renderers to style
// handle glyphs after the selection or the underlying path changed.
func (e *Engine) RefreshForSelection(ids []string) []*ControlPointInfo {
	infos := make([]*ControlPointInfo, 0, len(ids))
	for _, id := range ids {
		if info := e.Classify(id); info != nil {
			infos = append(infos, info)
		}
	}
	e.notify()
	return infos
}

// SetVelocityThreshold tunes the coupling velocity gate, in coordinate
// units per second.
func (e *Engine) SetVelocityThreshold(limit float64) {
	e.tol.VelocityLimit = limit
}

// VelocityThreshold returns the current velocity gate limit.
func (e *Engine) VelocityThreshold() float64 {
	return e.tol.VelocityLimit
}

// AddListener registers a callback invoked synchronously, in
// registration order, after every state-affecting operation. The
// returned function removes the listener.
func (e *Engine) AddListener(fn func()) (remove func()) {
	id := e.listeners.add(fn)
	return func() {
		e.listeners.remove(id)
	}
}

// Cleanup tears down the modifier-key subscription and drops any
// active drag. The engine must not be used afterwards.
func (e *Engine) Cleanup() {
	if e.keyCancel != nil {
		e.keyCancel()
		e.keyCancel = nil
	}
	e.session = nil
}

func (e *Engine) notify() {
	e.listeners.call()
}
