// Package sspe implements the interactive-editing engine of a vector
// path editor: the component that decides how the two Bezier control
// handles meeting at a shared anchor behave while one of them is
// dragged.
//
// # Overview
//
// A cubic path command carries two control points. The handle pair
// around an anchor is split across two adjacent commands: the curve
// arriving at the anchor stores one half, the curve leaving it stores
// the other. The engine classifies each anchor's pair as independent,
// aligned, or mirrored, and propagates handle drags to the paired
// handle according to that relationship, the way "smooth anchor"
// editing works in professional vector tools.
//
// # Quick Start
//
//	doc := sspe.NewDocument()
//	sp := doc.AddPath().AddSubPath()
//	sp.MoveTo(sspe.Pt(-30, 0))
//	c1 := sp.CubicTo(sspe.Pt(-20, 10), sspe.Pt(10, 0), sspe.Pt(0, 0))
//	sp.CubicTo(sspe.Pt(-10, 0), sspe.Pt(20, 10), sspe.Pt(30, 0))
//
//	engine, _ := sspe.NewEngine(doc)
//	engine.StartDrag(c1, sspe.HandleOutgoing, sspe.Pt(10, 0))
//	engine.UpdateDrag(sspe.Pt(8, 6))
//	engine.EndDrag()
//
// # Architecture
//
// The engine is a pure in-process component. It owns no rendering and
// no undo history; the host feeds it pointer events it has already
// resolved to handle drags, and subscribes via AddListener to learn
// when to re-render. Handle relationships are derived on demand from
// the command sequence and never cached, so they cannot desynchronize
// from the underlying path data.
//
// All engine methods are synchronous and must be called from a single
// goroutine; events are expected in true temporal order (StartDrag
// before UpdateDrag, UpdateDrag before EndDrag). A stray UpdateDrag
// while idle is a no-op.
//
// # Coordinate System
//
// Standard computer graphics coordinates: origin top-left, X right,
// Y down. Angles in radians. Velocities are in coordinate units per
// second.
package sspe
