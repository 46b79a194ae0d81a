package sspe

import (
	"fmt"
	"math"
)

// Classification describes the relationship between the two handles
// flanking an anchor.
type Classification int

const (
	// ClassIndependent indicates handles with no directional constraint
	// relative to each other (or fewer than two handles).
	ClassIndependent Classification = iota

	// ClassAligned indicates handles pointing in opposite directions
	// through the anchor but of different lengths.
	ClassAligned

	// ClassMirrored indicates handles of equal length pointing in
	// opposite directions through the anchor.
	ClassMirrored
)

// String returns a human-readable representation of the classification.
func (c Classification) String() string {
	switch c {
	case ClassIndependent:
		return "independent"
	case ClassAligned:
		return "aligned"
	case ClassMirrored:
		return "mirrored"
	default:
		return fmt.Sprintf("Classification(%d)", int(c))
	}
}

// ControlPointInfo describes an anchor and the handles flanking it.
// It is derived on demand from the command sequence and never stored;
// Incoming and Outgoing are nil when the corresponding neighbor carries
// no handle. Incoming is the handle of the curve arriving at the
// anchor (the command's own Control2); Outgoing is the handle of the
// curve leaving it (the next command's Control1).
type ControlPointInfo struct {
	CommandID      string
	Anchor         Point
	Incoming       *Point
	Outgoing       *Point
	Classification Classification

	// Breakable reports whether both handles exist, so the pair can be
	// broken into independence with the modifier key.
	Breakable bool
}

// Tolerances holds the policy knobs of the coupling engine. Alignment
// thresholds are cosines of the maximum angular deviation from a
// straight tangent through the anchor.
type Tolerances struct {
	// AlignStatic is the alignment threshold for static (non-drag)
	// classification.
	AlignStatic float64

	// AlignDrag is the looser alignment threshold used while a drag is
	// re-evaluated live.
	AlignDrag float64

	// AlignGrid is the loosest threshold, used while grid snapping is
	// active: snapped positions quantize away fine alignment signals.
	AlignGrid float64

	// MirrorRatio is the minimum ratio of the shorter to the longer
	// handle for a pair to count as mirrored rather than aligned.
	MirrorRatio float64

	// VelocityLimit is the drag speed, in coordinate units per second,
	// above which coupling is skipped for the frame.
	VelocityLimit float64

	// GridCutoff is the grid cell size above which coupling is skipped
	// entirely while snapping is active.
	GridCutoff float64
}

// DefaultTolerances returns the engine's default policy values.
func DefaultTolerances() Tolerances {
	return Tolerances{
		AlignStatic:   math.Cos(10 * math.Pi / 180),
		AlignDrag:     math.Cos(15 * math.Pi / 180),
		AlignGrid:     math.Cos(32 * math.Pi / 180),
		MirrorRatio:   0.9,
		VelocityLimit: 800,
		GridCutoff:    50,
	}
}

// classifyVectors classifies the relationship between two anchor-to-handle
// displacement vectors. The dot product of one normalized vector against
// the negation of the other equals 1 when the handles point in exactly
// opposite directions; alignCos is the acceptance threshold. A zero-length
// vector cannot be normalized and is independent by definition.
func classifyVectors(in, out Vec2, alignCos, mirrorRatio float64) Classification {
	li := in.Length()
	lo := out.Length()
	if li == 0 || lo == 0 {
		return ClassIndependent
	}
	dot := in.Mul(1 / li).Dot(out.Mul(1 / lo).Neg())
	if dot < alignCos {
		return ClassIndependent
	}
	if math.Min(li, lo)/math.Max(li, lo) > mirrorRatio {
		return ClassMirrored
	}
	return ClassAligned
}

// Classify derives the control point info for the anchor of the given
// command, using the static alignment threshold. Returns nil if the id
// is unknown or the command has no anchor (close commands).
//
// The anchor of command N sits between the curve stored on N itself
// (incoming side) and the curve stored on N+1 (outgoing side); a side
// contributes a handle only when that command is a cubic curve.
func (e *Engine) Classify(id string) *ControlPointInfo {
	return e.classifyAt(id, e.tol.AlignStatic)
}

func (e *Engine) classifyAt(id string, alignCos float64) *ControlPointInfo {
	sub, idx, ok := e.doc.FindCommand(id)
	if !ok {
		return nil
	}
	cmd := sub.Commands[idx]
	if cmd.Type == CmdClose {
		return nil
	}
	info := &ControlPointInfo{
		CommandID:      id,
		Anchor:         cmd.Point,
		Classification: ClassIndependent,
	}
	if cmd.IsCurve() {
		in := cmd.Control2
		info.Incoming = &in
	}
	if idx+1 < len(sub.Commands) && sub.Commands[idx+1].IsCurve() {
		out := sub.Commands[idx+1].Control1
		info.Outgoing = &out
	}
	if info.Incoming == nil || info.Outgoing == nil {
		return info
	}
	info.Breakable = true
	info.Classification = classifyVectors(
		info.Anchor.To(*info.Incoming),
		info.Anchor.To(*info.Outgoing),
		alignCos, e.tol.MirrorRatio,
	)
	return info
}
