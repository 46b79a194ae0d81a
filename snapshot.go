package sspe

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"
)

// Snapshot colors, keyed by classification. Handle glyphs are drawn
// differently per relationship so a snapshot shows at a glance which
// anchors are smooth.
var (
	snapshotBackground  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	snapshotOutline     = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	snapshotAnchor      = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	snapshotIndependent = color.RGBA{R: 200, G: 60, B: 60, A: 255}
	snapshotAligned     = color.RGBA{R: 220, G: 160, B: 40, A: 255}
	snapshotMirrored    = color.RGBA{R: 60, G: 160, B: 80, A: 255}
)

// kappa is the cubic Bezier control point distance for circle
// approximation, 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

const (
	snapshotCurveSteps = 24
	snapshotLineWidth  = 1.5
	snapshotSpokeWidth = 1.0
	snapshotKnobRadius = 3.5
	snapshotAnchorHalf = 3.0
)

func classificationColor(c Classification) color.RGBA {
	switch c {
	case ClassMirrored:
		return snapshotMirrored
	case ClassAligned:
		return snapshotAligned
	default:
		return snapshotIndependent
	}
}

// Snapshot renders the document's paths and handle glyphs to an RGBA
// image. It is a debug and demo renderer: path segments as thin
// polylines, handles as spokes with round knobs colored by
// classification, anchors as dark squares.
func Snapshot(e *Engine, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	fillRect(dst, dst.Bounds(), snapshotBackground)

	for _, p := range e.doc.Paths() {
		for _, sp := range p.SubPaths {
			drawSubPathOutline(dst, sp)
		}
	}
	for _, p := range e.doc.Paths() {
		for _, sp := range p.SubPaths {
			drawSubPathHandles(dst, e, sp)
		}
	}
	return dst
}

func fillRect(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.SetRGBA(x, y, c)
		}
	}
}

// drawSubPathOutline flattens the subpath into polylines and strokes
// them. Close commands connect back to the subpath's starting anchor.
func drawSubPathOutline(dst *image.RGBA, sp *SubPath) {
	var current, start Point
	haveCurrent := false
	for _, cmd := range sp.Commands {
		switch cmd.Type {
		case CmdMove:
			current = cmd.Point
			start = cmd.Point
			haveCurrent = true
		case CmdLine:
			if haveCurrent {
				strokePolyline(dst, []Point{current, cmd.Point}, snapshotLineWidth, snapshotOutline)
			}
			current = cmd.Point
			haveCurrent = true
		case CmdCubic:
			if haveCurrent {
				bez := CubicBez{P0: current, P1: cmd.Control1, P2: cmd.Control2, P3: cmd.Point}
				strokePolyline(dst, bez.Flatten(snapshotCurveSteps), snapshotLineWidth, snapshotOutline)
			}
			current = cmd.Point
			haveCurrent = true
		case CmdClose:
			if haveCurrent {
				strokePolyline(dst, []Point{current, start}, snapshotLineWidth, snapshotOutline)
			}
			current = start
		}
	}
}

func drawSubPathHandles(dst *image.RGBA, e *Engine, sp *SubPath) {
	for i := range sp.Commands {
		cmd := sp.Commands[i]
		if cmd.Type == CmdClose {
			continue
		}
		info := e.Classify(cmd.ID)
		if info == nil {
			continue
		}
		knob := classificationColor(info.Classification)
		if info.Incoming != nil {
			strokePolyline(dst, []Point{info.Anchor, *info.Incoming}, snapshotSpokeWidth, knob)
			fillCircle(dst, *info.Incoming, snapshotKnobRadius, knob)
		}
		if info.Outgoing != nil {
			strokePolyline(dst, []Point{info.Anchor, *info.Outgoing}, snapshotSpokeWidth, knob)
			fillCircle(dst, *info.Outgoing, snapshotKnobRadius, knob)
		}
		fillSquare(dst, info.Anchor, snapshotAnchorHalf, snapshotAnchor)
	}
}

// strokePolyline rasterizes a polyline as a sequence of filled quads,
// one per segment. Good enough for hairline preview strokes; joins are
// left square.
func strokePolyline(dst *image.RGBA, pts []Point, width float64, c color.RGBA) {
	if len(pts) < 2 {
		return
	}
	r := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	half := width / 2
	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		dir := a.To(b).Normalize()
		if dir.IsZero() {
			continue
		}
		// Perpendicular offset on both sides of the segment.
		n := V2(-dir.Y, dir.X).Mul(half)
		q0 := a.Translate(n)
		q1 := b.Translate(n)
		q2 := b.Translate(n.Neg())
		q3 := a.Translate(n.Neg())
		r.MoveTo(float32(q0.X), float32(q0.Y))
		r.LineTo(float32(q1.X), float32(q1.Y))
		r.LineTo(float32(q2.X), float32(q2.Y))
		r.LineTo(float32(q3.X), float32(q3.Y))
		r.ClosePath()
	}
	r.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

// fillCircle rasterizes a filled circle from four kappa-scaled cubic
// segments.
func fillCircle(dst *image.RGBA, center Point, radius float64, c color.RGBA) {
	r := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	cx, cy := float32(center.X), float32(center.Y)
	rad := float32(radius)
	k := float32(kappa) * rad
	r.MoveTo(cx+rad, cy)
	r.CubeTo(cx+rad, cy+k, cx+k, cy+rad, cx, cy+rad)
	r.CubeTo(cx-k, cy+rad, cx-rad, cy+k, cx-rad, cy)
	r.CubeTo(cx-rad, cy-k, cx-k, cy-rad, cx, cy-rad)
	r.CubeTo(cx+k, cy-rad, cx+rad, cy-k, cx+rad, cy)
	r.ClosePath()
	r.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

func fillSquare(dst *image.RGBA, center Point, half float64, c color.RGBA) {
	r := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	x0, y0 := float32(center.X-half), float32(center.Y-half)
	x1, y1 := float32(center.X+half), float32(center.Y+half)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.ClosePath()
	r.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}
