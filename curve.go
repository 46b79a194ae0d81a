package sspe

// CubicBez represents a cubic Bezier segment from P0 to P3 with
// control points P1 and P2. In command terms: P1 is the command's
// Control1, P2 its Control2, P0 the previous anchor, P3 the command's
// own anchor.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval returns the point on the curve at parameter t in [0, 1],
// using De Casteljau evaluation.
func (c CubicBez) Eval(t float64) Point {
	mt := 1 - t
	a := c.P0.Mul(mt).Add(c.P1.Mul(t))
	b := c.P1.Mul(mt).Add(c.P2.Mul(t))
	d := c.P2.Mul(mt).Add(c.P3.Mul(t))
	ab := a.Mul(mt).Add(b.Mul(t))
	bd := b.Mul(mt).Add(d.Mul(t))
	return ab.Mul(mt).Add(bd.Mul(t))
}

// Flatten samples the curve at steps+1 uniformly spaced parameters,
// including both endpoints. Uniform sampling is enough for glyph-scale
// preview rendering; adaptive subdivision is not needed there.
func (c CubicBez) Flatten(steps int) []Point {
	if steps < 1 {
		steps = 1
	}
	pts := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		pts = append(pts, c.Eval(float64(i)/float64(steps)))
	}
	return pts
}
