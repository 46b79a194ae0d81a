package sspe

import "math"

// propagate applies one drag frame. The dragged handle is written
// unconditionally; the paired handle is then updated according to the
// pair's current geometry, unless a gate suppresses coupling for this
// frame. Any lookup failure aborts only the secondary update: the
// primary write is never rolled back, and nothing is reported to the
// caller beyond a debug log line.
func (e *Engine) propagate(id string, handle HandleType, newPoint Point, velocity float64) {
	e.doc.UpdateCommand(id, slotUpdate(handle.slot(), newPoint))

	pair := findPairedHandle(e.doc, id, handle)
	if pair == nil {
		return
	}

	// Fast flicks are imprecise; whipping the paired handle around at
	// high pointer speed reads as glitching, not as smooth editing.
	if velocity > e.tol.VelocityLimit {
		Logger().Debug("coupling skipped: velocity gate",
			"command", id, "velocity", velocity)
		return
	}

	alignCos := e.tol.AlignDrag
	if grid := e.doc.Grid(); grid.Enabled {
		if grid.CellSize > e.tol.GridCutoff {
			Logger().Debug("coupling skipped: grid cell too coarse",
				"command", id, "cellSize", grid.CellSize)
			return
		}
		alignCos = e.tol.AlignGrid
	}

	current, ok := e.doc.controlAt(pair.CommandID, pair.Slot)
	if !ok {
		Logger().Debug("coupling skipped: paired handle unavailable",
			"command", pair.CommandID)
		return
	}

	// Both vectors originate at the shared anchor, not at either
	// command's own anchor.
	dragged := pair.Anchor.To(newPoint)
	paired := pair.Anchor.To(current)
	ld := dragged.Length()
	lp := paired.Length()
	if ld == 0 || lp == 0 {
		return
	}
	if dragged.Mul(1/ld).Dot(paired.Mul(1/lp).Neg()) < alignCos {
		// The pair is broken for now; it re-couples only if the drag
		// brings the handles back into alignment.
		return
	}

	length := lp
	if math.Min(ld, lp)/math.Max(ld, lp) > e.tol.MirrorRatio {
		length = ld
	}
	target := pair.Anchor.Translate(dragged.Mul(1 / ld).Neg().Mul(length))
	e.doc.UpdateCommand(pair.CommandID, slotUpdate(pair.Slot, target))
}
