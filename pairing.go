package sspe

// PairedHandle identifies the logical other half of a handle pair. The
// two halves describe the same anchor but live on adjacent commands, so
// the pair of a handle is never found on its own command.
type PairedHandle struct {
	// CommandID is the neighboring command that stores the paired handle.
	CommandID string

	// Handle is the role the paired handle plays on its own command.
	Handle HandleType

	// Anchor is the shared anchor coordinate: always the anchor of the
	// earlier of the two commands in the pair.
	Anchor Point

	// Slot is the concrete control slot that must be written on
	// CommandID to move the paired handle.
	Slot ControlSlot
}

// findPairedHandle resolves the paired handle for a handle being
// manipulated. The outgoing handle of command N (at N's own anchor)
// pairs with the incoming handle of command N+1; the incoming handle of
// command N (at the previous anchor) pairs with the outgoing handle of
// command N-1. Returns nil at subpath boundaries, when the neighbor is
// not a curve, or when the id is unknown.
func findPairedHandle(doc *Document, id string, handle HandleType) *PairedHandle {
	sub, idx, ok := doc.FindCommand(id)
	if !ok {
		return nil
	}
	if !sub.Commands[idx].IsCurve() {
		return nil
	}
	switch handle {
	case HandleOutgoing:
		if idx+1 >= len(sub.Commands) {
			return nil
		}
		next := sub.Commands[idx+1]
		if !next.IsCurve() {
			return nil
		}
		return &PairedHandle{
			CommandID: next.ID,
			Handle:    HandleIncoming,
			Anchor:    sub.Commands[idx].Point,
			Slot:      SlotControl1,
		}
	case HandleIncoming:
		if idx == 0 {
			return nil
		}
		prev := sub.Commands[idx-1]
		if !prev.IsCurve() {
			return nil
		}
		return &PairedHandle{
			CommandID: prev.ID,
			Handle:    HandleOutgoing,
			Anchor:    prev.Point,
			Slot:      SlotControl2,
		}
	}
	return nil
}
