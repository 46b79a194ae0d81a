package sspe

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// CommandType identifies one step of a path.
type CommandType int

const (
	CmdMove  CommandType = iota // Start new subpath at Point.
	CmdLine                     // Straight segment to Point.
	CmdCubic                    // Cubic Bezier segment to Point via Control1, Control2.
	CmdClose                    // Close subpath back to its starting point.
)

// String returns a human-readable representation of the command type.
func (t CommandType) String() string {
	switch t {
	case CmdMove:
		return "move"
	case CmdLine:
		return "line"
	case CmdCubic:
		return "cubic-curve"
	case CmdClose:
		return "close"
	default:
		return fmt.Sprintf("CommandType(%d)", int(t))
	}
}

// PathCommand is one step of a path. Point is the command's anchor
// (meaningless for CmdClose). Control1 and Control2 are meaningful only
// for CmdCubic: Control1 shapes the segment leaving the previous anchor,
// Control2 shapes the segment arriving at this command's own anchor.
// Handles exist only on cubic commands; every other type has none.
type PathCommand struct {
	ID       string
	Type     CommandType
	Point    Point
	Control1 Point
	Control2 Point
}

// IsCurve returns true if the command carries control handles.
func (c PathCommand) IsCurve() bool {
	return c.Type == CmdCubic
}

// HandleType names which of a command's two control slots is being
// manipulated. The names follow the editing convention: the outgoing
// handle of a command sits at the command's own anchor (its Control2
// slot); the incoming handle sits at the previous command's anchor
// (its Control1 slot).
type HandleType int

const (
	HandleIncoming HandleType = iota
	HandleOutgoing
)

// String returns a human-readable representation of the handle type.
func (h HandleType) String() string {
	switch h {
	case HandleIncoming:
		return "incoming"
	case HandleOutgoing:
		return "outgoing"
	default:
		return fmt.Sprintf("HandleType(%d)", int(h))
	}
}

// slot maps a dragged handle to the control slot it occupies on its
// own command.
func (h HandleType) slot() ControlSlot {
	if h == HandleIncoming {
		return SlotControl1
	}
	return SlotControl2
}

// ControlSlot names a concrete control-coordinate field of a cubic
// command. Pairing resolution reports the slot that must be written on
// the neighboring command.
type ControlSlot int

const (
	SlotControl1 ControlSlot = iota + 1
	SlotControl2
)

// String returns a human-readable representation of the control slot.
func (s ControlSlot) String() string {
	switch s {
	case SlotControl1:
		return "handle-1"
	case SlotControl2:
		return "handle-2"
	default:
		return fmt.Sprintf("ControlSlot(%d)", int(s))
	}
}

// CommandUpdate is a partial update merged into a command by
// Document.UpdateCommand. Nil fields are left untouched. Control fields
// are ignored on non-curve commands.
type CommandUpdate struct {
	Point    *Point
	Control1 *Point
	Control2 *Point
}

// slotUpdate builds an update writing a single control slot.
func slotUpdate(slot ControlSlot, p Point) CommandUpdate {
	if slot == SlotControl1 {
		return CommandUpdate{Control1: &p}
	}
	return CommandUpdate{Control2: &p}
}

// newID generates a ULID for commands, subpaths, and paths.
func newID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
