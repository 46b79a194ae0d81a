package sspe

// GridSettings holds the host's grid-snapping configuration. The engine
// only reads it: snapping itself happens upstream, but active snapping
// changes how aggressively handle coupling applies.
type GridSettings struct {
	Enabled  bool
	CellSize float64
}

// SubPath is an ordered, mutable sequence of commands.
type SubPath struct {
	ID       string
	Commands []PathCommand
}

// MoveTo appends a move command and returns its id.
func (sp *SubPath) MoveTo(p Point) string {
	return sp.append(PathCommand{ID: newID(), Type: CmdMove, Point: p})
}

// LineTo appends a line command and returns its id.
func (sp *SubPath) LineTo(p Point) string {
	return sp.append(PathCommand{ID: newID(), Type: CmdLine, Point: p})
}

// CubicTo appends a cubic curve command and returns its id.
func (sp *SubPath) CubicTo(c1, c2, p Point) string {
	return sp.append(PathCommand{
		ID:       newID(),
		Type:     CmdCubic,
		Point:    p,
		Control1: c1,
		Control2: c2,
	})
}

// Close appends a close command and returns its id.
func (sp *SubPath) Close() string {
	return sp.append(PathCommand{ID: newID(), Type: CmdClose})
}

func (sp *SubPath) append(c PathCommand) string {
	sp.Commands = append(sp.Commands, c)
	return c.ID
}

// Path is an ordered collection of subpaths.
type Path struct {
	ID       string
	SubPaths []*SubPath
}

// AddSubPath appends a new empty subpath.
func (p *Path) AddSubPath() *SubPath {
	sp := &SubPath{ID: newID()}
	p.SubPaths = append(p.SubPaths, sp)
	return sp
}

// Document is the in-memory path store the engine operates on: ordered
// paths, the current selection, and grid configuration. It is the
// concrete host data context; mutation goes through UpdateCommand so
// partial coordinate updates merge instead of replacing commands.
//
// Document is not safe for concurrent use. The engine assumes
// single-writer access during an active drag.
type Document struct {
	paths     []*Path
	selection map[string]bool
	grid      GridSettings
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{selection: make(map[string]bool)}
}

// AddPath appends a new empty path.
func (d *Document) AddPath() *Path {
	p := &Path{ID: newID()}
	d.paths = append(d.paths, p)
	return p
}

// Paths returns the ordered paths of the document.
func (d *Document) Paths() []*Path {
	return d.paths
}

// FindCommand locates a command by id across all paths and subpaths.
// Returns the owning subpath and the command's index within it.
func (d *Document) FindCommand(id string) (*SubPath, int, bool) {
	for _, p := range d.paths {
		for _, sp := range p.SubPaths {
			for i := range sp.Commands {
				if sp.Commands[i].ID == id {
					return sp, i, true
				}
			}
		}
	}
	return nil, 0, false
}

// Command returns a copy of the command with the given id.
func (d *Document) Command(id string) (PathCommand, bool) {
	sp, i, ok := d.FindCommand(id)
	if !ok {
		return PathCommand{}, false
	}
	return sp.Commands[i], true
}

// UpdateCommand merges the non-nil fields of the update into the
// command with the given id. Control fields are silently dropped for
// commands that carry no handles. Returns false if the id is unknown.
func (d *Document) UpdateCommand(id string, u CommandUpdate) bool {
	sp, i, ok := d.FindCommand(id)
	if !ok {
		return false
	}
	cmd := &sp.Commands[i]
	if u.Point != nil && cmd.Type != CmdClose {
		cmd.Point = *u.Point
	}
	if cmd.IsCurve() {
		if u.Control1 != nil {
			cmd.Control1 = *u.Control1
		}
		if u.Control2 != nil {
			cmd.Control2 = *u.Control2
		}
	}
	return true
}

// controlAt reads the given control slot of a command. Returns false if
// the command is unknown or carries no handles.
func (d *Document) controlAt(id string, slot ControlSlot) (Point, bool) {
	cmd, ok := d.Command(id)
	if !ok || !cmd.IsCurve() {
		return Point{}, false
	}
	if slot == SlotControl1 {
		return cmd.Control1, true
	}
	return cmd.Control2, true
}

// Select adds a command id to the selection.
func (d *Document) Select(id string) {
	d.selection[id] = true
}

// Deselect removes a command id from the selection.
func (d *Document) Deselect(id string) {
	delete(d.selection, id)
}

// ClearSelection empties the selection.
func (d *Document) ClearSelection() {
	d.selection = make(map[string]bool)
}

// IsSelected reports whether a command id is selected.
func (d *Document) IsSelected(id string) bool {
	return d.selection[id]
}

// SelectedIDs returns the selected command ids in document order.
func (d *Document) SelectedIDs() []string {
	var ids []string
	for _, p := range d.paths {
		for _, sp := range p.SubPaths {
			for i := range sp.Commands {
				if d.selection[sp.Commands[i].ID] {
					ids = append(ids, sp.Commands[i].ID)
				}
			}
		}
	}
	return ids
}

// Grid returns the grid configuration.
func (d *Document) Grid() GridSettings {
	return d.grid
}

// SetGrid replaces the grid configuration.
func (d *Document) SetGrid(g GridSettings) {
	d.grid = g
}
