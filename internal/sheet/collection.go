package sheet

// Source tells subscribers where a write came from.
type Source int

const (
	// SourceLoad writes come from seeding and never count as edits.
	SourceLoad Source = iota
	SourceEdit
	// SourceDerived writes are recomputed fields. They must not be fed back
	// into Engine.
	SourceDerived
	// SourceStructure marks row inserts and removals.
	SourceStructure
)

func (s Source) String() string {
	switch s {
	case SourceLoad:
		return "load"
	case SourceEdit:
		return "edit"
	case SourceDerived:
		return "derived"
	case SourceStructure:
		return "structure"
	default:
		return "unknown"
	}
}

// Change describes one write. Field is empty for structure changes.
type Change struct {
	Row    int
	Field  FieldID
	Source Source
}

// Collection is the ordered row set shared by every surface. It always ends
// with one blank spare row. Writes go through Engine.
type Collection struct {
	rows        []Row
	modified    []bool
	edits       int
	subscribers []func(Change)
}

func NewCollection() *Collection {
	c := &Collection{}
	c.ensureSpare()
	return c
}

func (c *Collection) Len() int {
	return len(c.rows)
}

// Row returns a copy of row i.
func (c *Collection) Row(i int) Row {
	if i < 0 || i >= len(c.rows) {
		return Row{}
	}
	return c.rows[i].Clone()
}

// Rows returns copies of every row, spare row included.
func (c *Collection) Rows() []Row {
	out := make([]Row, len(c.rows))
	for i, r := range c.rows {
		out[i] = r.Clone()
	}
	return out
}

func (c *Collection) Value(i int, id FieldID) any {
	if i < 0 || i >= len(c.rows) {
		return nil
	}
	return c.rows[i][id]
}

func (c *Collection) Text(i int, id FieldID) string {
	if i < 0 || i >= len(c.rows) {
		return ""
	}
	return c.rows[i].Text(id)
}

// Modified reports whether row i has been edited by the user since load.
func (c *Collection) Modified(i int) bool {
	return i >= 0 && i < len(c.modified) && c.modified[i]
}

// EditCount is the number of user edits applied so far.
func (c *Collection) EditCount() int {
	return c.edits
}

// Subscribe registers fn to be called synchronously after every write.
func (c *Collection) Subscribe(fn func(Change)) {
	c.subscribers = append(c.subscribers, fn)
}

func (c *Collection) inRange(i int) bool {
	return i >= 0 && i < len(c.rows)
}

func (c *Collection) set(i int, id FieldID, v any, src Source) {
	c.rows[i][id] = v
	if src == SourceEdit {
		c.modified[i] = true
		c.edits++
	}
	c.notify(Change{Row: i, Field: id, Source: src})
	if src == SourceEdit && i == len(c.rows)-1 {
		c.ensureSpare()
	}
}

func (c *Collection) reset(rows []Row) {
	c.rows = c.rows[:0]
	c.modified = c.modified[:0]
	c.edits = 0
	for _, r := range rows {
		c.rows = append(c.rows, r.Clone())
		c.modified = append(c.modified, false)
	}
	c.ensureSpare()
}

func (c *Collection) insert(at int) {
	c.rows = append(c.rows, nil)
	copy(c.rows[at+1:], c.rows[at:])
	c.rows[at] = blankRow()

	c.modified = append(c.modified, false)
	copy(c.modified[at+1:], c.modified[at:])
	c.modified[at] = false

	c.notify(Change{Row: at, Source: SourceStructure})
}

func (c *Collection) remove(at int) {
	c.rows = append(c.rows[:at], c.rows[at+1:]...)
	c.modified = append(c.modified[:at], c.modified[at+1:]...)
	c.notify(Change{Row: at, Source: SourceStructure})
	c.ensureSpare()
}

// ensureSpare appends a blank row unless the last row is already blank.
func (c *Collection) ensureSpare() {
	if n := len(c.rows); n > 0 && c.rows[n-1].Blank() {
		return
	}
	c.rows = append(c.rows, blankRow())
	c.modified = append(c.modified, false)
	c.notify(Change{Row: len(c.rows) - 1, Source: SourceStructure})
}

func (c *Collection) notify(ch Change) {
	for _, fn := range c.subscribers {
		fn(ch)
	}
}

func blankRow() Row {
	return Row{FieldRate: float64(0)}
}
