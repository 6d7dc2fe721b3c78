package sheet

import (
	"fmt"

	"go.uber.org/zap"
)

// DefaultHourlyRate is the rate an estimate hour is billed at.
const DefaultHourlyRate = 500

// Engine is the single mutation entry point for a Collection. It applies
// edits and keeps derived fields in step with the fields they depend on.
type Engine struct {
	rows       *Collection
	hourlyRate float64
	log        *zap.Logger
}

func NewEngine(rows *Collection, hourlyRate float64, log *zap.Logger) *Engine {
	if rows == nil {
		rows = NewCollection()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{rows: rows, hourlyRate: hourlyRate, log: log}
}

func (e *Engine) Rows() *Collection {
	return e.rows
}

func (e *Engine) HourlyRate() float64 {
	return e.hourlyRate
}

// Rate is the billed amount for an estimate clock value.
func (e *Engine) Rate(est string) float64 {
	return ClockHours(est) * e.hourlyRate
}

// Load replaces the collection with seed and derives every row's rate. Load
// writes are not counted as edits.
func (e *Engine) Load(seed []Row) {
	e.rows.reset(seed)
	for i := range e.rows.rows {
		e.derive(i, SourceLoad)
	}
	e.log.Debug("rows loaded", zap.Int("rows", len(seed)))
}

// OnFieldEdited applies a user edit to row i and recomputes anything that
// depends on the edited field.
func (e *Engine) OnFieldEdited(i int, id FieldID, value any) error {
	f, ok := fields[id]
	if !ok {
		return fmt.Errorf("edit %q: %w", id, ErrUnknownField)
	}
	if f.ReadOnly {
		return fmt.Errorf("edit %q: %w", id, ErrReadOnlyField)
	}
	if !e.rows.inRange(i) {
		return fmt.Errorf("edit row %d: %w", i, ErrRowOutOfRange)
	}

	e.rows.set(i, id, value, SourceEdit)
	if id == FieldEst {
		e.derive(i, SourceDerived)
	}
	return nil
}

// derive writes row i's rate from its estimate. It writes straight to the
// collection so the rate write never re-enters OnFieldEdited.
func (e *Engine) derive(i int, src Source) {
	est := e.rows.rows[i].Text(FieldEst)
	rate := e.Rate(est)
	e.rows.set(i, FieldRate, rate, src)

	if src == SourceDerived {
		e.log.Debug("rate derived",
			zap.Int("row", i),
			zap.String("est", est),
			zap.Float64("rate", rate))
	}
}

// InsertAbove adds a blank row before row i.
func (e *Engine) InsertAbove(i int) error {
	if !e.rows.inRange(i) {
		return fmt.Errorf("insert above row %d: %w", i, ErrRowOutOfRange)
	}
	e.rows.insert(i)
	e.log.Debug("row inserted", zap.Int("row", i))
	return nil
}

// InsertBelow adds a blank row after row i.
func (e *Engine) InsertBelow(i int) error {
	if !e.rows.inRange(i) {
		return fmt.Errorf("insert below row %d: %w", i, ErrRowOutOfRange)
	}
	e.rows.insert(i + 1)
	e.log.Debug("row inserted", zap.Int("row", i+1))
	return nil
}

// RemoveRow deletes row i. Removing the spare row just puts a new one back.
func (e *Engine) RemoveRow(i int) error {
	if !e.rows.inRange(i) {
		return fmt.Errorf("remove row %d: %w", i, ErrRowOutOfRange)
	}
	e.rows.remove(i)
	e.log.Debug("row removed", zap.Int("row", i))
	return nil
}
