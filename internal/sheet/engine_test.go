package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRows() []Row {
	return []Row{
		{FieldTask: "Draft proposal", FieldEst: "01:00", FieldMainType: "Invoceable"},
		{FieldTask: "Client call", FieldEst: "00:30", FieldUnplan: true},
		{FieldTask: "Review"},
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := NewEngine(NewCollection(), DefaultHourlyRate, nil)
	e.Load(seedRows())
	return e
}

func TestLoadDerivesRates(t *testing.T) {
	e := newTestEngine(t)
	rows := e.Rows()

	assert.Equal(t, 500.0, rows.Value(0, FieldRate))
	assert.Equal(t, 250.0, rows.Value(1, FieldRate))
	assert.Equal(t, 0.0, rows.Value(2, FieldRate))

	assert.Equal(t, 0, rows.EditCount())
	for i := 0; i < rows.Len(); i++ {
		assert.False(t, rows.Modified(i), "row %d", i)
	}
}

func TestLoadKeepsSpareRow(t *testing.T) {
	e := newTestEngine(t)
	rows := e.Rows()

	require.Equal(t, 4, rows.Len())
	assert.True(t, rows.Row(3).Blank())
	assert.Equal(t, 0.0, rows.Value(3, FieldRate))
}

func TestEditEstimateDerivesRate(t *testing.T) {
	e := newTestEngine(t)
	rows := e.Rows()

	require.NoError(t, e.OnFieldEdited(1, FieldEst, "02:30"))
	assert.Equal(t, 1250.0, rows.Value(1, FieldRate))

	// other rows untouched
	assert.Equal(t, 500.0, rows.Value(0, FieldRate))
	assert.Equal(t, 0.0, rows.Value(2, FieldRate))

	assert.True(t, rows.Modified(1))
	assert.False(t, rows.Modified(0))
	assert.Equal(t, 1, rows.EditCount())
}

func TestEditEstimateAcceptsOffGridMinutes(t *testing.T) {
	e := newTestEngine(t)

	require.NoError(t, e.OnFieldEdited(0, FieldEst, "00:07"))
	assert.InDelta(t, 7.0/60*500, e.Rows().Value(0, FieldRate), 1e-9)
}

func TestEditEstimateEmptyOrMalformed(t *testing.T) {
	e := newTestEngine(t)

	require.NoError(t, e.OnFieldEdited(0, FieldEst, ""))
	assert.Equal(t, 0.0, e.Rows().Value(0, FieldRate))

	require.NoError(t, e.OnFieldEdited(1, FieldEst, "later"))
	assert.Equal(t, 0.0, e.Rows().Value(1, FieldRate))

	require.NoError(t, e.OnFieldEdited(1, FieldEst, nil))
	assert.Equal(t, 0.0, e.Rows().Value(1, FieldRate))
}

func TestEditOtherFieldLeavesRate(t *testing.T) {
	e := newTestEngine(t)

	require.NoError(t, e.OnFieldEdited(0, FieldClient, "Acme"))
	require.NoError(t, e.OnFieldEdited(0, FieldAct, "03:00"))
	require.NoError(t, e.OnFieldEdited(0, FieldTotalEst, "04:00"))

	assert.Equal(t, "Acme", e.Rows().Text(0, FieldClient))
	assert.Equal(t, 500.0, e.Rows().Value(0, FieldRate))
}

func TestEditGuards(t *testing.T) {
	e := newTestEngine(t)

	assert.ErrorIs(t, e.OnFieldEdited(0, FieldRate, 10.0), ErrReadOnlyField)
	assert.ErrorIs(t, e.OnFieldEdited(0, FieldTaskReference, "x"), ErrReadOnlyField)
	assert.ErrorIs(t, e.OnFieldEdited(0, "colour", "red"), ErrUnknownField)
	assert.ErrorIs(t, e.OnFieldEdited(99, FieldTask, "x"), ErrRowOutOfRange)
	assert.ErrorIs(t, e.OnFieldEdited(-1, FieldTask, "x"), ErrRowOutOfRange)
	assert.Equal(t, 0, e.Rows().EditCount())
}

func TestEditingSpareRowAppendsAnother(t *testing.T) {
	e := newTestEngine(t)
	rows := e.Rows()
	spare := rows.Len() - 1

	require.NoError(t, e.OnFieldEdited(spare, FieldTask, "New task"))
	assert.Equal(t, spare+2, rows.Len())
	assert.True(t, rows.Row(rows.Len()-1).Blank())

	// clearing a field on a non-final row does not add rows
	require.NoError(t, e.OnFieldEdited(0, FieldTask, ""))
	assert.Equal(t, spare+2, rows.Len())
}

func TestSubscribersSeeProvenance(t *testing.T) {
	e := newTestEngine(t)

	var changes []Change
	e.Rows().Subscribe(func(c Change) { changes = append(changes, c) })

	require.NoError(t, e.OnFieldEdited(2, FieldEst, "01:15"))
	require.Len(t, changes, 2)
	assert.Equal(t, Change{Row: 2, Field: FieldEst, Source: SourceEdit}, changes[0])
	assert.Equal(t, Change{Row: 2, Field: FieldRate, Source: SourceDerived}, changes[1])

	changes = nil
	e.Load(seedRows())
	for _, c := range changes {
		assert.NotEqual(t, SourceEdit, c.Source)
		assert.NotEqual(t, SourceDerived, c.Source)
	}
}

func TestSharedCollectionSeenByAllReaders(t *testing.T) {
	rows := NewCollection()
	e := NewEngine(rows, DefaultHourlyRate, nil)
	e.Load(seedRows())

	grid, accordion := rows, e.Rows()
	require.NoError(t, e.OnFieldEdited(0, FieldEst, "03:00"))

	assert.Equal(t, 1500.0, grid.Value(0, FieldRate))
	assert.Equal(t, 1500.0, accordion.Value(0, FieldRate))
	assert.Equal(t, 250.0, accordion.Value(1, FieldRate))
}

func TestLastWriteWins(t *testing.T) {
	e := newTestEngine(t)

	require.NoError(t, e.OnFieldEdited(0, FieldEst, "01:00"))
	require.NoError(t, e.OnFieldEdited(0, FieldEst, "04:00"))
	assert.Equal(t, "04:00", e.Rows().Text(0, FieldEst))
	assert.Equal(t, 2000.0, e.Rows().Value(0, FieldRate))
}

func TestRowStructure(t *testing.T) {
	e := newTestEngine(t)
	rows := e.Rows()
	n := rows.Len()

	require.NoError(t, e.InsertAbove(0))
	assert.Equal(t, n+1, rows.Len())
	assert.True(t, rows.Row(0).Blank())
	assert.Equal(t, "Draft proposal", rows.Text(1, FieldTask))

	require.NoError(t, e.InsertBelow(1))
	assert.True(t, rows.Row(2).Blank())
	assert.Equal(t, "Client call", rows.Text(3, FieldTask))

	require.NoError(t, e.RemoveRow(0))
	require.NoError(t, e.RemoveRow(1))
	assert.Equal(t, "Draft proposal", rows.Text(0, FieldTask))
	assert.Equal(t, n, rows.Len())

	assert.ErrorIs(t, e.InsertAbove(n), ErrRowOutOfRange)
	assert.ErrorIs(t, e.RemoveRow(-1), ErrRowOutOfRange)
}

func TestRemovingSpareRowRestoresIt(t *testing.T) {
	e := newTestEngine(t)
	rows := e.Rows()
	n := rows.Len()

	require.NoError(t, e.RemoveRow(n-1))
	assert.Equal(t, n, rows.Len())
	assert.True(t, rows.Row(n-1).Blank())
}

func TestRowAccessors(t *testing.T) {
	r := Row{FieldTask: "x", FieldUnplan: "true", FieldRate: 12.5, FieldStatus: 90}
	assert.Equal(t, "x", r.Text(FieldTask))
	assert.True(t, r.Bool(FieldUnplan))
	assert.Equal(t, "12.5", r.Text(FieldRate))
	assert.Equal(t, 90.0, r.Number(FieldStatus))
	assert.False(t, r.Blank())

	assert.True(t, Row{FieldRate: 100.0, FieldUnplan: false}.Blank())
}
