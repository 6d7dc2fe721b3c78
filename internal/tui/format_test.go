package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasksheet/internal/sheet"
)

func field(t *testing.T, id sheet.FieldID) sheet.Field {
	t.Helper()
	f, ok := sheet.Lookup(id)
	require.True(t, ok)
	return f
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "1,250.00", FormatRate(1250))
	assert.Equal(t, "0.00", FormatRate(0))
	assert.Equal(t, "541.67", FormatRate(500.0*65/60))
}

func TestCellText(t *testing.T) {
	row := sheet.Row{
		sheet.FieldTask:   "Write report",
		sheet.FieldEst:    "02:30",
		sheet.FieldRate:   1250.0,
		sheet.FieldUnplan: true,
	}

	assert.Equal(t, "Write report", CellText(row, sheet.FieldTask))
	assert.Equal(t, "1,250.00", CellText(row, sheet.FieldRate))
	assert.Equal(t, "[x]", CellText(row, sheet.FieldUnplan))
	assert.Equal(t, "Write report · Est: 02:30", CellText(row, sheet.FieldTaskReference))

	assert.Equal(t, "No task", CellText(sheet.Row{}, sheet.FieldTaskReference))
	assert.Equal(t, "- · Est: 01:00", CellText(sheet.Row{sheet.FieldEst: "01:00"}, sheet.FieldTaskReference))
	assert.Equal(t, "[ ]", CellText(sheet.Row{}, sheet.FieldUnplan))
}

func TestSummaryReadsSource(t *testing.T) {
	row := sheet.Row{
		sheet.FieldTask:   "Write report",
		sheet.FieldClient: "Acme",
		sheet.FieldEst:    "00:45",
	}

	info := field(t, sheet.FieldTaskReference)
	assert.Equal(t, sheet.FieldTask, info.Source)
	assert.Equal(t, "Write report · Est: 00:45", summary(info, row))

	info.Source = sheet.FieldClient
	assert.Equal(t, "Acme · Est: 00:45", summary(info, row))
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		name    string
		id      sheet.FieldID
		in      string
		want    any
		wantErr bool
	}{
		{"text passes through", sheet.FieldClient, " Acme ", "Acme", false},
		{"clock padded", sheet.FieldEst, "7:05", "07:05", false},
		{"clock off grid", sheet.FieldAct, "01:07", "01:07", false},
		{"clock cleared", sheet.FieldEst, "", "", false},
		{"clock invalid", sheet.FieldEst, "25:00", nil, true},
		{"date slash", sheet.FieldTarget, "10/21/2026", "10/21/2026", false},
		{"date short", sheet.FieldTarget, "1/2/2027", "01/02/2027", false},
		{"date iso", sheet.FieldCFDate, "2026-12-01", "12/01/2026", false},
		{"date invalid", sheet.FieldCFDate, "13/45/2026", nil, true},
		{"choice exact", sheet.FieldStatus, "85", "85", false},
		{"choice folded", sheet.FieldMainType, "personal jobs", "Personal Jobs", false},
		{"choice unknown", sheet.FieldJobNo, "XYZ/1", nil, true},
		{"bool yes", sheet.FieldUnplan, "yes", true, false},
		{"bool empty", sheet.FieldUnplan, "", false, false},
		{"bool junk", sheet.FieldUnplan, "maybe", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInput(field(t, tt.id), tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, errInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStepOption(t *testing.T) {
	status := field(t, sheet.FieldStatus)
	assert.Equal(t, "100", stepOption(status, "", 1))
	assert.Equal(t, "45", stepOption(status, "", -1))
	assert.Equal(t, "95", stepOption(status, "100", 1))
	assert.Equal(t, "100", stepOption(status, "45", 1))
	assert.Equal(t, "45", stepOption(status, "100", -1))

	assert.Equal(t, "x", stepOption(field(t, sheet.FieldTask), "x", 1))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc…", truncate("abcdef", 4))
	assert.Equal(t, "…", truncate("abcdef", 1))
	assert.Equal(t, "", truncate("abcdef", 0))
}
