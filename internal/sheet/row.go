package sheet

import (
	"strconv"
	"strings"
)

// Row maps field ids to values. Values are strings, bools or float64; a
// missing key is an empty cell.
type Row map[FieldID]any

func (r Row) Clone() Row {
	c := make(Row, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// Text renders the value of id as a string.
func (r Row) Text(id FieldID) string {
	switch v := r[id].(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

func (r Row) Bool(id FieldID) bool {
	switch v := r[id].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	default:
		return false
	}
}

func (r Row) Number(id FieldID) float64 {
	switch v := r[id].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f
	default:
		return 0
	}
}

// Blank reports whether every editable field of the row is empty.
func (r Row) Blank() bool {
	for id := range r {
		f, ok := fields[id]
		if ok && f.ReadOnly {
			continue
		}
		if r.Text(id) != "" {
			return false
		}
	}
	return true
}
