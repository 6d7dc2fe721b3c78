// Package seed reads the starting rows of a sheet from YAML or JSON.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"tasksheet/internal/sheet"
)

//go:embed data.yaml
var defaultData []byte

// Default returns the dataset bundled with the binary.
func Default() ([]sheet.Row, error) {
	return Parse(bytes.NewReader(defaultData))
}

// LoadFile reads rows from a YAML or JSON file.
func LoadFile(path string) ([]sheet.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	rows, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return rows, nil
}

// Parse decodes a list of row mappings. Keys that are not sheet fields and
// the derived rate are dropped; the engine recomputes the rate on load.
func Parse(r io.Reader) ([]sheet.Row, error) {
	var raw []map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}

	rows := make([]sheet.Row, 0, len(raw))
	for _, m := range raw {
		rows = append(rows, FromMap(m))
	}
	return rows, nil
}

// FromMap converts a decoded record into a Row.
func FromMap(m map[string]any) sheet.Row {
	row := sheet.Row{}
	for key, v := range m {
		f, ok := sheet.Lookup(sheet.FieldID(key))
		if !ok || f.ReadOnly || v == nil {
			continue
		}
		row[f.ID] = normalize(f, v)
	}
	return row
}

func normalize(f sheet.Field, v any) any {
	if f.Kind == sheet.KindBool {
		switch b := v.(type) {
		case bool:
			return b
		case string:
			parsed, _ := strconv.ParseBool(b)
			return parsed
		default:
			return false
		}
	}

	switch x := v.(type) {
	case string:
		if f.Kind == sheet.KindDate {
			// unrecognised dates are kept as written
			if d, ok := sheet.ParseDate(x); ok {
				return d
			}
		}
		return x
	case time.Time:
		if f.Kind == sheet.KindDate {
			return x.Format(sheet.DateLayout)
		}
		return x.String()
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

// ToMap is the inverse of FromMap, used when writing rows to a seed store.
func ToMap(row sheet.Row) map[string]any {
	m := make(map[string]any, len(row))
	for id, v := range row {
		if f, ok := sheet.Lookup(id); ok && !f.ReadOnly {
			m[string(id)] = v
		}
	}
	return m
}
