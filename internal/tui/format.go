package tui

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"tasksheet/internal/sheet"
)

var printer = message.NewPrinter(language.English)

// FormatRate renders an amount with grouping, e.g. 1,250.00.
func FormatRate(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// CellText is the plain text a surface shows for field id of row r.
func CellText(r sheet.Row, id sheet.FieldID) string {
	f, _ := sheet.Lookup(id)
	switch f.Kind {
	case sheet.KindComputed:
		return FormatRate(r.Number(id))
	case sheet.KindSummary:
		return summary(f, r)
	case sheet.KindBool:
		if r.Bool(id) {
			return "[x]"
		}
		return "[ ]"
	default:
		return r.Text(id)
	}
}

// summary is the evening "Task Info" cell: the text of the field's source
// followed by the row's estimate.
func summary(f sheet.Field, r sheet.Row) string {
	task, est := r.Text(f.Source), r.Text(sheet.FieldEst)
	if task == "" && est == "" {
		return "No task"
	}
	if task == "" {
		task = "-"
	}
	if est == "" {
		est = "-"
	}
	return fmt.Sprintf("%s · Est: %s", task, est)
}

var errInvalidInput = errors.New("invalid value")

// ParseInput validates editor text for field f and returns the value to send
// as an edit. Empty input clears the cell.
func ParseInput(f sheet.Field, text string) (any, error) {
	text = strings.TrimSpace(text)

	switch f.Kind {
	case sheet.KindBool:
		switch strings.ToLower(text) {
		case "", "false", "no", "n", "0":
			return false, nil
		case "true", "yes", "y", "1", "x":
			return true, nil
		}
	case sheet.KindClock:
		if text == "" {
			return "", nil
		}
		if h, m, ok := sheet.ParseClock(text); ok {
			return sheet.FormatClock(h, m), nil
		}
	case sheet.KindDate:
		if text == "" {
			return "", nil
		}
		if d, ok := sheet.ParseDate(text); ok {
			return d, nil
		}
	case sheet.KindChoice:
		if text == "" || slices.Contains(f.Options, text) {
			return text, nil
		}
		for _, opt := range f.Options {
			if strings.EqualFold(opt, text) {
				return opt, nil
			}
		}
	default:
		return text, nil
	}

	return nil, fmt.Errorf("%s: %q: %w", f.Label, text, errInvalidInput)
}

// stepOption moves the value of a choice or clock cell by delta positions
// through its option list, wrapping at either end.
func stepOption(f sheet.Field, current string, delta int) string {
	n := len(f.Options)
	if n == 0 {
		return current
	}
	i := slices.Index(f.Options, current)
	if i < 0 {
		if delta > 0 {
			return f.Options[0]
		}
		return f.Options[n-1]
	}
	return f.Options[((i+delta)%n+n)%n]
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
