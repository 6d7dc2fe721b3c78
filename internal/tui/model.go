// Package tui is the interactive terminal sheet. It has two surfaces over the
// same row collection: a grid for wide terminals and an accordion list for
// narrow ones. Both send every edit through sheet.Engine.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"tasksheet/internal/sheet"
)

type Options struct {
	Mode sheet.Mode
	// CompactWidth is the terminal width below which the accordion is used.
	CompactWidth int
	// Compact starts in the accordion regardless of width.
	Compact bool
	Logger  *zap.Logger
}

// Model is the bubbletea model. It is used through a pointer so the view and
// collection listeners always update the live model.
type Model struct {
	engine *sheet.Engine
	view   *sheet.ViewState
	proj   sheet.Projection

	keys   keyMap
	help   help.Model
	input  textinput.Model
	styles Styles
	log    *zap.Logger

	width, height int
	compactWidth  int
	compact       bool

	row, col int
	editing  bool

	selectorOpen   bool
	selectorCursor int

	status string
}

func New(engine *sheet.Engine, opts Options) *Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	input := textinput.New()
	input.Prompt = "› "
	input.CharLimit = 200

	m := &Model{
		engine:       engine,
		view:         sheet.NewViewState(opts.Mode),
		keys:         defaultKeyMap(),
		help:         help.New(),
		input:        input,
		styles:       DefaultStyles(),
		log:          log,
		compactWidth: opts.CompactWidth,
		compact:      opts.Compact,
	}

	// Headers and columns come from one projection, swapped in before the
	// next render.
	m.view.OnChange(func(p sheet.Projection) {
		m.proj = p
		m.clampCursor()
	})
	engine.Rows().Subscribe(func(c sheet.Change) {
		if c.Source == sheet.SourceStructure {
			m.clampCursor()
		}
	})
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Projection is the field list currently on screen.
func (m *Model) Projection() sheet.Projection {
	return m.proj
}

func (m *Model) Cursor() (row int, field sheet.FieldID) {
	if len(m.proj.IDs) == 0 {
		return m.row, ""
	}
	return m.row, m.proj.IDs[m.col]
}

// Compact reports whether the accordion surface is active.
func (m *Model) Compact() bool {
	if m.compact {
		return true
	}
	return m.width > 0 && m.width < m.compactWidth
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditor(msg)
		}
		if m.selectorOpen {
			if handled := m.updateSelector(msg); handled {
				return m, nil
			}
		}
		return m.updateSheet(msg)
	}
	return m, nil
}

func (m *Model) updateSheet(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.row--
	case key.Matches(msg, m.keys.Down):
		m.row++
	case key.Matches(msg, m.keys.Left):
		m.col--
	case key.Matches(msg, m.keys.Right):
		m.col++
	case key.Matches(msg, m.keys.NextView):
		m.switchView(1)
	case key.Matches(msg, m.keys.PrevView):
		m.switchView(-1)
	case key.Matches(msg, m.keys.Morning):
		m.setMode(sheet.ModeMorning)
	case key.Matches(msg, m.keys.Evening):
		m.setMode(sheet.ModeEvening)
	case key.Matches(msg, m.keys.Complete):
		m.setMode(sheet.ModeComplete)
	case key.Matches(msg, m.keys.Custom):
		m.setMode(sheet.ModeCustom)
		m.selectorOpen = !m.selectorOpen
	case key.Matches(msg, m.keys.Edit):
		return m, m.startEdit()
	case key.Matches(msg, m.keys.Toggle):
		m.toggleCell()
	case key.Matches(msg, m.keys.NextOption):
		m.stepCell(1)
	case key.Matches(msg, m.keys.PrevOption):
		m.stepCell(-1)
	case key.Matches(msg, m.keys.InsertBelow):
		m.report(m.engine.InsertBelow(m.row))
		m.row++
	case key.Matches(msg, m.keys.InsertAbove):
		m.report(m.engine.InsertAbove(m.row))
	case key.Matches(msg, m.keys.Remove):
		m.report(m.engine.RemoveRow(m.row))
	case key.Matches(msg, m.keys.Layout):
		m.compact = !m.compact
	case key.Matches(msg, m.keys.Cancel):
		m.selectorOpen = false
	}

	m.clampCursor()
	return m, nil
}

// updateSelector handles keys while the custom column selector is open. It
// returns false for keys the sheet should still see.
func (m *Model) updateSelector(msg tea.KeyMsg) bool {
	canonical := sheet.CanonicalFields()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selectorCursor > 0 {
			m.selectorCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selectorCursor < len(canonical)-1 {
			m.selectorCursor++
		}
	case key.Matches(msg, m.keys.Toggle), key.Matches(msg, m.keys.Edit):
		id := canonical[m.selectorCursor]
		on := m.view.Toggle(id)
		m.log.Debug("column toggled", zap.String("field", string(id)), zap.Bool("visible", on))
	case key.Matches(msg, m.keys.Cancel):
		m.selectorOpen = false
	default:
		return false
	}
	return true
}

func (m *Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.commitEdit()
		return m, nil
	case tea.KeyEsc:
		m.stopEdit()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) switchView(delta int) {
	n := len(sheet.Modes)
	for i, mode := range sheet.Modes {
		if mode == m.view.Mode() {
			m.setMode(sheet.Modes[((i+delta)%n+n)%n])
			return
		}
	}
	m.setMode(sheet.ModeMorning)
}

func (m *Model) setMode(mode sheet.Mode) {
	if mode != sheet.ModeCustom {
		m.selectorOpen = false
	}
	m.view.SetMode(mode)
	m.log.Debug("view changed", zap.String("mode", string(m.view.Mode())))
}

func (m *Model) currentField() (sheet.Field, bool) {
	_, id := m.Cursor()
	if id == "" {
		return sheet.Field{}, false
	}
	return sheet.Lookup(id)
}

func (m *Model) startEdit() tea.Cmd {
	f, ok := m.currentField()
	if !ok {
		return nil
	}
	if !f.Editable() {
		m.status = fmt.Sprintf("%s is calculated and cannot be edited", f.Label)
		return nil
	}
	if f.Kind == sheet.KindBool {
		m.toggleCell()
		return nil
	}

	m.editing = true
	m.input.Placeholder = placeholder(f)
	m.input.SetValue(m.engine.Rows().Text(m.row, f.ID))
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) commitEdit() {
	f, ok := m.currentField()
	if !ok {
		m.stopEdit()
		return
	}

	v, err := ParseInput(f, m.input.Value())
	if err != nil {
		// keep the editor open so the value can be fixed
		m.status = err.Error()
		return
	}
	m.apply(f.ID, v)
	m.stopEdit()
}

func (m *Model) stopEdit() {
	m.editing = false
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) toggleCell() {
	f, ok := m.currentField()
	if !ok || f.Kind != sheet.KindBool {
		return
	}
	m.apply(f.ID, !m.engine.Rows().Row(m.row).Bool(f.ID))
}

func (m *Model) stepCell(delta int) {
	f, ok := m.currentField()
	if !ok || !f.Editable() || len(f.Options) == 0 {
		return
	}
	m.apply(f.ID, stepOption(f, m.engine.Rows().Text(m.row, f.ID), delta))
}

func (m *Model) apply(id sheet.FieldID, v any) {
	if err := m.engine.OnFieldEdited(m.row, id, v); err != nil {
		m.report(err)
	}
}

func (m *Model) report(err error) {
	if err != nil {
		m.status = err.Error()
		m.log.Warn("edit rejected", zap.Error(err))
	}
}

func (m *Model) clampCursor() {
	if n := m.engine.Rows().Len(); m.row >= n {
		m.row = n - 1
	}
	if m.row < 0 {
		m.row = 0
	}
	if n := len(m.proj.IDs); m.col >= n {
		m.col = n - 1
	}
	if m.col < 0 {
		m.col = 0
	}
}

func placeholder(f sheet.Field) string {
	switch f.Kind {
	case sheet.KindClock:
		return "HH:MM"
	case sheet.KindDate:
		return "MM/DD/YYYY"
	case sheet.KindChoice:
		return strings.Join(f.Options[:min(3, len(f.Options))], ", ") + ", ..."
	default:
		return f.Label
	}
}
