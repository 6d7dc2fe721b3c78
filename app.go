package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nexidian/gocliselect"
	"go.uber.org/zap"

	"tasksheet/internal/config"
	"tasksheet/internal/logging"
	"tasksheet/internal/seed"
	"tasksheet/internal/sheet"
	"tasksheet/internal/tui"
)

type App struct {
	cfg *config.Config
	log *zap.Logger
	out io.Writer
}

func NewApp(cfg *config.Config, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{cfg: cfg, log: log, out: os.Stdout}
}

// setup loads configuration and the logger; cobra calls it before any command.
func (a *App) setup(configPath string, verbose bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogFile, cfg.LogLevel, verbose)
	if err != nil {
		return err
	}

	a.cfg, a.log = cfg, log
	return nil
}

func (a *App) Close() {
	if a.log != nil {
		_ = a.log.Sync()
	}
}

// InitConfig writes the default configuration to path. An existing file is
// only replaced when force is set.
func (a *App) InitConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}

	a.log.Info("config written", zap.String("path", path))
	fmt.Fprintf(a.out, "Wrote default config to %s\n", path)
	return nil
}

// DefaultSeedDBPath is where `seed import` writes when no path is configured.
func DefaultSeedDBPath() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "tasksheet", "seed.db")
}

// LoadSeed returns the starting rows: the seed database when configured,
// then the seed file, then the bundled dataset.
func (a *App) LoadSeed() ([]sheet.Row, error) {
	switch {
	case a.cfg.SeedDB != "":
		repo, err := NewRepo(a.cfg.SeedDB)
		if err != nil {
			return nil, err
		}
		defer repo.Close()

		rows, err := repo.LoadRows()
		if err != nil {
			return nil, fmt.Errorf("failed to load seed rows: %w", err)
		}
		a.log.Info("seed loaded", zap.String("db", a.cfg.SeedDB), zap.Int("rows", len(rows)))
		return rows, nil
	case a.cfg.SeedFile != "":
		rows, err := seed.LoadFile(a.cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		a.log.Info("seed loaded", zap.String("file", a.cfg.SeedFile), zap.Int("rows", len(rows)))
		return rows, nil
	default:
		return seed.Default()
	}
}

// NewEngine builds the row collection from the seed and runs the load pass.
func (a *App) NewEngine() (*sheet.Engine, error) {
	rows, err := a.LoadSeed()
	if err != nil {
		return nil, err
	}

	engine := sheet.NewEngine(sheet.NewCollection(), a.cfg.HourlyRate, a.log.Named("engine"))
	engine.Load(rows)
	return engine, nil
}

// Open runs the interactive sheet.
func (a *App) Open(mode sheet.Mode, compact bool) error {
	engine, err := a.NewEngine()
	if err != nil {
		return err
	}

	model := tui.New(engine, tui.Options{
		Mode:         mode,
		CompactWidth: a.cfg.CompactWidth,
		Compact:      compact,
		Logger:       a.log.Named("tui"),
	})

	a.log.Info("sheet opened", zap.String("view", string(mode)), zap.Int("rows", engine.Rows().Len()))
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running sheet: %w", err)
	}

	a.log.Info("sheet closed", zap.Int("edits", engine.Rows().EditCount()))
	return nil
}

// PickView asks for a view mode with an arrow-key menu. Escaping the menu
// keeps the configured default view.
func (a *App) PickView() (sheet.Mode, error) {
	menu := gocliselect.NewMenu("Choose a view")
	for _, mode := range sheet.Modes {
		menu.AddItem(mode.Title(), string(mode))
	}

	choice, err := menu.Display()
	if err != nil {
		return "", fmt.Errorf("error choosing view: %w", err)
	}
	return pickedMode(choice, a.cfg.View()), nil
}

// pickedMode maps a menu choice to a view, using fallback for an empty or
// unexpected choice.
func pickedMode(choice any, fallback sheet.Mode) sheet.Mode {
	id, _ := choice.(string)
	if id == "" {
		return fallback
	}
	return sheet.ParseMode(id)
}

// Display prints the sheet in the given view. Hidden fields are only
// accepted for the custom view.
func (a *App) Display(mode sheet.Mode, hidden []string) error {
	if len(hidden) > 0 && mode != sheet.ModeCustom {
		return fmt.Errorf("--hide only applies to the custom view, not %s", mode)
	}

	engine, err := a.NewEngine()
	if err != nil {
		return err
	}

	visibility := sheet.NewVisibility()
	for _, id := range hidden {
		if _, ok := sheet.Lookup(sheet.FieldID(id)); !ok {
			return fmt.Errorf("unknown field: %s", id)
		}
		visibility[sheet.FieldID(id)] = false
	}
	proj := sheet.Project(mode, visibility)

	fmt.Fprintf(a.out, "%s\n", proj.Mode.Title())

	collection := engine.Rows()
	var rows [][]string
	total := 0.0
	for i := 0; i < collection.Len(); i++ {
		row := collection.Row(i)
		if row.Blank() {
			continue
		}
		total += row.Number(sheet.FieldRate)

		cells := make([]string, len(proj.IDs))
		for c, id := range proj.IDs {
			cells[c] = tui.CellText(row, id)
		}
		rows = append(rows, cells)
	}

	var footers []string
	for c, id := range proj.IDs {
		if id != sheet.FieldRate {
			continue
		}
		footers = make([]string, len(proj.IDs))
		footers[c] = tui.FormatRate(total)
		if c > 0 {
			footers[c-1] = "Total:"
		}
	}

	PrintTable(a.out, proj.Labels, rows, footers)
	return nil
}

// Views prints every view mode and its fields.
func (a *App) Views() {
	for _, mode := range sheet.Modes {
		proj := sheet.Project(mode, sheet.NewVisibility())
		ids := make([]string, len(proj.IDs))
		for i, id := range proj.IDs {
			ids[i] = string(id)
		}
		fmt.Fprintf(a.out, "%-9s %s\n", mode, strings.Join(ids, ", "))
	}
}

// ImportSeed replaces the seed database's rows with rows read from a file or
// from an http(s) tasks endpoint.
func (a *App) ImportSeed(ctx context.Context, dbPath, source string) (int, error) {
	var (
		rows []sheet.Row
		err  error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		rows, err = NewAPIClient(source).GetSeedRows(ctx)
	} else {
		rows, err = seed.LoadFile(source)
	}
	if err != nil {
		return 0, err
	}

	repo, err := NewRepo(dbPath)
	if err != nil {
		return 0, err
	}
	defer repo.Close()

	n, err := repo.ReplaceRows(rows)
	if err != nil {
		return 0, fmt.Errorf("failed to store seed rows: %w", err)
	}

	stored, err := repo.CountRows()
	if err != nil {
		return 0, fmt.Errorf("failed to count seed rows: %w", err)
	}

	a.log.Info("seed imported",
		zap.String("source", source),
		zap.String("db", dbPath),
		zap.Int("rows", n),
		zap.Int("stored", stored))
	fmt.Fprintf(a.out, "Imported %d rows into %s (%d stored)\n", n, dbPath, stored)
	return stored, nil
}
