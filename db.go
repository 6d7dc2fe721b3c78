package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"tasksheet/internal/seed"
	"tasksheet/internal/sheet"
)

// seedColumns maps seed_rows columns to sheet fields, in table order.
var seedColumns = []struct {
	column string
	field  sheet.FieldID
}{
	{"task", sheet.FieldTask},
	{"main_type", sheet.FieldMainType},
	{"sub_type", sheet.FieldSubType},
	{"unplan", sheet.FieldUnplan},
	{"job_no", sheet.FieldJobNo},
	{"client", sheet.FieldClient},
	{"est", sheet.FieldEst},
	{"act", sheet.FieldAct},
	{"target", sheet.FieldTarget},
	{"outcome", sheet.FieldOutcome},
	{"cf_date", sheet.FieldCFDate},
	{"total_est", sheet.FieldTotalEst},
	{"status", sheet.FieldStatus},
}

const (
	// migration queries
	createSeedRowsTableSQL = `
  CREATE TABLE IF NOT EXISTS seed_rows (
  position INTEGER PRIMARY KEY,
  task TEXT,
  main_type TEXT,
  sub_type TEXT,
  unplan TEXT,
  job_no TEXT,
  client TEXT,
  est TEXT,
  act TEXT,
  target TEXT,
  outcome TEXT,
  cf_date TEXT,
  total_est TEXT,
  status TEXT,
  created_at DATETIME DEFAULT CURRENT_TIMESTAMP
  )`

	clearSeedRowsSQL = `DELETE FROM seed_rows`
	countSeedRowsSQL = `SELECT COUNT(*) FROM seed_rows`
)

func seedColumnList() string {
	cols := make([]string, len(seedColumns))
	for i, c := range seedColumns {
		cols[i] = c.column
	}
	return strings.Join(cols, ", ")
}

var (
	selectSeedRowsSQL = `SELECT ` + seedColumnList() + ` FROM seed_rows ORDER BY position`
	insertSeedRowSQL  = `INSERT INTO seed_rows (position, ` + seedColumnList() + `) VALUES (?` +
		strings.Repeat(", ?", len(seedColumns)) + `)`
)

// Repo is a SQLite seed database. It is read at startup and written only by
// `seed import`; sheet edits are never stored.
type Repo struct {
	db *sql.DB
}

func NewRepo(dbPath string) (*Repo, error) {
	// ensure directory exists
	err := os.MkdirAll(filepath.Dir(dbPath), os.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// verify connection with database
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	repo := &Repo{db: db}

	if err := repo.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return repo, nil
}

func (r *Repo) Close() error {
	return r.db.Close()
}

// runs migrations on initial start
func (r *Repo) runMigrations() error {
	tables := []string{
		createSeedRowsTableSQL,
	}

	for _, tableSQL := range tables {
		if _, err := r.db.Exec(tableSQL); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

// LoadRows returns the stored seed rows in position order.
func (r *Repo) LoadRows() ([]sheet.Row, error) {
	rows, err := r.db.Query(selectSeedRowsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []sheet.Row
	for rows.Next() {
		values := make([]sql.NullString, len(seedColumns))
		dest := make([]any, len(values))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		record := make(map[string]any, len(seedColumns))
		for i, c := range seedColumns {
			if values[i].Valid {
				record[string(c.field)] = values[i].String
			}
		}
		out = append(out, seed.FromMap(record))
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// ReplaceRows swaps the stored seed for rows. Blank rows are skipped and
// derived fields are never stored.
func (r *Repo) ReplaceRows(rows []sheet.Row) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(clearSeedRowsSQL); err != nil {
		return 0, fmt.Errorf("error clearing seed rows: %w", err)
	}

	stmt, err := tx.Prepare(insertSeedRowSQL)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	n := 0
	for _, row := range rows {
		if row.Blank() {
			continue
		}
		record := seed.ToMap(row)
		args := make([]any, 0, len(seedColumns)+1)
		args = append(args, n)
		for _, c := range seedColumns {
			v, ok := record[string(c.field)]
			if !ok || v == nil {
				args = append(args, nil)
				continue
			}
			args = append(args, fmt.Sprint(v))
		}
		if _, err := stmt.Exec(args...); err != nil {
			return 0, fmt.Errorf("error inserting seed row %d: %w", n, err)
		}
		n++
	}

	return n, tx.Commit()
}

// CountRows returns the number of stored seed rows.
func (r *Repo) CountRows() (int, error) {
	var n int
	err := r.db.QueryRow(countSeedRowsSQL).Scan(&n)
	return n, err
}
