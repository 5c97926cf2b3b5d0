package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fr4nk3nst1ner/vacancysleuth/internal/models"

	_ "modernc.org/sqlite"
)

// SQLiteFileWorker keeps the exported jobs in a "vacancies" table. Each
// save replaces the previous contents.
type SQLiteFileWorker struct{ baseWorker }

const createVacanciesTable = `
CREATE TABLE vacancies (
  position INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  url TEXT NOT NULL,
  address TEXT NOT NULL,
  published_at TEXT NOT NULL,
  experience TEXT NOT NULL,
  schedule TEXT NOT NULL,
  employment TEXT NOT NULL,
  salary_to INTEGER,
  salary_from INTEGER,
  salary_currency TEXT NOT NULL DEFAULT '',
  requirement TEXT NOT NULL,
  description TEXT NOT NULL
);`

// sqliteDSN builds a file: URI for path; "?" and "#" in directory names are
// percent-escaped so they are not read as query or fragment
func sqliteDSN(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	// a relative path would otherwise be read as the URI host
	path = filepath.ToSlash(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u := url.URL{
		Scheme:   "file",
		Path:     path,
		RawQuery: "_pragma=busy_timeout(5000)",
	}
	return u.String()
}

func openSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", sqliteDSN(path))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Save replaces the vacancies table with jobs, keeping their order
func (w *SQLiteFileWorker) Save(jobs []models.Job, dir string) error {
	path, err := w.prepare(dir)
	if err != nil {
		return err
	}
	db, err := openSQLite(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DROP TABLE IF EXISTS vacancies;`); err != nil {
		return fmt.Errorf("reset %s: %w", path, err)
	}
	if _, err := tx.Exec(createVacanciesTable); err != nil {
		return fmt.Errorf("create table in %s: %w", path, err)
	}

	stmt, err := tx.Prepare(`
INSERT INTO vacancies (position, name, url, address, published_at, experience, schedule, employment,
  salary_to, salary_from, salary_currency, requirement, description)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range models.Records(jobs) {
		if _, err := stmt.Exec(i, r.Name, r.URL, r.Address, r.PublishedAt, r.Experience, r.Schedule, r.Employment,
			sqlInt(r.SalaryTo), sqlInt(r.SalaryFrom), r.SalaryCurrency, r.Requirement, r.Description); err != nil {
			return fmt.Errorf("insert job %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// Load reads the table back in saved order
func (w *SQLiteFileWorker) Load(dir string) ([]models.Job, error) {
	path := w.Path(dir)
	// opening a missing file would silently create an empty database
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	db, err := openSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.Query(`
SELECT name, url, address, published_at, experience, schedule, employment,
  salary_to, salary_from, salary_currency, requirement, description
FROM vacancies ORDER BY position;`)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", path, err)
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		var r models.JobRecord
		var to, from sql.NullInt64
		if err := rows.Scan(&r.Name, &r.URL, &r.Address, &r.PublishedAt, &r.Experience, &r.Schedule, &r.Employment,
			&to, &from, &r.SalaryCurrency, &r.Requirement, &r.Description); err != nil {
			return nil, err
		}
		r.SalaryTo = nullableInt(to)
		r.SalaryFrom = nullableInt(from)
		jobs = append(jobs, r.Job())
	}
	return jobs, rows.Err()
}

func sqlInt(v *int) any {
	if v == nil {
		return nil
	}
	return int64(*v)
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
