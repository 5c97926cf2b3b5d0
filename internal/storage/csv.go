package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fr4nk3nst1ner/vacancysleuth/internal/models"
)

// CSVFileWorker writes one flat row per job under a header row
type CSVFileWorker struct{ baseWorker }

// Save writes the header and one row per job
func (w *CSVFileWorker) Save(jobs []models.Job, dir string) error {
	path, err := w.prepare(dir)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(models.RecordFields); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	for _, rec := range models.Records(jobs) {
		if err := cw.Write(rec.Strings()); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// Load maps cells to fields by the header row
func (w *CSVFileWorker) Load(dir string) ([]models.Job, error) {
	path := w.Path(dir)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s header: %w", path, err)
	}

	var jobs []models.Job
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		rec, err := models.RecordFromStrings(header, row)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		jobs = append(jobs, rec.Job())
	}
	return jobs, nil
}
