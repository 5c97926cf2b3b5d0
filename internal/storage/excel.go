package storage

import (
	"fmt"

	"github.com/fr4nk3nst1ner/vacancysleuth/internal/models"
	"github.com/xuri/excelize/v2"
)

const excelSheet = "Sheet1"

// ExcelFileWorker writes flat rows into the first sheet of an xlsx workbook
type ExcelFileWorker struct{ baseWorker }

// Save writes the header and one row per job into Sheet1
func (w *ExcelFileWorker) Save(jobs []models.Job, dir string) error {
	path, err := w.prepare(dir)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	header := make([]any, 0, len(models.RecordFields))
	for _, name := range models.RecordFields {
		header = append(header, name)
	}
	if err := f.SetSheetRow(excelSheet, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", path, err)
	}

	for i, rec := range models.Records(jobs) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			rec.Name,
			rec.URL,
			rec.Address,
			rec.PublishedAt,
			rec.Experience,
			rec.Schedule,
			rec.Employment,
			excelInt(rec.SalaryTo),
			excelInt(rec.SalaryFrom),
			rec.SalaryCurrency,
			rec.Requirement,
			rec.Description,
		}
		if err := f.SetSheetRow(excelSheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", path, i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Load reads the first sheet, mapping cells by the header row
func (w *ExcelFileWorker) Load(dir string) ([]models.Job, error) {
	path := w.Path(dir)
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	jobs := make([]models.Job, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := models.RecordFromStrings(header, row)
		if err != nil {
			return nil, fmt.Errorf("read %s row %d: %w", path, i+2, err)
		}
		jobs = append(jobs, rec.Job())
	}
	return jobs, nil
}

// excelInt keeps salaries numeric in the sheet and leaves absent ones blank
func excelInt(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}
