package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fr4nk3nst1ner/vacancysleuth/internal/models"
)

// DefaultFileName is the base name used when the user does not pick one
const DefaultFileName = "vacancies"

// FileWorker saves jobs into a directory and loads them back
type FileWorker interface {
	Format() models.ExportFormat
	// Path returns the file the worker reads and writes inside dir
	Path(dir string) string
	Save(jobs []models.Job, dir string) error
	Load(dir string) ([]models.Job, error)
}

// NewFileWorker returns the worker for format, writing <fileName>.<ext>
func NewFileWorker(format models.ExportFormat, fileName string) (FileWorker, error) {
	if fileName == "" {
		fileName = DefaultFileName
	}
	base := baseWorker{fileName: fileName, format: format}
	switch format {
	case models.FormatJSON:
		return &JSONFileWorker{base}, nil
	case models.FormatCSV:
		return &CSVFileWorker{base}, nil
	case models.FormatExcel:
		return &ExcelFileWorker{base}, nil
	case models.FormatText:
		return &TextFileWorker{base}, nil
	case models.FormatSQLite:
		return &SQLiteFileWorker{base}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %v", format)
	}
}

type baseWorker struct {
	fileName string
	format   models.ExportFormat
}

func (b baseWorker) Format() models.ExportFormat { return b.format }

func (b baseWorker) Path(dir string) string {
	return filepath.Join(dir, b.fileName+"."+b.format.Extension())
}

// prepare makes sure dir exists and returns the target path
func (b baseWorker) prepare(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create directory %s: %w", dir, err)
	}
	return b.Path(dir), nil
}
