package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fr4nk3nst1ner/vacancysleuth/internal/models"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/scraper"
)

// AreaFileWorker reads the region tree from a static JSON file. When the
// file does not exist and a source is set, the tree is downloaded once and
// cached at path.
type AreaFileWorker struct {
	path   string
	source scraper.AreaSource
}

// NewAreaFileWorker reads the tree at path; source may be nil to disable downloading
func NewAreaFileWorker(path string, source scraper.AreaSource) *AreaFileWorker {
	return &AreaFileWorker{path: path, source: source}
}

// Load returns the region tree, downloading and caching it when the file is missing
func (w *AreaFileWorker) Load(ctx context.Context) ([]models.Area, error) {
	data, err := os.ReadFile(w.path)
	if errors.Is(err, os.ErrNotExist) && w.source != nil {
		return w.download(ctx)
	}
	if err != nil {
		return nil, err
	}

	var areas []models.Area
	if err := json.Unmarshal(data, &areas); err != nil {
		return nil, fmt.Errorf("decode %s: %w", w.path, err)
	}
	return areas, nil
}

func (w *AreaFileWorker) download(ctx context.Context) ([]models.Area, error) {
	areas, err := w.source.FetchAreas(ctx)
	if err != nil {
		return nil, err
	}
	if err := w.Save(areas); err != nil {
		return nil, err
	}
	return areas, nil
}

// Save writes the tree to the worker's path
func (w *AreaFileWorker) Save(areas []models.Area) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", w.path, err)
	}
	data, err := marshalNoEscape(areas, "")
	if err != nil {
		return err
	}
	return os.WriteFile(w.path, data, 0o644)
}
