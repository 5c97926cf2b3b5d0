package storage

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fr4nk3nst1ner/vacancysleuth/internal/models"
)

// JSONFileWorker writes the whole list as one pretty-printed document
type JSONFileWorker struct{ baseWorker }

// Save writes jobs as an indented array of nested documents
func (w *JSONFileWorker) Save(jobs []models.Job, dir string) error {
	path, err := w.prepare(dir)
	if err != nil {
		return err
	}
	data, err := marshalNoEscape(models.Documents(jobs), "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load decodes the nested documents back into jobs
func (w *JSONFileWorker) Load(dir string) ([]models.Job, error) {
	path := w.Path(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var docs []models.JobDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	jobs := make([]models.Job, 0, len(docs))
	for _, d := range docs {
		jobs = append(jobs, d.Job())
	}
	return jobs, nil
}

// TextFileWorker writes one flat JSON object per line
type TextFileWorker struct{ baseWorker }

// Save writes one flat record per line
func (w *TextFileWorker) Save(jobs []models.Job, dir string) error {
	path, err := w.prepare(dir)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	for _, rec := range models.Records(jobs) {
		line, err := marshalNoEscape(rec, "")
		if err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		buf.Write(line)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Load reads the records line by line, skipping blank lines
func (w *TextFileWorker) Load(dir string) ([]models.Job, error) {
	path := w.Path(dir)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var jobs []models.Job
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec models.JobRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("decode %s line %d: %w", path, lineNo, err)
		}
		jobs = append(jobs, rec.Job())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return jobs, nil
}

// marshalNoEscape encodes v keeping non-ASCII and HTML characters literal.
// The result ends with a newline.
func marshalNoEscape(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
