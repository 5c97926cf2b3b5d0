package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ExportFormat selects the serializer used to save and load jobs
type ExportFormat int

const (
	FormatJSON ExportFormat = iota
	FormatCSV
	FormatExcel
	FormatText
	FormatSQLite
)

// ExportFormats lists the formats in menu order
var ExportFormats = []ExportFormat{FormatJSON, FormatCSV, FormatExcel, FormatText, FormatSQLite}

func (f ExportFormat) String() string {
	switch f {
	case FormatJSON:
		return "JSON"
	case FormatCSV:
		return "CSV"
	case FormatExcel:
		return "EXCEL"
	case FormatText:
		return "TXT"
	case FormatSQLite:
		return "SQLITE"
	default:
		return fmt.Sprintf("ExportFormat(%d)", int(f))
	}
}

// Extension returns the file extension without the leading dot
func (f ExportFormat) Extension() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatExcel:
		return "xlsx"
	case FormatText:
		return "txt"
	case FormatSQLite:
		return "db"
	default:
		return "json"
	}
}

// ParseExportFormat resolves a format by name or extension, case-insensitively
func ParseExportFormat(name string) (ExportFormat, error) {
	name = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	for _, f := range ExportFormats {
		if name == strings.ToLower(f.String()) || name == f.Extension() {
			return f, nil
		}
	}
	return FormatJSON, fmt.Errorf("unknown export format %q", name)
}

// JobDocument is the nested shape written by the JSON exporter
type JobDocument struct {
	Name         string          `json:"name"`
	AlternateURL string          `json:"alternate_url"`
	Address      string          `json:"address"`
	PublishedAt  string          `json:"published_at"`
	Experience   string          `json:"experience"`
	Schedule     string          `json:"schedule"`
	Employment   string          `json:"employment"`
	Salary       DocumentSalary  `json:"salary"`
	Snippet      DocumentSnippet `json:"snippet"`
}

// DocumentSalary is the salary object of a JobDocument
type DocumentSalary struct {
	To       *int   `json:"to"`
	From     *int   `json:"from"`
	Currency string `json:"currency"`
}

// DocumentSnippet is the snippet object of a JobDocument
type DocumentSnippet struct {
	Requirement    string `json:"requirement"`
	Responsibility string `json:"responsibility"`
}

// Document converts the job into its nested export shape
func (j Job) Document() JobDocument {
	return JobDocument{
		Name:         j.Title,
		AlternateURL: j.URL,
		Address:      j.Address,
		PublishedAt:  j.PublishedAt,
		Experience:   j.Experience,
		Schedule:     j.Schedule,
		Employment:   j.Employment,
		Salary: DocumentSalary{
			To:       j.SalaryTo,
			From:     j.SalaryFrom,
			Currency: j.Currency,
		},
		Snippet: DocumentSnippet{
			Requirement:    j.Requirement,
			Responsibility: j.Description,
		},
	}
}

// Job converts a loaded document back into a job
func (d JobDocument) Job() Job {
	return Job{
		Title:       d.Name,
		URL:         d.AlternateURL,
		Address:     d.Address,
		PublishedAt: d.PublishedAt,
		Experience:  d.Experience,
		Schedule:    d.Schedule,
		Employment:  d.Employment,
		SalaryFrom:  d.Salary.From,
		SalaryTo:    d.Salary.To,
		Currency:    d.Salary.Currency,
		Requirement: d.Snippet.Requirement,
		Description: d.Snippet.Responsibility,
	}
}

// RecordFields is the column order of every flat export (CSV, Excel, TXT, SQLite)
var RecordFields = []string{
	"name",
	"url",
	"address",
	"published_at",
	"experience",
	"schedule",
	"employment",
	"salary_to",
	"salary_from",
	"salary_currency",
	"requirement",
	"description",
}

// JobRecord is the flat, one-row-per-job export shape
type JobRecord struct {
	Name           string `json:"name"`
	URL            string `json:"url"`
	Address        string `json:"address"`
	PublishedAt    string `json:"published_at"`
	Experience     string `json:"experience"`
	Schedule       string `json:"schedule"`
	Employment     string `json:"employment"`
	SalaryTo       *int   `json:"salary_to"`
	SalaryFrom     *int   `json:"salary_from"`
	SalaryCurrency string `json:"salary_currency"`
	Requirement    string `json:"requirement"`
	Description    string `json:"description"`
}

// Record converts the job into its flat export shape
func (j Job) Record() JobRecord {
	return JobRecord{
		Name:           j.Title,
		URL:            j.URL,
		Address:        j.Address,
		PublishedAt:    j.PublishedAt,
		Experience:     j.Experience,
		Schedule:       j.Schedule,
		Employment:     j.Employment,
		SalaryTo:       j.SalaryTo,
		SalaryFrom:     j.SalaryFrom,
		SalaryCurrency: j.Currency,
		Requirement:    j.Requirement,
		Description:    j.Description,
	}
}

// Job converts a loaded record back into a job
func (r JobRecord) Job() Job {
	return Job{
		Title:       r.Name,
		URL:         r.URL,
		Address:     r.Address,
		PublishedAt: r.PublishedAt,
		Experience:  r.Experience,
		Schedule:    r.Schedule,
		Employment:  r.Employment,
		SalaryFrom:  r.SalaryFrom,
		SalaryTo:    r.SalaryTo,
		Currency:    r.SalaryCurrency,
		Requirement: r.Requirement,
		Description: r.Description,
	}
}

// Strings returns the record as cells in RecordFields order. Absent salary
// bounds become empty cells.
func (r JobRecord) Strings() []string {
	return []string{
		r.Name,
		r.URL,
		r.Address,
		r.PublishedAt,
		r.Experience,
		r.Schedule,
		r.Employment,
		formatOptionalInt(r.SalaryTo),
		formatOptionalInt(r.SalaryFrom),
		r.SalaryCurrency,
		r.Requirement,
		r.Description,
	}
}

// RecordFromStrings builds a record from a row of cells, matching cells to
// fields through header. Unknown columns are ignored and missing ones stay
// empty.
func RecordFromStrings(header, row []string) (JobRecord, error) {
	var r JobRecord
	for i, name := range header {
		if i >= len(row) {
			break
		}
		cell := row[i]
		var err error
		switch strings.TrimSpace(name) {
		case "name":
			r.Name = cell
		case "url":
			r.URL = cell
		case "address":
			r.Address = cell
		case "published_at":
			r.PublishedAt = cell
		case "experience":
			r.Experience = cell
		case "schedule":
			r.Schedule = cell
		case "employment":
			r.Employment = cell
		case "salary_to":
			r.SalaryTo, err = parseOptionalInt(cell)
		case "salary_from":
			r.SalaryFrom, err = parseOptionalInt(cell)
		case "salary_currency":
			r.SalaryCurrency = cell
		case "requirement":
			r.Requirement = cell
		case "description":
			r.Description = cell
		}
		if err != nil {
			return r, fmt.Errorf("column %s: %w", name, err)
		}
	}
	return r, nil
}

// Documents converts jobs into nested export documents
func Documents(jobs []Job) []JobDocument {
	docs := make([]JobDocument, 0, len(jobs))
	for _, j := range jobs {
		docs = append(docs, j.Document())
	}
	return docs
}

// Records converts jobs into flat export records
func Records(jobs []Job) []JobRecord {
	records := make([]JobRecord, 0, len(jobs))
	for _, j := range jobs {
		records = append(records, j.Record())
	}
	return records
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func parseOptionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	// spreadsheets may hand back whole numbers as "100000.0"
	s = strings.TrimSuffix(s, ".0")
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
