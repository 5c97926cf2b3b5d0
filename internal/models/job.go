package models

import (
	"fmt"
	"sort"
	"strings"
)

// Placeholders used when the API item lacks a field
const (
	NoTitle       = "Не указано название"
	NoURL         = "Не указан URL"
	NoAddress     = "Не указан адрес"
	NoPublishedAt = "Не указана дата публикации"
	NoExperience  = "Не указано опыт работы"
	NoSchedule    = "Не указана график работы"
	NoEmployment  = "Не указана тип занятости"
	NoRequirement = "Не указано требования вакансии"
	NoDescription = "Не указано описание вакансии"
	NoSalary      = "Зарплата не указана"
)

const blockWidth = 100

// Job is a normalized vacancy. It is built once from a raw item or a
// loaded export row and never modified afterwards.
type Job struct {
	Title       string
	URL         string
	Address     string
	PublishedAt string
	Experience  string
	Schedule    string
	Employment  string
	SalaryFrom  *int
	SalaryTo    *int
	Currency    string
	Requirement string
	Description string
}

// NewJob normalizes a raw API item, filling absent fields with placeholders
func NewJob(v Vacancy) Job {
	job := Job{
		Title:       orDefault(v.Name, NoTitle),
		URL:         orDefault(v.AlternateURL, NoURL),
		Address:     NoAddress,
		PublishedAt: NoPublishedAt,
		Experience:  refName(v.Experience, NoExperience),
		Schedule:    refName(v.Schedule, NoSchedule),
		Employment:  refName(v.Employment, NoEmployment),
		Requirement: NoRequirement,
		Description: NoDescription,
	}

	switch {
	case v.Address != nil && v.Address.Raw != "":
		job.Address = v.Address.Raw
	case v.Area != nil && v.Area.Name != "":
		job.Address = v.Area.Name
	}

	if v.PublishedAt != "" {
		job.PublishedAt = FormatDate(v.PublishedAt)
	}

	if v.Salary != nil {
		job.SalaryFrom = v.Salary.From
		job.SalaryTo = v.Salary.To
		job.Currency = v.Salary.Currency
	}

	if v.Snippet != nil {
		if v.Snippet.Requirement != nil && *v.Snippet.Requirement != "" {
			job.Requirement = StripMarkup(*v.Snippet.Requirement)
		}
		if v.Snippet.Responsibility != nil && *v.Snippet.Responsibility != "" {
			job.Description = StripMarkup(*v.Snippet.Responsibility)
		}
	}

	return job
}

// NewJobs normalizes a batch of raw items, keeping their order
func NewJobs(items []Vacancy) []Job {
	jobs := make([]Job, 0, len(items))
	for _, item := range items {
		jobs = append(jobs, NewJob(item))
	}
	return jobs
}

// Salary returns the sort key: upper bound, else lower bound, else 0
func (j Job) Salary() int {
	if j.SalaryTo != nil {
		return *j.SalaryTo
	}
	if j.SalaryFrom != nil {
		return *j.SalaryFrom
	}
	return 0
}

// CompareBySalary returns -1, 0 or 1 as a's salary key is less than, equal
// to or greater than b's
func CompareBySalary(a, b Job) int {
	sa, sb := a.Salary(), b.Salary()
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	default:
		return 0
	}
}

// SortBySalary returns a sorted copy of jobs. The sort is stable, so jobs
// with equal salary keys keep their input order in both directions.
func SortBySalary(jobs []Job, descending bool) []Job {
	sorted := make([]Job, len(jobs))
	copy(sorted, jobs)
	sort.SliceStable(sorted, func(i, k int) bool {
		if descending {
			return CompareBySalary(sorted[i], sorted[k]) > 0
		}
		return CompareBySalary(sorted[i], sorted[k]) < 0
	})
	return sorted
}

// SalaryText composes the human readable salary fork, e.g. "от 100 - до 200 (RUR)"
func (j Job) SalaryText() string {
	if j.SalaryFrom == nil && j.SalaryTo == nil {
		return NoSalary
	}
	var b strings.Builder
	if j.SalaryFrom != nil {
		fmt.Fprintf(&b, "от %d", *j.SalaryFrom)
	}
	if j.SalaryFrom != nil && j.SalaryTo != nil {
		b.WriteString(" - ")
	}
	if j.SalaryTo != nil {
		fmt.Fprintf(&b, "до %d", *j.SalaryTo)
	}
	if j.Currency != "" {
		fmt.Fprintf(&b, " (%s)", j.Currency)
	}
	return b.String()
}

func (j Job) String() string {
	var b strings.Builder
	b.WriteString(center(" Вакансия ", blockWidth, '=') + "\n")
	fmt.Fprintf(&b, "Вакансия: %s\n", j.Title)
	fmt.Fprintf(&b, "URL: %s\n", j.URL)
	fmt.Fprintf(&b, "Адрес: %s\n", j.Address)
	fmt.Fprintf(&b, "Дата публикации: %s\n", j.PublishedAt)
	fmt.Fprintf(&b, "Опыт работы: %s\n", j.Experience)
	fmt.Fprintf(&b, "График работы: %s\n", j.Schedule)
	fmt.Fprintf(&b, "Тип занятости: %s\n", j.Employment)
	fmt.Fprintf(&b, "Зарплата: %s\n", j.SalaryText())
	fmt.Fprintf(&b, "Требования: %s\n", j.Requirement)
	fmt.Fprintf(&b, "Описание: %s\n", j.Description)
	b.WriteString(center(" Конец ", blockWidth, '=') + "\n")
	return b.String()
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func refName(ref *NamedRef, fallback string) string {
	if ref == nil || ref.Name == "" {
		return fallback
	}
	return ref.Name
}
