package ui

import (
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/models"
	"github.com/pterm/pterm"
)

const titleWidth = 40

// PrintJobs writes the full text block of every job
func PrintJobs(w io.Writer, jobs []models.Job) {
	for _, job := range jobs {
		fmt.Fprint(w, job.String())
	}
}

// PrintSalaryTable writes a compact ranking of jobs by salary key
func PrintSalaryTable(w io.Writer, jobs []models.Job) error {
	if len(jobs) == 0 {
		return nil
	}
	data := pterm.TableData{{"#", "Вакансия", "Зарплата", "Валюта", "Адрес"}}
	for i, job := range jobs {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			truncateString(job.Title, titleWidth),
			ColorizeSalary(job.Salary()),
			job.Currency,
			job.Address,
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	fmt.Fprintln(w, table)
	fmt.Fprintf(w, "Вакансий в списке: %s\n", humanize.Comma(int64(len(jobs))))
	return nil
}

// truncateString shortens s to length runes, ending with "..." when cut
func truncateString(s string, length int) string {
	if utf8.RuneCountInString(s) <= length {
		return s
	}
	runes := []rune(s)
	return string(runes[:length-3]) + "..."
}
