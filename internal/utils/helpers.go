package utils

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/models"
)

// ParseMenuInt parses a numeric menu answer. Anything that is not an
// integer yields 0.
func ParseMenuInt(input string) int {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0
	}
	return n
}

// FormatSalary groups digits with spaces, e.g. 150000 -> "150 000"
func FormatSalary(amount int) string {
	return humanize.FormatInteger("# ###.", amount)
}

// FilterByKeyword keeps the jobs whose description contains keyword, case-insensitively
func FilterByKeyword(jobs []models.Job, keyword string) []models.Job {
	keyword = strings.ToLower(keyword)
	var filtered []models.Job
	for _, job := range jobs {
		if strings.Contains(strings.ToLower(job.Description), keyword) {
			filtered = append(filtered, job)
		}
	}
	return filtered
}

// TopBySalary returns the n best paid jobs, highest first. n <= 0 means all.
func TopBySalary(jobs []models.Job, n int) []models.Job {
	sorted := models.SortBySalary(jobs, true)
	if n <= 0 || n > len(sorted) {
		return sorted
	}
	return sorted[:n]
}
