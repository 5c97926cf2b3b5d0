package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fr4nk3nst1ner/vacancysleuth/internal/models"
)

// ErrInvalidSalaryRange is returned when a salary range cannot be parsed
var ErrInvalidSalaryRange = errors.New("invalid salary range")

// SalaryRange is an inclusive salary interval
type SalaryRange struct {
	Min int
	Max int
}

// Contains reports whether value lies within the range, bounds included
func (r SalaryRange) Contains(value int) bool {
	return r.Min <= value && value <= r.Max
}

// ParseSalaryRange parses "min-max" or a single "max" (min is then 0).
// Whitespace is ignored.
func ParseSalaryRange(input string) (SalaryRange, error) {
	compact := strings.Join(strings.Fields(input), "")
	parts := strings.Split(compact, "-")

	values := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return SalaryRange{}, fmt.Errorf("%w: %q is not a number", ErrInvalidSalaryRange, p)
		}
		values = append(values, n)
	}

	switch len(values) {
	case 1:
		return SalaryRange{Min: 0, Max: values[0]}, nil
	case 2:
		return SalaryRange{Min: values[0], Max: values[1]}, nil
	default:
		return SalaryRange{}, fmt.Errorf("%w: expected \"min - max\" or \"max\", got %q", ErrInvalidSalaryRange, input)
	}
}

// FilterBySalaryRange keeps the items whose salary value (upper bound, else
// lower bound) lies within the range given as text. Items without any
// salary bound are dropped. The input slice is never modified.
func FilterBySalaryRange(jobs []models.Vacancy, input string) ([]models.Vacancy, error) {
	r, err := ParseSalaryRange(input)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Vacancy, 0, len(jobs))
	for _, job := range jobs {
		value, ok := job.SalaryValue()
		if !ok {
			continue
		}
		if r.Contains(value) {
			filtered = append(filtered, job)
		}
	}
	return filtered, nil
}
