package scraper

import (
	"context"
	"fmt"

	"github.com/fr4nk3nst1ner/vacancysleuth/internal/models"
)

// VacancySource fetches raw vacancies for a keyword within a region
type VacancySource interface {
	Name() string
	Fetch(ctx context.Context, keyword string, areaID int) ([]models.Vacancy, error)
}

// AreaSource downloads the region tree
type AreaSource interface {
	FetchAreas(ctx context.Context) ([]models.Area, error)
}

// StatusError is returned when the API answers with a non-2xx status
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("received non-2xx status code %d from %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("received non-2xx status code %d from %s: %s", e.StatusCode, e.URL, e.Body)
}
