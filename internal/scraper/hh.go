package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cheggaaa/pb/v3"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/client"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/logger"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/models"
	"golang.org/x/time/rate"
)

const (
	DefaultPerPage  = 100
	DefaultMaxPages = 20
	maxErrorBody    = 512
)

// Options configures the hh.ru client
type Options struct {
	BaseURL           string
	UserAgent         string
	PerPage           int
	MaxPages          int
	OnlyWithSalary    bool
	RequestsPerSecond float64
	HTTPClient        *http.Client
	// Progress receives a page progress bar; nil disables it
	Progress io.Writer
	Logger   *logger.Logger
}

// HH is a VacancySource backed by the hh.ru REST API
type HH struct {
	opts    Options
	hc      *http.Client
	limiter *rate.Limiter
	log     *logger.Logger
}

// NewHH creates an hh.ru client. Zero PerPage/MaxPages take the defaults.
func NewHH(opts Options) *HH {
	if opts.PerPage <= 0 {
		opts.PerPage = DefaultPerPage
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = DefaultMaxPages
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = client.CreateHTTPClient(0)
	}

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &HH{
		opts:    opts,
		hc:      hc,
		limiter: rate.NewLimiter(limit, 1),
		log:     log,
	}
}

// Name identifies the source in logs
func (h *HH) Name() string { return "hh.ru" }

// Fetch pages through the search results, page 0 up to MaxPages-1, and
// returns every item collected by this call. It stops early when the server
// reports no further pages. At most MaxPages*PerPage items are returned.
func (h *HH) Fetch(ctx context.Context, keyword string, areaID int) ([]models.Vacancy, error) {
	h.log.Info("searching vacancies", "keyword", keyword, "area", areaID, "per_page", h.opts.PerPage, "max_pages", h.opts.MaxPages)

	var bar *pb.ProgressBar
	if h.opts.Progress != nil {
		bar = pb.New(h.opts.MaxPages).SetWriter(h.opts.Progress)
		bar.Start()
	}

	var vacancies []models.Vacancy
	for page := 0; page < h.opts.MaxPages; page++ {
		resp, err := h.FetchPage(ctx, keyword, areaID, page)
		if err != nil {
			if bar != nil {
				bar.Finish()
			}
			h.log.Error("vacancy page request failed", "page", page, "error", err.Error())
			return nil, err
		}

		items := resp.Items
		if len(items) > h.opts.PerPage {
			items = items[:h.opts.PerPage]
		}
		vacancies = append(vacancies, items...)

		if bar != nil {
			bar.Increment()
		}

		if len(items) == 0 || (resp.Pages > 0 && page+1 >= resp.Pages) {
			if bar != nil {
				bar.SetTotal(int64(page + 1))
			}
			break
		}
	}

	if bar != nil {
		bar.Finish()
	}

	h.log.Info("vacancies fetched", "count", len(vacancies))
	return vacancies, nil
}

// FetchPage requests a single page of search results
func (h *HH) FetchPage(ctx context.Context, keyword string, areaID, page int) (models.VacanciesResponse, error) {
	var out models.VacanciesResponse

	endpoint, err := url.JoinPath(h.opts.BaseURL, "vacancies")
	if err != nil {
		return out, fmt.Errorf("build vacancies url: %w", err)
	}

	params := url.Values{}
	params.Set("text", keyword)
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(h.opts.PerPage))
	params.Set("area", strconv.Itoa(areaID))
	if h.opts.OnlyWithSalary {
		params.Set("only_with_salary", "true")
	}

	if err := h.getJSON(ctx, endpoint+"?"+params.Encode(), &out); err != nil {
		return out, fmt.Errorf("fetch vacancies page %d: %w", page, err)
	}
	return out, nil
}

// FetchAreas downloads the full region tree
func (h *HH) FetchAreas(ctx context.Context) ([]models.Area, error) {
	endpoint, err := url.JoinPath(h.opts.BaseURL, "areas")
	if err != nil {
		return nil, fmt.Errorf("build areas url: %w", err)
	}

	var areas []models.Area
	if err := h.getJSON(ctx, endpoint, &areas); err != nil {
		return nil, fmt.Errorf("fetch areas: %w", err)
	}
	h.log.Info("areas downloaded", "countries", len(areas))
	return areas, nil
}

func (h *HH) getJSON(ctx context.Context, rawURL string, out any) error {
	if err := h.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	for key, values := range client.APIHeaders(h.opts.UserAgent) {
		req.Header[key] = values
	}

	resp, err := h.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := client.ReadResponseBody(resp)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return &StatusError{URL: rawURL, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}
	return nil
}
