package interaction

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fr4nk3nst1ner/vacancysleuth/internal/config"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/models"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/scraper"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/storage"
	"github.com/pterm/pterm"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	m.Run()
}

type fakeSource struct {
	items   []models.Vacancy
	err     error
	keyword string
	areaID  int
	calls   int
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) Fetch(ctx context.Context, keyword string, areaID int) ([]models.Vacancy, error) {
	f.calls++
	f.keyword = keyword
	f.areaID = areaID
	return f.items, f.err
}

type fakeAreas struct {
	tree []models.Area
	err  error
}

func (f fakeAreas) Load(ctx context.Context) ([]models.Area, error) {
	return f.tree, f.err
}

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

func vacancy(name string, to int, responsibility string) models.Vacancy {
	return models.Vacancy{
		Name:    name,
		Salary:  &models.Salary{To: intPtr(to), Currency: "RUR"},
		Snippet: &models.Snippet{Responsibility: strPtr(responsibility)},
	}
}

func testItems() []models.Vacancy {
	return []models.Vacancy{
		vacancy("junior", 80000, "Поддержка сервисов"),
		vacancy("middle", 150000, "Писать на Python"),
		vacancy("senior", 180000, "Проектировать python сервисы"),
		vacancy("lead", 400000, "Руководить командой"),
	}
}

var testTree = []models.Area{{ID: 113, Name: "Россия", Areas: []models.Area{{ID: 88, Name: "Казань"}}}}

func newTestApp(t *testing.T, src *fakeSource, input string) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.DataDir = t.TempDir()
	var out bytes.Buffer
	app := New(Options{
		Config: cfg,
		Source: src,
		Areas:  fakeAreas{tree: testTree},
		Input:  strings.NewReader(input),
		Output: &out,
	})
	return app, &out
}

func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestSearchFilterAndExport(t *testing.T) {
	src := &fakeSource{items: testItems()}
	dir := t.TempDir()
	input := script(
		"1", "казань", "python", "100000 - 200000", "",
		"1", "1", "",
		"y", "1", "result", "3", dir, "2", "2", "4",
		"4",
	)
	app, out := newTestApp(t, src, input)

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if src.areaID != 88 || src.keyword != "python" {
		t.Errorf("Fetch called with area %d keyword %q", src.areaID, src.keyword)
	}
	if len(app.Jobs()) != 2 {
		t.Fatalf("expected 2 jobs after salary filter, got %d", len(app.Jobs()))
	}
	if !strings.Contains(out.String(), "Найдено 2 вакансий.") {
		t.Errorf("missing found count:\n%s", out.String())
	}

	worker, _ := storage.NewFileWorker(models.FormatCSV, "result")
	saved, err := worker.Load(dir)
	if err != nil {
		t.Fatalf("load export: %v", err)
	}
	if len(saved) != 1 || saved[0].Title != "senior" {
		t.Errorf("expected only the top job saved, got %+v", saved)
	}
}

func TestInvalidSalaryRangeKeepsList(t *testing.T) {
	src := &fakeSource{items: testItems()}
	app, out := newTestApp(t, src, script("1", "Атлантида", "go", "abc-def-1", "", "3", "4"))

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if src.areaID != config.DefaultAreaID {
		t.Errorf("unknown region should fall back to %d, got %d", config.DefaultAreaID, src.areaID)
	}
	if len(app.Jobs()) != 4 {
		t.Errorf("expected unfiltered list of 4, got %d", len(app.Jobs()))
	}
	if !strings.Contains(out.String(), "фильтр не применен") {
		t.Errorf("user was not notified:\n%s", out.String())
	}
}

func TestKeywordListingAndDecline(t *testing.T) {
	src := &fakeSource{items: testItems()}
	input := script(
		"1", "", "dev", "", "",
		"2", "кобол",
		"2", "PYTHON", "", "n",
		"4",
	)
	app, out := newTestApp(t, src, input)

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "Ничего не найдено.") {
		t.Errorf("missing empty-result message:\n%s", text)
	}
	senior := strings.Index(text, "Вакансия: senior")
	middle := strings.Index(text, "Вакансия: middle")
	if senior < 0 || middle < 0 || senior > middle {
		t.Errorf("keyword results should be listed by salary, descending:\n%s", text)
	}
	if strings.Contains(text, "Вакансия: lead") {
		t.Error("non-matching job listed")
	}
}

func TestWorkWithoutSearch(t *testing.T) {
	src := &fakeSource{}
	app, out := newTestApp(t, src, script("2", "", "9", "4"))

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Сначала выполните поиск вакансий.") {
		t.Errorf("missing hint:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Неверный выбор") {
		t.Errorf("invalid choice not reported:\n%s", out.String())
	}
	if src.calls != 0 {
		t.Error("source should not be called")
	}
}

func TestFetchErrorReturnsToMenu(t *testing.T) {
	src := &fakeSource{err: &scraper.StatusError{URL: "https://api.hh.ru/vacancies", StatusCode: 503}}
	app, out := newTestApp(t, src, script("1", "", "go", "", "4"))

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "503") {
		t.Errorf("error not shown:\n%s", out.String())
	}
	if len(app.Jobs()) != 0 {
		t.Error("failed search should not replace jobs")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	worker, _ := storage.NewFileWorker(models.FormatText, "saved")
	if err := worker.Save(models.NewJobs(testItems()), dir); err != nil {
		t.Fatalf("Save: %v", err)
	}

	src := &fakeSource{}
	app, out := newTestApp(t, src, script("3", "saved", "4", dir, "1", "2", "", "n", "4"))

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(app.Jobs()) != 4 {
		t.Fatalf("expected 4 loaded jobs, got %d", len(app.Jobs()))
	}
	text := out.String()
	if !strings.Contains(text, "Загружено 4 вакансий.") {
		t.Errorf("missing load message:\n%s", text)
	}
	if strings.Index(text, "Вакансия: lead") > strings.Index(text, "Вакансия: senior") {
		t.Errorf("top listing not sorted by salary:\n%s", text)
	}
}

func TestLoadMissingFileReportsError(t *testing.T) {
	app, out := newTestApp(t, &fakeSource{}, script("3", "", "1", t.TempDir(), "4"))

	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "vacancies.json") {
		t.Errorf("error should name the missing file:\n%s", out.String())
	}
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	app, _ := newTestApp(t, &fakeSource{items: testItems()}, script("1", "", "go"))
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run should end quietly at EOF, got %v", err)
	}
}

func TestRunHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	app, _ := newTestApp(t, &fakeSource{}, script("4"))
	if err := app.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestAreasUnavailableFallsBack(t *testing.T) {
	src := &fakeSource{}
	cfg := config.Default()
	cfg.Search.DefaultAreaID = 2
	var out bytes.Buffer
	app := New(Options{
		Config: cfg,
		Source: src,
		Areas:  fakeAreas{err: os.ErrNotExist},
		Input:  strings.NewReader(script("1", "Казань", "go", "", "", "4")),
		Output: &out,
	})
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if src.areaID != 2 {
		t.Errorf("expected configured default area 2, got %d", src.areaID)
	}
}
