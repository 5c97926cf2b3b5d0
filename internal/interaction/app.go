package interaction

import (
	"context"
	"errors"
	"io"

	"github.com/fr4nk3nst1ner/vacancysleuth/internal/config"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/logger"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/models"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/scraper"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/ui"
)

// AreaLoader provides the region tree used to resolve region names
type AreaLoader interface {
	Load(ctx context.Context) ([]models.Area, error)
}

// Options wires the interactive application
type Options struct {
	Config config.Config
	Source scraper.VacancySource
	Areas  AreaLoader
	Input  io.Reader
	Output io.Writer
	Logger *logger.Logger
}

// App runs the numbered-menu dialogue. The current working set of jobs
// survives between menu rounds so the user can work with the last search.
type App struct {
	cfg     config.Config
	source  scraper.VacancySource
	areas   AreaLoader
	console *ui.Console
	log     *logger.Logger
	jobs    []models.Job
}

// New creates an App; a nil Logger discards records
func New(opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &App{
		cfg:     opts.Config,
		source:  opts.Source,
		areas:   opts.Areas,
		console: ui.NewConsole(opts.Input, opts.Output),
		log:     log,
	}
}

// Jobs returns the current working set
func (a *App) Jobs() []models.Job { return a.jobs }

// Run loops over the main menu until the user quits, input ends or ctx is
// cancelled. Errors of a single action are reported and the loop goes on.
func (a *App) Run(ctx context.Context) error {
	a.log.Info("program started")
	defer a.log.Info("program finished")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := a.console.Choose(
			"Поиск вакансий",
			"Работа с вакансиями",
			"Загрузить вакансии из файла",
			"Выйти",
		)
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case "1":
			err = a.search(ctx)
		case "2":
			err = a.work()
		case "3":
			err = a.load()
		case "4":
			return nil
		default:
			a.log.Info("invalid menu choice", "choice", choice)
			a.console.Println("Неверный выбор, попробуйте еще раз.")
			continue
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			a.log.Error("action failed", "choice", choice, "error", err)
			a.console.Error("%v", err)
		}
	}
}

// work opens the work menu over the current working set
func (a *App) work() error {
	if len(a.jobs) == 0 {
		a.log.Info("no vacancies to work with")
		a.console.Println("\nСначала выполните поиск вакансий.")
		return a.console.Pause()
	}
	a.log.Info("working with vacancies", "count", len(a.jobs))
	return a.userInteraction(a.jobs)
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
