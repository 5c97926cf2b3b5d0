package interaction

import (
	"fmt"
	"strings"

	"github.com/fr4nk3nst1ner/vacancysleuth/internal/models"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/storage"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/utils"
)

// fileInteraction asks whether to save jobs and, if so, lets the user pick
// the file name, format and directory before writing
func (a *App) fileInteraction(jobs []models.Job) error {
	for {
		answer, err := a.console.Prompt("Сохранить вакансии в файл? (Y/N) ")
		if err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "n":
			a.log.Info("vacancies not saved")
			return nil
		case "y":
			return a.exportMenu(jobs)
		}
	}
}

func (a *App) exportMenu(jobs []models.Job) error {
	name := a.defaultFileName()
	dir := a.cfg.Storage.DataDir
	format := models.FormatJSON

	for {
		choice, err := a.console.Choose(
			fmt.Sprintf("Название файла (не обязательно, по умолчанию: %s)", name),
			fmt.Sprintf("Выбрать формат файла (не обязательно, по умолчанию: %s)", format),
			fmt.Sprintf("Выбрать папку (не обязательно, по умолчанию: %s)", dir),
			"Сохранить",
			"Назад",
		)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if name, err = a.promptOr("Название файла: ", name); err != nil {
				return err
			}
		case "2":
			if format, _, err = a.chooseFormat(format); err != nil {
				return err
			}
		case "3":
			if dir, err = a.promptOr("Папка: ", dir); err != nil {
				return err
			}
		case "4":
			return a.save(jobs, format, name, dir)
		case "5":
			return nil
		default:
			a.console.Println("Неверный выбор, попробуйте еще раз.")
		}
	}
}

func (a *App) save(jobs []models.Job, format models.ExportFormat, name, dir string) error {
	worker, err := storage.NewFileWorker(format, name)
	if err != nil {
		return err
	}
	if err := worker.Save(jobs, dir); err != nil {
		return fmt.Errorf("save %s: %w", worker.Path(dir), err)
	}

	a.log.Info("vacancies saved", "path", worker.Path(dir), "format", format.String(), "count", len(jobs))
	if len(jobs) == 1 {
		a.console.Success("Вакансия добавлена в файл %s", worker.Path(dir))
	} else {
		a.console.Success("Вакансии добавлены в файл %s", worker.Path(dir))
	}
	return nil
}

// load reads a previously saved export and opens the work menu over it
func (a *App) load() error {
	name, err := a.promptOr(fmt.Sprintf("Название файла (по умолчанию: %s): ", a.defaultFileName()), a.defaultFileName())
	if err != nil {
		return err
	}
	format, ok, err := a.chooseFormat(models.FormatJSON)
	if err != nil || !ok {
		return err
	}
	dir, err := a.promptOr(fmt.Sprintf("Папка (по умолчанию: %s): ", a.cfg.Storage.DataDir), a.cfg.Storage.DataDir)
	if err != nil {
		return err
	}

	worker, err := storage.NewFileWorker(format, name)
	if err != nil {
		return err
	}
	jobs, err := worker.Load(dir)
	if err != nil {
		return fmt.Errorf("load %s: %w", worker.Path(dir), err)
	}

	a.jobs = jobs
	a.log.Info("vacancies loaded", "path", worker.Path(dir), "count", len(jobs))
	a.console.Printf("Загружено %d вакансий.\n\n", len(jobs))
	if len(jobs) == 0 {
		return nil
	}
	return a.userInteraction(jobs)
}

// chooseFormat shows the format menu. ok is false when the user went back,
// in which case current is returned unchanged.
func (a *App) chooseFormat(current models.ExportFormat) (models.ExportFormat, bool, error) {
	options := make([]string, 0, len(models.ExportFormats)+1)
	for _, f := range models.ExportFormats {
		label := f.String()
		if f == models.FormatJSON {
			label += " (по умолчанию)"
		}
		options = append(options, label)
	}
	options = append(options, "Назад")

	for {
		choice, err := a.console.Choose(options...)
		if err != nil {
			return current, false, err
		}
		switch n := utils.ParseMenuInt(choice); {
		case n >= 1 && n <= len(models.ExportFormats):
			return models.ExportFormats[n-1], true, nil
		case n == len(models.ExportFormats)+1:
			return current, false, nil
		}
		a.console.Println("Неверный выбор, попробуйте еще раз.")
	}
}

func (a *App) promptOr(label, fallback string) (string, error) {
	answer, err := a.console.Prompt(label)
	if err != nil {
		return fallback, err
	}
	if answer = strings.TrimSpace(answer); answer == "" {
		return fallback, nil
	}
	return answer, nil
}

func (a *App) defaultFileName() string {
	if a.cfg.Storage.FileName != "" {
		return a.cfg.Storage.FileName
	}
	return storage.DefaultFileName
}
