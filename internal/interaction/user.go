package interaction

import (
	"strings"

	"github.com/fr4nk3nst1ner/vacancysleuth/internal/models"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/ui"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/utils"
)

// userInteraction lists jobs by salary or by a description keyword, then
// offers to export the listing
func (a *App) userInteraction(jobs []models.Job) error {
	for {
		choice, err := a.console.Choose(
			"Получить топ N вакансий по зарплате",
			"Получить вакансии по ключевому слову в описании",
			"Назад",
		)
		if err != nil {
			return err
		}

		var listed []models.Job
		switch choice {
		case "1":
			n, err := a.console.PromptInt("Введите количество вакансий: ")
			if err != nil {
				return err
			}
			listed = utils.TopBySalary(jobs, n)
			a.log.Info("top vacancies by salary", "requested", n, "listed", len(listed))

			ui.PrintJobs(a.console.Writer(), listed)
			if err := ui.PrintSalaryTable(a.console.Writer(), listed); err != nil {
				a.log.Warn("salary table", "error", err)
			}

		case "2":
			keyword, err := a.console.Prompt("Введите поисковый запрос: ")
			if err != nil {
				return err
			}
			keyword = strings.TrimSpace(keyword)
			a.log.Info("filter by description keyword", "keyword", keyword)

			a.console.Println("Ищем вакансии...")
			listed = utils.FilterByKeyword(models.SortBySalary(jobs, true), keyword)
			if len(listed) == 0 {
				a.console.Println("Ничего не найдено.")
				continue
			}
			ui.PrintJobs(a.console.Writer(), listed)

		case "3":
			return nil

		default:
			a.console.Println("Неверная опция.")
			continue
		}

		if err := a.console.Pause(); err != nil {
			return err
		}
		return a.fileInteraction(listed)
	}
}
