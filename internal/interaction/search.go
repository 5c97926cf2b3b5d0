package interaction

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fr4nk3nst1ner/vacancysleuth/internal/models"
	"github.com/fr4nk3nst1ner/vacancysleuth/internal/utils"
)

// search asks for region, keyword and salary range, fetches vacancies and
// hands a non-empty result to the work menu
func (a *App) search(ctx context.Context) error {
	region, err := a.console.Prompt("Выберите регион (По умолчанию Москва): ")
	if err != nil {
		return err
	}
	areaID := a.resolveArea(ctx, strings.TrimSpace(region))

	keyword, err := a.console.Prompt("Введите поисковый запрос: ")
	if err != nil {
		return err
	}
	keyword = strings.TrimSpace(keyword)

	salaryRange, err := a.console.Prompt("Введите диапазон зарплаты. Формат: мин - макс или макс (необязательно): ")
	if err != nil {
		return err
	}

	a.console.Println("Ищем вакансии...")
	a.log.Info("searching vacancies", "source", a.source.Name(), "keyword", keyword, "area", areaID)

	items, err := a.source.Fetch(ctx, keyword, areaID)
	if err != nil {
		return fmt.Errorf("search vacancies: %w", err)
	}

	if strings.TrimSpace(salaryRange) != "" {
		filtered, err := utils.FilterBySalaryRange(items, salaryRange)
		switch {
		case errors.Is(err, utils.ErrInvalidSalaryRange):
			a.log.Warn("salary range ignored", "range", salaryRange, "error", err)
			a.console.Warning("Неверный формат диапазона зарплаты, фильтр не применен.")
		case err != nil:
			return err
		default:
			items = filtered
		}
	}

	a.jobs = models.NewJobs(items)
	a.log.Info("search finished", "found", len(a.jobs))

	a.console.Println("\nПоиск завершен.")
	a.console.Printf("Найдено %d вакансий.\n\n", len(a.jobs))
	if err := a.console.Pause(); err != nil {
		return err
	}
	if len(a.jobs) == 0 {
		return nil
	}
	return a.userInteraction(a.jobs)
}

// resolveArea maps a region name to its id, falling back to the configured
// default when the name is empty, unknown or the region tree is unavailable
func (a *App) resolveArea(ctx context.Context, region string) int {
	fallback := a.cfg.Search.DefaultAreaID
	if region == "" || a.areas == nil {
		return fallback
	}

	tree, err := a.areas.Load(ctx)
	if err != nil {
		a.log.Warn("region tree unavailable", "error", err)
		a.console.Warning("Справочник регионов недоступен, используется регион по умолчанию.")
		return fallback
	}

	id, ok := utils.FindArea(tree, region)
	if !ok {
		a.log.Info("region not found", "region", region, "fallback", fallback)
		a.console.Warning("Регион %q не найден, используется регион по умолчанию.", region)
		return fallback
	}
	a.log.Info("region selected", "region", region, "area", id)
	return id
}
