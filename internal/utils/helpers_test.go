package utils

import (
	"testing"

	"github.com/fr4nk3nst1ner/vacancysleuth/internal/models"
)

func TestFindArea(t *testing.T) {
	tree := []models.Area{
		{ID: 113, Name: "Россия", Areas: []models.Area{
			{ID: 1, Name: "Moscow", Areas: []models.Area{}},
			{ID: 1620, Name: "Республика Марий Эл", Areas: []models.Area{
				{ID: 1624, Name: "Йошкар-Ола"},
			}},
		}},
		{ID: 5, Name: "Украина", Areas: []models.Area{
			{ID: 99, Name: "moscow"},
		}},
	}

	tests := []struct {
		name   string
		wantID int
		wantOK bool
	}{
		{"Moscow", 1, true},
		{"MOSCOW", 1, true},
		{"йошкар-ола", 1624, true},
		{"Россия", 113, true},
		{"Atlantis", 0, false},
	}
	for _, tt := range tests {
		id, ok := FindArea(tree, tt.name)
		if id != tt.wantID || ok != tt.wantOK {
			t.Errorf("FindArea(%q) = %d, %v, want %d, %v", tt.name, id, ok, tt.wantID, tt.wantOK)
		}
	}
}

func TestParseMenuInt(t *testing.T) {
	if ParseMenuInt(" 5 ") != 5 {
		t.Error("expected 5")
	}
	if ParseMenuInt("five") != 0 {
		t.Error("expected 0 for non-numeric input")
	}
}

func TestFormatSalary(t *testing.T) {
	if got := FormatSalary(1500000); got != "1 500 000" {
		t.Errorf("FormatSalary() = %q", got)
	}
	if got := FormatSalary(900); got != "900" {
		t.Errorf("FormatSalary() = %q", got)
	}
}

func TestFilterByKeywordAndTop(t *testing.T) {
	jobs := []models.Job{
		{Title: "a", Description: "Разработка на Go", SalaryTo: intPtr(100)},
		{Title: "b", Description: "Python", SalaryTo: intPtr(300)},
		{Title: "c", Description: "GOLANG микросервисы", SalaryFrom: intPtr(200)},
	}

	got := FilterByKeyword(jobs, "go")
	if len(got) != 2 || got[0].Title != "a" || got[1].Title != "c" {
		t.Errorf("FilterByKeyword() = %+v", got)
	}
	if FilterByKeyword(jobs, "rust") != nil {
		t.Error("expected no matches for rust")
	}

	top := TopBySalary(jobs, 2)
	if len(top) != 2 || top[0].Title != "b" || top[1].Title != "c" {
		t.Errorf("TopBySalary(2) = %+v", top)
	}
	if len(TopBySalary(jobs, 0)) != 3 || len(TopBySalary(jobs, 10)) != 3 {
		t.Error("expected all jobs for n <= 0 or n > len")
	}
}
