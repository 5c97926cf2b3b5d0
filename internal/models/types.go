package models

// VacanciesResponse represents one page of the hh.ru vacancies search
type VacanciesResponse struct {
	Items   []Vacancy `json:"items"`
	Found   int       `json:"found"`
	Pages   int       `json:"pages"`
	Page    int       `json:"page"`
	PerPage int       `json:"per_page"`
}

// Vacancy represents a raw vacancy item as returned by the API.
// Every nested object may be absent or null.
type Vacancy struct {
	ID           string    `json:"id,omitempty"`
	Name         string    `json:"name"`
	AlternateURL string    `json:"alternate_url"`
	PublishedAt  string    `json:"published_at"`
	Area         *NamedRef `json:"area,omitempty"`
	Address      *Address  `json:"address,omitempty"`
	Salary       *Salary   `json:"salary,omitempty"`
	Experience   *NamedRef `json:"experience,omitempty"`
	Schedule     *NamedRef `json:"schedule,omitempty"`
	Employment   *NamedRef `json:"employment,omitempty"`
	Snippet      *Snippet  `json:"snippet,omitempty"`
	Employer     *Employer `json:"employer,omitempty"`
}

// NamedRef is the {id, name} pair used by area, experience, schedule and employment
type NamedRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Address represents the vacancy address
type Address struct {
	Raw string `json:"raw"`
}

// Salary represents the salary fork of a vacancy
type Salary struct {
	From     *int   `json:"from"`
	To       *int   `json:"to"`
	Currency string `json:"currency"`
	Gross    *bool  `json:"gross,omitempty"`
}

// Snippet holds the short requirement and responsibility texts
type Snippet struct {
	Requirement    *string `json:"requirement"`
	Responsibility *string `json:"responsibility"`
}

// Employer represents the company that published the vacancy
type Employer struct {
	Name string `json:"name"`
}

// SalaryValue returns the value used for salary filtering: the upper bound
// when present, otherwise the lower bound. ok is false when neither is set.
func (v Vacancy) SalaryValue() (value int, ok bool) {
	if v.Salary == nil {
		return 0, false
	}
	if v.Salary.To != nil {
		return *v.Salary.To, true
	}
	if v.Salary.From != nil {
		return *v.Salary.From, true
	}
	return 0, false
}
