package model

import (
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the layout of the calendar dates stored on projects
const DateLayout = "2006-01-02"

// Project is a portfolio entry: a work position, a side project or an
// achievement. Projects are shown ordered by Order.
type Project struct {
	ID          uint                        `gorm:"primarykey" json:"id"`
	CreatedAt   int                         `json:"created_at"`
	UpdatedAt   int                         `json:"updated_at"`
	Title       string                      `gorm:"not null" json:"title"`
	Description string                      `gorm:"type:text" json:"description"`
	Type        string                      `json:"type"`
	Company     string                      `json:"company"`
	Location    string                      `json:"location"`
	StartDate   string                      `json:"start_date"`
	EndDate     string                      `json:"end_date"`
	IsCurrent   bool                        `json:"is_current"`
	ImageURL    string                      `json:"image_url"`
	Skills      datatypes.JSONSlice[string] `json:"skills"`
	Link        string                      `json:"link"`
	GithubURL   string                      `json:"github_url"`
	Order       int                         `gorm:"column:order;index" json:"order"`
	Featured    bool                        `json:"featured"`
}

// NewProject returns a Project populated with the defaults used for
// attributes a client does not send
func NewProject() Project {
	return Project{
		Title:     "Empty Title",
		Type:      "project",
		StartDate: "2025-01-01",
		EndDate:   "2026-01-01",
		Skills:    datatypes.JSONSlice[string]{},
	}
}

// Validate checks the attributes of a Project before it is stored
func (p *Project) Validate() error {
	if p.Title == "" {
		return ValidationError("title is required")
	}
	for _, d := range []struct{ name, value string }{
		{"start_date", p.StartDate},
		{"end_date", p.EndDate},
	} {
		if d.value == "" {
			continue
		}
		if _, err := time.Parse(DateLayout, d.value); err != nil {
			return ValidationErrorFmt("%s must be a date in the form YYYY-MM-DD", d.name)
		}
	}
	if p.Skills == nil {
		p.Skills = datatypes.JSONSlice[string]{}
	}
	return nil
}

// ProjectsStore is the abstraction used by handlers.
type ProjectsStore interface {
	List() ([]Project, error)
	Create(project Project) (*Project, error)
	Get(ident string) (*Project, error)
	Update(ident string, update Project) (*Project, error)
	Delete(ident string) error
}
