package model

// Education is a school or university entry of the portfolio
type Education struct {
	ID             uint   `gorm:"primarykey" json:"id"`
	CreatedAt      int    `json:"created_at"`
	UpdatedAt      int    `json:"updated_at"`
	Institution    string `gorm:"not null" json:"institution"`
	InstitutionURL string `json:"institution_url"`
	Degree         string `gorm:"not null" json:"degree"`
	Field          string `json:"field"`
	StartYear      string `json:"start_year"`
	EndYear        string `json:"end_year"`
	Description    string `gorm:"type:text" json:"description"`
	LogoURL        string `json:"logo_url"`
	// Type is usually "school" or "university"
	Type  string `json:"type"`
	Order int    `gorm:"column:order;index" json:"order"`
}

// TableName keeps the singular table name of the education entries
func (Education) TableName() string {
	return "education"
}

// Validate checks the attributes of an Education entry before it is stored
func (e *Education) Validate() error {
	if e.Institution == "" || e.Degree == "" {
		return ValidationError("institution and degree are required")
	}
	return nil
}

// EducationStore is the abstraction used by handlers.
type EducationStore interface {
	List() ([]Education, error)
	Create(entry Education) (*Education, error)
	Get(ident string) (*Education, error)
	Update(ident string, update Education) (*Education, error)
	Delete(ident string) error
}
