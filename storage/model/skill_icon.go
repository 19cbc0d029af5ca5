package model

// SkillIcon maps a skill name to the icon displayed next to it
type SkillIcon struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	CreatedAt int    `json:"created_at"`
	UpdatedAt int    `json:"updated_at"`
	SkillName string `gorm:"not null" json:"skill_name"`
	IconURL   string `gorm:"not null" json:"icon_url"`
}

// Validate checks the attributes of a SkillIcon before it is stored
func (s *SkillIcon) Validate() error {
	if s.SkillName == "" || s.IconURL == "" {
		return ValidationError("skill_name and icon_url are required")
	}
	return nil
}

// SkillIconsStore is the abstraction used by handlers.
type SkillIconsStore interface {
	List() ([]SkillIcon, error)
	Create(icon SkillIcon) (*SkillIcon, error)
	Get(ident string) (*SkillIcon, error)
	Update(ident string, update SkillIcon) (*SkillIcon, error)
	Delete(ident string) error
}
