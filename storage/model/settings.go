package model

import (
	"gorm.io/datatypes"
)

// SiteSettings holds the site-wide content of the portfolio: hero section,
// availability and contact links. The site uses the first stored row.
type SiteSettings struct {
	ID               uint                        `gorm:"primarykey" json:"id"`
	CreatedAt        int                         `json:"created_at"`
	UpdatedAt        int                         `json:"updated_at"`
	AvailableForHire bool                        `json:"available_for_hire"`
	HeroName         string                      `json:"hero_name"`
	HeroSubtitle     string                      `json:"hero_subtitle"`
	HeroVideoURL     string                      `json:"hero_video_url"`
	LoveItems        datatypes.JSONSlice[string] `json:"love_items"`
	LinkedinURL      string                      `json:"linkedin_url"`
	GithubURL        string                      `json:"github_url"`
	Email            string                      `json:"email"`
	TwitterURL       string                      `json:"twitter_url"`
	ResumeURL        string                      `json:"resume_url"`
}

// NewSiteSettings returns SiteSettings populated with defaults
func NewSiteSettings() SiteSettings {
	return SiteSettings{
		AvailableForHire: true,
		HeroName:         "Denis",
		HeroSubtitle:     "Subtitle",
		LoveItems:        datatypes.JSONSlice[string]{},
	}
}

// Validate normalizes SiteSettings before they are stored
func (s *SiteSettings) Validate() error {
	if s.LoveItems == nil {
		s.LoveItems = datatypes.JSONSlice[string]{}
	}
	return nil
}

// SiteSettingsStore is the abstraction used by handlers.
type SiteSettingsStore interface {
	// Current returns the settings in use, i.e. the first stored row
	Current() (*SiteSettings, error)
	Create(settings SiteSettings) (*SiteSettings, error)
	Update(ident string, update SiteSettings) (*SiteSettings, error)
}
