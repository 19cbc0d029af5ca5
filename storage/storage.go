package storage

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/folio-cms/folio/storage/model"
)

// Storage is a GORM-based storage implementation
type Storage struct {
	db *gorm.DB
}

var models = []any{
	&model.Project{},
	&model.Education{},
	&model.SiteSettings{},
	&model.SkillIcon{},
}

// NewStorage creates a new GORM-based storage
func NewStorage(config Config) (*Storage, error) {
	db, err := Connect(config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Creates missing tables and columns, it never drops anything
	if err = db.AutoMigrate(models...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Storage{db: db}, nil
}

// Backends returns all entity stores backed by this Storage
func (s *Storage) Backends() model.Backends {
	return model.Backends{
		Projects:   s.ProjectsStorage(),
		Education:  s.EducationStorage(),
		Settings:   s.SiteSettingsStorage(),
		SkillIcons: s.SkillIconsStorage(),
	}
}

// ProjectsStorage returns a ProjectsStorage
func (s *Storage) ProjectsStorage() *ProjectsStorage {
	return &ProjectsStorage{db: s.db}
}

// EducationStorage returns an EducationStorage
func (s *Storage) EducationStorage() *EducationStorage {
	return &EducationStorage{db: s.db}
}

// SiteSettingsStorage returns a SiteSettingsStorage
func (s *Storage) SiteSettingsStorage() *SiteSettingsStorage {
	return &SiteSettingsStorage{db: s.db}
}

// SkillIconsStorage returns a SkillIconsStorage
func (s *Storage) SkillIconsStorage() *SkillIconsStorage {
	return &SkillIconsStorage{db: s.db}
}

// displayOrder sorts by the "order" column, ties broken by insertion
var displayOrder = clause.OrderBy{
	Columns: []clause.OrderByColumn{
		{Column: clause.Column{Name: "order"}},
		{Column: clause.Column{Name: "id"}},
	},
}

// findByID loads the record identified by ident into out. Idents that are
// not a positive number cannot exist and are reported as not found.
func findByID(db *gorm.DB, ident string, out any, notFound model.NotFoundError) error {
	id, err := strconv.ParseUint(ident, 10, 64)
	if err != nil || id == 0 {
		return notFound
	}
	if err = db.First(out, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound
		}
		return err
	}
	return nil
}
