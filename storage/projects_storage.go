package storage

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/folio-cms/folio/storage/model"
)

// ProjectsStorage provides CRUD access to Project records.
type ProjectsStorage struct {
	db *gorm.DB
}

const errProjectNotFound = model.NotFoundError("Project not found")

// List returns all projects in display order
func (s *ProjectsStorage) List() ([]model.Project, error) {
	items := []model.Project{}
	if err := s.db.Clauses(displayOrder).Find(&items).Error; err != nil {
		return nil, errors.Wrap(err, "projects: list failed")
	}
	return items, nil
}

// Create stores a new project; the passed ID is ignored
func (s *ProjectsStorage) Create(project model.Project) (*model.Project, error) {
	if err := project.Validate(); err != nil {
		return nil, err
	}
	project.ID = 0
	if err := s.db.Create(&project).Error; err != nil {
		return nil, errors.Wrap(err, "projects: create failed")
	}
	return &project, nil
}

// Get returns the project with the passed id
func (s *ProjectsStorage) Get(ident string) (*model.Project, error) {
	var item model.Project
	if err := findByID(s.db, ident, &item, errProjectNotFound); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update replaces all attributes of an existing project
func (s *ProjectsStorage) Update(ident string, update model.Project) (*model.Project, error) {
	item, err := s.Get(ident)
	if err != nil {
		return nil, err
	}
	if err = update.Validate(); err != nil {
		return nil, err
	}
	update.ID = item.ID
	update.CreatedAt = item.CreatedAt
	if err = s.db.Save(&update).Error; err != nil {
		return nil, errors.Wrap(err, "projects: update failed")
	}
	return &update, nil
}

// Delete removes the project with the passed id
func (s *ProjectsStorage) Delete(ident string) error {
	item, err := s.Get(ident)
	if err != nil {
		return err
	}
	if err = s.db.Delete(item).Error; err != nil {
		return errors.Wrap(err, "projects: delete failed")
	}
	return nil
}
