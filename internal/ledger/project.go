package ledger

import (
	"errors"
	"fmt"

	"github.com/bazooka-parts/backend/internal/models"
	"github.com/bazooka-parts/backend/internal/watch"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// projectTables are the tables the project queries depend on.
var projectTables = []string{"projects"}

// ProjectLedger owns project records and their archived flag.
type ProjectLedger struct {
	db  *gorm.DB
	hub *watch.Hub
}

func NewProjectLedger(db *gorm.DB, hub *watch.Hub) ProjectLedger {
	return ProjectLedger{db: db, hub: hub}
}

// ListActive returns all projects that are not archived, newest first.
func (l ProjectLedger) ListActive() ([]models.Project, error) {
	return l.list(false)
}

// ListArchived returns all archived projects, newest first.
func (l ProjectLedger) ListArchived() ([]models.Project, error) {
	return l.list(true)
}

func (l ProjectLedger) list(archived bool) ([]models.Project, error) {
	var projects []models.Project

	err := l.db.Where("isArchived = ?", archived).Order("dateCreated DESC").Find(&projects).Error
	if err != nil {
		return nil, err
	}

	return projects, nil
}

// ByID returns the project with the given ID.
func (l ProjectLedger) ByID(id uint64) (models.Project, error) {
	var project models.Project

	err := l.db.First(&project, id).Error
	if err != nil {
		return models.Project{}, err
	}

	return project, nil
}

// Search returns all active projects whose name or description contains
// the search text, ignoring case. Archived projects are never part of
// search results. An empty search text matches everything.
func (l ProjectLedger) Search(search string) ([]models.Project, error) {
	var projects []models.Project

	q := l.db.Where("isArchived = ?", false).Order("dateCreated DESC")
	if search != "" {
		like := fmt.Sprintf("%%%s%%", search)
		q = q.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	err := q.Find(&projects).Error
	if err != nil {
		return nil, err
	}

	return projects, nil
}

// Insert creates the project and returns the assigned ID. A project that
// already carries an ID replaces the existing row with that ID.
func (l ProjectLedger) Insert(project models.Project) (uint64, error) {
	err := l.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&project).Error
	if err != nil {
		return 0, err
	}

	return project.ID, nil
}

// Update replaces the full row identified by the project's ID. A project
// that does not exist returns ErrResourceNotFound.
func (l ProjectLedger) Update(project models.Project) error {
	err := l.db.First(&models.Project{}, project.ID).Error
	if err != nil {
		return err
	}

	return l.db.Save(&project).Error
}

// Delete removes the project. Allocations referencing it are removed by
// the store's cascade. Deleting a project that does not exist is a no-op.
func (l ProjectLedger) Delete(project models.Project) error {
	return l.DeleteByID(project.ID)
}

func (l ProjectLedger) DeleteByID(id uint64) error {
	return l.db.Delete(&models.Project{}, id).Error
}

// Archive sets the archived flag. Archiving an already archived project
// is a no-op state-wise.
func (l ProjectLedger) Archive(id uint64) (models.Project, error) {
	return l.setArchived(id, true)
}

// Unarchive clears the archived flag.
func (l ProjectLedger) Unarchive(id uint64) (models.Project, error) {
	return l.setArchived(id, false)
}

func (l ProjectLedger) setArchived(id uint64, archived bool) (models.Project, error) {
	project, err := l.ByID(id)
	if err != nil {
		return models.Project{}, err
	}

	project.Archived = archived
	err = l.db.Save(&project).Error
	if err != nil {
		return models.Project{}, err
	}

	return project, nil
}

// CountActive returns the number of projects that are not archived.
func (l ProjectLedger) CountActive() (int64, error) {
	return l.count(false)
}

// CountArchived returns the number of archived projects.
func (l ProjectLedger) CountArchived() (int64, error) {
	return l.count(true)
}

func (l ProjectLedger) count(archived bool) (int64, error) {
	var count int64

	err := l.db.Model(&models.Project{}).Where("isArchived = ?", archived).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// WatchActive is the live form of ListActive.
func (l ProjectLedger) WatchActive() (*watch.Subscription[[]models.Project], error) {
	return watch.Subscribe(l.hub, projectTables, l.ListActive)
}

// WatchArchived is the live form of ListArchived.
func (l ProjectLedger) WatchArchived() (*watch.Subscription[[]models.Project], error) {
	return watch.Subscribe(l.hub, projectTables, l.ListArchived)
}

// WatchByID is the live form of ByID. The snapshot is nil while no
// project with the ID exists.
func (l ProjectLedger) WatchByID(id uint64) (*watch.Subscription[*models.Project], error) {
	return watch.Subscribe(l.hub, projectTables, func() (*models.Project, error) {
		project, err := l.ByID(id)
		if errors.Is(err, models.ErrResourceNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}

		return &project, nil
	})
}

// WatchSearch is the live form of Search.
func (l ProjectLedger) WatchSearch(search string) (*watch.Subscription[[]models.Project], error) {
	return watch.Subscribe(l.hub, projectTables, func() ([]models.Project, error) {
		return l.Search(search)
	})
}

// WatchCountActive is the live form of CountActive.
func (l ProjectLedger) WatchCountActive() (*watch.Subscription[int64], error) {
	return watch.Subscribe(l.hub, projectTables, l.CountActive)
}

// WatchCountArchived is the live form of CountArchived.
func (l ProjectLedger) WatchCountArchived() (*watch.Subscription[int64], error) {
	return watch.Subscribe(l.hub, projectTables, l.CountArchived)
}
