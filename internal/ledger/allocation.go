package ledger

import (
	"errors"

	"github.com/bazooka-parts/backend/internal/models"
	"github.com/bazooka-parts/backend/internal/watch"
	"gorm.io/gorm"
)

// allocationTables are the tables the allocation queries depend on.
//
// Deleting a project or part removes its allocations through the store's
// cascade, which bypasses the write callbacks on project_parts. Watching
// the owner tables as well keeps live allocation queries fresh after a
// cascade.
var allocationTables = []string{"project_parts", "projects", "parts"}

// AllocationLedger owns the project-part association. At most one
// allocation exists per (project, part) pair and its quantity is always
// positive; Allocate and Deallocate maintain both invariants.
type AllocationLedger struct {
	db  *gorm.DB
	hub *watch.Hub
}

func NewAllocationLedger(db *gorm.DB, hub *watch.Hub) AllocationLedger {
	return AllocationLedger{db: db, hub: hub}
}

// Get returns the allocation for the (project, part) pair.
func (l AllocationLedger) Get(projectID, partID uint64) (models.Allocation, error) {
	var allocation models.Allocation

	err := l.db.Where(&models.Allocation{ProjectID: projectID, BikePartID: partID}).First(&allocation).Error
	if err != nil {
		return models.Allocation{}, err
	}

	return allocation, nil
}

// ListForProject returns all allocations of a project.
func (l AllocationLedger) ListForProject(projectID uint64) ([]models.Allocation, error) {
	var allocations []models.Allocation

	err := l.db.Where(&models.Allocation{ProjectID: projectID}).Find(&allocations).Error
	if err != nil {
		return nil, err
	}

	return allocations, nil
}

// ListForPart returns all allocations referencing a part.
func (l AllocationLedger) ListForPart(partID uint64) ([]models.Allocation, error) {
	var allocations []models.Allocation

	err := l.db.Where(&models.Allocation{BikePartID: partID}).Find(&allocations).Error
	if err != nil {
		return nil, err
	}

	return allocations, nil
}

// Allocate commits quantity units of a part to a project. An existing
// allocation for the pair is increased, never duplicated.
//
// Allocate does not touch the part's stock; moving stock into a project
// is PartLedger.RemoveStock with a project set.
func (l AllocationLedger) Allocate(projectID, partID uint64, quantity int) (models.Allocation, error) {
	if quantity <= 0 {
		return models.Allocation{}, models.ErrQuantityNotPositive
	}

	var allocation models.Allocation
	err := l.db.Transaction(func(tx *gorm.DB) error {
		var err error
		allocation, err = allocate(tx, projectID, partID, quantity)
		return err
	})
	if err != nil {
		return models.Allocation{}, err
	}

	return allocation, nil
}

// allocate implements merge-on-insert inside the transaction of the
// caller.
func allocate(tx *gorm.DB, projectID, partID uint64, quantity int) (models.Allocation, error) {
	var existing models.Allocation

	err := tx.Where(&models.Allocation{ProjectID: projectID, BikePartID: partID}).First(&existing).Error
	if err == nil {
		existing.Quantity += quantity
		return existing, tx.Save(&existing).Error
	}

	if !errors.Is(err, models.ErrResourceNotFound) {
		return models.Allocation{}, err
	}

	created := models.Allocation{
		ProjectID:  projectID,
		BikePartID: partID,
		Quantity:   quantity,
	}

	err = tx.Create(&created).Error
	if err != nil {
		return models.Allocation{}, err
	}

	return created, nil
}

// Deallocate removes quantity units of a part from a project. A nil
// quantity removes the allocation entirely, as does a quantity of at
// least the committed amount. Deallocating a pair without an allocation
// is a no-op.
//
// Like Allocate, Deallocate does not restore the part's stock.
func (l AllocationLedger) Deallocate(projectID, partID uint64, quantity *int) error {
	if quantity != nil && *quantity <= 0 {
		return models.ErrQuantityNotPositive
	}

	return l.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Allocation

		err := tx.Where(&models.Allocation{ProjectID: projectID, BikePartID: partID}).First(&existing).Error
		if errors.Is(err, models.ErrResourceNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		// Removing at least the committed amount clamps to full removal
		if quantity == nil || *quantity >= existing.Quantity {
			return tx.Delete(&existing).Error
		}

		existing.Quantity -= *quantity
		return tx.Save(&existing).Error
	})
}

// WatchForProject is the live form of ListForProject.
func (l AllocationLedger) WatchForProject(projectID uint64) (*watch.Subscription[[]models.Allocation], error) {
	return watch.Subscribe(l.hub, allocationTables, func() ([]models.Allocation, error) {
		return l.ListForProject(projectID)
	})
}

// WatchForPart is the live form of ListForPart.
func (l AllocationLedger) WatchForPart(partID uint64) (*watch.Subscription[[]models.Allocation], error) {
	return watch.Subscribe(l.hub, allocationTables, func() ([]models.Allocation, error) {
		return l.ListForPart(partID)
	})
}
