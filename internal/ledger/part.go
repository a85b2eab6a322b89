// Package ledger implements the query and command interfaces owning the
// persisted rows of parts, projects and allocations.
//
// Every read is available in a one-shot form and as a live subscription
// that re-emits whenever the rows it depends on change.
package ledger

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/bazooka-parts/backend/internal/models"
	"github.com/bazooka-parts/backend/internal/watch"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// partTables are the tables the part queries depend on.
var partTables = []string{"parts"}

// PartLedger owns part records and their stock quantity.
type PartLedger struct {
	db  *gorm.DB
	hub *watch.Hub
}

func NewPartLedger(db *gorm.DB, hub *watch.Hub) PartLedger {
	return PartLedger{db: db, hub: hub}
}

// List returns all parts, newest first.
func (l PartLedger) List() ([]models.Part, error) {
	var parts []models.Part

	err := l.db.Order("dateAdded DESC").Find(&parts).Error
	if err != nil {
		return nil, err
	}

	return parts, nil
}

// ByID returns the part with the given ID.
func (l PartLedger) ByID(id uint64) (models.Part, error) {
	var part models.Part

	err := l.db.First(&part, id).Error
	if err != nil {
		return models.Part{}, err
	}

	return part, nil
}

// ByCategory returns all parts of a category, newest first.
func (l PartLedger) ByCategory(category string) ([]models.Part, error) {
	var parts []models.Part

	err := l.db.Where("category = ?", category).Order("dateAdded DESC").Find(&parts).Error
	if err != nil {
		return nil, err
	}

	return parts, nil
}

// LowStock returns all parts whose quantity is below their reorder
// threshold, newest first.
func (l PartLedger) LowStock() ([]models.Part, error) {
	var parts []models.Part

	err := l.db.Where("quantity < minimalStock").Order("dateAdded DESC").Find(&parts).Error
	if err != nil {
		return nil, err
	}

	return parts, nil
}

// Search returns all parts whose name or description contains the search
// text, ignoring case. An empty search text matches everything.
func (l PartLedger) Search(search string) ([]models.Part, error) {
	var parts []models.Part

	q := l.db.Order("dateAdded DESC")
	if search != "" {
		like := fmt.Sprintf("%%%s%%", search)
		q = q.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	err := q.Find(&parts).Error
	if err != nil {
		return nil, err
	}

	return parts, nil
}

// Count returns the number of parts.
func (l PartLedger) Count() (int64, error) {
	var count int64

	err := l.db.Model(&models.Part{}).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// TotalQuantity returns the sum of all stock quantities. It is 0 when
// there are no parts.
func (l PartLedger) TotalQuantity() (int64, error) {
	var sum sql.NullInt64

	err := l.db.Model(&models.Part{}).Select("SUM(quantity)").Row().Scan(&sum)
	if err != nil {
		return 0, err
	}

	return sum.Int64, nil
}

// TotalValue returns the value of all stock on hand, the sum of price
// times quantity over all parts.
//
// The multiplication happens in decimal arithmetic. Summing in SQL
// would degrade the prices to floating point.
func (l PartLedger) TotalValue() (decimal.Decimal, error) {
	var parts []models.Part

	err := l.db.Select("price", "quantity").Find(&parts).Error
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, part := range parts {
		total = total.Add(part.Price.Mul(decimal.NewFromInt(int64(part.Quantity))))
	}

	return total, nil
}

// Insert creates the part and returns the assigned ID. A part that
// already carries an ID replaces the existing row with that ID.
func (l PartLedger) Insert(part models.Part) (uint64, error) {
	err := l.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&part).Error
	if err != nil {
		return 0, err
	}

	return part.ID, nil
}

// Update replaces the full row identified by the part's ID. A part that
// does not exist returns ErrResourceNotFound.
func (l PartLedger) Update(part models.Part) error {
	err := l.db.First(&models.Part{}, part.ID).Error
	if err != nil {
		return err
	}

	return l.db.Save(&part).Error
}

// Delete removes the part. Allocations referencing it are removed by the
// store's cascade. Deleting a part that does not exist is a no-op.
func (l PartLedger) Delete(part models.Part) error {
	return l.DeleteByID(part.ID)
}

func (l PartLedger) DeleteByID(id uint64) error {
	return l.db.Delete(&models.Part{}, id).Error
}

// AddStock increases the stock of a part by quantity.
func (l PartLedger) AddStock(id uint64, quantity int) (models.Part, error) {
	if quantity <= 0 {
		return models.Part{}, models.ErrQuantityNotPositive
	}

	return l.adjustStock(id, quantity, nil)
}

// RemoveStock decreases the stock of a part by quantity. When projectID
// is set, the removed units are committed to that project in the same
// transaction. Removing more than is on hand returns
// ErrInsufficientStock.
func (l PartLedger) RemoveStock(id uint64, quantity int, projectID *uint64) (models.Part, error) {
	if quantity <= 0 {
		return models.Part{}, models.ErrQuantityNotPositive
	}

	return l.adjustStock(id, -quantity, projectID)
}

func (l PartLedger) adjustStock(id uint64, delta int, projectID *uint64) (models.Part, error) {
	var part models.Part
	err := l.db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&part, id).Error
		if err != nil {
			return err
		}

		if delta < 0 && -delta > part.Quantity {
			return models.ErrInsufficientStock
		}

		part.Quantity += delta
		err = tx.Save(&part).Error
		if err != nil {
			return err
		}

		if projectID != nil && delta < 0 {
			_, err = allocate(tx, *projectID, id, -delta)
			return err
		}

		return nil
	})
	if err != nil {
		return models.Part{}, err
	}

	return part, nil
}

// WatchList is the live form of List.
func (l PartLedger) WatchList() (*watch.Subscription[[]models.Part], error) {
	return watch.Subscribe(l.hub, partTables, l.List)
}

// WatchByID is the live form of ByID. The snapshot is nil while no part
// with the ID exists.
func (l PartLedger) WatchByID(id uint64) (*watch.Subscription[*models.Part], error) {
	return watch.Subscribe(l.hub, partTables, func() (*models.Part, error) {
		part, err := l.ByID(id)
		if errors.Is(err, models.ErrResourceNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}

		return &part, nil
	})
}

// WatchByCategory is the live form of ByCategory.
func (l PartLedger) WatchByCategory(category string) (*watch.Subscription[[]models.Part], error) {
	return watch.Subscribe(l.hub, partTables, func() ([]models.Part, error) {
		return l.ByCategory(category)
	})
}

// WatchLowStock is the live form of LowStock.
func (l PartLedger) WatchLowStock() (*watch.Subscription[[]models.Part], error) {
	return watch.Subscribe(l.hub, partTables, l.LowStock)
}

// WatchSearch is the live form of Search.
func (l PartLedger) WatchSearch(search string) (*watch.Subscription[[]models.Part], error) {
	return watch.Subscribe(l.hub, partTables, func() ([]models.Part, error) {
		return l.Search(search)
	})
}

// WatchCount is the live form of Count.
func (l PartLedger) WatchCount() (*watch.Subscription[int64], error) {
	return watch.Subscribe(l.hub, partTables, l.Count)
}

// WatchTotalQuantity is the live form of TotalQuantity.
func (l PartLedger) WatchTotalQuantity() (*watch.Subscription[int64], error) {
	return watch.Subscribe(l.hub, partTables, l.TotalQuantity)
}
