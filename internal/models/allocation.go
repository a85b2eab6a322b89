package models

import (
	"time"

	"gorm.io/gorm"
)

// Allocation records that a number of units of a part is committed to a
// project.
//
// At most one allocation exists per (project, part) pair and its quantity
// is always positive. An allocation whose quantity would reach zero is
// deleted, never kept around. Both invariants are maintained by the
// allocation ledger.
type Allocation struct {
	DefaultModel
	ProjectID  uint64    `json:"projectId" gorm:"column:projectId;index"`  // ID of the project the part is committed to
	Project    Project   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	BikePartID uint64    `json:"bikePartId" gorm:"column:bikePartId;index"` // ID of the committed part
	BikePart   Part      `json:"-" gorm:"foreignKey:BikePartID;constraint:OnDelete:CASCADE"`
	Quantity   int       `json:"quantity" example:"3"`                      // Number of committed units, always positive
	DateAdded  time.Time `json:"dateAdded" gorm:"column:dateAdded"`         // Time the allocation was created, set once
}

func (Allocation) TableName() string {
	return "project_parts"
}

// BeforeSave verifies that the quantity invariant holds.
func (a *Allocation) BeforeSave(_ *gorm.DB) error {
	if a.Quantity <= 0 {
		return ErrQuantityNotPositive
	}

	return nil
}

// BeforeCreate verifies references to the owning project and part.
func (a *Allocation) BeforeCreate(tx *gorm.DB) error {
	if a.DateAdded.IsZero() {
		a.DateAdded = tx.NowFunc()
	}

	err := tx.First(&Project{}, a.ProjectID).Error
	if err != nil {
		return err
	}

	return tx.First(&Part{}, a.BikePartID).Error
}
