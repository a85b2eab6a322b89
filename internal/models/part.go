package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Part represents a physical inventory item, e.g. a chain or a fork.
type Part struct {
	DefaultModel
	Name         string          `json:"name" example:"Chain"`
	Description  string          `json:"description" example:"11-speed, 118 links"`
	Category     string          `json:"category" example:"Drivetrain"`
	Quantity     int             `json:"quantity" example:"10"`                                       // Current stock on hand
	MinimalStock int             `json:"minimalStock" gorm:"column:minimalStock" example:"2"`         // Reorder threshold
	Price        decimal.Decimal `json:"price" gorm:"type:DECIMAL(20,8)" example:"24.99"`             // Price per unit
	DateAdded    time.Time       `json:"dateAdded" gorm:"column:dateAdded"`                           // Time the part was added, set once
	ImageURL     *string         `json:"imageUrl" gorm:"column:imageUrl"`                             // Optional image reference
	Manufacturer *string         `json:"manufacturer" example:"Shimano"`                              // Optional manufacturer
	SerialNumber *string         `json:"serialNumber" gorm:"column:serialNumber" example:"CN-HG-601"` // Optional serial number
}

func (Part) TableName() string {
	return "parts"
}

// LowStock reports whether the part is below its reorder threshold.
// This is a derived predicate, not a stored flag.
func (p Part) LowStock() bool {
	return p.Quantity < p.MinimalStock
}

// BeforeSave trims whitespace from all strings and verifies
// the field invariants.
func (p *Part) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.Category = strings.TrimSpace(p.Category)

	if p.Name == "" {
		return ErrNameRequired
	}

	if p.Category == "" {
		return ErrCategoryRequired
	}

	if p.Quantity < 0 {
		return ErrQuantityNegative
	}

	if p.MinimalStock < 0 {
		return ErrMinimalStockNegative
	}

	if p.Price.IsNegative() {
		return ErrPriceNegative
	}

	return nil
}

func (p *Part) BeforeCreate(tx *gorm.DB) error {
	if p.DateAdded.IsZero() {
		p.DateAdded = tx.NowFunc()
	}

	return nil
}

// Allocations returns all allocations that reference this part.
func (p Part) Allocations(db *gorm.DB) ([]Allocation, error) {
	var allocations []Allocation

	err := db.Where(&Allocation{BikePartID: p.ID}).Find(&allocations).Error
	if err != nil {
		return nil, err
	}

	return allocations, nil
}
