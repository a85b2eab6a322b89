package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Project represents a body of work that consumes parts,
// e.g. a bike build or a repair.
type Project struct {
	DefaultModel
	Name                 string           `json:"name" example:"Gravel build"`
	Description          string           `json:"description" example:"Winter project"`
	DateCreated          time.Time        `json:"dateCreated" gorm:"column:dateCreated"`                    // Time the project was created, set once
	TargetCompletionDate *time.Time       `json:"targetCompletionDate" gorm:"column:targetCompletionDate"`  // Optional target completion date
	Budget               *decimal.Decimal `json:"budget" gorm:"type:DECIMAL(20,8)" example:"1500"`          // Optional budget
	Archived             bool             `json:"archived" gorm:"column:isArchived" example:"false" default:"false"` // Is the project archived?
}

func (Project) TableName() string {
	return "projects"
}

// BeforeSave trims whitespace from all strings and verifies
// the field invariants.
func (p *Project) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)

	if p.Name == "" {
		return ErrNameRequired
	}

	if p.Budget != nil && p.Budget.IsNegative() {
		return ErrBudgetNegative
	}

	return nil
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.DateCreated.IsZero() {
		p.DateCreated = tx.NowFunc()
	}

	return nil
}

// Allocations returns all allocations that reference this project.
func (p Project) Allocations(db *gorm.DB) ([]Allocation, error) {
	var allocations []Allocation

	err := db.Where(&Allocation{ProjectID: p.ID}).Find(&allocations).Error
	if err != nil {
		return nil, err
	}

	return allocations, nil
}
