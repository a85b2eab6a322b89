package models

// DefaultModel is the base model for all models in the backend.
//
// IDs are numeric, assigned by the store on creation and immutable
// afterwards.
type DefaultModel struct {
	ID uint64 `json:"id" gorm:"primaryKey" example:"42"` // ID of the resource
}
