package v1

import (
	"fmt"
	"time"

	"github.com/bazooka-parts/backend/internal/httputil"
	"github.com/bazooka-parts/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PartEditable represents all user configurable parameters of a part
type PartEditable struct {
	Name         string          `json:"name" example:"Chain" default:""`                  // Name of the part
	Description  string          `json:"description" example:"11-speed, 118 links" default:""` // Description of the part
	Category     string          `json:"category" example:"Drivetrain" default:""`         // Category the part belongs to
	Quantity     int             `json:"quantity" example:"10" default:"0"`                // Stock on hand
	MinimalStock int             `json:"minimalStock" example:"2" default:"0"`             // Reorder threshold
	Price        decimal.Decimal `json:"price" example:"24.99" default:"0"`                // Price per unit
	ImageURL     *string         `json:"imageUrl"`                                         // Optional image reference
	Manufacturer *string         `json:"manufacturer" example:"Shimano"`                   // Optional manufacturer
	SerialNumber *string         `json:"serialNumber" example:"CN-HG-601"`                 // Optional serial number
}

func (editable PartEditable) model() models.Part {
	return models.Part{
		Name:         editable.Name,
		Description:  editable.Description,
		Category:     editable.Category,
		Quantity:     editable.Quantity,
		MinimalStock: editable.MinimalStock,
		Price:        editable.Price,
		ImageURL:     editable.ImageURL,
		Manufacturer: editable.Manufacturer,
		SerialNumber: editable.SerialNumber,
	}
}

func newPartEditable(model models.Part) PartEditable {
	return PartEditable{
		Name:         model.Name,
		Description:  model.Description,
		Category:     model.Category,
		Quantity:     model.Quantity,
		MinimalStock: model.MinimalStock,
		Price:        model.Price,
		ImageURL:     model.ImageURL,
		Manufacturer: model.Manufacturer,
		SerialNumber: model.SerialNumber,
	}
}

type PartLinks struct {
	Self        string `json:"self" example:"https://example.com/v1/parts/3"`               // The part itself
	Allocations string `json:"allocations" example:"https://example.com/v1/allocations?part=3"` // Allocations referencing this part
	Stock       string `json:"stock" example:"https://example.com/v1/parts/3/stock"`        // Stock transfer endpoint for this part
}

type Part struct {
	models.DefaultModel
	PartEditable
	DateAdded time.Time `json:"dateAdded"` // Time the part was added

	// These fields are computed
	LowStock bool      `json:"lowStock" example:"false"` // Is the quantity below the reorder threshold?
	Links    PartLinks `json:"links"`
}

func newPart(c *gin.Context, model models.Part) Part {
	url := httputil.RequestPathV1(c)

	return Part{
		DefaultModel: model.DefaultModel,
		PartEditable: newPartEditable(model),
		DateAdded:    model.DateAdded,
		LowStock:     model.LowStock(),
		Links: PartLinks{
			Self:        fmt.Sprintf("%s/parts/%d", url, model.ID),
			Allocations: fmt.Sprintf("%s/allocations?part=%d", url, model.ID),
			Stock:       fmt.Sprintf("%s/parts/%d/stock", url, model.ID),
		},
	}
}

type PartResponse struct {
	Data  *Part   `json:"data"`                                                 // Data for the part
	Error *string `json:"error" example:"there is no part matching your query"` // The error, if any occurred
}

type PartListResponse struct {
	Data  []Part  `json:"data"`                                                 // List of parts
	Error *string `json:"error" example:"there is no part matching your query"` // The error, if any occurred
}

// PartQueryFilter narrows the part list down. The filters are mutually
// exclusive; search wins over lowStock, which wins over category.
type PartQueryFilter struct {
	Category string `form:"category"` // Only parts of this category
	LowStock bool   `form:"lowStock"` // Only parts below their reorder threshold
	Search   string `form:"search"`   // Search for this text in name and description
}

// PartStockRequest is a stock transfer for a part.
type PartStockRequest struct {
	Direction string  `json:"direction" binding:"required,oneof=add remove" example:"remove"` // "add" or "remove"
	Quantity  int     `json:"quantity" binding:"required" example:"3"`                        // Number of units to transfer
	ProjectID *uint64 `json:"projectId" example:"1"`                                          // When removing: commit the removed units to this project
}
