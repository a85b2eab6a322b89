package v1

import (
	"fmt"
	"time"

	"github.com/bazooka-parts/backend/internal/httputil"
	"github.com/bazooka-parts/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// AllocationEditable represents the parameters of a new allocation
type AllocationEditable struct {
	ProjectID  uint64 `json:"projectId" binding:"required" example:"1"`  // ID of the project the part is committed to
	BikePartID uint64 `json:"bikePartId" binding:"required" example:"3"` // ID of the committed part
	Quantity   int    `json:"quantity" binding:"required" example:"3"`   // Number of units to commit
}

type AllocationLinks struct {
	Project string `json:"project" example:"https://example.com/v1/projects/1"` // The owning project
	Part    string `json:"part" example:"https://example.com/v1/parts/3"`       // The committed part
}

type Allocation struct {
	models.DefaultModel
	ProjectID  uint64    `json:"projectId" example:"1"`  // ID of the project the part is committed to
	BikePartID uint64    `json:"bikePartId" example:"3"` // ID of the committed part
	Quantity   int       `json:"quantity" example:"3"`   // Number of committed units
	DateAdded  time.Time `json:"dateAdded"`              // Time the allocation was created

	Links AllocationLinks `json:"links"`
}

func newAllocation(c *gin.Context, model models.Allocation) Allocation {
	url := httputil.RequestPathV1(c)

	return Allocation{
		DefaultModel: model.DefaultModel,
		ProjectID:    model.ProjectID,
		BikePartID:   model.BikePartID,
		Quantity:     model.Quantity,
		DateAdded:    model.DateAdded,
		Links: AllocationLinks{
			Project: fmt.Sprintf("%s/projects/%d", url, model.ProjectID),
			Part:    fmt.Sprintf("%s/parts/%d", url, model.BikePartID),
		},
	}
}

type AllocationResponse struct {
	Data  *Allocation `json:"data"`                                                         // Data for the allocation
	Error *string     `json:"error" example:"there is no project part matching your query"` // The error, if any occurred
}

type AllocationListResponse struct {
	Data  []Allocation `json:"data"`                                                         // List of allocations
	Error *string      `json:"error" example:"there is no project part matching your query"` // The error, if any occurred
}

// AllocationQueryFilter filters allocations by their owners. At least
// one of the two must be set.
type AllocationQueryFilter struct {
	ProjectID  uint64 `form:"project"` // By ID of the project
	BikePartID uint64 `form:"part"`    // By ID of the part
}

// AllocationDeleteFilter identifies the allocation to remove units from.
type AllocationDeleteFilter struct {
	ProjectID  uint64 `form:"project" binding:"required"` // ID of the project
	BikePartID uint64 `form:"part" binding:"required"`    // ID of the part
	Quantity   *int   `form:"quantity"`                   // Number of units to remove. Unset removes the allocation entirely.
}
