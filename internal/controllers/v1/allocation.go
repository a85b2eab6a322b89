package v1

import (
	"net/http"

	"github.com/bazooka-parts/backend/internal/httputil"
	"github.com/bazooka-parts/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAllocationRoutes registers the routes for allocations with the
// RouterGroup that is passed.
func (co Controller) RegisterAllocationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsAllocationList)
	r.GET("", co.GetAllocations)
	r.POST("", co.CreateAllocation)
	r.DELETE("", co.DeleteAllocation)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations [options]
func (co Controller) OptionsAllocationList(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Get allocations
// @Description	Returns the allocations of a project or a part
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationListResponse
// @Failure		400	{object}	AllocationListResponse
// @Failure		500	{object}	AllocationListResponse
// @Router			/v1/allocations [get]
// @Param			project	query	uint64	false	"By ID of the project"
// @Param			part	query	uint64	false	"By ID of the part"
func (co Controller) GetAllocations(c *gin.Context) {
	var filter AllocationQueryFilter

	err := c.Bind(&filter)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AllocationListResponse{Error: &s})
		return
	}

	var allocations []models.Allocation

	switch {
	case filter.ProjectID != 0:
		allocations, err = co.Allocations.ListForProject(filter.ProjectID)
	case filter.BikePartID != 0:
		allocations, err = co.Allocations.ListForPart(filter.BikePartID)
	default:
		s := errAllocationFilterRequired.Error()
		c.JSON(http.StatusBadRequest, AllocationListResponse{Error: &s})
		return
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationListResponse{Error: &s})
		return
	}

	data := make([]Allocation, 0, len(allocations))
	for _, allocation := range allocations {
		data = append(data, newAllocation(c, allocation))
	}

	c.JSON(http.StatusOK, AllocationListResponse{Data: data})
}

// @Summary		Allocate part to project
// @Description	Commits units of a part to a project. An existing allocation for the pair is increased, never duplicated. The part's stock is not changed.
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		201			{object}	AllocationResponse
// @Failure		400			{object}	AllocationResponse
// @Failure		404			{object}	AllocationResponse
// @Failure		500			{object}	AllocationResponse
// @Param			allocation	body		AllocationEditable	true	"Allocation"
// @Router			/v1/allocations [post]
func (co Controller) CreateAllocation(c *gin.Context) {
	var editable AllocationEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{Error: &s})
		return
	}

	allocation, err := co.Allocations.Allocate(editable.ProjectID, editable.BikePartID, editable.Quantity)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{Error: &s})
		return
	}

	data := newAllocation(c, allocation)
	c.JSON(http.StatusCreated, AllocationResponse{Data: &data})
}

// @Summary		Deallocate part from project
// @Description	Removes units of a part from a project. Without a quantity, or with a quantity of at least the committed amount, the allocation is removed entirely. The part's stock is not changed.
// @Tags			Allocations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/allocations [delete]
// @Param			project		query	uint64	true	"ID of the project"
// @Param			part		query	uint64	true	"ID of the part"
// @Param			quantity	query	int		false	"Number of units to remove. Unset removes the allocation entirely."
func (co Controller) DeleteAllocation(c *gin.Context) {
	var filter AllocationDeleteFilter

	err := c.ShouldBindQuery(&filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	if filter.Quantity != nil && *filter.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, httpError{Error: errQuantityParameterInvalid.Error()})
		return
	}

	err = co.Allocations.Deallocate(filter.ProjectID, filter.BikePartID, filter.Quantity)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
