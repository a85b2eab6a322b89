package v1

import (
	"net/http"

	"github.com/bazooka-parts/backend/internal/httputil"
	"github.com/bazooka-parts/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterPartRoutes registers the routes for parts with the RouterGroup
// that is passed.
func (co Controller) RegisterPartRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsPartList)
		r.GET("", co.GetParts)
		r.POST("", co.CreatePart)
	}

	// Part with ID
	{
		r.OPTIONS("/:id", co.OptionsPartDetail)
		r.GET("/:id", co.GetPart)
		r.PATCH("/:id", co.UpdatePart)
		r.DELETE("/:id", co.DeletePart)
		r.OPTIONS("/:id/stock", co.OptionsPartStock)
		r.POST("/:id/stock", co.UpdatePartStock)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Parts
// @Success		204
// @Router			/v1/parts [options]
func (co Controller) OptionsPartList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Parts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		uint64	true	"ID of the part"
// @Router			/v1/parts/{id} [options]
func (co Controller) OptionsPartDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = co.Parts.ByID(uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create part
// @Description	Creates a new part
// @Tags			Parts
// @Produce		json
// @Success		201		{object}	PartResponse
// @Failure		400		{object}	PartResponse
// @Failure		500		{object}	PartResponse
// @Param			part	body		PartEditable	true	"Part"
// @Router			/v1/parts [post]
func (co Controller) CreatePart(c *gin.Context) {
	var editable PartEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartResponse{Error: &s})
		return
	}

	id, err := co.Parts.Insert(editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartResponse{Error: &s})
		return
	}

	part, err := co.Parts.ByID(id)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartResponse{Error: &s})
		return
	}

	data := newPart(c, part)
	c.JSON(http.StatusCreated, PartResponse{Data: &data})
}

// @Summary		Get parts
// @Description	Returns a list of parts
// @Tags			Parts
// @Produce		json
// @Success		200	{object}	PartListResponse
// @Failure		500	{object}	PartListResponse
// @Router			/v1/parts [get]
// @Param			category	query	string	false	"Only parts of this category"
// @Param			lowStock	query	bool	false	"Only parts below their reorder threshold"
// @Param			search		query	string	false	"Search for this text in name and description"
func (co Controller) GetParts(c *gin.Context) {
	var filter PartQueryFilter

	// Every parameter binds into a string or bool, this always succeeds
	_ = c.Bind(&filter)

	var parts []models.Part
	var err error

	switch {
	case filter.Search != "":
		parts, err = co.Parts.Search(filter.Search)
	case filter.LowStock:
		parts, err = co.Parts.LowStock()
	case filter.Category != "":
		parts, err = co.Parts.ByCategory(filter.Category)
	default:
		parts, err = co.Parts.List()
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartListResponse{Error: &s})
		return
	}

	data := make([]Part, 0, len(parts))
	for _, part := range parts {
		data = append(data, newPart(c, part))
	}

	c.JSON(http.StatusOK, PartListResponse{Data: data})
}

// @Summary		Get part
// @Description	Returns a specific part
// @Tags			Parts
// @Produce		json
// @Success		200	{object}	PartResponse
// @Failure		400	{object}	PartResponse
// @Failure		404	{object}	PartResponse
// @Failure		500	{object}	PartResponse
// @Param			id	path		uint64	true	"ID of the part"
// @Router			/v1/parts/{id} [get]
func (co Controller) GetPart(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartResponse{Error: &s})
		return
	}

	part, err := co.Parts.ByID(uri.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartResponse{Error: &s})
		return
	}

	data := newPart(c, part)
	c.JSON(http.StatusOK, PartResponse{Data: &data})
}

// @Summary		Update part
// @Description	Updates an existing part. Only values to be updated need to be specified.
// @Tags			Parts
// @Accept			json
// @Produce		json
// @Success		200		{object}	PartResponse
// @Failure		400		{object}	PartResponse
// @Failure		404		{object}	PartResponse
// @Failure		500		{object}	PartResponse
// @Param			id		path		uint64			true	"ID of the part"
// @Param			part	body		PartEditable	true	"Part"
// @Router			/v1/parts/{id} [patch]
func (co Controller) UpdatePart(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartResponse{Error: &s})
		return
	}

	part, err := co.Parts.ByID(uri.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartResponse{Error: &s})
		return
	}

	// Bind over the current state so that unset fields keep their values
	editable := newPartEditable(part)
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartResponse{Error: &s})
		return
	}

	updated := editable.model()
	updated.ID = part.ID
	updated.DateAdded = part.DateAdded

	err = co.Parts.Update(updated)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartResponse{Error: &s})
		return
	}

	data := newPart(c, updated)
	c.JSON(http.StatusOK, PartResponse{Data: &data})
}

// @Summary		Delete part
// @Description	Deletes a part. All allocations referencing it are deleted, too.
// @Tags			Parts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		uint64	true	"ID of the part"
// @Router			/v1/parts/{id} [delete]
func (co Controller) DeletePart(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	part, err := co.Parts.ByID(uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = co.Parts.Delete(part)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Parts
// @Success		204
// @Param			id	path	uint64	true	"ID of the part"
// @Router			/v1/parts/{id}/stock [options]
func (co Controller) OptionsPartStock(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Transfer stock
// @Description	Adds stock to or removes stock from a part. Removed stock can be committed to a project in the same transaction.
// @Tags			Parts
// @Accept			json
// @Produce		json
// @Success		200		{object}	PartResponse
// @Failure		400		{object}	PartResponse
// @Failure		404		{object}	PartResponse
// @Failure		500		{object}	PartResponse
// @Param			id		path		uint64				true	"ID of the part"
// @Param			stock	body		PartStockRequest	true	"Stock transfer"
// @Router			/v1/parts/{id}/stock [post]
func (co Controller) UpdatePartStock(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartResponse{Error: &s})
		return
	}

	var request PartStockRequest
	err = httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartResponse{Error: &s})
		return
	}

	var part models.Part
	if request.Direction == "add" {
		part, err = co.Parts.AddStock(uri.ID, request.Quantity)
	} else {
		part, err = co.Parts.RemoveStock(uri.ID, request.Quantity, request.ProjectID)
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartResponse{Error: &s})
		return
	}

	data := newPart(c, part)
	c.JSON(http.StatusOK, PartResponse{Data: &data})
}
