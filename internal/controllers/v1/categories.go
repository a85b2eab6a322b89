package v1

import (
	"net/http"

	"github.com/bazooka-parts/backend/internal/httputil"
	"github.com/bazooka-parts/backend/internal/ledger"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for categories with the
// RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsCategoryList)
	r.GET("", co.GetCategories)
}

type CategoryListResponse struct {
	Data []string `json:"data"` // The fixed set of part categories
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func (co Controller) OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get categories
// @Description	Returns the fixed set of part categories
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoryListResponse{Data: ledger.Categories})
}
