package v1

import (
	"net/http"

	"github.com/bazooka-parts/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterStatsRoutes registers the routes for inventory statistics with
// the RouterGroup that is passed.
func (co Controller) RegisterStatsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsStats)
	r.GET("", co.GetStats)
}

type Stats struct {
	Parts            int64           `json:"parts" example:"12"`            // Number of parts
	TotalQuantity    int64           `json:"totalQuantity" example:"80"`    // Sum of all stock quantities
	TotalValue       decimal.Decimal `json:"totalValue" example:"1893.20"`  // Value of all stock on hand
	LowStock         int64           `json:"lowStock" example:"2"`          // Number of parts below their reorder threshold
	ActiveProjects   int64           `json:"activeProjects" example:"3"`    // Number of active projects
	ArchivedProjects int64           `json:"archivedProjects" example:"1"`  // Number of archived projects
}

type StatsResponse struct {
	Data  *Stats  `json:"data"`  // The inventory statistics
	Error *string `json:"error"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Stats
// @Success		204
// @Router			/v1/stats [options]
func (co Controller) OptionsStats(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get statistics
// @Description	Returns inventory and project statistics for the dashboard
// @Tags			Stats
// @Produce		json
// @Success		200	{object}	StatsResponse
// @Failure		500	{object}	StatsResponse
// @Router			/v1/stats [get]
func (co Controller) GetStats(c *gin.Context) {
	stats := Stats{}

	var err error
	abort := func(err error) {
		s := err.Error()
		c.JSON(status(err), StatsResponse{Error: &s})
	}

	stats.Parts, err = co.Parts.Count()
	if err != nil {
		abort(err)
		return
	}

	stats.TotalQuantity, err = co.Parts.TotalQuantity()
	if err != nil {
		abort(err)
		return
	}

	stats.TotalValue, err = co.Parts.TotalValue()
	if err != nil {
		abort(err)
		return
	}

	lowStock, err := co.Parts.LowStock()
	if err != nil {
		abort(err)
		return
	}
	stats.LowStock = int64(len(lowStock))

	stats.ActiveProjects, err = co.Projects.CountActive()
	if err != nil {
		abort(err)
		return
	}

	stats.ArchivedProjects, err = co.Projects.CountArchived()
	if err != nil {
		abort(err)
		return
	}

	c.JSON(http.StatusOK, StatsResponse{Data: &stats})
}
