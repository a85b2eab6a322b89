// Package healthz implements the liveness endpoint.
package healthz

import (
	"net/http"

	"github.com/bazooka-parts/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Controller holds the database the health check pings.
type Controller struct {
	DB *gorm.DB
}

func NewController(db *gorm.DB) Controller {
	return Controller{DB: db}
}

// RegisterRoutes registers the healthz routes with the RouterGroup that
// is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.Options)
	r.GET("", co.Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func (co Controller) Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Success		204
// @Failure		500
// @Router			/healthz [get]
func (co Controller) Get(c *gin.Context) {
	sqlDB, err := co.DB.DB()
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	err = sqlDB.Ping()
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}
