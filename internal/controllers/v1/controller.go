// Package v1 implements the v1 REST API on top of the ledgers.
package v1

import (
	"github.com/bazooka-parts/backend/internal/ledger"
	"github.com/bazooka-parts/backend/internal/watch"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Controller holds the ledgers the handlers operate on. It is
// constructed once at startup and passed to the router, there is no
// global state.
type Controller struct {
	Parts       ledger.PartLedger
	Projects    ledger.ProjectLedger
	Allocations ledger.AllocationLedger
	Hub         *watch.Hub
}

func NewController(db *gorm.DB, hub *watch.Hub) Controller {
	return Controller{
		Parts:       ledger.NewPartLedger(db, hub),
		Projects:    ledger.NewProjectLedger(db, hub),
		Allocations: ledger.NewAllocationLedger(db, hub),
		Hub:         hub,
	}
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is
// passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", co.GetV1)
	r.OPTIONS("", co.OptionsV1)

	co.RegisterPartRoutes(r.Group("/parts"))
	co.RegisterProjectRoutes(r.Group("/projects"))
	co.RegisterAllocationRoutes(r.Group("/allocations"))
	co.RegisterCategoryRoutes(r.Group("/categories"))
	co.RegisterStatsRoutes(r.Group("/stats"))
	co.RegisterEventRoutes(r.Group("/events"))
}

type URIID struct {
	ID uint64 `uri:"id" binding:"required"` // ID of the resource
}
