package v1

import (
	"io"
	"net/http"

	"github.com/bazooka-parts/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// watchedTables are all tables a client can observe through the event
// stream.
var watchedTables = []string{"parts", "projects", "project_parts"}

// RegisterEventRoutes registers the routes for the change event stream
// with the RouterGroup that is passed.
func (co Controller) RegisterEventRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsEvents)
	r.GET("", co.GetEvents)
}

type ChangeEvent struct {
	Table string `json:"table" example:"parts"` // The table that changed
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Events
// @Success		204
// @Router			/v1/events [options]
func (co Controller) OptionsEvents(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Change events
// @Description	Streams a server-sent event for every change to parts, projects or allocations. Clients use this to refresh their queries.
// @Tags			Events
// @Produce		text/event-stream
// @Success		200	{object}	ChangeEvent
// @Router			/v1/events [get]
func (co Controller) GetEvents(c *gin.Context) {
	changes, release := co.Hub.Register(watchedTables...)
	defer release()

	c.Status(http.StatusOK)
	c.Stream(func(_ io.Writer) bool {
		select {
		case table, ok := <-changes:
			if !ok {
				return false
			}

			c.SSEvent("change", ChangeEvent{Table: table})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
