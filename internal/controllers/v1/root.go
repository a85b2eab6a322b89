package v1

import (
	"net/http"

	"github.com/bazooka-parts/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Parts       string `json:"parts" example:"https://example.com/v1/parts"`
	Projects    string `json:"projects" example:"https://example.com/v1/projects"`
	Allocations string `json:"allocations" example:"https://example.com/v1/allocations"`
	Categories  string `json:"categories" example:"https://example.com/v1/categories"`
	Stats       string `json:"stats" example:"https://example.com/v1/stats"`
	Events      string `json:"events" example:"https://example.com/v1/events"`
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func (co Controller) GetV1(c *gin.Context) {
	url := httputil.RequestPathV1(c)

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Parts:       url + "/parts",
			Projects:    url + "/projects",
			Allocations: url + "/allocations",
			Categories:  url + "/categories",
			Stats:       url + "/stats",
			Events:      url + "/events",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func (co Controller) OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
