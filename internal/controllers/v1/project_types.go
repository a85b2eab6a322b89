package v1

import (
	"fmt"
	"time"

	"github.com/bazooka-parts/backend/internal/httputil"
	"github.com/bazooka-parts/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProjectEditable represents all user configurable parameters of a
// project
type ProjectEditable struct {
	Name                 string           `json:"name" example:"Gravel build" default:""`  // Name of the project
	Description          string           `json:"description" example:"Winter project" default:""` // Description of the project
	TargetCompletionDate *time.Time       `json:"targetCompletionDate"`                    // Optional target completion date
	Budget               *decimal.Decimal `json:"budget" example:"1500"`                   // Optional budget
	Archived             bool             `json:"archived" example:"false" default:"false"` // Is the project archived?
}

func (editable ProjectEditable) model() models.Project {
	return models.Project{
		Name:                 editable.Name,
		Description:          editable.Description,
		TargetCompletionDate: editable.TargetCompletionDate,
		Budget:               editable.Budget,
		Archived:             editable.Archived,
	}
}

func newProjectEditable(model models.Project) ProjectEditable {
	return ProjectEditable{
		Name:                 model.Name,
		Description:          model.Description,
		TargetCompletionDate: model.TargetCompletionDate,
		Budget:               model.Budget,
		Archived:             model.Archived,
	}
}

type ProjectLinks struct {
	Self        string `json:"self" example:"https://example.com/v1/projects/1"`                    // The project itself
	Allocations string `json:"allocations" example:"https://example.com/v1/allocations?project=1"` // Allocations for this project
	Archive     string `json:"archive" example:"https://example.com/v1/projects/1/archive"`         // Archive endpoint for this project
	Unarchive   string `json:"unarchive" example:"https://example.com/v1/projects/1/unarchive"`     // Unarchive endpoint for this project
}

type Project struct {
	models.DefaultModel
	ProjectEditable
	DateCreated time.Time `json:"dateCreated"` // Time the project was created

	Links ProjectLinks `json:"links"`
}

func newProject(c *gin.Context, model models.Project) Project {
	url := httputil.RequestPathV1(c)

	return Project{
		DefaultModel:    model.DefaultModel,
		ProjectEditable: newProjectEditable(model),
		DateCreated:     model.DateCreated,
		Links: ProjectLinks{
			Self:        fmt.Sprintf("%s/projects/%d", url, model.ID),
			Allocations: fmt.Sprintf("%s/allocations?project=%d", url, model.ID),
			Archive:     fmt.Sprintf("%s/projects/%d/archive", url, model.ID),
			Unarchive:   fmt.Sprintf("%s/projects/%d/unarchive", url, model.ID),
		},
	}
}

type ProjectResponse struct {
	Data  *Project `json:"data"`                                                    // Data for the project
	Error *string  `json:"error" example:"there is no project matching your query"` // The error, if any occurred
}

type ProjectListResponse struct {
	Data  []Project `json:"data"`                                                    // List of projects
	Error *string   `json:"error" example:"there is no project matching your query"` // The error, if any occurred
}

// ProjectQueryFilter narrows the project list down. Search only covers
// active projects.
type ProjectQueryFilter struct {
	Archived bool   `form:"archived"` // List archived instead of active projects
	Search   string `form:"search"`   // Search for this text in name and description of active projects
}
