package v1

import (
	"net/http"

	"github.com/bazooka-parts/backend/internal/httputil"
	"github.com/bazooka-parts/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterProjectRoutes registers the routes for projects with the
// RouterGroup that is passed.
func (co Controller) RegisterProjectRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsProjectList)
		r.GET("", co.GetProjects)
		r.POST("", co.CreateProject)
	}

	// Project with ID
	{
		r.OPTIONS("/:id", co.OptionsProjectDetail)
		r.GET("/:id", co.GetProject)
		r.PATCH("/:id", co.UpdateProject)
		r.DELETE("/:id", co.DeleteProject)
		r.OPTIONS("/:id/archive", co.OptionsProjectArchive)
		r.POST("/:id/archive", co.ArchiveProject)
		r.OPTIONS("/:id/unarchive", co.OptionsProjectArchive)
		r.POST("/:id/unarchive", co.UnarchiveProject)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Router			/v1/projects [options]
func (co Controller) OptionsProjectList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		uint64	true	"ID of the project"
// @Router			/v1/projects/{id} [options]
func (co Controller) OptionsProjectDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = co.Projects.ByID(uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Param			id	path	uint64	true	"ID of the project"
// @Router			/v1/projects/{id}/archive [options]
func (co Controller) OptionsProjectArchive(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create project
// @Description	Creates a new project
// @Tags			Projects
// @Produce		json
// @Success		201		{object}	ProjectResponse
// @Failure		400		{object}	ProjectResponse
// @Failure		500		{object}	ProjectResponse
// @Param			project	body		ProjectEditable	true	"Project"
// @Router			/v1/projects [post]
func (co Controller) CreateProject(c *gin.Context) {
	var editable ProjectEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{Error: &s})
		return
	}

	id, err := co.Projects.Insert(editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{Error: &s})
		return
	}

	project, err := co.Projects.ByID(id)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{Error: &s})
		return
	}

	data := newProject(c, project)
	c.JSON(http.StatusCreated, ProjectResponse{Data: &data})
}

// @Summary		Get projects
// @Description	Returns a list of projects. Active projects are returned unless the archived parameter is set.
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectListResponse
// @Failure		500	{object}	ProjectListResponse
// @Router			/v1/projects [get]
// @Param			archived	query	bool	false	"List archived instead of active projects"
// @Param			search		query	string	false	"Search for this text in name and description of active projects"
func (co Controller) GetProjects(c *gin.Context) {
	var filter ProjectQueryFilter

	// Every parameter binds into a string or bool, this always succeeds
	_ = c.Bind(&filter)

	var projects []models.Project
	var err error

	switch {
	case filter.Search != "":
		projects, err = co.Projects.Search(filter.Search)
	case filter.Archived:
		projects, err = co.Projects.ListArchived()
	default:
		projects, err = co.Projects.ListActive()
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectListResponse{Error: &s})
		return
	}

	data := make([]Project, 0, len(projects))
	for _, project := range projects {
		data = append(data, newProject(c, project))
	}

	c.JSON(http.StatusOK, ProjectListResponse{Data: data})
}

// @Summary		Get project
// @Description	Returns a specific project
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectResponse
// @Failure		400	{object}	ProjectResponse
// @Failure		404	{object}	ProjectResponse
// @Failure		500	{object}	ProjectResponse
// @Param			id	path		uint64	true	"ID of the project"
// @Router			/v1/projects/{id} [get]
func (co Controller) GetProject(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{Error: &s})
		return
	}

	project, err := co.Projects.ByID(uri.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{Error: &s})
		return
	}

	data := newProject(c, project)
	c.JSON(http.StatusOK, ProjectResponse{Data: &data})
}

// @Summary		Update project
// @Description	Updates an existing project. Only values to be updated need to be specified.
// @Tags			Projects
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProjectResponse
// @Failure		400		{object}	ProjectResponse
// @Failure		404		{object}	ProjectResponse
// @Failure		500		{object}	ProjectResponse
// @Param			id		path		uint64			true	"ID of the project"
// @Param			project	body		ProjectEditable	true	"Project"
// @Router			/v1/projects/{id} [patch]
func (co Controller) UpdateProject(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{Error: &s})
		return
	}

	project, err := co.Projects.ByID(uri.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{Error: &s})
		return
	}

	// Bind over the current state so that unset fields keep their values
	editable := newProjectEditable(project)
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{Error: &s})
		return
	}

	updated := editable.model()
	updated.ID = project.ID
	updated.DateCreated = project.DateCreated

	err = co.Projects.Update(updated)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{Error: &s})
		return
	}

	data := newProject(c, updated)
	c.JSON(http.StatusOK, ProjectResponse{Data: &data})
}

// @Summary		Delete project
// @Description	Deletes a project. All allocations for it are deleted, too.
// @Tags			Projects
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		uint64	true	"ID of the project"
// @Router			/v1/projects/{id} [delete]
func (co Controller) DeleteProject(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	project, err := co.Projects.ByID(uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = co.Projects.Delete(project)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Archive project
// @Description	Archives a project. Archiving an archived project is a no-op.
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectResponse
// @Failure		400	{object}	ProjectResponse
// @Failure		404	{object}	ProjectResponse
// @Param			id	path		uint64	true	"ID of the project"
// @Router			/v1/projects/{id}/archive [post]
func (co Controller) ArchiveProject(c *gin.Context) {
	co.setProjectArchived(c, true)
}

// @Summary		Unarchive project
// @Description	Unarchives a project. Unarchiving an active project is a no-op.
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectResponse
// @Failure		400	{object}	ProjectResponse
// @Failure		404	{object}	ProjectResponse
// @Param			id	path		uint64	true	"ID of the project"
// @Router			/v1/projects/{id}/unarchive [post]
func (co Controller) UnarchiveProject(c *gin.Context) {
	co.setProjectArchived(c, false)
}

func (co Controller) setProjectArchived(c *gin.Context, archived bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{Error: &s})
		return
	}

	var project models.Project
	if archived {
		project, err = co.Projects.Archive(uri.ID)
	} else {
		project, err = co.Projects.Unarchive(uri.ID)
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{Error: &s})
		return
	}

	data := newProject(c, project)
	c.JSON(http.StatusOK, ProjectResponse{Data: &data})
}
