package ledger_test

import (
	"time"

	"github.com/bazooka-parts/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestProjectListNewestFirst() {
	old := suite.createTestProject(models.Project{Name: "Commuter", DateCreated: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)})
	recent := suite.createTestProject(models.Project{Name: "Gravel build", DateCreated: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})

	projects, err := suite.projects.ListActive()
	require.Nil(suite.T(), err)
	require.Len(suite.T(), projects, 2)

	assert.Equal(suite.T(), recent.ID, projects[0].ID)
	assert.Equal(suite.T(), old.ID, projects[1].ID)
}

func (suite *TestSuiteStandard) TestProjectListSplitsByArchived() {
	active := suite.createTestProject(models.Project{Name: "Gravel build"})
	archived := suite.createTestProject(models.Project{Name: "Commuter", Archived: true})

	projects, err := suite.projects.ListActive()
	require.Nil(suite.T(), err)
	require.Len(suite.T(), projects, 1)
	assert.Equal(suite.T(), active.ID, projects[0].ID)

	projects, err = suite.projects.ListArchived()
	require.Nil(suite.T(), err)
	require.Len(suite.T(), projects, 1)
	assert.Equal(suite.T(), archived.ID, projects[0].ID)
}

func (suite *TestSuiteStandard) TestProjectByID() {
	project := suite.createTestProject(models.Project{Name: "Repair"})

	loaded, err := suite.projects.ByID(project.ID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Repair", loaded.Name)

	_, err = suite.projects.ByID(project.ID + 1)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestProjectSearchActiveOnly() {
	active := suite.createTestProject(models.Project{Name: "Gravel build", Description: "Winter project"})
	_ = suite.createTestProject(models.Project{Name: "Gravel racer", Archived: true})

	// Archived projects are never part of search results
	projects, err := suite.projects.Search("gravel")
	require.Nil(suite.T(), err)
	require.Len(suite.T(), projects, 1)
	assert.Equal(suite.T(), active.ID, projects[0].ID)

	// Match on the description
	projects, err = suite.projects.Search("winter")
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), projects, 1)

	// Empty search returns all active projects
	projects, err = suite.projects.Search("")
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), projects, 1)
}

func (suite *TestSuiteStandard) TestProjectInsertUpsert() {
	id, err := suite.projects.Insert(models.Project{Name: "Gravel build"})
	require.Nil(suite.T(), err)
	assert.NotZero(suite.T(), id)

	replacedID, err := suite.projects.Insert(models.Project{
		DefaultModel: models.DefaultModel{ID: id},
		Name:         "Gravel build 2.0",
	})
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), id, replacedID)

	count, err := suite.projects.CountActive()
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(1), count)

	project, err := suite.projects.ByID(id)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Gravel build 2.0", project.Name)
}

func (suite *TestSuiteStandard) TestProjectUpdate() {
	project := suite.createTestProject(models.Project{Name: "Repair"})

	budget := decimal.NewFromInt(500)
	project.Budget = &budget
	err := suite.projects.Update(project)
	require.Nil(suite.T(), err)

	loaded, err := suite.projects.ByID(project.ID)
	require.Nil(suite.T(), err)
	require.NotNil(suite.T(), loaded.Budget)
	assert.True(suite.T(), budget.Equal(*loaded.Budget))
}

func (suite *TestSuiteStandard) TestProjectUpdateNotFound() {
	err := suite.projects.Update(models.Project{
		DefaultModel: models.DefaultModel{ID: 2038},
		Name:         "Ghost",
	})

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestProjectArchive() {
	project := suite.createTestProject(models.Project{})

	archived, err := suite.projects.Archive(project.ID)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), archived.Archived)

	// Archiving an archived project stays archived
	archived, err = suite.projects.Archive(project.ID)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), archived.Archived)

	restored, err := suite.projects.Unarchive(project.ID)
	require.Nil(suite.T(), err)
	assert.False(suite.T(), restored.Archived)

	_, err = suite.projects.Archive(project.ID + 1)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestProjectCounts() {
	_ = suite.createTestProject(models.Project{Name: "Gravel build"})
	_ = suite.createTestProject(models.Project{Name: "Repair"})
	_ = suite.createTestProject(models.Project{Name: "Commuter", Archived: true})

	active, err := suite.projects.CountActive()
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(2), active)

	archived, err := suite.projects.CountArchived()
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(1), archived)
}

func (suite *TestSuiteStandard) TestProjectWatchActive() {
	sub, err := suite.projects.WatchActive()
	require.Nil(suite.T(), err)
	defer sub.Stop()

	assert.Empty(suite.T(), receive(suite.T(), sub))

	project := suite.createTestProject(models.Project{})

	projects := receive(suite.T(), sub)
	require.Len(suite.T(), projects, 1)
	assert.Equal(suite.T(), project.ID, projects[0].ID)

	// Archiving moves the project out of the active list
	_, err = suite.projects.Archive(project.ID)
	require.Nil(suite.T(), err)

	assert.Empty(suite.T(), receive(suite.T(), sub))
}

func (suite *TestSuiteStandard) TestProjectWatchByIDMissing() {
	sub, err := suite.projects.WatchByID(2038)
	require.Nil(suite.T(), err)
	defer sub.Stop()

	// A missing project yields a nil snapshot, not an error
	assert.Nil(suite.T(), receive(suite.T(), sub))
}
