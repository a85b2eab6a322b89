package v1_test

import (
	"net/http"

	v1 "github.com/bazooka-parts/backend/internal/controllers/v1"
	"github.com/bazooka-parts/backend/internal/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestGetV1() {
	recorder := suite.request(http.MethodGet, "/v1", nil)
	assertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.V1Response
	decodeResponse(suite.T(), &recorder, &response)
	assert.NotEmpty(suite.T(), response.Links.Parts)
	assert.NotEmpty(suite.T(), response.Links.Projects)
	assert.NotEmpty(suite.T(), response.Links.Allocations)
}

func (suite *TestSuiteStandard) TestGetCategories() {
	recorder := suite.request(http.MethodGet, "/v1/categories", nil)
	assertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	decodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), ledger.Categories, response.Data)
	assert.Contains(suite.T(), response.Data, "Drivetrain")
	assert.Equal(suite.T(), "Other", response.Data[len(response.Data)-1])
}

func (suite *TestSuiteStandard) TestGetStats() {
	_ = suite.createTestPart(v1.PartEditable{Name: "Chain", Quantity: 2, Price: decimal.NewFromFloat(24.99)})
	_ = suite.createTestPart(v1.PartEditable{Name: "Saddle", Category: "Saddle", Quantity: 1, MinimalStock: 2, Price: decimal.NewFromInt(50)})
	_ = suite.createTestProject(v1.ProjectEditable{Name: "Gravel build"})
	_ = suite.createTestProject(v1.ProjectEditable{Name: "Commuter", Archived: true})

	recorder := suite.request(http.MethodGet, "/v1/stats", nil)
	assertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.StatsResponse
	decodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), int64(2), response.Data.Parts)
	assert.Equal(suite.T(), int64(3), response.Data.TotalQuantity)
	assert.True(suite.T(), decimal.NewFromFloat(99.98).Equal(response.Data.TotalValue), "total value is %s", response.Data.TotalValue)
	assert.Equal(suite.T(), int64(1), response.Data.LowStock)
	assert.Equal(suite.T(), int64(1), response.Data.ActiveProjects)
	assert.Equal(suite.T(), int64(1), response.Data.ArchivedProjects)
}

func (suite *TestSuiteStandard) TestMethodNotFound() {
	recorder := suite.request(http.MethodGet, "/v1/does-not-exist", nil)
	assertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
