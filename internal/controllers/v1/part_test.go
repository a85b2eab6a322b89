package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/bazooka-parts/backend/internal/controllers/v1"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestOptionsPart() {
	recorder := suite.request(http.MethodOptions, "/v1/parts", nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", recorder.Header().Get("allow"))

	part := suite.createTestPart(v1.PartEditable{})
	recorder = suite.request(http.MethodOptions, part.Data.Links.Self, nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH, DELETE", recorder.Header().Get("allow"))

	recorder = suite.request(http.MethodOptions, "/v1/parts/2038", nil)
	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func (suite *TestSuiteStandard) TestCreatePart() {
	response := suite.createTestPart(v1.PartEditable{
		Name:     "Cassette",
		Category: "Drivetrain",
		Quantity: 3,
		Price:    decimal.NewFromFloat(89.90),
	})

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Cassette", response.Data.Name)
	assert.Equal(suite.T(), 3, response.Data.Quantity)
	assert.False(suite.T(), response.Data.DateAdded.IsZero())
	assert.NotEmpty(suite.T(), response.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestCreatePartInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"broken JSON", `{ "name": "Chain"`},
		{"name missing", v1.PartEditable{Category: "Other"}},
		{"category missing", v1.PartEditable{Name: "Chain"}},
		{"negative quantity", v1.PartEditable{Name: "Chain", Category: "Other", Quantity: -1}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := suite.request(http.MethodPost, "/v1/parts", tt.body)
			assertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestGetParts() {
	_ = suite.createTestPart(v1.PartEditable{Name: "Chain", Category: "Drivetrain"})
	_ = suite.createTestPart(v1.PartEditable{Name: "Saddle", Category: "Saddle", Quantity: 1, MinimalStock: 2})

	var response v1.PartListResponse

	recorder := suite.request(http.MethodGet, "/v1/parts", nil)
	assertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	decodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 2)

	recorder = suite.request(http.MethodGet, "/v1/parts?category=Drivetrain", nil)
	assertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	decodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Chain", response.Data[0].Name)

	recorder = suite.request(http.MethodGet, "/v1/parts?lowStock=true", nil)
	assertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	decodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Saddle", response.Data[0].Name)
	assert.True(suite.T(), response.Data[0].LowStock)

	recorder = suite.request(http.MethodGet, "/v1/parts?search=cha", nil)
	assertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	decodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Chain", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestGetPart() {
	part := suite.createTestPart(v1.PartEditable{Name: "Fork"})

	recorder := suite.request(http.MethodGet, part.Data.Links.Self, nil)
	assertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.PartResponse
	decodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Fork", response.Data.Name)
}

func (suite *TestSuiteStandard) TestGetPartInvalid() {
	recorder := suite.request(http.MethodGet, "/v1/parts/nan", nil)
	assertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = suite.request(http.MethodGet, "/v1/parts/2038", nil)
	assertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdatePart() {
	part := suite.createTestPart(v1.PartEditable{Name: "Chain", Category: "Drivetrain", Quantity: 2})

	recorder := suite.request(http.MethodPatch, part.Data.Links.Self, map[string]any{
		"quantity": 7,
	})
	assertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.PartResponse
	decodeResponse(suite.T(), &recorder, &response)

	// Unset fields keep their values
	assert.Equal(suite.T(), 7, response.Data.Quantity)
	assert.Equal(suite.T(), "Chain", response.Data.Name)
	assert.Equal(suite.T(), "Drivetrain", response.Data.Category)
	assert.Equal(suite.T(), part.Data.DateAdded, response.Data.DateAdded)
}

func (suite *TestSuiteStandard) TestUpdatePartInvalid() {
	part := suite.createTestPart(v1.PartEditable{})

	recorder := suite.request(http.MethodPatch, "/v1/parts/2038", map[string]any{"quantity": 7})
	assertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = suite.request(http.MethodPatch, part.Data.Links.Self, `{ "name": `)
	assertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = suite.request(http.MethodPatch, part.Data.Links.Self, map[string]any{"name": ""})
	assertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDeletePart() {
	part := suite.createTestPart(v1.PartEditable{})

	recorder := suite.request(http.MethodDelete, part.Data.Links.Self, nil)
	assertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = suite.request(http.MethodGet, part.Data.Links.Self, nil)
	assertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = suite.request(http.MethodDelete, part.Data.Links.Self, nil)
	assertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdatePartStock() {
	part := suite.createTestPart(v1.PartEditable{Quantity: 5})

	recorder := suite.request(http.MethodPost, part.Data.Links.Stock, v1.PartStockRequest{
		Direction: "add",
		Quantity:  3,
	})
	assertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.PartResponse
	decodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), 8, response.Data.Quantity)

	recorder = suite.request(http.MethodPost, part.Data.Links.Stock, v1.PartStockRequest{
		Direction: "remove",
		Quantity:  2,
	})
	assertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	decodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), 6, response.Data.Quantity)

	// Removing more than is on hand fails
	recorder = suite.request(http.MethodPost, part.Data.Links.Stock, v1.PartStockRequest{
		Direction: "remove",
		Quantity:  100,
	})
	assertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdatePartStockIntoProject() {
	part := suite.createTestPart(v1.PartEditable{Quantity: 5})
	project := suite.createTestProject(v1.ProjectEditable{})

	recorder := suite.request(http.MethodPost, part.Data.Links.Stock, v1.PartStockRequest{
		Direction: "remove",
		Quantity:  2,
		ProjectID: &project.Data.ID,
	})
	assertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.PartResponse
	decodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), 3, response.Data.Quantity)

	// The removed units are committed to the project
	recorder = suite.request(http.MethodGet, fmt.Sprintf("/v1/allocations?project=%d", project.Data.ID), nil)
	assertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var allocations v1.AllocationListResponse
	decodeResponse(suite.T(), &recorder, &allocations)
	require.Len(suite.T(), allocations.Data, 1)
	assert.Equal(suite.T(), 2, allocations.Data[0].Quantity)
}

func (suite *TestSuiteStandard) TestUpdatePartStockInvalid() {
	part := suite.createTestPart(v1.PartEditable{Quantity: 5})

	tests := []struct {
		name string
		body any
	}{
		{"direction missing", map[string]any{"quantity": 1}},
		{"direction unknown", map[string]any{"direction": "sideways", "quantity": 1}},
		{"quantity missing", map[string]any{"direction": "add"}},
		{"quantity negative", map[string]any{"direction": "add", "quantity": -1}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := suite.request(http.MethodPost, part.Data.Links.Stock, tt.body)
			assertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}
