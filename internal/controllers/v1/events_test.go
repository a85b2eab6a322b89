package v1_test

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestOptionsEvents() {
	recorder := suite.request(http.MethodOptions, "/v1/events", nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "OPTIONS, GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetEvents() {
	// Streaming needs a real connection, a bare response recorder cannot
	// signal a closing client
	server := httptest.NewServer(suite.router)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Notify in the background until the stream ends. The first signals
	// may be sent before the stream has registered, later ones land.
	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				suite.controller.Hub.Notify("parts")
			}
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/v1/events", nil)
	require.Nil(suite.T(), err)

	resp, err := http.DefaultClient.Do(req)
	require.Nil(suite.T(), err)
	defer resp.Body.Close()

	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)

	// Read the stream until one complete change event arrived, then
	// disconnect
	var gotEvent, gotData bool
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "event:") {
			gotEvent = assert.Equal(suite.T(), "event:change", line)
		}

		if strings.HasPrefix(line, "data:") {
			gotData = assert.Equal(suite.T(), `data:{"table":"parts"}`, line)
		}

		if gotEvent && gotData {
			break
		}
	}

	assert.True(suite.T(), gotEvent, "no change event was streamed")
	assert.True(suite.T(), gotData, "no event payload was streamed")
}
