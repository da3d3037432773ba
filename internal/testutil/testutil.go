// Package testutil provides shared helpers for constructing planner test
// fixtures: action libraries and HTTP request/response round-trips
// against the planner-service handlers.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"goap-planner/internal/goap"
)

// SurvivalLibrary returns a small, fixed action library exercising a
// precondition-forced detour: MakeTool must run before Build, and
// BareHands is a costlier direct alternative.
func SurvivalLibrary() []goap.Action {
	return []goap.Action{
		{
			Name:           "MakeTool",
			Cost:           2,
			Preconditions:  goap.NewWorldState(nil),
			Postconditions: goap.NewWorldState(map[string]bool{"hasTool": true}),
		},
		{
			Name:           "Build",
			Cost:           5,
			Preconditions:  goap.NewWorldState(map[string]bool{"hasTool": true}),
			Postconditions: goap.NewWorldState(map[string]bool{"hasHouse": true}),
		},
		{
			Name:           "BareHands",
			Cost:           20,
			Preconditions:  goap.NewWorldState(nil),
			Postconditions: goap.NewWorldState(map[string]bool{"hasHouse": true}),
		},
	}
}

// PostJSON marshals body, POSTs it to handler at path, and returns the
// recorded response.
func PostJSON(t *testing.T, handler http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

// DecodeJSON unmarshals a response recorder's body into dest.
func DecodeJSON(t *testing.T, rr *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), dest))
}
