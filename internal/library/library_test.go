package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goap-planner/internal/goap"
)

func TestParse_ValidDocument(t *testing.T) {
	doc := `{
		"actions": [
			{"name": "MakeTool", "cost": 2, "preConditions": {}, "postConditions": {"hasTool": true}},
			{"name": "Build", "cost": 5, "preConditions": {"hasTool": true}, "postConditions": {"hasHouse": true}}
		]
	}`

	actions, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, actions, 2)

	assert.Equal(t, "MakeTool", actions[0].Name)
	assert.EqualValues(t, 2, actions[0].Cost)
	assert.Equal(t, goap.True, actions[1].Preconditions.Get("hasTool"))
	assert.Equal(t, goap.True, actions[1].Postconditions.Get("hasHouse"))
}

func TestParse_MissingName(t *testing.T) {
	doc := `{"actions": [{"cost": 1, "preConditions": {}, "postConditions": {}}]}`
	_, err := Parse([]byte(doc))
	assert.Error(t, err)
}

func TestParse_MissingCost(t *testing.T) {
	doc := `{"actions": [{"name": "A", "preConditions": {}, "postConditions": {}}]}`
	_, err := Parse([]byte(doc))
	assert.Error(t, err)
}

func TestParse_MissingPreConditions(t *testing.T) {
	doc := `{"actions": [{"name": "A", "cost": 1, "postConditions": {}}]}`
	_, err := Parse([]byte(doc))
	assert.Error(t, err)
}

func TestParse_MissingPostConditions(t *testing.T) {
	doc := `{"actions": [{"name": "A", "cost": 1, "preConditions": {}}]}`
	_, err := Parse([]byte(doc))
	assert.Error(t, err)
}

func TestParse_DuplicateName(t *testing.T) {
	doc := `{
		"actions": [
			{"name": "A", "cost": 1, "preConditions": {}, "postConditions": {}},
			{"name": "A", "cost": 2, "preConditions": {}, "postConditions": {}}
		]
	}`
	_, err := Parse([]byte(doc))
	assert.Error(t, err)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte("not valid json"))
	assert.Error(t, err)
}

func TestParse_EmptyActionsArray(t *testing.T) {
	actions, err := Parse([]byte(`{"actions": []}`))
	require.NoError(t, err)
	assert.Empty(t, actions)
}

func TestParse_ZeroCostAccepted(t *testing.T) {
	doc := `{"actions": [{"name": "Free", "cost": 0, "preConditions": {}, "postConditions": {"g": true}}]}`
	actions, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.EqualValues(t, 0, actions[0].Cost)
}

func TestLoadFromFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "library.json")
	doc := `{"actions": [{"name": "Wake", "cost": 1, "preConditions": {}, "postConditions": {"awake": true}}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	actions, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, "Wake", actions[0].Name)
}

func TestLoadFromFile_NotFound(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/library.json")
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	actions := []goap.Action{
		{
			Name:           "Build",
			Cost:           5,
			Preconditions:  goap.NewWorldState(map[string]bool{"hasTool": true}),
			Postconditions: goap.NewWorldState(map[string]bool{"hasHouse": true}),
		},
	}

	data, err := Marshal(actions)
	require.NoError(t, err)

	roundTripped, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, roundTripped, 1)

	assert.Equal(t, actions[0].Name, roundTripped[0].Name)
	assert.Equal(t, actions[0].Cost, roundTripped[0].Cost)
	assert.Equal(t, goap.True, roundTripped[0].Preconditions.Get("hasTool"))
}
