//go:build integration
// +build integration

package trace

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Integration tests for the MongoDB search trace repository.
// Run with: go test -tags=integration -v ./internal/trace/...
// Requires: MongoDB running on localhost:27017 or TEST_MONGODB_URI env var

func getMongoClient(t *testing.T) *mongo.Client {
	mongoURI := os.Getenv("TEST_MONGODB_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	require.NoError(t, err)

	if err := client.Ping(ctx, nil); err != nil {
		t.Skip("MongoDB not available, skipping integration tests")
	}
	return client
}

func setupTestRepo(t *testing.T) (*Repository, func()) {
	client := getMongoClient(t)
	db := client.Database("test_goap_traces")
	repo := NewRepository(db)

	cleanup := func() {
		ctx := context.Background()
		db.Drop(ctx)
		client.Disconnect(ctx)
	}
	return repo, cleanup
}

func TestRepository_Integration_RecordAndGetByLibrary(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	ctx := context.Background()
	_, err := repo.Record(ctx, Entry{
		LibraryID:    "survival",
		InitialState: map[string]bool{"hasTool": false},
		GoalState:    map[string]bool{"hasHouse": true},
		Diagnostic:   "FoundPlan",
		PlanActions:  []string{"MakeTool", "Build"},
		Cost:         7,
		NodesVisited: 3,
		Duration:     2 * time.Millisecond,
	})
	require.NoError(t, err)

	entries, err := repo.GetByLibrary(ctx, "survival", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "FoundPlan", entries[0].Diagnostic)
	assert.Equal(t, []string{"MakeTool", "Build"}, entries[0].PlanActions)
}

func TestRepository_Integration_GetFailures(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	ctx := context.Background()
	_, err := repo.Record(ctx, Entry{LibraryID: "survival", Diagnostic: "found_plan"})
	require.NoError(t, err)
	_, err = repo.Record(ctx, Entry{LibraryID: "survival", Diagnostic: "no_solution_found"})
	require.NoError(t, err)

	failures, err := repo.GetFailures(ctx, "survival", 10)
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, "no_solution_found", failures[0].Diagnostic)
}
