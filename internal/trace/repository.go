// Package trace stores schemaless search traces in MongoDB: one document
// per Plan call, capturing enough of the search to let an operator
// inspect why a particular plan (or failure) was produced.
package trace

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "search_traces"

// Entry is a single recorded Plan call.
type Entry struct {
	ID           uuid.UUID       `bson:"_id"`
	LibraryID    string          `bson:"library_id"`
	InitialState map[string]bool `bson:"initial_state"`
	GoalState    map[string]bool `bson:"goal_state"`
	Diagnostic   string          `bson:"diagnostic"`
	PlanActions  []string        `bson:"plan_actions,omitempty"`
	Cost         uint64          `bson:"cost"`
	NodesVisited int             `bson:"nodes_visited"`
	Duration     time.Duration   `bson:"duration_ns"`
	RecordedAt   time.Time       `bson:"recorded_at"`
}

// Repository records and retrieves search traces.
type Repository struct {
	collection *mongo.Collection
}

// NewRepository wraps a mongo.Database for trace storage.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection(collectionName)}
}

// Record inserts a new trace entry, assigning it an ID and timestamp.
func (r *Repository) Record(ctx context.Context, entry Entry) (uuid.UUID, error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, entry); err != nil {
		return uuid.Nil, err
	}
	return entry.ID, nil
}

// GetByLibrary returns the most recent trace entries for a library, newest
// first, capped at limit.
func (r *Repository) GetByLibrary(ctx context.Context, libraryID string, limit int64) ([]Entry, error) {
	filter := bson.M{"library_id": libraryID}
	opts := options.Find().SetSort(bson.D{{Key: "recorded_at", Value: -1}}).SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetFailures returns the most recent entries whose diagnostic was not
// found_plan or already_satisfied, useful for investigating library gaps.
func (r *Repository) GetFailures(ctx context.Context, libraryID string, limit int64) ([]Entry, error) {
	filter := bson.M{
		"library_id": libraryID,
		"diagnostic": bson.M{"$nin": bson.A{"found_plan", "already_satisfied"}},
	}
	opts := options.Find().SetSort(bson.D{{Key: "recorded_at", Value: -1}}).SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
