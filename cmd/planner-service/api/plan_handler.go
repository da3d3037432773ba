package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"goap-planner/internal/audit"
	"goap-planner/internal/authn"
	"goap-planner/internal/cache"
	apierrors "goap-planner/internal/errors"
	"goap-planner/internal/events"
	"goap-planner/internal/goap"
	"goap-planner/internal/logging"
	"goap-planner/internal/metrics"
	"goap-planner/internal/store"
	"goap-planner/internal/trace"
)

// libraryLookup is the subset of store.Repository the plan handler needs.
type libraryLookup interface {
	GetLibrary(ctx context.Context, id uuid.UUID) (*store.Library, error)
}

// planResultCache is the subset of cache.PlanCache the plan handler needs.
type planResultCache interface {
	Get(ctx context.Context, key string) (*cache.PlanResult, error)
	Set(ctx context.Context, key string, result cache.PlanResult) error
}

// auditAppender is the subset of audit.Store the plan handler needs.
type auditAppender interface {
	Append(ctx context.Context, event audit.Event) error
}

// traceRecorder is the subset of trace.Repository the plan handler needs.
type traceRecorder interface {
	Record(ctx context.Context, entry trace.Entry) (uuid.UUID, error)
}

// planNotifier is the subset of events.Publisher the plan handler needs.
type planNotifier interface {
	PublishPlanCompleted(event events.PlanCompleted) error
	PublishPlanFailed(event events.PlanFailed) error
}

// PlanHandler serves POST /v1/plan: it loads a stored action library, runs
// the planner, and records the outcome across cache, audit log, search
// trace, metrics, and the event bus before responding.
type PlanHandler struct {
	libraries             libraryLookup
	cache                 planResultCache
	audit                 auditAppender
	trace                 traceRecorder
	notifier              planNotifier
	defaultMaxSearchNodes int
}

// NewPlanHandler wires a PlanHandler. notifier and trace may be nil:
// publication and trace recording are best-effort side channels, not
// correctness requirements of the plan response itself.
func NewPlanHandler(libraries libraryLookup, planCache planResultCache, auditStore auditAppender, traceRepo traceRecorder, notifier planNotifier, defaultMaxSearchNodes int) *PlanHandler {
	return &PlanHandler{
		libraries:             libraries,
		cache:                 planCache,
		audit:                 auditStore,
		trace:                 traceRepo,
		notifier:              notifier,
		defaultMaxSearchNodes: defaultMaxSearchNodes,
	}
}

type planRequest struct {
	LibraryID      uuid.UUID       `json:"library_id"`
	Initial        map[string]bool `json:"initial"`
	Goal           map[string]bool `json:"goal"`
	MaxSearchNodes *int            `json:"max_search_nodes,omitempty"`
}

type planResponse struct {
	Diagnostic   string   `json:"diagnostic"`
	Plan         []string `json:"plan"`
	Cost         uint64   `json:"cost"`
	NodesVisited int      `json:"nodes_visited"`
	Cached       bool     `json:"cached"`
}

// Plan handles POST /v1/plan.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.RespondWithError(w, apierrors.NewInvalidInput("malformed request body: %v", err))
		return
	}
	if len(req.Goal) == 0 {
		apierrors.RespondWithError(w, apierrors.ErrGoalRequired)
		return
	}

	lib, err := h.libraries.GetLibrary(r.Context(), req.LibraryID)
	if err != nil {
		apierrors.RespondWithError(w, apierrors.Wrap(apierrors.ErrLibraryNotFound, "library not found", err))
		return
	}

	initial := goap.NewWorldState(req.Initial)
	goal := goap.NewWorldState(req.Goal)

	key := cache.Key(req.LibraryID.String(), lib.Version, initial, goal)
	if h.cache != nil {
		if cached, err := h.cache.Get(r.Context(), key); err == nil && cached != nil {
			metrics.RecordCacheHit()
			writeJSON(w, http.StatusOK, planResponse{
				Diagnostic: cached.Diagnostic,
				Plan:       cached.ActionNames,
				Cost:       cached.Cost,
				Cached:     true,
			})
			return
		}
		metrics.RecordCacheMiss()
	}

	maxNodes := h.defaultMaxSearchNodes
	if req.MaxSearchNodes != nil {
		maxNodes = *req.MaxSearchNodes
	}

	var stats goap.Stats
	start := time.Now()
	plan, diag := goap.Plan(initial, goal, lib.Actions, goap.WithMaxSearchNodes(maxNodes), goap.WithStats(&stats))
	duration := time.Since(start)

	actionNames := make([]string, len(plan))
	var cost uint64
	for i, action := range plan {
		actionNames[i] = action.Name
		cost += uint64(action.Cost)
	}

	logging.LogPlanResult(r.Context(), req.LibraryID.String(), diag.String(), len(plan), cost, stats.NodesVisited, duration)
	metrics.RecordPlanResult(diag.String(), duration.Seconds(), stats.NodesVisited, cost)

	h.recordSideEffects(r.Context(), req, diag, actionNames, cost, stats.NodesVisited, duration)

	if diag == goap.DiagFoundPlan && h.cache != nil {
		_ = h.cache.Set(r.Context(), key, cache.PlanResult{ActionNames: actionNames, Diagnostic: diag.String(), Cost: cost})
	}

	writeJSON(w, http.StatusOK, planResponse{
		Diagnostic:   diag.String(),
		Plan:         actionNames,
		Cost:         cost,
		NodesVisited: stats.NodesVisited,
	})
}

// recordSideEffects persists the audit event and search trace and
// publishes the lifecycle notification. Failures here are logged, not
// surfaced to the caller: a planning result is valid even if its
// bookkeeping didn't make it to Postgres, Mongo, or NATS.
func (h *PlanHandler) recordSideEffects(ctx context.Context, req planRequest, diag goap.Diagnostic, actionNames []string, cost uint64, nodesVisited int, duration time.Duration) {
	actorID := ""
	if claims := authn.FromContext(ctx); claims != nil {
		actorID = claims.ActorID
	}

	if h.audit != nil {
		eventType := audit.EventPlanSucceeded
		if diag != goap.DiagFoundPlan {
			eventType = audit.EventPlanFailed
		}
		payload, _ := json.Marshal(map[string]interface{}{
			"diagnostic": diag.String(),
			"plan":       actionNames,
			"cost":       cost,
		})
		event := audit.Event{
			ID:        uuid.New().String(),
			EventType: eventType,
			LibraryID: req.LibraryID.String(),
			ActorID:   actorID,
			Timestamp: time.Now(),
			Payload:   payload,
		}
		if err := h.audit.Append(ctx, event); err != nil {
			logging.LogWarning(ctx, "failed to append audit event", map[string]interface{}{"error": err.Error()})
		}
	}

	if h.trace != nil {
		entry := trace.Entry{
			LibraryID:    req.LibraryID.String(),
			InitialState: req.Initial,
			GoalState:    req.Goal,
			Diagnostic:   diag.String(),
			PlanActions:  actionNames,
			Cost:         cost,
			NodesVisited: nodesVisited,
			Duration:     duration,
		}
		if _, err := h.trace.Record(ctx, entry); err != nil {
			logging.LogWarning(ctx, "failed to record search trace", map[string]interface{}{"error": err.Error()})
		}
	}

	if h.notifier != nil {
		var err error
		if diag == goap.DiagFoundPlan {
			err = h.notifier.PublishPlanCompleted(events.PlanCompleted{
				LibraryID:    req.LibraryID.String(),
				ActionNames:  actionNames,
				Cost:         cost,
				NodesVisited: nodesVisited,
			})
		} else {
			err = h.notifier.PublishPlanFailed(events.PlanFailed{
				LibraryID:  req.LibraryID.String(),
				Diagnostic: diag.String(),
			})
		}
		if err != nil {
			logging.LogWarning(ctx, "failed to publish plan event", map[string]interface{}{"error": err.Error()})
		}
	}
}
