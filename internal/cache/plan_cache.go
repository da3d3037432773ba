package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sort"

	"goap-planner/internal/goap"
)

// PlanResult is the cacheable outcome of a single Plan call: the plan
// itself (as action names, since goap.Action isn't directly comparable
// across library reloads) plus its diagnostic and total cost.
type PlanResult struct {
	ActionNames []string `json:"action_names"`
	Diagnostic  string   `json:"diagnostic"`
	Cost        uint64   `json:"cost"`
}

// PlanCache memoizes Plan results for a given library version, initial
// state, and goal. A planning problem is pure given its inputs (see
// goap.Plan's determinism guarantee), so caching by input hash is safe
// as long as the key incorporates the library's version.
type PlanCache struct {
	inner *QueryCache
}

// NewPlanCache wraps a QueryCache for plan-result memoization.
func NewPlanCache(inner *QueryCache) *PlanCache {
	return &PlanCache{inner: inner}
}

// Key derives a deterministic cache key from a library identifier, its
// version, and the initial/goal world states.
func Key(libraryID string, libraryVersion int, initial, goal goap.WorldState) string {
	h := sha256.New()
	h.Write([]byte(libraryID))
	h.Write([]byte{byte(libraryVersion), byte(libraryVersion >> 8), byte(libraryVersion >> 16), byte(libraryVersion >> 24)})
	writeState(h, initial)
	writeState(h, goal)
	return "plan:" + hex.EncodeToString(h.Sum(nil))
}

func writeState(h interface{ Write([]byte) (int, error) }, state goap.WorldState) {
	keys := state.Keys()
	sort.Strings(keys)
	for _, k := range keys {
		h.Write([]byte(k))
		if state.Get(k) == goap.True {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
}

// Get retrieves a cached PlanResult, if present.
func (c *PlanCache) Get(ctx context.Context, key string) (*PlanResult, error) {
	var result PlanResult
	if err := c.inner.Get(ctx, key, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Set stores a PlanResult under key.
func (c *PlanCache) Set(ctx context.Context, key string, result PlanResult) error {
	return c.inner.Set(ctx, key, result)
}
