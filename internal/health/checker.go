// Package health reports the liveness of the planner service's backing
// stores: Postgres, Redis, and NATS.
package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nats-io/nats.go"
)

// Pinger is satisfied by anything that can be health-checked with a
// context-aware Ping returning an error, e.g. *pgxpool.Pool. A
// *redis.Client needs an adapter, since its Ping returns a *StatusCmd.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NATSConn reports connection status the way *nats.Conn does.
type NATSConn interface {
	Status() nats.Status
}

// Checker checks the health of the service's backing stores.
type Checker struct {
	db    Pinger
	redis Pinger
	nats  NATSConn
}

// NewHealthChecker builds a Checker over the given backing stores.
func NewHealthChecker(db, redis Pinger, nc NATSConn) *Checker {
	return &Checker{db: db, redis: redis, nats: nc}
}

// Check pings every backing store and reports a combined status. The
// overall "status" key is "ok" only if every component is healthy,
// "degraded" otherwise.
func (c *Checker) Check(ctx context.Context) map[string]string {
	result := map[string]string{}

	healthy := true

	if err := c.db.Ping(ctx); err != nil {
		result["database"] = "unhealthy"
		healthy = false
	} else {
		result["database"] = "healthy"
	}

	if err := c.redis.Ping(ctx); err != nil {
		result["redis"] = "unhealthy"
		healthy = false
	} else {
		result["redis"] = "healthy"
	}

	if c.nats.Status() == nats.CONNECTED {
		result["nats"] = "healthy"
	} else {
		result["nats"] = "unhealthy"
		healthy = false
	}

	if healthy {
		result["status"] = "ok"
	} else {
		result["status"] = "degraded"
	}

	return result
}

// Handler returns an http.Handler suitable for mounting at /healthz. It
// always responds 200 OK; callers inspect the "status" field of the body
// to distinguish healthy from degraded, so load balancers don't flap a
// service out of rotation over a single slow dependency.
func (c *Checker) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := c.Check(r.Context())

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(status)
	})
}
