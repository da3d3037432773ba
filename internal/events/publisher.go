// Package events publishes planner lifecycle notifications onto NATS, so
// other services can react to a plan completing or failing without
// polling the planner service's HTTP API.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

const (
	subjectPlanCompleted = "goap.plan.completed"
	subjectPlanFailed    = "goap.plan.failed"
)

// PlanCompleted is published whenever Plan returns DiagFoundPlan.
type PlanCompleted struct {
	LibraryID    string   `json:"libraryID"`
	ActionNames  []string `json:"actionNames"`
	Cost         uint64   `json:"cost"`
	NodesVisited int      `json:"nodesVisited"`
}

// PlanFailed is published whenever Plan returns any diagnostic other than
// DiagFoundPlan (including DiagAlreadySatisfied, since a caller listening
// for "did this produce work" cares about that distinction).
type PlanFailed struct {
	LibraryID  string `json:"libraryID"`
	Diagnostic string `json:"diagnostic"`
}

// Publisher publishes planner events onto NATS.
type Publisher struct {
	nc *nats.Conn
}

// NewPublisher wraps a *nats.Conn for planner event publication.
func NewPublisher(nc *nats.Conn) *Publisher {
	return &Publisher{nc: nc}
}

// PublishPlanCompleted publishes a PlanCompleted event.
func (p *Publisher) PublishPlanCompleted(event PlanCompleted) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal plan completed event: %w", err)
	}
	if err := p.nc.Publish(subjectPlanCompleted, data); err != nil {
		return fmt.Errorf("publish plan completed event: %w", err)
	}
	return nil
}

// PublishPlanFailed publishes a PlanFailed event.
func (p *Publisher) PublishPlanFailed(event PlanFailed) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal plan failed event: %w", err)
	}
	if err := p.nc.Publish(subjectPlanFailed, data); err != nil {
		return fmt.Errorf("publish plan failed event: %w", err)
	}
	return nil
}

// Subscriber listens for planner events. It's primarily useful to other
// services (or integration tests) that want to observe planning activity.
type Subscriber struct {
	nc *nats.Conn
}

// NewSubscriber wraps a *nats.Conn for planner event subscription.
func NewSubscriber(nc *nats.Conn) *Subscriber {
	return &Subscriber{nc: nc}
}

// OnPlanCompleted subscribes handler to PlanCompleted events.
func (s *Subscriber) OnPlanCompleted(handler func(PlanCompleted)) (*nats.Subscription, error) {
	return s.nc.Subscribe(subjectPlanCompleted, func(msg *nats.Msg) {
		var event PlanCompleted
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			return
		}
		handler(event)
	})
}

// OnPlanFailed subscribes handler to PlanFailed events.
func (s *Subscriber) OnPlanFailed(handler func(PlanFailed)) (*nats.Subscription, error) {
	return s.nc.Subscribe(subjectPlanFailed, func(msg *nats.Msg) {
		var event PlanFailed
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			return
		}
		handler(event)
	})
}

// drainTimeout bounds how long Close waits for in-flight publishes to
// flush before giving up.
const drainTimeout = 2 * time.Second

// Close flushes any in-flight publishes before the connection is closed
// elsewhere, bounded by drainTimeout.
func (p *Publisher) Close() error {
	return p.nc.FlushTimeout(drainTimeout)
}
