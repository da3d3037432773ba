package goap

// searchNode is a candidate partial plan: the ordered actions applied so
// far, the resulting world state, and the accumulated cost. It is never
// exported — callers only ever see the final []Action a Plan call returns.
//
// A node owns both parents and state outright. Neither is ever aliased
// between siblings: every expansion clones the parent's parents slice and
// produces a fresh state via Apply, so one branch's continued exploration
// can never corrupt another's. This is the single most important
// correctness property of the search (see planner.go's expand).
type searchNode struct {
	parents []Action
	state   WorldState
	cost    uint64
}

// hasAction reports whether name already appears in the path from the root
// to this node. Forbidding any action name from appearing twice on one
// path bounds plan length by len(library) and guarantees the search
// terminates, at the cost of forbidding an action from being legitimately
// re-applied later in the same plan. That is a deliberate expressivity
// trade-off, not an oversight.
func (n *searchNode) hasAction(name string) bool {
	for _, a := range n.parents {
		if a.Name == name {
			return true
		}
	}
	return false
}

// expand produces the child node reached by applying action from n. The
// returned node owns an independent parents slice and world state; n is
// left untouched.
func (n *searchNode) expand(action Action) *searchNode {
	parents := make([]Action, len(n.parents)+1)
	copy(parents, n.parents)
	parents[len(n.parents)] = action

	return &searchNode{
		parents: parents,
		state:   Apply(action, n.state),
		cost:    n.cost + uint64(action.Cost),
	}
}

// plan copies the node's action sequence out for the caller. Ownership of
// the returned slice transfers to the caller; the node's own slice is not
// reused afterwards.
func (n *searchNode) plan() []Action {
	out := make([]Action, len(n.parents))
	copy(out, n.parents)
	return out
}
