package goap

// Apply returns a new WorldState equal to state with every predicate from
// action.Postconditions overlaid (inserted or replaced). state is left
// unmodified. No precondition check is performed here — the caller (the
// planner's expansion loop) is responsible for only calling Apply with an
// action whose preconditions already hold in state.
func Apply(action Action, state WorldState) WorldState {
	return state.overlay(action.Postconditions)
}
