package goap

// Satisfies reports whether state satisfies every predicate in required,
// under the closed-world assumption: a required predicate that state does
// not contain is Unknown in state, never False, and Unknown fails the
// match. This is the one comparator used everywhere in the core — for
// action preconditions, and for the goal test — and nowhere else.
func Satisfies(state, required WorldState) bool {
	for key, want := range required {
		if state.Get(key) != boolToTrilean(want) {
			return false
		}
	}
	return true
}

// StrictSatisfies is Satisfies with the additional requirement that state
// and required have exactly the same predicates — no extras on either
// side. It exists for test utilities that want to assert an exact state
// match; the planner itself never calls it.
func StrictSatisfies(state, required WorldState) bool {
	return len(state) == len(required) && Satisfies(state, required)
}
