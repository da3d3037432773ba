package goap

// Trilean is the three-valued result of looking up a predicate in a
// WorldState: a predicate that was never set is Unknown, not False. The
// distinction matters — see Satisfies in matcher.go.
type Trilean int

const (
	Unknown Trilean = iota
	False
	True
)

func boolToTrilean(v bool) Trilean {
	if v {
		return True
	}
	return False
}

// WorldState is a predicate set: a mapping from predicate name to boolean
// truth value. Predicates absent from the map are Unknown, never False.
// A WorldState is not safe for concurrent mutation; the planner only ever
// hands out clones, never shares one across goroutines.
type WorldState map[string]bool

// NewWorldState builds a WorldState from a plain map of predicate values,
// copying it so the caller's map can be mutated afterwards without
// affecting the returned state.
func NewWorldState(predicates map[string]bool) WorldState {
	return WorldState(predicates).Clone()
}

// Get returns the truth value of key, or Unknown if key has never been set.
func (s WorldState) Get(key string) Trilean {
	v, ok := s[key]
	if !ok {
		return Unknown
	}
	return boolToTrilean(v)
}

// Set inserts or replaces the value of key. Unknown is not a settable
// value: the planner never removes predicates, it only adds or overwrites
// them (see Apply in applicator.go).
func (s WorldState) Set(key string, value bool) {
	s[key] = value
}

// Clone returns an independent deep copy; mutating the result never affects
// the receiver. Every search node owns its own WorldState precisely because
// this is called on every expansion, so one branch's continued exploration
// can never mutate a state another branch still holds a reference to.
func (s WorldState) Clone() WorldState {
	clone := make(WorldState, len(s))
	for k, v := range s {
		clone[k] = v
	}
	return clone
}

// Keys returns the predicate names present in the state. Order is
// unspecified — callers that need determinism must sort it themselves, as
// cache.Key does. The planner never iterates Keys: its expansion loop walks
// the library slice in order (see planner.go).
func (s WorldState) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	return keys
}

// overlay applies every (key, value) pair of other onto a clone of s and
// returns the clone, leaving both s and other untouched. This is the
// Applicator's core operation, factored out here because WorldState owns
// its own merge semantics.
func (s WorldState) overlay(other WorldState) WorldState {
	result := s.Clone()
	for k, v := range other {
		result[k] = v
	}
	return result
}
