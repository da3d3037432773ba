package goap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSatisfies_EmptyRequiredAlwaysMatches(t *testing.T) {
	assert.True(t, Satisfies(NewWorldState(nil), NewWorldState(nil)))
	assert.True(t, Satisfies(NewWorldState(map[string]bool{"x": true}), NewWorldState(nil)))
}

func TestSatisfies_MissingKeyIsUnknownNotFalse(t *testing.T) {
	state := NewWorldState(nil)
	required := NewWorldState(map[string]bool{"hasAxe": false})

	// Closed-world assumption: a key absent from state must NOT be treated
	// as satisfying a "false" requirement, even though false and unknown
	// might look equivalent at a glance.
	assert.False(t, Satisfies(state, required))
}

func TestSatisfies_AllMustMatch(t *testing.T) {
	state := NewWorldState(map[string]bool{"hasAxe": true, "hasWood": false})
	assert.True(t, Satisfies(state, NewWorldState(map[string]bool{"hasAxe": true})))
	assert.True(t, Satisfies(state, NewWorldState(map[string]bool{"hasAxe": true, "hasWood": false})))
	assert.False(t, Satisfies(state, NewWorldState(map[string]bool{"hasAxe": false})))
}

func TestStrictSatisfies_RequiresExactSize(t *testing.T) {
	state := NewWorldState(map[string]bool{"hasAxe": true, "extra": true})
	required := NewWorldState(map[string]bool{"hasAxe": true})

	assert.True(t, Satisfies(state, required))
	assert.False(t, StrictSatisfies(state, required), "strict comparator must reject extraneous keys")

	assert.True(t, StrictSatisfies(NewWorldState(map[string]bool{"hasAxe": true}), required))
}
