package goap

// defaultMaxSearchNodes bounds the exhaustive search when a caller doesn't
// configure one explicitly. It is generous relative to the planner's
// intended operating range (small libraries, on the order of a few dozen
// actions) but still finite, so a pathological library can't run away
// forever inside a long-lived service.
const defaultMaxSearchNodes = 1_000_000

// Options configures a single Plan call. The zero value is the default
// configuration.
type Options struct {
	maxSearchNodes int
	stats          *Stats
}

// Option mutates Options; see WithMaxSearchNodes.
type Option func(*Options)

// WithMaxSearchNodes overrides the search budget: the maximum number of
// nodes Plan will pop off the frontier before giving up and returning
// DiagSearchBudgetExceeded. A value <= 0 means unlimited.
func WithMaxSearchNodes(n int) Option {
	return func(o *Options) { o.maxSearchNodes = n }
}

// Stats captures instrumentation about a single Plan call that callers
// outside the core (service handlers, metrics, trace logging) want to
// observe without widening Plan's return signature.
type Stats struct {
	// NodesVisited is the number of search nodes popped off the frontier.
	NodesVisited int
}

// WithStats arranges for Plan to populate stats once the search
// completes, whatever the outcome.
func WithStats(stats *Stats) Option {
	return func(o *Options) { o.stats = stats }
}

// Plan finds the minimum-cost acyclic sequence of actions from library that
// transforms initial into a state satisfying goal.
//
// Algorithm: exhaustive depth-first search over world states reachable by
// acyclic action application (the anti-cycle rule on searchNode bounds the
// search tree), collecting every goal-satisfying node, then selecting the
// optimal one by (cost ascending, plan length ascending, first-found). The
// frontier is a LIFO stack; because the search is exhaustive this never
// changes the cost or length of the returned plan, only peak memory and,
// among equal-cost equal-length solutions, which one is found first.
//
// initial, goal, and every Action in library are never mutated; the
// returned plan references the same Action values passed in. Plan is safe
// to call concurrently from multiple goroutines provided library is not
// mutated while a call is in flight.
func Plan(initial, goal WorldState, library []Action, opts ...Option) ([]Action, Diagnostic) {
	options := Options{maxSearchNodes: defaultMaxSearchNodes}
	for _, opt := range opts {
		opt(&options)
	}

	if Satisfies(initial, goal) {
		return nil, DiagAlreadySatisfied
	}

	root := &searchNode{parents: nil, state: initial.Clone(), cost: 0}
	rootNeighbors := executableNeighbors(root, library)

	frontier := []*searchNode{root}
	var solutions []*searchNode

	budget := options.maxSearchNodes
	visited := 0
	exhaustedBudget := false

	for len(frontier) > 0 {
		if budget > 0 && visited >= budget {
			exhaustedBudget = true
			break
		}

		// Pop the most recently pushed node (LIFO).
		n := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		visited++

		neighbors := rootNeighbors
		if n != root {
			neighbors = executableNeighbors(n, library)
		}
		for _, action := range neighbors {
			child := n.expand(action)
			if Satisfies(child.state, goal) {
				solutions = append(solutions, child)
			} else {
				frontier = append(frontier, child)
			}
		}
	}

	if options.stats != nil {
		options.stats.NodesVisited = visited
	}

	if exhaustedBudget {
		return nil, DiagSearchBudgetExceeded
	}

	if len(solutions) == 0 {
		if len(rootNeighbors) == 0 {
			return nil, DiagNoExecutableAction
		}
		return nil, DiagNoSolutionFound
	}

	best := selectBest(solutions)
	return best.plan(), DiagFoundPlan
}

// executableNeighbors returns the actions in library that can legally be
// applied from n: preconditions satisfied in n's state, and not already
// present on the path from the root to n.
func executableNeighbors(n *searchNode, library []Action) []Action {
	neighbors := make([]Action, 0, len(library))
	for _, action := range library {
		if Satisfies(n.state, action.Preconditions) && !n.hasAction(action.Name) {
			neighbors = append(neighbors, action)
		}
	}
	return neighbors
}

// selectBest orders the collected solutions by lower cost first; on a
// tie, shorter plan length wins; on a further tie, the first-found
// solution under the DFS traversal above wins. No additional canonical
// tie-break, such as sorting by action name, is applied.
func selectBest(solutions []*searchNode) *searchNode {
	best := solutions[0]
	for _, s := range solutions[1:] {
		if less(s, best) {
			best = s
		}
	}
	return best
}

func less(a, b *searchNode) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	return len(a.parents) < len(b.parents)
}
