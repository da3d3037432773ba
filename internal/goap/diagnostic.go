package goap

// Diagnostic classifies why Plan returned the plan it did. None of these
// are Go errors: the core never throws or panics, it only downgrades to
// an empty plan plus one of these informational/warning-level signals.
// Callers that care about the distinction between "no planning needed"
// and "no plan possible" should switch on Diagnostic rather than
// inspecting plan length.
type Diagnostic int

const (
	// DiagFoundPlan means a non-empty, cost-optimal plan was returned.
	DiagFoundPlan Diagnostic = iota
	// DiagAlreadySatisfied means Satisfies(initial, goal) held on entry;
	// the empty plan is correct and no search was performed.
	DiagAlreadySatisfied
	// DiagNoExecutableAction means no action in library had its
	// preconditions satisfied by initial, so the search tree was empty
	// beyond the root.
	DiagNoExecutableAction
	// DiagNoSolutionFound means the search completed exhaustively and no
	// acyclic path reached a goal-satisfying state.
	DiagNoSolutionFound
	// DiagSearchBudgetExceeded means the configured MaxSearchNodes budget
	// (see Option WithMaxSearchNodes) was exhausted before the search
	// completed: a caller-facing safety valve for arbitrarily large
	// uploaded libraries, not a condition the symbolic algorithm itself
	// can produce when given unlimited budget. The empty plan is
	// returned, exactly as every other Diagnostic's failure mode does.
	DiagSearchBudgetExceeded
)

// String renders the diagnostic the way it should be logged; see
// logging.LogPlanResult for the level each one is logged at.
func (d Diagnostic) String() string {
	switch d {
	case DiagFoundPlan:
		return "found_plan"
	case DiagAlreadySatisfied:
		return "already_satisfied"
	case DiagNoExecutableAction:
		return "no_executable_action"
	case DiagNoSolutionFound:
		return "no_solution_found"
	case DiagSearchBudgetExceeded:
		return "search_budget_exceeded"
	default:
		return "unknown"
	}
}
