// Package search is a state-space search engine: breadth-first (BFS),
// depth-first (DFS), uniform-cost (UCS), A* and greedy best-first search
// over any Problem that supplies an initial state, a goal test and a
// successor function with step costs.
//
// What
//
//   - Problem[S]: Initial, IsGoal, Successors; optionally Informed (Heuristic)
//     and Validator (Validate, checked by New).
//   - Search[S]: one run over one Problem. New initializes it, Step advances
//     one pop/expand cycle and returns a snapshot, Run drives it to the end,
//     Reset rewinds it, Cancel stops it between steps.
//   - Result[S]: Path (initial → goal inclusive, empty when none), Found and
//     Metrics (NodesExplored, PathLength, PathCost, Elapsed, diagnostics).
//
// Frontier disciplines
//
//	Algorithm  Removal order        Duplicates in frontier   Optimal
//	BFS        FIFO                 no (marked at push)      iff all step costs equal
//	DFS        LIFO                 no (marked at push)      no
//	UCS        min g                yes                      yes, for costs ≥ 0
//	AStar      min g + h            yes                      iff h is admissible
//	Greedy     min h                yes                      no
//
// Priority ties break by earliest insertion, so identical inputs always
// produce identical paths and identical NodesExplored.
//
// Stale entries
//
//	There is no decrease-key. UCS, A* and Greedy push a state again whenever
//	it is reached, and the closed set is consulted when an entry is popped:
//	a popped state that is already closed is discarded without expansion
//	(Metrics.StalePops). The goal test also happens at pop time, so a later,
//	cheaper arrival is never preempted by an early, costlier one.
//
// State machine
//
//	Ready → Running → GoalFound | Exhausted | Aborted
//
//	Stepping a terminal handle is a no-op returning the terminal snapshot.
//	Aborted covers Cancel, context cancellation, WithMaxExpansions, an
//	OnExpand error and a negative step cost; the structures stay readable.
//
// Heuristics
//
//	Admissibility and consistency are the caller's responsibility: they
//	cannot be decided from one run. With an inadmissible heuristic A* still
//	returns a path, but its optimality is no longer guaranteed.
//
// Complexity (b = branching factor, V = reachable states, E = transitions)
//
//   - BFS, DFS: O(V + E) time, O(V) memory.
//   - UCS, A*, Greedy: O(E log E) time, O(E) memory (lazy duplicates).
//
// Usage
//
//	s, err := search.New[puzzle.Board](prob, search.AStar)
//	if err != nil {
//	    // ErrNilProblem, ErrUnknownAlgorithm, ErrMalformedProblem, ErrOptionViolation
//	}
//	res, err := s.Run()
//
//	// or, one cycle at a time:
//	for {
//	    st, err := s.Step()
//	    if err != nil || st.Done {
//	        break
//	    }
//	    render(st.Expanded, st.Frontier, st.Closed)
//	}
//
// Options
//
//   - WithContext(ctx):         cancellation checked once per step.
//   - WithHeuristic(h):         overrides the problem's heuristic.
//   - WithMaxExpansions(n):     abort after n expansions (0 = no limit).
//   - WithOnPush(fn):           hook on every frontier insertion.
//   - WithOnExpand(fn):         hook on every expansion; error aborts.
//   - WithLogger(l):            slog logger for lifecycle records.
//   - WithClock(now):           time source for Elapsed.
package search
