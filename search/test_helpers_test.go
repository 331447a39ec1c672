package search_test

import (
	"errors"
	"time"

	"github.com/katalvlaran/lvsearch/search"
)

// arc is one weighted transition of a mapProblem.
type arc struct {
	to string
	w  float64
}

// mapProblem is an explicit adjacency-list Problem over string states.
// Successors are returned in insertion order.
type mapProblem struct {
	start string
	goals map[string]bool
	adj   map[string][]arc
	h     map[string]float64
	err   error // returned by Validate when non-nil
}

func newMapProblem(start string, goals ...string) *mapProblem {
	p := &mapProblem{
		start: start,
		goals: make(map[string]bool, len(goals)),
		adj:   make(map[string][]arc),
		h:     make(map[string]float64),
	}
	for _, g := range goals {
		p.goals[g] = true
	}

	return p
}

// edge adds a directed arc u→v.
func (p *mapProblem) edge(u, v string, w float64) *mapProblem {
	p.adj[u] = append(p.adj[u], arc{to: v, w: w})
	return p
}

// link adds u→v and v→u.
func (p *mapProblem) link(u, v string, w float64) *mapProblem {
	return p.edge(u, v, w).edge(v, u, w)
}

func (p *mapProblem) Initial() string { return p.start }
func (p *mapProblem) IsGoal(s string) bool { return p.goals[s] }
func (p *mapProblem) Heuristic(s string) float64 { return p.h[s] }

func (p *mapProblem) Successors(s string) []search.Successor[string] {
	out := make([]search.Successor[string], 0, len(p.adj[s]))
	for _, a := range p.adj[s] {
		out = append(out, search.Successor[string]{State: a.to, Cost: a.w})
	}

	return out
}

func (p *mapProblem) Validate() error { return p.err }

var errBoom = errors.New("boom")

// tickClock returns a clock that advances by d on every call.
func tickClock(d time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(d)
		return now
	}
}

// diamond builds:
//
//	   B
//	 1/ \1
//	A     C ──10── G
//	 \___5_/
//
// UCS reaches C at cost 2 through B, leaving the direct A→C entry stale.
func diamond() *mapProblem {
	return newMapProblem("A", "G").
		edge("A", "B", 1).
		edge("A", "C", 5).
		edge("B", "C", 1).
		edge("C", "G", 10)
}
