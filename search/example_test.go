// Package search_test provides runnable examples of the search driver.
// Each example is runnable via “go test -run Example”.
package search_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/search"
)

// line is the integer segment [0, max]; every move shifts by one at cost 1.
type line struct {
	goal, max int
}

func (l line) Initial() int { return 0 }

func (l line) IsGoal(s int) bool { return s == l.goal }

func (l line) Heuristic(s int) float64 {
	if s > l.goal {
		return float64(s - l.goal)
	}
	return float64(l.goal - s)
}

func (l line) Successors(s int) []search.Successor[int] {
	var out []search.Successor[int]
	if s > 0 {
		out = append(out, search.Successor[int]{State: s - 1, Cost: 1})
	}
	if s < l.max {
		out = append(out, search.Successor[int]{State: s + 1, Cost: 1})
	}
	return out
}

// ExampleSearch_Run solves a problem in one call.
func ExampleSearch_Run() {
	s, err := search.New[int](line{goal: 3, max: 5}, search.BFS)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := s.Run()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("path=%v found=%t explored=%d cost=%g\n",
		res.Path, res.Found, res.Metrics.NodesExplored, res.Metrics.PathCost)
	// Output: path=[0 1 2 3] found=true explored=3 cost=3
}

// ExampleSearch_Step pulls the search one cycle at a time, as a
// visualization loop would.
func ExampleSearch_Step() {
	s, err := search.New[int](line{goal: 2, max: 3}, search.UCS)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for {
		st, err := s.Step()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("expanded=%d frontier=%v closed=%v done=%t\n",
			st.Expanded, st.Frontier, st.Closed, st.Done)
		if st.Done {
			break
		}
	}
	// Output:
	// expanded=0 frontier=[1] closed=[0] done=false
	// expanded=1 frontier=[2] closed=[0 1] done=false
	// expanded=2 frontier=[] closed=[0 1] done=true
}

// ExampleNew_aStar uses the heuristic the problem implements.
func ExampleNew_aStar() {
	s, _ := search.New[int](line{goal: 4, max: 9}, search.AStar)
	res, _ := s.Run()
	fmt.Println(res.Path, res.Metrics.NodesExplored)
	// Output: [0 1 2 3 4] 4
}
