package route

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// DistancesTo returns the cheapest cost from every vertex that can reach
// target to target. Unreachable vertices are absent from the map.
//
// It runs Dijkstra's algorithm from target over reversed arcs with a lazy
// decrease-key heap: improved distances are pushed again and stale
// entries are skipped when popped.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func DistancesTo(g *core.Graph, target string) (map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(target) {
		return nil, fmt.Errorf("%w: %q", core.ErrVertexNotFound, target)
	}

	// into[v] lists the arcs u→v as (u, weight).
	into := make(map[string][]arc, g.VertexCount())
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: %s %s→%s = %g", ErrNegativeWeight, e.ID, e.From, e.To, e.Weight)
		}
		into[e.To] = append(into[e.To], arc{e.From, e.Weight})
		if !e.Directed {
			into[e.From] = append(into[e.From], arc{e.To, e.Weight})
		}
	}

	dist := map[string]float64{target: 0}
	done := make(map[string]bool, g.VertexCount())
	pq := distPQ{{id: target}}
	for pq.Len() > 0 {
		it := heap.Pop(&pq).(distItem)
		if done[it.id] {
			continue
		}
		done[it.id] = true
		for _, a := range into[it.id] {
			nd := it.dist + a.w
			if d, seen := dist[a.other]; seen && nd >= d {
				continue
			}
			dist[a.other] = nd
			heap.Push(&pq, distItem{id: a.other, dist: nd})
		}
	}

	return dist, nil
}

type arc struct {
	other string
	w     float64
}

type distItem struct {
	id   string
	dist float64
}

// distPQ is a min-heap of distItem ordered by dist.
type distPQ []distItem

func (pq distPQ) Len() int           { return len(pq) }
func (pq distPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq distPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ) Push(x any)        { *pq = append(*pq, x.(distItem)) }
func (pq *distPQ) Pop() any {
	old := *pq
	it := old[len(old)-1]
	*pq = old[:len(old)-1]

	return it
}
