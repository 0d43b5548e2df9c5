// Package pathfind implements A* over any map that can list a tile's exits.
package pathfind

import (
	"container/heap"
)

// MaxSteps bounds how many nodes a search may expand before giving up.
const MaxSteps = 65536

// Exit is one reachable neighbor and the cost of stepping onto it.
type Exit struct {
	Idx  int
	Cost float64
}

// BaseMap is the narrow view of a map that the search needs.
type BaseMap interface {
	// AvailableExits lists the tiles enterable from idx, in a fixed order.
	AvailableExits(idx int) []Exit
	// PathingDistance estimates the cost from a to b without overestimating.
	PathingDistance(a, b int) float64
}

// NavigationPath is a search result. Steps runs from start to goal
// inclusive, so Steps[1] is the first move.
type NavigationPath struct {
	Success bool
	Steps   []int
}

type pathNode struct {
	idx    int
	g      float64
	f      float64
	seq    int // insertion order; equal f pops first-in first
	index  int
	parent *pathNode
}

type pathQueue []*pathNode

func (pq pathQueue) Len() int { return len(pq) }

func (pq pathQueue) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq pathQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *pathQueue) Push(x any) {
	n := len(*pq)
	item := x.(*pathNode)
	item.index = n
	*pq = append(*pq, item)
}

func (pq *pathQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

// AStar searches for the cheapest path from start to goal. The result is
// deterministic for a given map: ties between equally promising nodes
// resolve by the order in which they were discovered.
func AStar(start, goal int, m BaseMap) NavigationPath {
	if start == goal {
		return NavigationPath{Success: true, Steps: []int{start}}
	}

	open := &pathQueue{}
	heap.Init(open)
	seq := 0
	heap.Push(open, &pathNode{idx: start, f: m.PathingDistance(start, goal), seq: seq})
	gScore := map[int]float64{start: 0}
	closed := make(map[int]struct{})

	for steps := 0; open.Len() > 0 && steps < MaxSteps; steps++ {
		current := heap.Pop(open).(*pathNode)
		if _, seen := closed[current.idx]; seen {
			continue
		}
		closed[current.idx] = struct{}{}
		if current.idx == goal {
			return NavigationPath{Success: true, Steps: reconstructPath(current)}
		}

		for _, exit := range m.AvailableExits(current.idx) {
			if _, seen := closed[exit.Idx]; seen {
				continue
			}
			tentativeG := current.g + exit.Cost
			if prev, ok := gScore[exit.Idx]; ok && tentativeG >= prev {
				continue
			}
			gScore[exit.Idx] = tentativeG
			seq++
			heap.Push(open, &pathNode{
				idx:    exit.Idx,
				g:      tentativeG,
				f:      tentativeG + m.PathingDistance(exit.Idx, goal),
				seq:    seq,
				parent: current,
			})
		}
	}
	return NavigationPath{}
}

func reconstructPath(end *pathNode) []int {
	var path []int
	for node := end; node != nil; node = node.parent {
		path = append(path, node.idx)
	}
	for i := 0; i < len(path)/2; i++ {
		j := len(path) - 1 - i
		path[i], path[j] = path[j], path[i]
	}
	return path
}
