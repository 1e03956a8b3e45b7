package algo

import (
	"container/heap"
	"slices"

	"campus-nav/utils"
)

// PathResult is the raw output of a search.
type PathResult struct {
	Path     []string // start..end inclusive
	Distance float64  // sum of traversed edge weights, unrounded
}

// frontierItem is an entry of the A* open set.
type frontierItem struct {
	Name  string
	G     float64 // best known cost from start
	F     float64 // G + heuristic
	Seq   int     // discovery order
	Index int     // position in the heap
}

// frontier orders items by F, then G, then discovery order.
type frontier []*frontierItem

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.F != b.F {
		return a.F < b.F
	}
	if a.G != b.G {
		return a.G < b.G
	}
	return a.Seq < b.Seq
}

func (pq frontier) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *frontier) Push(x any) {
	item := x.(*frontierItem)
	item.Index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.Index = -1
	*pq = old[:n-1]
	return item
}

// AStar finds the minimum-weight path from start to end using the straight-line distance
// to end as heuristic.
//
// The result is optimal when every edge weight is at least the Euclidean distance between
// its endpoints. Otherwise the search still terminates, but the path may not be the cheapest.
func (g *Graph) AStar(start, end string) (PathResult, error) {
	if g.Nodes[start] == nil {
		return PathResult{}, &NodeNotFoundError{Which: "start", Name: start}
	}
	if g.Nodes[end] == nil {
		return PathResult{}, &NodeNotFoundError{Which: "end", Name: end}
	}

	goal := g.point(end)
	h := func(name string) float64 {
		return utils.EuclideanDistance(g.point(name), goal)
	}

	open := make(map[string]*frontierItem)
	closed := make(map[string]bool)
	prev := make(map[string]string)
	seq := 0

	pq := make(frontier, 0)
	heap.Init(&pq)
	first := &frontierItem{Name: start, G: 0, F: h(start), Seq: seq}
	heap.Push(&pq, first)
	open[start] = first

	for pq.Len() > 0 {
		current := heap.Pop(&pq).(*frontierItem)
		delete(open, current.Name)
		closed[current.Name] = true

		if current.Name == end {
			return PathResult{
				Path:     walkBack(prev, start, end),
				Distance: current.G,
			}, nil
		}

		for _, edge := range g.GetNeighbors(current.Name) {
			next := edge.Other(current.Name)
			if closed[next] {
				continue
			}

			cost := current.G + edge.Weight
			if item, ok := open[next]; ok {
				if cost < item.G {
					item.G = cost
					item.F = cost + h(next)
					prev[next] = current.Name
					heap.Fix(&pq, item.Index)
				}
				continue
			}

			seq++
			item := &frontierItem{Name: next, G: cost, F: cost + h(next), Seq: seq}
			prev[next] = current.Name
			heap.Push(&pq, item)
			open[next] = item
		}
	}

	return PathResult{}, &NoPathError{Start: start, End: end}
}

func walkBack(prev map[string]string, start, end string) []string {
	path := []string{end}
	for at := end; at != start; {
		at = prev[at]
		path = append(path, at)
	}
	slices.Reverse(path)
	return path
}
