// Package graph provides breadth-first search over implicit graphs.
//
// Callers supply the start nodes and a neighbour function; the edge
// predicate lives in that function, so the same search serves
// obstacle-ignoring layout checks and obstacle-respecting reachability.
package graph

import "github.com/zyedidia/generic/mapset"

// Distances returns the hop count from the nearest start node to every node
// reachable through next. Start nodes have distance 0. Nodes are expanded in
// FIFO order and neighbours in the order next returns them.
func Distances[N comparable](starts []N, next func(N) []N) map[N]int {
	dist := make(map[N]int, len(starts))
	visited := mapset.New[N]()
	queue := make([]N, 0, len(starts))

	for _, s := range starts {
		if visited.Has(s) {
			continue
		}
		visited.Put(s)
		dist[s] = 0
		queue = append(queue, s)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range next(current) {
			if visited.Has(n) {
				continue
			}
			visited.Put(n)
			dist[n] = dist[current] + 1
			queue = append(queue, n)
		}
	}

	return dist
}

// Reachable returns the set of nodes reachable from the start nodes
func Reachable[N comparable](starts []N, next func(N) []N) mapset.Set[N] {
	visited := mapset.New[N]()
	queue := make([]N, 0, len(starts))

	for _, s := range starts {
		if !visited.Has(s) {
			visited.Put(s)
			queue = append(queue, s)
		}
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range next(current) {
			if !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}

	return visited
}

// Path returns a shortest path from start to goal, inclusive of both ends,
// or nil if goal is unreachable.
func Path[N comparable](start, goal N, next func(N) []N) []N {
	if start == goal {
		return []N{start}
	}

	parent := map[N]N{}
	visited := mapset.New[N]()
	visited.Put(start)
	queue := []N{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range next(current) {
			if visited.Has(n) {
				continue
			}
			visited.Put(n)
			parent[n] = current
			if n == goal {
				path := []N{goal}
				for at := goal; at != start; {
					at = parent[at]
					path = append(path, at)
				}
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}
				return path
			}
			queue = append(queue, n)
		}
	}

	return nil
}
