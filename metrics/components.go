// SPDX-License-Identifier: MIT
// Package: metrics
//
// components.go — connected components by breadth-first search.

package metrics

// components returns the number of connected components (isolated nodes
// count as singletons) and the size of the largest one.
//
// Complexity: O(N + E) over neighbor lists.
func components(g *graph) (count, largest int) {
	visited := make([]bool, g.n)
	queue := make([]int, 0, g.n)
	var size, u int
	for start := 0; start < g.n; start++ {
		if visited[start] {
			continue
		}
		count++
		visited[start] = true
		queue = append(queue[:0], start)
		size = 0
		for len(queue) > 0 {
			u = queue[0]
			queue = queue[1:]
			size++
			for _, v := range g.nbrs[u] {
				if !visited[v] {
					visited[v] = true
					queue = append(queue, v)
				}
			}
		}
		if size > largest {
			largest = size
		}
	}

	return count, largest
}
