package registry

import (
	"fmt"
	"sort"
	"strings"

	"digital.vasic.webassert/pkg/suite"
)

// topologicalSort orders suite definitions using Kahn's
// algorithm. It returns an error if a cycle is detected.
func topologicalSort(
	definitions map[suite.ID]*suite.Definition,
) ([]*suite.Definition, error) {
	inDegree := make(map[suite.ID]int, len(definitions))
	dependents := make(
		map[suite.ID][]suite.ID, len(definitions),
	)

	for id, def := range definitions {
		if _, exists := inDegree[id]; !exists {
			inDegree[id] = 0
		}
		for _, dep := range def.Dependencies {
			inDegree[id]++
			dependents[dep] = append(dependents[dep], id)
		}
	}

	// Seed the queue with zero-degree nodes, sorted for
	// deterministic output.
	var queue []suite.ID
	for id, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, id)
		}
	}
	sort.Slice(queue, func(i, j int) bool {
		return queue[i] < queue[j]
	})

	ordered := make([]*suite.Definition, 0, len(definitions))

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		if def, exists := definitions[id]; exists {
			ordered = append(ordered, def)
		}

		// Collect and sort neighbours for determinism.
		neighbours := dependents[id]
		sort.Slice(neighbours, func(i, j int) bool {
			return neighbours[i] < neighbours[j]
		})

		for _, dep := range neighbours {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if len(ordered) != len(definitions) {
		cycle := detectCycle(definitions)
		return nil, fmt.Errorf(
			"circular dependency detected: %s", cycle,
		)
	}

	return ordered, nil
}

// detectCycle returns a human-readable description of a
// dependency cycle in the suite graph. It uses iterative DFS
// with three colouring states.
func detectCycle(
	definitions map[suite.ID]*suite.Definition,
) string {
	const (
		white = 0 // unvisited
		gray  = 1 // in current path
		black = 2 // finished
	)

	colour := make(map[suite.ID]int, len(definitions))

	// Sort IDs for deterministic cycle detection.
	ids := make([]suite.ID, 0, len(definitions))
	for id := range definitions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})

	for _, startID := range ids {
		if colour[startID] != white {
			continue
		}

		type frame struct {
			id    suite.ID
			deps  []suite.ID
			index int
		}

		stack := []frame{
			{id: startID, deps: getDeps(definitions, startID)},
		}
		colour[startID] = gray

		for len(stack) > 0 {
			top := &stack[len(stack)-1]

			if top.index >= len(top.deps) {
				colour[top.id] = black
				stack = stack[:len(stack)-1]
				continue
			}

			dep := top.deps[top.index]
			top.index++

			if colour[dep] == gray {
				// Found cycle — reconstruct path.
				path := []string{string(dep)}
				for _, f := range stack {
					path = append(path, string(f.id))
					if f.id == dep {
						break
					}
				}
				return strings.Join(path, " -> ")
			}

			if colour[dep] == white {
				colour[dep] = gray
				stack = append(stack, frame{
					id:   dep,
					deps: getDeps(definitions, dep),
				})
			}
		}
	}

	return "unknown cycle"
}

// getDeps returns the sorted dependency IDs for a suite.
func getDeps(
	definitions map[suite.ID]*suite.Definition,
	id suite.ID,
) []suite.ID {
	def, ok := definitions[id]
	if !ok {
		return nil
	}
	deps := make([]suite.ID, len(def.Dependencies))
	copy(deps, def.Dependencies)
	sort.Slice(deps, func(i, j int) bool {
		return deps[i] < deps[j]
	})
	return deps
}
