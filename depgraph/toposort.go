package depgraph

import (
	"cmp"
	"slices"
)

/*
Best-effort topological sort. Classic topological sort assumes an acyclic
graph; this one must produce a total order even when cycles exist, because
mutually recursive type definitions are legal input. It runs a two-color DFS
over an explicit work stack (no recursion, so deep graphs cannot exhaust the
call stack) and breaks each residual cycle at exactly one edge.

The seed order is the cycle-breaking policy. Nodes are pushed in ascending
(out-degree, name) order, so the highest out-degree node is popped first and
is the first to turn gray; when a cycle is closed, it is the gray node that
gets revisited and accepted early, which means cycles break at large
high-fan-out definitions. Downstream, a broken edge costs an indirection, and
an indirection is cheaper on a large type referenced from a small one than
the other way around. This is a heuristic, not optimal cycle minimization.
*/

////////////////////////////////////////////////////////////////////////////////

type color uint8

const (
	white color = iota
	gray
	black
)

// Sort returns every node of the graph exactly once, ordered so that
// dependencies precede dependents wherever cycles allow it. The output is a
// valid topological order of the acyclic subgraph obtained by deleting the
// edges ignored at cycle breaks.
func Sort(g *Graph) []string {
	seeds := g.Nodes()
	slices.SortFunc(seeds, func(a, b string) int {
		if c := cmp.Compare(g.OutDegree(a), g.OutDegree(b)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	// Seeds are pushed in ascending order, so the stack pops the largest
	// node first.
	stack := seeds
	colors := make(map[string]color, len(seeds))
	result := make([]string, 0, len(seeds))
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch colors[node] {
		case black:
			continue
		case gray:
			// Second visit. If the node still has unfinished dependencies it
			// sits on a cycle, and accepting it here is the designed break.
			colors[node] = black
			result = append(result, node)
		default:
			colors[node] = gray
			stack = append(stack, node)
			deps := g.Dependencies(node)
			for i := len(deps) - 1; i >= 0; i-- {
				dep := deps[i]
				if _, ok := g.deps[dep]; !ok {
					continue
				}
				if colors[dep] == white {
					stack = append(stack, dep)
				}
			}
		}
	}
	return result
}
