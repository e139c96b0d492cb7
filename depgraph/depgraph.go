package depgraph

import (
	"github.com/novifinancial/serde-typegen/format"
	"github.com/novifinancial/serde-typegen/util"
)

/*
Dependency analysis over a registry. A definition depends on every name it
references through a TypeName anywhere in its format tree, including through
Option, Seq, Map, Tuple and FixedArray wrappers. Self-references count: a
type may depend on itself, and that is exactly how a linked list shows up.

The graph preserves order on both axes. Nodes keep registry order and each
node's dependency list keeps first-occurrence order from the tree walk; the
sorter's tie-breaking depends on both, so losing either would make the output
non-deterministic.
*/

////////////////////////////////////////////////////////////////////////////////

// Dependencies returns the names referenced by the container, deduplicated,
// in order of first occurrence.
func Dependencies(c format.ContainerFormat) []string {
	refs := format.Refs(c)
	targets := make([]string, 0, len(refs))
	for _, ref := range refs {
		targets = append(targets, ref.Target)
	}
	return util.Dedup(targets)
}

// Graph is a directed dependency graph over definition names.
type Graph struct {
	nodes []string
	deps  map[string][]string
}

func New() *Graph {
	return &Graph{
		deps: make(map[string][]string),
	}
}

// Add inserts a node with its ordered dependency list. Adding a node twice
// replaces its dependencies.
func (g *Graph) Add(name string, deps []string) {
	if _, ok := g.deps[name]; !ok {
		g.nodes = append(g.nodes, name)
	}
	g.deps[name] = deps
}

// FromRegistry builds the dependency graph of every definition in the
// registry.
func FromRegistry(r *format.Registry) *Graph {
	g := New()
	for _, name := range r.Names() {
		container, _ := r.Get(name)
		g.Add(name, Dependencies(container))
	}
	return g
}

// Dependencies returns the ordered dependency list of name.
func (g *Graph) Dependencies(name string) []string {
	return g.deps[name]
}

// OutDegree returns the number of dependencies of name.
func (g *Graph) OutDegree(name string) int {
	return len(g.deps[name])
}

// Nodes returns the node names in insertion order.
func (g *Graph) Nodes() []string {
	return append([]string{}, g.nodes...)
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}
