package layout

import (
	"github.com/novifinancial/serde-typegen/depgraph"
	"github.com/novifinancial/serde-typegen/format"
)

/*
The layout resolver decides, for every TypeName occurrence in every
definition, whether the reference can be stored by value or must go through
an indirection to keep the generated representation's size finite.

It scans definitions in best-effort topological order, threading a
monotonically growing known-size set: membership means the definition's
representation size is already fixed. A reference to a not-yet-known name is
marked as requiring indirection, and if the name has not been declared at all
yet, a forward-declaration obligation is recorded for the current definition.
Because the decision is per reference occurrence, not per type, a recursive
type stays representable by value everywhere except at the specific
back-edges that close a cycle.

The resolver never assumes that an enclosing Seq, Option, Map, Tuple or
FixedArray already provides an indirection: a back-reference inside a wrapper
is still marked. Backends targeting languages where those composites are
reference types may elide the extra indirection; that is their optimization,
not part of this contract.
*/

////////////////////////////////////////////////////////////////////////////////

// A Ref is the layout decision for one TypeName occurrence. Site and Path
// identify the occurrence exactly as format.Refs enumerates it.
type Ref struct {
	Site     int
	Path     string
	Target   string
	Indirect bool
}

// Plan is the full output of the compiler pass: the emission order, the
// per-occurrence indirection decisions, and the forward declarations each
// definition needs emitted before it.
type Plan struct {
	Order   []string
	refs    map[string][]Ref
	forward map[string][]string
}

// Refs returns the layout decisions for the named definition, in pre-order
// site order.
func (p *Plan) Refs(name string) []Ref {
	return p.refs[name]
}

// Forward returns the names that must be forward-declared before the named
// definition, in order of first need.
func (p *Plan) Forward(name string) []string {
	return p.forward[name]
}

// Indirect reports whether the given reference site of the named definition
// requires an indirection.
func (p *Plan) Indirect(name string, site int) bool {
	refs := p.refs[name]
	if site < 0 || site >= len(refs) {
		return false
	}
	return refs[site].Indirect
}

// Resolve validates the registry and runs the full compiler pass: dependency
// analysis, best-effort topological sort, and layout resolution. It is a pure
// function of the registry; no state survives the call.
func Resolve(registry *format.Registry) (*Plan, error) {
	if err := format.Validate(registry); err != nil {
		return nil, err
	}
	graph := depgraph.FromRegistry(registry)
	order := depgraph.Sort(graph)

	plan := &Plan{
		Order:   order,
		refs:    make(map[string][]Ref, len(order)),
		forward: make(map[string][]string, len(order)),
	}
	known := make(map[string]struct{}, len(order))
	declared := make(map[string]struct{}, len(order))
	for _, name := range order {
		container, _ := registry.Get(name)
		// The definition's own name is in scope inside its declaration, so a
		// self-reference never needs a separate forward declaration.
		declared[name] = struct{}{}
		refs := make([]Ref, 0, 4)
		for _, ref := range format.Refs(container) {
			decision := Ref{
				Site:   ref.Site,
				Path:   ref.Path,
				Target: ref.Target,
			}
			if _, ok := known[ref.Target]; !ok {
				decision.Indirect = true
				if _, ok := declared[ref.Target]; !ok {
					declared[ref.Target] = struct{}{}
					plan.forward[name] = append(plan.forward[name], ref.Target)
				}
			}
			refs = append(refs, decision)
		}
		plan.refs[name] = refs
		known[name] = struct{}{}
	}
	return plan, nil
}
