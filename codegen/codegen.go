package codegen

import (
	"fmt"

	"github.com/novifinancial/serde-typegen/format"
	"github.com/novifinancial/serde-typegen/layout"
)

/*
The backend contract. A Generator emits native declarations for one target
language; the core hands it definitions in emission order together with the
buffered layout decisions for each. The full sort and layout pass always
completes before the first Declare call, since a definition's decisions
depend on every definition processed before it.
*/

////////////////////////////////////////////////////////////////////////////////

type Generator interface {
	// ForwardDeclare announces a name whose definition has not been emitted
	// yet but is referenced (behind an indirection) by the next declaration.
	ForwardDeclare(name string) error

	// Declare emits the declaration for one definition. refs carries the
	// indirection decision for every TypeName occurrence in the container,
	// in pre-order.
	Declare(name string, container format.ContainerFormat, refs []layout.Ref) error
}

// Emit walks the plan in emission order, feeding the generator forward
// declarations and declarations.
func Emit(plan *layout.Plan, registry *format.Registry, g Generator) error {
	for _, name := range plan.Order {
		for _, fwd := range plan.Forward(name) {
			if err := g.ForwardDeclare(fwd); err != nil {
				return fmt.Errorf("failed to forward-declare %s: %w", fwd, err)
			}
		}
		container, ok := registry.Get(name)
		if !ok {
			return fmt.Errorf("plan references %s, which is not in the registry", name)
		}
		if err := g.Declare(name, container, plan.Refs(name)); err != nil {
			return fmt.Errorf("failed to declare %s: %w", name, err)
		}
	}
	return nil
}
