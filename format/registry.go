package format

import (
	"fmt"
	"slices"
)

/*
Registry is the full, ordered collection of named type definitions forming one
schema. It is constructed once by a producer (the JSON loader, the sdl parser,
or test code) and treated as immutable input by the compiler pass - the pass
derives a dependency graph, a sort order and a known-size set from it, but
never mutates it.
*/

////////////////////////////////////////////////////////////////////////////////

type Registry struct {
	names   []string
	entries map[string]ContainerFormat
}

func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]ContainerFormat),
	}
}

// Add appends a definition to the registry. Names must be unique.
func (r *Registry) Add(name string, container ContainerFormat) error {
	if _, ok := r.entries[name]; ok {
		return DuplicateDefinitionError{Name: name}
	}
	r.names = append(r.names, name)
	r.entries[name] = container
	return nil
}

// Get returns the definition for name, if present.
func (r *Registry) Get(name string) (ContainerFormat, bool) {
	c, ok := r.entries[name]
	return c, ok
}

// Names returns the definition names in registry order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Len returns the number of definitions.
func (r *Registry) Len() int {
	return len(r.names)
}

// Sorted returns a copy of the registry with entries in ascending name order.
func (r *Registry) Sorted() *Registry {
	names := slices.Clone(r.names)
	slices.Sort(names)
	sorted := NewRegistry()
	for _, name := range names {
		sorted.names = append(sorted.names, name)
		sorted.entries[name] = r.entries[name]
	}
	return sorted
}

func (r *Registry) String() string {
	return fmt.Sprintf("registry(%d definitions)", len(r.names))
}
