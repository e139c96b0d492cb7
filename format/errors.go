package format

import "fmt"

/*
Errors that can be returned by the format package. Schema malformation is a
producer error: it is detected eagerly, identifies the offending definition,
and aborts the compiler pass before any output is produced.
*/

////////////////////////////////////////////////////////////////////////////////

// DuplicateDefinitionError is returned when a name is added to a registry
// twice.
type DuplicateDefinitionError struct {
	Name string
}

func (e DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("duplicate definition %q", e.Name)
}

func (e DuplicateDefinitionError) Is(target error) bool {
	_, ok := target.(DuplicateDefinitionError)
	return ok
}

// MalformedEnumError is returned when an enum's variant indices are not a
// dense 0..n sequence.
type MalformedEnumError struct {
	Container string
}

func (e MalformedEnumError) Error() string {
	return fmt.Sprintf("enum %q variant indices are not a dense 0..n sequence", e.Container)
}

func (e MalformedEnumError) Is(target error) bool {
	_, ok := target.(MalformedEnumError)
	return ok
}

// UnresolvedFormatError is returned when a definition contains a format node
// that was never resolved by the producer.
type UnresolvedFormatError struct {
	Container string
}

func (e UnresolvedFormatError) Error() string {
	return fmt.Sprintf("definition %q contains an unresolved format node", e.Container)
}

func (e UnresolvedFormatError) Is(target error) bool {
	_, ok := target.(UnresolvedFormatError)
	return ok
}

// MissingDefinitionError is returned when a definition references a name
// absent from the registry.
type MissingDefinitionError struct {
	Container string
	Target    string
}

func (e MissingDefinitionError) Error() string {
	return fmt.Sprintf("definition %q references %q, which is not in the registry", e.Container, e.Target)
}

func (e MissingDefinitionError) Is(target error) bool {
	_, ok := target.(MissingDefinitionError)
	return ok
}
