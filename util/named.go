package util

import (
	"fmt"

	"github.com/goccy/go-json"
)

/*
Named is an order-preserving (name, value) pair. We use it for struct fields
and enum variants, where declaration order is semantically significant - it is
the on-the-wire field and variant order, so it must survive every trip through
the model.
*/

////////////////////////////////////////////////////////////////////////////////

type Named[T any] struct {
	Name  string
	Value T
}

func NewNamed[T any](name string, value T) Named[T] {
	return Named[T]{Name: name, Value: value}
}

func (n Named[T]) String() string {
	return fmt.Sprintf("(%s: %v)", n.Name, n.Value)
}

// MarshalJSON encodes the pair as a single-key object {name: value}.
func (n Named[T]) MarshalJSON() ([]byte, error) {
	value, err := json.Marshal(n.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal named value: %w", err)
	}
	name, err := json.Marshal(n.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal name: %w", err)
	}
	buf := make([]byte, 0, len(name)+len(value)+2)
	buf = append(buf, '{')
	buf = append(buf, name...)
	buf = append(buf, ':')
	buf = append(buf, value...)
	buf = append(buf, '}')
	return buf, nil
}

// UnmarshalJSON decodes a single-key object {name: value} into the pair.
func (n *Named[T]) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal named pair: %w", err)
	}
	if len(raw) != 1 {
		return fmt.Errorf("named pair must have exactly one key, got %d", len(raw))
	}
	for name, value := range raw {
		var v T
		if err := json.Unmarshal(value, &v); err != nil {
			return fmt.Errorf("failed to unmarshal value of %s: %w", name, err)
		}
		n.Name = name
		n.Value = v
	}
	return nil
}
