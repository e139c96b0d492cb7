package util_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novifinancial/serde-typegen/util"
)

func TestNamedString(t *testing.T) {
	tests := []struct {
		name     string
		input    util.Named[string]
		expected string
	}{
		{
			name:     "empty input",
			input:    util.NewNamed("", ""),
			expected: "(: )",
		},
		{
			name:     "single character",
			input:    util.NewNamed("a", "b"),
			expected: "(a: b)",
		},
		{
			name:     "multiple characters",
			input:    util.NewNamed("Hello", "World"),
			expected: "(Hello: World)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.String())
		})
	}
}

func TestNamedJSON(t *testing.T) {
	t.Run("marshals as a single-key object", func(t *testing.T) {
		data, err := json.Marshal(util.NewNamed("radius", 10))
		require.NoError(t, err)
		assert.JSONEq(t, `{"radius": 10}`, string(data))
	})
	t.Run("round trips", func(t *testing.T) {
		var pair util.Named[int]
		data, err := json.Marshal(util.NewNamed("count", 42))
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &pair))
		assert.Equal(t, util.NewNamed("count", 42), pair)
	})
	t.Run("rejects multiple keys", func(t *testing.T) {
		var pair util.Named[int]
		require.Error(t, json.Unmarshal([]byte(`{"a": 1, "b": 2}`), &pair))
	})
}
