package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/novifinancial/serde-typegen/util"
)

func TestOkeys(t *testing.T) {
	t.Run("empty map", func(t *testing.T) {
		assert.Empty(t, util.Okeys(map[string]int{}))
	})
	t.Run("keys are sorted", func(t *testing.T) {
		m := map[string]int{"b": 1, "a": 2, "c": 3}
		assert.Equal(t, []string{"a", "b", "c"}, util.Okeys(m))
	})
}

func TestDedup(t *testing.T) {
	t.Run("preserves first occurrence order", func(t *testing.T) {
		assert.Equal(t, []string{"b", "a", "c"}, util.Dedup([]string{"b", "a", "b", "c", "a"}))
	})
	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, util.Dedup([]string{}))
	})
}

func TestWhen(t *testing.T) {
	assert.Equal(t, "a", util.When(true, "a", "b"))
	assert.Equal(t, "b", util.When(false, "a", "b"))
}
