package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novifinancial/serde-typegen/format"
	"github.com/novifinancial/serde-typegen/layout"
	"github.com/novifinancial/serde-typegen/util"
)

func field(name string, f format.Format) util.Named[format.Format] {
	return util.NewNamed(name, f)
}

func TestResolve(t *testing.T) {
	t.Run("non-recursive registry needs no indirection", func(t *testing.T) {
		registry := format.NewRegistry()
		require.NoError(t, registry.Add("Outer", format.Struct{Fields: []util.Named[format.Format]{
			field("inner", format.TypeName("Inner")),
			field("pairs", format.Map{Key: format.Str{}, Value: format.TypeName("Inner")}),
		}}))
		require.NoError(t, registry.Add("Inner", format.NewtypeStruct{Value: format.U32{}}))

		plan, err := layout.Resolve(registry)
		require.NoError(t, err)
		require.Equal(t, []string{"Inner", "Outer"}, plan.Order)
		for _, name := range plan.Order {
			for _, ref := range plan.Refs(name) {
				assert.False(t, ref.Indirect, "%s/%s", name, ref.Path)
			}
			assert.Empty(t, plan.Forward(name))
		}
	})

	t.Run("linked list marks exactly the self reference", func(t *testing.T) {
		registry := format.NewRegistry()
		require.NoError(t, registry.Add("Node", format.Struct{Fields: []util.Named[format.Format]{
			field("value", format.U64{}),
			field("next", format.Option{Inner: format.TypeName("Node")}),
		}}))

		plan, err := layout.Resolve(registry)
		require.NoError(t, err)
		refs := plan.Refs("Node")
		require.Len(t, refs, 1)
		assert.True(t, refs[0].Indirect)
		assert.Equal(t, "next.option", refs[0].Path)
		assert.Equal(t, "Node", refs[0].Target)
		assert.True(t, plan.Indirect("Node", 0))
		// The name is in scope inside its own declaration.
		assert.Empty(t, plan.Forward("Node"))
	})

	t.Run("mutual recursion breaks at one back edge", func(t *testing.T) {
		registry := format.NewRegistry()
		require.NoError(t, registry.Add("Expr", format.Enum{Variants: map[uint32]util.Named[format.VariantFormat]{
			0: util.NewNamed[format.VariantFormat]("Lit", format.VariantNewtype{Value: format.I64{}}),
			1: util.NewNamed[format.VariantFormat]("Group", format.VariantNewtype{Value: format.TypeName("Block")}),
		}}))
		require.NoError(t, registry.Add("Block", format.Struct{Fields: []util.Named[format.Format]{
			field("exprs", format.Seq{Content: format.TypeName("Expr")}),
		}}))

		plan, err := layout.Resolve(registry)
		require.NoError(t, err)
		require.Len(t, plan.Order, 2)

		indirect := 0
		for _, name := range plan.Order {
			for _, ref := range plan.Refs(name) {
				if ref.Indirect {
					indirect++
				}
			}
		}
		assert.Equal(t, 1, indirect)

		// Whichever definition comes first carries the forward declaration for
		// the other.
		first := plan.Order[0]
		second := plan.Order[1]
		assert.Equal(t, []string{second}, plan.Forward(first))
		assert.Empty(t, plan.Forward(second))
	})

	t.Run("every reference gets a decision", func(t *testing.T) {
		registry := format.NewRegistry()
		require.NoError(t, registry.Add("A", format.Struct{Fields: []util.Named[format.Format]{
			field("b", format.TypeName("B")),
			field("c", format.Seq{Content: format.TypeName("C")}),
		}}))
		require.NoError(t, registry.Add("B", format.NewtypeStruct{Value: format.TypeName("C")}))
		require.NoError(t, registry.Add("C", format.Struct{Fields: []util.Named[format.Format]{
			field("a", format.Option{Inner: format.TypeName("A")}),
		}}))

		plan, err := layout.Resolve(registry)
		require.NoError(t, err)
		total := 0
		for _, name := range plan.Order {
			container, _ := registry.Get(name)
			refs := plan.Refs(name)
			require.Len(t, refs, len(format.Refs(container)))
			total += len(refs)
		}
		assert.Equal(t, 4, total)
	})

	t.Run("forward declarations are deduplicated", func(t *testing.T) {
		registry := format.NewRegistry()
		require.NoError(t, registry.Add("A", format.Struct{Fields: []util.Named[format.Format]{
			field("x", format.TypeName("B")),
			field("y", format.TypeName("B")),
		}}))
		require.NoError(t, registry.Add("B", format.NewtypeStruct{Value: format.TypeName("A")}))

		plan, err := layout.Resolve(registry)
		require.NoError(t, err)
		first := plan.Order[0]
		second := plan.Order[1]
		assert.Equal(t, []string{second}, plan.Forward(first))
		assert.Empty(t, plan.Forward(second))
	})

	t.Run("malformed registry aborts the pass", func(t *testing.T) {
		registry := format.NewRegistry()
		require.NoError(t, registry.Add("E", format.Enum{Variants: map[uint32]util.Named[format.VariantFormat]{
			7: util.NewNamed[format.VariantFormat]("A", format.VariantUnit{}),
		}}))
		_, err := layout.Resolve(registry)
		require.ErrorIs(t, err, format.MalformedEnumError{})
	})

	t.Run("indirect lookup out of range", func(t *testing.T) {
		registry := format.NewRegistry()
		require.NoError(t, registry.Add("A", format.UnitStruct{}))
		plan, err := layout.Resolve(registry)
		require.NoError(t, err)
		assert.False(t, plan.Indirect("A", 0))
		assert.False(t, plan.Indirect("missing", 3))
	})
}
