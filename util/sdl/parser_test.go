package sdl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novifinancial/serde-typegen/format"
	"github.com/novifinancial/serde-typegen/util"
	"github.com/novifinancial/serde-typegen/util/sdl"
)

const schema = `
# scene graph registry
unit Nothing

newtype Meters(f64)

tuple Pair(u32, str)

struct Node {
	id: u64
	label: option<str>
	children: seq<Node>
	attrs: map<str, u32>
	digest: array<u8, 32>
	position: tuple<f64, f64>
}

enum Event {
	Started
	Renamed(str)
	Moved(f64, f64)
	Resized { width: u32 height: u32 }
}
`

func TestParseSchema(t *testing.T) {
	registry, err := sdl.ParseSchema([]byte(schema))
	require.NoError(t, err)

	t.Run("declaration order becomes registry order", func(t *testing.T) {
		assert.Equal(t, []string{"Nothing", "Meters", "Pair", "Node", "Event"}, registry.Names())
	})
	t.Run("unit", func(t *testing.T) {
		c, ok := registry.Get("Nothing")
		require.True(t, ok)
		assert.Equal(t, format.UnitStruct{}, c)
	})
	t.Run("newtype", func(t *testing.T) {
		c, ok := registry.Get("Meters")
		require.True(t, ok)
		assert.Equal(t, format.NewtypeStruct{Value: format.F64{}}, c)
	})
	t.Run("tuple", func(t *testing.T) {
		c, ok := registry.Get("Pair")
		require.True(t, ok)
		assert.Equal(t, format.TupleStruct{Values: []format.Format{format.U32{}, format.Str{}}}, c)
	})
	t.Run("struct fields in order", func(t *testing.T) {
		c, ok := registry.Get("Node")
		require.True(t, ok)
		assert.Equal(t, format.Struct{Fields: []util.Named[format.Format]{
			util.NewNamed[format.Format]("id", format.U64{}),
			util.NewNamed[format.Format]("label", format.Option{Inner: format.Str{}}),
			util.NewNamed[format.Format]("children", format.Seq{Content: format.TypeName("Node")}),
			util.NewNamed[format.Format]("attrs", format.Map{Key: format.Str{}, Value: format.U32{}}),
			util.NewNamed[format.Format]("digest", format.FixedArray{Content: format.U8{}, Size: 32}),
			util.NewNamed[format.Format]("position", format.Tuple{Contents: []format.Format{format.F64{}, format.F64{}}}),
		}}, c)
	})
	t.Run("enum variants indexed in declaration order", func(t *testing.T) {
		c, ok := registry.Get("Event")
		require.True(t, ok)
		assert.Equal(t, format.Enum{Variants: map[uint32]util.Named[format.VariantFormat]{
			0: util.NewNamed[format.VariantFormat]("Started", format.VariantUnit{}),
			1: util.NewNamed[format.VariantFormat]("Renamed", format.VariantNewtype{Value: format.Str{}}),
			2: util.NewNamed[format.VariantFormat]("Moved", format.VariantTuple{
				Values: []format.Format{format.F64{}, format.F64{}},
			}),
			3: util.NewNamed[format.VariantFormat]("Resized", format.VariantStruct{
				Fields: []util.Named[format.Format]{
					util.NewNamed[format.Format]("width", format.U32{}),
					util.NewNamed[format.Format]("height", format.U32{}),
				},
			}),
		}}, c)
	})
	t.Run("parsed registries validate", func(t *testing.T) {
		require.NoError(t, format.Validate(registry))
	})
}

func TestParseSchemaErrors(t *testing.T) {
	t.Run("duplicate definitions rejected", func(t *testing.T) {
		_, err := sdl.ParseSchema([]byte("unit A\nunit A"))
		require.ErrorIs(t, err, format.DuplicateDefinitionError{Name: "A"})
	})
	t.Run("malformed input rejected", func(t *testing.T) {
		_, err := sdl.ParseSchema([]byte("struct { broken"))
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to parse schema")
	})
	t.Run("unclosed generic rejected", func(t *testing.T) {
		_, err := sdl.ParseSchema([]byte("newtype A(seq<u8)"))
		require.Error(t, err)
	})
}

func TestParseSchemaEmpty(t *testing.T) {
	registry, err := sdl.ParseSchema([]byte("# nothing but comments\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, registry.Len())
}
