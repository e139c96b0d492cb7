package codegen_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novifinancial/serde-typegen/codegen"
	"github.com/novifinancial/serde-typegen/format"
	"github.com/novifinancial/serde-typegen/layout"
	"github.com/novifinancial/serde-typegen/util"
)

type recordingGenerator struct {
	calls []string
	fail  bool
}

func (g *recordingGenerator) ForwardDeclare(name string) error {
	g.calls = append(g.calls, "forward "+name)
	return nil
}

func (g *recordingGenerator) Declare(name string, _ format.ContainerFormat, refs []layout.Ref) error {
	if g.fail {
		return fmt.Errorf("emit failed")
	}
	indirect := 0
	for _, ref := range refs {
		if ref.Indirect {
			indirect++
		}
	}
	g.calls = append(g.calls, fmt.Sprintf("declare %s (%d indirect)", name, indirect))
	return nil
}

func TestEmit(t *testing.T) {
	registry := format.NewRegistry()
	require.NoError(t, registry.Add("Expr", format.Enum{Variants: map[uint32]util.Named[format.VariantFormat]{
		0: util.NewNamed[format.VariantFormat]("Lit", format.VariantNewtype{Value: format.I64{}}),
		1: util.NewNamed[format.VariantFormat]("Group", format.VariantNewtype{Value: format.TypeName("Block")}),
	}}))
	require.NoError(t, registry.Add("Block", format.Struct{Fields: []util.Named[format.Format]{
		util.NewNamed[format.Format]("exprs", format.Seq{Content: format.TypeName("Expr")}),
	}}))

	plan, err := layout.Resolve(registry)
	require.NoError(t, err)

	t.Run("forward declarations precede their dependent", func(t *testing.T) {
		g := &recordingGenerator{}
		require.NoError(t, codegen.Emit(plan, registry, g))
		assert.Equal(t, []string{
			"forward Expr",
			"declare Block (1 indirect)",
			"declare Expr (0 indirect)",
		}, g.calls)
	})

	t.Run("generator errors are wrapped with the definition name", func(t *testing.T) {
		g := &recordingGenerator{fail: true}
		err := codegen.Emit(plan, registry, g)
		require.ErrorContains(t, err, "failed to declare Block")
	})
}
