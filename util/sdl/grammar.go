package sdl

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// nolint:gochecknoglobals
var (
	Lexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Whitespace", Pattern: `[\s\r\n]+`},
		{Name: "Integer", Pattern: `[0-9]+`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "LBrace", Pattern: `\{`},
		{Name: "RBrace", Pattern: `\}`},
		{Name: "LParen", Pattern: `\(`},
		{Name: "RParen", Pattern: `\)`},
		{Name: "Lt", Pattern: `<`},
		{Name: "Gt", Pattern: `>`},
		{Name: "Comma", Pattern: `,`},
		{Name: "Colon", Pattern: `:`},
	})

	DocumentParser = participle.MustBuild[Document](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(2),
	)
)

type Document struct {
	Definitions []*Definition `parser:"@@*"`
}

type Definition struct {
	Unit    *UnitDef    `parser:"@@"`
	Newtype *NewtypeDef `parser:"| @@"`
	Tuple   *TupleDef   `parser:"| @@"`
	Struct  *StructDef  `parser:"| @@"`
	Enum    *EnumDef    `parser:"| @@"`
}

type UnitDef struct {
	Name string `parser:"'unit' @Ident"`
}

type NewtypeDef struct {
	Name  string    `parser:"'newtype' @Ident"`
	Value *TypeExpr `parser:"LParen @@ RParen"`
}

type TupleDef struct {
	Name   string      `parser:"'tuple' @Ident"`
	Values []*TypeExpr `parser:"LParen @@ (Comma @@)* RParen"`
}

type StructDef struct {
	Name   string      `parser:"'struct' @Ident"`
	Fields []*FieldDef `parser:"LBrace @@* RBrace"`
}

type FieldDef struct {
	Name string    `parser:"@Ident Colon"`
	Type *TypeExpr `parser:"@@"`
}

type EnumDef struct {
	Name     string        `parser:"'enum' @Ident"`
	Variants []*VariantDef `parser:"LBrace @@* RBrace"`
}

type VariantDef struct {
	Name   string      `parser:"@Ident"`
	Fields []*FieldDef `parser:"( LBrace @@* RBrace"`
	Values []*TypeExpr `parser:"| LParen @@ (Comma @@)* RParen )?"`
}

type TypeExpr struct {
	Option *TypeExpr   `parser:"'option' Lt @@ Gt"`
	Seq    *TypeExpr   `parser:"| 'seq' Lt @@ Gt"`
	Map    *MapExpr    `parser:"| 'map' Lt @@ Gt"`
	Array  *ArrayExpr  `parser:"| 'array' Lt @@ Gt"`
	Tuple  []*TypeExpr `parser:"| 'tuple' Lt @@ (Comma @@)* Gt"`
	Ident  string      `parser:"| @Ident"`
}

type MapExpr struct {
	Key   *TypeExpr `parser:"@@ Comma"`
	Value *TypeExpr `parser:"@@"`
}

type ArrayExpr struct {
	Content *TypeExpr `parser:"@@ Comma"`
	Size    int       `parser:"@Integer"`
}
