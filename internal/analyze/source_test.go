package analyze

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enumconv/internal/mapping"
)

const colorsSrc = `package colors

import tm "time"

type Shade int

const (
	Crimson Shade = iota
	Lime
)

//enumconv:generate
type Color uint8

const (
	//enumconv:name "Bright Red"
	//enumconv:alias "r" "rouge"
	//enumconv:to Crimson
	//enumconv:to tm.Monday
	//enumconv:from Crimson tm.Monday
	Red Color = iota + 1
	Green
	//enumconv:ignore
	Unknown Color = 99
)

// Plain is not generated.
type Plain int

const Zero Plain = 0

var _ = tm.Monday
`

func typeCheck(t *testing.T, src string) *Source {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "colors.go", src, parser.ParseComments)
	require.NoError(t, err)

	info := &types.Info{
		Types:     map[ast.Expr]types.TypeAndValue{},
		Defs:      map[*ast.Ident]types.Object{},
		Uses:      map[*ast.Ident]types.Object{},
		Implicits: map[ast.Node]types.Object{},
	}

	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	pkg, err := conf.Check("example.com/colors", fset, []*ast.File{file}, info)
	require.NoError(t, err)

	return &Source{Fset: fset, Files: []*ast.File{file}, Pkg: pkg, Info: info}
}

func TestFromPackage(t *testing.T) {
	f, res := FromPackage(typeCheck(t, colorsSrc))
	require.True(t, res.IsValid(), res.Error())

	assert.Equal(t, "colors", f.Package)
	assert.Equal(t, "example.com/colors", f.PackagePath)
	assert.Equal(t, ".", f.Dir)
	require.Len(t, f.Enums, 1, "only marked types are collected")

	e := f.Enums[0]
	assert.Equal(t, "Color", e.Name)
	assert.Equal(t, "uint8", e.Underlying)
	assert.Equal(t, 13, e.Pos.Line)

	require.Len(t, e.Members, 3)
	assert.Equal(t, "Red", e.Members[0].Name)
	assert.Equal(t, int64(1), *e.Members[0].Value)
	assert.Equal(t, "Green", e.Members[1].Name)
	assert.Equal(t, int64(2), *e.Members[1].Value)
	assert.Equal(t, int64(99), *e.Members[2].Value)
	assert.True(t, e.Members[2].IsIgnored())
	assert.Empty(t, e.Members[1].Attrs)

	attrs := e.Members[0].Attrs
	require.Len(t, attrs, 5)
	assert.Equal(t, mapping.AttrName, attrs[0].Kind)
	assert.Equal(t, "Bright Red", attrs[0].Name)
	assert.Equal(t, 16, attrs[0].Pos.Line)
	assert.Equal(t, []string{"r", "rouge"}, attrs[1].Aliases)

	assert.Equal(t, mapping.AttrTo, attrs[2].Kind)
	assert.Equal(t, []mapping.ParamDef{{Type: "example.com/colors.Shade", Value: "Crimson"}}, attrs[2].Params)
	assert.Equal(t, []mapping.ParamDef{{Type: "time.Weekday", Value: "time.Monday"}}, attrs[3].Params,
		"import aliases are rewritten to the package base name")

	assert.Equal(t, mapping.AttrFrom, attrs[4].Kind)
	assert.Equal(t, []mapping.ParamDef{
		{Type: "example.com/colors.Shade", Value: "Crimson"},
		{Type: "time.Weekday", Value: "time.Monday"},
	}, attrs[4].Params)
}

func TestFromPackage_NoEnums(t *testing.T) {
	f, res := FromPackage(typeCheck(t, "package p\n\ntype T int\n\nconst A T = 1\n"))
	assert.True(t, res.IsValid())
	assert.Empty(t, f.Enums)
}

func TestFromPackage_UntypedLiterals(t *testing.T) {
	f, res := FromPackage(typeCheck(t, `package p

//enumconv:generate
type E int

const (
	//enumconv:from "a" 3
	A E = iota
)
`))
	require.True(t, res.IsValid(), res.Error())

	assert.Equal(t, []mapping.ParamDef{
		{Type: "string", Value: `"a"`},
		{Type: "int", Value: "3"},
	}, f.Enums[0].Members[0].Attrs[0].Params)
}

func TestFromPackage_UnresolvedExpr(t *testing.T) {
	f, res := FromPackage(typeCheck(t, `package p

type Shade int

const Crimson Shade = 0

//enumconv:generate
type E int

const (
	//enumconv:to Crimsen
	A E = iota
)
`))
	require.Len(t, res.Errors, 1)

	d := res.Errors[0]
	assert.Equal(t, "unresolved_expr", d.Code)
	assert.Equal(t, "E", d.Enum)
	assert.Equal(t, "A", d.Member)
	assert.Equal(t, 11, d.Pos.Line)
	assert.Contains(t, d.Suggestions, "Crimson")

	require.Len(t, f.Enums, 1, "the enum is kept so the planner can block it")
	assert.Empty(t, f.Enums[0].Members[0].Attrs)
}

func TestFromPackage_InvalidDirective(t *testing.T) {
	_, res := FromPackage(typeCheck(t, `package p

//enumconv:generate
type E int

const (
	//enumconv:name
	A E = iota
)
`))
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "invalid_directive", res.Errors[0].Code)
}

func TestFromPackage_GenericType(t *testing.T) {
	_, res := FromPackage(typeCheck(t, `package p

//enumconv:generate
type E[T any] int
`))
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "invalid_enum", res.Errors[0].Code)
}

func TestFromPackage_StringUnderlying(t *testing.T) {
	f, res := FromPackage(typeCheck(t, `package p

//enumconv:generate
type E string

const A E = "a"
`))
	assert.True(t, res.IsValid())
	assert.Equal(t, "string", f.Enums[0].Underlying, "left for mapping.Validate to reject")

	v := mapping.Validate(f)
	require.Len(t, v.Errors, 1)
	assert.Equal(t, "invalid_underlying", v.Errors[0].Code)
}
