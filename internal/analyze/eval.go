package analyze

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"go/types"
	"slices"

	"golang.org/x/tools/go/ast/astutil"

	"enumconv/internal/common"
	"enumconv/internal/diagnostic"
	"enumconv/internal/mapping"
	"enumconv/internal/match"
)

// evaluator turns directive arguments into typed parameter literals.
type evaluator struct {
	src   *Source
	names []string // lazily built suggestion pool
}

func (ev *evaluator) attr(d Directive, enum, member string, res *diagnostic.Diagnostics) (mapping.Attr, bool) {
	a := mapping.Attr{Pos: position(ev.src.Fset, d.Pos)}

	switch d.Verb {
	case VerbName:
		a.Kind = mapping.AttrName
		a.Name = d.Args[0]
	case VerbAlias:
		a.Kind = mapping.AttrAlias
		a.Aliases = d.Args
	case VerbIgnore:
		a.Kind = mapping.AttrIgnore
		a.Ignore = true
	case VerbTo, VerbFrom:
		a.Kind = mapping.AttrTo
		if d.Verb == VerbFrom {
			a.Kind = mapping.AttrFrom
		}

		for _, expr := range d.Args {
			def, err := ev.param(expr, d.Pos)
			if err != nil {
				res.AddErrorWithSuggestions("unresolved_expr",
					fmt.Sprintf("cannot resolve %q: %v", expr, err), a.Pos, enum, member, ev.suggest(expr))

				return a, false
			}

			a.Params = append(a.Params, def)
		}
	case VerbGenerate:
		res.AddError("invalid_directive", Prefix+"generate belongs on a type declaration", a.Pos, enum, member)
		return a, false
	}

	return a, true
}

// param type-checks expr in the scope enclosing pos and renders it for the
// enum package.
func (ev *evaluator) param(expr string, pos token.Pos) (mapping.ParamDef, error) {
	tv, err := types.Eval(ev.src.Fset, ev.src.Pkg, pos, expr)
	if err != nil {
		return mapping.ParamDef{}, err
	}

	if !tv.IsValue() || tv.Type == nil {
		return mapping.ParamDef{}, fmt.Errorf("%s is not a value", expr)
	}

	value, err := ev.render(expr, pos)
	if err != nil {
		return mapping.ParamDef{}, err
	}

	return mapping.ParamDef{
		Type:  types.TypeString(types.Default(tv.Type), nil),
		Value: value,
	}, nil
}

// render rewrites package qualifiers to the names generated files import
// them under.
func (ev *evaluator) render(expr string, pos token.Pos) (string, error) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return "", err
	}

	scope := ev.src.Pkg.Scope().Innermost(pos)
	if scope == nil {
		scope = ev.src.Pkg.Scope()
	}

	node = astutil.Apply(node, func(c *astutil.Cursor) bool {
		sel, ok := c.Node().(*ast.SelectorExpr)
		if !ok {
			return true
		}

		if id, ok := sel.X.(*ast.Ident); ok {
			if _, obj := scope.LookupParent(id.Name, pos); obj != nil {
				if pn, ok := obj.(*types.PkgName); ok {
					sel.X = ast.NewIdent(common.PkgAlias(pn.Imported().Path()))
				}
			}
		}

		return false
	}, nil).(ast.Expr)

	var buf bytes.Buffer
	if err := format.Node(&buf, token.NewFileSet(), node); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// suggest proposes package-level values and imported values close to expr.
func (ev *evaluator) suggest(expr string) []string {
	if ev.names == nil {
		ev.names = ev.valueNames()
	}

	return match.Suggest(expr, ev.names)
}

func (ev *evaluator) valueNames() []string {
	var names []string

	scope := ev.src.Pkg.Scope()
	for _, name := range scope.Names() {
		if isValue(scope.Lookup(name)) {
			names = append(names, name)
		}
	}

	for _, file := range ev.src.Files {
		for _, spec := range file.Imports {
			pn, ok := ev.src.Info.Implicits[spec].(*types.PkgName)
			if !ok {
				if spec.Name == nil {
					continue
				}

				if pn, ok = ev.src.Info.Defs[spec.Name].(*types.PkgName); !ok {
					continue
				}
			}

			imported := pn.Imported().Scope()
			for _, name := range imported.Names() {
				if obj := imported.Lookup(name); obj.Exported() && isValue(obj) {
					names = append(names, pn.Name()+"."+name)
				}
			}
		}
	}

	slices.Sort(names)

	return slices.Compact(names)
}

func isValue(obj types.Object) bool {
	switch obj.(type) {
	case *types.Const, *types.Var:
		return true
	default:
		return false
	}
}
