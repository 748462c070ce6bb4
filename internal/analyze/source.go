package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"path/filepath"

	"enumconv/internal/diagnostic"
	"enumconv/internal/mapping"
)

// Source is a type-checked package as seen by the front-end. It is filled
// from go/packages or from an analysis pass.
type Source struct {
	Fset  *token.FileSet
	Files []*ast.File
	Pkg   *types.Package
	Info  *types.Info
}

// enumDecl is a //enumconv:generate type found in the syntax.
type enumDecl struct {
	spec  *ast.TypeSpec
	named *types.Named
}

// FromPackage builds the descriptor model of every //enumconv:generate enum
// in src. Problems with the directives are returned as structural
// diagnostics tagged with the enum name; the affected enum is still listed
// so that the planner reports it as blocked. The returned file has no enums
// when the package declares none.
func FromPackage(src *Source) (*mapping.File, *diagnostic.Diagnostics) {
	res := &diagnostic.Diagnostics{}

	f := &mapping.File{
		Version:     "1",
		Package:     src.Pkg.Name(),
		PackagePath: src.Pkg.Path(),
	}

	if len(src.Files) > 0 {
		f.Dir = filepath.Dir(src.Fset.Position(src.Files[0].Pos()).Filename)
	}

	decls := findEnums(src, res)
	for _, d := range decls {
		f.Enums = append(f.Enums, buildEnum(src, d, res))
	}

	return f, res
}

func findEnums(src *Source, res *diagnostic.Diagnostics) []enumDecl {
	var out []enumDecl

	for _, file := range src.Files {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				if !HasGenerate(docOf(gd, ts.Doc)) {
					continue
				}

				tn, ok := src.Info.Defs[ts.Name].(*types.TypeName)
				if !ok {
					continue
				}

				named, ok := tn.Type().(*types.Named)
				if !ok || ts.TypeParams != nil {
					res.AddError("invalid_enum", "enumconv:generate needs a non-generic defined type",
						position(src.Fset, ts.Pos()), ts.Name.Name, "")

					continue
				}

				out = append(out, enumDecl{spec: ts, named: named})
			}
		}
	}

	return out
}

// docOf returns the doc comment of a spec, falling back to the declaration
// doc for ungrouped declarations.
func docOf(gd *ast.GenDecl, doc *ast.CommentGroup) *ast.CommentGroup {
	if doc == nil && !gd.Lparen.IsValid() {
		return gd.Doc
	}

	return doc
}

func buildEnum(src *Source, d enumDecl, res *diagnostic.Diagnostics) mapping.Enum {
	e := mapping.Enum{
		Name:       d.spec.Name.Name,
		Underlying: types.TypeString(d.named.Underlying(), nil),
		Pos:        position(src.Fset, d.spec.Pos()),
	}

	if b, ok := d.named.Underlying().(*types.Basic); ok {
		e.Underlying = b.Name()
	}

	ev := &evaluator{src: src}

	for _, file := range src.Files {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.CONST {
				continue
			}

			for _, spec := range gd.Specs {
				vs := spec.(*ast.ValueSpec)
				for _, id := range vs.Names {
					c, ok := src.Info.Defs[id].(*types.Const)
					if !ok || !types.Identical(c.Type(), d.named) {
						continue
					}

					e.Members = append(e.Members, buildMember(ev, &e, c, id, docOf(gd, vs.Doc), res))
				}
			}
		}
	}

	return e
}

func buildMember(
	ev *evaluator, e *mapping.Enum, c *types.Const, id *ast.Ident, doc *ast.CommentGroup, res *diagnostic.Diagnostics,
) mapping.Member {
	m := mapping.Member{Name: id.Name, Pos: position(ev.src.Fset, id.Pos())}

	// Non-integer constants are left without a value; mapping.Validate
	// rejects their underlying type.
	if iv := constant.ToInt(c.Val()); iv.Kind() == constant.Int {
		if v, exact := constant.Int64Val(iv); exact {
			m.Value = &v
		} else {
			res.AddError("value_unresolved",
				fmt.Sprintf("constant %s = %s does not fit in int64", id.Name, c.Val()), m.Pos, e.Name, m.Name)
		}
	}

	directives, err := ParseDirectives(doc)
	if err != nil {
		var de *DirectiveError
		if errors.As(err, &de) {
			res.AddError("invalid_directive", err.Error(), position(ev.src.Fset, de.Pos), e.Name, m.Name)
		}
	}

	for _, dir := range directives {
		attr, ok := ev.attr(dir, e.Name, m.Name, res)
		if ok {
			m.Attrs = append(m.Attrs, attr)
		}
	}

	return m
}

func position(fset *token.FileSet, pos token.Pos) mapping.Position {
	p := fset.Position(pos)

	return mapping.Position{File: p.Filename, Line: p.Line, Column: p.Column}
}
