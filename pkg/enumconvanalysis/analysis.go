// Package enumconvanalysis exposes the enumconv checks as a go/analysis
// pass, so mapping problems show up in go vet, gopls and linters at the
// directive that caused them.
package enumconvanalysis

import (
	"go/token"
	"strings"

	"golang.org/x/tools/go/analysis"

	"enumconv/internal/analyze"
	"enumconv/internal/diagnostic"
	"enumconv/internal/plan"
)

// Analyzer reports invalid //enumconv: mappings in the package.
var Analyzer = &analysis.Analyzer{
	Name: "enumconv",
	Doc:  "check //enumconv: enum mapping directives",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	f, front := analyze.FromPackage(&analyze.Source{
		Fset:  pass.Fset,
		Files: pass.Files,
		Pkg:   pass.Pkg,
		Info:  pass.TypesInfo,
	})

	if len(f.Enums) == 0 {
		for _, d := range front.Errors {
			report(pass, d)
		}

		return nil, nil
	}

	p := plan.BuildWith(f, plan.Options{}, front)

	all := p.AllDiagnostics()
	for _, d := range all.Errors {
		report(pass, d)
	}

	return nil, nil
}

func report(pass *analysis.Pass, d diagnostic.Diagnostic) {
	pos := tokenPos(pass, d.Pos)
	if !pos.IsValid() {
		return
	}

	msg := d.Message
	if d.Code != "" {
		msg = d.Code + ": " + msg
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	pass.Report(analysis.Diagnostic{Pos: pos, Category: d.Code, Message: msg})
}

// tokenPos maps a file/line/column position back into the pass file set.
func tokenPos(pass *analysis.Pass, p diagnostic.Position) token.Pos {
	if !p.IsValid() {
		return token.NoPos
	}

	for _, file := range pass.Files {
		tf := pass.Fset.File(file.Pos())
		if tf == nil || tf.Name() != p.File || p.Line > tf.LineCount() {
			continue
		}

		pos := tf.LineStart(p.Line)
		if p.Column > 1 {
			pos += token.Pos(p.Column - 1)
		}

		return pos
	}

	return token.NoPos
}
