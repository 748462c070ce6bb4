package analyze

import (
	"fmt"
	"go/ast"
	"go/scanner"
	"go/token"
	"strconv"
	"strings"
)

// Prefix starts every enumconv directive comment.
const Prefix = "//enumconv:"

// Verb is the directive keyword following Prefix.
type Verb string

const (
	VerbGenerate Verb = "generate"
	VerbName     Verb = "name"
	VerbAlias    Verb = "alias"
	VerbTo       Verb = "to"
	VerbFrom     Verb = "from"
	VerbIgnore   Verb = "ignore"
)

// Directive is one parsed //enumconv: comment line.
type Directive struct {
	Verb Verb
	// Args are the raw arguments. For name and alias they are unquoted
	// string literals; for to and from they are Go expressions.
	Args []string
	Pos  token.Pos
}

// ParseDirectives returns the directives of a comment group in order.
// Lines without Prefix are skipped.
func ParseDirectives(cg *ast.CommentGroup) ([]Directive, error) {
	if cg == nil {
		return nil, nil
	}

	var out []Directive

	for _, c := range cg.List {
		if !strings.HasPrefix(c.Text, Prefix) {
			continue
		}

		d, err := parseDirective(strings.TrimPrefix(c.Text, Prefix))
		if err != nil {
			return out, &DirectiveError{Pos: c.Pos(), Err: err}
		}

		d.Pos = c.Pos()
		out = append(out, d)
	}

	return out, nil
}

// HasGenerate reports whether cg marks a type for generation.
func HasGenerate(cg *ast.CommentGroup) bool {
	if cg == nil {
		return false
	}

	for _, c := range cg.List {
		if fields := strings.Fields(strings.TrimPrefix(c.Text, Prefix)); strings.HasPrefix(c.Text, Prefix) &&
			len(fields) > 0 && Verb(fields[0]) == VerbGenerate {
			return true
		}
	}

	return false
}

// DirectiveError is a malformed directive at Pos.
type DirectiveError struct {
	Pos token.Pos
	Err error
}

func (e *DirectiveError) Error() string { return e.Err.Error() }

func (e *DirectiveError) Unwrap() error { return e.Err }

func parseDirective(text string) (Directive, error) {
	verb, rest, _ := strings.Cut(strings.TrimSpace(text), " ")
	d := Directive{Verb: Verb(verb)}
	rest = strings.TrimSpace(rest)

	// A directive line may end with a comment.
	if i := strings.Index(rest, "//"); i >= 0 && d.Verb != VerbName && d.Verb != VerbAlias {
		rest = strings.TrimSpace(rest[:i])
	}

	switch d.Verb {
	case VerbGenerate, VerbIgnore:
		if rest != "" {
			return d, fmt.Errorf("%s%s takes no arguments", Prefix, verb)
		}
	case VerbName, VerbAlias:
		args, err := stringLiterals(rest)
		if err != nil {
			return d, fmt.Errorf("%s%s: %w", Prefix, verb, err)
		}

		if d.Verb == VerbName && len(args) != 1 {
			return d, fmt.Errorf("%s%s needs exactly one string literal", Prefix, verb)
		}

		if len(args) == 0 {
			return d, fmt.Errorf("%s%s needs at least one string literal", Prefix, verb)
		}

		d.Args = args
	case VerbTo, VerbFrom:
		d.Args = strings.Fields(rest)
		if d.Verb == VerbTo && len(d.Args) != 1 {
			return d, fmt.Errorf("%s%s needs exactly one expression", Prefix, verb)
		}

		if len(d.Args) == 0 {
			return d, fmt.Errorf("%s%s needs at least one expression", Prefix, verb)
		}
	default:
		return d, fmt.Errorf("unknown directive %s%s", Prefix, verb)
	}

	return d, nil
}

// stringLiterals scans a space separated list of Go string literals.
// Comments are skipped by the scanner.
func stringLiterals(src string) ([]string, error) {
	var (
		s    scanner.Scanner
		errs scanner.ErrorList
		out  []string
	)

	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))
	s.Init(file, []byte(src), func(pos token.Position, msg string) { errs.Add(pos, msg) }, 0)

	for {
		_, tok, lit := s.Scan()
		if tok == token.EOF || tok == token.SEMICOLON && lit == "\n" {
			break
		}

		if tok != token.STRING {
			return nil, fmt.Errorf("expected string literal, got %s", tok)
		}

		v, err := strconv.Unquote(lit)
		if err != nil {
			return nil, fmt.Errorf("bad string literal %s: %w", lit, err)
		}

		out = append(out, v)
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
