package match

import (
	"fmt"
	"go/token"
	"iter"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und, cases.NoLower)

// ExportName upper-cases the first letter of each word of s, keeping the
// rest as written: "weekday" -> "Weekday", "NumberEnumType" unchanged.
func ExportName(s string) string {
	return strings.ReplaceAll(titleCaser.String(s), " ", "")
}

// LowerFirst lower-cases the leading word of an identifier, including a
// leading acronym: "NumberEnumType" -> "numberEnumType", "HTTPStatus" -> "httpStatus".
func LowerFirst(s string) string {
	if s == "" {
		return s
	}

	tokens := tokenizeCamelCase(s)
	if len(tokens) > 0 && strings.HasPrefix(s, tokens[0]) {
		first := tokens[0]
		if len(first) > 1 && strings.ToUpper(first) == first {
			return strings.ToLower(first) + s[len(first):]
		}
	}

	r := []rune(s)
	r[0] = unicode.ToLower(r[0])

	return string(r)
}

// Namespace hands out unique identifiers within one scope.
type Namespace map[string]struct{}

// NewNamespace creates a namespace with the given names already taken.
func NewNamespace(reserved ...string) Namespace {
	ns := make(Namespace, len(reserved))
	for _, name := range reserved {
		ns.Reserve(name)
	}

	return ns
}

// Reserve marks a name as used. It returns false if the name was taken.
func (ns Namespace) Reserve(name string) bool {
	if _, ok := ns[name]; ok {
		return false
	}

	ns[name] = struct{}{}

	return true
}

// Name returns a unique, keyword-safe variant of name and reserves it.
// Conflicts get a numeric suffix.
func (ns Namespace) Name(name string) string {
	if token.IsKeyword(name) {
		name += "_"
	}

	for candidate := range DisambiguateName(name) {
		if ns.Reserve(candidate) {
			return candidate
		}
	}

	panic("unreachable")
}

// DisambiguateName yields name followed by numbered alternatives.
// A separating "_" is inserted when name already ends with a digit.
func DisambiguateName(name string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield(name) {
			return
		}

		sep := ""
		if last := name[len(name)-1]; last >= '0' && last <= '9' {
			sep = "_"
		}

		for i := 2; ; i++ {
			if !yield(fmt.Sprintf("%s%s%d", name, sep, i)) {
				return
			}
		}
	}
}
