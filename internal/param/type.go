package param

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"enumconv/internal/common"
)

// TypeRef is a canonical type identifier such as "int",
// "enumconv/examples/sample.NumberEnumType" or "example.com/opt.Value[int]".
type TypeRef struct {
	PkgPath string // empty for predeclared types
	Name    string
	Args    string // generic arguments without brackets, whitespace-free
}

// ErrInvalidType is returned by ParseTypeRef for malformed type identifiers.
var ErrInvalidType = errors.New("invalid type")

// ParseTypeRef parses the canonical string form of a type.
func ParseTypeRef(s string) (TypeRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TypeRef{}, fmt.Errorf("%w: empty type", ErrInvalidType)
	}

	base, args := s, ""
	if i := strings.IndexByte(s, '['); i >= 0 {
		if !strings.HasSuffix(s, "]") || i == len(s)-2 {
			return TypeRef{}, fmt.Errorf("%w: malformed type arguments in %q", ErrInvalidType, s)
		}

		base = s[:i]
		args = strings.Join(strings.Fields(s[i+1:len(s)-1]), "")
	}

	var ref TypeRef
	if dot := strings.LastIndexByte(base, '.'); dot >= 0 {
		ref.PkgPath = base[:dot]
		ref.Name = base[dot+1:]
	} else {
		ref.Name = base
	}

	ref.Args = args

	if !token.IsIdentifier(ref.Name) {
		return TypeRef{}, fmt.Errorf("%w: %q is not an identifier", ErrInvalidType, ref.Name)
	}

	if strings.ContainsAny(ref.PkgPath, " \t\"") || strings.HasSuffix(ref.PkgPath, "/") {
		return TypeRef{}, fmt.Errorf("%w: bad package path %q", ErrInvalidType, ref.PkgPath)
	}

	if base != strings.TrimSpace(base) || (ref.PkgPath == "" && strings.Contains(base, ".")) {
		return TypeRef{}, fmt.Errorf("%w: %q", ErrInvalidType, s)
	}

	return ref, nil
}

// MustParseTypeRef is like ParseTypeRef but panics on error.
func MustParseTypeRef(s string) TypeRef {
	ref, err := ParseTypeRef(s)
	if err != nil {
		panic(err)
	}

	return ref
}

// String returns the canonical form.
func (t TypeRef) String() string {
	s := t.Name
	if t.PkgPath != "" {
		s = t.PkgPath + "." + s
	}

	if t.Args != "" {
		s += "[" + t.Args + "]"
	}

	return s
}

// IsString reports whether t is the predeclared string type.
func (t TypeRef) IsString() bool {
	return t.PkgPath == "" && t.Name == "string" && t.Args == ""
}

// IsZero reports whether t is unset.
func (t TypeRef) IsZero() bool {
	return t == TypeRef{}
}

// SimpleName returns the type name without package path and generic arguments.
func (t TypeRef) SimpleName() string {
	return t.Name
}

// Expr renders t as a Go type expression seen from the package localPkg.
// Types from other packages, including generic arguments, are qualified by
// the base name of their path.
func (t TypeRef) Expr(localPkg string) string {
	s := t.Name
	if t.PkgPath != "" && t.PkgPath != localPkg {
		s = common.PkgAlias(t.PkgPath) + "." + s
	}

	if t.Args == "" {
		return s
	}

	args := splitArgs(t.Args)
	for i, a := range args {
		args[i] = strings.TrimSpace(a)

		// Composite arguments such as []int are kept as written.
		if ref, err := ParseTypeRef(a); err == nil {
			args[i] = ref.Expr(localPkg)
		}
	}

	return s + "[" + strings.Join(args, ", ") + "]"
}

// Packages returns the import paths t refers to, its own first, followed by
// those of its generic arguments. Predeclared types contribute nothing.
func (t TypeRef) Packages() []string {
	var out []string
	if t.PkgPath != "" {
		out = append(out, t.PkgPath)
	}

	if t.Args == "" {
		return out
	}

	for _, a := range splitArgs(t.Args) {
		if ref, err := ParseTypeRef(a); err == nil {
			out = append(out, ref.Packages()...)
		}
	}

	return out
}

// splitArgs splits a generic argument list at its top-level commas.
func splitArgs(args string) []string {
	var (
		out   []string
		depth int
		start int
	)

	for i, r := range args {
		switch r {
		case '[', '(', '{':
			depth++
		case ']', ')', '}':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, args[start:i])
				start = i + 1
			}
		}
	}

	return append(out, args[start:])
}

// MarshalText implements encoding.TextMarshaler.
func (t TypeRef) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TypeRef) UnmarshalText(b []byte) error {
	ref, err := ParseTypeRef(string(b))
	if err != nil {
		return err
	}

	*t = ref

	return nil
}
