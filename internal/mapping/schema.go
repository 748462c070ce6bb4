package mapping

import (
	"errors"
	"path/filepath"

	"enumconv/internal/diagnostic"
)

// Position is re-exported for callers that only deal with descriptor files.
type Position = diagnostic.Position

// File represents the root of a YAML enum descriptor file.
// It is the serializable form of the enum model consumed by the generator.
type File struct {
	// Version of the descriptor schema (for future compatibility).
	Version string `yaml:"version,omitempty" json:"version,omitempty"`

	// Package is the Go package name of the generated files.
	Package string `yaml:"package" json:"package" validate:"required,goident"`

	// PackagePath is the import path of that package. Types declared with
	// this path are referenced unqualified. Resolved from go.mod when empty.
	PackagePath string `yaml:"package_path,omitempty" json:"package_path,omitempty"`

	// Enums lists the enum types to generate conversions for.
	Enums []Enum `yaml:"enums" json:"enums" validate:"required,min=1,dive"`

	// Path is the file the model was loaded from. Empty for Go sources.
	Path string `yaml:"-" json:"-"`

	// Dir is the directory generated files are written to.
	Dir string `yaml:"-" json:"-"`
}

// Enum describes one enum type and its members in declaration order.
type Enum struct {
	// Name is the Go identifier of the enum type.
	Name string `yaml:"name" json:"name" validate:"required,goident"`

	// Underlying is the integer type the enum is declared with. Defaults to "int".
	Underlying string `yaml:"underlying,omitempty" json:"underlying,omitempty"`

	// Output overrides the generated file name.
	Output string `yaml:"output,omitempty" json:"output,omitempty"`

	// Members lists the enum constants in declaration order.
	Members []Member `yaml:"members" json:"members" validate:"required,min=1,dive"`

	Pos Position `yaml:"-" json:"-"`
}

// Member describes one enum constant and its metadata.
type Member struct {
	// Name is the Go identifier of the constant.
	Name string `yaml:"name" json:"name" validate:"required,goident"`

	// Value is the constant value. When omitted it is the previous member's
	// value plus one, or zero for the first member.
	Value *int64 `yaml:"value,omitempty" json:"value,omitempty"`

	// Attrs is the ordered metadata attached to the member.
	Attrs []Attr `yaml:"attrs,omitempty" json:"attrs,omitempty" validate:"dive"`

	Pos Position `yaml:"-" json:"-"`
}

// Attr is one metadata item attached to a member. Exactly one of the
// payload fields is meaningful, selected by Kind.
type Attr struct {
	Kind AttrKind

	// Name is the display name override (AttrName).
	Name string

	// Aliases are extra accepted spellings (AttrAlias).
	Aliases []string

	// Params holds the single target of AttrTo or the tuple of AttrFrom.
	Params []ParamDef `validate:"dive"`

	// Ignore excludes the member from generation (AttrIgnore).
	Ignore bool

	Pos Position
}

// ParamDef is a typed literal inside a "to" or "from" attribute.
type ParamDef struct {
	// Type is the canonical type identifier (e.g. "time.Weekday" or
	// "example.com/pkg.Kind").
	Type string `yaml:"type" json:"type" validate:"required"`

	// Value is a Go expression of that type (e.g. "time.Monday").
	Value string `yaml:"value" json:"value" validate:"required"`

	// Name optionally overrides the generated parameter name.
	Name string `yaml:"name,omitempty" json:"name,omitempty" validate:"omitempty,goident"`
}

// ErrAttrShape is returned when an attribute node is not a single-key mapping.
var ErrAttrShape = errors.New("attr must be a mapping with exactly one of name, alias, to, from, ignore")

// QualifiedRef returns the fully-qualified reference of an enum member,
// used as the key of the constant table.
func QualifiedRef(pkgPath, enum, member string) string {
	if pkgPath == "" {
		return enum + "." + member
	}

	return pkgPath + "." + enum + "." + member
}

// Constants returns the constant table of the enum: every member (ignored
// ones included) keyed by its qualified reference.
func (e *Enum) Constants(pkgPath string) map[string]int64 {
	table := make(map[string]int64, len(e.Members))

	var next int64

	for i := range e.Members {
		m := &e.Members[i]
		if m.Value != nil {
			next = *m.Value
		}

		table[QualifiedRef(pkgPath, e.Name, m.Name)] = next
		next++
	}

	return table
}

// IsIgnored reports whether the member carries an ignore marker.
func (m *Member) IsIgnored() bool {
	for _, a := range m.Attrs {
		if a.Kind == AttrIgnore && a.Ignore {
			return true
		}
	}

	return false
}

// OutputDir returns the directory generated files are written to.
func (f *File) OutputDir() string {
	if f.Dir != "" {
		return f.Dir
	}

	if f.Path != "" {
		return filepath.Dir(f.Path)
	}

	return "."
}
