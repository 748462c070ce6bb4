package plan

import (
	"enumconv/internal/diagnostic"
	"enumconv/internal/mapping"
	"enumconv/internal/param"
)

// DefaultSuffix is appended to the snake-cased enum name to form the
// generated file name.
const DefaultSuffix = "_enumconv.go"

// Options tunes plan construction.
type Options struct {
	// Suffix of generated file names. Defaults to DefaultSuffix.
	Suffix string
}

// Plan is the result of planning one descriptor file.
type Plan struct {
	// Package is the Go package name of the generated files.
	Package string
	// PackagePath is the import path of that package.
	PackagePath string
	// Dir is where generated files go.
	Dir string
	// Enums holds one plan per enum in file order.
	Enums []*EnumPlan
	// Diagnostics holds file-level problems not tied to one enum.
	Diagnostics diagnostic.Diagnostics
}

// EnumPlan is the resolved descriptor of one enum.
type EnumPlan struct {
	Name       string
	PkgPath    string
	PkgName    string
	Underlying string
	// Filename is the base name of the generated file.
	Filename string
	// Members holds one descriptor per non-ignored member in declaration order.
	Members []MemberDescriptor
	// UniqueOutbound holds one signature per generated To<T> function.
	UniqueOutbound []param.Signature
	// UniqueInbound holds one signature per generated inbound function family.
	UniqueInbound []param.Signature
	// Diagnostics accumulated while planning this enum.
	Diagnostics diagnostic.Diagnostics
	Pos         mapping.Position
}

// MemberDescriptor is the resolved metadata of one enum member.
type MemberDescriptor struct {
	// DisplayName is what Name returns and Parse accepts first.
	DisplayName string
	// QualifiedRef is "<pkg path>.<Enum>.<Member>".
	QualifiedRef string
	// Ident is the Go identifier of the member constant.
	Ident string
	// Value is unset until resolved from the constant table.
	Value *int64
	// Aliases are extra spellings accepted by Parse, in declaration order.
	Aliases []string
	// Outbound holds at most one signature per target type.
	Outbound []param.Signature
	// Inbound holds at most one signature per type multiset.
	Inbound []param.Signature
	Pos     mapping.Position
}

// Blocked reports whether structural errors prevent generating the enum.
func (p *EnumPlan) Blocked() bool {
	return p.Diagnostics.HasStructuralErrors()
}

// Generatable returns the enum plans that can be emitted.
// File-level structural errors block every enum; errors tagged with an enum
// name block only that enum.
func (p *Plan) Generatable() []*EnumPlan {
	for _, d := range p.Diagnostics.Errors {
		if d.Kind == diagnostic.Structural && d.Enum == "" {
			return nil
		}
	}

	var out []*EnumPlan

	for _, e := range p.Enums {
		if !e.Blocked() {
			out = append(out, e)
		}
	}

	return out
}

// AllDiagnostics merges file-level and per-enum diagnostics.
func (p *Plan) AllDiagnostics() diagnostic.Diagnostics {
	var all diagnostic.Diagnostics

	all.Merge(p.Diagnostics)

	for _, e := range p.Enums {
		all.Merge(e.Diagnostics)
	}

	return all
}
