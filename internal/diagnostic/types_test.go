package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Report(t *testing.T) {
	var d Diagnostics

	pos := Position{File: "sample.go", Line: 12, Column: 2}
	d.Report(DuplicateTypeNotAllowed, pos, "SampleEnum", "One_A")

	require.Len(t, d.Errors, 1)
	got := d.Errors[0]
	assert.Equal(t, DiagnosticError, got.Severity)
	assert.Equal(t, DuplicateTypeNotAllowed, got.Kind)
	assert.Equal(t, "EC001", got.Code)
	assert.Equal(t, "sample.go:12:2: [SampleEnum] One_A: [EC001] Duplicate type is not allowed.", got.String())
	assert.Equal(t, 1, d.Count(DuplicateTypeNotAllowed))
	assert.Zero(t, d.Count(StringTypeNotAllowed))
	assert.False(t, d.HasStructuralErrors())
}

func TestDiagnostics_StructuralAndMerge(t *testing.T) {
	var a, b Diagnostics

	a.AddWarning("alias_shadowed", "alias \"2\" already used", Position{}, "SampleEnum", "Three_C")
	b.AddErrorWithSuggestions("unresolved_expr", "undefined: Onee", Position{Line: 3}, "SampleEnum", "One_A", []string{"One"})

	a.Merge(b)

	assert.True(t, a.HasErrors())
	assert.True(t, a.HasStructuralErrors())
	assert.Len(t, a.All(), 2)
	assert.EqualError(t, a.Error(), "3: [SampleEnum] One_A: [unresolved_expr] undefined: Onee (did you mean One?)")
}

func TestDiagnostics_Valid(t *testing.T) {
	var d Diagnostics

	d.AddInfo("note", "nothing to see", Position{}, "", "")
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())
	assert.Equal(t, "[note] nothing to see", d.Infos[0].String())
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{Code: "invalid_field", Message: "bad", Pos: Position{File: "a.yaml", Line: 4, Column: 1}}
	assert.Equal(t, "a.yaml:4:1: [invalid_field] bad", d.String())

	d.Enum = "Color"
	assert.Equal(t, "a.yaml:4:1: [Color]: [invalid_field] bad", d.String())

	d.Pos = Position{}
	d.Member = "Red"
	assert.Equal(t, "[Color] Red: [invalid_field] bad", d.String())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "StringOnlyNotAllowed", StringOnlyNotAllowed.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
	assert.Equal(t, "EC003", StringOnlyNotAllowed.Code())
	assert.Empty(t, Structural.Code())
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "-", Position{}.String())
	assert.Equal(t, "a.yaml:4", Position{File: "a.yaml", Line: 4}.String())
	assert.Equal(t, "a.yaml", Position{File: "a.yaml"}.String())
}
