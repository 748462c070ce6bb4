package gen

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enumconv/internal/mapping"
	"enumconv/internal/plan"
)

const (
	pkg      = "enumconv/examples/sample"
	number   = pkg + ".NumberEnumType"
	alphabet = pkg + ".AlphabetEnumType"
	group    = pkg + ".GroupEnumType"
)

func ptr(v int64) *int64 { return &v }

func to(typ, value string) mapping.Attr {
	return mapping.Attr{Kind: mapping.AttrTo, Params: []mapping.ParamDef{{Type: typ, Value: value}}}
}

func from(pairs ...string) mapping.Attr {
	a := mapping.Attr{Kind: mapping.AttrFrom}
	for i := 0; i+1 < len(pairs); i += 2 {
		a.Params = append(a.Params, mapping.ParamDef{Type: pairs[i], Value: pairs[i+1]})
	}

	return a
}

func sampleFile() *mapping.File {
	return &mapping.File{
		Package:     "sample",
		PackagePath: pkg,
		Enums: []mapping.Enum{{
			Name:       "SampleEnum",
			Underlying: "int",
			Members: []mapping.Member{
				{
					Name:  "One_A",
					Value: ptr(100),
					Attrs: []mapping.Attr{
						to(number, "One"),
						to(alphabet, "A"),
						from(number, "One", alphabet, "A"),
						from(group, "GroupA", alphabet, "A"),
					},
				},
				{
					Name: "Two_B",
					Attrs: []mapping.Attr{
						{Kind: mapping.AttrName, Name: "Two&B"},
						{Kind: mapping.AttrAlias, Aliases: []string{"2", "二", "Ⅱ", "弐"}},
						to(number, "Two"),
						from(alphabet, "B", number, "Two"),
					},
				},
				{Name: "Ignore", Attrs: []mapping.Attr{{Kind: mapping.AttrIgnore, Ignore: true}}},
			},
		}},
	}
}

func generate(t *testing.T, f *mapping.File) []GeneratedFile {
	t.Helper()

	p := plan.Build(f, plan.Options{})
	files, err := NewGenerator(DefaultGeneratorConfig()).Generate(p)
	require.NoError(t, err)

	return files
}

func assertParses(t *testing.T, file GeneratedFile) {
	t.Helper()

	_, err := parser.ParseFile(token.NewFileSet(), file.Filename, file.Content, parser.AllErrors)
	require.NoError(t, err, string(file.Content))
}

func TestGenerate_Sample(t *testing.T) {
	files := generate(t, sampleFile())
	require.Len(t, files, 2)

	assert.Equal(t, "sample_enum_enumconv.go", files[0].Filename)
	assert.Equal(t, DefaultSupportFile, files[1].Filename)
	assertParses(t, files[0])
	assertParses(t, files[1])

	content := string(files[0].Content)

	assert.True(t, strings.HasPrefix(content, "// Code generated by enumconv. DO NOT EDIT.\n"))
	assert.Contains(t, content, "package sample")
	assert.Contains(t, content, `"strconv"`)
	assert.NotContains(t, content, `"enumconv/examples/sample"`, "own package is not imported")

	assert.Contains(t, content, "func SampleEnumFromInt(v int) (SampleEnum, error) {")
	assert.Contains(t, content, "case 100:\n\t\treturn One_A, nil")
	assert.Contains(t, content, "case 101:\n\t\treturn Two_B, nil")
	assert.Contains(t, content, "func (e SampleEnum) Int() (int, error) {")
	assert.Contains(t, content, "func ParseSampleEnum(s string) (SampleEnum, error) {")
	assert.Contains(t, content, "case \"Two&B\":\n\t\treturn Two_B, nil")
	assert.Contains(t, content, "case \"二\":\n\t\treturn Two_B, nil")
	assert.Contains(t, content, "func (e SampleEnum) Name() (string, error) {")
	assert.NotContains(t, content, "Ignore")

	assert.Contains(t, content, "func (e SampleEnum) ToNumberEnumType() (NumberEnumType, error) {")
	assert.Contains(t, content, "case One_A:\n\t\treturn One, nil")
	assert.Contains(t, content, "case Two_B:\n\t\treturn Two, nil")
	assert.Contains(t, content, "func (e SampleEnum) ToAlphabetEnumType() (AlphabetEnumType, error) {")

	assert.Contains(t, content,
		"func SampleEnumFromNumberEnumTypeAlphabetEnumType(numberEnumType NumberEnumType, alphabetEnumType AlphabetEnumType) (SampleEnum, error) {")
	assert.Contains(t, content, "if numberEnumType == One && alphabetEnumType == A {")
	assert.Contains(t, content, "if numberEnumType == Two && alphabetEnumType == B {",
		"literals are matched by type, not by declaration order")
	assert.Contains(t, content,
		"func SampleEnumFromAlphabetEnumTypeNumberEnumType(alphabetEnumType AlphabetEnumType, numberEnumType NumberEnumType) (SampleEnum, error) {\n"+
			"\treturn SampleEnumFromNumberEnumTypeAlphabetEnumType(numberEnumType, alphabetEnumType)\n}")
	assert.Contains(t, content, "func SampleEnumFromGroupEnumTypeAlphabetEnumType(")
	assert.Contains(t, content, "func SampleEnumFromAlphabetEnumTypeGroupEnumType(")
	assert.Contains(t, content, `"fmt"`)
}

func TestGenerate_ParseOrder(t *testing.T) {
	content := string(generate(t, sampleFile())[0].Content)

	display := strings.Index(content, `case "Two&B":`)
	first := strings.Index(content, `case "2":`)
	last := strings.Index(content, `case "弐":`)

	require.Positive(t, display)
	assert.Less(t, display, first, "display names come before aliases")
	assert.Less(t, first, last, "aliases keep declaration order")
}

func TestGenerate_AliasShadowingFirstWins(t *testing.T) {
	f := &mapping.File{Package: "p", PackagePath: "x/p", Enums: []mapping.Enum{{
		Name:       "E",
		Underlying: "int",
		Members: []mapping.Member{
			{Name: "A", Attrs: []mapping.Attr{{Kind: mapping.AttrAlias, Aliases: []string{"x"}}}},
			{Name: "B", Attrs: []mapping.Attr{{Kind: mapping.AttrAlias, Aliases: []string{"x", "A"}}}},
		},
	}}}

	files := generate(t, f)
	assertParses(t, files[0])

	content := string(files[0].Content)
	assert.Equal(t, 1, strings.Count(content, `case "x":`))
	assert.Contains(t, content, "case \"x\":\n\t\treturn A, nil")
	assert.Equal(t, 1, strings.Count(content, `case "A":`), "display name beats a later alias")
}

func TestGenerate_DuplicateValuesFirstWins(t *testing.T) {
	f := &mapping.File{Package: "p", PackagePath: "x/p", Enums: []mapping.Enum{{
		Name:       "E",
		Underlying: "int",
		Members: []mapping.Member{
			{Name: "A", Value: ptr(1)},
			{Name: "Alias", Value: ptr(1)},
			{Name: "B"},
		},
	}}}

	files := generate(t, f)
	assertParses(t, files[0])

	content := string(files[0].Content)
	assert.Equal(t, 1, strings.Count(content, "case 1:"))
	assert.Contains(t, content, "case 1:\n\t\treturn A, nil")
	assert.Contains(t, content, "case 2:\n\t\treturn B, nil")
	assert.Contains(t, content, `case "Alias":`, "every display name still parses")
}

func TestGenerate_ForeignTypes(t *testing.T) {
	f := &mapping.File{Package: "days", PackagePath: "example.com/days", Enums: []mapping.Enum{{
		Name:       "Day",
		Underlying: "uint8",
		Members: []mapping.Member{
			{Name: "Mon", Attrs: []mapping.Attr{to("time.Weekday", "time.Monday"), from("time.Weekday", "time.Monday")}},
			{Name: "Tue", Attrs: []mapping.Attr{to("time.Weekday", "time.Tuesday"), from("time.Weekday", "time.Tuesday")}},
		},
	}}}

	files := generate(t, f)
	assertParses(t, files[0])

	content := string(files[0].Content)
	assert.Contains(t, content, `"time"`)
	assert.Contains(t, content, "func (e Day) ToWeekday() (time.Weekday, error) {")
	assert.Contains(t, content, "func DayFromWeekday(weekday time.Weekday) (Day, error) {")
	assert.Contains(t, content, "strconv.FormatUint(uint64(e), 10)")
	assert.NotContains(t, content, "DayFromWeekday2", "single-parameter inbound has no overloads")
}

func TestGenerate_ThreeParameterInbound(t *testing.T) {
	f := &mapping.File{Package: "sample", PackagePath: pkg, Enums: []mapping.Enum{{
		Name:       "SampleEnum",
		Underlying: "int",
		Members: []mapping.Member{
			{Name: "One_A", Attrs: []mapping.Attr{from(number, "One", alphabet, "A", group, "GroupA")}},
			{Name: "Two_B", Attrs: []mapping.Attr{from(group, "GroupB", number, "Two", alphabet, "B")}},
		},
	}}}

	files := generate(t, f)
	assertParses(t, files[0])

	content := string(files[0].Content)
	assert.Contains(t, content,
		"func SampleEnumFromNumberEnumTypeAlphabetEnumTypeGroupEnumType(numberEnumType NumberEnumType, alphabetEnumType AlphabetEnumType, groupEnumType GroupEnumType) (SampleEnum, error) {")
	assert.Contains(t, content, "if numberEnumType == Two && alphabetEnumType == B && groupEnumType == GroupB {")
	assert.Contains(t, content, `fmt.Sprintf("%v, %v, %v", numberEnumType, alphabetEnumType, groupEnumType)`)

	forward := "\treturn SampleEnumFromNumberEnumTypeAlphabetEnumTypeGroupEnumType(numberEnumType, alphabetEnumType, groupEnumType)\n}"
	assert.Contains(t, content,
		"func SampleEnumFromAlphabetEnumTypeNumberEnumTypeGroupEnumType(alphabetEnumType AlphabetEnumType, numberEnumType NumberEnumType, groupEnumType GroupEnumType) (SampleEnum, error) {\n"+forward)
	assert.Contains(t, content,
		"func SampleEnumFromGroupEnumTypeNumberEnumTypeAlphabetEnumType(groupEnumType GroupEnumType, numberEnumType NumberEnumType, alphabetEnumType AlphabetEnumType) (SampleEnum, error) {\n"+forward)
	assert.Equal(t, 3, strings.Count(content, "func SampleEnumFrom")-1, "one primary and two overloads besides FromInt")
}

func TestGenerate_GenericArgumentsAreQualified(t *testing.T) {
	f := &mapping.File{Package: "p", PackagePath: "example.com/p", Enums: []mapping.Enum{{
		Name:       "E",
		Underlying: "int",
		Members: []mapping.Member{{
			Name:  "A",
			Attrs: []mapping.Attr{to("example.com/opt.Value[example.com/unit.Unit]", "opt.Value[unit.Unit]{}")},
		}},
	}}}

	files := generate(t, f)
	assertParses(t, files[0])

	content := string(files[0].Content)
	assert.Contains(t, content, `"example.com/opt"`)
	assert.Contains(t, content, `"example.com/unit"`)
	assert.Contains(t, content, "func (e E) ToValue() (opt.Value[unit.Unit], error) {")
	assert.NotContains(t, content, "example.com/unit.Unit")
}

func TestGenerate_ParamNamesAvoidImports(t *testing.T) {
	f := &mapping.File{Package: "p", PackagePath: "x/p", Enums: []mapping.Enum{{
		Name:       "E",
		Underlying: "int",
		Members: []mapping.Member{{
			Name:  "A",
			Attrs: []mapping.Attr{from("example.com/kind.Kind", "kind.Big", "example.com/size.Size", "size.Small")},
		}},
	}}}

	files := generate(t, f)
	assertParses(t, files[0])

	content := string(files[0].Content)
	assert.Contains(t, content, "func EFromKindSize(kind2 kind.Kind, size2 size.Size) (E, error) {")
	assert.Contains(t, content, "if kind2 == kind.Big && size2 == size.Small {")
}

func TestGenerate_NoComments(t *testing.T) {
	p := plan.Build(sampleFile(), plan.Options{})
	cfg := DefaultGeneratorConfig()
	cfg.GenerateComments = false

	files, err := NewGenerator(cfg).Generate(p)
	require.NoError(t, err)
	assert.NotContains(t, string(files[0].Content), "// SampleEnumFromInt returns")

	cfg.GenerateComments = true
	files, err = NewGenerator(cfg).Generate(p)
	require.NoError(t, err)
	assert.Contains(t, string(files[0].Content), "// SampleEnumFromInt returns")
}

func TestGenerate_SkipsBlockedEnums(t *testing.T) {
	f := sampleFile()
	f.Enums[0].Underlying = "string"

	files := generate(t, f)
	assert.Empty(t, files, "no support file without generated enums")
}

func TestGenerate_Deterministic(t *testing.T) {
	first := generate(t, sampleFile())

	for range 5 {
		again := generate(t, sampleFile())
		assert.Equal(t, first, again)
	}
}

func TestGenerateSupport(t *testing.T) {
	file, err := NewGenerator(DefaultGeneratorConfig()).GenerateSupport("sample")
	require.NoError(t, err)
	assertParses(t, *file)

	content := string(file.Content)
	assert.Contains(t, content, `var ErrInvalidArgument = errors.New("invalid argument")`)
	assert.Contains(t, content, "type InvalidArgumentError struct {")
	assert.Contains(t, content, "func (e *InvalidArgumentError) Is(target error) bool {")
}

func TestGenerate_FormatFailureWritesSidecar(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := DefaultGeneratorConfig()
	cfg.Fs = fs
	cfg.DebugDir = "/out"

	f := &mapping.File{Package: "p", PackagePath: "x/p", Enums: []mapping.Enum{{
		Name:       "E",
		Underlying: "int",
		Members:    []mapping.Member{{Name: "A", Attrs: []mapping.Attr{to("example.com/k.K", "k.(")}}},
	}}}

	_, err := NewGenerator(cfg).Generate(plan.Build(f, plan.Options{}))
	require.Error(t, err)

	exists, statErr := afero.Exists(fs, "/out/e_enumconv.unformatted.go")
	require.NoError(t, statErr)
	assert.True(t, exists)
}

func TestWriteFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	files := generate(t, sampleFile())

	require.NoError(t, WriteFiles(fs, files, "/gen"))

	data, err := afero.ReadFile(fs, "/gen/sample_enum_enumconv.go")
	require.NoError(t, err)
	assert.Equal(t, files[0].Content, data)
}
