package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enumconv/internal/diagnostic"
)

func codes(d *diagnostic.Diagnostics) []string {
	var out []string
	for _, e := range d.Errors {
		out = append(out, e.Code)
	}

	return out
}

func TestValidate_Valid(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	res := Validate(f)
	assert.True(t, res.IsValid(), res.Error())
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil)
	assert.Equal(t, []string{"file_is_nil"}, codes(res))
}

func TestValidate_Structural(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code string
	}{
		{
			name: "missing package",
			yaml: `
enums:
  - name: E
    members: [A]
`,
			code: "invalid_field",
		},
		{
			name: "bad member identifier",
			yaml: `
package: p
enums:
  - name: E
    members: ["1A"]
`,
			code: "invalid_field",
		},
		{
			name: "no members",
			yaml: `
package: p
enums:
  - name: E
    members: []
`,
			code: "invalid_field",
		},
		{
			name: "duplicate enum",
			yaml: `
package: p
enums:
  - name: E
    members: [A]
  - name: E
    members: [B]
`,
			code: "duplicate_enum",
		},
		{
			name: "duplicate member",
			yaml: `
package: p
enums:
  - name: E
    members: [A, A]
`,
			code: "duplicate_member",
		},
		{
			name: "non integer underlying",
			yaml: `
package: p
enums:
  - name: E
    underlying: float64
    members: [A]
`,
			code: "invalid_underlying",
		},
		{
			name: "bad type",
			yaml: `
package: p
enums:
  - name: E
    members:
      - name: A
        attrs:
          - to: {type: "example.com/x.", value: X}
`,
			code: "invalid_type",
		},
		{
			name: "empty from",
			yaml: `
package: p
enums:
  - name: E
    members:
      - name: A
        attrs:
          - from: []
`,
			code: "empty_from",
		},
		{
			name: "missing value",
			yaml: `
package: p
enums:
  - name: E
    members:
      - name: A
        attrs:
          - to: {type: time.Weekday}
`,
			code: "invalid_field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			res := Validate(f)
			require.False(t, res.IsValid())
			assert.Contains(t, codes(res), tt.code)
			assert.True(t, res.HasStructuralErrors())
		})
	}
}

func TestValidate_PositionsOnErrors(t *testing.T) {
	f, err := Parse([]byte(`
package: p
enums:
  - name: E
    members:
      - name: A
      - name: A
`))
	require.NoError(t, err)

	res := Validate(f)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 7, res.Errors[0].Pos.Line)
	assert.Equal(t, "E", res.Errors[0].Enum)
	assert.Equal(t, "A", res.Errors[0].Member)
}

func TestValidate_FieldErrorsTaggedWithEnum(t *testing.T) {
	f, err := Parse([]byte(`
package: p
enums:
  - name: Good
    members: [A]
  - name: Empty
    members: []
  - name: Bad
    members:
      - name: X
      - name: "1Y"
`))
	require.NoError(t, err)

	res := Validate(f)
	require.Len(t, res.Errors, 2)

	assert.Equal(t, "invalid_field", res.Errors[0].Code)
	assert.Equal(t, "Empty", res.Errors[0].Enum)
	assert.Equal(t, 6, res.Errors[0].Pos.Line)

	assert.Equal(t, "Bad", res.Errors[1].Enum)
	assert.Equal(t, "1Y", res.Errors[1].Member)
	assert.Equal(t, 11, res.Errors[1].Pos.Line)
}

func TestValidate_FileFieldErrorsHaveNoEnum(t *testing.T) {
	f, err := Parse([]byte(`
enums:
  - name: E
    members: [A]
`))
	require.NoError(t, err)

	res := Validate(f)
	require.Len(t, res.Errors, 1)
	assert.Empty(t, res.Errors[0].Enum)
}

func TestSchema(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"package_path"`)
	assert.Contains(t, s, `"oneOf"`)
	assert.Contains(t, s, `"ignore"`)
	assert.Contains(t, s, SchemaVersion)
}
