package mapping

import (
	"errors"
	"fmt"
	"go/token"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"

	"enumconv/internal/diagnostic"
	"enumconv/internal/param"
)

var integerTypes = map[string]bool{
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"byte": true, "rune": true, "uintptr": true,
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("goident", func(fl validator.FieldLevel) bool {
		return token.IsIdentifier(fl.Field().String())
	})

	return v
}

// Validate checks a descriptor file for structural problems: missing or
// malformed identifiers, duplicate enums or members, non-integer underlying
// types and unparsable parameter types. Enums with structural errors cannot
// be generated.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "descriptor file is nil", Position{}, "", "")
		return res
	}

	filePos := Position{File: f.Path}

	err := newValidator().Struct(f)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			pos, enum, member := fieldLocation(f, fe.Namespace())
			if !pos.IsValid() && pos.File == "" {
				pos = filePos
			}

			res.AddError("invalid_field",
				fmt.Sprintf("%s failed %q validation", fe.Namespace(), fe.Tag()), pos, enum, member)
		}
	} else if err != nil {
		res.AddError("invalid_field", err.Error(), filePos, "", "")
	}

	seenEnums := map[string]struct{}{}

	for i := range f.Enums {
		e := &f.Enums[i]

		if _, ok := seenEnums[e.Name]; ok && e.Name != "" {
			res.AddError("duplicate_enum", fmt.Sprintf("duplicate enum %q", e.Name), e.Pos, e.Name, "")
		}

		seenEnums[e.Name] = struct{}{}

		validateEnum(res, e)
	}

	return res
}

var fieldIndex = regexp.MustCompile(`\.Enums\[(\d+)\](?:\.Members\[(\d+)\])?`)

// fieldLocation maps a validator namespace such as "File.Enums[1].Members[0].Name"
// back to the enum and member it belongs to, so that only that enum is blocked.
func fieldLocation(f *File, namespace string) (Position, string, string) {
	m := fieldIndex.FindStringSubmatch(namespace)
	if m == nil {
		return Position{}, "", ""
	}

	i, _ := strconv.Atoi(m[1])
	if i >= len(f.Enums) {
		return Position{}, "", ""
	}

	e := &f.Enums[i]
	if m[2] == "" {
		return e.Pos, e.Name, ""
	}

	j, _ := strconv.Atoi(m[2])
	if j >= len(e.Members) {
		return e.Pos, e.Name, ""
	}

	return e.Members[j].Pos, e.Name, e.Members[j].Name
}

func validateEnum(res *diagnostic.Diagnostics, e *Enum) {
	if !integerTypes[e.Underlying] {
		res.AddError("invalid_underlying",
			fmt.Sprintf("underlying type %q is not an integer type", e.Underlying), e.Pos, e.Name, "")
	}

	seenMembers := map[string]struct{}{}

	for i := range e.Members {
		m := &e.Members[i]

		if _, ok := seenMembers[m.Name]; ok && m.Name != "" {
			res.AddError("duplicate_member", fmt.Sprintf("duplicate member %q", m.Name), m.Pos, e.Name, m.Name)
		}

		seenMembers[m.Name] = struct{}{}

		for j := range m.Attrs {
			validateAttr(res, e, m, &m.Attrs[j])
		}
	}
}

func validateAttr(res *diagnostic.Diagnostics, e *Enum, m *Member, a *Attr) {
	switch a.Kind {
	case AttrInvalid:
		res.AddError("invalid_attr", ErrAttrShape.Error(), a.Pos, e.Name, m.Name)
		return
	case AttrFrom:
		if len(a.Params) == 0 {
			res.AddError("empty_from", "from attr lists no parameters", a.Pos, e.Name, m.Name)
		}
	case AttrTo:
		if len(a.Params) != 1 {
			res.AddError("invalid_to", "to attr needs exactly one parameter", a.Pos, e.Name, m.Name)
		}
	}

	for _, p := range a.Params {
		if _, err := param.ParseTypeRef(p.Type); err != nil {
			res.AddError("invalid_type", err.Error(), a.Pos, e.Name, m.Name)
		}
	}
}
