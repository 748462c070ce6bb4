package gen

import "text/template"

// supportData holds the data of the per-package support file.
type supportData struct {
	PackageName string
	Comments    bool
}

var enumTemplate = template.Must(template.New("enum").Parse(`// Code generated by enumconv. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{$enum := .Enum}}{{$self := .FormatSelf}}{{$c := .Comments}}
{{if $c}}// {{.FromInt}} returns the {{$enum}} member with numeric value v.
{{end}}func {{.FromInt}}(v int) ({{$enum}}, error) {
	switch v {
{{range .IntCases}}	case {{.Key}}:
		return {{.Ident}}, nil
{{end}}	}

	return 0, &InvalidArgumentError{Func: "{{.FromInt}}", Value: strconv.Itoa(v)}
}

{{if $c}}// Int returns the numeric value of e.
{{end}}func (e {{$enum}}) Int() (int, error) {
	switch e {
{{range .IntCases}}	case {{.Ident}}:
		return {{.Key}}, nil
{{end}}	}

	return 0, &InvalidArgumentError{Func: "{{$enum}}.Int", Value: {{$self}}}
}

{{if $c}}// {{.Parse}} returns the {{$enum}} member with display name or alias s.
// Display names are matched before aliases; the first declared match wins.
{{end}}func {{.Parse}}(s string) ({{$enum}}, error) {
	switch s {
{{range .ParseCases}}	case {{.Key}}:
		return {{.Ident}}, nil
{{end}}	}

	return 0, &InvalidArgumentError{Func: "{{.Parse}}", Value: s}
}

{{if $c}}// Name returns the display name of e.
{{end}}func (e {{$enum}}) Name() (string, error) {
	switch e {
{{range .NameCases}}	case {{.Ident}}:
		return {{.Key}}, nil
{{end}}	}

	return "", &InvalidArgumentError{Func: "{{$enum}}.Name", Value: {{$self}}}
}
{{range .Outbound}}
{{if $c}}// {{.Name}} converts e to {{.Type}}.
{{end}}func (e {{$enum}}) {{.Name}}() ({{.Type}}, error) {
	switch e {
{{range .Cases}}	case {{.Ident}}:
		return {{.Key}}, nil
{{end}}	}

	var zero {{.Type}}

	return zero, &InvalidArgumentError{Func: "{{$enum}}.{{.Name}}", Value: {{$self}}}
}
{{end}}{{range .Inbound}}{{$primary := .Name}}
{{if $c}}// {{.Name}} returns the {{$enum}} member identified by the given values.
{{end}}func {{.Name}}({{range $i, $p := .Params}}{{if $i}}, {{end}}{{$p.Name}} {{$p.Type}}{{end}}) ({{$enum}}, error) {
{{range .Guards}}	if {{.Conds}} {
		return {{.Ident}}, nil
	}

{{end}}	return 0, &InvalidArgumentError{Func: "{{.Name}}", Value: {{.Format}}}
}
{{range .Overloads}}
{{if $c}}// {{.Name}} is {{$primary}} with its arguments reordered.
{{end}}func {{.Name}}({{range $i, $p := .Params}}{{if $i}}, {{end}}{{$p.Name}} {{$p.Type}}{{end}}) ({{$enum}}, error) {
	return {{$primary}}({{.Args}})
}
{{end}}{{end}}`))

var supportTemplate = template.Must(template.New("support").Parse(`// Code generated by enumconv. DO NOT EDIT.

package {{.PackageName}}

import (
	"errors"
	"strconv"
)

{{if .Comments}}// ErrInvalidArgument is matched by every error returned from generated enum
// conversions when a value corresponds to no declared member.
{{end}}var ErrInvalidArgument = errors.New("invalid argument")

{{if .Comments}}// InvalidArgumentError reports the function that failed and the textual
// form of the unmatched input.
{{end}}type InvalidArgumentError struct {
	Func  string
	Value string
}

func (e *InvalidArgumentError) Error() string {
	return e.Func + ": invalid argument " + strconv.Quote(e.Value)
}

{{if .Comments}}// Is reports whether target is ErrInvalidArgument.
{{end}}func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
`))
