package plan

import (
	"fmt"
	"slices"

	"enumconv/internal/common"
	"enumconv/internal/diagnostic"
	"enumconv/internal/mapping"
	"enumconv/internal/param"
)

// Build validates f and plans every enum it declares.
func Build(f *mapping.File, opts Options) *Plan {
	return BuildWith(f, opts, nil)
}

// BuildWith is Build with diagnostics a front-end already reported for f.
// They are routed to their enums like validation errors.
func BuildWith(f *mapping.File, opts Options, front *diagnostic.Diagnostics) *Plan {
	p := &Plan{}

	res := mapping.Validate(f)
	if front != nil {
		res.Errors = mergeErrors(front.Errors, res.Errors)
		p.Diagnostics.Warnings = append(p.Diagnostics.Warnings, front.Warnings...)
		p.Diagnostics.Infos = append(p.Diagnostics.Infos, front.Infos...)
	}

	if f == nil {
		p.Diagnostics.Merge(*res)
		return p
	}

	p.Package = f.Package
	p.PackagePath = f.PackagePath
	p.Dir = f.OutputDir()

	// Structural errors are routed to the enum they belong to.
	byEnum := map[string]*diagnostic.Diagnostics{}

	for _, d := range res.Errors {
		if d.Enum == "" {
			p.Diagnostics.Errors = append(p.Diagnostics.Errors, d)
			continue
		}

		if byEnum[d.Enum] == nil {
			byEnum[d.Enum] = &diagnostic.Diagnostics{}
		}

		byEnum[d.Enum].Errors = append(byEnum[d.Enum].Errors, d)
	}

	for i := range f.Enums {
		e := &f.Enums[i]

		ep := Collect(f, e, opts)
		if d, ok := byEnum[e.Name]; ok {
			ep.Diagnostics.Errors = mergeErrors(d.Errors, ep.Diagnostics.Errors)
		}

		if !ep.Blocked() {
			ep.UniqueOutbound, ep.UniqueInbound = Dedupe(ep.Members)
		}

		p.Enums = append(p.Enums, ep)
	}

	// Errors naming an enum the model does not hold, such as a front-end
	// rejecting a generic type, stay on the plan without blocking siblings.
	for _, d := range res.Errors {
		if d.Enum != "" && !slices.ContainsFunc(f.Enums, func(e mapping.Enum) bool { return e.Name == d.Enum }) {
			p.Diagnostics.Errors = append(p.Diagnostics.Errors, d)
		}
	}

	return p
}

// mergeErrors appends b to a, skipping errors a already reports.
func mergeErrors(a, b []diagnostic.Diagnostic) []diagnostic.Diagnostic {
	out := append([]diagnostic.Diagnostic(nil), a...)

	for _, d := range b {
		if !slices.ContainsFunc(a, func(x diagnostic.Diagnostic) bool {
			return x.Code == d.Code && x.Pos == d.Pos && x.Member == d.Member
		}) {
			out = append(out, d)
		}
	}

	return out
}

// Collect builds the member descriptors of one enum. Rule violations are
// reported on the returned plan and the offending signature is dropped.
func Collect(f *mapping.File, e *mapping.Enum, opts Options) *EnumPlan {
	suffix := opts.Suffix
	if suffix == "" {
		suffix = DefaultSuffix
	}

	ep := &EnumPlan{
		Name:       e.Name,
		PkgPath:    f.PackagePath,
		PkgName:    f.Package,
		Underlying: e.Underlying,
		Filename:   e.Output,
		Pos:        e.Pos,
	}

	if ep.Filename == "" {
		ep.Filename = common.SnakeCase(e.Name) + suffix
	}

	if ep.Underlying == "" {
		ep.Underlying = "int"
	}

	for i := range e.Members {
		m := &e.Members[i]
		if m.IsIgnored() {
			continue
		}

		ep.Members = append(ep.Members, collectMember(ep, m))
	}

	resolveValues(ep, e.Constants(f.PackagePath))
	checkImports(ep)

	return ep
}

// checkImports rejects enums whose participating packages would share an
// import name. Literal values are qualified by that name, so the generated
// file could not tell the packages apart.
func checkImports(ep *EnumPlan) {
	// The generated file always imports these.
	byName := map[string]string{"fmt": "fmt", "strconv": "strconv"}
	reported := map[string]bool{}

	for _, md := range ep.Members {
		for _, sig := range slices.Concat(md.Outbound, md.Inbound) {
			for _, p := range sig {
				for _, path := range p.Type.Packages() {
					if path == ep.PkgPath {
						continue
					}

					name := common.PkgAlias(path)

					prev, seen := byName[name]
					if !seen {
						byName[name] = path

						continue
					}

					if prev != path && !reported[path] {
						reported[path] = true
						ep.Diagnostics.AddError("import_conflict",
							fmt.Sprintf("packages %s and %s would both be imported as %s", prev, path, name),
							md.Pos, ep.Name, md.Ident)
					}
				}
			}
		}
	}
}

func collectMember(ep *EnumPlan, m *mapping.Member) MemberDescriptor {
	md := MemberDescriptor{
		DisplayName:  m.Name,
		QualifiedRef: mapping.QualifiedRef(ep.PkgPath, ep.Name, m.Name),
		Ident:        m.Name,
		Pos:          m.Pos,
	}

	var declared []param.Signature

	for i := range m.Attrs {
		a := &m.Attrs[i]

		switch a.Kind {
		case mapping.AttrName:
			md.DisplayName = a.Name
		case mapping.AttrAlias:
			md.Aliases = append([]string(nil), a.Aliases...)
		case mapping.AttrTo:
			sig, ok := signature(ep, m, a)
			if ok {
				addOutbound(ep, &md, &declared, sig, a.Pos)
			}
		case mapping.AttrFrom:
			sig, ok := signature(ep, m, a)
			if ok {
				addInbound(ep, &md, sig, a.Pos)
			}
		case mapping.AttrIgnore, mapping.AttrInvalid:
		}
	}

	return md
}

// addOutbound applies the outbound rules: no string target, one signature
// per target type. A string target still counts as declared, so repeating it
// reports both rules.
func addOutbound(ep *EnumPlan, md *MemberDescriptor, declared *[]param.Signature, sig param.Signature, pos mapping.Position) {
	if len(sig) != 1 {
		ep.Diagnostics.AddError("invalid_to", "to attr needs exactly one parameter", pos, ep.Name, md.Ident)
		return
	}

	isString := sig[0].Type.IsString()
	if isString {
		ep.Diagnostics.Report(diagnostic.StringTypeNotAllowed, pos, ep.Name, md.Ident)
	}

	if !param.UniqueByType(*declared, sig) {
		ep.Diagnostics.Report(diagnostic.DuplicateTypeNotAllowed, pos, ep.Name, md.Ident)
		return
	}

	*declared = append(*declared, sig)

	if !isString {
		md.Outbound = append(md.Outbound, sig)
	}
}

// addInbound applies the inbound rules in order: distinct types, one
// signature per type multiset, no lone string parameter.
func addInbound(ep *EnumPlan, md *MemberDescriptor, sig param.Signature, pos mapping.Position) {
	switch {
	case len(sig) == 0:
		ep.Diagnostics.AddError("empty_from", "from attr lists no parameters", pos, ep.Name, md.Ident)
	case sig.HasDuplicateTypes():
		ep.Diagnostics.Report(diagnostic.DuplicateTypeNotAllowed, pos, ep.Name, md.Ident)
	case !param.UniqueByType(md.Inbound, sig):
		ep.Diagnostics.Report(diagnostic.SameTypesNotAllowed, pos, ep.Name, md.Ident)
	case len(sig) == 1 && sig[0].Type.IsString():
		ep.Diagnostics.Report(diagnostic.StringOnlyNotAllowed, pos, ep.Name, md.Ident)
	default:
		md.Inbound = append(md.Inbound, sig)
	}
}

func signature(ep *EnumPlan, m *mapping.Member, a *mapping.Attr) (param.Signature, bool) {
	sig := make(param.Signature, 0, len(a.Params))

	for _, def := range a.Params {
		t, err := param.ParseTypeRef(def.Type)
		if err != nil {
			ep.Diagnostics.AddError("invalid_type", err.Error(), a.Pos, ep.Name, m.Name)
			return nil, false
		}

		sig = append(sig, param.Parameter{Type: t, Name: def.Name, Value: def.Value})
	}

	return sig, true
}

// resolveValues sets every descriptor's value by exact lookup of its
// qualified reference in the enum's own constant table.
func resolveValues(ep *EnumPlan, table map[string]int64) {
	for i := range ep.Members {
		md := &ep.Members[i]

		v, ok := table[md.QualifiedRef]
		if !ok {
			ep.Diagnostics.AddError("value_unresolved",
				fmt.Sprintf("no constant value for %s", md.QualifiedRef), md.Pos, ep.Name, md.Ident)

			continue
		}

		md.Value = &v
	}
}
