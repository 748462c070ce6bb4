package gen

import (
	"path"
	"sort"
	"strconv"
	"strings"

	"enumconv/internal/common"
	"enumconv/internal/match"
	"enumconv/internal/param"
	"enumconv/internal/plan"
)

// templateData holds all data needed for the enum template.
type templateData struct {
	PackageName string
	Imports     []importSpec
	Comments    bool
	Enum        string
	FromInt     string
	Parse       string
	// FormatSelf renders the receiver e as text for error values.
	FormatSelf string
	IntCases   []memberCase
	NameCases  []memberCase
	ParseCases []memberCase
	Outbound   []outboundFunc
	Inbound    []inboundFunc
}

// importSpec is one import line.
type importSpec struct {
	Alias string
	Path  string
}

// memberCase is one switch branch: Key selects, Ident is the member.
type memberCase struct {
	Ident string
	Key   string
}

type outboundFunc struct {
	Name  string
	Type  string
	Cases []memberCase
}

type paramData struct {
	Name string
	Type string
}

type guard struct {
	Ident string
	Conds string
}

type inboundFunc struct {
	Name      string
	Params    []paramData
	Guards    []guard
	Format    string
	Overloads []overloadFunc
}

type overloadFunc struct {
	Name   string
	Params []paramData
	Args   string
}

// buildTemplateData constructs the template data from an enum plan.
func (g *Generator) buildTemplateData(ep *plan.EnumPlan) *templateData {
	imports := map[string]importSpec{"strconv": {Path: "strconv"}}

	data := &templateData{
		PackageName: ep.PkgName,
		Comments:    g.config.GenerateComments,
		Enum:        ep.Name,
		FromInt:     ep.Name + "FromInt",
		Parse:       "Parse" + ep.Name,
		FormatSelf:  formatInteger("e", ep.Underlying),
	}

	// Generated names share the package scope with the enum and its members.
	funcs := match.NewNamespace(ep.Name, data.FromInt, data.Parse)
	methods := match.NewNamespace("Int", "Name")

	data.IntCases = intCases(ep.Members)
	data.NameCases = nameCases(ep.Members)
	data.ParseCases = parseCases(ep.Members)

	for _, sig := range ep.UniqueOutbound {
		t := sig[0].Type
		addImport(imports, t, ep.PkgPath)

		data.Outbound = append(data.Outbound, outboundFunc{
			Name:  methods.Name("To" + match.ExportName(t.SimpleName())),
			Type:  t.Expr(ep.PkgPath),
			Cases: outboundCases(ep.Members, sig),
		})
	}

	if len(ep.UniqueInbound) > 0 {
		imports["fmt"] = importSpec{Path: "fmt"}
	}

	for _, sig := range ep.UniqueInbound {
		for _, p := range sig {
			addImport(imports, p.Type, ep.PkgPath)
		}
	}

	for _, sig := range ep.UniqueInbound {
		data.Inbound = append(data.Inbound, buildInbound(ep, sig, funcs, imports))
	}

	data.Imports = sortedImports(imports)

	return data
}

// intCases keys members by numeric value. Go rejects duplicate switch
// cases, so the first member with a given value wins.
func intCases(members []plan.MemberDescriptor) []memberCase {
	var cases []memberCase

	seen := map[int64]bool{}

	for _, md := range members {
		if md.Value == nil || seen[*md.Value] {
			continue
		}

		seen[*md.Value] = true
		cases = append(cases, memberCase{Ident: md.Ident, Key: strconv.FormatInt(*md.Value, 10)})
	}

	return cases
}

// nameCases keys display names by member, one case per distinct value.
func nameCases(members []plan.MemberDescriptor) []memberCase {
	var cases []memberCase

	seen := map[int64]bool{}

	for _, md := range members {
		if md.Value == nil || seen[*md.Value] {
			continue
		}

		seen[*md.Value] = true
		cases = append(cases, memberCase{Ident: md.Ident, Key: strconv.Quote(md.DisplayName)})
	}

	return cases
}

// parseCases lists every display name, then every alias in member-then-alias
// order. The first occurrence of a string wins.
func parseCases(members []plan.MemberDescriptor) []memberCase {
	var cases []memberCase

	seen := map[string]bool{}
	add := func(ident, s string) {
		if seen[s] {
			return
		}

		seen[s] = true
		cases = append(cases, memberCase{Ident: ident, Key: strconv.Quote(s)})
	}

	for _, md := range members {
		add(md.Ident, md.DisplayName)
	}

	for _, md := range members {
		for _, alias := range md.Aliases {
			add(md.Ident, alias)
		}
	}

	return cases
}

func outboundCases(members []plan.MemberDescriptor, target param.Signature) []memberCase {
	var cases []memberCase

	seen := map[int64]bool{}

	for _, md := range members {
		if md.Value == nil || seen[*md.Value] {
			continue
		}

		for _, sig := range md.Outbound {
			if param.SignatureTypeEquals(sig, target) {
				seen[*md.Value] = true
				cases = append(cases, memberCase{Ident: md.Ident, Key: sig[0].Value})

				break
			}
		}
	}

	return cases
}

func buildInbound(ep *plan.EnumPlan, sig param.Signature, funcs match.Namespace, imports map[string]importSpec) inboundFunc {
	// Parameter names must not shadow imported packages.
	locals := match.NewNamespace()
	for _, imp := range imports {
		locals.Reserve(importName(imp))
	}

	params := make([]paramData, len(sig))
	for i, p := range sig {
		name := p.Name
		if name == "" {
			name = match.LowerFirst(p.Type.SimpleName())
		}

		params[i] = paramData{Name: locals.Name(name), Type: p.Type.Expr(ep.PkgPath)}
	}

	fn := inboundFunc{
		Name:   funcs.Name(inboundName(ep.Name, sig)),
		Params: params,
		Format: inboundFormat(params),
	}

	for _, md := range ep.Members {
		for _, own := range md.Inbound {
			if !param.SignatureTypeEquals(own, sig) {
				continue
			}

			conds := make([]string, len(sig))
			for i, p := range sig {
				lit, _ := own.Find(p.Type)
				conds[i] = params[i].Name + " == " + lit.Value
			}

			fn.Guards = append(fn.Guards, guard{Ident: md.Ident, Conds: strings.Join(conds, " && ")})
		}
	}

	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}

	for i := 1; i < len(sig); i++ {
		fn.Overloads = append(fn.Overloads, overloadFunc{
			Name:   funcs.Name(inboundName(ep.Name, common.Rotate(sig, i))),
			Params: common.Rotate(params, i),
			Args:   strings.Join(names, ", "),
		})
	}

	return fn
}

func inboundName(enum string, sig param.Signature) string {
	var sb strings.Builder

	sb.WriteString(enum)
	sb.WriteString("From")

	for _, p := range sig {
		sb.WriteString(match.ExportName(p.Type.SimpleName()))
	}

	return sb.String()
}

// inboundFormat renders the arguments of a failed inbound lookup.
func inboundFormat(params []paramData) string {
	verbs := make([]string, len(params))
	args := make([]string, len(params))

	for i, p := range params {
		verbs[i] = "%v"
		args[i] = p.Name
	}

	return `fmt.Sprintf("` + strings.Join(verbs, ", ") + `", ` + strings.Join(args, ", ") + `)`
}

// formatInteger renders an integer-typed expression as decimal text.
func formatInteger(expr, underlying string) string {
	if strings.HasPrefix(underlying, "uint") || underlying == "byte" {
		return "strconv.FormatUint(uint64(" + expr + "), 10)"
	}

	return "strconv.FormatInt(int64(" + expr + "), 10)"
}

func addImport(imports map[string]importSpec, t param.TypeRef, localPkg string) {
	for _, p := range t.Packages() {
		if p == localPkg {
			continue
		}

		spec := importSpec{Path: p}
		if alias := common.PkgAlias(p); alias != path.Base(p) {
			spec.Alias = alias
		}

		imports[p] = spec
	}
}

func importName(imp importSpec) string {
	if imp.Alias != "" {
		return imp.Alias
	}

	return path.Base(imp.Path)
}

func sortedImports(imports map[string]importSpec) []importSpec {
	out := make([]importSpec, 0, len(imports))
	for _, imp := range imports {
		out = append(out, imp)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	return out
}
