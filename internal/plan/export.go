package plan

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"enumconv/internal/param"
)

// EnumReport is the human-readable view of an EnumPlan used by dump.
type EnumReport struct {
	Name        string         `yaml:"name"`
	Package     string         `yaml:"package"`
	File        string         `yaml:"file"`
	Blocked     bool           `yaml:"blocked,omitempty"`
	Members     []MemberReport `yaml:"members"`
	Outbound    []string       `yaml:"unique_outbound,omitempty"`
	Inbound     []string       `yaml:"unique_inbound,omitempty"`
	Diagnostics []string       `yaml:"diagnostics,omitempty"`
}

// MemberReport is the human-readable view of a MemberDescriptor.
type MemberReport struct {
	Ident   string   `yaml:"ident"`
	Display string   `yaml:"display"`
	Value   *int64   `yaml:"value"`
	Aliases []string `yaml:"aliases,omitempty"`
	To      []string `yaml:"to,omitempty"`
	From    []string `yaml:"from,omitempty"`
}

// Report converts plans into their dump form.
func Report(plans []*EnumPlan) []EnumReport {
	reports := make([]EnumReport, 0, len(plans))

	for _, ep := range plans {
		r := EnumReport{
			Name:     ep.Name,
			Package:  ep.PkgPath,
			File:     ep.Filename,
			Blocked:  ep.Blocked(),
			Members:  make([]MemberReport, 0, len(ep.Members)),
			Outbound: signatureStrings(ep.UniqueOutbound, false),
			Inbound:  signatureStrings(ep.UniqueInbound, false),
		}

		for _, md := range ep.Members {
			r.Members = append(r.Members, MemberReport{
				Ident:   md.Ident,
				Display: md.DisplayName,
				Value:   md.Value,
				Aliases: md.Aliases,
				To:      signatureStrings(md.Outbound, true),
				From:    signatureStrings(md.Inbound, true),
			})
		}

		for _, d := range ep.Diagnostics.All() {
			r.Diagnostics = append(r.Diagnostics, d.String())
		}

		reports = append(reports, r)
	}

	return reports
}

func signatureStrings(sigs []param.Signature, withValues bool) []string {
	var out []string

	for _, sig := range sigs {
		if !withValues {
			out = append(out, sig.String())
			continue
		}

		parts := make([]string, len(sig))
		for i, p := range sig {
			parts[i] = fmt.Sprintf("%s=%s", p.Type, p.Value)
		}

		out = append(out, "("+strings.Join(parts, ", ")+")")
	}

	return out
}

// DumpYAML renders plans as YAML.
func DumpYAML(plans []*EnumPlan) ([]byte, error) {
	return yaml.Marshal(Report(plans))
}

// DumpSpew renders plans with go-spew for debugging.
func DumpSpew(plans []*EnumPlan) string {
	cfg := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}

	return cfg.Sdump(plans)
}
