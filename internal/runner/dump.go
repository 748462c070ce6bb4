package runner

import (
	"context"
	"fmt"

	"enumconv/internal/mapping"
	"enumconv/internal/plan"
)

// Dump formats.
const (
	FormatYAML = "yaml"
	FormatSpew = "spew"
)

// Dump prints the collected descriptors and unique signatures of the inputs.
func (r *Runner) Dump(ctx context.Context, inputs []string, format string) error {
	units, err := r.Load(ctx, inputs)
	if err != nil {
		return err
	}

	r.reportDiagnostics(units)

	var enums []*plan.EnumPlan
	for _, u := range units {
		enums = append(enums, u.Plan.Enums...)
	}

	switch format {
	case FormatYAML, "":
		data, err := plan.DumpYAML(enums)
		if err != nil {
			return err
		}

		_, err = r.stdout.Write(data)

		return err
	case FormatSpew:
		_, err := fmt.Fprint(r.stdout, plan.DumpSpew(enums))

		return err
	default:
		return fmt.Errorf("unknown dump format %q", format)
	}
}

// Schema prints the JSON schema of the descriptor file.
func (r *Runner) Schema() error {
	data, err := mapping.SchemaJSON()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(r.stdout, string(data))

	return err
}
