package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"text/template"

	"github.com/spf13/afero"

	"enumconv/internal/plan"
)

// DefaultSupportFile is the name of the per-package runtime support file.
const DefaultSupportFile = "enumconv_support.go"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// GenerateComments enables doc comments on generated functions.
	GenerateComments bool
	// SupportFile is the name of the per-package support file. Empty disables it.
	SupportFile string
	// DebugDir receives unformatted sidecar files when formatting fails.
	// Empty disables them.
	DebugDir string
	// Fs is where debug sidecars are written. Defaults to the OS filesystem.
	Fs afero.Fs
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		GenerateComments: true,
		SupportFile:      DefaultSupportFile,
	}
}

// Generator renders enum plans into Go source files.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Fs == nil {
		config.Fs = afero.NewOsFs()
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "sample_enum_enumconv.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders every generatable enum of p, followed by the support
// file of the package. Enums blocked by structural errors are skipped.
func (g *Generator) Generate(p *plan.Plan) ([]GeneratedFile, error) {
	var (
		files []GeneratedFile
		errs  []error
	)

	enums := p.Generatable()
	for _, ep := range enums {
		file, err := g.GenerateEnum(ep)
		if err != nil {
			errs = append(errs, fmt.Errorf("generating %s: %w", ep.Name, err))
			continue
		}

		files = append(files, *file)
	}

	if len(enums) > 0 && g.config.SupportFile != "" {
		file, err := g.GenerateSupport(p.Package)
		if err != nil {
			errs = append(errs, fmt.Errorf("generating support file: %w", err))
		} else {
			files = append(files, *file)
		}
	}

	return files, errors.Join(errs...)
}

// GenerateEnum renders the conversion functions of one enum.
func (g *Generator) GenerateEnum(ep *plan.EnumPlan) (*GeneratedFile, error) {
	data := g.buildTemplateData(ep)

	return g.render(enumTemplate, ep.Filename, data)
}

// GenerateSupport renders the runtime support file of a package.
func (g *Generator) GenerateSupport(pkgName string) (*GeneratedFile, error) {
	name := g.config.SupportFile
	if name == "" {
		name = DefaultSupportFile
	}

	return g.render(supportTemplate, name, &supportData{
		PackageName: pkgName,
		Comments:    g.config.GenerateComments,
	})
}

func (g *Generator) render(tmpl *template.Template, filename string, data any) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort sidecar; the formatting error is what gets reported.
		_ = writeDebugUnformatted(g.config.Fs, g.config.DebugDir, filename, buf.Bytes())

		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}
