package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaVersion is the JSON Schema draft the descriptor schema targets.
const SchemaVersion = "http://json-schema.org/draft-07/schema#"

// JSONSchema describes Attr as a one-of over its single-key variants.
func (Attr) JSONSchema() *jsonschema.Schema {
	variant := func(key string, value *jsonschema.Schema) *jsonschema.Schema {
		props := jsonschema.NewProperties()
		props.Set(key, value)

		return &jsonschema.Schema{
			Type:                 "object",
			Properties:           props,
			Required:             []string{key},
			AdditionalProperties: jsonschema.FalseSchema,
		}
	}

	stringArray := &jsonschema.Schema{OneOf: []*jsonschema.Schema{
		{Type: "string"},
		{Type: "array", Items: &jsonschema.Schema{Type: "string"}},
	}}

	return &jsonschema.Schema{
		Description: "Member metadata: exactly one of name, alias, to, from, ignore.",
		OneOf: []*jsonschema.Schema{
			variant("name", &jsonschema.Schema{Type: "string", Description: "display name override"}),
			variant("alias", stringArray),
			variant("to", paramDefSchema()),
			variant("from", &jsonschema.Schema{Type: "array", Items: paramDefSchema()}),
			variant("ignore", &jsonschema.Schema{Type: "boolean"}),
		},
	}
}

func paramDefSchema() *jsonschema.Schema {
	props := jsonschema.NewProperties()
	props.Set("type", &jsonschema.Schema{Type: "string", Description: "canonical type identifier"})
	props.Set("value", &jsonschema.Schema{Type: "string", Description: "Go expression of that type"})
	props.Set("name", &jsonschema.Schema{Type: "string", Description: "generated parameter name"})

	return &jsonschema.Schema{
		Type:                 "object",
		Properties:           props,
		Required:             []string{"type", "value"},
		AdditionalProperties: jsonschema.FalseSchema,
	}
}

// Schema reflects the JSON schema of the descriptor file.
func Schema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            false,
	}

	schema := reflector.Reflect(&File{})
	schema.Version = SchemaVersion
	schema.Title = "enumconv descriptor file"

	return schema
}

// SchemaJSON returns the indented JSON encoding of Schema.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return data, nil
}
