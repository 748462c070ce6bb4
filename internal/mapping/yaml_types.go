package mapping

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// --- Enum / Member YAML methods ---

// UnmarshalYAML records the node position of the enum.
func (e *Enum) UnmarshalYAML(node *yaml.Node) error {
	type plain Enum

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*e = Enum(p)
	e.Pos = nodePos(node)

	return nil
}

// UnmarshalYAML accepts either a bare member name or a full member mapping
// and records the node position.
func (m *Member) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*m = Member{Name: node.Value, Pos: nodePos(node)}
		return nil
	}

	type plain Member

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*m = Member(p)
	m.Pos = nodePos(node)

	return nil
}

// --- Attr YAML methods ---

// UnmarshalYAML decodes a single-key mapping into the matching Attr variant.
func (a *Attr) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: %w", node.Line, ErrAttrShape)
	}

	key, val := node.Content[0].Value, node.Content[1]

	kind, ok := AttrKindFromKey(key)
	if !ok {
		return fmt.Errorf("line %d: unknown attr %q: %w", node.Line, key, ErrAttrShape)
	}

	*a = Attr{Kind: kind, Pos: nodePos(node)}

	var err error

	switch kind {
	case AttrName:
		err = val.Decode(&a.Name)
	case AttrAlias:
		var aliases StringArray

		err = val.Decode(&aliases)
		a.Aliases = aliases
	case AttrTo:
		var p ParamDef

		err = val.Decode(&p)
		a.Params = []ParamDef{p}
	case AttrFrom:
		// A single parameter may be written without the list.
		if val.Kind == yaml.MappingNode {
			var p ParamDef

			err = val.Decode(&p)
			a.Params = []ParamDef{p}
		} else {
			err = val.Decode(&a.Params)
		}
	case AttrIgnore:
		err = val.Decode(&a.Ignore)
	}

	if err != nil {
		return fmt.Errorf("line %d: invalid %s attr: %w", val.Line, key, err)
	}

	return nil
}

// MarshalYAML encodes the Attr as a single-key mapping.
func (a Attr) MarshalYAML() (any, error) {
	var payload any

	switch a.Kind {
	case AttrName:
		payload = a.Name
	case AttrAlias:
		payload = a.Aliases
	case AttrTo:
		if len(a.Params) != 1 {
			return nil, fmt.Errorf("to attr needs exactly one parameter, got %d", len(a.Params))
		}

		payload = a.Params[0]
	case AttrFrom:
		payload = a.Params
	case AttrIgnore:
		payload = a.Ignore
	default:
		return nil, ErrAttrShape
	}

	return map[string]any{a.Kind.Key(): payload}, nil
}

func nodePos(node *yaml.Node) Position {
	return Position{Line: node.Line, Column: node.Column}
}

// --- StringArray YAML methods ---

// StringArray is a string slice that can be unmarshaled from a single string or a list.
type StringArray []string

// UnmarshalYAML implements yaml.Unmarshaler for StringArray.
func (s *StringArray) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*s = []string{single}
		return nil
	}

	var multi []string
	if err := unmarshal(&multi); err == nil {
		*s = multi
		return nil
	}

	return errors.New("expected string or list of strings")
}
