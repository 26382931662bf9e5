package cli

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/roach88/tally/internal/number"
)

// Script defines a calculator session: an ordered list of computations
// evaluated against one shared calculator.
type Script struct {
	// Precision overrides the configured rounding precision for this
	// session when set.
	Precision *int `yaml:"precision,omitempty"`

	// Steps are evaluated in order. At least one step is required.
	Steps []ScriptStep `yaml:"steps"`
}

// ScriptStep is a single computation in a session script.
type ScriptStep struct {
	// Op is the operation label (case-insensitive).
	Op string `yaml:"op"`

	A ScriptNumber `yaml:"a"`
	B ScriptNumber `yaml:"b"`
}

// ScriptNumber wraps a number.Value so YAML scalars keep their
// integer-vs-float form: `a: 10` is an Int, `a: 10.0` a Float, and a
// quoted "10.0" parses like the literal would.
type ScriptNumber struct {
	Value number.Value
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *ScriptNumber) UnmarshalYAML(node *yaml.Node) error {
	switch node.Tag {
	case "!!int":
		i, err := strconv.ParseInt(node.Value, 10, 64)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		n.Value = number.Int(i)
		return nil
	case "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		n.Value = number.Float(f)
		return nil
	case "!!str":
		v, err := number.Parse(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: not a number: %q", node.Line, node.Value)
		}
		n.Value = v
		return nil
	default:
		return fmt.Errorf("line %d: expected a number, got %s", node.Line, node.Tag)
	}
}

// LoadScript reads and strictly decodes a session script.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}

	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parsing script %s: %w", path, err)
	}

	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("script %s has no steps", path)
	}
	if script.Precision != nil && *script.Precision < 0 {
		return nil, fmt.Errorf("script %s: precision must be >= 0", path)
	}
	for i, step := range script.Steps {
		if step.A.Value == nil || step.B.Value == nil {
			return nil, fmt.Errorf("script %s: step %d is missing an operand", path, i+1)
		}
	}

	return &script, nil
}
