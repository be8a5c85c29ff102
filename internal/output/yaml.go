package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLWriter outputs the document as YAML with two-space indentation.
type YAMLWriter struct{}

func (y *YAMLWriter) Write(w io.Writer, doc any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlNumbers(doc)); err != nil {
		return fmt.Errorf("writing YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("writing YAML: %w", err)
	}
	return nil
}

// yamlNumbers returns a copy of doc in which every json.Number is a YAML
// scalar node carrying the number's original text. yaml.v3 would otherwise
// emit json.Number as a quoted string.
func yamlNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		tag := "!!int"
		if _, err := t.Int64(); err != nil {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: t.String()}
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			out[k] = yamlNumbers(child)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, child := range t {
			out[i] = yamlNumbers(child)
		}
		return out
	default:
		return v
	}
}
