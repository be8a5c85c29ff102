package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONWriter outputs the document as indented JSON.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, doc any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}
