// Package output formats redacted documents for display or machine consumption.
//
// Two formats are supported:
//   - json: indented JSON (default)
//   - yaml: YAML with two-space indentation
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer] and the document. [WriteDocument] handles
// destination selection (file path, or stdout for "" and "-").
package output
