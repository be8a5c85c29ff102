// Package document decodes the JSON and YAML inputs accepted by redactobj.
//
// JSON numbers are kept as json.Number so redacted output reproduces them
// verbatim. YAML mappings with non-string keys decode to map[any]any, which
// the redactor treats as an unsupported type.
package document
