package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleDoc() map[string]any {
	return map[string]any{
		"user":     "bob",
		"password": "[ REDACTED ]",
		"roles":    []any{"admin", "dev"},
		"html":     "<b>",
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &JSONWriter{}
	require.NoError(t, w.Write(&buf, sampleDoc()))

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed), "output is not valid JSON")
	assert.Equal(t, sampleDoc(), parsed)
	assert.Contains(t, buf.String(), `"<b>"`, "HTML is not escaped")
	assert.Contains(t, buf.String(), "\n  \"", "output is indented")
}

func TestYAMLWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &YAMLWriter{}
	require.NoError(t, w.Write(&buf, sampleDoc()))

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &parsed), "output is not valid YAML")
	assert.Equal(t, sampleDoc(), parsed)
}

func TestYAMLWriter_JSONNumbers(t *testing.T) {
	doc := map[string]any{
		"i":    json.Number("42"),
		"n":    json.Number("1.50"),
		"list": []any{json.Number("-3"), json.Number("2.5e3"), "7"},
	}
	var buf bytes.Buffer
	require.NoError(t, (&YAMLWriter{}).Write(&buf, doc))

	out := buf.String()
	assert.Contains(t, out, "i: 42\n")
	assert.Contains(t, out, "n: 1.50\n", "numbers keep their original text")

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &parsed))
	assert.Equal(t, map[string]any{
		"i":    42,
		"n":    1.5,
		"list": []any{-3, 2500.0, "7"},
	}, parsed)
	assert.Equal(t, json.Number("42"), doc["i"], "input document is not modified")
}

func TestGetWriter(t *testing.T) {
	tests := []struct {
		format  string
		want    Writer
		wantErr bool
	}{
		{"json", &JSONWriter{}, false},
		{"", &JSONWriter{}, false},
		{"yaml", &YAMLWriter{}, false},
		{"yml", &YAMLWriter{}, false},
		{"sarif", nil, true},
	}
	for _, tt := range tests {
		got, err := GetWriter(tt.format)
		if tt.wantErr {
			assert.Error(t, err, "GetWriter(%q)", tt.format)
			continue
		}
		require.NoError(t, err)
		assert.IsType(t, tt.want, got, "GetWriter(%q)", tt.format)
	}
}

func TestWriteDocument_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteDocument(sampleDoc(), "json", path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, "bob", parsed["user"])
}

func TestWriteDocument_BadFormat(t *testing.T) {
	err := WriteDocument(sampleDoc(), "xml", filepath.Join(t.TempDir(), "out"), nil)
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestWriteDocument_Stdout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDocument(map[string]any{"a": 1}, "yaml", "-", &buf))
	assert.Equal(t, "a: 1\n", buf.String())
}
