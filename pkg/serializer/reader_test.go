package serializer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"produtos.json", FormatJSON},
		{"PRODUTOS.JSON", FormatJSON},
		{"catalog.yaml", FormatYAML},
		{"catalog.yml", FormatYAML},
		{"lines.csv", FormatCSV},
		{"out.table", FormatTable},
		{"email.txt", FormatTable},
		{"https://example.com/catalog.yaml?token=abc", FormatYAML},
		{"https://example.com/catalog.yaml#frag", FormatYAML},
		{"catalog", FormatJSON},
		{"", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path))
		})
	}
}

func TestNewReader_RejectsWriteOnlyFormats(t *testing.T) {
	for _, f := range []Format{FormatTable, FormatCSV, Format("xml")} {
		_, err := NewReader(f, strings.NewReader(""))
		assert.Error(t, err, f)
	}
}

func TestReader_Deserialize(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		input   string
		want    testConfig
		wantErr bool
	}{
		{name: "json", format: FormatJSON, input: `{"name":"a","value":1}`, want: testConfig{Name: "a", Value: 1}},
		{name: "yaml", format: FormatYAML, input: "name: b\nvalue: 2\n", want: testConfig{Name: "b", Value: 2}},
		{name: "invalid json", format: FormatJSON, input: `{"name":`, wantErr: true},
		{name: "invalid yaml", format: FormatYAML, input: "name: [", wantErr: true},
		{name: "empty json", format: FormatJSON, input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(tt.input))
			require.NoError(t, err)

			var got testConfig
			err = r.Deserialize(&got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReader_NilChecks(t *testing.T) {
	var r *Reader
	assert.Error(t, r.Deserialize(&testConfig{}))
	assert.NoError(t, r.Close())

	r, err := NewReader(FormatJSON, nil)
	require.NoError(t, err)
	assert.Error(t, r.Deserialize(&testConfig{}))
}

func TestNewFileReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"f","value":3}`), 0o600))

	r, err := NewFileReader(FormatJSON, path)
	require.NoError(t, err)

	var got testConfig
	require.NoError(t, r.Deserialize(&got))
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
	assert.Equal(t, "f", got.Name)

	_, err = NewFileReader(FormatJSON, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestReadSource_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: y\n"), 0o600))

	data, format, err := ReadSource(context.Background(), path, SourceOptions{})
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, format)
	assert.Equal(t, "name: y\n", string(data))

	_, _, err = ReadSource(context.Background(), filepath.Join(t.TempDir(), "nope.json"), SourceOptions{})
	assert.Error(t, err)

	_, _, err = ReadSource(context.Background(), "  ", SourceOptions{})
	assert.Error(t, err)
}

func TestReadSource_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/catalog.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"name":"remote","value":9}`))
	}))
	defer srv.Close()

	got, err := FromSource[testConfig](context.Background(), srv.URL+"/catalog.json", SourceOptions{})
	require.NoError(t, err)
	assert.Equal(t, testConfig{Name: "remote", Value: 9}, *got)

	_, err = FromSource[testConfig](context.Background(), srv.URL+"/missing.json", SourceOptions{})
	assert.Error(t, err)
}

func TestReadSource_InvalidURIs(t *testing.T) {
	for _, src := range []string{"cm://only-namespace", "s3://bucket-only"} {
		_, _, err := ReadSource(context.Background(), src, SourceOptions{})
		assert.Error(t, err, src)
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"a","value":1},{"name":"b","value":2}]`), 0o600))

	got, err := FromFile[[]testConfig](path)
	require.NoError(t, err)
	assert.Len(t, *got, 2)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	_, err = FromFile[[]testConfig](bad)
	assert.Error(t, err)
}
