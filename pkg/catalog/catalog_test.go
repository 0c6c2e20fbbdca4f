package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	apperrors "github.com/neosolar/genbundler/pkg/errors"
	"github.com/neosolar/genbundler/pkg/header"
)

const jsonCatalog = `[
  {"Id": "P1", "Produto": "PanelA", "Categoria": "Painel Solar", "Potencia em W": 100},
  {"Id": 2, "Produto": "InvA", "Categoria": "Inversor", "Potencia em W": 300},
  {"Id": "C1", "Produto": "CtrlA", "Categoria": "Controlador de carga", "Potencia em W": 300},
  {"Id": "B1", "Produto": "Bateria", "Categoria": "Bateria", "Potencia em W": 1200},
  {"Id": "X1", "Produto": "Broken", "Categoria": "Inversor", "Potencia em W": 0},
  {"Id": "X2", "Produto": "Fraction", "Categoria": "Painel Solar", "Potencia em W": 99.5}
]`

const yamlCatalog = `
- Id: P1
  Produto: PanelA
  Categoria: painel solar
  Potencia em W: 100
- Id: 10
  Produto: InvA
  Categoria: Inversor
  Potencia em W: 300
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "produtos.json", jsonCatalog)
	created := time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC)

	cat, err := Load(context.Background(), path,
		WithVersion("v1.2.3"),
		WithClock(func() time.Time { return created }))
	require.NoError(t, err)

	assert.Equal(t, path, cat.Source)
	assert.Equal(t, header.KindCatalog, cat.Kind)
	assert.Equal(t, "v1.2.3", cat.Metadata[header.MetadataVersion])
	assert.Equal(t, "2026-10-12T09:00:00Z", cat.Metadata[header.MetadataTimestamp])
	assert.Equal(t, 2, cat.Skipped)

	want := []Component{
		{ID: "P1", Name: "PanelA", Category: CategoryPanel, PowerWatts: 100},
		{ID: "2", Name: "InvA", Category: CategoryInverter, PowerWatts: 300},
		{ID: "C1", Name: "CtrlA", Category: CategoryController, PowerWatts: 300},
		{ID: "B1", Name: "Bateria", Category: CategoryUnknown, PowerWatts: 1200},
	}
	assert.Equal(t, want, cat.Components())
	assert.Equal(t, map[Category]int{
		CategoryPanel:      1,
		CategoryInverter:   1,
		CategoryController: 1,
		CategoryUnknown:    1,
	}, cat.Counts())
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "produtos.yaml", yamlCatalog)

	cat, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, cat.Items, 2)
	assert.Equal(t, CategoryPanel, cat.Items[0].Category)
	assert.Equal(t, "10", cat.Items[1].ID)
}

func TestLoad_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(jsonCatalog))
	}))
	defer srv.Close()

	cat, err := Load(context.Background(), srv.URL+"/produtos.json")
	require.NoError(t, err)
	assert.Len(t, cat.Items, 4)
}

func TestLoad_Unreadable(t *testing.T) {
	tests := []struct {
		name   string
		source func(t *testing.T) string
	}{
		{name: "missing file", source: func(t *testing.T) string { return filepath.Join(t.TempDir(), "produtos.json") }},
		{name: "malformed json", source: func(t *testing.T) string { return writeFile(t, "produtos.json", `[{"Id":`) }},
		{name: "wrong shape", source: func(t *testing.T) string { return writeFile(t, "produtos.json", `{"Id": "P1"}`) }},
		{name: "empty array", source: func(t *testing.T) string { return writeFile(t, "produtos.json", `[]`) }},
		{name: "null document", source: func(t *testing.T) string { return writeFile(t, "produtos.json", `null`) }},
		{name: "bad id", source: func(t *testing.T) string { return writeFile(t, "produtos.json", `[{"Id": true}]`) }},
		{name: "empty source", source: func(*testing.T) string { return "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := tt.source(t)
			_, err := Load(context.Background(), src)
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCodeCatalogUnreadable, apperrors.CodeOf(err))

			var se *apperrors.StructuredError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, src, se.Context["source"])
		})
	}
}

func TestID_Unmarshal(t *testing.T) {
	var rs []Record
	require.NoError(t, json.Unmarshal([]byte(`[{"Id":"A-1"},{"Id":42},{"Id":7.5},{"Id":null}]`), &rs))
	require.Len(t, rs, 4)
	assert.Equal(t, ID("A-1"), rs[0].ID)
	assert.Equal(t, ID("42"), rs[1].ID)
	assert.Equal(t, ID("7.5"), rs[2].ID)
	assert.Equal(t, ID(""), rs[3].ID)

	var ys []Record
	require.NoError(t, yaml.Unmarshal([]byte("- Id: 00123\n- Id: abc\n- Id: ~\n"), &ys))
	require.Len(t, ys, 3)
	assert.Equal(t, ID("00123"), ys[0].ID)
	assert.Equal(t, ID("abc"), ys[1].ID)
	assert.Equal(t, ID(""), ys[2].ID)

	assert.Error(t, yaml.Unmarshal([]byte("- Id: [1, 2]\n"), &ys))
}

func TestRecord_Watts(t *testing.T) {
	tests := []struct {
		power   float64
		want    int
		wantErr bool
	}{
		{power: 550, want: 550},
		{power: 1, want: 1},
		{power: 0, wantErr: true},
		{power: -100, wantErr: true},
		{power: 99.5, wantErr: true},
		{power: 1e12, wantErr: true},
	}

	for _, tt := range tests {
		got, err := Record{Power: tt.power}.watts()
		if tt.wantErr {
			assert.Error(t, err, tt.power)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestCatalog_Tabular(t *testing.T) {
	cat := FromRecords([]Record{
		{ID: "P1", Name: "PanelA", Category: "Painel Solar", Power: 100},
	})
	assert.Equal(t, []string{"id", "name", "category", "powerWatts"}, cat.Columns())
	assert.Equal(t, [][]string{{"P1", "PanelA", "Panel", "100"}}, cat.Rows())
	assert.Contains(t, cat.String(), "1 panels")
}

func TestCatalog_ComponentsIsACopy(t *testing.T) {
	cat := FromRecords([]Record{{ID: "P1", Category: "Painel Solar", Power: 100}})
	c := cat.Components()
	c[0].PowerWatts = 1
	assert.Equal(t, 100, cat.Items[0].PowerWatts)
}

func TestCatalog_YAMLDocument(t *testing.T) {
	path := writeFile(t, "produtos.json", jsonCatalog)
	cat, err := Load(context.Background(), path)
	require.NoError(t, err)

	out, err := yaml.Marshal(cat)
	require.NoError(t, err)
	assert.Contains(t, string(out), "kind: Catalog")
	assert.Contains(t, string(out), "apiVersion: "+header.APIVersion)
	assert.Contains(t, string(out), "powerWatts: 300")
}
