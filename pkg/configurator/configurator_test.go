package configurator

import (
	"context"
	"encoding/csv"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/neosolar/genbundler/pkg/config"
	apperrors "github.com/neosolar/genbundler/pkg/errors"
	"github.com/neosolar/genbundler/pkg/generator"
	"github.com/neosolar/genbundler/pkg/header"
	"github.com/neosolar/genbundler/pkg/result"
)

const testCatalog = `[
  {"Id": "P1", "Produto": "Painel 100W", "Categoria": "Painel Solar", "Potencia em W": 100},
  {"Id": "P2", "Produto": "Painel 150W", "Categoria": "Painel Solar", "Potencia em W": 150},
  {"Id": 11, "Produto": "Inversor 300W", "Categoria": "Inversor", "Potencia em W": 300},
  {"Id": 12, "Produto": "Inversor 350W", "Categoria": "Inversor", "Potencia em W": 350},
  {"Id": "C1", "Produto": "Controlador 300W", "Categoria": "Controlador de carga", "Potencia em W": 300},
  {"Id": "B1", "Produto": "Bateria", "Categoria": "Bateria", "Potencia em W": 300}
]`

var testNow = time.Date(2026, 10, 12, 9, 30, 0, 0, time.UTC)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "produtos.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newTestConfigurator(cfg *config.Config) *Configurator {
	return New(cfg,
		WithClock(func() time.Time { return testNow }),
		WithRand(rand.New(rand.NewPCG(1, 1))),
		WithRunID("run-test"))
}

func TestRun_EndToEnd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")
	cfg := config.NewConfig(
		config.WithCatalogSource(writeCatalog(t, testCatalog)),
		config.WithOutputDir(out),
		config.WithIDStrategy(generator.StrategySequential),
		config.WithIncludeChecksums(true),
		config.WithOCIReference("localhost:5000/neosolar/generators:w41"),
		config.WithMetricsFile(filepath.Join(out, "genbundler.prom")),
		config.WithVersion("v1.0.0"),
	)

	res, err := newTestConfigurator(cfg).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Bundles)
	assert.Equal(t, 6, res.LineItems)
	assert.Equal(t, 1, res.Stats.UnmatchedInverters)
	assert.Equal(t, "Geradores solares configurados - Semana de 12/10/2026", res.Subject)

	// Line items
	f, err := os.Open(cfg.LineItemsPath())
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"bundleId", "bundleWatts", "componentId", "componentName", "quantity"},
		{"1", "300", "P1", "Painel 100W", "3"},
		{"1", "300", "11", "Inversor 300W", "1"},
		{"1", "300", "C1", "Controlador 300W", "1"},
		{"2", "300", "P2", "Painel 150W", "2"},
		{"2", "300", "11", "Inversor 300W", "1"},
		{"2", "300", "C1", "Controlador 300W", "1"},
	}, rows)

	// Notification
	mail, err := os.ReadFile(cfg.NotificationPath())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(mail), "Subject: Geradores solares configurados - Semana de 12/10/2026\n\n"))
	assert.Contains(t, string(mail), "Foram configurados 2 geradores de energia solar esta semana.")

	// Checksums
	sums, err := os.ReadFile(cfg.ChecksumsPath())
	require.NoError(t, err)
	assert.Contains(t, string(sums), "  geradores_configurados.csv")
	assert.Contains(t, string(sums), "  email_marketing.txt")
	assert.Len(t, res.Checksums, 2)

	// Summary
	data, err := os.ReadFile(cfg.SummaryPath())
	require.NoError(t, err)
	var summary map[string]any
	require.NoError(t, yaml.Unmarshal(data, &summary))
	assert.Equal(t, string(header.KindGeneratorReport), summary["kind"])
	assert.Equal(t, 2, summary["bundles"])
	meta, ok := summary["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "run-test", meta[result.MetadataRunID])
	assert.Equal(t, "2026-10-12T09:30:00Z", meta[header.MetadataTimestamp])

	// OCI layout
	require.NotNil(t, res.OCI)
	assert.True(t, strings.HasPrefix(res.OCI.Digest, "sha256:"))
	assert.FileExists(t, filepath.Join(cfg.OCILayoutPath(), "index.json"))

	// Metrics
	prom, err := os.ReadFile(cfg.MetricsFile())
	require.NoError(t, err)
	assert.Contains(t, string(prom), "genbundler_bundles 2")
	assert.Contains(t, string(prom), `genbundler_run_total{status="success"}`)
	assert.Contains(t, string(prom), `genbundler_catalog_components{category="Panel"} 2`)

	assert.Equal(t, cfg.MetricsFile(), res.Artifact(result.ArtifactMetrics))
	assert.Contains(t, res.Messages(), "Processo concluído com sucesso!")
}

func TestRun_Defaults(t *testing.T) {
	out := t.TempDir()
	cfg := config.NewConfig(
		config.WithCatalogSource(writeCatalog(t, testCatalog)),
		config.WithOutputDir(out),
		config.WithSummaryFile(""),
	)

	res, err := newTestConfigurator(cfg).Run(context.Background())
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(out, "geradores_configurados.csv"))
	assert.FileExists(t, filepath.Join(out, "email_marketing.txt"))
	assert.NoFileExists(t, filepath.Join(out, "summary.yaml"))
	assert.NoFileExists(t, filepath.Join(out, "checksums.txt"))
	assert.Nil(t, res.OCI)
	assert.Len(t, res.Artifacts, 2)

	for _, a := range res.Artifacts {
		assert.Positive(t, a.Size, a.Kind)
	}
}

func TestRun_Errors(t *testing.T) {
	noBundles := `[
  {"Id": "P1", "Produto": "PanelA", "Categoria": "Painel Solar", "Potencia em W": 100},
  {"Id": "I1", "Produto": "InvA", "Categoria": "Inversor", "Potencia em W": 300},
  {"Id": "C1", "Produto": "CtrlA", "Categoria": "Controlador de carga", "Potencia em W": 400}
]`

	tests := []struct {
		name         string
		opts         func(t *testing.T) []config.Option
		wantCode     apperrors.ErrorCode
		wantArtifact string
	}{
		{
			name: "invalid config",
			opts: func(t *testing.T) []config.Option {
				return []config.Option{config.WithIDStrategy("counter"), config.WithOutputDir(t.TempDir())}
			},
			wantCode: apperrors.ErrCodeInvalidRequest,
		},
		{
			name: "missing catalog",
			opts: func(t *testing.T) []config.Option {
				return []config.Option{
					config.WithCatalogSource(filepath.Join(t.TempDir(), "produtos.json")),
					config.WithOutputDir(t.TempDir()),
				}
			},
			wantCode: apperrors.ErrCodeCatalogUnreadable,
		},
		{
			name: "no bundles",
			opts: func(t *testing.T) []config.Option {
				return []config.Option{
					config.WithCatalogSource(writeCatalog(t, noBundles)),
					config.WithOutputDir(filepath.Join(t.TempDir(), "out")),
				}
			},
			wantCode: apperrors.ErrCodeNoBundles,
		},
		{
			name: "unwritable output dir",
			opts: func(t *testing.T) []config.Option {
				blocker := filepath.Join(t.TempDir(), "file")
				require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
				return []config.Option{
					config.WithCatalogSource(writeCatalog(t, testCatalog)),
					config.WithOutputDir(filepath.Join(blocker, "out")),
				}
			},
			wantCode:     apperrors.ErrCodeArtifactWrite,
			wantArtifact: "output-dir",
		},
		{
			name: "unwritable notification",
			opts: func(t *testing.T) []config.Option {
				return []config.Option{
					config.WithCatalogSource(writeCatalog(t, testCatalog)),
					config.WithOutputDir(t.TempDir()),
					config.WithNotificationFile(filepath.Join("missing", "email.txt")),
				}
			},
			wantCode:     apperrors.ErrCodeArtifactWrite,
			wantArtifact: result.ArtifactNotification,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfig(tt.opts(t)...)
			res, err := newTestConfigurator(cfg).Run(context.Background())
			require.Error(t, err)
			assert.Nil(t, res)
			assert.Equal(t, tt.wantCode, apperrors.CodeOf(err))

			if tt.wantArtifact != "" {
				var se *apperrors.StructuredError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, tt.wantArtifact, se.Context["artifact"])
			}
		})
	}
}

func TestRun_NoBundlesWritesNothing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")
	cfg := config.NewConfig(
		config.WithCatalogSource(writeCatalog(t, `[{"Id": "I1", "Categoria": "Inversor", "Potencia em W": 300}]`)),
		config.WithOutputDir(out),
	)

	_, err := newTestConfigurator(cfg).Run(context.Background())
	require.True(t, apperrors.HasCode(err, apperrors.ErrCodeNoBundles))
	assert.NoDirExists(t, out)
}

func TestRun_RandomIDs(t *testing.T) {
	cfg := config.NewConfig(
		config.WithCatalogSource(writeCatalog(t, testCatalog)),
		config.WithOutputDir(t.TempDir()),
	)

	_, err := newTestConfigurator(cfg).Run(context.Background())
	require.NoError(t, err)

	f, err := os.Open(cfg.LineItemsPath())
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	for _, row := range rows[1:] {
		assert.Len(t, row[0], 5)
	}
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, statusSuccess, statusOf(nil))
	assert.Equal(t, statusNoBundles, statusOf(apperrors.New(apperrors.ErrCodeNoBundles, "x")))
	assert.Equal(t, statusError, statusOf(apperrors.New(apperrors.ErrCodeCatalogUnreadable, "x")))
}
