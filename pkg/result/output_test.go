package result

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/neosolar/genbundler/pkg/header"
	"github.com/neosolar/genbundler/pkg/oci"
)

func TestNew(t *testing.T) {
	created := time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC)
	o := New("run-1", "v1.0.0", created)

	assert.Equal(t, header.KindGeneratorReport, o.Kind)
	assert.Equal(t, header.APIVersion, o.APIVersion)
	assert.Equal(t, "run-1", o.Metadata[MetadataRunID])
	assert.Equal(t, "v1.0.0", o.Metadata[header.MetadataVersion])
	assert.Equal(t, "2026-10-12T09:00:00Z", o.Metadata[header.MetadataTimestamp])
	assert.Empty(t, o.Artifacts)
}

func TestOutput_Artifacts(t *testing.T) {
	o := New("r", "", time.Now())
	o.AddArtifact(ArtifactLineItems, "out/lines.csv", 1000)
	o.AddArtifact(ArtifactNotification, "out/mail.txt", 2048)

	assert.Equal(t, "out/lines.csv", o.Artifact(ArtifactLineItems))
	assert.Empty(t, o.Artifact(ArtifactSummary))
	assert.Equal(t, int64(3048), o.TotalSize())
}

func TestOutput_Summary(t *testing.T) {
	o := New("r", "", time.Now())
	o.Bundles = 4
	o.LineItems = 12
	o.CatalogSource = "produtos.json"
	o.Duration = 1500 * time.Millisecond
	o.AddArtifact(ArtifactLineItems, "lines.csv", 2*1024*1024)

	assert.Equal(t, "Generated 4 bundles (12 line items) from produtos.json. Wrote 1 files (2.0 MB) in 1.5s.", o.Summary())
}

func TestOutput_Messages(t *testing.T) {
	o := New("r", "", time.Now())
	o.Bundles = 2
	o.AddArtifact(ArtifactLineItems, "out/geradores_configurados.csv", 10)
	o.AddArtifact(ArtifactNotification, "out/email_marketing.txt", 10)
	o.AddArtifact(ArtifactChecksums, "out/checksums.txt", 10)
	o.OCI = &oci.PackageResult{Digest: "sha256:abc", Reference: "localhost/g:w41", LayoutPath: "/out/oci-layout"}

	msgs := o.Messages()
	assert.Equal(t, []string{
		"Processo concluído com sucesso!",
		"Foram configurados 2 geradores.",
		"Arquivo CSV gerado: out/geradores_configurados.csv",
		"Arquivo de e-mail gerado: out/email_marketing.txt",
		"Arquivo checksums gerado: out/checksums.txt",
		"Layout OCI gerado: /out/oci-layout (localhost/g:w41@sha256:abc)",
	}, msgs)
}

func TestOutput_YAML(t *testing.T) {
	o := New("run-7", "v1", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	o.Bundles = 1
	o.AddArtifact(ArtifactLineItems, "lines.csv", 0)

	data, err := yaml.Marshal(o)
	require.NoError(t, err)
	doc := string(data)
	assert.True(t, strings.HasPrefix(doc, "kind: GeneratorReport\n"), doc)
	assert.Contains(t, doc, "runId: run-7")
	assert.Contains(t, doc, "bundles: 1")
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatBytes(tt.in))
	}
}
