// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package result

import (
	"fmt"
	"time"

	"github.com/neosolar/genbundler/pkg/catalog"
	"github.com/neosolar/genbundler/pkg/checksum"
	"github.com/neosolar/genbundler/pkg/generator"
	"github.com/neosolar/genbundler/pkg/header"
	"github.com/neosolar/genbundler/pkg/oci"
)

// Artifact kinds.
const (
	ArtifactLineItems    = "line-items"
	ArtifactNotification = "notification"
	ArtifactChecksums    = "checksums"
	ArtifactSummary      = "summary"
	ArtifactOCILayout    = "oci-layout"
	ArtifactMetrics      = "metrics"
)

// MetadataRunID is the header metadata key holding the run identifier.
const MetadataRunID = "runId"

// Artifact is a file written by the run.
type Artifact struct {
	Kind string `json:"kind" yaml:"kind"`
	Path string `json:"path" yaml:"path"`
	Size int64  `json:"sizeBytes,omitempty" yaml:"sizeBytes,omitempty"`
}

// Output is the outcome of one generator run. Serialized, it is the
// GeneratorReport summary document.
type Output struct {
	header.Header `json:",inline" yaml:",inline"`

	// RunID identifies the run.
	RunID string `json:"runId" yaml:"runId"`

	// CatalogSource is where the catalog was read from.
	CatalogSource string `json:"catalogSource" yaml:"catalogSource"`

	// CatalogCounts is the number of catalog components per category.
	CatalogCounts map[catalog.Category]int `json:"catalogCounts" yaml:"catalogCounts"`

	// IDStrategy is the bundle identifier strategy used.
	IDStrategy generator.Strategy `json:"idStrategy" yaml:"idStrategy"`

	// Bundles is the number of bundles generated.
	Bundles int `json:"bundles" yaml:"bundles"`

	// LineItems is the number of line items written.
	LineItems int `json:"lineItems" yaml:"lineItems"`

	// Stats describes the generation pass.
	Stats generator.Stats `json:"stats" yaml:"stats"`

	// Subject is the notification subject.
	Subject string `json:"subject,omitempty" yaml:"subject,omitempty"`

	// OutputDir is the directory artifacts were written to.
	OutputDir string `json:"outputDir" yaml:"outputDir"`

	// Artifacts lists the files written, in write order.
	Artifacts []Artifact `json:"artifacts" yaml:"artifacts"`

	// Checksums holds the digests written to checksums.txt.
	Checksums []checksum.Entry `json:"checksums,omitempty" yaml:"checksums,omitempty"`

	// OCI describes the packaged image layout.
	OCI *oci.PackageResult `json:"oci,omitempty" yaml:"oci,omitempty"`

	// Duration is the time taken by the run.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// New returns an Output for runID with the report header initialized.
func New(runID, version string, created time.Time) *Output {
	o := &Output{
		RunID:     runID,
		Artifacts: []Artifact{},
	}
	o.Init(header.KindGeneratorReport, version, created)
	o.Metadata[MetadataRunID] = runID
	return o
}

// AddArtifact records a written file.
func (o *Output) AddArtifact(kind, path string, size int64) {
	o.Artifacts = append(o.Artifacts, Artifact{Kind: kind, Path: path, Size: size})
}

// Artifact returns the path of the first artifact of kind, or "".
func (o *Output) Artifact(kind string) string {
	for _, a := range o.Artifacts {
		if a.Kind == kind {
			return a.Path
		}
	}
	return ""
}

// TotalSize returns the total size in bytes of all artifacts.
func (o *Output) TotalSize() int64 {
	var total int64
	for _, a := range o.Artifacts {
		total += a.Size
	}
	return total
}

// Summary returns a human-readable summary of the run.
func (o *Output) Summary() string {
	return fmt.Sprintf(
		"Generated %d bundles (%d line items) from %s. Wrote %d files (%s) in %v.",
		o.Bundles,
		o.LineItems,
		o.CatalogSource,
		len(o.Artifacts),
		formatBytes(o.TotalSize()),
		o.Duration.Round(time.Millisecond),
	)
}

// Messages returns the operator-facing completion messages.
func (o *Output) Messages() []string {
	msgs := []string{
		"Processo concluído com sucesso!",
		fmt.Sprintf("Foram configurados %d geradores.", o.Bundles),
	}
	if p := o.Artifact(ArtifactLineItems); p != "" {
		msgs = append(msgs, "Arquivo CSV gerado: "+p)
	}
	if p := o.Artifact(ArtifactNotification); p != "" {
		msgs = append(msgs, "Arquivo de e-mail gerado: "+p)
	}
	for _, kind := range []string{ArtifactChecksums, ArtifactSummary, ArtifactMetrics} {
		if p := o.Artifact(kind); p != "" {
			msgs = append(msgs, fmt.Sprintf("Arquivo %s gerado: %s", kind, p))
		}
	}
	if o.OCI != nil {
		msgs = append(msgs, fmt.Sprintf("Layout OCI gerado: %s (%s@%s)", o.OCI.LayoutPath, o.OCI.Reference, o.OCI.Digest))
	}
	return msgs
}

// formatBytes formats bytes into human-readable format.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
