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

package configurator

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/neosolar/genbundler/pkg/catalog"
	"github.com/neosolar/genbundler/pkg/checksum"
	"github.com/neosolar/genbundler/pkg/config"
	apperrors "github.com/neosolar/genbundler/pkg/errors"
	"github.com/neosolar/genbundler/pkg/generator"
	"github.com/neosolar/genbundler/pkg/oci"
	"github.com/neosolar/genbundler/pkg/report"
	"github.com/neosolar/genbundler/pkg/result"
	"github.com/neosolar/genbundler/pkg/serializer"
)

// Option configures a Configurator.
type Option func(*Configurator)

// WithClock sets the time source for the notification date and document
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Configurator) {
		if now != nil {
			c.now = now
		}
	}
}

// WithRand sets the random source for bundle identifiers.
func WithRand(rng *rand.Rand) Option {
	return func(c *Configurator) {
		c.rng = rng
	}
}

// WithRunID sets the run identifier instead of a random UUID.
func WithRunID(id string) Option {
	return func(c *Configurator) {
		c.runID = id
	}
}

// Configurator runs the generator pipeline: load the catalog, generate
// bundles, write the artifacts.
type Configurator struct {
	cfg   *config.Config
	now   func() time.Time
	rng   *rand.Rand
	runID string
}

// New returns a Configurator for cfg.
func New(cfg *config.Config, opts ...Option) *Configurator {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	c := &Configurator{
		cfg: cfg,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes one generator run.
//
// Errors carry a code: INVALID_REQUEST for bad configuration,
// CATALOG_UNREADABLE when the catalog cannot be loaded, NO_BUNDLES when the
// catalog yields no bundle (nothing is written), ARTIFACT_WRITE_FAILURE
// naming the failed artifact, and INTERNAL when OCI packaging fails.
func (c *Configurator) Run(ctx context.Context) (out *result.Output, err error) {
	start := time.Now()
	defer func() {
		runTotal.WithLabelValues(statusOf(err)).Inc()
		runDuration.Observe(time.Since(start).Seconds())
		if mErr := c.writeMetrics(out); mErr != nil {
			if err == nil {
				out, err = nil, mErr
			} else {
				slog.Error("failed to write metrics", "error", mErr)
			}
		}
	}()

	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}

	runID := c.runID
	if runID == "" {
		runID = uuid.NewString()
	}
	created := c.now()
	out = result.New(runID, c.cfg.Version(), created)
	out.OutputDir = c.cfg.OutputDir()
	out.IDStrategy = c.cfg.IDStrategy()

	slog.Info("starting generator run",
		"run_id", runID,
		"catalog", c.cfg.CatalogSource(),
		"output", c.cfg.OutputDir(),
		"id_strategy", c.cfg.IDStrategy())

	// Load
	stage := time.Now()
	cat, err := catalog.Load(ctx, c.cfg.CatalogSource(),
		catalog.WithSourceOptions(c.cfg.SourceOptions()),
		catalog.WithVersion(c.cfg.Version()),
		catalog.WithClock(c.now))
	stageDuration.WithLabelValues("load").Observe(time.Since(stage).Seconds())
	if err != nil {
		return nil, err
	}
	out.CatalogSource = cat.Source
	out.CatalogCounts = cat.Counts()
	recordCatalog(out.CatalogCounts)

	slog.Info("catalog loaded",
		"components", len(cat.Items),
		"skipped", cat.Skipped,
		"panels", out.CatalogCounts[catalog.CategoryPanel],
		"inverters", out.CatalogCounts[catalog.CategoryInverter],
		"controllers", out.CatalogCounts[catalog.CategoryController])

	// Generate
	stage = time.Now()
	gen := generator.New(
		generator.WithStrategy(c.cfg.IDStrategy()),
		generator.WithRand(c.rng))
	res := gen.Generate(cat.Components())
	items := res.LineItems()
	stageDuration.WithLabelValues("generate").Observe(time.Since(stage).Seconds())
	recordGeneration(res, len(items))

	out.Stats = res.Stats
	out.Bundles = len(res.Bundles)
	out.LineItems = len(items)

	if len(res.Bundles) == 0 {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeNoBundles,
			"no compatible inverter, controller and panel combination in catalog",
			map[string]any{
				"source":              cat.Source,
				"inverters":           res.Stats.Inverters,
				"controllers":         res.Stats.Controllers,
				"panels":              res.Stats.Panels,
				"unmatched_inverters": res.Stats.UnmatchedInverters,
			})
	}

	slog.Info("bundles generated",
		"bundles", out.Bundles,
		"line_items", out.LineItems,
		"unmatched_inverters", res.Stats.UnmatchedInverters)

	// Write
	stage = time.Now()
	if err := c.writeArtifacts(ctx, out, items, start); err != nil {
		return nil, err
	}
	stageDuration.WithLabelValues("write").Observe(time.Since(stage).Seconds())

	// Package
	if c.cfg.OCIReference() != "" {
		stage = time.Now()
		if err := c.packageLayout(ctx, out, created); err != nil {
			return nil, err
		}
		stageDuration.WithLabelValues("package").Observe(time.Since(stage).Seconds())
	}

	out.Duration = time.Since(start)
	slog.Info("generator run complete", "summary", out.Summary())

	return out, nil
}

func (c *Configurator) writeArtifacts(ctx context.Context, out *result.Output, items generator.Lines, start time.Time) error {
	dir := c.cfg.OutputDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return artifactError("output-dir", dir, err)
	}

	linesPath := c.cfg.LineItemsPath()
	if err := writeLineItems(ctx, linesPath, items); err != nil {
		return artifactError(result.ArtifactLineItems, linesPath, err)
	}
	if err := addArtifact(out, result.ArtifactLineItems, linesPath); err != nil {
		return err
	}

	notification := report.Compose(items, c.now())
	out.Subject = notification.Subject
	notificationPath := c.cfg.NotificationPath()
	if err := serializer.WriteToFile(notificationPath, notification.Bytes()); err != nil {
		return artifactError(result.ArtifactNotification, notificationPath, err)
	}
	if err := addArtifact(out, result.ArtifactNotification, notificationPath); err != nil {
		return err
	}

	if c.cfg.IncludeChecksums() {
		entries, err := checksum.GenerateChecksums(ctx, dir, []string{linesPath, notificationPath})
		if err != nil {
			return artifactError(result.ArtifactChecksums, c.cfg.ChecksumsPath(), err)
		}
		out.Checksums = entries
		if err := addArtifact(out, result.ArtifactChecksums, c.cfg.ChecksumsPath()); err != nil {
			return err
		}
	}

	if summaryPath := c.cfg.SummaryPath(); summaryPath != "" {
		out.Duration = time.Since(start)
		if err := writeSummary(ctx, summaryPath, out); err != nil {
			return artifactError(result.ArtifactSummary, summaryPath, err)
		}
		if err := addArtifact(out, result.ArtifactSummary, summaryPath); err != nil {
			return err
		}
	}

	return nil
}

func writeLineItems(ctx context.Context, path string, items generator.Lines) error {
	w, err := serializer.NewFileWriter(serializer.FormatCSV, path)
	if err != nil {
		return err
	}
	if err := w.Serialize(ctx, items); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func writeSummary(ctx context.Context, path string, out *result.Output) error {
	format := serializer.FormatYAML
	if serializer.FormatFromPath(path) == serializer.FormatJSON {
		format = serializer.FormatJSON
	}

	w, err := serializer.NewFileWriter(format, path)
	if err != nil {
		return err
	}
	if err := w.Serialize(ctx, out); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func (c *Configurator) packageLayout(ctx context.Context, out *result.Output, created time.Time) error {
	ref, err := oci.ParseReference(c.cfg.OCIReference())
	if err != nil {
		return err
	}

	dir := c.cfg.OutputDir()
	files := make([]string, 0, len(out.Artifacts))
	for _, a := range out.Artifacts {
		rel, relErr := filepath.Rel(dir, a.Path)
		if relErr != nil {
			rel = a.Path
		}
		files = append(files, rel)
	}

	pkg, err := oci.Package(ctx, oci.PackageOptions{
		SourceDir:   dir,
		Files:       files,
		LayoutDir:   c.cfg.OCILayoutPath(),
		Reference:   ref,
		Version:     c.cfg.Version(),
		Created:     created,
		Annotations: c.cfg.Annotations(),
	})
	if err != nil {
		return apperrors.WrapWithContext(apperrors.ErrCodeInternal, "failed to package OCI layout", err,
			map[string]any{"artifact": result.ArtifactOCILayout, "path": c.cfg.OCILayoutPath()})
	}

	out.OCI = pkg
	out.AddArtifact(result.ArtifactOCILayout, c.cfg.OCILayoutPath(), 0)
	slog.Info("packaged OCI layout", "reference", pkg.Reference, "digest", pkg.Digest)
	return nil
}

func (c *Configurator) writeMetrics(out *result.Output) error {
	path := c.cfg.MetricsFile()
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return artifactError(result.ArtifactMetrics, path, err)
	}
	if out != nil {
		return addArtifact(out, result.ArtifactMetrics, path)
	}
	return nil
}

func addArtifact(out *result.Output, kind, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return artifactError(kind, path, err)
	}
	out.AddArtifact(kind, path, info.Size())
	slog.Debug("artifact written", "kind", kind, "path", path, "size", info.Size())
	return nil
}

func artifactError(kind, path string, err error) error {
	return apperrors.WrapWithContext(apperrors.ErrCodeArtifactWrite,
		fmt.Sprintf("failed to write %s artifact", kind), err,
		map[string]any{"artifact": kind, "path": path})
}

func statusOf(err error) string {
	switch {
	case err == nil:
		return statusSuccess
	case apperrors.HasCode(err, apperrors.ErrCodeNoBundles):
		return statusNoBundles
	default:
		return statusError
	}
}
