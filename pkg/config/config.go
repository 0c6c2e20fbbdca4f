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

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/neosolar/genbundler/pkg/defaults"
	apperrors "github.com/neosolar/genbundler/pkg/errors"
	"github.com/neosolar/genbundler/pkg/generator"
	"github.com/neosolar/genbundler/pkg/oci"
	"github.com/neosolar/genbundler/pkg/serializer"
)

// Config holds the settings for one generator run.
// Config is immutable after creation.
type Config struct {
	// catalogSource is the catalog path, URL, cm:// or s3:// URI.
	catalogSource string

	// outputDir receives every artifact of the run.
	outputDir string

	// lineItemsFile is the line item CSV name, relative to outputDir.
	lineItemsFile string

	// notificationFile is the notification text name, relative to outputDir.
	notificationFile string

	// summaryFile is the run summary name; empty disables the summary.
	summaryFile string

	idStrategy generator.Strategy

	// includeChecksums writes checksums.txt over the artifacts.
	includeChecksums bool

	// ociReference packages the artifacts into a local OCI layout when set.
	ociReference string

	// annotations are added to the OCI manifest.
	annotations map[string]string

	// metricsFile dumps run metrics in Prometheus text format when set.
	metricsFile string

	kubeconfig string
	s3Region   string
	s3Endpoint string

	// version is the genbundler version stamped on documents.
	version string
}

// CatalogSource returns the catalog source.
func (c *Config) CatalogSource() string {
	return c.catalogSource
}

// OutputDir returns the artifact directory.
func (c *Config) OutputDir() string {
	return c.outputDir
}

// LineItemsFile returns the line item CSV file name.
func (c *Config) LineItemsFile() string {
	return c.lineItemsFile
}

// NotificationFile returns the notification file name.
func (c *Config) NotificationFile() string {
	return c.notificationFile
}

// SummaryFile returns the run summary file name, empty when disabled.
func (c *Config) SummaryFile() string {
	return c.summaryFile
}

// IDStrategy returns the bundle identifier strategy.
func (c *Config) IDStrategy() generator.Strategy {
	return c.idStrategy
}

// IncludeChecksums returns the include checksums setting.
func (c *Config) IncludeChecksums() bool {
	return c.includeChecksums
}

// OCIReference returns the OCI reference for the packaged layout.
func (c *Config) OCIReference() string {
	return c.ociReference
}

// Annotations returns a copy of the OCI manifest annotations.
func (c *Config) Annotations() map[string]string {
	annotations := make(map[string]string, len(c.annotations))
	for k, v := range c.annotations {
		annotations[k] = v
	}
	return annotations
}

// MetricsFile returns the metrics textfile path.
func (c *Config) MetricsFile() string {
	return c.metricsFile
}

// Version returns the genbundler version.
func (c *Config) Version() string {
	return c.version
}

// SourceOptions returns the remote catalog source settings.
func (c *Config) SourceOptions() serializer.SourceOptions {
	return serializer.SourceOptions{
		Kubeconfig: c.kubeconfig,
		S3Region:   c.s3Region,
		S3Endpoint: c.s3Endpoint,
	}
}

// LineItemsPath returns the line item CSV path.
func (c *Config) LineItemsPath() string {
	return c.artifactPath(c.lineItemsFile)
}

// NotificationPath returns the notification path.
func (c *Config) NotificationPath() string {
	return c.artifactPath(c.notificationFile)
}

// SummaryPath returns the summary path, or empty when the summary is disabled.
func (c *Config) SummaryPath() string {
	if c.summaryFile == "" {
		return ""
	}
	return c.artifactPath(c.summaryFile)
}

// ChecksumsPath returns the checksums file path.
func (c *Config) ChecksumsPath() string {
	return c.artifactPath(defaults.ChecksumsFile)
}

// OCILayoutPath returns the OCI image layout directory.
func (c *Config) OCILayoutPath() string {
	return c.artifactPath(defaults.OCILayoutDir)
}

func (c *Config) artifactPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.outputDir, name)
}

// Validate checks if the Config has valid settings.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.catalogSource) == "" {
		return invalid("catalog source cannot be empty")
	}
	if strings.TrimSpace(c.outputDir) == "" {
		return invalid("output directory cannot be empty")
	}
	if strings.TrimSpace(c.lineItemsFile) == "" {
		return invalid("line items file cannot be empty")
	}
	if strings.TrimSpace(c.notificationFile) == "" {
		return invalid("notification file cannot be empty")
	}

	names := map[string]string{}
	for kind, name := range map[string]string{
		"line items":   c.LineItemsPath(),
		"notification": c.NotificationPath(),
		"summary":      c.SummaryPath(),
		"checksums":    c.ChecksumsPath(),
	} {
		if name == "" || (kind == "checksums" && !c.includeChecksums) {
			continue
		}
		clean := filepath.Clean(name)
		if other, ok := names[clean]; ok {
			return invalid(fmt.Sprintf("%s and %s artifacts share the path %s", other, kind, clean))
		}
		names[clean] = kind
	}

	if _, err := generator.ParseStrategy(string(c.idStrategy)); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid id strategy", err)
	}

	if c.ociReference != "" {
		if _, err := oci.ParseReference(c.ociReference); err != nil {
			return err
		}
	}

	return nil
}

func invalid(msg string) error {
	return apperrors.New(apperrors.ErrCodeInvalidRequest, msg)
}

type Option func(*Config)

// WithCatalogSource sets the catalog path, URL, cm:// or s3:// URI.
func WithCatalogSource(source string) Option {
	return func(c *Config) {
		c.catalogSource = source
	}
}

// WithOutputDir sets the artifact directory.
func WithOutputDir(dir string) Option {
	return func(c *Config) {
		c.outputDir = dir
	}
}

// WithLineItemsFile sets the line item CSV file name.
func WithLineItemsFile(name string) Option {
	return func(c *Config) {
		c.lineItemsFile = name
	}
}

// WithNotificationFile sets the notification file name.
func WithNotificationFile(name string) Option {
	return func(c *Config) {
		c.notificationFile = name
	}
}

// WithSummaryFile sets the run summary file name. Empty disables the summary.
func WithSummaryFile(name string) Option {
	return func(c *Config) {
		c.summaryFile = name
	}
}

// WithIDStrategy sets the bundle identifier strategy.
func WithIDStrategy(s generator.Strategy) Option {
	return func(c *Config) {
		c.idStrategy = s
	}
}

// WithIncludeChecksums sets whether a checksums file should be written.
func WithIncludeChecksums(enabled bool) Option {
	return func(c *Config) {
		c.includeChecksums = enabled
	}
}

// WithOCIReference sets the reference the OCI layout is tagged with.
func WithOCIReference(ref string) Option {
	return func(c *Config) {
		c.ociReference = ref
	}
}

// WithAnnotations adds OCI manifest annotations.
func WithAnnotations(annotations map[string]string) Option {
	return func(c *Config) {
		for k, v := range annotations {
			c.annotations[k] = v
		}
	}
}

// WithMetricsFile sets the Prometheus textfile path.
func WithMetricsFile(path string) Option {
	return func(c *Config) {
		c.metricsFile = path
	}
}

// WithKubeconfig sets the kubeconfig used for cm:// catalogs.
func WithKubeconfig(path string) Option {
	return func(c *Config) {
		c.kubeconfig = path
	}
}

// WithS3Region sets the AWS region for s3:// catalogs.
func WithS3Region(region string) Option {
	return func(c *Config) {
		c.s3Region = region
	}
}

// WithS3Endpoint sets a custom S3 endpoint, e.g. MinIO.
func WithS3Endpoint(endpoint string) Option {
	return func(c *Config) {
		c.s3Endpoint = endpoint
	}
}

// WithVersion sets the genbundler version.
func WithVersion(version string) Option {
	return func(c *Config) {
		c.version = version
	}
}

// NewConfig returns a Config with default values.
func NewConfig(options ...Option) *Config {
	c := &Config{
		catalogSource:    defaults.CatalogSource,
		outputDir:        defaults.OutputDir,
		lineItemsFile:    defaults.LineItemsFile,
		notificationFile: defaults.NotificationFile,
		summaryFile:      defaults.SummaryFile,
		idStrategy:       generator.DefaultStrategy,
		annotations:      make(map[string]string),
		version:          "dev",
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}
