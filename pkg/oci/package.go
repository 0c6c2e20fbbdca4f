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

package oci

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content/file"
	ocilayout "oras.land/oras-go/v2/content/oci"

	"github.com/neosolar/genbundler/pkg/defaults"
	apperrors "github.com/neosolar/genbundler/pkg/errors"
)

// ArtifactType is the artifact type of packaged generator runs.
const ArtifactType = "application/vnd.neosolar.genbundler.run.v1"

// Layer media types by artifact extension.
var mediaTypes = map[string]string{
	".csv":  "text/csv",
	".txt":  "text/plain; charset=utf-8",
	".yaml": "application/yaml",
	".yml":  "application/yaml",
	".json": "application/json",
}

const defaultMediaType = "application/octet-stream"

// PackageOptions configures Package.
type PackageOptions struct {
	// SourceDir is the directory containing the artifacts.
	SourceDir string
	// Files are artifact paths relative to SourceDir, one layer each.
	Files []string
	// LayoutDir is the OCI image layout directory to write.
	LayoutDir string
	// Reference names the artifact; its tag is applied in the layout.
	Reference *Reference
	// Version is recorded as org.opencontainers.image.version.
	Version string
	// Created is recorded as org.opencontainers.image.created.
	Created time.Time
	// Annotations are extra manifest annotations.
	Annotations map[string]string
}

// PackageResult describes a packaged layout.
type PackageResult struct {
	// Digest is the manifest digest.
	Digest string `json:"digest" yaml:"digest"`
	// Reference is the full image reference (registry/repository:tag).
	Reference string `json:"reference" yaml:"reference"`
	// LayoutPath is the OCI image layout directory.
	LayoutPath string `json:"layoutPath" yaml:"layoutPath"`
}

// Package writes the artifacts as a single OCI artifact manifest into a local
// image layout and tags it. Nothing is pushed to a registry.
func Package(ctx context.Context, opts PackageOptions) (*PackageResult, error) {
	if opts.Reference == nil || opts.Reference.Tag == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "tagged OCI reference is required")
	}
	if len(opts.Files) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "no files to package")
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.OCIPackageTimeout)
	defer cancel()

	// Absolute paths avoid ORAS working directory issues.
	absSource, err := filepath.Abs(opts.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve source directory: %w", err)
	}
	absLayout, err := filepath.Abs(opts.LayoutDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve layout directory: %w", err)
	}
	if err := os.MkdirAll(absLayout, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create layout directory: %w", err)
	}

	fs, err := file.New(absSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create file store: %w", err)
	}
	defer func() { _ = fs.Close() }()

	layers := make([]ociv1.Descriptor, 0, len(opts.Files))
	for _, name := range opts.Files {
		mediaType, ok := mediaTypes[filepath.Ext(name)]
		if !ok {
			mediaType = defaultMediaType
		}
		desc, addErr := fs.Add(ctx, filepath.ToSlash(name), mediaType, filepath.Join(absSource, name))
		if addErr != nil {
			return nil, fmt.Errorf("failed to add %s to store: %w", name, addErr)
		}
		layers = append(layers, desc)
	}

	created := opts.Created
	if created.IsZero() {
		created = time.Now()
	}
	annotations := map[string]string{
		ociv1.AnnotationCreated: created.UTC().Format(time.RFC3339),
		ociv1.AnnotationTitle:   opts.Reference.Repository,
		ociv1.AnnotationRefName: opts.Reference.Tag,
	}
	if opts.Version != "" {
		annotations[ociv1.AnnotationVersion] = opts.Version
	}
	for k, v := range opts.Annotations {
		annotations[k] = v
	}

	manifestDesc, err := oras.PackManifest(ctx, fs, oras.PackManifestVersion1_1, ArtifactType,
		oras.PackManifestOptions{
			Layers:              layers,
			ManifestAnnotations: annotations,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to pack manifest: %w", err)
	}

	tag := opts.Reference.Tag
	if err := fs.Tag(ctx, manifestDesc, tag); err != nil {
		return nil, fmt.Errorf("failed to tag manifest in file store: %w", err)
	}

	store, err := ocilayout.New(absLayout)
	if err != nil {
		return nil, fmt.Errorf("failed to open OCI layout %s: %w", absLayout, err)
	}

	desc, err := oras.Copy(ctx, fs, tag, store, tag, oras.DefaultCopyOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to copy artifact into OCI layout: %w", err)
	}

	slog.Debug("packaged OCI layout",
		"reference", opts.Reference.String(),
		"digest", desc.Digest.String(),
		"layers", len(layers),
		"layout", absLayout)

	return &PackageResult{
		Digest:     desc.Digest.String(),
		Reference:  opts.Reference.String(),
		LayoutPath: absLayout,
	}, nil
}
