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
	apperrors "github.com/neosolar/genbundler/pkg/errors"
	"github.com/neosolar/genbundler/pkg/generator"
	"github.com/neosolar/genbundler/pkg/serializer"
)

// File is the run configuration read with --config. Unset fields keep
// their defaults; command line flags override it.
//
//	catalog: s3://catalogs/produtos.json
//	output: ./out
//	idStrategy: sequential
//	checksums: true
//	s3:
//	  region: sa-east-1
type File struct {
	Catalog          string            `json:"catalog,omitempty" yaml:"catalog,omitempty"`
	Output           string            `json:"output,omitempty" yaml:"output,omitempty"`
	LinesFile        string            `json:"linesFile,omitempty" yaml:"linesFile,omitempty"`
	NotificationFile string            `json:"notificationFile,omitempty" yaml:"notificationFile,omitempty"`
	SummaryFile      *string           `json:"summaryFile,omitempty" yaml:"summaryFile,omitempty"`
	IDStrategy       string            `json:"idStrategy,omitempty" yaml:"idStrategy,omitempty"`
	Checksums        *bool             `json:"checksums,omitempty" yaml:"checksums,omitempty"`
	OCIRef           string            `json:"ociRef,omitempty" yaml:"ociRef,omitempty"`
	Annotations      map[string]string `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	MetricsFile      string            `json:"metricsFile,omitempty" yaml:"metricsFile,omitempty"`
	Kubeconfig       string            `json:"kubeconfig,omitempty" yaml:"kubeconfig,omitempty"`
	S3               S3File            `json:"s3,omitempty" yaml:"s3,omitempty"`
}

// S3File holds S3 catalog settings.
type S3File struct {
	Region   string `json:"region,omitempty" yaml:"region,omitempty"`
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
}

// LoadFile reads a YAML or JSON run configuration.
func LoadFile(path string) (*File, error) {
	f, err := serializer.FromFile[File](path)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"failed to read config file", err, map[string]any{"path": path})
	}
	return f, nil
}

// Options converts the set fields of f into Config options.
func (f *File) Options() []Option {
	if f == nil {
		return nil
	}

	var opts []Option
	set := func(v string, fn func(string) Option) {
		if v != "" {
			opts = append(opts, fn(v))
		}
	}

	set(f.Catalog, WithCatalogSource)
	set(f.Output, WithOutputDir)
	set(f.LinesFile, WithLineItemsFile)
	set(f.NotificationFile, WithNotificationFile)
	set(f.OCIRef, WithOCIReference)
	set(f.MetricsFile, WithMetricsFile)
	set(f.Kubeconfig, WithKubeconfig)
	set(f.S3.Region, WithS3Region)
	set(f.S3.Endpoint, WithS3Endpoint)

	if f.SummaryFile != nil {
		opts = append(opts, WithSummaryFile(*f.SummaryFile))
	}
	if f.IDStrategy != "" {
		opts = append(opts, WithIDStrategy(generator.Strategy(f.IDStrategy)))
	}
	if f.Checksums != nil {
		opts = append(opts, WithIncludeChecksums(*f.Checksums))
	}
	if len(f.Annotations) > 0 {
		opts = append(opts, WithAnnotations(f.Annotations))
	}

	return opts
}
