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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatFromPath determines the serialization format based on file extension.
// Supported extensions:
//   - .json → FormatJSON
//   - .yaml, .yml → FormatYAML
//   - .csv → FormatCSV
//   - .table, .txt → FormatTable
//
// Returns FormatJSON as default for unknown extensions.
// Extension matching is case-insensitive; query strings on URLs are ignored.
func FormatFromPath(filePath string) Format {
	lowerPath := strings.ToLower(filePath)
	if i := strings.IndexAny(lowerPath, "?#"); i >= 0 {
		lowerPath = lowerPath[:i]
	}
	switch {
	case strings.HasSuffix(lowerPath, ".json"):
		return FormatJSON
	case strings.HasSuffix(lowerPath, ".yaml"), strings.HasSuffix(lowerPath, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lowerPath, ".csv"):
		return FormatCSV
	case strings.HasSuffix(lowerPath, ".table"), strings.HasSuffix(lowerPath, ".txt"):
		return FormatTable
	default:
		slog.Warn("unknown file extension, defaulting to JSON", "filePath", filePath)
		return FormatJSON
	}
}

// Reader handles deserialization of structured data from JSON or YAML.
// It supports reading from any io.Reader source including files, strings, and HTTP responses.
//
// Close must be called to release resources when using NewFileReader.
// It is safe to call Close multiple times and a no-op for non-closeable sources.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a new Reader for deserializing data from an io.Reader source.
//
// Returns error if format is unknown or write-only (table, CSV).
// If input implements io.Closer, it will be closed by Reader.Close().
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if err := checkReadable(format); err != nil {
		return nil, err
	}

	r := &Reader{
		format: format,
		input:  input,
	}

	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}

	return r, nil
}

// NewFileReader creates a new Reader that reads from a local file path.
//
// Example:
//
//	reader, err := NewFileReader(FormatJSON, "produtos.json")
//	if err != nil { return err }
//	defer reader.Close()
func NewFileReader(format Format, filePath string) (*Reader, error) {
	if err := checkReadable(format); err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return &Reader{
		format: format,
		input:  file,
		closer: file,
	}, nil
}

func checkReadable(format Format) error {
	if format.IsUnknown() {
		return fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable || format == FormatCSV {
		return fmt.Errorf("%s format does not support deserialization", format)
	}
	return nil
}

// Close releases the underlying input if it is closeable.
func (r *Reader) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// Deserialize reads data from the input source and unmarshals it into v.
// v must be a pointer compatible with the configured format.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return fmt.Errorf("reader is nil")
	}

	if r.input == nil {
		return fmt.Errorf("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		decoder := json.NewDecoder(r.input)
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil

	case FormatYAML:
		decoder := yaml.NewDecoder(r.input)
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// SourceOptions carries the credentials and endpoints needed by remote sources.
// The zero value uses automatic discovery for every source.
type SourceOptions struct {
	// Kubeconfig is used for cm:// sources. Empty uses default discovery.
	Kubeconfig string
	// S3Region overrides the AWS region for s3:// sources.
	S3Region string
	// S3Endpoint overrides the S3 endpoint, e.g. a MinIO URL.
	S3Endpoint string
	// HTTPReader is used for http(s):// sources. Nil uses NewHttpReader().
	HTTPReader *HttpReader
}

// ReadSource fetches raw content from a local path, an HTTP(S) URL, a
// ConfigMap URI (cm://namespace/name) or an S3 URI (s3://bucket/key) and
// reports the format the content is encoded in.
func ReadSource(ctx context.Context, source string, opts SourceOptions) ([]byte, Format, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, "", fmt.Errorf("source is empty")
	}

	switch {
	case strings.HasPrefix(source, ConfigMapURIScheme):
		namespace, name, err := parseConfigMapURI(source)
		if err != nil {
			return nil, "", fmt.Errorf("invalid ConfigMap URI: %w", err)
		}
		return readConfigMap(ctx, namespace, name, opts.Kubeconfig)

	case strings.HasPrefix(source, S3URIScheme):
		bucket, key, err := parseS3URI(source)
		if err != nil {
			return nil, "", fmt.Errorf("invalid S3 URI: %w", err)
		}
		data, err := readS3Object(ctx, bucket, key, opts)
		if err != nil {
			return nil, "", err
		}
		return data, FormatFromPath(key), nil

	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		hr := opts.HTTPReader
		if hr == nil {
			hr = NewHttpReader()
		}
		data, err := hr.ReadWithContext(ctx, source)
		if err != nil {
			return nil, "", err
		}
		return data, FormatFromPath(source), nil

	default:
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read file: %w", err)
		}
		return data, FormatFromPath(source), nil
	}
}

// FromSource reads and deserializes a T from any source ReadSource supports.
//
// Example:
//
//	records, err := FromSource[[]catalog.Record](ctx, "cm://solar/catalog", SourceOptions{})
func FromSource[T any](ctx context.Context, source string, opts SourceOptions) (*T, error) {
	data, format, err := ReadSource(ctx, source, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", source, err)
	}

	slog.Debug("determined source format",
		slog.String("source", source),
		slog.String("format", string(format)),
		slog.Int("size", len(data)),
	)

	reader, err := NewReader(format, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for %q: %w", source, err)
	}

	var out T
	if err := reader.Deserialize(&out); err != nil {
		return nil, fmt.Errorf("failed to deserialize object from %q: %w", source, err)
	}

	return &out, nil
}

// FromFile is FromSource with a background context and default source options.
func FromFile[T any](path string) (*T, error) {
	return FromSource[T](context.Background(), path, SourceOptions{})
}
