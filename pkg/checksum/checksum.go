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

package checksum

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/neosolar/genbundler/pkg/defaults"
)

// Entry is the SHA256 digest of one artifact.
type Entry struct {
	// Path is relative to the directory the checksums file lives in.
	Path   string `json:"path" yaml:"path"`
	SHA256 string `json:"sha256" yaml:"sha256"`
}

// File computes the hex SHA256 digest of the file at path.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s for checksum: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to read %s for checksum: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Compute returns sorted checksum entries for files, with paths relative to baseDir.
func Compute(ctx context.Context, baseDir string, files []string) ([]Entry, error) {
	entries := make([]Entry, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("context cancelled: %w", err)
		}

		sum, err := File(file)
		if err != nil {
			return nil, err
		}

		relPath, err := filepath.Rel(baseDir, file)
		if err != nil {
			relPath = file
		}
		entries = append(entries, Entry{Path: filepath.ToSlash(relPath), SHA256: sum})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}

// GenerateChecksums writes a checksums.txt file into baseDir for files, in
// the "<sha256>  <path>" format read by sha256sum -c.
func GenerateChecksums(ctx context.Context, baseDir string, files []string) ([]Entry, error) {
	entries, err := Compute(ctx, baseDir, files)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s  %s", e.SHA256, e.Path))
	}

	checksumPath := GetChecksumFilePath(baseDir)
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(checksumPath, []byte(content), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write checksums: %w", err)
	}

	slog.Debug("checksums generated",
		"file_count", len(entries),
		"path", checksumPath,
	)

	return entries, nil
}

// GetChecksumFilePath returns the full path to the checksums.txt file
// in the given directory.
func GetChecksumFilePath(baseDir string) string {
	return filepath.Join(baseDir, defaults.ChecksumsFile)
}
