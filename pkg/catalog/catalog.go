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

package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/neosolar/genbundler/pkg/defaults"
	apperrors "github.com/neosolar/genbundler/pkg/errors"
	"github.com/neosolar/genbundler/pkg/header"
	"github.com/neosolar/genbundler/pkg/serializer"
)

// Component is a catalog product the generator can place in a bundle.
type Component struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Category   Category `json:"category" yaml:"category"`
	PowerWatts int      `json:"powerWatts" yaml:"powerWatts"`
}

// Catalog is the decoded product catalog in source order.
type Catalog struct {
	header.Header `json:",inline" yaml:",inline"`

	Source  string           `json:"source" yaml:"source"`
	Items   []Component      `json:"components" yaml:"components"`
	Totals  map[Category]int `json:"counts" yaml:"counts"`
	Skipped int              `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// Components returns the catalog components in source order.
func (c *Catalog) Components() []Component {
	out := make([]Component, len(c.Items))
	copy(out, c.Items)
	return out
}

// Counts returns the number of components per category.
func (c *Catalog) Counts() map[Category]int {
	out := make(map[Category]int, len(c.Totals))
	for k, v := range c.Totals {
		out[k] = v
	}
	return out
}

// Columns implements serializer.Tabular.
func (c *Catalog) Columns() []string {
	return []string{"id", "name", "category", "powerWatts"}
}

// Rows implements serializer.Tabular.
func (c *Catalog) Rows() [][]string {
	rows := make([][]string, 0, len(c.Items))
	for _, item := range c.Items {
		rows = append(rows, []string{item.ID, item.Name, string(item.Category), strconv.Itoa(item.PowerWatts)})
	}
	return rows
}

// Option configures Load.
type Option func(*loader)

type loader struct {
	source  serializer.SourceOptions
	version string
	now     func() time.Time
}

// WithSourceOptions sets the credentials and endpoints for remote sources.
func WithSourceOptions(opts serializer.SourceOptions) Option {
	return func(l *loader) {
		l.source = opts
	}
}

// WithVersion stamps the tool version into the catalog header.
func WithVersion(version string) Option {
	return func(l *loader) {
		l.version = version
	}
}

// WithClock overrides the time source for the header timestamp.
func WithClock(now func() time.Time) Option {
	return func(l *loader) {
		if now != nil {
			l.now = now
		}
	}
}

// Load reads the catalog at source (local path, http(s) URL, cm://namespace/name
// or s3://bucket/key) and decodes it into components.
//
// A source that cannot be read or parsed, or that holds no records, yields a
// CATALOG_UNREADABLE error. Records whose power is not a positive whole number
// of watts are skipped.
func Load(ctx context.Context, source string, opts ...Option) (*Catalog, error) {
	l := &loader{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}

	errCtx := map[string]any{"source": source}

	ctx, cancel := context.WithTimeout(ctx, defaults.CatalogLoadTimeout)
	defer cancel()

	records, err := serializer.FromSource[[]Record](ctx, source, l.source)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeCatalogUnreadable,
			"failed to load catalog", err, errCtx)
	}
	if records == nil || len(*records) == 0 {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeCatalogUnreadable,
			"catalog has no data", errCtx)
	}

	cat := FromRecords(*records)
	cat.Source = source
	cat.Init(header.KindCatalog, l.version, l.now())

	slog.Debug("catalog loaded",
		"source", source,
		"records", len(*records),
		"components", len(cat.Items),
		"skipped", cat.Skipped)

	return cat, nil
}

// FromRecords converts records into a Catalog without a header or source.
func FromRecords(records []Record) *Catalog {
	cat := &Catalog{
		Items:  make([]Component, 0, len(records)),
		Totals: make(map[Category]int),
	}

	for i, r := range records {
		w, err := r.watts()
		if err != nil {
			slog.Warn("skipping catalog record",
				"index", i,
				"id", r.ID.String(),
				"name", r.Name,
				"error", err)
			cat.Skipped++
			continue
		}

		category := ParseCategory(r.Category)
		if category == CategoryUnknown {
			slog.Debug("unrecognized category",
				"id", r.ID.String(),
				"category", r.Category)
		}

		cat.Items = append(cat.Items, Component{
			ID:         r.ID.String(),
			Name:       r.Name,
			Category:   category,
			PowerWatts: w,
		})
		cat.Totals[category]++
	}

	return cat
}

// String returns a one-line summary of the catalog.
func (c *Catalog) String() string {
	return fmt.Sprintf("%d components (%d panels, %d inverters, %d controllers, %d other) from %s",
		len(c.Items),
		c.Totals[CategoryPanel],
		c.Totals[CategoryInverter],
		c.Totals[CategoryController],
		c.Totals[CategoryUnknown],
		c.Source)
}
