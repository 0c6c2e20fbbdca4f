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

package generator

import (
	"strconv"

	"github.com/neosolar/genbundler/pkg/catalog"
)

// Bundle is one generator: an inverter, a controller of the same power and
// enough panels of one model to reach that power exactly.
type Bundle struct {
	ID            BundleID          `json:"id" yaml:"id"`
	Watts         int               `json:"watts" yaml:"watts"`
	Panel         catalog.Component `json:"panel" yaml:"panel"`
	PanelQuantity int               `json:"panelQuantity" yaml:"panelQuantity"`
	Inverter      catalog.Component `json:"inverter" yaml:"inverter"`
	Controller    catalog.Component `json:"controller" yaml:"controller"`
}

// LineItems returns the bundle's panel, inverter and controller lines, in that order.
func (b Bundle) LineItems() []LineItem {
	return []LineItem{
		b.line(b.Panel, b.PanelQuantity),
		b.line(b.Inverter, 1),
		b.line(b.Controller, 1),
	}
}

func (b Bundle) line(c catalog.Component, qty int) LineItem {
	return LineItem{
		BundleID:      b.ID,
		BundleWatts:   b.Watts,
		ComponentID:   c.ID,
		ComponentName: c.Name,
		Role:          c.Category,
		Quantity:      qty,
	}
}

// LineItem is one component role within a bundle.
type LineItem struct {
	BundleID      BundleID         `json:"bundleId" yaml:"bundleId"`
	BundleWatts   int              `json:"bundleWatts" yaml:"bundleWatts"`
	ComponentID   string           `json:"componentId" yaml:"componentId"`
	ComponentName string           `json:"componentName" yaml:"componentName"`
	Role          catalog.Category `json:"role" yaml:"role"`
	Quantity      int              `json:"quantity" yaml:"quantity"`
}

// Lines is an ordered line item table.
type Lines []LineItem

// LineColumns is the fixed column order of the line item table.
var LineColumns = []string{"bundleId", "bundleWatts", "componentId", "componentName", "quantity"}

// Columns implements serializer.Tabular.
func (l Lines) Columns() []string {
	cols := make([]string, len(LineColumns))
	copy(cols, LineColumns)
	return cols
}

// Rows implements serializer.Tabular.
func (l Lines) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, item := range l {
		rows = append(rows, []string{
			item.BundleID.String(),
			strconv.Itoa(item.BundleWatts),
			item.ComponentID,
			item.ComponentName,
			strconv.Itoa(item.Quantity),
		})
	}
	return rows
}

// LineItems flattens bundles into line items, preserving bundle order.
func LineItems(bundles []Bundle) Lines {
	items := make(Lines, 0, len(bundles)*3)
	for _, b := range bundles {
		items = append(items, b.LineItems()...)
	}
	return items
}

// CountBundles returns the number of distinct bundle identifiers in items.
func CountBundles(items []LineItem) int {
	seen := make(map[BundleID]struct{})
	for _, item := range items {
		seen[item.BundleID] = struct{}{}
	}
	return len(seen)
}
