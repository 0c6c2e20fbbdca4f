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
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is the role a component plays in a generator bundle.
type Category string

const (
	CategoryPanel      Category = "Panel"
	CategoryInverter   Category = "Inverter"
	CategoryController Category = "Controller"
	CategoryUnknown    Category = "Unknown"
)

// Catalog labels, as written in the product catalog.
const (
	LabelPanel      = "Painel Solar"
	LabelInverter   = "Inversor"
	LabelController = "Controlador de carga"
)

var labelCategories = map[string]Category{
	foldLabel(LabelPanel):      CategoryPanel,
	foldLabel(LabelInverter):   CategoryInverter,
	foldLabel(LabelController): CategoryController,
}

// ParseCategory maps a catalog label to its Category. Matching ignores case
// and surrounding or repeated whitespace; unrecognized labels map to
// CategoryUnknown.
func ParseCategory(label string) Category {
	if c, ok := labelCategories[foldLabel(label)]; ok {
		return c
	}
	return CategoryUnknown
}

// Label returns the catalog label for c, or the empty string for
// CategoryUnknown.
func (c Category) Label() string {
	switch c {
	case CategoryPanel:
		return LabelPanel
	case CategoryInverter:
		return LabelInverter
	case CategoryController:
		return LabelController
	default:
		return ""
	}
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// Categories lists the categories the generator recognizes, in bundle line order.
func Categories() []Category {
	return []Category{CategoryPanel, CategoryInverter, CategoryController}
}

func foldLabel(label string) string {
	// Casers keep state and are not safe for concurrent use.
	lower := cases.Lower(language.BrazilianPortuguese)
	return lower.String(strings.Join(strings.Fields(label), " "))
}
