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
	"math/rand/v2"

	"github.com/neosolar/genbundler/pkg/catalog"
)

// RejectReason explains why a panel was not combined with an inverter.
type RejectReason string

const (
	RejectOversized    RejectReason = "oversized"
	RejectNotDivisible RejectReason = "not_divisible"
	RejectInvalidPower RejectReason = "invalid_power"
)

// Stats describes a generation pass.
type Stats struct {
	Panels             int                  `json:"panels" yaml:"panels"`
	Inverters          int                  `json:"inverters" yaml:"inverters"`
	Controllers        int                  `json:"controllers" yaml:"controllers"`
	Ignored            int                  `json:"ignored" yaml:"ignored"`
	UnmatchedInverters int                  `json:"unmatchedInverters" yaml:"unmatchedInverters"`
	Rejected           map[RejectReason]int `json:"rejected,omitempty" yaml:"rejected,omitempty"`
}

// Result holds the bundles produced by one Generate call.
type Result struct {
	Bundles []Bundle `json:"bundles" yaml:"bundles"`
	Stats   Stats    `json:"stats" yaml:"stats"`
}

// LineItems returns the line item table for all bundles.
func (r *Result) LineItems() Lines {
	return LineItems(r.Bundles)
}

// Option configures a Generator.
type Option func(*Generator)

// WithStrategy sets the bundle identifier strategy.
func WithStrategy(s Strategy) Option {
	return func(g *Generator) {
		g.strategy = s
	}
}

// WithRand sets the random source used by StrategyRandom.
// Tests use a fixed seed for reproducible identifiers.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// Generator matches inverters, controllers and panels into bundles.
type Generator struct {
	strategy Strategy
	rng      *rand.Rand
}

// New returns a Generator with the given options.
func New(opts ...Option) *Generator {
	g := &Generator{strategy: DefaultStrategy}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds every bundle the components allow.
//
// For each inverter, in input order, every controller with exactly the same
// power is paired with every panel whose power divides the inverter power.
// The panel quantity is the quotient. Components of other categories are
// ignored. Identifiers are unique within the call.
func (g *Generator) Generate(components []catalog.Component) *Result {
	var panels, inverters, controllers []catalog.Component
	res := &Result{
		Bundles: []Bundle{},
		Stats:   Stats{Rejected: make(map[RejectReason]int)},
	}

	for _, c := range components {
		switch c.Category {
		case catalog.CategoryPanel:
			panels = append(panels, c)
		case catalog.CategoryInverter:
			inverters = append(inverters, c)
		case catalog.CategoryController:
			controllers = append(controllers, c)
		default:
			res.Stats.Ignored++
		}
	}
	res.Stats.Panels = len(panels)
	res.Stats.Inverters = len(inverters)
	res.Stats.Controllers = len(controllers)

	minter := NewMinter(g.strategy, g.rng)

	for _, inv := range inverters {
		matched := false
		for _, ctrl := range controllers {
			if ctrl.PowerWatts != inv.PowerWatts {
				continue
			}
			matched = true

			for _, p := range panels {
				qty, reason := fit(inv.PowerWatts, p.PowerWatts)
				if reason != "" {
					res.Stats.Rejected[reason]++
					continue
				}
				res.Bundles = append(res.Bundles, Bundle{
					ID:            minter.Mint(),
					Watts:         inv.PowerWatts,
					Panel:         p,
					PanelQuantity: qty,
					Inverter:      inv,
					Controller:    ctrl,
				})
			}
		}
		if !matched {
			res.Stats.UnmatchedInverters++
		}
	}

	return res
}

// fit returns how many panels of panelW make up inverterW exactly.
func fit(inverterW, panelW int) (int, RejectReason) {
	switch {
	case panelW <= 0:
		return 0, RejectInvalidPower
	case panelW > inverterW:
		return 0, RejectOversized
	case inverterW%panelW != 0:
		return 0, RejectNotDivisible
	default:
		return inverterW / panelW, ""
	}
}

// Generate runs a default Generator over components.
func Generate(components []catalog.Component) *Result {
	return New().Generate(components)
}
