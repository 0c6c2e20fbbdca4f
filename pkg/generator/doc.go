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

// Package generator builds solar generator bundles from catalog components.
//
// A bundle pairs one inverter with one controller of identical power and
// one panel model whose power divides the inverter power with no remainder.
// The panel quantity is inverter power / panel power, so every bundle is
// sized to the inverter exactly. Panels that are larger than the inverter,
// or that do not tile it, are skipped; so are inverters with no matching
// controller. Neither case is an error.
//
// Iteration follows input order: inverters, then their controllers, then
// panels. Output is deterministic apart from the identifier values.
//
// Each bundle expands to three line items in the order panel, inverter,
// controller:
//
//	g := generator.New(generator.WithStrategy(generator.StrategySequential))
//	res := g.Generate(cat.Components())
//	items := res.LineItems()
//	n := generator.CountBundles(items)
//
// # Identifiers
//
// Bundle identifiers are unique within one Generate call. StrategyRandom
// draws five-digit numbers (10000-99999) and redraws on collision,
// continuing above 99999 once the range is used up. StrategySequential
// counts from 1 and StrategyUUID mints random UUIDs.
//
// Generation performs no I/O, logging or metrics; callers report Result.Stats.
package generator
