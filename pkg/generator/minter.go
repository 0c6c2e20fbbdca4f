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
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"
)

// Strategy selects how bundle identifiers are minted.
type Strategy string

const (
	// StrategyRandom draws five-digit numbers and redraws on collision.
	StrategyRandom Strategy = "random"
	// StrategySequential counts up from 1.
	StrategySequential Strategy = "sequential"
	// StrategyUUID mints random UUIDs.
	StrategyUUID Strategy = "uuid"
)

// DefaultStrategy is used when no strategy is configured.
const DefaultStrategy = StrategyRandom

// Random identifier space, inclusive.
const (
	RandomIDMin = 10000
	RandomIDMax = 99999
)

// Strategies returns the supported strategy names.
func Strategies() []string {
	return []string{string(StrategyRandom), string(StrategySequential), string(StrategyUUID)}
}

// ParseStrategy returns the Strategy named s. The empty string selects
// DefaultStrategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "":
		return DefaultStrategy, nil
	case StrategyRandom, StrategySequential, StrategyUUID:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("unknown id strategy %q, supported: %v", s, Strategies())
	}
}

// BundleID identifies a bundle within one run.
type BundleID string

// String returns the identifier text.
func (id BundleID) String() string {
	return string(id)
}

// Minter hands out bundle identifiers that are unique for its lifetime.
// A Minter is not safe for concurrent use.
type Minter struct {
	strategy Strategy
	rng      *rand.Rand
	used     map[BundleID]struct{}
	inRange  int
	next     int
}

// NewMinter returns a Minter for strategy. Unknown strategies fall back to
// DefaultStrategy. A nil rng uses a randomly seeded source.
func NewMinter(strategy Strategy, rng *rand.Rand) *Minter {
	if _, err := ParseStrategy(string(strategy)); err != nil || strategy == "" {
		strategy = DefaultStrategy
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // identifiers, not secrets
	}
	return &Minter{
		strategy: strategy,
		rng:      rng,
		used:     make(map[BundleID]struct{}),
	}
}

// Mint returns an identifier not returned before by this Minter.
func (m *Minter) Mint() BundleID {
	for {
		id := m.candidate()
		if _, taken := m.used[id]; taken {
			continue
		}
		m.used[id] = struct{}{}
		if m.strategy == StrategyRandom && m.next == 0 {
			m.inRange++
		}
		return id
	}
}

// Len returns the number of identifiers minted so far.
func (m *Minter) Len() int {
	return len(m.used)
}

func (m *Minter) candidate() BundleID {
	switch m.strategy {
	case StrategySequential:
		m.next++
		return BundleID(strconv.Itoa(m.next))
	case StrategyUUID:
		return BundleID(uuid.NewString())
	default:
		// Once every five-digit value is taken, continue above the range.
		if m.inRange >= RandomIDMax-RandomIDMin+1 {
			if m.next == 0 {
				m.next = RandomIDMax
			}
			m.next++
			return BundleID(strconv.Itoa(m.next))
		}
		return BundleID(strconv.Itoa(RandomIDMin + m.rng.IntN(RandomIDMax-RandomIDMin+1)))
	}
}
