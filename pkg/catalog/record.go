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
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Record is one entry of the stored product catalog.
type Record struct {
	ID       ID      `json:"Id" yaml:"Id"`
	Name     string  `json:"Produto" yaml:"Produto"`
	Category string  `json:"Categoria" yaml:"Categoria"`
	Power    float64 `json:"Potencia em W" yaml:"Potencia em W"`
}

// ID is an opaque product identifier. Catalogs carry it either as a string
// or as a number; numbers keep their decimal text.
type ID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid Id: %w", err)
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid Id %s: must be a string or number", data)
	}
	*id = ID(n.String())
	return nil
}

// UnmarshalYAML accepts any scalar.
func (id *ID) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid Id at line %d: must be a scalar", value.Line)
	}
	if value.Tag == "!!null" {
		*id = ""
		return nil
	}
	*id = ID(value.Value)
	return nil
}

// String returns the identifier text.
func (id ID) String() string {
	return string(id)
}

// watts returns the record power as a whole number of watts, or an error
// when the power is not a positive integer.
func (r Record) watts() (int, error) {
	if r.Power <= 0 {
		return 0, fmt.Errorf("power %s must be positive", formatPower(r.Power))
	}
	if r.Power > math.MaxInt32 {
		return 0, fmt.Errorf("power %s is out of range", formatPower(r.Power))
	}
	w := int(r.Power)
	if float64(w) != r.Power {
		return 0, fmt.Errorf("power %s is not a whole number of watts", formatPower(r.Power))
	}
	return w, nil
}

func formatPower(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
