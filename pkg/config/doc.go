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

// Package config provides the run configuration for genbundler.
//
// Config is built with functional options on top of defaults, optionally
// seeded from a YAML or JSON file (LoadFile) and then overridden by command
// line flags.
//
// # Usage
//
//	cfg := config.NewConfig(
//	    config.WithCatalogSource("cm://solar/catalog"),
//	    config.WithOutputDir("./out"),
//	    config.WithIncludeChecksums(true),
//	)
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
// # Defaults
//
//   - CatalogSource: produtos.json
//   - OutputDir: current directory
//   - LineItemsFile: geradores_configurados.csv
//   - NotificationFile: email_marketing.txt
//   - SummaryFile: summary.yaml
//   - IDStrategy: random
//   - IncludeChecksums: false
//   - Version: "dev"
//
// Config is immutable after creation, safe for concurrent use.
package config
