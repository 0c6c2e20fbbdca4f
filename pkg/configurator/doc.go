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

// Package configurator runs the genbundler pipeline.
//
// A run loads the catalog, generates bundles and writes the artifacts into
// the output directory:
//
//   - the line item CSV (geradores_configurados.csv)
//   - the marketing notification (email_marketing.txt)
//   - checksums.txt, when enabled
//   - the run summary (summary.yaml), unless disabled
//   - a local OCI image layout of the above, when a reference is configured
//
// A catalog that yields no bundle ends the run with a NO_BUNDLES error and
// nothing is written.
//
// # Metrics
//
// Run metrics are kept in Registry and, when a metrics file is configured,
// dumped in the Prometheus text format for the node-exporter textfile
// collector:
//
//   - genbundler_run_total{status}
//   - genbundler_run_duration_seconds
//   - genbundler_stage_duration_seconds{stage}
//   - genbundler_catalog_components{category}
//   - genbundler_bundles, genbundler_line_items, genbundler_unmatched_inverters
//   - genbundler_rejected_panel_combinations_total{reason}
//
// # Usage
//
//	out, err := configurator.New(cfg).Run(ctx)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(out.Summary())
package configurator
