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

// Package result describes the outcome of a generator run.
//
// Output collects what a run produced: bundle and line item counts, the
// generation stats, the artifacts written and, when enabled, checksums and
// the OCI layout. Serialized as YAML it is the run summary document:
//
//	kind: GeneratorReport
//	apiVersion: genbundler.neosolar.com.br/v1alpha1
//	metadata:
//	  runId: 3f0c...
//	  timestamp: "2026-10-12T09:00:00Z"
//	  version: v1.0.0
//	bundles: 12
//	lineItems: 36
//	artifacts:
//	  - kind: line-items
//	    path: out/geradores_configurados.csv
//
// Summary and Messages render the outcome for the operator.
package result
