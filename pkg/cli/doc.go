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

// Package cli implements the genbundler command-line interface.
//
// # Commands
//
// generate - build bundles and write the run artifacts:
//
//	genbundler generate [--catalog SRC] [--output DIR] [--id-strategy random|sequential|uuid]
//	                    [--checksums] [--oci-ref REG/REPO:TAG] [--metrics-file PATH]
//
// catalog - print the parsed catalog:
//
//	genbundler catalog [--catalog SRC] [--format yaml|json|table|csv] [--output FILE]
//
// Catalog sources are file paths, http(s) URLs, cm://namespace/name and
// s3://bucket/key.
//
// # Global Flags
//
//	--config, -c   Run configuration file (YAML or JSON)
//	--log-level    debug, info, warn or error (env LOG_LEVEL)
//
// Each command flag can also be set with a GENBUNDLER_* environment variable
// (for example GENBUNDLER_CATALOG). Precedence is flag, then environment,
// then the config file, then the built-in defaults.
//
// # Exit Status
//
// 0 on success and when the catalog yields no bundle; 1 with a one-line
// diagnostic on any other error.
package cli
