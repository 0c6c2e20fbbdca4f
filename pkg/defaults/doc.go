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

// Package defaults provides centralized configuration constants for genbundler.
//
// This package defines timeout values and default artifact names used across
// the codebase. Centralizing these values ensures consistency and makes
// tuning easier.
//
// # Timeout Categories
//
//   - Catalog timeouts: for ConfigMap, S3 and overall catalog loads
//   - HTTP client timeouts: for catalogs fetched over HTTP(S)
//   - Artifact timeouts: for OCI packaging
//   - CLI timeouts: for a whole generate run
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CatalogLoadTimeout)
//	defer cancel()
//
// # File Names
//
// The default names (produtos.json, geradores_configurados.csv,
// email_marketing.txt) are only defaults: they are copied into config.Config
// and never read directly by the loader, generator or writers.
package defaults
