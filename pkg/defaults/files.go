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

package defaults

// Default artifact and source names. They only reach the loader and the
// writers through config.Config.
const (
	// CatalogSource is the catalog read when no source is configured.
	CatalogSource = "produtos.json"

	// OutputDir is the directory artifacts are written to.
	OutputDir = "."

	// LineItemsFile is the line-item table file name.
	LineItemsFile = "geradores_configurados.csv"

	// NotificationFile is the rendered notification file name.
	NotificationFile = "email_marketing.txt"

	// SummaryFile is the run summary file name.
	SummaryFile = "summary.yaml"

	// ChecksumsFile lists SHA256 digests of the written artifacts.
	ChecksumsFile = "checksums.txt"

	// OCILayoutDir is the directory, relative to the output directory,
	// holding the OCI image layout when packaging is enabled.
	OCILayoutDir = "oci-layout"

	// OCITag is the tag applied when an OCI reference carries none.
	OCITag = "latest"
)
