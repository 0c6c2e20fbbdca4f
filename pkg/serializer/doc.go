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

// Package serializer reads and writes the documents genbundler consumes and
// produces.
//
// # Formats
//
//   - JSON and YAML: read and write. YAML uses gopkg.in/yaml.v3.
//   - CSV: write only. Data must implement Tabular; the header row comes
//     from Columns and is written even when there are no rows.
//   - Table: write only. Tabular data is rendered as aligned columns, any
//     other value is flattened into FIELD/VALUE pairs.
//
// # Sources
//
// ReadSource and FromSource accept:
//
//   - a local path (produtos.json, catalog.yaml)
//   - an HTTP(S) URL, fetched with HttpReader
//   - cm://namespace/name, a Kubernetes ConfigMap holding catalog.json or
//     catalog.yaml (an optional "format" key picks between them)
//   - s3://bucket/key, an S3 or S3-compatible object; SourceOptions carries
//     the region and endpoint
//
// The format is derived from the path, URL, object key or ConfigMap key.
//
// # Usage
//
//	records, err := serializer.FromSource[[]catalog.Record](ctx, "s3://catalogs/produtos.json",
//	    serializer.SourceOptions{S3Region: "sa-east-1"})
//
//	w, err := serializer.NewFileWriter(serializer.FormatCSV, "geradores_configurados.csv")
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	err = w.Serialize(ctx, items)
package serializer
