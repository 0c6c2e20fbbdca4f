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

// Package header provides the common document header for genbundler output.
//
// Serialized documents (the run summary and the catalog dump) start with a
// Kubernetes-style header so downstream tooling can tell them apart:
//
//	kind: GeneratorReport
//	apiVersion: genbundler.neosolar.com.br/v1alpha1
//	metadata:
//	  timestamp: "2025-10-13T09:00:00Z"
//	  version: v0.3.0
//	  runId: 0b6f0d5e-...
//
// # Usage
//
//	var h header.Header
//	h.Init(header.KindGeneratorReport, version, time.Now())
//
// or with options:
//
//	h := header.New(
//	    header.WithKind(header.KindCatalog),
//	    header.WithMetadata("source", "produtos.json"),
//	)
package header
