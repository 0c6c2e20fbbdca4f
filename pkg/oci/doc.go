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

// Package oci packages the artifacts of a generator run as an OCI artifact
// in a local image layout.
//
// Each artifact becomes one layer of an OCI 1.1 artifact manifest with
// ArtifactType. The manifest is tagged in the layout directory with the
// reference tag, so the layout can later be pushed with any OCI tool:
//
//	oras copy --from-oci-layout ./out/oci-layout:w41 ghcr.io/neosolar/generators:w41
//
// # Usage
//
//	ref, err := oci.ParseReference("ghcr.io/neosolar/generators:w41")
//	if err != nil {
//	    return err
//	}
//	res, err := oci.Package(ctx, oci.PackageOptions{
//	    SourceDir: "./out",
//	    Files:     []string{"geradores_configurados.csv", "email_marketing.txt"},
//	    LayoutDir: "./out/oci-layout",
//	    Reference: ref,
//	})
//
// References are parsed with github.com/distribution/reference; a missing
// tag defaults to "latest". Packaging uses oras.land/oras-go/v2.
package oci
