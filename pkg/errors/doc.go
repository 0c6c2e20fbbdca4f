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

// Package errors provides structured error types for genbundler.
//
// Every failure that reaches the operator carries an ErrorCode so the CLI
// can decide how to terminate without inspecting message text:
//
//   - CATALOG_UNREADABLE: the catalog source is missing, malformed or empty
//   - NO_BUNDLES: the catalog had no compatible inverter/controller/panel triple
//   - ARTIFACT_WRITE_FAILURE: an output file could not be written; Context["artifact"]
//     names which one
//   - INVALID_REQUEST: bad flags or configuration
//   - INTERNAL: anything else
//
// Usage:
//
//	if err != nil {
//	    return errors.WrapWithContext(errors.ErrCodeArtifactWrite,
//	        "failed to write line items", err,
//	        map[string]any{"artifact": path},
//	    )
//	}
//
// Callers branch on the code with CodeOf or HasCode:
//
//	if errors.HasCode(err, errors.ErrCodeNoBundles) {
//	    fmt.Println("no generators could be configured")
//	}
package errors
