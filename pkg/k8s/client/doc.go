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

// Package client provides Kubernetes client discovery for catalog sources
// stored in ConfigMaps (cm://namespace/name).
//
// # Shared Client
//
// The client built with automatic discovery is created once and reused:
//
//	cs, err := client.GetKubeClient()
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//	cm, err := cs.CoreV1().ConfigMaps("solar").Get(ctx, "catalog", metav1.GetOptions{})
//
// # Custom Kubeconfig Path
//
// ForKubeconfig builds a dedicated client when an explicit path is given
// (the --kubeconfig flag) and falls back to the shared client otherwise.
//
// # Discovery Order
//
//  1. explicit path
//  2. KUBECONFIG environment variable
//  3. ~/.kube/config, if present
//  4. in-cluster service account
package client
