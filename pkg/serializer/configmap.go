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

package serializer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/neosolar/genbundler/pkg/defaults"
	"github.com/neosolar/genbundler/pkg/k8s/client"
)

// ConfigMapURIScheme is the URI scheme for ConfigMap sources (cm://namespace/name).
const ConfigMapURIScheme = "cm://"

// ConfigMapDataPrefix is the data key prefix holding the document; the
// extension selects the format (catalog.json, catalog.yaml).
const ConfigMapDataPrefix = "catalog"

// ConfigMapFormatKey optionally names the format of the document.
const ConfigMapFormatKey = "format"

// kubeClientFor is swapped in tests to inject a fake clientset.
var kubeClientFor = client.ForKubeconfig

// readConfigMap fetches the document stored in a ConfigMap.
// The format key selects catalog.<format>; without it the first of
// catalog.yaml, catalog.yml, catalog.json present is used.
func readConfigMap(ctx context.Context, namespace, name, kubeconfig string) ([]byte, Format, error) {
	k8s, err := kubeClientFor(kubeconfig)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get kubernetes client: %w", err)
	}

	readCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapReadTimeout)
	defer cancel()

	cm, err := k8s.CoreV1().ConfigMaps(namespace).Get(readCtx, name, metav1.GetOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}

	if formatStr, ok := cm.Data[ConfigMapFormatKey]; ok {
		format := Format(formatStr)
		if content, ok := cm.Data[ConfigMapDataPrefix+"."+formatStr]; ok {
			return []byte(content), format, nil
		}
		return nil, "", fmt.Errorf("ConfigMap %s/%s declares format %q but has no %s.%s key",
			namespace, name, formatStr, ConfigMapDataPrefix, formatStr)
	}

	for _, ext := range []string{"yaml", "yml", "json"} {
		content, ok := cm.Data[ConfigMapDataPrefix+"."+ext]
		if !ok {
			continue
		}
		slog.Debug("reading from ConfigMap",
			"namespace", namespace,
			"name", name,
			"key", ConfigMapDataPrefix+"."+ext,
			"size", len(content))
		return []byte(content), FormatFromPath("." + ext), nil
	}

	return nil, "", fmt.Errorf("ConfigMap %s/%s has no %s data", namespace, name, ConfigMapDataPrefix)
}

// parseConfigMapURI parses a ConfigMap URI in the format cm://namespace/name
// and returns the namespace and name components.
// Returns an error if the URI is malformed.
func parseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	path := strings.TrimPrefix(uri, ConfigMapURIScheme)

	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])

	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}

	return namespace, name, nil
}
