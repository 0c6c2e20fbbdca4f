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

import (
	"strings"
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		// Catalog timeouts
		{"CatalogLoadTimeout", CatalogLoadTimeout, 30 * time.Second, 10 * time.Minute},
		{"ConfigMapReadTimeout", ConfigMapReadTimeout, 5 * time.Second, 60 * time.Second},
		{"S3ReadTimeout", S3ReadTimeout, 10 * time.Second, 5 * time.Minute},

		// HTTP client timeouts
		{"HTTPClientTimeout", HTTPClientTimeout, 10 * time.Second, 60 * time.Second},
		{"HTTPConnectTimeout", HTTPConnectTimeout, 1 * time.Second, 15 * time.Second},

		// Artifact and CLI timeouts
		{"OCIPackageTimeout", OCIPackageTimeout, 30 * time.Second, 10 * time.Minute},
		{"CLIGenerateTimeout", CLIGenerateTimeout, 1 * time.Minute, 30 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestSourceTimeoutsFitCatalogLoad(t *testing.T) {
	for name, d := range map[string]time.Duration{
		"ConfigMapReadTimeout": ConfigMapReadTimeout,
		"S3ReadTimeout":        S3ReadTimeout,
		"HTTPClientTimeout":    HTTPClientTimeout,
	} {
		if d >= CatalogLoadTimeout {
			t.Errorf("%s (%v) should be less than CatalogLoadTimeout (%v)", name, d, CatalogLoadTimeout)
		}
	}
}

func TestHTTPClientTimeoutRelationships(t *testing.T) {
	if HTTPConnectTimeout >= HTTPClientTimeout {
		t.Errorf("HTTPConnectTimeout (%v) should be less than HTTPClientTimeout (%v)",
			HTTPConnectTimeout, HTTPClientTimeout)
	}
	if HTTPTLSHandshakeTimeout >= HTTPClientTimeout {
		t.Errorf("HTTPTLSHandshakeTimeout (%v) should be less than HTTPClientTimeout (%v)",
			HTTPTLSHandshakeTimeout, HTTPClientTimeout)
	}
}

func TestDefaultFileNames(t *testing.T) {
	if !strings.HasSuffix(LineItemsFile, ".csv") {
		t.Errorf("LineItemsFile = %q, want .csv extension", LineItemsFile)
	}
	if !strings.HasSuffix(NotificationFile, ".txt") {
		t.Errorf("NotificationFile = %q, want .txt extension", NotificationFile)
	}
	if !strings.HasSuffix(SummaryFile, ".yaml") {
		t.Errorf("SummaryFile = %q, want .yaml extension", SummaryFile)
	}
	if LineItemsFile == NotificationFile || LineItemsFile == SummaryFile || NotificationFile == SummaryFile {
		t.Error("default artifact names must be distinct")
	}
}
