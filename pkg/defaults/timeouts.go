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

import "time"

// Catalog source timeouts.
const (
	// CatalogLoadTimeout bounds the whole catalog load, whatever the source.
	CatalogLoadTimeout = 2 * time.Minute

	// ConfigMapReadTimeout is the timeout for reading a catalog ConfigMap.
	ConfigMapReadTimeout = 30 * time.Second

	// S3ReadTimeout is the timeout for fetching a catalog object from S3.
	S3ReadTimeout = 60 * time.Second
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second
)

// Artifact timeouts.
const (
	// OCIPackageTimeout is the timeout for packaging artifacts into an OCI layout.
	OCIPackageTimeout = 2 * time.Minute
)

// CLI timeouts for command-line operations.
const (
	// CLIGenerateTimeout is the default timeout for a full generate run.
	CLIGenerateTimeout = 5 * time.Minute
)
