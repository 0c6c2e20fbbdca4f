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

package oci

import (
	"fmt"
	"strings"

	"github.com/distribution/reference"

	"github.com/neosolar/genbundler/pkg/defaults"
	apperrors "github.com/neosolar/genbundler/pkg/errors"
)

// URIScheme is the optional URI scheme of a reference (e.g., "oci://ghcr.io/org/repo:tag").
const URIScheme = "oci://"

// Reference is a parsed image reference naming the packaged artifacts.
type Reference struct {
	// Registry is the registry host (e.g., "ghcr.io", "localhost:5000").
	Registry string
	// Repository is the repository path (e.g., "neosolar/generators").
	Repository string
	// Tag is the image tag. ParseReference defaults it to defaults.OCITag.
	Tag string
}

// ParseReference parses registry/repository[:tag], with or without the
// oci:// scheme. Short names are normalized the way docker does
// (generators → docker.io/library/generators). Digest references are rejected
// since a local layout is addressed by tag.
func ParseReference(s string) (*Reference, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), URIScheme)
	if raw == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "OCI reference is empty")
	}

	ref, err := reference.ParseNormalizedNamed(raw)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest, "invalid OCI reference", err,
			map[string]any{"reference": s})
	}

	if _, ok := ref.(reference.Digested); ok {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"OCI reference must use a tag, not a digest", map[string]any{"reference": s})
	}

	tag := defaults.OCITag
	if tagged, ok := ref.(reference.Tagged); ok {
		tag = tagged.Tag()
	}

	return &Reference{
		Registry:   reference.Domain(ref),
		Repository: reference.Path(ref),
		Tag:        tag,
	}, nil
}

// String returns "registry/repository:tag".
func (r *Reference) String() string {
	return fmt.Sprintf("%s/%s:%s", r.Registry, r.Repository, r.Tag)
}

// WithTag returns a copy of the reference with the specified tag.
func (r *Reference) WithTag(tag string) *Reference {
	return &Reference{
		Registry:   r.Registry,
		Repository: r.Repository,
		Tag:        tag,
	}
}
