package oci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/neosolar/genbundler/pkg/errors"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantReg  string
		wantRepo string
		wantTag  string
		wantErr  bool
	}{
		{name: "full", input: "ghcr.io/neosolar/generators:2026-w41", wantReg: "ghcr.io", wantRepo: "neosolar/generators", wantTag: "2026-w41"},
		{name: "scheme", input: "oci://ghcr.io/neosolar/generators:v1", wantReg: "ghcr.io", wantRepo: "neosolar/generators", wantTag: "v1"},
		{name: "default tag", input: "ghcr.io/neosolar/generators", wantReg: "ghcr.io", wantRepo: "neosolar/generators", wantTag: "latest"},
		{name: "port", input: "localhost:5000/generators:dev", wantReg: "localhost:5000", wantRepo: "generators", wantTag: "dev"},
		{name: "short name", input: "generators", wantReg: "docker.io", wantRepo: "library/generators", wantTag: "latest"},
		{name: "empty", input: "", wantErr: true},
		{name: "only scheme", input: "oci://", wantErr: true},
		{name: "uppercase", input: "ghcr.io/Neosolar/Generators", wantErr: true},
		{name: "spaces", input: "Not A Ref", wantErr: true},
		{name: "digest", input: "ghcr.io/neosolar/generators@sha256:" + "a3ed95caeb02ffe68cdd9fd84406680ae93d633cb16422d00e8a7c22955b46d4", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseReference(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, apperrors.ErrCodeInvalidRequest, apperrors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantReg, ref.Registry)
			assert.Equal(t, tt.wantRepo, ref.Repository)
			assert.Equal(t, tt.wantTag, ref.Tag)
		})
	}
}

func TestReference_StringAndWithTag(t *testing.T) {
	ref := &Reference{Registry: "ghcr.io", Repository: "neosolar/generators", Tag: "v1"}
	assert.Equal(t, "ghcr.io/neosolar/generators:v1", ref.String())

	other := ref.WithTag("v2")
	assert.Equal(t, "ghcr.io/neosolar/generators:v2", other.String())
	assert.Equal(t, "v1", ref.Tag)
}
