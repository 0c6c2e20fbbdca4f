package serializer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/neosolar/genbundler/pkg/k8s/client"
)

func TestParseConfigMapURI(t *testing.T) {
	tests := []struct {
		name          string
		uri           string
		wantNamespace string
		wantName      string
		wantErr       bool
	}{
		{name: "valid", uri: "cm://solar/catalog", wantNamespace: "solar", wantName: "catalog"},
		{name: "spaces", uri: "cm://solar / catalog ", wantNamespace: "solar", wantName: "catalog"},
		{name: "missing scheme", uri: "solar/catalog", wantErr: true},
		{name: "wrong scheme", uri: "http://solar/catalog", wantErr: true},
		{name: "missing name", uri: "cm://solar/", wantErr: true},
		{name: "missing namespace", uri: "cm:///catalog", wantErr: true},
		{name: "missing separator", uri: "cm://solar", wantErr: true},
		{name: "only scheme", uri: "cm://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			namespace, name, err := parseConfigMapURI(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNamespace, namespace)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func withFakeKubeClient(t *testing.T, objs ...*corev1.ConfigMap) {
	t.Helper()
	cs := fake.NewSimpleClientset()
	for _, cm := range objs {
		_, err := cs.CoreV1().ConfigMaps(cm.Namespace).Create(context.Background(), cm, metav1.CreateOptions{})
		require.NoError(t, err)
	}

	orig := kubeClientFor
	kubeClientFor = func(string) (client.Interface, error) { return cs, nil }
	t.Cleanup(func() { kubeClientFor = orig })
}

func configMap(name string, data map[string]string) *corev1.ConfigMap {
	return &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Namespace: "solar", Name: name},
		Data:       data,
	}
}

func TestReadConfigMap(t *testing.T) {
	withFakeKubeClient(t,
		configMap("yaml", map[string]string{"catalog.yaml": "name: y\nvalue: 1\n"}),
		configMap("json", map[string]string{"catalog.json": `{"name":"j","value":2}`}),
		configMap("format", map[string]string{"format": "json", "catalog.json": `{"name":"f"}`, "catalog.yaml": "name: ignored"}),
		configMap("format-missing", map[string]string{"format": "yaml"}),
		configMap("empty", map[string]string{"other": "x"}),
	)

	tests := []struct {
		name       string
		uri        string
		wantName   string
		wantFormat Format
		wantErr    bool
	}{
		{name: "yaml key", uri: "cm://solar/yaml", wantName: "y", wantFormat: FormatYAML},
		{name: "json key", uri: "cm://solar/json", wantName: "j", wantFormat: FormatJSON},
		{name: "explicit format", uri: "cm://solar/format", wantName: "f", wantFormat: FormatJSON},
		{name: "declared format missing", uri: "cm://solar/format-missing", wantErr: true},
		{name: "no catalog data", uri: "cm://solar/empty", wantErr: true},
		{name: "not found", uri: "cm://solar/nope", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, format, err := ReadSource(context.Background(), tt.uri, SourceOptions{})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFormat, format)

			got, err := FromSource[testConfig](context.Background(), tt.uri, SourceOptions{})
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestReadConfigMap_ClientError(t *testing.T) {
	orig := kubeClientFor
	kubeClientFor = func(string) (client.Interface, error) { return nil, errors.New("no cluster") }
	t.Cleanup(func() { kubeClientFor = orig })

	_, _, err := ReadSource(context.Background(), "cm://solar/catalog", SourceOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no cluster")
}
