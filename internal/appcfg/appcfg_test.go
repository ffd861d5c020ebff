package appcfg

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValidJSON(t *testing.T) {
	doc := Default()
	require.True(t, doc.Valid())

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(doc, &parsed))
	assert.Equal(t, "v0.1", parsed["version"])
	assert.Contains(t, parsed, "metadata")
	assert.Contains(t, parsed, "entrances")
	assert.Contains(t, parsed, "middleware")
	assert.Contains(t, parsed, "options")
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	first := Default()
	first[0] = '['

	second := Default()
	assert.Equal(t, byte('{'), second[0])
	assert.True(t, second.Valid())
}

func TestToYAML(t *testing.T) {
	out, err := ToYAML([]byte(`{"metadata":{"name":"demo"},"port":80}`))
	require.NoError(t, err)
	assert.Equal(t, "metadata:\n    name: demo\nport: 80\n", string(out))
}

func TestToYAML_InvalidJSON(t *testing.T) {
	_, err := ToYAML([]byte(`{"metadata":`))
	assert.Error(t, err)
}

func TestFromYAML(t *testing.T) {
	doc, err := FromYAML([]byte("metadata:\n  name: demo\ncategories:\n  - dev\n"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"metadata":{"name":"demo"},"categories":["dev"]}`, string(doc))
}

func TestFromYAML_NonStringKeysRejected(t *testing.T) {
	_, err := FromYAML([]byte("1: one\n2: two\n"))
	assert.Error(t, err)
}

func TestYAMLRoundTrip_Default(t *testing.T) {
	out, err := ToYAML(Default())
	require.NoError(t, err)

	doc, err := FromYAML(out)
	require.NoError(t, err)
	assert.JSONEq(t, string(Default()), string(doc))
}
