package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName_Renderings(t *testing.T) {
	workdir(t)

	stdout, _, code := execute(t, "name", "--format", "json", "valueInUSD")

	require.Equal(t, ExitSuccess, code)
	resp := jsonResponse(t, stdout)
	results := resp["data"].([]any)
	require.Len(t, results, 1)
	r := results[0].(map[string]any)
	assert.Equal(t, "valueInUSD", r["input"])
	assert.Equal(t, []any{"value", "in", "u", "s", "d"}, r["segments"])
	assert.Equal(t, "value-in-u-s-d", r["kebab"])
	assert.Equal(t, "ValueInUSD", r["title"])
	assert.Equal(t, "valueInUSD", r["camel"])
	assert.Equal(t, "value_in_USD", r["snake"])
	assert.Equal(t, "value in USD", r["human"])
}

func TestName_EquivalentSpellingsAgree(t *testing.T) {
	workdir(t)

	stdout, _, code := execute(t, "name", "--format", "json", "valueInUSD", "value_in_USD", "ValueInUSD")

	require.Equal(t, ExitSuccess, code)
	results := jsonResponse(t, stdout)["data"].([]any)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, "value-in-u-s-d", r.(map[string]any)["kebab"])
	}
}

func TestName_Text(t *testing.T) {
	workdir(t)

	stdout, _, code := execute(t, "name", "fooBar", "baz")

	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "foo-bar")
	assert.Contains(t, stdout, "FooBar")
	assert.Contains(t, stdout, "baz")
}

func TestName_Path(t *testing.T) {
	workdir(t)

	stdout, _, code := execute(t, "name", "--path", "--format", "yaml", "Morphir.SDK.Basics")

	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "canonical: morphir.s-d-k.basics")
	assert.Contains(t, stdout, "title: Morphir.SDK.Basics")
	assert.Contains(t, stdout, "- s-d-k")
}

func TestName_Invalid(t *testing.T) {
	workdir(t)

	tests := [][]string{
		{"name", "--format", "json", "!!!"},
		{"name", "--path", "--format", "json", "..."},
	}
	for _, args := range tests {
		stdout, _, code := execute(t, args...)

		assert.Equal(t, ExitCommandError, code)
		assert.Equal(t, ErrCodeInvalidName, errorOf(t, stdout)["code"])
	}
}
