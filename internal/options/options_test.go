package options

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comboselect/internal/domain"
)

func labelsOf(opts []*domain.Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Label
	}
	return out
}

func TestParseText(t *testing.T) {
	data := []byte("Apple\n\n# comment\n  Banana  \nCherry")

	opts, err := Parse(data, FormatText)
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "Banana", "Cherry"}, labelsOf(opts))
	assert.Equal(t, "Banana", opts[1].Value)
	assert.NotEmpty(t, opts[0].ID)
	assert.NotEqual(t, opts[0].ID, opts[1].ID)
}

func TestParseJSON(t *testing.T) {
	data := []byte(`[
		{"id": "a", "label": "Apple", "color": "red"},
		{"label": "Banana", "tags": ["yellow", "long"]},
		"Cherry",
		{"value": "durian", "weight": 2}
	]`)

	opts, err := Parse(data, FormatJSON)
	require.NoError(t, err)
	require.Len(t, opts, 4)

	assert.Equal(t, "a", opts[0].ID)
	color, ok := opts[0].Field("color")
	require.True(t, ok)
	assert.Equal(t, "red", color)

	tags, _ := opts[1].Field("tags")
	assert.Equal(t, "yellow, long", tags)
	assert.Equal(t, "Banana", opts[1].Value, "value defaults to the label")

	assert.Equal(t, "Cherry", opts[2].Label)
	assert.Equal(t, "durian", opts[3].Label, "label defaults to the value")

	weight, _ := opts[3].Field("weight")
	assert.Equal(t, "2", weight)
}

func TestParseJSONOptionsKey(t *testing.T) {
	opts, err := Parse([]byte(`{"options": ["Apple", "Banana"]}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "Banana"}, labelsOf(opts))

	_, err = Parse([]byte(`{"fruits": []}`), FormatJSON)
	assert.Error(t, err)
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
options:
  - label: Apple
    origin:
      country: Italy
      region: Trentino
  - Banana
  - 42
`)

	opts, err := Parse(data, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "Banana", "42"}, labelsOf(opts))

	origin, _ := opts[0].Field("origin")
	assert.Equal(t, "country=Italy region=Trentino", origin)
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
[[options]]
id = "1"
label = "Apple"

[[options]]
id = "2"
label = "Banana"
rank = 7
`)

	opts, err := Parse(data, FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "Banana"}, labelsOf(opts))
	assert.Equal(t, "2", opts[1].ID)

	rank, _ := opts[1].Field("rank")
	assert.Equal(t, "7", rank)
}

func TestParseTOMLInlineList(t *testing.T) {
	opts, err := Parse([]byte(`options = ["Apple", "Banana"]`), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "Banana"}, labelsOf(opts))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`{not json`), FormatJSON)
	assert.Error(t, err)

	_, err = Parse([]byte(`[[1, 2]]`), FormatJSON)
	assert.ErrorContains(t, err, "option 0")

	_, err = Parse([]byte(`x`), Format("csv"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"opts.toml": FormatTOML,
		"opts.YAML": FormatYAML,
		"opts.yml":  FormatYAML,
		"opts.json": FormatJSON,
		"opts.txt":  FormatText,
		"opts":      FormatText,
		"a/b/c.lst": FormatText,
	}
	for path, want := range tests {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("opts.csv")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("txt")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fruits.json")
	require.NoError(t, os.WriteFile(path, []byte(`["Apple","Banana"]`), 0644))

	opts, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "Banana"}, labelsOf(opts))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestRead(t *testing.T) {
	opts, err := Read(strings.NewReader("Apple\nBanana\n"), FormatText)
	require.NoError(t, err)
	assert.Len(t, opts, 2)
}
