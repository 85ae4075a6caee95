package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/linkdir/internal/tree"
	"github.com/MKhiriev/linkdir/models"
)

func TestEncode_WireShape(t *testing.T) {
	site := models.NewLink("Site", "http://x.com")
	site.Icon = "Language"
	site.Description = "main site"

	forest := models.Forest{
		models.NewFolder("Work", site),
		models.Item{Name: "Empty", Type: models.TypeFolder, Icon: "https://img/icon.png"},
		models.NewLink("Bare", "http://bare"),
	}

	data, err := Encode(forest)
	require.NoError(t, err)

	want := `[
		{"name":"Work","type":"Folder","children":[
			{"name":"Site","type":"Link","url":"http://x.com","description":"main site","icon":"Language"}
		]},
		{"name":"Empty","type":"Folder","children":[],"icon":"https://img/icon.png"},
		{"name":"Bare","type":"Link","url":"http://bare"}
	]`
	assert.JSONEq(t, want, string(data))
}

func TestEncode_NilForestIsEmptyArray(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestEncodeIndent(t *testing.T) {
	data, err := EncodeIndent(models.Forest{models.NewLink("A", "http://a")})
	require.NoError(t, err)

	want := "[\n  {\n    \"name\": \"A\",\n    \"type\": \"Link\",\n    \"url\": \"http://a\"\n  }\n]"
	assert.Equal(t, want, string(data))
}

func TestRoundTrip(t *testing.T) {
	link := models.NewLink("Site", "http://x.com")
	link.Description = "d"
	link.Icon = "Star"

	forest := models.Forest{
		models.NewFolder("Work",
			models.NewFolder("Docs", models.NewLink("Guide", "http://guide")),
			link,
		),
		models.NewFolder("Empty"),
		models.NewLink("News", "http://news"),
	}

	for name, encode := range map[string]func(models.Forest) ([]byte, error){
		"compact": Encode,
		"indent":  EncodeIndent,
	} {
		t.Run(name, func(t *testing.T) {
			data, err := encode(forest)
			require.NoError(t, err)

			decoded, err := Decode(data)
			require.NoError(t, err)
			assert.True(t, tree.Equal(forest, decoded))
		})
	}
}

func TestDecode_AssignsIDs(t *testing.T) {
	decoded, err := DecodeString(`[{"name":"F","type":"Folder","children":[{"name":"L","type":"Link","url":"u"}]}]`)
	require.NoError(t, err)

	require.Len(t, decoded, 1)
	assert.NotEmpty(t, decoded[0].ID)
	assert.NotEmpty(t, decoded[0].Children[0].ID)
	assert.NotEqual(t, decoded[0].ID, decoded[0].Children[0].ID)
}

func TestDecode_FolderWithoutChildren(t *testing.T) {
	decoded, err := DecodeString(`[{"name":"F","type":"Folder"}]`)
	require.NoError(t, err)
	assert.NotNil(t, decoded[0].Children)
	assert.Empty(t, decoded[0].Children)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not json", input: "not json"},
		{name: "empty", input: "   "},
		{name: "null", input: "null"},
		{name: "object instead of array", input: `{"name":"A","type":"Link"}`},
		{name: "unknown type", input: `[{"name":"A","type":"Bookmark"}]`},
		{name: "truncated", input: `[{"name":"A","type":"Link"`},
		{name: "wrong field type", input: `[{"name":1,"type":"Link"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeString(tt.input)
			require.ErrorIs(t, err, ErrParse)
			assert.Nil(t, got)
		})
	}
}

func TestDecode_EmptyArray(t *testing.T) {
	decoded, err := DecodeString("[]")
	require.NoError(t, err)
	assert.NotNil(t, decoded)
	assert.Empty(t, decoded)
}
