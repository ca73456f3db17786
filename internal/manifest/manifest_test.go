package manifest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `
version: "1"
package: ./examples/blog
types:
  - name: Post
    fields:
      Title: [set]
      legacy: [panic]
  - name: Event
`

func TestParse(t *testing.T) {
	mf, err := Parse([]byte(sampleManifest))

	require.NoError(t, err)
	assert.Equal(t, "1", mf.Version)
	assert.Equal(t, "./examples/blog", mf.Package)
	require.Len(t, mf.Types, 2)
	assert.Equal(t, "Post", mf.Types[0].Name)
	assert.Equal(t, []string{"set"}, mf.Types[0].Fields["Title"])
	assert.Equal(t, []string{"panic"}, mf.Types[0].Fields["legacy"])
	assert.Empty(t, mf.Types[1].Fields)
}

func TestParse_Defaults(t *testing.T) {
	mf, err := Parse([]byte("types:\n  - name: Post\n"))

	require.NoError(t, err)
	assert.Equal(t, "1", mf.Version)
	assert.Equal(t, ".", mf.Package)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("types: {oops"))

	require.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	mf, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	data, err := Marshal(mf)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, mf, back)
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "randgen.yaml")

	mf, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	require.NoError(t, WriteFile(mf, path))

	back, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, mf, back)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, levenshtein("Post", "Post"))
	assert.Equal(t, 1, levenshtein("Post", "Posts"))
	assert.Equal(t, 4, levenshtein("", "Post"))
	assert.Equal(t, 3, levenshtein("kitten", "sitting"))
}

func TestNearest(t *testing.T) {
	candidates := []string{"Post", "Comment", "Author", "Event"}

	assert.Equal(t, []string{"Post"}, nearest("Posts", candidates))
	assert.Empty(t, nearest("Subscription", candidates))
}
