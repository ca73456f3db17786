package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blogPkgPath = "github.com/ep4sh/randgen/examples/blog"

func loadBlog(t *testing.T) *TypeGraph {
	t.Helper()

	graph, err := NewAnalyzer().LoadPackages("../../examples/blog")
	require.NoError(t, err)

	return graph
}

func blogType(t *testing.T, graph *TypeGraph, name string) *TypeInfo {
	t.Helper()

	info := graph.GetType(TypeID{PkgPath: blogPkgPath, Name: name})
	require.NotNil(t, info, "type %s not found", name)

	return info
}

func findField(t *testing.T, info *TypeInfo, name string) FieldInfo {
	t.Helper()

	for _, f := range info.Fields {
		if f.Name == name {
			return f
		}
	}

	t.Fatalf("field %s not found on %s", name, info.ID.Name)

	return FieldInfo{}
}

func TestLoadPackages_PackageInfo(t *testing.T) {
	graph := loadBlog(t)

	pkgInfo := graph.Packages[blogPkgPath]
	require.NotNil(t, pkgInfo)
	assert.Equal(t, "blog", pkgInfo.Name)
	assert.NotEmpty(t, pkgInfo.Dir)
	require.NotNil(t, pkgInfo.Pkg)

	for _, name := range []string{"Post", "Meta", "Author", "Comment", "Legacy", "Event", "PostCreated", "PostDeleted", "Slug", "Count"} {
		assert.Contains(t, pkgInfo.Types, TypeID{PkgPath: blogPkgPath, Name: name})
	}
}

func TestLoadPackages_StructFields(t *testing.T) {
	graph := loadBlog(t)

	post := blogType(t, graph, "Post")
	require.Equal(t, TypeKindStruct, post.Kind)

	id := findField(t, post, "ID")
	assert.Equal(t, TypeKindExternal, id.Type.Kind)
	assert.Equal(t, TypeID{PkgPath: "github.com/google/uuid", Name: "UUID"}, id.Type.ID)

	subtitle := findField(t, post, "Subtitle")
	require.Equal(t, TypeKindPointer, subtitle.Type.Kind)
	assert.Equal(t, TypeKindBasic, subtitle.Type.ElemType.Kind)

	slug := findField(t, post, "Slug")
	assert.Equal(t, TypeKindAlias, slug.Type.Kind)
	assert.Equal(t, TypeKindBasic, slug.Type.Underlying.Kind)

	tags := findField(t, post, "Tags")
	require.Equal(t, TypeKindSlice, tags.Type.Kind)
	assert.Equal(t, TypeKindBasic, tags.Type.ElemType.Kind)

	banner := findField(t, post, "Banner")
	assert.Equal(t, "value=default-banner", banner.Tag.Get("rand"))

	meta := findField(t, post, "Meta")
	assert.Equal(t, TypeKindStruct, meta.Type.Kind)
	assert.Equal(t, "Meta", meta.Type.ID.Name)
}

func TestLoadPackages_EmbeddedField(t *testing.T) {
	graph := loadBlog(t)

	comment := blogType(t, graph, "Comment")

	count := findField(t, comment, "Count")
	assert.True(t, count.Embedded)
	assert.Equal(t, "custom", count.Tag.Get("rand"))
	assert.Equal(t, TypeKindAlias, count.Type.Kind)
}

func TestLoadPackages_UnionVariants(t *testing.T) {
	graph := loadBlog(t)

	event := blogType(t, graph, "Event")
	require.Equal(t, TypeKindInterface, event.Kind)

	want := []Variant{
		{ID: TypeID{PkgPath: blogPkgPath, Name: "PostCreated"}},
		{ID: TypeID{PkgPath: blogPkgPath, Name: "PostDeleted"}, Ptr: true},
	}
	assert.Equal(t, want, event.Variants)
}
