package manifest

import (
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ep4sh/randgen/internal/analyze"
	"github.com/ep4sh/randgen/internal/diagnostic"
	"github.com/ep4sh/randgen/internal/directive"
)

const testPkgPath = "example/blog"

func testGraph() *analyze.TypeGraph {
	pkg := types.NewPackage(testPkgPath, "blog")

	graph := analyze.NewTypeGraph()
	graph.Packages[testPkgPath] = &analyze.PackageInfo{
		Path: testPkgPath,
		Name: "blog",
		Pkg:  pkg,
	}

	obj := types.NewTypeName(token.NoPos, pkg, "Post", nil)
	named := types.NewNamed(obj, types.NewStruct(nil, nil), nil)

	post := &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: testPkgPath, Name: "Post"},
		Kind: analyze.TypeKindStruct,
		Fields: []analyze.FieldInfo{
			{Name: "Title", Exported: true},
			{Name: "LegacyBody", Exported: true},
		},
		GoType: named,
	}
	graph.Types[post.ID] = post
	graph.Packages[testPkgPath].Types = append(graph.Packages[testPkgPath].Types, post.ID)

	return graph
}

func TestValidate(t *testing.T) {
	mf := &File{
		Types: []TypeSpec{{
			Name: "Post",
			Fields: map[string][]string{
				"Title":       {"set"},
				"legacy_body": {"panic"},
			},
		}},
	}

	res, diags := Validate(mf, testGraph(), testPkgPath)

	require.False(t, diags.HasErrors(), diags.Error())
	assert.Equal(t, []analyze.TypeID{{PkgPath: testPkgPath, Name: "Post"}}, res.Types)

	overrides := res.Overrides["Post"]
	require.NotNil(t, overrides)
	assert.True(t, overrides["Title"].Has(directive.AlwaysSet))
	assert.True(t, overrides["LegacyBody"].Has(directive.Panic), "snake_case keys resolve to Go names")
}

func TestValidate_UnknownType(t *testing.T) {
	mf := &File{Types: []TypeSpec{{Name: "Posts"}}}

	_, diags := Validate(mf, testGraph(), testPkgPath)

	require.True(t, diags.HasErrors())
	assert.Equal(t, diagnostic.CodeUnknownType, diags.Errors[0].Code)
	assert.Equal(t, []string{"Post"}, diags.Errors[0].Suggestions)
}

func TestValidate_UnknownField(t *testing.T) {
	mf := &File{
		Types: []TypeSpec{{
			Name:   "Post",
			Fields: map[string][]string{"Titel": {"set"}},
		}},
	}

	_, diags := Validate(mf, testGraph(), testPkgPath)

	require.True(t, diags.HasErrors())
	assert.Equal(t, diagnostic.CodeUnknownField, diags.Errors[0].Code)
	assert.Equal(t, []string{"Title"}, diags.Errors[0].Suggestions)
}

func TestValidate_BadDirective(t *testing.T) {
	mf := &File{
		Types: []TypeSpec{{
			Name:   "Post",
			Fields: map[string][]string{"Title": {"sometimes"}},
		}},
	}

	_, diags := Validate(mf, testGraph(), testPkgPath)

	require.True(t, diags.HasErrors())
	assert.Equal(t, diagnostic.CodeUnknownDirective, diags.Errors[0].Code)
}

func TestValidate_PackageNotLoaded(t *testing.T) {
	mf := &File{Types: []TypeSpec{{Name: "Post"}}}

	_, diags := Validate(mf, analyze.NewTypeGraph(), testPkgPath)

	require.True(t, diags.HasErrors())
	assert.Equal(t, diagnostic.CodeUnknownType, diags.Errors[0].Code)
}
