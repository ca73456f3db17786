package gen

import (
	"io"
	"sort"
	"text/template"

	"github.com/ep4sh/randgen/internal/resolve"
)

// executableTemplate is the subset of text/template used by render.
type executableTemplate interface {
	Execute(w io.Writer, data any) error
}

// recordData holds all data needed for the record (struct) template.
type recordData struct {
	PackageName string
	TypeName    string
	Imports     []resolve.Import
	Assignments []string
	Source      *sourceData
}

// sourceData describes the capability interface of one type.
type sourceData struct {
	Name    string
	Methods []resolve.Method
}

// unionData holds all data needed for the union (interface) template.
type unionData struct {
	PackageName string
	TypeName    string
	Variants    []variantData
}

// variantData is one union variant case.
type variantData struct {
	Name string
	Ptr  bool // the variant implements the interface with pointer receivers
	Last bool
}

// helpersData holds all data needed for the shared helpers template.
type helpersData struct {
	PackageName string
}

func sortFiles(files []GeneratedFile) {
	sort.Slice(files, func(i, j int) bool {
		if files[i].Dir != files[j].Dir {
			return files[i].Dir < files[j].Dir
		}

		return files[i].Filename < files[j].Filename
	})
}

var recordTemplate = template.Must(template.New("record").Parse(`// Code generated by randgen. DO NOT EDIT.

package {{.PackageName}}

import (
	"math/rand"
{{range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{if .Source}}
// {{.Source.Name}} supplies the field values Random{{.TypeName}} can not
// synthesize on its own.
type {{.Source.Name}} interface {
{{range .Source.Methods}}	{{.Name}}(rng *rand.Rand) {{.ReturnType}}
{{end}}}
{{end}}
// Random{{.TypeName}} returns a pseudo-random, structurally valid {{.TypeName}}.
func Random{{.TypeName}}(rng *rand.Rand{{if .Source}}, src {{.Source.Name}}{{end}}) {{.TypeName}} {
	return {{.TypeName}}{
{{range .Assignments}}		{{.}},
{{end}}	}
}

// Random{{.TypeName}}Func returns a pseudo-random {{.TypeName}} after applying
// customize to it.
func Random{{.TypeName}}Func(rng *rand.Rand{{if .Source}}, src {{.Source.Name}}{{end}}, customize func(*{{.TypeName}})) {{.TypeName}} {
	v := Random{{.TypeName}}(rng{{if .Source}}, src{{end}})
	customize(&v)
	return v
}
`))

var unionTemplate = template.Must(template.New("union").Parse(`// Code generated by randgen. DO NOT EDIT.

package {{.PackageName}}

import (
	"math/rand"
)

// Random{{.TypeName}} returns a pseudo-random {{.TypeName}} variant.
func Random{{.TypeName}}(rng *rand.Rand) {{.TypeName}} {
	switch rng.Intn({{len .Variants}}) {
{{range $i, $v := .Variants}}{{if $v.Last}}	default:
{{else}}	case {{$i}}:
{{end}}{{if $v.Ptr}}		v := Random{{$v.Name}}(rng)
		return &v
{{else}}		return Random{{$v.Name}}(rng)
{{end}}{{end}}	}
}
`))

var helpersTemplate = template.Must(template.New("helpers").Parse(`// Code generated by randgen. DO NOT EDIT.

package {{.PackageName}}

import (
	"math/rand"
)

const randAlphanum = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randString returns a fixed-length random alphanumeric string.
func randString(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = randAlphanum[rng.Intn(len(randAlphanum))]
	}

	return string(b)
}
`))
