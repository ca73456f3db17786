package manifest

import (
	"fmt"

	"github.com/go-openapi/inflect"

	"github.com/ep4sh/randgen/internal/analyze"
	"github.com/ep4sh/randgen/internal/diagnostic"
	"github.com/ep4sh/randgen/internal/directive"
)

// Resolved is the validated view of a manifest against one loaded package:
// the types to generate and the per-field directive overrides, keyed by Go
// names.
type Resolved struct {
	Types     []analyze.TypeID
	Overrides map[string]map[string]directive.List
}

// Validate resolves the manifest against the analyzed package. Unknown type
// or field names and malformed directive items are error diagnostics; near
// misses are suggested.
func Validate(mf *File, graph *analyze.TypeGraph, pkgPath string) (*Resolved, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	pkgInfo := graph.Packages[pkgPath]
	if pkgInfo == nil {
		diags.AddError(diagnostic.CodeUnknownType,
			fmt.Sprintf("package %s was not loaded", pkgPath), "", "")
		return nil, diags
	}

	var typeNames []string
	for _, id := range pkgInfo.Types {
		typeNames = append(typeNames, id.Name)
	}

	res := &Resolved{
		Overrides: make(map[string]map[string]directive.List),
	}

	for _, spec := range mf.Types {
		id := analyze.TypeID{PkgPath: pkgPath, Name: spec.Name}

		info := graph.GetType(id)
		if info == nil {
			diags.Errors = append(diags.Errors, diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityError,
				Code:        diagnostic.CodeUnknownType,
				Message:     fmt.Sprintf("type %s not found in package %s", spec.Name, pkgPath),
				Type:        spec.Name,
				Suggestions: nearest(spec.Name, typeNames),
			})
			continue
		}

		res.Types = append(res.Types, id)

		if len(spec.Fields) == 0 {
			continue
		}

		overrides := make(map[string]directive.List)

		for key, items := range spec.Fields {
			fieldName, ok := resolveField(info, key)
			if !ok {
				diags.Errors = append(diags.Errors, diagnostic.Diagnostic{
					Severity:    diagnostic.SeverityError,
					Code:        diagnostic.CodeUnknownField,
					Message:     fmt.Sprintf("field %s not found on type %s", key, spec.Name),
					Type:        spec.Name,
					Field:       key,
					Suggestions: nearest(inflect.Camelize(key), fieldNames(info)),
				})
				continue
			}

			list, err := directive.Parse(items)
			if err != nil {
				if derr, ok := err.(*diagnostic.Error); ok {
					diags.AddErr(derr.At(spec.Name, spec.Name+"."+fieldName))
				} else {
					diags.AddError(diagnostic.CodeUnknownDirective, err.Error(), spec.Name, fieldName)
				}
				continue
			}

			overrides[fieldName] = list
		}

		if len(overrides) > 0 {
			res.Overrides[spec.Name] = overrides
		}
	}

	return res, diags
}

// resolveField matches a manifest field key against a struct's fields,
// accepting the exact Go name or its snake_case form.
func resolveField(info *analyze.TypeInfo, key string) (string, bool) {
	camel := inflect.Camelize(key)

	for _, f := range info.Fields {
		if f.Name == key || f.Name == camel {
			return f.Name, true
		}
	}

	return "", false
}

func fieldNames(info *analyze.TypeInfo) []string {
	var names []string
	for _, f := range info.Fields {
		names = append(names, f.Name)
	}

	return names
}
