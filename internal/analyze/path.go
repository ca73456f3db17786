package analyze

import (
	"strings"
)

// TypePath builds a readable path string for a field within a type.
// Examples:
//   - "Post" for the type itself
//   - "Post.Tags" for a field
//   - "Post.Tags[]" for the element of a slice field
//   - "Post.Author.Email" for a field within a nested struct
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root type name.
func NewTypePath(root string) *TypePath {
	return &TypePath{
		parts: []string{root},
	}
}

// Field appends a field name to the path.
func (p *TypePath) Field(name string) *TypePath {
	return &TypePath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// Elem appends a slice-element indicator "[]" to the path.
func (p *TypePath) Elem() *TypePath {
	if len(p.parts) == 0 {
		return &TypePath{parts: []string{"[]"}}
	}
	newParts := make([]string, len(p.parts))
	copy(newParts, p.parts)
	newParts[len(newParts)-1] = newParts[len(newParts)-1] + "[]"
	return &TypePath{parts: newParts}
}

// Pointer appends a pointer indicator "*" to the path.
func (p *TypePath) Pointer() *TypePath {
	if len(p.parts) == 0 {
		return &TypePath{parts: []string{"*"}}
	}
	newParts := make([]string, len(p.parts))
	copy(newParts, p.parts)
	newParts[len(newParts)-1] = "*" + newParts[len(newParts)-1]
	return &TypePath{parts: newParts}
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}
