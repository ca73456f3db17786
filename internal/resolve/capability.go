package resolve

import (
	"fmt"
	"sort"

	"github.com/ep4sh/randgen/internal/analyze"
)

// Method is one required capability-interface method.
type Method struct {
	Name       string
	ReturnType string
}

// Requirements accumulates the methods one type's constructor can not
// synthesize on its own and must receive from the caller. Keyed by method
// name, so two fields deriving the same name collapse into a single
// requirement. Scoped to one type's pass; never shared across types.
type Requirements struct {
	methods map[string]Method
}

// NewRequirements creates an empty requirement set.
func NewRequirements() *Requirements {
	return &Requirements{methods: make(map[string]Method)}
}

// Register records a required method. Registration is idempotent: a name
// registered twice yields exactly one method.
func (r *Requirements) Register(name, returnType string) {
	if _, ok := r.methods[name]; ok {
		return
	}

	r.methods[name] = Method{Name: name, ReturnType: returnType}
}

// IsEmpty reports whether no requirements were registered.
func (r *Requirements) IsEmpty() bool {
	return len(r.methods) == 0
}

// Len returns the number of registered methods.
func (r *Requirements) Len() int {
	return len(r.methods)
}

// Methods returns the registered methods sorted by name, for deterministic
// interface emission.
func (r *Requirements) Methods() []Method {
	out := make([]Method, 0, len(r.methods))
	for _, m := range r.methods {
		out = append(out, m)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// delegate registers the capability method for a custom field and returns the
// call-site fragment invoking it through the constructor's source parameter.
// Named fields derive Generate<FieldName>; embedded fields derive
// GenerateRandom<TypeName> from their type's name, keeping initialisms
// (an embedded PostID derives GenerateRandomPostID).
func (r *Resolver) delegate(f *analyze.FieldInfo, t *analyze.TypeInfo) string {
	name := "Generate" + f.Name
	if f.Embedded {
		name = "GenerateRandom" + f.Name
	}

	r.reqs.Register(name, r.typeText(t.GoType))

	return fmt.Sprintf("%s.%s(rng)", sourceParam, name)
}
