package schema

import "strings"

// Kind classifies a schema field.
type Kind int

const (
	// KindProperty is a plain attribute field.
	KindProperty Kind = iota

	// KindForeign is a reference to another model's instances.
	KindForeign

	// KindRelation is a named edge traversal.
	KindRelation
)

// Field is one named constant of a schema: it knows the field's rendered
// path text including any origin segments accumulated by traversing
// foreign nodes or relations.
type Field struct {
	name   string
	kind   Kind
	public bool
	origin []string
}

// Name returns the bare field name without origin segments.
func (f Field) Name() string { return f.name }

// Kind returns the field's classification.
func (f Field) Kind() Kind { return f.kind }

// Public reports whether the field carried the `pub` marker in its model.
func (f Field) Public() bool { return f.public }

// String renders the full dotted path, e.g. "author.name" for the name
// field reached through an author foreign node.
func (f Field) String() string {
	if len(f.origin) == 0 {
		return f.name
	}
	return strings.Join(f.origin, ".") + "." + f.name
}

// Prefixed returns a copy of the field with one more origin segment in
// front, as when the field is addressed through an enclosing alias.
func (f Field) Prefixed(segment string) Field {
	origin := make([]string, 0, len(f.origin)+1)
	origin = append(origin, segment)
	origin = append(origin, f.origin...)
	f.origin = origin
	return f
}

// BindName is the field path with dots replaced by underscores, safe to
// use as a bound variable name.
func (f Field) BindName() string {
	return strings.ReplaceAll(f.String(), ".", "_")
}

// EqualsParameterized renders `path = $path`, with dots in the
// placeholder name collapsed to underscores.
func (f Field) EqualsParameterized() string {
	return f.String() + " = $" + f.BindName()
}

// Compares renders `path OP $path` for an arbitrary comparison operator.
func (f Field) Compares(op string) string {
	return f.String() + " " + op + " $" + f.BindName()
}

// AsAlias renders `path as alias`.
func (f Field) AsAlias(alias string) string {
	return f.String() + " as " + alias
}
