package schema

import (
	"fmt"

	"github.com/roach88/loom/mdl"
	"github.com/roach88/loom/query"
)

// Schema is the explicit runtime namespace built from one parsed model:
// its field constants, relation accessors and node-label helpers.
type Schema struct {
	name    string
	alias   string
	partial bool
	origin  []string

	fields    []Field
	byName    map[string]Field
	relations map[string]Relation
}

// FromModel builds the schema value for a parsed model. Duplicate field
// names are permitted by the grammar; here the last declaration wins for
// lookups while the ordered field list keeps every declaration. Run
// mdl.Model.Check beforehand to reject duplicates instead.
func FromModel(m *mdl.Model) *Schema {
	s := &Schema{
		name:      m.Name.Value,
		partial:   m.Partial(),
		byName:    make(map[string]Field, len(m.Fields)),
		relations: make(map[string]Relation),
	}
	if m.Alias != nil {
		s.alias = m.Alias.Value
	}

	for _, field := range m.Fields {
		switch f := field.(type) {
		case mdl.Property:
			s.add(Field{name: f.Name.Value, kind: KindProperty, public: f.Pub})
		case mdl.ForeignNode:
			s.add(Field{name: f.Name.Value, kind: KindForeign, public: f.Pub})
		case mdl.Relation:
			s.add(Field{name: f.Alias.Value, kind: KindRelation, public: f.Pub})
			s.relations[f.Alias.Value] = Relation{
				alias:   f.Alias.Value,
				edge:    f.Name.Value,
				foreign: f.Foreign.Value,
				dir:     f.Dir,
			}
		}
	}
	return s
}

func (s *Schema) add(f Field) {
	s.fields = append(s.fields, f)
	s.byName[f.name] = f
}

// Name returns the model name.
func (s *Schema) Name() string { return s.name }

// Alias returns the model alias, or the empty string when none was
// declared.
func (s *Schema) Alias() string { return s.alias }

// Partial reports whether the model asked for a partial builder.
func (s *Schema) Partial() bool { return s.partial }

// Fields returns the field constants in declaration order, each carrying
// the schema's current origin.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	for i, f := range s.fields {
		out[i] = s.originate(f)
	}
	return out
}

// PublicFields returns the fields marked pub, in declaration order.
func (s *Schema) PublicFields() []Field {
	var out []Field
	for _, f := range s.fields {
		if f.public {
			out = append(out, s.originate(f))
		}
	}
	return out
}

// Field looks a field constant up by name (for relations: by alias).
func (s *Schema) Field(name string) (Field, bool) {
	f, ok := s.byName[name]
	if !ok {
		return Field{}, false
	}
	return s.originate(f), true
}

// MustField is Field for names known to exist; it panics otherwise.
func (s *Schema) MustField(name string) Field {
	f, ok := s.Field(name)
	if !ok {
		panic(fmt.Sprintf("schema %s: no field %q", s.name, name))
	}
	return f
}

// Relation looks an edge traversal up by its alias.
func (s *Schema) Relation(alias string) (Relation, bool) {
	r, ok := s.relations[alias]
	return r, ok
}

// MustRelation is Relation for aliases known to exist; it panics otherwise.
func (s *Schema) MustRelation(alias string) Relation {
	r, ok := s.relations[alias]
	if !ok {
		panic(fmt.Sprintf("schema %s: no relation %q", s.name, alias))
	}
	return r
}

// Label renders a record id under this model's table, e.g. "Account:john".
func (s *Schema) Label(id string) string {
	return NamedLabel(s.name, id)
}

// WithOrigin returns a copy of the schema whose field constants render
// behind the given path segments, the shape a related model's fields take
// when addressed through a foreign node or relation.
func (s *Schema) WithOrigin(segments ...string) *Schema {
	clone := *s
	origin := make([]string, 0, len(s.origin)+len(segments))
	origin = append(origin, segments...)
	origin = append(origin, s.origin...)
	clone.origin = origin
	return &clone
}

func (s *Schema) originate(f Field) Field {
	if len(s.origin) == 0 {
		return f
	}
	origin := make([]string, 0, len(s.origin)+len(f.origin))
	origin = append(origin, s.origin...)
	origin = append(origin, f.origin...)
	f.origin = origin
	return f
}

// SetObject appends a `field = $field` SET assignment for each property
// and foreign field, the whole-record convenience the partial option
// narrows: a partial model contributes only its pub fields, a full model
// contributes every one.
func (s *Schema) SetObject(b *query.Builder) *query.Builder {
	for _, f := range s.fields {
		if f.kind == KindRelation {
			continue
		}
		if s.partial && !f.public {
			continue
		}
		b.Set(s.originate(f).EqualsParameterized())
	}
	return b
}

// Relation is a named directed edge traversal of a schema.
type Relation struct {
	alias   string
	edge    string
	foreign string
	dir     mdl.Direction
}

// Alias returns the name application code addresses the traversal by.
func (r Relation) Alias() string { return r.alias }

// Edge returns the edge name crossed by the traversal.
func (r Relation) Edge() string { return r.edge }

// ForeignName returns the related model's name.
func (r Relation) ForeignName() string { return r.foreign }

// Direction returns the traversal direction.
func (r Relation) Direction() mdl.Direction { return r.dir }

// String renders the traversal path, `->edge->Foreign` outgoing or
// `<-edge<-Foreign` incoming.
func (r Relation) String() string {
	arrow := "->"
	if r.dir == mdl.Incoming {
		arrow = "<-"
	}
	return arrow + r.edge + arrow + r.foreign
}

// Aliased renders the traversal with its alias, e.g.
// `->manage->Project as projects`.
func (r Relation) Aliased() string {
	return AsAlias(r.String(), r.alias)
}

// Schema re-roots the related model's schema under this traversal's
// alias, so its fields render as `alias.field`.
func (r Relation) Schema(foreign *Schema) *Schema {
	return foreign.WithOrigin(r.alias)
}
