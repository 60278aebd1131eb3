package mdl

// Identifier is a name appearing in model source. Raw marks identifiers
// written with the `r#` prefix because they collide with a reserved word;
// the marker affects code generation only, so equality is by Value alone.
type Identifier struct {
	Value string
	Raw   bool
}

// Equal reports whether two identifiers name the same thing. The raw
// marker is ignored.
func (i Identifier) Equal(other Identifier) bool {
	return i.Value == other.Value
}

// String returns the identifier's source spelling, including the raw
// marker when present.
func (i Identifier) String() string {
	if i.Raw {
		return "r#" + i.Value
	}
	return i.Value
}

// Option is a flag from a model's with(...) clause. Unrecognized flags are
// preserved verbatim so a downstream consumer can interpret them.
type Option string

// OptionPartial asks the code generator for a partial builder: only public
// fields participate in whole-record convenience helpers.
const OptionPartial Option = "partial"

// Direction is the traversal direction of an edge relation.
type Direction int

const (
	// Outgoing follows the edge away from the model (`->`).
	Outgoing Direction = iota

	// Incoming follows the edge toward the model (`<-`).
	Incoming
)

func (d Direction) String() string {
	if d == Incoming {
		return "incoming"
	}
	return "outgoing"
}

// Field is a sealed interface over the three field shapes. Only Property,
// ForeignNode and Relation implement it; consumers should switch over all
// three so a new shape cannot be silently ignored.
type Field interface {
	// FieldName is the name the field is referred to by within the model.
	FieldName() Identifier

	// Public reports whether the field carries the `pub` marker.
	Public() bool

	field()
}

// Property is a plain scalar or attribute field.
type Property struct {
	Name Identifier
	Pub  bool
}

func (p Property) FieldName() Identifier { return p.Name }
func (p Property) Public() bool          { return p.Pub }
func (Property) field()                  {}

// ForeignNode is a field holding a reference to another model's instances,
// written `name<Foreign>`.
type ForeignNode struct {
	Name    Identifier
	Foreign Identifier
	Pub     bool
}

func (f ForeignNode) FieldName() Identifier { return f.Name }
func (f ForeignNode) Public() bool          { return f.Pub }
func (ForeignNode) field()                  {}

// Relation is a named directed edge traversal, written
// `->edge->Foreign as alias` or `<-edge<-Foreign as alias`.
type Relation struct {
	Name    Identifier
	Foreign Identifier
	Alias   Identifier
	Dir     Direction
	Pub     bool
}

// FieldName is the alias: the name application code addresses the
// traversal by. The edge name stays available as Name.
func (r Relation) FieldName() Identifier { return r.Alias }
func (r Relation) Public() bool          { return r.Pub }
func (Relation) field()                  {}

// Model is the parse result of one model definition block.
type Model struct {
	Name    Identifier
	Alias   *Identifier
	Options []Option
	Fields  []Field
}

// Partial reports whether the model carries the partial option flag.
func (m *Model) Partial() bool {
	for _, opt := range m.Options {
		if opt == OptionPartial {
			return true
		}
	}
	return false
}
