package query

import "strconv"

// Injecter is the capability the builder composes query parts from: given
// the builder and the current bindings map, it contributes zero or more
// clause fragments and may add bound variables. Injecters are applied in
// the order supplied; see Bindings.Merge for the collision policy.
type Injecter interface {
	Inject(b *Builder, bind Bindings) error
}

// Group composes injecters into one; members run left to right.
func Group(injecters ...Injecter) Injecter {
	return group(injecters)
}

type group []Injecter

func (g group) Inject(b *Builder, bind Bindings) error {
	return b.Apply(bind, g...)
}

// When gates an injecter behind a condition: with a false cond the
// returned injecter contributes nothing.
func When(cond bool, inj Injecter) Injecter {
	if !cond {
		return group(nil)
	}
	return inj
}

// Select contributes a SELECT field list.
type Select string

func (s Select) Inject(b *Builder, _ Bindings) error {
	b.Select(string(s))
	return nil
}

// From contributes a FROM target.
type From string

func (f From) Inject(b *Builder, _ Bindings) error {
	b.From(string(f))
	return nil
}

// Create contributes a CREATE target.
type Create string

func (c Create) Inject(b *Builder, _ Bindings) error {
	b.Create(string(c))
	return nil
}

// Update contributes an UPDATE target.
type Update string

func (u Update) Inject(b *Builder, _ Bindings) error {
	b.Update(string(u))
	return nil
}

// Delete contributes a DELETE target.
type Delete string

func (d Delete) Inject(b *Builder, _ Bindings) error {
	b.Delete(string(d))
	return nil
}

// Relate contributes a RELATE edge expression.
type Relate string

func (r Relate) Inject(b *Builder, _ Bindings) error {
	b.Relate(string(r))
	return nil
}

// Content contributes a CONTENT body.
type Content string

func (c Content) Inject(b *Builder, _ Bindings) error {
	b.Content(string(c))
	return nil
}

// Cond contributes one literal WHERE condition, conjoined with AND. The
// text is emitted verbatim; reference bound variables with $name and bind
// them with Bind.
type Cond string

func (c Cond) Inject(b *Builder, _ Bindings) error {
	b.Where(string(c))
	return nil
}

// OrCond contributes one literal WHERE condition joined with OR.
type OrCond string

func (c OrCond) Inject(b *Builder, _ Bindings) error {
	b.OrWhere(string(c))
	return nil
}

// Where flattens a JSON-like filter object into `path = $binding` WHERE
// conditions conjoined with AND, one binding per leaf. Nested objects
// become dotted paths. See Flatten for the supported leaf shapes.
type Where map[string]any

func (w Where) Inject(b *Builder, bind Bindings) error {
	return Flatten(map[string]any(w), func(path, name string, value any) {
		b.Where(path + " = $" + name)
		bind[name] = value
	})
}

// Or is Where with OR between the produced conditions.
type Or map[string]any

func (o Or) Inject(b *Builder, bind Bindings) error {
	return Flatten(map[string]any(o), func(path, name string, value any) {
		b.OrWhere(path + " = $" + name)
		bind[name] = value
	})
}

// Set flattens a JSON-like object into `path = $binding` SET assignments,
// one binding per leaf.
type Set map[string]any

func (s Set) Inject(b *Builder, bind Bindings) error {
	return Flatten(map[string]any(s), func(path, name string, value any) {
		b.Set(path + " = $" + name)
		bind[name] = value
	})
}

// Fetch contributes traversals to the FETCH clause.
type Fetch []string

func (f Fetch) Inject(b *Builder, _ Bindings) error {
	for _, field := range f {
		b.Fetch(field)
	}
	return nil
}

// GroupBy contributes fields to the GROUP BY clause.
type GroupBy []string

func (g GroupBy) Inject(b *Builder, _ Bindings) error {
	for _, field := range g {
		b.GroupBy(field)
	}
	return nil
}

// OrderAsc contributes an ascending ORDER BY field.
type OrderAsc string

func (o OrderAsc) Inject(b *Builder, _ Bindings) error {
	b.OrderByAsc(string(o))
	return nil
}

// OrderDesc contributes a descending ORDER BY field.
type OrderDesc string

func (o OrderDesc) Inject(b *Builder, _ Bindings) error {
	b.OrderByDesc(string(o))
	return nil
}

// Limit contributes a LIMIT value.
type Limit uint64

func (l Limit) Inject(b *Builder, _ Bindings) error {
	b.Limit(strconv.FormatUint(uint64(l), 10))
	return nil
}

// StartAt contributes a START AT offset.
type StartAt uint64

func (s StartAt) Inject(b *Builder, _ Bindings) error {
	b.StartAt(strconv.FormatUint(uint64(s), 10))
	return nil
}

// Pagination contributes LIMIT and START AT for the half-open row range
// [Start, End). START AT is omitted for a zero Start. An End at or below
// Start yields LIMIT 0 rather than wrapping.
type Pagination struct {
	Start uint64
	End   uint64
}

func (p Pagination) Inject(b *Builder, _ Bindings) error {
	var limit uint64
	if p.End > p.Start {
		limit = p.End - p.Start
	}
	b.Limit(strconv.FormatUint(limit, 10))
	b.When(p.Start > 0, func(b *Builder) *Builder {
		return b.StartAt(strconv.FormatUint(p.Start, 10))
	})
	return nil
}

// Bind contributes bound variables without any clause text, for values
// referenced by literal conditions.
type Bind Bindings

func (v Bind) Inject(_ *Builder, bind Bindings) error {
	bind.Merge(Bindings(v))
	return nil
}

// Raw contributes free text after every ordered clause.
type Raw string

func (r Raw) Inject(b *Builder, _ Bindings) error {
	b.Raw(string(r))
	return nil
}
