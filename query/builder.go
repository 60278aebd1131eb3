package query

import "strings"

// fragment is one piece of text accumulated under a clause. glue is the
// separator emitted between the previous fragment and this one.
type fragment struct {
	glue string
	text string
}

// Builder is a mutable assembly of labeled clause segments. Calls append
// text under a clause category; Build renders the categories in the fixed
// clause order while preserving insertion order within each category.
//
// The zero value is not ready for use; call NewBuilder.
type Builder struct {
	segments map[Clause][]fragment
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{segments: make(map[Clause][]fragment)}
}

// Append adds text under the given clause using the clause's default
// joiner. Empty text is ignored. Any text is accepted verbatim.
func (b *Builder) Append(clause Clause, text string) *Builder {
	return b.appendWith(clause, clause.joiner(), text)
}

func (b *Builder) appendWith(clause Clause, glue, text string) *Builder {
	if text == "" {
		return b
	}
	b.segments[clause] = append(b.segments[clause], fragment{glue: glue, text: text})
	return b
}

// replace drops any accumulated fragments for clause and installs text as
// the single fragment. Used by LIMIT and START AT, which hold one value.
func (b *Builder) replace(clause Clause, text string) *Builder {
	if text == "" {
		return b
	}
	b.segments[clause] = []fragment{{text: text}}
	return b
}

// Use appends to the USE clause.
func (b *Builder) Use(target string) *Builder { return b.Append(ClauseUse, target) }

// Create starts or extends a CREATE statement.
func (b *Builder) Create(target string) *Builder { return b.Append(ClauseCreate, target) }

// Relate starts or extends a RELATE statement.
func (b *Builder) Relate(edge string) *Builder { return b.Append(ClauseRelate, edge) }

// Update starts or extends an UPDATE statement.
func (b *Builder) Update(target string) *Builder { return b.Append(ClauseUpdate, target) }

// Delete starts or extends a DELETE statement.
func (b *Builder) Delete(target string) *Builder { return b.Append(ClauseDelete, target) }

// Select appends a field list to the SELECT clause.
func (b *Builder) Select(fields string) *Builder { return b.Append(ClauseSelect, fields) }

// From appends a target to the FROM clause.
func (b *Builder) From(target string) *Builder { return b.Append(ClauseFrom, target) }

// Content sets the CONTENT clause body.
func (b *Builder) Content(body string) *Builder { return b.Append(ClauseContent, body) }

// Set appends an assignment to the SET clause.
func (b *Builder) Set(assignment string) *Builder { return b.Append(ClauseSet, assignment) }

// Where appends a condition to the WHERE clause, conjoined with AND.
func (b *Builder) Where(condition string) *Builder { return b.Append(ClauseWhere, condition) }

// OrWhere appends a condition to the WHERE clause, joined with OR.
func (b *Builder) OrWhere(condition string) *Builder {
	return b.appendWith(ClauseWhere, "OR", condition)
}

// GroupBy appends a field to the GROUP BY clause.
func (b *Builder) GroupBy(field string) *Builder { return b.Append(ClauseGroupBy, field) }

// OrderByAsc appends an ascending field to the ORDER BY clause.
func (b *Builder) OrderByAsc(field string) *Builder {
	return b.Append(ClauseOrderBy, field+" ASC")
}

// OrderByDesc appends a descending field to the ORDER BY clause.
func (b *Builder) OrderByDesc(field string) *Builder {
	return b.Append(ClauseOrderBy, field+" DESC")
}

// Limit sets the LIMIT clause. A later call overwrites an earlier one.
func (b *Builder) Limit(limit string) *Builder { return b.replace(ClauseLimit, limit) }

// StartAt sets the START AT clause. A later call overwrites an earlier one.
func (b *Builder) StartAt(offset string) *Builder { return b.replace(ClauseStartAt, offset) }

// Fetch appends a traversal to the FETCH clause.
func (b *Builder) Fetch(field string) *Builder { return b.Append(ClauseFetch, field) }

// Raw appends free text after every ordered clause.
func (b *Builder) Raw(text string) *Builder { return b.Append(ClauseRaw, text) }

// When applies fn to the builder only if cond holds, so a call chain can
// branch without breaking out into an if statement. With a false cond the
// builder is left untouched.
func (b *Builder) When(cond bool, fn func(*Builder) *Builder) *Builder {
	if !cond {
		return b
	}
	return fn(b)
}

// Apply runs the given injecters in order against this builder and the
// supplied bindings map. Binding name collisions resolve last-write-wins.
func (b *Builder) Apply(bind Bindings, injecters ...Injecter) error {
	for _, inj := range injecters {
		if inj == nil {
			continue
		}
		if err := inj.Inject(b, bind); err != nil {
			return err
		}
	}
	return nil
}

// Build renders the held segments into one query string: each clause
// present is emitted in the fixed clause order, its keyword followed by
// the accumulated fragments, clauses separated by a single space. Build
// does not mutate the builder; calling it twice yields identical output
// unless the builder changed in between.
func (b *Builder) Build() string {
	var out strings.Builder
	for _, clause := range clauseOrder {
		frags := b.segments[clause]
		if len(frags) == 0 {
			continue
		}
		if out.Len() > 0 {
			out.WriteString(" ")
		}
		if kw := clause.Keyword(); kw != "" {
			out.WriteString(kw)
			out.WriteString(" ")
		}
		for i, frag := range frags {
			if i > 0 {
				switch frag.glue {
				case "":
					out.WriteString(" ")
				case ",":
					out.WriteString(", ")
				default:
					out.WriteString(" ")
					out.WriteString(frag.glue)
					out.WriteString(" ")
				}
			}
			out.WriteString(frag.text)
		}
	}
	return out.String()
}
