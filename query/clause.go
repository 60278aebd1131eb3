package query

// Clause identifies the category of a query segment. Compiled output
// orders clauses by category in the target language's statement order,
// regardless of the order builder calls were made in.
type Clause int

const (
	ClauseUse Clause = iota
	ClauseCreate
	ClauseRelate
	ClauseUpdate
	ClauseDelete
	ClauseSelect
	ClauseFrom
	ClauseContent
	ClauseSet
	ClauseWhere
	ClauseGroupBy
	ClauseOrderBy
	ClauseLimit
	ClauseStartAt
	ClauseFetch

	// ClauseRaw collects free text appended with Raw; it renders last and
	// without a leading keyword.
	ClauseRaw
)

// clauseOrder is the fixed emission order at compile time.
var clauseOrder = []Clause{
	ClauseUse,
	ClauseCreate,
	ClauseRelate,
	ClauseUpdate,
	ClauseDelete,
	ClauseSelect,
	ClauseFrom,
	ClauseContent,
	ClauseSet,
	ClauseWhere,
	ClauseGroupBy,
	ClauseOrderBy,
	ClauseLimit,
	ClauseStartAt,
	ClauseFetch,
	ClauseRaw,
}

// Keyword returns the clause keyword emitted in front of the segment text.
func (c Clause) Keyword() string {
	switch c {
	case ClauseUse:
		return "USE"
	case ClauseCreate:
		return "CREATE"
	case ClauseRelate:
		return "RELATE"
	case ClauseUpdate:
		return "UPDATE"
	case ClauseDelete:
		return "DELETE"
	case ClauseSelect:
		return "SELECT"
	case ClauseFrom:
		return "FROM"
	case ClauseContent:
		return "CONTENT"
	case ClauseSet:
		return "SET"
	case ClauseWhere:
		return "WHERE"
	case ClauseGroupBy:
		return "GROUP BY"
	case ClauseOrderBy:
		return "ORDER BY"
	case ClauseLimit:
		return "LIMIT"
	case ClauseStartAt:
		return "START AT"
	case ClauseFetch:
		return "FETCH"
	case ClauseRaw:
		return ""
	}
	return ""
}

// joiner returns the default separator placed between fragments
// accumulated under the same clause. WHERE conditions conjoin with AND;
// list-shaped clauses separate with a comma.
func (c Clause) joiner() string {
	switch c {
	case ClauseWhere:
		return "AND"
	case ClauseRaw:
		return ""
	default:
		return ","
	}
}

func (c Clause) String() string {
	if c == ClauseRaw {
		return "RAW"
	}
	return c.Keyword()
}
