package schema

import (
	"strings"

	"github.com/google/uuid"
)

// Node-path helpers for composing record labels and traversal strings by
// hand, without a parsed model.

// With draws the start of an outgoing traversal: `left->right`.
func With(left, right string) string {
	return left + "->" + right
}

// From draws the start of an incoming traversal: `left<-right`.
func From(left, right string) string {
	return left + "<-" + right
}

// NamedLabel renders a record id under a table label: `Label:id`.
func NamedLabel(label, id string) string {
	return label + ":" + id
}

// Equals renders `left = right` verbatim; strings are not quoted.
func Equals(left, right string) string {
	return left + " = " + right
}

// EqualsParameterized renders `path = $path`, collapsing dots in the
// placeholder name to underscores.
func EqualsParameterized(path string) string {
	return path + " = $" + strings.ReplaceAll(path, ".", "_")
}

// AsAlias renders `expr as alias`.
func AsAlias(expr, alias string) string {
	return expr + " as " + alias
}

// Filter wraps the last path segment in parentheses carrying a condition:
//
//	Filter("account->manage->project", "name = 'demo'")
//	// "account->manage->(project WHERE name = 'demo')"
func Filter(path, condition string) string {
	cut := len(path)
	for cut > 0 && isAlnum(path[cut-1]) {
		cut--
	}
	return path[:cut] + "(" + path[cut:] + " WHERE " + condition + ")"
}

func isAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// RandomID returns a fresh time-ordered id for building new record
// labels, e.g. NamedLabel("Account", RandomID()).
func RandomID() string {
	return uuid.Must(uuid.NewV7()).String()
}
