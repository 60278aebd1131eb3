// Package query assembles textual queries for a graph/document query
// language as an ordered set of labeled clause segments, and compiles them
// into a query string plus a map of bound variables.
//
// The Builder offers a fluent clause-by-clause surface:
//
//	q := query.NewBuilder().
//		Select("*").
//		From("user").
//		Where("name = $name").
//		Build()
//
// Injecters are small composable units that contribute clause fragments
// and bound variables; Compile runs them and returns the finished string
// together with its bindings:
//
//	q, bind, err := query.Compile(query.Group(
//		query.Select("*"),
//		query.From("user"),
//		query.Where{"name": "John"},
//	))
//
// Free clause text is emitted verbatim: the builder provides no escaping
// or injection protection. Untrusted values must go through bound
// variables, never through literal text.
package query
