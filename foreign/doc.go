// Package foreign resolves the ambiguity of reference fields returned by
// graph/document queries: on the wire such a field is either a bare key,
// a fully loaded nested value, or absent. Foreign captures the three
// states explicitly so application code never has to guess which shape a
// query produced.
//
//	type File struct {
//		Name   string                       `json:"name"`
//		Author foreign.Foreign[User, string] `json:"author"`
//	}
//
// The state is fixed when the record is decoded and read through Value
// and Key afterwards. Serialization collapses a loaded value back to its
// key unless AllowValueSerialize was called on the field.
package foreign
