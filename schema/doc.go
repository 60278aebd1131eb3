// Package schema turns a parsed mdl.Model into an explicitly-constructed
// schema value: a namespace of field constants carrying each field's
// rendered path text, plus relation accessors that reach into the related
// model's own fields. Schemas are plain values that are built, passed
// around and tested in isolation; there is no process-wide registry.
//
//	model, _ := mdl.Parse(`Account { id, pub handle, ->manage->Project as projects }`)
//	account := schema.FromModel(model)
//
//	account.MustField("handle").String()       // "handle"
//	account.MustRelation("projects").String()  // "->manage->Project"
package schema
