// Package mdl lexes and parses the model definition language: a small
// declarative block describing a record's plain properties, foreign-node
// references and directed edge relations.
//
//	Account as account with(partial) {
//	  id,
//	  pub handle,
//	  friends<Account>,
//	  ->manage->Project as projects,
//	}
//
// The output of Parse is a plain Model AST. The package performs no
// validation beyond the grammar itself; post-parse diagnostics such as
// duplicate field names are available through Model.Check so that callers
// can decide how strict to be.
package mdl
