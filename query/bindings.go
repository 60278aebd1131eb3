package query

// Bindings maps variable names to the values bound for the matching
// `$name` placeholders in a compiled query string. Values are loosely
// typed: strings, numbers, bools, nil and nested structures all pass
// through to the driver untouched.
type Bindings map[string]any

// Merge copies every entry of other into b. A name present in both maps
// is overwritten: collisions across composed injecters resolve
// last-write-wins, a documented sharp edge rather than an error.
func (b Bindings) Merge(other Bindings) {
	for name, value := range other {
		b[name] = value
	}
}
