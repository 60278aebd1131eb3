package query

// Compile runs the injecter against a fresh builder and returns the
// rendered query string together with the final bindings map. Every
// binding produced by the stock injecters has a matching `$name`
// placeholder in the string; Bind entries keep that invariant only if the
// caller's literal conditions reference them.
func Compile(inj Injecter) (string, Bindings, error) {
	b := NewBuilder()
	bind := Bindings{}
	if err := b.Apply(bind, inj); err != nil {
		return "", nil, err
	}
	return b.Build(), bind, nil
}

// SelectQuery compiles `SELECT what FROM from` extended by the given
// injecter, typically a combination of Where, Pagination and Fetch.
func SelectQuery(what, from string, inj Injecter) (string, Bindings, error) {
	return Compile(Group(Select(what), From(from), inj))
}

// CreateQuery compiles `CREATE target` extended by the given injecter,
// typically a Set.
func CreateQuery(target string, inj Injecter) (string, Bindings, error) {
	return Compile(Group(Create(target), inj))
}

// UpdateQuery compiles `UPDATE target` extended by the given injecter.
func UpdateQuery(target string, inj Injecter) (string, Bindings, error) {
	return Compile(Group(Update(target), inj))
}

// DeleteQuery compiles `DELETE target` extended by the given injecter.
func DeleteQuery(target string, inj Injecter) (string, Bindings, error) {
	return Compile(Group(Delete(target), inj))
}
