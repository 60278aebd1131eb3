package mdl

import (
	"fmt"
	"strings"
)

// Print renders the model back to canonical source text. Re-parsing the
// output yields an AST equal to the input, so Print/Parse round-trips.
func Print(m *Model) string {
	var b strings.Builder

	b.WriteString(m.Name.String())
	if m.Alias != nil {
		b.WriteString(" as ")
		b.WriteString(m.Alias.String())
	}
	if m.Options != nil {
		names := make([]string, len(m.Options))
		for i, opt := range m.Options {
			names[i] = string(opt)
		}
		fmt.Fprintf(&b, " with(%s)", strings.Join(names, ", "))
	}

	b.WriteString(" {")
	if len(m.Fields) == 0 {
		b.WriteString("}")
		return b.String()
	}
	b.WriteString("\n")
	for _, field := range m.Fields {
		b.WriteString("  ")
		printField(&b, field)
		b.WriteString(",\n")
	}
	b.WriteString("}")
	return b.String()
}

func printField(b *strings.Builder, field Field) {
	if field.Public() {
		b.WriteString("pub ")
	}
	switch f := field.(type) {
	case Property:
		b.WriteString(f.Name.String())
	case ForeignNode:
		fmt.Fprintf(b, "%s<%s>", f.Name, f.Foreign)
	case Relation:
		arrow := "->"
		if f.Dir == Incoming {
			arrow = "<-"
		}
		fmt.Fprintf(b, "%s%s%s%s as %s", arrow, f.Name, arrow, f.Foreign, f.Alias)
	default:
		panic(fmt.Sprintf("unknown field shape %T", field))
	}
}
