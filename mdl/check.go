package mdl

import "fmt"

// DuplicateFieldError reports two fields sharing a name within one model.
// The grammar itself permits duplicates; Check surfaces them so callers
// can decide whether to reject the model.
type DuplicateFieldError struct {
	Model string
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("model %s: duplicate field %q", e.Model, e.Field)
}

// Check runs post-parse diagnostics and returns one error per finding.
// It reports duplicate field names (a relation counts under its alias,
// the name it is addressed by) and a model alias that shadows a field.
// A nil result means the model is clean.
func (m *Model) Check() []error {
	var errs []error

	seen := make(map[string]bool, len(m.Fields))
	for _, field := range m.Fields {
		name := field.FieldName().Value
		if seen[name] {
			errs = append(errs, &DuplicateFieldError{Model: m.Name.Value, Field: name})
			continue
		}
		seen[name] = true
	}

	if m.Alias != nil && seen[m.Alias.Value] {
		errs = append(errs, fmt.Errorf("model %s: alias %q shadows a field of the same name",
			m.Name.Value, m.Alias.Value))
	}

	return errs
}
