package foreign

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ShapeError reports a wire value for a reference field that is neither
// key-shaped, value-shaped, nor a permitted null.
type ShapeError struct {
	Data     []byte
	ValueErr error
	KeyErr   error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("foreign reference: %s decodes as neither value (%v) nor key (%v)",
		e.Data, e.ValueErr, e.KeyErr)
}

// UnmarshalJSON resolves the three wire shapes a reference field may come
// back as: a nested value decodes to Loaded, a bare key to KeyOnly and an
// explicit null to Unloaded. A field absent from the wire never reaches
// this method and leaves the zero value, which is Unloaded as well. Any
// other shape fails with a *ShapeError.
func (f *Foreign[V, K]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		f.Unload()
		return nil
	}

	// Objects and arrays are value-shaped first: a loaded record (or list
	// of records) can only be V, while a bare key is usually a scalar.
	// Trying both orders keeps exotic key types working.
	valueFirst := len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')

	var value V
	var key K
	if valueFirst {
		valueErr := json.Unmarshal(trimmed, &value)
		if valueErr == nil {
			f.SetValue(value)
			return nil
		}
		keyErr := json.Unmarshal(trimmed, &key)
		if keyErr == nil {
			f.SetKey(key)
			return nil
		}
		return &ShapeError{Data: trimmed, ValueErr: valueErr, KeyErr: keyErr}
	}

	keyErr := json.Unmarshal(trimmed, &key)
	if keyErr == nil {
		f.SetKey(key)
		return nil
	}
	valueErr := json.Unmarshal(trimmed, &value)
	if valueErr == nil {
		f.SetValue(value)
		return nil
	}
	return &ShapeError{Data: trimmed, ValueErr: valueErr, KeyErr: keyErr}
}

// MarshalJSON emits the wire shape matching the reference's state: the
// key for KeyOnly, null for Unloaded, and for Loaded either the derived
// key (the default; a derivation failure aborts the whole serialization
// with a *KeyDerivationError) or the full value when serialize-as-value
// was allowed.
func (f Foreign[V, K]) MarshalJSON() ([]byte, error) {
	switch f.state {
	case Loaded:
		if f.valueSerializeAllowed() {
			return json.Marshal(f.value)
		}
		key, err := f.value.ForeignKey()
		if err != nil {
			return nil, &KeyDerivationError{Err: err}
		}
		return json.Marshal(key)
	case KeyOnly:
		return json.Marshal(f.key)
	default:
		return []byte("null"), nil
	}
}
