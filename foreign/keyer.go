package foreign

import (
	"errors"
	"fmt"
)

// Keyer is the capability every referenceable type must provide: produce
// the key the type resolves to, or fail if it has none.
type Keyer[K any] interface {
	ForeignKey() (K, error)
}

// ErrMissingKey is returned by Keyer implementations whose key is
// optional and currently unset.
var ErrMissingKey = errors.New("value has no key")

// KeyDerivationError reports that a loaded reference's value could not
// produce a key during serialization.
type KeyDerivationError struct {
	Err error
}

func (e *KeyDerivationError) Error() string {
	return fmt.Sprintf("derive foreign key: %v", e.Err)
}

func (e *KeyDerivationError) Unwrap() error { return e.Err }
