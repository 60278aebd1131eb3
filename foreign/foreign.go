package foreign

import "sync/atomic"

// State is the load state of a reference field.
type State int

const (
	// Unloaded means the wire value was absent or null.
	Unloaded State = iota

	// KeyOnly means the wire carried a bare key for the referenced value.
	KeyOnly

	// Loaded means the wire carried the referenced value itself.
	Loaded
)

func (s State) String() string {
	switch s {
	case KeyOnly:
		return "key"
	case Loaded:
		return "loaded"
	default:
		return "unloaded"
	}
}

// Foreign is a tri-state container for a reference field of value type V
// resolving to key type K. The zero value is Unloaded.
//
// The serialize-as-value flag is auxiliary metadata, not part of the
// referenced data: it is stored as an atomic so it can be toggled through
// shared access, for instance on a reference nested in an otherwise
// read-only record. Concurrent togglers race benignly, last write wins.
type Foreign[V Keyer[K], K any] struct {
	state State
	value V
	key   K

	// 1 when serialization should emit the loaded value instead of its
	// derived key. Accessed atomically; see AllowValueSerialize.
	serializeValue int32
}

// NewValue returns a reference in the Loaded state.
func NewValue[V Keyer[K], K any](value V) Foreign[V, K] {
	return Foreign[V, K]{state: Loaded, value: value}
}

// NewKey returns a reference in the KeyOnly state.
func NewKey[V Keyer[K], K any](key K) Foreign[V, K] {
	return Foreign[V, K]{state: KeyOnly, key: key}
}

// New returns an Unloaded reference.
func New[V Keyer[K], K any]() Foreign[V, K] {
	return Foreign[V, K]{}
}

// State reports which of the three states the reference is in.
func (f *Foreign[V, K]) State() State { return f.state }

// IsLoaded reports whether the reference holds a loaded value.
func (f *Foreign[V, K]) IsLoaded() bool { return f.state == Loaded }

// IsKey reports whether the reference holds only a key.
func (f *Foreign[V, K]) IsKey() bool { return f.state == KeyOnly }

// IsUnloaded reports whether the reference holds nothing.
func (f *Foreign[V, K]) IsUnloaded() bool { return f.state == Unloaded }

// Value returns the contained value if the reference is Loaded. A KeyOnly
// reference never synthesizes a placeholder value.
func (f *Foreign[V, K]) Value() (V, bool) {
	if f.state != Loaded {
		var zero V
		return zero, false
	}
	return f.value, true
}

// Key returns the reference's key. In the KeyOnly state that is the key
// itself; in the Loaded state the key is derived by asking the value,
// which may fail; in the Unloaded state ok is false.
func (f *Foreign[V, K]) Key() (key K, ok bool, err error) {
	switch f.state {
	case KeyOnly:
		return f.key, true, nil
	case Loaded:
		key, err = f.value.ForeignKey()
		if err != nil {
			var zero K
			return zero, false, &KeyDerivationError{Err: err}
		}
		return key, true, nil
	default:
		var zero K
		return zero, false, nil
	}
}

// SetValue drops whatever the reference held and puts it in the Loaded
// state with the given value.
func (f *Foreign[V, K]) SetValue(value V) {
	var zeroK K
	f.state = Loaded
	f.value = value
	f.key = zeroK
}

// SetKey drops whatever the reference held and puts it in the KeyOnly
// state with the given key.
func (f *Foreign[V, K]) SetKey(key K) {
	var zeroV V
	f.state = KeyOnly
	f.value = zeroV
	f.key = key
}

// Unload drops whatever the reference held.
func (f *Foreign[V, K]) Unload() {
	var zeroV V
	var zeroK K
	f.state = Unloaded
	f.value = zeroV
	f.key = zeroK
}

// TakeValue removes and returns the loaded value, leaving the reference
// Unloaded. In any other state the reference is untouched and ok is false.
func (f *Foreign[V, K]) TakeValue() (V, bool) {
	if f.state != Loaded {
		var zero V
		return zero, false
	}
	value := f.value
	f.Unload()
	return value, true
}

// TakeKey removes and returns the held key, leaving the reference
// Unloaded. In any other state the reference is untouched and ok is false.
func (f *Foreign[V, K]) TakeKey() (K, bool) {
	if f.state != KeyOnly {
		var zero K
		return zero, false
	}
	key := f.key
	f.Unload()
	return key, true
}

// AllowValueSerialize flags the reference to serialize its loaded value
// instead of collapsing it to the derived key. Requires only shared
// access to the containing record.
func (f *Foreign[V, K]) AllowValueSerialize() {
	atomic.StoreInt32(&f.serializeValue, 1)
}

// DisallowValueSerialize reverts to the default key serialization.
func (f *Foreign[V, K]) DisallowValueSerialize() {
	atomic.StoreInt32(&f.serializeValue, 0)
}

func (f *Foreign[V, K]) valueSerializeAllowed() bool {
	return atomic.LoadInt32(&f.serializeValue) == 1
}

// Equal compares two references by state and content. The
// serialize-as-value flag does not participate: it changes serialization
// behavior, not what the reference is.
func (f *Foreign[V, K]) Equal(other *Foreign[V, K], eqV func(V, V) bool, eqK func(K, K) bool) bool {
	if f.state != other.state {
		return false
	}
	switch f.state {
	case Loaded:
		return eqV(f.value, other.value)
	case KeyOnly:
		return eqK(f.key, other.key)
	default:
		return true
	}
}
