package foreign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// user is the referenced record type used across the package tests.
type user struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

func (u user) ForeignKey() (string, error) {
	if u.ID == "" {
		return "", ErrMissingKey
	}
	return u.ID, nil
}

type userRef = Foreign[user, string]

func TestZeroValueIsUnloaded(t *testing.T) {
	var ref userRef
	assert.Equal(t, Unloaded, ref.State())
	assert.True(t, ref.IsUnloaded())

	_, ok := ref.Value()
	assert.False(t, ok)

	key, ok, err := ref.Key()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, key)
}

func TestNewKey(t *testing.T) {
	ref := NewKey[user]("user:1")
	assert.Equal(t, KeyOnly, ref.State())
	assert.True(t, ref.IsKey())

	key, ok, err := ref.Key()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "user:1", key)

	// A key never synthesizes a value.
	_, ok = ref.Value()
	assert.False(t, ok)
}

func TestNewValueDerivesKey(t *testing.T) {
	ref := NewValue[user, string](user{ID: "user:1", Name: "John"})
	assert.True(t, ref.IsLoaded())

	value, ok := ref.Value()
	require.True(t, ok)
	assert.Equal(t, "John", value.Name)

	key, ok, err := ref.Key()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "user:1", key)
}

func TestKeyDerivationFailure(t *testing.T) {
	ref := NewValue[user, string](user{Name: "draft"})

	_, ok, err := ref.Key()
	assert.False(t, ok)

	var derivErr *KeyDerivationError
	require.ErrorAs(t, err, &derivErr)
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestSettersReplaceState(t *testing.T) {
	var ref userRef

	ref.SetValue(user{ID: "user:1", Name: "John"})
	assert.True(t, ref.IsLoaded())

	ref.SetKey("user:2")
	assert.True(t, ref.IsKey())
	_, ok := ref.Value()
	assert.False(t, ok)

	ref.Unload()
	assert.True(t, ref.IsUnloaded())
}

func TestTakeValue(t *testing.T) {
	ref := NewValue[user, string](user{ID: "user:1", Name: "John"})

	value, ok := ref.TakeValue()
	require.True(t, ok)
	assert.Equal(t, "John", value.Name)
	assert.True(t, ref.IsUnloaded())

	_, ok = ref.TakeValue()
	assert.False(t, ok)
}

func TestTakeKey(t *testing.T) {
	ref := NewKey[user]("user:1")

	key, ok := ref.TakeKey()
	require.True(t, ok)
	assert.Equal(t, "user:1", key)
	assert.True(t, ref.IsUnloaded())

	loaded := NewValue[user, string](user{ID: "user:1"})
	_, ok = loaded.TakeKey()
	assert.False(t, ok)
	assert.True(t, loaded.IsLoaded())
}

func TestEqualIgnoresSerializeFlag(t *testing.T) {
	eqV := func(a, b user) bool { return a == b }
	eqK := func(a, b string) bool { return a == b }

	a := NewKey[user]("user:1")
	b := NewKey[user]("user:1")
	a.AllowValueSerialize()
	assert.True(t, a.Equal(&b, eqV, eqK))

	c := NewKey[user]("user:2")
	assert.False(t, a.Equal(&c, eqV, eqK))

	loaded := NewValue[user, string](user{ID: "user:1"})
	assert.False(t, a.Equal(&loaded, eqV, eqK))

	var u1, u2 userRef
	assert.True(t, u1.Equal(&u2, eqV, eqK))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "unloaded", Unloaded.String())
	assert.Equal(t, "key", KeyOnly.String())
	assert.Equal(t, "loaded", Loaded.String())
}
