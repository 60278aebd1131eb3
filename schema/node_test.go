package schema

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraversalHelpers(t *testing.T) {
	assert.Equal(t, "account->manage", With("account", "manage"))
	assert.Equal(t, "project<-manage", From("project", "manage"))
	assert.Equal(t, "account->manage->project", With(With("account", "manage"), "project"))
}

func TestNamedLabel(t *testing.T) {
	assert.Equal(t, "Account:john", NamedLabel("Account", "john"))
}

func TestEquals(t *testing.T) {
	assert.Equal(t, "name = $name", Equals("name", "$name"))
	assert.Equal(t, "address.city = $address_city", EqualsParameterized("address.city"))
}

func TestAsAlias(t *testing.T) {
	assert.Equal(t, "->manage->Project as projects", AsAlias("->manage->Project", "projects"))
}

func TestFilterWrapsLastSegment(t *testing.T) {
	got := Filter("account->manage->project", "name = 'demo'")
	assert.Equal(t, "account->manage->(project WHERE name = 'demo')", got)

	got = Filter("project", "active = true")
	assert.Equal(t, "(project WHERE active = true)", got)
}

func TestRandomID(t *testing.T) {
	id := RandomID()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, id, RandomID())
}
