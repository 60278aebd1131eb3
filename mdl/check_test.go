package mdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckClean(t *testing.T) {
	model, err := Parse("Account { id, pub handle, ->manage->Project as projects }")
	require.NoError(t, err)
	assert.Nil(t, model.Check())
}

func TestCheckDuplicateProperty(t *testing.T) {
	model, err := Parse("Account { id, id }")
	require.NoError(t, err)

	errs := model.Check()
	require.Len(t, errs, 1)

	var dup *DuplicateFieldError
	require.ErrorAs(t, errs[0], &dup)
	assert.Equal(t, "Account", dup.Model)
	assert.Equal(t, "id", dup.Field)
}

func TestCheckRelationAliasCollides(t *testing.T) {
	// A relation is addressed by its alias, so the alias is what clashes.
	model, err := Parse("Account { projects, ->manage->Project as projects }")
	require.NoError(t, err)
	require.Len(t, model.Check(), 1)
}

func TestCheckEdgeNameDoesNotCollide(t *testing.T) {
	model, err := Parse("Account { manage, ->manage->Project as projects }")
	require.NoError(t, err)
	assert.Nil(t, model.Check())
}

func TestCheckAliasShadowsField(t *testing.T) {
	model, err := Parse("Account as id { id }")
	require.NoError(t, err)

	errs := model.Check()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "shadows")
}

func TestCheckRawAndPlainCollide(t *testing.T) {
	// Equality is by value, the raw marker does not disambiguate.
	model, err := Parse("Account { r#type, type }")
	require.NoError(t, err)
	require.Len(t, model.Check(), 1)
}
