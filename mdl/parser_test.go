package mdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccount(t *testing.T) {
	model, err := Parse("Account { id, pub handle, ->manage->Project as projects }")
	require.NoError(t, err)

	assert.Equal(t, "Account", model.Name.Value)
	assert.Nil(t, model.Alias)
	assert.Nil(t, model.Options)
	require.Len(t, model.Fields, 3)

	id, ok := model.Fields[0].(Property)
	require.True(t, ok)
	assert.Equal(t, "id", id.Name.Value)
	assert.False(t, id.Pub)

	handle, ok := model.Fields[1].(Property)
	require.True(t, ok)
	assert.Equal(t, "handle", handle.Name.Value)
	assert.True(t, handle.Pub)

	projects, ok := model.Fields[2].(Relation)
	require.True(t, ok)
	assert.Equal(t, "manage", projects.Name.Value)
	assert.Equal(t, "Project", projects.Foreign.Value)
	assert.Equal(t, "projects", projects.Alias.Value)
	assert.Equal(t, Outgoing, projects.Dir)
	assert.False(t, projects.Pub)
}

func TestParseAliasAndOptions(t *testing.T) {
	model, err := Parse("Account as account with(partial, frozen) {}")
	require.NoError(t, err)

	require.NotNil(t, model.Alias)
	assert.Equal(t, "account", model.Alias.Value)
	assert.Equal(t, []Option{OptionPartial, Option("frozen")}, model.Options)
	assert.True(t, model.Partial())
	assert.Empty(t, model.Fields)
}

func TestParseEmptyOptionList(t *testing.T) {
	model, err := Parse("Account with() {}")
	require.NoError(t, err)

	assert.NotNil(t, model.Options)
	assert.Empty(t, model.Options)
	assert.False(t, model.Partial())
}

func TestParseUnknownOptionPreserved(t *testing.T) {
	model, err := Parse("Account with(shiny) {}")
	require.NoError(t, err)
	assert.Equal(t, []Option{Option("shiny")}, model.Options)
}

func TestParseForeignNode(t *testing.T) {
	model, err := Parse("Post { pub author<Account> }")
	require.NoError(t, err)

	require.Len(t, model.Fields, 1)
	author, ok := model.Fields[0].(ForeignNode)
	require.True(t, ok)
	assert.Equal(t, "author", author.Name.Value)
	assert.Equal(t, "Account", author.Foreign.Value)
	assert.True(t, author.Pub)
}

func TestParseIncomingRelation(t *testing.T) {
	model, err := Parse("Project { <-manage<-Account as managers }")
	require.NoError(t, err)

	require.Len(t, model.Fields, 1)
	managers, ok := model.Fields[0].(Relation)
	require.True(t, ok)
	assert.Equal(t, "manage", managers.Name.Value)
	assert.Equal(t, "Account", managers.Foreign.Value)
	assert.Equal(t, "managers", managers.Alias.Value)
	assert.Equal(t, Incoming, managers.Dir)
	assert.Equal(t, Identifier{Value: "managers"}, managers.FieldName())
}

func TestParseRawIdentifiers(t *testing.T) {
	model, err := Parse("r#Account { r#type, other<r#Order> }")
	require.NoError(t, err)

	assert.True(t, model.Name.Raw)
	assert.Equal(t, "Account", model.Name.Value)

	prop := model.Fields[0].(Property)
	assert.True(t, prop.Name.Raw)
	assert.Equal(t, "type", prop.Name.Value)
	assert.Equal(t, "r#type", prop.Name.String())

	node := model.Fields[1].(ForeignNode)
	assert.False(t, node.Name.Raw)
	assert.True(t, node.Foreign.Raw)
}

func TestParseRawEqualsPlain(t *testing.T) {
	assert.True(t, Identifier{Value: "type", Raw: true}.Equal(Identifier{Value: "type"}))
}

func TestParseTrailingCommaList(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"empty", "M {}", nil},
		{"one", "M { a }", []string{"a"}},
		{"one trailing", "M { a, }", []string{"a"}},
		{"two", "M { a, b }", []string{"a", "b"}},
		{"two trailing", "M { a, b, }", []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := Parse(tt.src)
			require.NoError(t, err)
			var names []string
			for _, field := range model.Fields {
				names = append(names, field.FieldName().Value)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestParseDuplicateFieldsPermitted(t *testing.T) {
	// Duplicates pass the grammar; Check is where they surface.
	model, err := Parse("M { a, a }")
	require.NoError(t, err)
	assert.Len(t, model.Fields, 2)
	assert.Len(t, model.Check(), 1)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected []string
	}{
		{"missing brace", "Account", []string{`"{"`}},
		{"missing comma", "M { a b }", []string{`","`, `"}"`}},
		{"field start", "M { > }", []string{"identifier", `"r#"`, `"->"`, `"<-"`}},
		{"relation missing alias", "M { ->e->F }", []string{`"as"`}},
		{"foreign unclosed", "M { a<F }", []string{`">"`}},
		{"trailing input", "M {} extra", []string{"end of input"}},
		{"keyword as field name", "M { pub pub }", []string{"identifier", `"r#"`, `"->"`, `"<-"`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.expected, parseErr.Expected)
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := Parse("M { a b }")
	require.Error(t, err)
	assert.Equal(t, `1:7: unexpected identifier "b", expected "," or "}"`, err.Error())
}

func TestParseLexErrorSurfaces(t *testing.T) {
	_, err := Parse("M { a; }")
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, ';', lexErr.Rune)
}
