package mdl

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kitchenSinkSource = `// every construct in one model
Account as account with(partial) {
  id,
  pub handle,
  pub r#type,
  author<Account>,
  ->manage->Project as projects,
  pub <-follow<-Account as followers,
}`

func TestPrintCanonical(t *testing.T) {
	model, err := Parse(kitchenSinkSource)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "kitchen_sink", []byte(Print(model)))
}

func TestPrintRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", "M {}"},
		{"single property", "M { a }"},
		{"kitchen sink", kitchenSinkSource},
		{"empty options", "M with() {}"},
		{"alias only", "M as m {}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := Parse(tt.src)
			require.NoError(t, err)

			printed := Print(model)
			reparsed, err := Parse(printed)
			require.NoError(t, err, "canonical output must re-parse:\n%s", printed)
			assert.Equal(t, model, reparsed)

			// A second round stays fixed: Print is canonical.
			assert.Equal(t, printed, Print(reparsed))
		})
	}
}

func TestPrintEmptyModel(t *testing.T) {
	model, err := Parse("M {}")
	require.NoError(t, err)
	assert.Equal(t, "M {}", Print(model))
}

func TestPrintOmitsAbsentClauses(t *testing.T) {
	model, err := Parse("M { a }")
	require.NoError(t, err)
	assert.Equal(t, "M {\n  a,\n}", Print(model))
}
