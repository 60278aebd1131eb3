package mdl

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorPredicates(t *testing.T) {
	_, lexErr := Parse("M { a; }")
	_, parseErr := Parse("M { a b }")

	assert.True(t, IsLexError(lexErr))
	assert.False(t, IsParseError(lexErr))
	assert.True(t, IsParseError(parseErr))
	assert.False(t, IsLexError(parseErr))

	assert.True(t, IsSyntaxError(lexErr))
	assert.True(t, IsSyntaxError(parseErr))
	assert.False(t, IsSyntaxError(errors.New("io trouble")))

	wrapped := fmt.Errorf("load model: %w", parseErr)
	assert.True(t, IsParseError(wrapped))
}
