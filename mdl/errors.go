package mdl

import "errors"

// IsLexError returns true if the error is a lexical error.
// Uses errors.As to handle wrapped errors.
func IsLexError(err error) bool {
	var le *LexError
	return errors.As(err, &le)
}

// IsParseError returns true if the error is a syntax error.
// Uses errors.As to handle wrapped errors.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsSyntaxError returns true for any error Parse produces from malformed
// source, lexical or grammatical.
func IsSyntaxError(err error) bool {
	return IsLexError(err) || IsParseError(err)
}
