package alphabet

import "errors"

var (
	// ErrUnknownLetter indicates a character outside every candidate step-letter table.
	ErrUnknownLetter = errors.New("alphabet: unknown step letter")
	// ErrEmptyWord indicates an empty word where a scale is required.
	ErrEmptyWord = errors.New("alphabet: empty word")
	// ErrInvalidArity indicates an explicit arity below 1.
	ErrInvalidArity = errors.New("alphabet: arity must be at least 1")
	// ErrLetterRange indicates a numeric letter that has no symbol in the chosen table.
	ErrLetterRange = errors.New("alphabet: letter out of table range")
)
