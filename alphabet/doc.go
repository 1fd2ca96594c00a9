// Package alphabet converts scale words between their numeric form
// (words.Word, letters 0, 1, 2, …) and the step-letter strings used on the
// wire and on the command line.
//
// What:
//
//   - Table(arity) returns the step letters for an alphabet of that size:
//     "Ls" for 2, "Lms" for 3, "Lmns" for 4, …, and A–Z a–z from 11 on.
//     The position of a letter in its table is its numeric value, so the
//     large step L is always 0 in the small tables.
//   - Parse detects the table from the distinct letters of its input and
//     decodes it. Strings made only of ASCII digits decode digit by digit,
//     so "010201020" and "LmLsLmLsL" are the same word.
//   - Format is the inverse of Parse for words whose letters fit a table.
//
// Parsing is case-sensitive: "m" and "M" are different letters.
//
// Errors:
//
//   - ErrUnknownLetter  if a character belongs to no table large enough.
//   - ErrEmptyWord      from MustNonEmpty, for callers that need a scale.
//   - ErrInvalidArity   if an explicit arity is below 1.
//   - ErrLetterRange    if Format meets a letter outside the table.
package alphabet
