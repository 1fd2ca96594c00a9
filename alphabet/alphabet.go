package alphabet

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ternary/words"
)

// Large is the table used for every arity from 11 on.
const Large = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

var tables = [...]string{
	"",           // 0
	"X",          // 1
	"Ls",         // 2
	"Lms",        // 3
	"Lmns",       // 4
	"HLMns",      // 5
	"HLMnst",     // 6
	"BHLMnst",    // 7
	"BHLMnstw",   // 8
	"BCHLMnstw",  // 9
	"BCHLMnpstw", // 10
}

// Table returns the step letters for an alphabet of the given arity.
// Negative arities return "".
func Table(arity int) string {
	switch {
	case arity < 0:
		return ""
	case arity >= len(tables):
		return Large
	default:
		return tables[arity]
	}
}

// Detect returns the arity whose table Parse would decode s with.
//
// A string of ASCII digits has arity max digit + 1. Otherwise the search
// starts at the number of distinct characters in s and moves to the
// smallest larger table that holds every character, so "LLL" and "LmLm"
// decode with "Ls" and "Lms" respectively. The empty string has arity 0.
func Detect(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	if isDigits(s) {
		hi := 0
		for _, r := range s {
			hi = max(hi, int(r-'0'))
		}
		return hi + 1, nil
	}
	distinct := make(map[rune]struct{})
	for _, r := range s {
		distinct[r] = struct{}{}
	}
	for arity := min(len(distinct), len(tables)); arity <= len(tables); arity++ {
		table := Table(arity)
		if containsAll(table, distinct) {
			return arity, nil
		}
	}
	for _, r := range s {
		if !strings.ContainsRune(Large, r) {
			return 0, fmt.Errorf("Detect(%q): %q: %w", s, r, ErrUnknownLetter)
		}
	}

	return 0, fmt.Errorf("Detect(%q): %w", s, ErrUnknownLetter)
}

// Parse decodes s with the table chosen by Detect.
func Parse(s string) (words.Word, error) {
	arity, err := Detect(s)
	if err != nil {
		return nil, err
	}
	if arity == 0 {
		return words.Word{}, nil
	}

	return ParseWithArity(s, arity)
}

// ParseWithArity decodes s with Table(arity). Digit strings are accepted
// for any arity above their largest digit.
func ParseWithArity(s string, arity int) (words.Word, error) {
	if arity < 1 {
		return nil, fmt.Errorf("ParseWithArity(%q, %d): %w", s, arity, ErrInvalidArity)
	}
	out := make(words.Word, 0, len(s))
	if isDigits(s) {
		for _, r := range s {
			d := int(r - '0')
			if d >= arity {
				return nil, fmt.Errorf("ParseWithArity(%q, %d): digit %d: %w", s, arity, d, ErrUnknownLetter)
			}
			out = append(out, d)
		}
		return out, nil
	}
	table := Table(arity)
	for _, r := range s {
		i := strings.IndexRune(table, r)
		if i < 0 {
			return nil, fmt.Errorf("ParseWithArity(%q, %d): %q: %w", s, arity, r, ErrUnknownLetter)
		}
		out = append(out, i)
	}

	return out, nil
}

// MustNonEmpty parses s and rejects the empty word.
func MustNonEmpty(s string) (words.Word, error) {
	if s == "" {
		return nil, ErrEmptyWord
	}

	return Parse(s)
}

// Format encodes w with the table of arity max(2, largest letter + 1).
func Format(w words.Word) (string, error) {
	arity := 2
	for _, l := range w {
		arity = max(arity, l+1)
	}

	return FormatWithArity(w, arity)
}

// FormatWithArity encodes w with Table(arity).
func FormatWithArity(w words.Word, arity int) (string, error) {
	if arity < 1 {
		return "", fmt.Errorf("FormatWithArity(%v, %d): %w", w, arity, ErrInvalidArity)
	}
	table := Table(arity)
	var b strings.Builder
	b.Grow(len(w))
	for _, l := range w {
		if l < 0 || l >= len(table) {
			return "", fmt.Errorf("FormatWithArity(%v, %d): letter %d: %w", w, arity, l, ErrLetterRange)
		}
		b.WriteByte(table[l])
	}

	return b.String(), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

func containsAll(table string, set map[rune]struct{}) bool {
	for r := range set {
		if !strings.ContainsRune(table, r) {
			return false
		}
	}

	return true
}
