// Package words provides the cyclic-word toolkit for scale words: rotation,
// canonical form, periods, subword spectra, maximum variety, chirality, MOS
// construction and MOS substitution.
//
// A scale word is a finite sequence of small non-negative letters read
// cyclically. For ternary scales letter 0 is the large step L, 1 the middle
// step m and 2 the small step s. Two words are equivalent when one is a
// rotation of the other; the canonical representative is the
// lexicographically least rotation, found in linear time by Booth's
// algorithm.
//
// Conventions:
//
//   - Every function is pure and returns freshly allocated slices.
//   - The empty word is valid input everywhere and produces empty output
//     (MaximumVariety of the empty word is 0, Chirality is Achiral).
//   - Generic helpers suffixed Func take an equality callback so they can
//     run over count-vector chains as well as letters.
//
// Complexity:
//
//   - Rotate, Reverse, Booth, Canonical: O(n).
//   - PeriodPattern, WeakPeriodPattern: O(n²) worst case.
//   - Spectrum: O(n·k); MaximumVariety: O(n³) worst case.
//   - MOS construction: O(a + b).
package words
