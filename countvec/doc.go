// Package countvec implements count vectors: formal integer sums over
// letters, i.e. the free abelian group generated by the step letters of a
// scale word.
//
// What:
//
//   - Vector is an immutable value mapping letter → non-zero integer count.
//     Zero components are never stored, so two vectors are Equal exactly
//     when their stored terms coincide.
//   - FromLetters builds the multiset of a letter slice; Sum folds Add over
//     a slice of vectors.
//   - Add, Sub, Neg and Scale implement the group operations and return new
//     values; receivers are never mutated.
//   - Compare orders vectors lexicographically by their (letter, count)
//     pairs, letters ascending. A proper prefix sorts first.
//
// Why:
//
//   - A k-step interval of a scale word is the count vector of a length-k
//     cyclic subword; its Len (taxicab length) is k.
//   - Generator sequences, offset chords and lattice bases are all built
//     from count vectors.
//
// Complexity:
//
//   - FromLetters: O(n log a) for n letters over a distinct letters.
//   - Add/Sub/Compare/Equal: O(a + b) merge of the two term lists.
//   - Get: O(log a).
package countvec
