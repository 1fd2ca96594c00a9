// Package necklace enumerates cyclic words with a prescribed letter content,
// one representative per rotation class, using Sawada's 2003 algorithm for
// necklaces with fixed content.
//
// Overview:
//
//   - content[i] is the number of times letter i occurs; n = Σ content.
//   - Every emitted word is the lexicographically least rotation of its
//     class, and no two emitted words are rotations of each other.
//   - Letters with zero multiplicity are moved to the end of the content by
//     SiftZeros before enumeration, and the emitted words are renamed back.
//     When that renaming is not the identity the result is re-canonicalised,
//     so the least-rotation guarantee holds for every content.
//
// Key features:
//
//   - All streams results as an iter.Seq; stopping the range loop stops the
//     search. FixedContent collects them and validates the input.
//   - Count evaluates the closed form (1/n) Σ_{d | gcd(c)} φ(d)·(n/d)! / Π (c_i/d)!
//     with math/big, which agrees with the length of FixedContent.
//   - Perm is a small permutation algebra (compose, inverse, conjugate) used by
//     SiftZeros and exported for callers that rename letters.
//   - Partitions and PartitionsExactParts list integer partitions, which
//     callers use to walk every step signature of a given size.
//
// Performance and complexity:
//
//   - Time:  constant amortised time per necklace, plus O(n) per emitted word
//     for the copy (and O(n) more when re-canonicalising).
//   - Space: O(n) scratch, recursion depth O(n). Goroutine stacks grow on
//     demand, so deep contents need no special handling.
//
// Error handling (sentinel errors):
//
//   - ErrNegativeMultiplicity: FixedContent was given a negative count.
//   - ErrPermImage, ErrPermLength, ErrPermIndex: invalid Perm construction,
//     composition of permutations on different sets, or an out-of-range At.
package necklace
