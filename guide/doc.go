// Package guide finds the guide frames of a scale word: the ways of reading
// the scale as one generator sequence (a simple frame) or as several
// interleaved copies of one generator sequence offset by a chord (a multiple
// frame).
//
// What:
//
//   - StackedStepClass(k, S) lists the k-step intervals on degrees 0, k, 2k, …
//     of S; stacking them walks the scale by k-steps.
//   - GuidedChains keeps the rotations of such a chain whose closing interval
//     differs from every earlier one and returns the weak period of the rest:
//     the guided generator sequence (GS).
//   - TrySimple and TryMultiple build frames for one step class; Frames
//     collects every frame for k in [2, ⌊n/2⌋], ordered by complexity
//     (|GS| · multiplicity) and then by (GS, chord).
//
// Step classes above ⌊n/2⌋ are not searched. They repeat the intervals of
// their complements in reverse, but a few frames with n/2 < k ≤ n−2 may
// still be missed.
//
// Infeasible parameters never fail: they return no frames.
package guide
