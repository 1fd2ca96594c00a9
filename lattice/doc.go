// Package lattice projects a ternary scale onto the plane and classifies the
// shape it fills.
//
// A pair of intervals (v, w) is a unimodular basis for a scale with step
// signature σ when det[σ | v | w] = ±1. Modulo the period σ, every interval
// of the scale is then an integer combination of v and w, and the scale's
// pitch classes become points of ℤ². UnimodularBasis searches guide frames
// for such a pair; PitchClasses performs the projection.
//
// Classify decides whether a point set is a quasi-parallelogram: under some
// unimodular change of coordinates its rows, read along one axis, are all
// full except a first row that ends flush with the full rows and a last row
// that starts flush with them.
package lattice
