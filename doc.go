// Package ternary is a toolkit for analysing scale words over three step
// sizes: large (L), medium (m) and small (s).
//
// 🚀 What is ternary?
//
//	A set of small, pure, deterministic packages that together answer
//	"what structure does this scale have?":
//		• Words: rotations, Booth canonical form, chirality, maximum variety
//		• MOS: Bresenham and Bjorklund constructions, MOS substitution
//		• Necklaces: Sawada fixed-content enumeration, closed-form counts
//		• Guide frames: generator sequences and offset chords
//		• Lattice: unimodular bases, pitch-class projection,
//		  quasi-parallelogram shapes
//
// ✨ Why choose ternary?
//
//   - Pure functions – no global state, no I/O in library packages
//   - Streaming – necklace enumeration is an iter.Seq that stops on demand
//   - Exact – closed-form necklace counts use math/big
//   - Batteries included – a CLI and an HTTP server over the same analyses
//
// Packages:
//
//	numth/: gcd, modular inverse, divisors, Euler's totient
//	countvec/: sparse letter multisets with algebra
//	words/: scale words, canonical forms, variety, MOS and substitution
//	alphabet/: letter tables ("Ls", "Lms", "Lmns", …) and word parsing
//	necklace/: Sawada enumeration, permutations, partitions, counts
//	guide/: guided generator sequences and guide frames
//	matrix/: 3×3 integer kernel, determinants, unimodular inverses
//	lattice/: unimodular bases, pitch classes, quasi-parallelograms
//	profile/: AnalyzeWord, AnalyzeSignature, QuasiParallelogram
//	cmd/ternary: command-line front end (word, sig, necklaces, qp, batch, serve)
//
// Quick example:
//
//	p, _ := profile.AnalyzeWord("LmLsLmLsL")
//	fmt.Println(p.CanonicalWord, p.Chirality) // LLmLsLmLs Right
//
//	go get github.com/katalvlaran/ternary
package ternary
