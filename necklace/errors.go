package necklace

import "errors"

var (
	// ErrNegativeMultiplicity indicates a content entry below zero.
	ErrNegativeMultiplicity = errors.New("necklace: negative letter multiplicity")
	// ErrPermImage indicates a slice that is not a permutation of 0..n-1.
	ErrPermImage = errors.New("necklace: image is not {0, ..., n-1}")
	// ErrPermLength indicates composition of permutations of different sizes.
	ErrPermLength = errors.New("necklace: permutations must have matching lengths")
	// ErrPermIndex indicates an index outside the permutation's domain.
	ErrPermIndex = errors.New("necklace: permutation index out of range")
)
