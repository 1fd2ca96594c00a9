package lattice

import "errors"

// ErrBasisMismatch indicates a basis that is not unimodular for the scale it is applied to.
var ErrBasisMismatch = errors.New("lattice: basis is not unimodular for this scale")
