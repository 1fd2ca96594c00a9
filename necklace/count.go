package necklace

import (
	"math/big"

	"github.com/katalvlaran/ternary/numth"
)

// Count returns the number of necklaces with the given content,
//
//	(1/n) Σ_{d | g} φ(d) · (n/d)! / Π_i (c_i/d)!,  g = gcd(c), n = Σ c,
//
// which equals the number of words All(content) yields. Contents that
// All rejects give 0.
func Count(content []int) *big.Int {
	n, g := 0, 0
	for _, c := range content {
		if c < 0 {
			return new(big.Int)
		}
		n += c
		g = numth.GCD(g, c)
	}
	if n == 0 {
		return new(big.Int)
	}
	total := new(big.Int)
	for _, d := range numth.Divisors(g) {
		term := factorial(n / d)
		for _, c := range content {
			term.Quo(term, factorial(c/d))
		}
		term.Mul(term, big.NewInt(int64(numth.Totient(d))))
		total.Add(total, term)
	}

	return total.Quo(total, big.NewInt(int64(n)))
}

func factorial(k int) *big.Int {
	if k < 2 {
		return big.NewInt(1)
	}

	return new(big.Int).MulRange(2, int64(k))
}
