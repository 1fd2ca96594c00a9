package numth

// GCD returns the greatest common divisor of |a| and |b|; GCD(0, 0) = 0.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// ModInv returns x in [0, m) with a·x ≡ 1 (mod m).
// ok is false when m < 1 or gcd(a, m) ≠ 1. Every a is invertible mod 1 (x = 0).
func ModInv(a, m int) (x int, ok bool) {
	if m < 1 {
		return 0, false
	}
	if m == 1 {
		return 0, true
	}
	a %= m
	if a < 0 {
		a += m
	}
	// extended Euclid on (a, m)
	oldR, r := a, m
	oldS, s := 1, 0
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldR != 1 {
		return 0, false
	}
	x = oldS % m
	if x < 0 {
		x += m
	}

	return x, true
}

// Factorize returns the prime factors of n in ascending order, with
// multiplicity. n < 2 has no factors.
func Factorize(n int) []int {
	var out []int
	for p := 2; p*p <= n; p++ {
		for n%p == 0 {
			out = append(out, p)
			n /= p
		}
	}
	if n > 1 {
		out = append(out, n)
	}

	return out
}

// DistinctPrimeFactors returns the primes dividing n in ascending order.
func DistinctPrimeFactors(n int) []int {
	all := Factorize(n)
	out := all[:0]
	for i, p := range all {
		if i == 0 || p != all[i-1] {
			out = append(out, p)
		}
	}

	return out
}

// Divisors returns every positive divisor of n in ascending order.
func Divisors(n int) []int {
	if n < 1 {
		return nil
	}
	var low, high []int
	for d := 1; d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		low = append(low, d)
		if d != n/d {
			high = append(high, n/d)
		}
	}
	for i := len(high) - 1; i >= 0; i-- {
		low = append(low, high[i])
	}

	return low
}

// Totient returns Euler's φ(n) for n ≥ 1 and 0 otherwise.
func Totient(n int) int {
	if n < 1 {
		return 0
	}
	result := n
	for _, p := range DistinctPrimeFactors(n) {
		result -= result / p
	}

	return result
}
