// Package numth collects the small number-theoretic helpers used by the
// scale engines: gcd, modular inverse, prime factorisation, divisors and
// Euler's totient.
//
// All functions work on non-negative ints and are pure. Inputs outside the
// documented domain return the zero value or false instead of panicking.
//
// Complexity:
//
//   - GCD, ModInv: O(log min(a, b)).
//   - Factorize, DistinctPrimeFactors, Divisors, Totient: O(√n).
package numth
