// Package random provides the randomness capability consumed by the number-theory
// and RSA packages: a Source that yields uniformly distributed integers in a
// half-open range [lo, hi).
//
// Two implementations are available. NewCryptoSource draws from crypto/rand and is
// the default. NewSeededSource is deterministic for a given seed and is meant for
// tests and reproducible experiments.
package random
