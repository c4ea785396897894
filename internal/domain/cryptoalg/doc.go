// Package cryptoalg defines the textbook RSA value object, its key types and the
// contracts for deriving key pairs.
//
// An RSA system always holds a public key (N, e) and optionally a private key (N, d).
// Encrypt applies the private exponent and Decrypt the public one, which is the
// sign-with-private / verify-with-public direction. No padding is applied and the
// arithmetic is not constant time.
package cryptoalg
