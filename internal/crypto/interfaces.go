// SPDX-License-Identifier: Apache-2.0

// Package crypto seals and unseals Toggl API tokens so they are never
// written to the database in plaintext.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// TokenCipher encrypts and decrypts Toggl API tokens with a key derived
// from the application secret and a per-record salt.
type TokenCipher interface {
	// GenerateSalt returns a fresh random per-record salt.
	GenerateSalt() ([]byte, error)

	// Seal encrypts token and returns a base64-encoded blob
	// (nonce prepended to the ciphertext).
	Seal(token string, salt []byte) (string, error)

	// Open decrypts a blob produced by Seal with the same salt.
	Open(blob string, salt []byte) (string, error)
}
