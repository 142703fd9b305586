// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way digests and checks
// candidates against stored digests. Digests are self-describing: each one
// carries its own salt and cost, so two hashes of the same plaintext differ.
type PasswordHasher interface {
	// Hash returns a salted digest of plaintext. Fails only when plaintext
	// exceeds the algorithm's input limit or the cost is invalid.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches digest. A malformed digest
	// yields false, never a panic or error.
	Verify(plaintext, digest string) bool
}
