// Package crypto exposes the randomness and hashing primitives used by passphrases.
//
// Contents
//
//   - Unbiased uniform integers from a secure reader (NewSystemSource,
//     NewReaderSource) using rejection sampling over 64-bit draws
//   - A deterministic ChaCha20 keystream source for reproducible fixtures
//     (NewStreamSource)
//   - BLAKE2b-256 wordlist digests for integrity pinning (WordlistDigest,
//     Fingerprint)
//   - Best-effort memory wiping for random buffers (Wipe)
//
// # Notes
//
// A read failure from the underlying reader is reported as
// domain.ErrRandomUnavailable and is never replaced by a weaker generator.
package crypto
