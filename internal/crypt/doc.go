// Package crypt implements the krypto container format and its
// cryptographic pipeline.
//
// # Container Format
//
// An encrypted file is a single binary container:
//
//	version        1 byte   (currently 2)
//	fileNameLength 2 bytes  big-endian unsigned
//	fileName       variable UTF-8, the original file's base name
//	salt           16 bytes key-derivation salt, random per encryption
//	nonce          24 bytes XChaCha20-Poly1305 nonce, random per encryption
//	ciphertext     rest     AEAD output including the authentication tag
//
// The codec is a two-layer check by design: DecodeContainer accepts any
// version byte as structurally recognized (so inspection stays
// forward-compatible), while decryption separately rejects versions it
// does not implement.
//
// # Key Derivation
//
// The AEAD key is derived with Argon2id from the deployment's shared
// secret and the caller's identity token, joined with a "|" separator,
// salted with the container's salt. Cost parameters come from the frozen
// profile in the configs package. Binding the identity token into the key
// means a container only opens for the exact identity it was encrypted
// for; there is no separate access check to get wrong.
//
// # Key Hygiene
//
// Derived keys are transient: they exist from derivation to the single
// AEAD call and are zeroed with ZeroBytes on every exit path. Nothing in
// this package retains key material between calls.
//
// # Failure Discipline
//
// Open returns the bare ErrAuthentication sentinel for every verification
// failure. Distinguishing "wrong key" from "corrupted data" in the error
// would hand an attacker an oracle, so the distinction does not exist.
package crypt
