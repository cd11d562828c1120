// Package configs holds the process-wide krypto settings.
//
// The cryptographic cost profile (Argon2id time, memory, threads) is frozen
// at process start: defaults are applied in init(), and InitCryptoSettings
// overlays the optional per-deployment TOML file before any command runs.
// Nothing mutates CryptoSettings afterwards.
//
// # Deployment Profile
//
// The profile is a deployment tuning choice, not part of the container
// format. A container encrypted under one profile can only be decrypted
// under the same profile, so all hosts in a deployment should share the
// config file:
//
//	# ~/.config/krypto/config.toml
//	[argon2]
//	time = 2
//	memory_kib = 262144
//	threads = 4
//
// Fixed protocol constants (salt, nonce, and key lengths; the container
// version) live in the crypt package, since changing them changes the
// on-disk format rather than tuning cost.
package configs
