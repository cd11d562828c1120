package configs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// UserSettings holds per-user krypto paths, independent of any working directory.
type UserSettings struct {
	UserConfigsPath string
}

// CryptoProfile is the frozen cryptographic cost profile for this process.
// It is constructed once at startup and never mutated afterwards. Encrypt
// and decrypt must run under the same profile for a deployment's containers
// to round-trip.
type CryptoProfile struct {
	// Argon2Time is the number of Argon2id passes.
	Argon2Time uint32

	// Argon2Memory is the Argon2id working set in KiB.
	Argon2Memory uint32

	// Argon2Threads is the Argon2id lane count.
	Argon2Threads uint8
}

var (
	UserKryptoSettings *UserSettings
	CryptoSettings     *CryptoProfile
)

func init() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	// This is independent of what directory you are in, so it is ok to init here
	UserKryptoSettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "krypto"),
	}
	CryptoSettings = DefaultCryptoProfile()
}

// DefaultCryptoProfile returns the moderate cost profile: a sub-second
// derivation with a 256 MiB working set on current hardware.
func DefaultCryptoProfile() *CryptoProfile {
	return &CryptoProfile{
		Argon2Time:    2,
		Argon2Memory:  256 * 1024,
		Argon2Threads: 4,
	}
}

// ConfigFilePath returns the path of the optional deployment config file.
func ConfigFilePath() string {
	return filepath.Join(UserKryptoSettings.UserConfigsPath, "config.toml")
}

// InitCryptoSettings overlays the deployment profile from the optional
// config file. A missing file keeps the defaults; a malformed file is an
// error rather than a silent fallback, since a mismatched profile makes
// existing containers undecryptable.
func InitCryptoSettings() error {
	path := ConfigFilePath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	var file ConfigFile
	if err := LoadTOML(path, &file); err != nil {
		return fmt.Errorf("loading config file %s: %w", path, err)
	}

	profile := *DefaultCryptoProfile()
	if file.Argon2.Time > 0 {
		profile.Argon2Time = file.Argon2.Time
	}
	if file.Argon2.MemoryKiB > 0 {
		profile.Argon2Memory = file.Argon2.MemoryKiB
	}
	if file.Argon2.Threads > 0 {
		profile.Argon2Threads = file.Argon2.Threads
	}

	CryptoSettings = &profile
	return nil
}

// ConfigFile is the on-disk shape of the optional deployment config.
type ConfigFile struct {
	Argon2 Argon2Config `toml:"argon2"`
}

// Argon2Config tunes the key-derivation cost profile. Zero values mean
// "use the default".
type Argon2Config struct {
	Time      uint32 `toml:"time"`
	MemoryKiB uint32 `toml:"memory_kib"`
	Threads   uint8  `toml:"threads"`
}
