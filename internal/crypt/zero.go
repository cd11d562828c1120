package crypt

import "runtime"

// ZeroBytes overwrites b with zeros. Key material is scrubbed the moment it
// is no longer needed; the KeepAlive stops the compiler from eliding the
// writes as dead stores.
func ZeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
