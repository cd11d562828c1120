package crypt

import (
	"bytes"
	"encoding/binary"
	"fmt"

	kerrors "github.com/ajmelian/krypto/internal/errors"
)

const (
	// ContainerVersion is the only version this build writes and decrypts.
	ContainerVersion = byte(2)

	// SaltLength is the key-derivation salt size in bytes.
	SaltLength = 16

	// NonceLength is the XChaCha20-Poly1305 nonce size in bytes.
	NonceLength = 24

	// KeyLength is the derived AEAD key size in bytes.
	KeyLength = 32

	// MaxFileNameLength is the range of the 2-byte name length field.
	MaxFileNameLength = 65535

	// minHeaderLength is version byte + name length field + salt + nonce.
	minHeaderLength = 1 + 2 + SaltLength + NonceLength
)

// Container is the parsed header of an encrypted file, plus optionally the
// raw bytes it was parsed from.
type Container struct {
	Version  byte
	FileName string
	Salt     []byte
	Nonce    []byte

	headerLen int
	raw       []byte // retained only when decoded with includeCiphertext
}

// HeaderLen returns the number of bytes the header occupies, including the
// variable-length file name.
func (c *Container) HeaderLen() int {
	return c.headerLen
}

// Ciphertext returns the bytes following the header. It is nil unless the
// container was decoded with includeCiphertext.
func (c *Container) Ciphertext() []byte {
	if c.raw == nil {
		return nil
	}
	return c.raw[c.headerLen:]
}

// EncodeContainer serializes a container: version, big-endian name length,
// name bytes, salt, nonce, ciphertext.
func EncodeContainer(version byte, fileName string, salt, nonce, ciphertext []byte) ([]byte, error) {
	name := []byte(fileName)
	if len(name) > MaxFileNameLength {
		return nil, fmt.Errorf("%w: file name is %d bytes, limit is %d", kerrors.ErrEncoding, len(name), MaxFileNameLength)
	}
	if len(salt) != SaltLength {
		return nil, fmt.Errorf("%w: salt is %d bytes, expected %d", kerrors.ErrEncoding, len(salt), SaltLength)
	}
	if len(nonce) != NonceLength {
		return nil, fmt.Errorf("%w: nonce is %d bytes, expected %d", kerrors.ErrEncoding, len(nonce), NonceLength)
	}

	buf := bytes.NewBuffer(make([]byte, 0, minHeaderLength+len(name)+len(ciphertext)))
	buf.WriteByte(version)

	var nameLen [2]byte
	binary.BigEndian.PutUint16(nameLen[:], uint16(len(name)))
	buf.Write(nameLen[:])

	buf.Write(name)
	buf.Write(salt)
	buf.Write(nonce)
	buf.Write(ciphertext)

	return buf.Bytes(), nil
}

// DecodeContainer parses the header of raw. It returns ok=false when raw is
// too short at any step to be a container. That is a structural "not ours"
// signal rather than an error, so analysis can report unrecognized files
// without failing. The version byte is not interpreted here: callers decide
// which versions they support.
//
// When includeCiphertext is true the raw buffer is retained so Ciphertext
// can slice the trailing bytes. The codec never interprets them.
func DecodeContainer(raw []byte, includeCiphertext bool) (*Container, bool) {
	if len(raw) < minHeaderLength {
		return nil, false
	}

	version := raw[0]
	nameLen := int(binary.BigEndian.Uint16(raw[1:3]))

	headerLen := minHeaderLength + nameLen
	if len(raw) < headerLen {
		return nil, false
	}

	name := raw[3 : 3+nameLen]
	salt := raw[3+nameLen : 3+nameLen+SaltLength]
	nonce := raw[3+nameLen+SaltLength : headerLen]

	c := &Container{
		Version:   version,
		FileName:  string(name),
		Salt:      salt,
		Nonce:     nonce,
		headerLen: headerLen,
	}
	if includeCiphertext {
		c.raw = raw
	}

	return c, true
}
