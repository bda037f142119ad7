// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	sealVersion byte = 1

	saltSize  = 16
	nonceSize = 12
	keySize   = 32

	hexPrefix = "0x"
)

// passphraseSealer is the Argon2id + AES-GCM implementation of [Sealer].
type passphraseSealer struct {
	passphrase []byte

	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8

	random io.Reader
}

// Option tunes a sealer built by [NewPassphraseSealer].
type Option func(*passphraseSealer)

// WithArgonParams overrides the Argon2id cost parameters. memory is in KiB.
// Values sealed with one set of parameters open only with the same set.
func WithArgonParams(time, memory uint32, threads uint8) Option {
	return func(s *passphraseSealer) {
		s.argonTime = time
		s.argonMemory = memory
		s.argonThreads = threads
	}
}

// WithRandom replaces the source of salts and nonces.
func WithRandom(r io.Reader) Option {
	return func(s *passphraseSealer) {
		s.random = r
	}
}

// NewPassphraseSealer constructs a [Sealer] keyed by passphrase with the
// Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func NewPassphraseSealer(passphrase string, opts ...Option) (Sealer, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	s := &passphraseSealer{
		passphrase:   []byte(passphrase),
		argonTime:    1,
		argonMemory:  64 * 1024,
		argonThreads: 4,
		random:       rand.Reader,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *passphraseSealer) key(salt []byte) []byte {
	return argon2.IDKey(s.passphrase, salt, s.argonTime, s.argonMemory, s.argonThreads, keySize)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal implements [Sealer].
func (s *passphraseSealer) Seal(plaintext []byte) ([]byte, error) {
	header := make([]byte, 1+saltSize+nonceSize)
	header[0] = sealVersion
	if _, err := io.ReadFull(s.random, header[1:]); err != nil {
		return nil, fmt.Errorf("read random: %w", err)
	}
	salt := header[1 : 1+saltSize]
	nonce := header[1+saltSize:]

	gcm, err := newGCM(s.key(salt))
	if err != nil {
		return nil, err
	}

	// version is authenticated as additional data
	blob := gcm.Seal(header, nonce, plaintext, header[:1])

	out := make([]byte, len(hexPrefix)+hex.EncodedLen(len(blob)))
	copy(out, hexPrefix)
	hex.Encode(out[len(hexPrefix):], blob)
	return out, nil
}

// Open implements [Sealer].
func (s *passphraseSealer) Open(sealed []byte) ([]byte, error) {
	sealed = bytes.TrimSpace(sealed)
	sealed = bytes.TrimPrefix(bytes.TrimPrefix(sealed, []byte("0x")), []byte("0X"))

	blob := make([]byte, hex.DecodedLen(len(sealed)))
	if _, err := hex.Decode(blob, sealed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSealedValue, err)
	}
	if len(blob) < 1+saltSize+nonceSize {
		return nil, fmt.Errorf("%w: too short", ErrMalformedSealedValue)
	}
	if blob[0] != sealVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, blob[0])
	}

	salt := blob[1 : 1+saltSize]
	nonce := blob[1+saltSize : 1+saltSize+nonceSize]

	gcm, err := newGCM(s.key(salt))
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, nonce, blob[1+saltSize+nonceSize:], blob[:1])
	if err != nil {
		return nil, ErrAuthentication
	}
	return plaintext, nil
}
