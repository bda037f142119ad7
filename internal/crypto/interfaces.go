// Package crypto seals record values on the client before they reach the
// vault. The server only ever sees the hexadecimal ciphertext.
//
// Sealed layout:
//
//	version(1) ‖ salt(16) ‖ nonce(12) ‖ AES-256-GCM ciphertext
//
// encoded as "0x"-prefixed lower-case hex. The key is derived from the
// passphrase and the per-value salt with Argon2id.
package crypto

// Sealer encrypts and decrypts record values.
type Sealer interface {
	// Seal encrypts plaintext and returns it as hex text accepted by the
	// vault's value field.
	Seal(plaintext []byte) ([]byte, error)

	// Open reverses Seal. It fails with [ErrMalformedSealedValue] when
	// sealed is not a value produced by Seal and with [ErrAuthentication]
	// when the passphrase is wrong or the value was tampered with.
	Open(sealed []byte) ([]byte, error)
}
