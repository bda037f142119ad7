package crypto

import "errors"

var (
	ErrEmptyPassphrase      = errors.New("passphrase is empty")
	ErrMalformedSealedValue = errors.New("malformed sealed value")
	ErrUnsupportedVersion   = errors.New("unsupported sealed value version")
	ErrAuthentication       = errors.New("message authentication failed")
)
