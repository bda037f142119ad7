package client

import "errors"

var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("wrong arguments")
	ErrNoPassphrase   = errors.New("passphrase is required to seal or open record values")
	ErrNoBrowser      = errors.New("interactive browser is not available")
)
