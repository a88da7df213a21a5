package secret

import "errors"

var (
	ErrSecretNotFound         = errors.New("secret record not found")
	ErrSecretEmpty            = errors.New("secret record is empty")
	ErrSecretCorrupt          = errors.New("secret record is not valid base32")
	ErrFailedToGenerateSecret = errors.New("failed to generate secret")
	ErrFailedToReadSecret     = errors.New("failed to read secret record")
	ErrFailedToPersistSecret  = errors.New("failed to persist secret record")
	ErrMissingAccountName     = errors.New("missing account name")
	ErrMissingIssuer          = errors.New("missing issuer")
)
