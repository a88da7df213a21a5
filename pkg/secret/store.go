package secret

import (
	"crypto/rand"
	"errors"
	"os"
	"strings"

	"github.com/totpgate/totpgate/pkg/otp"
)

const (
	// DefaultLength matches the 160-bit secret the installer has always
	// generated (RFC 4226 recommends at least 128 bits).
	DefaultLength = 20

	recordMode = 0o600
)

// Store is the persistence contract for the single shared secret.
// Load returns raw key bytes, never the base32 text form.
type Store interface {
	Load() ([]byte, error)
	Persist(raw []byte) error
}

// FileStore keeps the secret as one line of base32 text in a file, the record
// format the captive portal installer writes. Readers and the rotating writer
// may be separate processes; Persist replaces the record atomically so no
// reader ever observes a partial value.
type FileStore struct {
	path string
}

// NewFileStore binds a store to the secret record path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the secret record location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and decodes the persisted secret. A missing record, an empty
// record and a corrupt record surface as distinct errors: misconfigured file
// permissions are the most common field failure and the operator needs to
// tell them apart. All of them mean "deny" to the authentication gate.
func (s *FileStore) Load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Join(ErrSecretNotFound, err)
		}
		return nil, errors.Join(ErrFailedToReadSecret, err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, ErrSecretEmpty
	}

	raw, err := otp.DecodeSecret(text)
	if err != nil {
		return nil, errors.Join(ErrSecretCorrupt, err)
	}
	if len(raw) == 0 {
		return nil, ErrSecretEmpty
	}
	return raw, nil
}

// Persist writes the secret as base32 text followed by a newline. The record
// is written to a sibling temp file first and renamed over the old one, so a
// concurrent Load in any process sees either the previous or the new secret,
// never a torn write.
func (s *FileStore) Persist(raw []byte) error {
	if len(raw) == 0 {
		return ErrSecretEmpty
	}

	tmpPath := s.path + ".tmp"
	record := otp.EncodeSecret(raw) + "\n"
	if err := os.WriteFile(tmpPath, []byte(record), recordMode); err != nil {
		return errors.Join(ErrFailedToPersistSecret, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Best effort cleanup
		return errors.Join(ErrFailedToPersistSecret, err)
	}
	return nil
}

// Generate creates a new random shared secret of length bytes using a
// cryptographically secure source. Zero or negative length falls back to
// DefaultLength.
func Generate(length int) ([]byte, error) {
	if length <= 0 {
		length = DefaultLength
	}
	raw := make([]byte, length)
	if _, err := rand.Read(raw); err != nil {
		return nil, errors.Join(ErrFailedToGenerateSecret, err)
	}
	return raw, nil
}
