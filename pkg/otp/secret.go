package otp

import (
	"encoding/base32"
	"errors"
	"regexp"
	"strings"
)

// secretAlphabet matches standard Base32: uppercase A-Z, digits 2-7, optional trailing padding.
var secretAlphabet = regexp.MustCompile("^[A-Z2-7]+=*$")

// DecodeSecret decodes a Base32-encoded shared secret into raw key bytes.
// Input is trimmed and uppercased first, so secrets copied from authenticator
// apps or hand-typed in lowercase decode the same way. Both padded and
// unpadded forms are accepted.
func DecodeSecret(text string) ([]byte, error) {
	s := strings.ToUpper(strings.TrimSpace(text))
	if !secretAlphabet.MatchString(s) {
		return nil, ErrInvalidSecret
	}

	enc := base32.StdEncoding
	if !strings.Contains(s, "=") {
		enc = enc.WithPadding(base32.NoPadding)
	}

	raw, err := enc.DecodeString(s)
	if err != nil {
		return nil, errors.Join(ErrInvalidSecret, err)
	}
	return raw, nil
}

// EncodeSecret encodes raw key bytes as canonical Base32: uppercase, padded to
// a multiple of 8 characters, the form authenticator apps expect for manual entry.
// Round-trips with DecodeSecret.
func EncodeSecret(raw []byte) string {
	return base32.StdEncoding.EncodeToString(raw)
}
