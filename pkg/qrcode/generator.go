package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyContent is returned when the content string is empty or whitespace.
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrFailedToGenerate is returned when QR code rendering fails.
	ErrFailedToGenerate = errors.New("failed to generate QR code")
)

// defaultSize is the pixel size used when the caller passes zero or less.
const defaultSize = 256

// EnrollmentPNG renders content, typically an otpauth:// enrollment URI, as a
// PNG QR code. Medium error correction is enough for a code scanned straight
// off a screen.
func EnrollmentPNG(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = defaultSize
	}
	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerate, err)
	}
	return png, nil
}

// EnrollmentDataURI renders content as a base64 data URI suitable for an
// <img> tag on an operator-facing page.
func EnrollmentDataURI(content string, size int) (string, error) {
	png, err := EnrollmentPNG(content, size)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(png)), nil
}
