package secret

import (
	"fmt"
	"net/url"
	"time"

	"github.com/totpgate/totpgate/pkg/otp"
)

// URIParams describes an enrollment URI for authenticator apps.
type URIParams struct {
	AccountName string        // Shared identity shown in the app, e.g. "guest" (required)
	Issuer      string        // Service name displayed in authenticator apps (required)
	Digits      int           // Code length (optional, defaults to 6)
	Period      time.Duration // Code validity period (optional, defaults to 30s)
}

// Validate ensures required URI parameters are present.
func (p URIParams) Validate() error {
	if p.AccountName == "" {
		return ErrMissingAccountName
	}
	if p.Issuer == "" {
		return ErrMissingIssuer
	}
	return nil
}

// GetDefaults returns a copy with standard values applied to zero-valued fields.
func (p URIParams) GetDefaults() URIParams {
	if p.Digits == 0 {
		p.Digits = otp.DefaultDigits
	}
	if p.Period == 0 {
		p.Period = otp.DefaultPeriod
	}
	return p
}

// EnrollmentURI formats the otpauth:// URI for QR or manual entry, following
// the Key Uri Format specification:
// https://github.com/google/google-authenticator/wiki/Key-Uri-Format
//
// Pure formatting, no I/O. The secret appears in the output by design; the
// URI is for the operator's enrollment flow only and must never be shown to
// an authenticating guest.
func EnrollmentURI(raw []byte, params URIParams) (string, error) {
	if len(raw) == 0 {
		return "", ErrSecretEmpty
	}
	if err := params.Validate(); err != nil {
		return "", err
	}
	params = params.GetDefaults()

	label := fmt.Sprintf("%s:%s",
		url.PathEscape(params.Issuer),
		url.PathEscape(params.AccountName),
	)

	query := url.Values{}
	query.Set("secret", otp.EncodeSecret(raw))
	query.Set("issuer", params.Issuer)
	query.Set("algorithm", "SHA1")
	query.Set("digits", fmt.Sprintf("%d", params.Digits))
	query.Set("period", fmt.Sprintf("%d", int(params.Period/time.Second)))

	return fmt.Sprintf("otpauth://totp/%s?%s", label, query.Encode()), nil
}
