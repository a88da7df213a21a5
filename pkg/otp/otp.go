package otp

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/subtle"
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	DefaultDigits = 6                // Standard 6-digit TOTP codes
	DefaultPeriod = 30 * time.Second // RFC 6238 standard time step
)

// Params describes how codes are computed and matched.
type Params struct {
	Digits int           // Number of digits in a code (6-8)
	Period time.Duration // Time step length
	Grace  time.Duration // Accepted drift before/after the current step
}

// GetDefaults returns a copy with standard values applied to zero-valued fields.
func (p Params) GetDefaults() Params {
	if p.Digits == 0 {
		p.Digits = DefaultDigits
	}
	if p.Period == 0 {
		p.Period = DefaultPeriod
	}
	return p
}

// Validate ensures the parameters are usable. Time steps are whole seconds
// (the RFC 6238 counter is unix-seconds based), so any Period below one
// second is nonsense and rejected. A negative Grace is not an error: matching
// degrades to the exact current step.
func (p Params) Validate() error {
	if p.Digits < 6 || p.Digits > 8 {
		return ErrInvalidDigits
	}
	if p.Period < time.Second {
		return ErrInvalidPeriod
	}
	return nil
}

// window is the number of adjacent time steps accepted on each side of "now".
func (p Params) window() int64 {
	if p.Grace <= 0 {
		return 0
	}
	return int64(p.Grace / p.Period)
}

// HOTP implements RFC 4226 HMAC-based One-Time Password computation.
// The counter is serialized as a big-endian 8-byte value, hashed with
// HMAC-SHA1 keyed by the secret, then dynamically truncated.
func HOTP(key []byte, counter int64, digits int) int {
	counterBytes := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		counterBytes[i] = byte(counter & 0xff)
		counter = counter >> 8
	}

	mac := hmac.New(sha1.New, key)
	mac.Write(counterBytes)
	sum := mac.Sum(nil)

	// Dynamic truncation (RFC 4226 §5.3): low 4 bits of the last byte pick
	// the offset, the MSB of the extracted word is cleared to stay positive.
	offset := sum[len(sum)-1] & 0x0f
	code := (int(sum[offset]&0x7f) << 24) |
		(int(sum[offset+1]&0xff) << 16) |
		(int(sum[offset+2]&0xff) << 8) |
		(int(sum[offset+3] & 0xff))

	return code % int(math.Pow10(digits))
}

// Code formats the HOTP value for a counter as a zero-padded digit string.
func Code(key []byte, counter int64, digits int) string {
	return fmt.Sprintf("%0*d", digits, HOTP(key, counter, digits))
}

// CodeAt computes the TOTP code for the time step containing t.
func CodeAt(key []byte, t time.Time, p Params) (string, error) {
	p = p.GetDefaults()
	if err := p.Validate(); err != nil {
		return "", err
	}
	if len(key) == 0 {
		return "", ErrEmptySecret
	}
	counter := t.Unix() / int64(p.Period/time.Second)
	return Code(key, counter, p.Digits), nil
}

// MatchesShape reports whether candidate is exactly digits ASCII digits.
// Anything else is malformed and must be rejected before the secret is touched.
func MatchesShape(candidate string, digits int) bool {
	if len(candidate) != digits {
		return false
	}
	for i := 0; i < len(candidate); i++ {
		if candidate[i] < '0' || candidate[i] > '9' {
			return false
		}
	}
	return true
}

// Validate checks a candidate code against every time step within the grace
// window around t: the inclusive counter range [T0-w, T0+w] where
// T0 = floor(unix(t)/period) and w = floor(grace/period). All steps are
// evaluated even after a match, and comparison is constant-time, so the call
// duration does not depend on which step (if any) matched.
func Validate(key []byte, candidate string, t time.Time, p Params) (bool, error) {
	p = p.GetDefaults()
	if err := p.Validate(); err != nil {
		return false, err
	}
	if len(key) == 0 {
		return false, ErrEmptySecret
	}

	candidate = strings.TrimSpace(candidate)
	if !MatchesShape(candidate, p.Digits) {
		return false, nil
	}

	counter := t.Unix() / int64(p.Period/time.Second)
	w := p.window()

	matched := false
	for c := counter - w; c <= counter+w; c++ {
		code := Code(key, c, p.Digits)
		if subtle.ConstantTimeCompare([]byte(code), []byte(candidate)) == 1 {
			matched = true
		}
	}
	return matched, nil
}

// Engine binds Params to the verification capability consumed by
// authentication gates. One engine serves any number of concurrent callers;
// it holds no mutable state.
type Engine struct {
	params Params
}

// NewEngine validates the parameters and returns a ready engine.
func NewEngine(p Params) (*Engine, error) {
	p = p.GetDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Engine{params: p}, nil
}

// Params returns the effective (defaulted) parameters.
func (e *Engine) Params() Params {
	return e.params
}

// Verify checks candidate against the codes valid around t.
func (e *Engine) Verify(key []byte, candidate string, t time.Time) (bool, error) {
	return Validate(key, candidate, t, e.params)
}
