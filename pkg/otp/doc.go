// Package otp implements the one-time-password arithmetic behind the shared
// community code: RFC 4226 HOTP, RFC 6238 TOTP with a configurable grace
// window, and the Base32 codec used for human-enterable secrets.
//
// The package is deliberately self-contained so services do not need a
// third-party TOTP library. A secret is raw key bytes; its Base32 text form
// exists only for persistence and enrollment, handled by DecodeSecret and
// EncodeSecret.
//
// # Grace window
//
// Validate accepts a code if it matches any time step in the inclusive range
// [T0-w, T0+w], where T0 is the step containing the supplied time and
// w = floor(grace/period). The window absorbs clock drift on either side plus
// the human delay between reading a code off one device and typing it into
// another. With the default 90s grace at a 30s step that is ±3 steps. Every
// step in the window is checked with a constant-time comparison regardless of
// earlier matches, so timing reveals nothing about which step matched.
//
// # Usage
//
//	engine, _ := otp.NewEngine(otp.Params{})
//	key, _ := otp.DecodeSecret("JBSWY3DPEHPK3PXP")
//	ok, _ := engine.Verify(key, "123456", time.Now())
//
// # See Also
//
//   - RFC 4226 – HMAC-Based One-Time Password (HOTP) Algorithm
//   - RFC 6238 – Time-Based One-Time Password (TOTP) Algorithm
package otp
