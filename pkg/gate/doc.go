// Package gate is the authentication boundary for shared-code guest access:
// one operation, Authenticate, that answers whether a candidate code is
// currently valid against the community TOTP secret and, on success, grants a
// fixed-duration session.
//
// The gate is deliberately information-free on failure. A malformed code, a
// missing or corrupt secret record and a plain wrong code all produce the
// identical Result, and every failure path is padded to the configured
// FailureDelay so wall-clock timing does not reveal which step denied the
// caller. Distinct causes are emitted on the diagnostic slog channel for the
// operator, tagged with a per-attempt id.
//
// Usernames offered by the host framework are accepted and ignored, and group
// membership queries always answer false. That is the product design, not a
// gap: the code is a shared community secret, and holding it is the entire
// identity.
//
// # Usage
//
//	cfg, err := gate.LoadConfig()
//	if err != nil {
//	    // ...
//	}
//	g, err := gate.New(cfg, secret.NewFileStore(cfg.SecretPath),
//	    gate.WithLogger(log))
//	if err != nil {
//	    // ...
//	}
//
//	res := g.Authenticate("guest", "123456")
//	if res.OK {
//	    // apply res.SessionDuration to the host session
//	}
package gate
