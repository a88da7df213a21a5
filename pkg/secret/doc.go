// Package secret owns the lifecycle of the single shared TOTP secret:
// generation from a cryptographically secure source, persistence as one line
// of base32 text, loading with fail-closed error reporting, and enrollment
// URI formatting for authenticator apps.
//
// The secret record is the only shared mutable state in the system. Persist
// replaces it with a write-to-temp-then-rename, which keeps rotation safe
// against concurrent readers in other processes without any in-process
// locking. Rotation is simply Generate followed by Persist: every code
// derived from the old secret stops validating the moment the rename lands.
//
// Load distinguishes a missing record (ErrSecretNotFound), an empty record
// (ErrSecretEmpty) and one that fails base32 decoding (ErrSecretCorrupt).
// The distinction exists for operator diagnostics only; callers in the
// authentication path must treat any Load error as a denied attempt.
package secret
