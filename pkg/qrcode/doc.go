// Package qrcode renders the enrollment URI as a QR code for authenticator
// apps, either as raw PNG bytes or as a data-URI string that can be embedded
// directly into an operator-facing HTML page.
//
// It is a thin wrapper around github.com/skip2/go-qrcode with input
// validation and a sensible default size. The QR content is whatever the
// caller supplies; pairing it with pkg/secret.EnrollmentURI is the intended
// use. Remember that an enrollment QR encodes the shared secret itself and
// must only ever be shown to the operator.
package qrcode
