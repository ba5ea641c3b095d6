package googleoauth

import (
	"errors"
	"fmt"
)

// ErrConfiguration is wrapped by errors reported for bad static config
// (missing client ID, malformed redirect URI). These are fatal at wiring
// time, not per-request failures.
var ErrConfiguration = errors.New("invalid oauth configuration")

// ErrorKind classifies per-request handshake failures. Every kind is
// recoverable by sending the user back through the authorization redirect.
type ErrorKind string

const (
	KindProviderDenied        ErrorKind = "provider_denied"
	KindMissingCode           ErrorKind = "missing_code"
	KindTransportError        ErrorKind = "transport_error"
	KindTokenExchangeRejected ErrorKind = "token_exchange_rejected"
	KindIdentityFetchFailed   ErrorKind = "identity_fetch_failed"
	KindRefreshFailed         ErrorKind = "refresh_failed"
)

// Error is the typed result for a failed handshake step. Detail carries the
// provider-reported string when one exists; treat it as untrusted content if
// reflected to a client.
type Error struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Detail != "" && e.Err != nil:
		return fmt.Sprintf("oauth %s: %s: %v", e.Kind, e.Detail, e.Err)
	case e.Detail != "":
		return fmt.Sprintf("oauth %s: %s", e.Kind, e.Detail)
	case e.Err != nil:
		return fmt.Sprintf("oauth %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("oauth %s", e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the ErrorKind carried by err, or "" when err is not a
// handshake error.
func KindOf(err error) ErrorKind {
	var oe *Error
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}
