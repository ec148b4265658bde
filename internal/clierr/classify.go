package clierr

import (
	"errors"
	"net"
	"syscall"

	"nathanbeddoewebdev/polar/internal/polar"
)

// Kind identifies which branch of the error taxonomy an error belongs to.
type Kind int

const (
	KindUnknown Kind = iota
	KindControl
	KindValidation
	KindAPI
	KindSDK
	KindConnection
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindControl:
		return "control"
	case KindValidation:
		return "validation"
	case KindAPI:
		return "api"
	case KindSDK:
		return "sdk"
	case KindConnection:
		return "connection"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Classify returns the Kind of err. The checks run in a fixed order and the
// first match wins.
func Classify(err error) Kind {
	var (
		exitErr       *ExitError
		validationErr *polar.ValidationError
		apiErr        *polar.APIError
		sdkErr        *polar.SDKError
	)
	switch {
	case errors.As(err, &exitErr):
		return KindControl
	case errors.As(err, &validationErr):
		return KindValidation
	case errors.As(err, &apiErr):
		return KindAPI
	case errors.As(err, &sdkErr):
		return KindSDK
	case isConnectionFailure(err):
		return KindConnection
	case isTimeout(err):
		return KindTimeout
	default:
		return KindUnknown
	}
}

func isConnectionFailure(err error) bool {
	var transportErr *polar.TransportError
	if errors.As(err, &transportErr) {
		return !transportErr.Timeout
	}
	if polar.IsTimeout(err) {
		return false
	}

	var (
		opErr  *net.OpError
		dnsErr *net.DNSError
	)
	switch {
	case errors.As(err, &opErr) && opErr.Op == "dial":
		return true
	case errors.As(err, &dnsErr):
		return true
	case errors.Is(err, syscall.ECONNREFUSED), errors.Is(err, syscall.ECONNRESET):
		return true
	}
	return false
}

func isTimeout(err error) bool {
	var transportErr *polar.TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Timeout
	}
	return polar.IsTimeout(err)
}
