package service

import (
	"context"
	"net/http"
	"time"

	"rubbishday/internal/errors"
)

// Inbound request verification failures.
var (
	ErrSignatureInvalid     = errors.New("request signature invalid")
	ErrCertificateInvalid   = errors.New("signing certificate invalid")
	ErrTimestampOutOfBounds = errors.New("request timestamp outside tolerance")
	ErrApplicationMismatch  = errors.New("application id mismatch")
)

// RequestVerifier authenticates inbound skill requests
type RequestVerifier interface {
	// VerifySignature checks the signing certificate chain and the body signature.
	VerifySignature(ctx context.Context, header http.Header, body []byte) error

	// VerifyRequest checks the application id and request timestamp against now.
	VerifyRequest(applicationID string, timestamp time.Time, now time.Time) error
}
