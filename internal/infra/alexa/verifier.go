package alexa

import (
	"context"
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"slices"
	"strings"
	"time"

	"rubbishday/config"
	"rubbishday/internal/domain/service"
	"rubbishday/internal/errors"
)

// Request signing headers
const (
	HeaderSignatureCertChainURL = "SignatureCertChainUrl"
	HeaderSignature256          = "Signature-256"
)

const (
	certHost         = "s3.amazonaws.com"
	certPathPrefix   = "/echo.api/"
	certSubjectAltDN = "echo-api.amazon.com"
	maxCertChainSize = 64 << 10
)

type requestVerifier struct {
	applicationID string
	tolerance     time.Duration
	roots         *x509.CertPool
	httpClient    *http.Client
	logger        *slog.Logger
}

// NewRequestVerifier creates the verifier for inbound skill requests
func NewRequestVerifier(cfg *config.Config, logger *slog.Logger) service.RequestVerifier {
	timeout := config.DefaultUpstreamTimeout
	if cfg.Alexa != nil && cfg.Alexa.Timeout > 0 {
		timeout = cfg.Alexa.Timeout
	}

	v := &requestVerifier{
		tolerance: config.DefaultTimestampTolerance,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}

	if cfg.Skill != nil {
		v.applicationID = cfg.Skill.ApplicationID
		if cfg.Skill.TimestampTolerance > 0 {
			v.tolerance = cfg.Skill.TimestampTolerance
		}
	}

	// nil roots means the host's system pool
	return v
}

// VerifyRequest checks that the request targets this skill and is recent
func (v *requestVerifier) VerifyRequest(applicationID string, timestamp time.Time, now time.Time) error {
	if v.applicationID != "" && applicationID != v.applicationID {
		return errors.Wrapf(service.ErrApplicationMismatch, "got %q", applicationID)
	}

	skew := now.Sub(timestamp)
	if skew < 0 {
		skew = -skew
	}
	if skew > v.tolerance {
		return errors.Wrapf(service.ErrTimestampOutOfBounds, "skew %s exceeds %s", skew, v.tolerance)
	}

	return nil
}

// VerifySignature validates the certificate chain referenced by the request and the SHA-256 body signature
func (v *requestVerifier) VerifySignature(ctx context.Context, header http.Header, body []byte) error {
	chainURL := header.Get(HeaderSignatureCertChainURL)
	if err := validateCertChainURL(chainURL); err != nil {
		return err
	}

	signature, err := base64.StdEncoding.DecodeString(header.Get(HeaderSignature256))
	if err != nil || len(signature) == 0 {
		return errors.Wrap(service.ErrSignatureInvalid, "missing or undecodable Signature-256 header")
	}

	pemChain, err := v.fetchCertChain(ctx, chainURL)
	if err != nil {
		return err
	}

	leaf, err := v.verifyCertChain(pemChain, time.Now())
	if err != nil {
		return err
	}

	pub, ok := leaf.PublicKey.(*rsa.PublicKey)
	if !ok {
		return errors.Wrap(service.ErrCertificateInvalid, "signing key is not RSA")
	}

	digest := sha256.Sum256(body)
	if err := rsa.VerifyPKCS1v15(pub, crypto.SHA256, digest[:], signature); err != nil {
		return errors.Wrap(service.ErrSignatureInvalid, err.Error())
	}

	return nil
}

// validateCertChainURL applies the Alexa rules: https, host s3.amazonaws.com, path under /echo.api/, port 443 if any.
func validateCertChainURL(raw string) error {
	if raw == "" {
		return errors.Wrap(service.ErrCertificateInvalid, "missing SignatureCertChainUrl header")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return errors.Wrap(service.ErrCertificateInvalid, err.Error())
	}

	if !strings.EqualFold(u.Scheme, "https") {
		return errors.Wrapf(service.ErrCertificateInvalid, "scheme %q", u.Scheme)
	}
	if !strings.EqualFold(u.Hostname(), certHost) {
		return errors.Wrapf(service.ErrCertificateInvalid, "host %q", u.Hostname())
	}
	if port := u.Port(); port != "" && port != "443" {
		return errors.Wrapf(service.ErrCertificateInvalid, "port %q", port)
	}
	if !strings.HasPrefix(path.Clean(u.Path), certPathPrefix) {
		return errors.Wrapf(service.ErrCertificateInvalid, "path %q", u.Path)
	}

	return nil
}

func (v *requestVerifier) fetchCertChain(ctx context.Context, chainURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, chainURL, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "download signing certificate chain")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(service.ErrCertificateInvalid, "certificate download returned %d", resp.StatusCode)
	}

	pemChain, err := io.ReadAll(io.LimitReader(resp.Body, maxCertChainSize))
	if err != nil {
		return nil, errors.Wrap(err, "read signing certificate chain")
	}

	return pemChain, nil
}

// verifyCertChain parses a PEM chain, leaf first, and verifies it against the root pool at the given time.
func (v *requestVerifier) verifyCertChain(pemChain []byte, at time.Time) (*x509.Certificate, error) {
	var certs []*x509.Certificate
	for rest := pemChain; ; {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" {
			continue
		}

		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, errors.Wrap(service.ErrCertificateInvalid, err.Error())
		}
		certs = append(certs, cert)
	}

	if len(certs) == 0 {
		return nil, errors.Wrap(service.ErrCertificateInvalid, "no certificates in chain")
	}

	leaf := certs[0]
	if !slices.Contains(leaf.DNSNames, certSubjectAltDN) {
		return nil, errors.Wrapf(service.ErrCertificateInvalid, "subject alternative names %v", leaf.DNSNames)
	}

	intermediates := x509.NewCertPool()
	for _, cert := range certs[1:] {
		intermediates.AddCert(cert)
	}

	if _, err := leaf.Verify(x509.VerifyOptions{
		DNSName:       certSubjectAltDN,
		Intermediates: intermediates,
		Roots:         v.roots,
		CurrentTime:   at,
		KeyUsages:     []x509.ExtKeyUsage{x509.ExtKeyUsageAny},
	}); err != nil {
		v.logger.Warn("[Alexa] Signing certificate chain rejected", slog.Any("error", err))

		return nil, errors.Wrap(service.ErrCertificateInvalid, err.Error())
	}

	return leaf, nil
}
