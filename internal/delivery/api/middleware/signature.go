package middleware

import (
	"bytes"
	"io"
	"log/slog"

	"rubbishday/config"
	deliverycontext "rubbishday/internal/delivery/context"
	domainerrors "rubbishday/internal/domain/errors"
	"rubbishday/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SignatureMiddlewareParams holds dependencies for SignatureMiddleware, injected by Fx.
type SignatureMiddlewareParams struct {
	fx.In

	Verifier service.RequestVerifier
	Config   *config.Config
	Logger   *slog.Logger
}

// SignatureMiddleware rejects skill requests whose body is not signed by Alexa
type SignatureMiddleware struct {
	verifier service.RequestVerifier
	enabled  bool
	logger   *slog.Logger
}

// NewSignatureMiddleware creates the signature check; it is a pass-through when skill.verifySignature is off
func NewSignatureMiddleware(params SignatureMiddlewareParams) *SignatureMiddleware {
	enabled := params.Config.Skill != nil && params.Config.Skill.VerifySignature

	return &SignatureMiddleware{
		verifier: params.Verifier,
		enabled:  enabled,
		logger:   params.Logger,
	}
}

// Verify reads the raw body, checks it against the request signature and puts it back for binding
func (m *SignatureMiddleware) Verify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		req := c.Request()
		body, err := io.ReadAll(req.Body)
		if err != nil {
			// BodyLimit reports an oversized body as its own 413
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				return err
			}

			return domainerrors.ErrBodyUnreadable.WithDetails(err.Error())
		}
		req.Body = io.NopCloser(bytes.NewReader(body))

		if err := m.verifier.VerifySignature(req.Context(), req.Header, body); err != nil {
			deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).
				Warn("Skill request signature rejected", slog.Any("error", err))

			return domainerrors.ErrRequestNotVerified.WithDetails(err.Error())
		}

		return next(c)
	}
}
