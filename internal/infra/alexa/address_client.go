// Package alexa talks to the Alexa platform: the Device Address API and inbound request verification.
package alexa

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rubbishday/config"
	"rubbishday/internal/domain/entity"
	"rubbishday/internal/domain/service"
	"rubbishday/internal/errors"
)

const maxErrorBodySize = 4 << 10

// fullAddress is the Device Address API payload; every field may be null
type fullAddress struct {
	AddressLine1     *string `json:"addressLine1"`
	City             *string `json:"city"`
	StateOrRegion    *string `json:"stateOrRegion"`
	DistrictOrCounty *string `json:"districtOrCounty"`
	CountryCode      *string `json:"countryCode"`
	PostalCode       *string `json:"postalCode"`
}

type addressError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type addressClient struct {
	httpClient     *http.Client
	requestLogging bool
	logger         *slog.Logger
}

// NewAddressClient creates an AddressProvider backed by the Alexa Device Address API
func NewAddressClient(cfg *config.Config, logger *slog.Logger) service.AddressProvider {
	timeout := config.DefaultUpstreamTimeout
	if cfg.Alexa != nil && cfg.Alexa.Timeout > 0 {
		timeout = cfg.Alexa.Timeout
	}

	return &addressClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		requestLogging: cfg.Skill != nil && cfg.Skill.RequestLogging,
		logger:         logger,
	}
}

// FetchAddress calls GET {apiEndpoint}/v1/devices/{deviceId}/settings/address once
func (c *addressClient) FetchAddress(ctx context.Context, call entity.DeviceCall) (*entity.DeviceAddress, error) {
	if call.APIEndpoint == "" {
		return nil, errors.New("alexa api endpoint missing from request")
	}

	apiURL := strings.TrimRight(call.APIEndpoint, "/") + "/v1/devices/" + url.PathEscape(call.DeviceID) + "/settings/address"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+call.APIAccessToken)

	if c.requestLogging {
		c.logger.InfoContext(ctx, "[Alexa] Calling device address API", slog.String("url", apiURL))
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The URL carries the device id.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}

		return nil, errors.Wrap(err, "call device address api")
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "[Alexa] Device address call completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	switch {
	case resp.StatusCode == http.StatusNoContent:
		return &entity.DeviceAddress{}, nil
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, newAddressServiceError(resp)
	}

	var payload fullAddress
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "decode device address")
	}

	return &entity.DeviceAddress{
		CountryCode: payload.CountryCode,
		PostalCode:  payload.PostalCode,
	}, nil
}

func newAddressServiceError(resp *http.Response) error {
	svcErr := &service.AddressServiceError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err == nil && len(body) > 0 {
		var apiErr addressError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			svcErr.Message = apiErr.Message
		}
	}

	return errors.WithStack(svcErr)
}
