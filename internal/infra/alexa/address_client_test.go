package alexa

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"rubbishday/config"
	"rubbishday/internal/domain/entity"
	"rubbishday/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAddressClient() service.AddressProvider {
	return NewAddressClient(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAddressClient_FetchAddress_Success(t *testing.T) {
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_, _ = io.WriteString(w, `{
			"addressLine1": "1 High Street",
			"city": "Colchester",
			"countryCode": "GB",
			"postalCode": "CO4 3ZZ",
			"stateOrRegion": null
		}`)
	}))
	defer server.Close()

	addr, err := newTestAddressClient().FetchAddress(context.Background(), entity.DeviceCall{
		DeviceID:       "amzn1.ask.device.ABC",
		APIEndpoint:    server.URL + "/",
		APIAccessToken: "token-123",
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1/devices/amzn1.ask.device.ABC/settings/address", gotPath)
	assert.Equal(t, "Bearer token-123", gotAuth)
	require.NotNil(t, addr.CountryCode)
	require.NotNil(t, addr.PostalCode)
	assert.Equal(t, "GB", *addr.CountryCode)
	assert.Equal(t, "CO4 3ZZ", *addr.PostalCode)
}

func TestAddressClient_FetchAddress_RequestLogging(t *testing.T) {
	tests := []struct {
		name           string
		requestLogging bool
	}{
		{name: "off", requestLogging: false},
		{name: "on", requestLogging: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"countryCode": "GB", "postalCode": "CO4 3ZZ"}`)
			}))
			defer server.Close()

			var buf bytes.Buffer
			client := NewAddressClient(&config.Config{
				Skill: &config.SkillConfig{RequestLogging: tt.requestLogging},
			}, slog.New(slog.NewTextHandler(&buf, nil)))

			_, err := client.FetchAddress(context.Background(), entity.DeviceCall{
				DeviceID:       "amzn1.ask.device.ABC",
				APIEndpoint:    server.URL,
				APIAccessToken: "token-123",
			})
			require.NoError(t, err)

			if tt.requestLogging {
				assert.Contains(t, buf.String(), server.URL+"/v1/devices/amzn1.ask.device.ABC/settings/address")
			} else {
				assert.NotContains(t, buf.String(), "amzn1.ask.device.ABC")
			}
			assert.NotContains(t, buf.String(), "token-123")
		})
	}
}

func TestAddressClient_FetchAddress_NullFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"countryCode": null, "postalCode": null}`)
	}))
	defer server.Close()

	addr, err := newTestAddressClient().FetchAddress(context.Background(), entity.DeviceCall{
		DeviceID:    "device-1",
		APIEndpoint: server.URL,
	})
	require.NoError(t, err)
	assert.True(t, addr.IsEmpty())
}

func TestAddressClient_FetchAddress_NoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	addr, err := newTestAddressClient().FetchAddress(context.Background(), entity.DeviceCall{
		DeviceID:    "device-1",
		APIEndpoint: server.URL,
	})
	require.NoError(t, err)
	assert.True(t, addr.IsEmpty())
}

func TestAddressClient_FetchAddress_ServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"type": "FORBIDDEN", "message": "The authentication token is not valid."}`)
	}))
	defer server.Close()

	addr, err := newTestAddressClient().FetchAddress(context.Background(), entity.DeviceCall{
		DeviceID:    "device-1",
		APIEndpoint: server.URL,
	})
	assert.Nil(t, addr)

	var svcErr *service.AddressServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, http.StatusForbidden, svcErr.StatusCode)
	assert.Equal(t, "The authentication token is not valid.", svcErr.Message)
}

func TestAddressClient_FetchAddress_TransportErrorIsNotServiceError(t *testing.T) {
	_, err := newTestAddressClient().FetchAddress(context.Background(), entity.DeviceCall{
		DeviceID:    "device-1",
		APIEndpoint: "http://127.0.0.1:1",
	})
	require.Error(t, err)

	var svcErr *service.AddressServiceError
	assert.False(t, errors.As(err, &svcErr))
	assert.NotContains(t, err.Error(), "device-1")
}

func TestAddressClient_FetchAddress_MissingEndpoint(t *testing.T) {
	_, err := newTestAddressClient().FetchAddress(context.Background(), entity.DeviceCall{DeviceID: "device-1"})
	require.Error(t, err)
}
