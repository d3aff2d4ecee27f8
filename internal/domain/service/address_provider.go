package service

import (
	"context"
	"fmt"

	"rubbishday/internal/domain/entity"
)

// AddressServiceError is the declared failure of the Device Address API: it answered,
// but not with an address (missing permission, throttling, upstream fault).
type AddressServiceError struct {
	StatusCode int
	Message    string
}

func (e *AddressServiceError) Error() string {
	return fmt.Sprintf("device address service returned %d: %s", e.StatusCode, e.Message)
}

// AddressProvider fetches the postal address configured for an Alexa device
type AddressProvider interface {
	// FetchAddress calls the address service once for the given device.
	// A declared service failure is returned as *AddressServiceError; any other error is unexpected.
	FetchAddress(ctx context.Context, call entity.DeviceCall) (*entity.DeviceAddress, error)
}
