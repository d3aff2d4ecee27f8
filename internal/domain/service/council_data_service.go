package service

import (
	"context"

	"rubbishday/internal/domain/entity"
	"rubbishday/internal/errors"
)

// Council data API failures.
var (
	// ErrLocationLookupFailed is returned when the location API cannot be reached or answers non-200.
	ErrLocationLookupFailed = errors.New("location lookup failed")
	// ErrLocationNotFound is returned when the location API has no record for the postcode.
	ErrLocationNotFound = errors.New("location not found")
	// ErrCalendarLookupFailed is returned when the calendar API cannot be reached or answers non-200.
	ErrCalendarLookupFailed = errors.New("calendar lookup failed")
	// ErrCalendarMissingFirstCollection is returned when DatesOfFirstCollectionDays is absent.
	ErrCalendarMissingFirstCollection = errors.New("calendar has no DatesOfFirstCollectionDays")
	// ErrCalendarMalformed is returned for any other calendar payload that cannot be used.
	ErrCalendarMalformed = errors.New("calendar payload malformed")
)

// CouncilDataService resolves postcodes and collection calendars through the council open-data APIs
type CouncilDataService interface {
	// ResolveLocation maps a postcode to the first matching gazetteer record.
	ResolveLocation(ctx context.Context, postalCode string) (*entity.LocationRecord, error)

	// FetchCalendar returns the two-week collection calendar for a location id.
	FetchCalendar(ctx context.Context, locationID string) (*entity.CollectionCalendar, error)
}
