// Package impl contains the implementation of the skill's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"rubbishday/config"
	deliverycontext "rubbishday/internal/delivery/context"
	"rubbishday/internal/domain/service"
	"rubbishday/internal/domain/skill"
	"rubbishday/internal/usecase"
	"rubbishday/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Only Colchester Borough Council is served.
const (
	supportedCountry    = "GB"
	supportedPostalArea = "CO"
)

const (
	msgEnablePermissions   = "Please enable Location permissions in the Amazon Alexa app."
	msgAddressServiceError = "Sorry, there was an error attempting to get the location of your Alexa device."
	msgNoAddress           = "Could not get an address for this Alexa device.  Please set an address for this Alexa device in the Alexa app."
	msgUnsupportedCountry  = "Sorry, this skill does not currently support your country."
	msgUnsupportedLocation = "Sorry, this skill does not currently support your location."
	msgUnreadablePostcode  = "Sorry, the postcode set for this Alexa device could not be read. Please check the address in the Alexa app."
	msgLocationLookupError = "Sorry, there was an error looking up your location in the database."
	msgLocationNotFound    = "Sorry, your location was not found in the database."
	msgCalendarLookupError = "Sorry, there was an error looking up your collection calendar in the database."
)

// collectionService implements the CollectionUsecase interface.
type collectionService struct {
	addressProvider service.AddressProvider
	councilData     service.CouncilDataService
	requestLogging  bool
	now             func() time.Time
	logger          *slog.Logger
}

// CollectionServiceParams holds dependencies for CollectionService, injected by Fx.
type CollectionServiceParams struct {
	fx.In

	AddressProvider service.AddressProvider
	CouncilData     service.CouncilDataService
	Config          *config.Config
	Logger          *slog.Logger
}

// NewCollectionService is the constructor for collectionService.
func NewCollectionService(params CollectionServiceParams) usecase.CollectionUsecase {
	requestLogging := false
	if params.Config != nil && params.Config.Skill != nil {
		requestLogging = params.Config.Skill.RequestLogging
	}

	return &collectionService{
		addressProvider: params.AddressProvider,
		councilData:     params.CouncilData,
		requestLogging:  requestLogging,
		now:             time.Now,
		logger:          params.Logger,
	}
}

func (srv *collectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ReadCollectionCalendar walks consent, address, eligibility, location, calendar and week selection,
// stopping at the first gate that fails with that gate's fixed response.
func (srv *collectionService) ReadCollectionCalendar(ctx context.Context, req *usecase.CollectionRequest) (*skill.Response, error) {
	logger := srv.log(ctx)

	if srv.requestLogging {
		logger.Info("Received collection request", slog.String("device_id", req.Device.DeviceID))
	}

	if req.ConsentToken == "" {
		logger.Info("Device address permission not granted")

		return skill.NewResponseBuilder().
			Speak(msgEnablePermissions).
			PermissionsConsentCard(skill.PermissionDeviceAddress).
			Response(), nil
	}

	addr, err := srv.addressProvider.FetchAddress(ctx, req.Device)
	if err != nil {
		var svcErr *service.AddressServiceError
		if errors.As(err, &svcErr) {
			logger.Error("Error while attempting to get the device address",
				slog.Int("status", svcErr.StatusCode),
				slog.String("message", svcErr.Message),
			)

			return speak(msgAddressServiceError), nil
		}

		return nil, errors.Wrap(err, "failed to fetch device address")
	}

	if addr.IsEmpty() {
		logger.Info("No address set for device")

		return speak(msgNoAddress), nil
	}

	if country := addr.Country(); country != supportedCountry {
		logger.Warn("Unsupported location", slog.String("country_code", country))

		return speak(msgUnsupportedCountry), nil
	}

	if addr.PostalCode == nil {
		logger.Error("Device address has a country but no postal code")

		return speak(msgUnreadablePostcode), nil
	}
	postalCode := *addr.PostalCode

	area, err := util.PostalCodeArea(postalCode)
	if err != nil {
		logger.Error("Postal code could not be read", slog.Any("error", err))

		return speak(msgUnreadablePostcode), nil
	}

	// The area prefix is the only part of a postcode logged outside request logging.
	if area != supportedPostalArea {
		logger.Warn("Unsupported location", slog.String("postal_area", area))

		return speak(msgUnsupportedLocation), nil
	}

	if srv.requestLogging {
		logger.Info("Supported postal code area",
			slog.String("postal_area", area),
			slog.String("postal_code", postalCode),
		)
	}

	location, err := srv.councilData.ResolveLocation(ctx, postalCode)
	switch {
	case errors.Is(err, service.ErrLocationNotFound):
		logger.Warn("Location lookup returned 0 results", slog.String("postal_area", area))
		if srv.requestLogging {
			logger.Info("Location lookup detail", slog.Any("error", err))
		}

		return speak(msgLocationNotFound), nil
	case errors.Is(err, service.ErrLocationLookupFailed):
		logger.Error("Problem calling the location lookup API", slog.Any("error", err))

		return speak(msgLocationLookupError), nil
	case err != nil:
		return nil, errors.Wrap(err, "failed to resolve location")
	}

	calendar, err := srv.councilData.FetchCalendar(ctx, location.LocationID)
	switch {
	case errors.Is(err, service.ErrCalendarMissingFirstCollection):
		logger.Error("Did not get usable DatesOfFirstCollectionDays in the calendar", slog.Any("error", err))

		return speak(msgCalendarLookupError), nil
	case errors.Is(err, service.ErrCalendarMalformed):
		logger.Error("Malformed collection calendar", slog.Any("error", err))

		return speak(msgCalendarLookupError), nil
	case errors.Is(err, service.ErrCalendarLookupFailed):
		logger.Error("Problem calling the collection calendar API", slog.Any("error", err))

		return speak(msgCalendarLookupError), nil
	case err != nil:
		return nil, errors.Wrap(err, "failed to fetch collection calendar")
	}

	if len(calendar.Weeks) < 2 {
		logger.Error("Malformed collection calendar", slog.Int("weeks", len(calendar.Weeks)))

		return speak(msgCalendarLookupError), nil
	}

	day := calendar.FirstCollectionDay
	wasteTypes := selectWeek(calendar, srv.now())[day]
	if len(wasteTypes) == 0 {
		logger.Error("Malformed collection calendar", slog.String("error", "no collections listed for the collection day"), slog.String("day", day))

		return speak(msgCalendarLookupError), nil
	}

	list := joinWasteTypes(wasteTypes)
	logger.Info("Successfully looked up and returned collection schedule", slog.String("day", day))

	return skill.NewResponseBuilder().
		Speak(collectionSpeech(location.StreetName, day, list)).
		StandardCard(cardTitle, collectionCardText(day, list)).
		EndSession(true).
		Response(), nil
}

func speak(text string) *skill.Response {
	return skill.NewResponseBuilder().Speak(text).Response()
}
