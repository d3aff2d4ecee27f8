// Package council implements the council open-data API clients: postcode to LLPG location, and LLPG location to collection calendar.
package council

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rubbishday/config"
	"rubbishday/internal/domain/entity"
	"rubbishday/internal/domain/service"
	"rubbishday/internal/errors"
	"rubbishday/internal/util"
)

const (
	dateSuffix = "T00:00:00"
	dateLayout = "2006-01-02"

	// Stands in for the postcode in URLs carried by errors when request logging is off
	redactedFilter = "redacted"
)

type locationResponse struct {
	Value []struct {
		LLPGID string `json:"new_llpgid"`
		Street string `json:"new_street"`
	} `json:"value"`
}

type calendarResponse struct {
	DatesOfFirstCollectionDays map[string]string `json:"DatesOfFirstCollectionDays"`
	Weeks                      []struct {
		Rows map[string][]struct {
			Name string `json:"Name"`
		} `json:"Rows"`
	} `json:"Weeks"`
}

type client struct {
	locationBaseURL string
	calendarBaseURL string
	httpClient      *http.Client
	location        *time.Location
	requestLogging  bool
	logger          *slog.Logger
}

// NewClient creates the council data client from configuration
func NewClient(cfg *config.Config, logger *slog.Logger) service.CouncilDataService {
	councilCfg := cfg.Council
	if councilCfg == nil {
		councilCfg = &config.CouncilConfig{}
	}

	timeout := councilCfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultUpstreamTimeout
	}

	return &client{
		locationBaseURL: strings.TrimRight(orDefault(councilCfg.LocationBaseURL, config.DefaultLocationBaseURL), "/"),
		calendarBaseURL: strings.TrimRight(orDefault(councilCfg.CalendarBaseURL, config.DefaultCalendarBaseURL), "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		location:       time.Local,
		requestLogging: cfg.Skill != nil && cfg.Skill.RequestLogging,
		logger:         logger,
	}
}

func (c *client) locationURL(filterValue string) string {
	return c.locationBaseURL + "?$filter=(new_postcoide%20eq%20'" + filterValue + "')"
}

// ResolveLocation queries the LLPG OData endpoint for a postcode and returns the first record.
// Errors carry the request URL with the postcode redacted unless request logging is on.
func (c *client) ResolveLocation(ctx context.Context, postalCode string) (*entity.LocationRecord, error) {
	apiURL := c.locationURL(util.EncodePostalCodeQuery(postalCode))
	errURL := apiURL
	if !c.requestLogging {
		errURL = c.locationURL(redactedFilter)
	}

	var payload locationResponse
	if err := c.getJSON(ctx, apiURL, &payload); err != nil {
		return nil, errors.Wrapf(errors.Mark(service.ErrLocationLookupFailed, err), "GET %s", errURL)
	}

	if len(payload.Value) == 0 {
		return nil, errors.Wrapf(service.ErrLocationNotFound, "GET %s returned 0 results", errURL)
	}

	first := payload.Value[0]
	if strings.TrimSpace(first.LLPGID) == "" {
		return nil, errors.Wrapf(service.ErrLocationLookupFailed, "GET %s returned a record without new_llpgid", errURL)
	}

	return &entity.LocationRecord{
		LocationID: first.LLPGID,
		StreetName: first.Street,
	}, nil
}

// FetchCalendar fetches and parses the two-week collection calendar for an LLPG id
func (c *client) FetchCalendar(ctx context.Context, locationID string) (*entity.CollectionCalendar, error) {
	apiURL := c.calendarBaseURL + "/" + locationID

	var payload calendarResponse
	if err := c.getJSON(ctx, apiURL, &payload); err != nil {
		if errors.Is(err, errDecode) {
			return nil, errors.Wrapf(errors.Mark(service.ErrCalendarMalformed, err), "GET %s", apiURL)
		}

		return nil, errors.Wrapf(errors.Mark(service.ErrCalendarLookupFailed, err), "GET %s", apiURL)
	}

	calendar, err := c.parseCalendar(&payload)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", apiURL)
	}

	return calendar, nil
}

func (c *client) parseCalendar(payload *calendarResponse) (*entity.CollectionCalendar, error) {
	if payload.DatesOfFirstCollectionDays == nil {
		return nil, errors.WithStack(service.ErrCalendarMissingFirstCollection)
	}

	if len(payload.DatesOfFirstCollectionDays) != 1 {
		return nil, errors.Wrapf(service.ErrCalendarMalformed,
			"expected one first collection day, got %d", len(payload.DatesOfFirstCollectionDays))
	}

	var day, rawDate string
	for key, value := range payload.DatesOfFirstCollectionDays {
		day, rawDate = key, value
	}

	date, err := time.ParseInLocation(dateLayout, strings.Replace(rawDate, dateSuffix, "", 1), c.location)
	if err != nil {
		return nil, errors.Wrapf(service.ErrCalendarMalformed, "first collection date %q: %v", rawDate, err)
	}

	if len(payload.Weeks) < 2 {
		return nil, errors.Wrapf(service.ErrCalendarMalformed, "expected two weeks, got %d", len(payload.Weeks))
	}

	weeks := make([]entity.WeekSchedule, 0, len(payload.Weeks))
	for _, week := range payload.Weeks {
		schedule := make(entity.WeekSchedule, len(week.Rows))
		for rowDay, items := range week.Rows {
			wasteTypes := make([]entity.WasteType, 0, len(items))
			for _, item := range items {
				wasteTypes = append(wasteTypes, entity.WasteType{Name: item.Name})
			}
			schedule[rowDay] = wasteTypes
		}
		weeks = append(weeks, schedule)
	}

	return &entity.CollectionCalendar{
		FirstCollectionDay:  day,
		FirstCollectionDate: date,
		Weeks:               weeks,
	}, nil
}

var errDecode = errors.New("decode response body")

// getJSON performs one GET and decodes a 200 response into out. There is no retry.
func (c *client) getJSON(ctx context.Context, apiURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	if c.requestLogging {
		c.logger.InfoContext(ctx, "[Council] Calling council API", slog.String("url", apiURL))
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Callers add the URL, redacted as needed.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return errors.Wrap(urlErr.Err, urlErr.Op)
		}

		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "[Council] API call completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("council API returned %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Mark(errDecode, err)
	}

	return nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}
