package entity

import "time"

// LocationRecord is a council land and property gazetteer (LLPG) match for a postcode.
type LocationRecord struct {
	LocationID string // LLPG identifier, used as the calendar key.
	StreetName string // Street name spoken back to the customer.
}

// WasteType is one kind of waste picked up on a collection day, e.g. "Recycling" or "Glass/Cans".
type WasteType struct {
	Name string
}

// WeekSchedule maps a day name ("Monday") to the waste types collected that day, in council order.
type WeekSchedule map[string][]WasteType

// CollectionCalendar is the rolling two-week collection calendar for one location.
type CollectionCalendar struct {
	FirstCollectionDay  string         // Day name of the collection, e.g. "Monday".
	FirstCollectionDate time.Time      // Date of the first advertised collection, midnight, no time component.
	Weeks               []WeekSchedule // Always two entries: this week and the look-ahead week.
}
