package impl

import (
	"html"
	"strings"
	"time"

	"rubbishday/internal/domain/entity"
)

const cardTitle = "Rubbish Day"

// joinWasteTypes lists waste types the way they are read out:
// "Refuse, Recycling and Garden", with any "/" in a name read as "and".
func joinWasteTypes(types []entity.WasteType) string {
	var b strings.Builder
	for i, wasteType := range types {
		b.WriteString(wasteType.Name)
		switch {
		case i == len(types)-2:
			b.WriteString(" and ")
		case i < len(types)-1:
			b.WriteString(", ")
		}
	}

	return strings.ReplaceAll(b.String(), "/", " and ")
}

// selectWeek picks the week the next collection falls in. A first collection date
// already in the past means the calendar has not rolled forward yet and week two is current.
func selectWeek(calendar *entity.CollectionCalendar, now time.Time) entity.WeekSchedule {
	if calendar.FirstCollectionDate.Before(now) {
		return calendar.Weeks[1]
	}

	return calendar.Weeks[0]
}

func collectionSpeech(street, day, wasteTypes string) string {
	return "The rubbish collection day for " + html.EscapeString(street) + " is " + html.EscapeString(day) +
		".  The next collection is for " + html.EscapeString(wasteTypes) + "."
}

func collectionCardText(day, wasteTypes string) string {
	return "Collection day: " + day + ".\n\n  Your next collection: " + wasteTypes + "."
}
