package models

// Preferred locations offered on the lead-capture form.
const (
	LocationLondon     = "london"
	LocationManchester = "manchester"
	LocationNewYork    = "newyork"
	LocationLosAngeles = "losangeles"
	LocationOther      = "other"
)

// Event types offered on the lead-capture form.
const (
	EventTypeMeetGreet = "meetgreet"
	EventTypeDinner    = "dinner"
	EventTypeWorkshop  = "workshop"
	EventTypeQA        = "qa"
)

// RegistrationSubmission holds the inline lead-capture form's field values.
// Same non-persistent lifecycle as BookingSubmission.
type RegistrationSubmission struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Location  string `json:"location"`
	EventType string `json:"event_type"`
}

var validLocations = map[string]bool{
	LocationLondon:     true,
	LocationManchester: true,
	LocationNewYork:    true,
	LocationLosAngeles: true,
	LocationOther:      true,
}

var validEventTypes = map[string]bool{
	EventTypeMeetGreet: true,
	EventTypeDinner:    true,
	EventTypeWorkshop:  true,
	EventTypeQA:        true,
}

// ValidLocation reports whether loc is one of the offered locations.
func ValidLocation(loc string) bool { return validLocations[loc] }

// ValidEventType reports whether et is one of the offered event types.
func ValidEventType(et string) bool { return validEventTypes[et] }

var eventTypeDisplayNames = map[string]string{
	EventTypeMeetGreet: "Meet & Greet",
	EventTypeDinner:    "VIP Dinner",
	EventTypeWorkshop:  "Workshop",
	EventTypeQA:        "Q&A Session",
}

// EventTypeDisplayName maps an event-type code to its display name. Values
// outside the enumerated set (booking emails pass the event title here) are
// returned unchanged.
func EventTypeDisplayName(eventType string) string {
	if name, ok := eventTypeDisplayNames[eventType]; ok {
		return name
	}
	return eventType
}
