package domain

import "time"

// EventConfig describes the single event RSVPs are collected for. It is
// loaded once at startup.
type EventConfig struct {
	Name         string
	Location     string
	Date         time.Time
	RSVPDeadline time.Time
}

// EventInfo is the deadline status of the event at a given instant.
// swagger:model EventInfo
type EventInfo struct {
	EventName         string    `json:"eventName"`
	EventDate         time.Time `json:"eventDate"`
	EventLocation     string    `json:"eventLocation"`
	RSVPDeadline      time.Time `json:"rsvpDeadline"`
	IsDeadlinePassed  bool      `json:"isDeadlinePassed"`
	CanStillRSVP      bool      `json:"canStillRSVP"`
	DaysUntilDeadline int       `json:"daysUntilDeadline"`
	DaysUntilEvent    int       `json:"daysUntilEvent"`
}
