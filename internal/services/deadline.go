package services

import (
	"math"
	"time"

	"eventrsvp/internal/domain"
)

const day = 24 * time.Hour

// DeadlineGate decides whether guests may still create or change RSVPs.
type DeadlineGate struct {
	event domain.EventConfig
}

// NewDeadlineGate returns a gate for the given event.
func NewDeadlineGate(event domain.EventConfig) *DeadlineGate {
	return &DeadlineGate{event: event}
}

// Passed reports whether now is strictly after the RSVP deadline.
func (g *DeadlineGate) Passed(now time.Time) bool {
	return now.After(g.event.RSVPDeadline)
}

// Check returns a *domain.DeadlinePassedError once the deadline has passed.
func (g *DeadlineGate) Check(now time.Time) error {
	if !g.Passed(now) {
		return nil
	}
	return &domain.DeadlinePassedError{
		EventName: g.event.Name,
		EventDate: g.event.Date,
		Deadline:  g.event.RSVPDeadline,
	}
}

// Info returns the event metadata and deadline status at now.
func (g *DeadlineGate) Info(now time.Time) *domain.EventInfo {
	passed := g.Passed(now)
	info := &domain.EventInfo{
		EventName:        g.event.Name,
		EventDate:        g.event.Date,
		EventLocation:    g.event.Location,
		RSVPDeadline:     g.event.RSVPDeadline,
		IsDeadlinePassed: passed,
		CanStillRSVP:     !passed,
		DaysUntilEvent:   daysUntil(now, g.event.Date),
	}
	if !passed {
		info.DaysUntilDeadline = daysUntil(now, g.event.RSVPDeadline)
	}
	return info
}

// daysUntil is the ceiling of the whole-day difference from now to t; negative once t is behind.
func daysUntil(now, t time.Time) int {
	return int(math.Ceil(float64(t.Sub(now)) / float64(day)))
}
