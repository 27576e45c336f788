package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventrsvp/internal/domain"
)

func TestDeadlineGate_Check(t *testing.T) {
	gate := NewDeadlineGate(testEvent)
	deadline := testEvent.RSVPDeadline

	tests := []struct {
		name    string
		now     time.Time
		wantErr bool
	}{
		{"well before", deadline.Add(-72 * time.Hour), false},
		{"exactly at deadline", deadline, false},
		{"one nanosecond after", deadline.Add(time.Nanosecond), true},
		{"after the event", testEvent.Date.Add(time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gate.Check(tt.now)
			assert.Equal(t, tt.wantErr, gate.Passed(tt.now))
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			var deadlineErr *domain.DeadlinePassedError
			require.ErrorAs(t, err, &deadlineErr)
			assert.Equal(t, testEvent.Name, deadlineErr.EventName)
			assert.Equal(t, testEvent.Date, deadlineErr.EventDate)
			assert.Equal(t, deadline, deadlineErr.Deadline)
		})
	}
}

func TestDeadlineGate_Info(t *testing.T) {
	gate := NewDeadlineGate(testEvent)

	tests := []struct {
		name               string
		now                time.Time
		wantPassed         bool
		wantDaysDeadline   int
		wantDaysUntilEvent int
	}{
		{"ten days out", testEvent.RSVPDeadline.Add(-10 * 24 * time.Hour), false, 10, 22},
		{"partial day rounds up", testEvent.RSVPDeadline.Add(-90 * time.Minute), false, 1, 13},
		{"at deadline", testEvent.RSVPDeadline, false, 0, 12},
		{"after deadline", testEvent.RSVPDeadline.Add(25 * time.Hour), true, 0, 11},
		{"after event", testEvent.Date.Add(49 * time.Hour), true, 0, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := gate.Info(tt.now)

			assert.Equal(t, testEvent.Name, info.EventName)
			assert.Equal(t, testEvent.Location, info.EventLocation)
			assert.Equal(t, testEvent.Date, info.EventDate)
			assert.Equal(t, testEvent.RSVPDeadline, info.RSVPDeadline)
			assert.Equal(t, tt.wantPassed, info.IsDeadlinePassed)
			assert.Equal(t, !tt.wantPassed, info.CanStillRSVP)
			assert.Equal(t, tt.wantDaysDeadline, info.DaysUntilDeadline)
			assert.Equal(t, tt.wantDaysUntilEvent, info.DaysUntilEvent)
		})
	}
}
