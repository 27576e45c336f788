package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRSVPFilter_Matches(t *testing.T) {
	r := &RSVP{Email: "ana@example.com", Attending: true}

	assert.True(t, RSVPFilter{}.Matches(r))
	assert.True(t, AttendingFilter(true).Matches(r))
	assert.False(t, AttendingFilter(false).Matches(r))
	assert.True(t, EmailFilter("ana@example.com").Matches(r))
	assert.False(t, EmailFilter("bo@example.com").Matches(r))
}

func TestNewRSVPList(t *testing.T) {
	list := NewRSVPList([]*RSVP{
		{NumOfGuests: intPtr(2), NumOfChildren: intPtr(1)},
		{NumOfGuests: intPtr(3)},
		{},
	})
	assert.Len(t, list.RSVPs, 3)
	assert.Equal(t, 5, list.TotalGuests)
	assert.Equal(t, 1, list.TotalChildren)

	empty := NewRSVPList(nil)
	assert.NotNil(t, empty.RSVPs)
	assert.Empty(t, empty.RSVPs)
	assert.Zero(t, empty.TotalGuests)
}

func TestRSVP_Apply(t *testing.T) {
	r := &RSVP{ID: "id-1", UpdateToken: "tok", Name: "Old"}

	r.Apply(RSVPFields{Name: "New", Email: "new@example.com", Attending: true, NumOfGuests: intPtr(1), NumOfChildren: intPtr(0)})

	assert.Equal(t, "id-1", r.ID)
	assert.Equal(t, "tok", r.UpdateToken)
	assert.Equal(t, "New", r.Name)
	assert.Equal(t, 1, r.Guests())
	assert.Equal(t, 0, r.Children())
}
