package domain

import (
	"context"
	"time"
)

// RSVP is one guest's attendance response.
// swagger:model RSVP
type RSVP struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Attending     bool      `json:"attending"`
	NumOfGuests   *int      `json:"numOfGuests,omitempty"`
	NumOfChildren *int      `json:"numOfChildren,omitempty"`
	UpdateToken   string    `json:"updateToken"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewRSVP returns an RSVP built from validated fields. ID is set by the repository on create.
func NewRSVP(f RSVPFields, updateToken string, createdAt, updatedAt time.Time) *RSVP {
	r := &RSVP{
		UpdateToken: updateToken,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	r.Apply(f)
	return r
}

// Apply copies validated fields onto the record. ID and UpdateToken are never touched.
func (r *RSVP) Apply(f RSVPFields) {
	r.Name = f.Name
	r.Email = f.Email
	r.Attending = f.Attending
	r.NumOfGuests = f.NumOfGuests
	r.NumOfChildren = f.NumOfChildren
}

// Guests returns NumOfGuests, or 0 when unset.
func (r *RSVP) Guests() int {
	if r.NumOfGuests == nil {
		return 0
	}
	return *r.NumOfGuests
}

// Children returns NumOfChildren, or 0 when unset.
func (r *RSVP) Children() int {
	if r.NumOfChildren == nil {
		return 0
	}
	return *r.NumOfChildren
}

// RSVPFilter is an equality predicate over stored RSVPs. Nil fields match everything.
type RSVPFilter struct {
	Attending *bool
	Email     *string
}

// AttendingFilter returns a filter matching RSVPs with the given attending value.
func AttendingFilter(attending bool) RSVPFilter {
	return RSVPFilter{Attending: &attending}
}

// EmailFilter returns a filter matching the RSVP with the given (normalized) email.
func EmailFilter(email string) RSVPFilter {
	return RSVPFilter{Email: &email}
}

// Matches reports whether r satisfies every set field of the filter.
func (f RSVPFilter) Matches(r *RSVP) bool {
	if f.Attending != nil && r.Attending != *f.Attending {
		return false
	}
	if f.Email != nil && r.Email != *f.Email {
		return false
	}
	return true
}

// RSVPRepository defines storage operations for RSVPs.
// Create and Update return ErrDuplicateEmail when the email is already taken;
// lookups, Update and Delete return ErrNotFound for missing records.
type RSVPRepository interface {
	Create(ctx context.Context, r *RSVP) error
	GetByID(ctx context.Context, id string) (*RSVP, error)
	GetByToken(ctx context.Context, token string) (*RSVP, error)
	FindOne(ctx context.Context, filter RSVPFilter) (*RSVP, error)
	List(ctx context.Context, filter RSVPFilter) ([]*RSVP, error)
	Count(ctx context.Context, filter RSVPFilter) (int, error)
	Update(ctx context.Context, r *RSVP) error
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// UpdateTokenIssuer generates the secret token that grants self-service access to one RSVP.
type UpdateTokenIssuer interface {
	Issue() (string, error)
}

// RSVPList is a filtered set of RSVPs with guest/children totals over the set.
type RSVPList struct {
	RSVPs         []*RSVP
	TotalGuests   int
	TotalChildren int
}

// NewRSVPList sums guest and children counts over rsvps.
func NewRSVPList(rsvps []*RSVP) *RSVPList {
	if rsvps == nil {
		rsvps = []*RSVP{}
	}
	l := &RSVPList{RSVPs: rsvps}
	for _, r := range rsvps {
		l.TotalGuests += r.Guests()
		l.TotalChildren += r.Children()
	}
	return l
}

// RSVPSummary aggregates the current store contents.
// swagger:model RSVPSummary
type RSVPSummary struct {
	TotalResponses int `json:"totalResponses"`
	Attending      int `json:"attending"`
	NotAttending   int `json:"notAttending"`
	TotalGuests    int `json:"totalGuests"`
	TotalChildren  int `json:"totalChildren"`
	TotalPeople    int `json:"totalPeople"`
}

// RSVPService defines guest and admin operations on RSVPs.
type RSVPService interface {
	// Create validates and stores a new RSVP. It returns *DeadlinePassedError after the deadline,
	// *ValidationError for bad input and *DuplicateRSVPError when the email already responded.
	Create(ctx context.Context, in RSVPInput) (*RSVP, error)
	List(ctx context.Context, filter RSVPFilter) (*RSVPList, error)
	Summary(ctx context.Context) (*RSVPSummary, error)
	EventInfo(ctx context.Context) *EventInfo
	GetByID(ctx context.Context, id string) (*RSVP, error)
	GetByToken(ctx context.Context, token string) (*RSVP, error)
	// UpdateByToken is the guest path: deadline gated, with attending defaults.
	UpdateByToken(ctx context.Context, token string, patch RSVPInput) (*RSVP, error)
	// UpdateByID is the admin path: not deadline gated.
	UpdateByID(ctx context.Context, id string, patch RSVPInput) (*RSVP, error)
	Delete(ctx context.Context, id string) error
}
