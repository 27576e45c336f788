// Package memory holds process-local repositories for development and tests.
// Each operation runs under one lock, so the email uniqueness check and the
// write it guards are atomic, matching a database unique index.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"eventrsvp/internal/domain"
)

type rsvpRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.RSVP
	order []string
}

// NewRSVPRepository returns an empty in-memory RSVPRepository.
func NewRSVPRepository() domain.RSVPRepository {
	return &rsvpRepository{byID: make(map[string]*domain.RSVP)}
}

func clone(r *domain.RSVP) *domain.RSVP {
	c := *r
	if r.NumOfGuests != nil {
		v := *r.NumOfGuests
		c.NumOfGuests = &v
	}
	if r.NumOfChildren != nil {
		v := *r.NumOfChildren
		c.NumOfChildren = &v
	}
	return &c
}

// emailTakenLocked reports whether another record than id holds email. Callers hold mu.
func (m *rsvpRepository) emailTakenLocked(email, id string) bool {
	for _, r := range m.byID {
		if r.Email == email && r.ID != id {
			return true
		}
	}
	return false
}

func (m *rsvpRepository) Create(ctx context.Context, r *domain.RSVP) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.emailTakenLocked(r.Email, "") {
		return domain.ErrDuplicateEmail
	}
	r.ID = uuid.NewString()
	m.byID[r.ID] = clone(r)
	m.order = append(m.order, r.ID)
	return nil
}

func (m *rsvpRepository) GetByID(ctx context.Context, id string) (*domain.RSVP, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clone(r), nil
}

func (m *rsvpRepository) GetByToken(ctx context.Context, token string) (*domain.RSVP, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range m.byID {
		if r.UpdateToken == token {
			return clone(r), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *rsvpRepository) FindOne(ctx context.Context, filter domain.RSVPFilter) (*domain.RSVP, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, id := range m.order {
		if r := m.byID[id]; filter.Matches(r) {
			return clone(r), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *rsvpRepository) List(ctx context.Context, filter domain.RSVPFilter) ([]*domain.RSVP, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.RSVP, 0, len(m.order))
	for _, id := range m.order {
		if r := m.byID[id]; filter.Matches(r) {
			out = append(out, clone(r))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *rsvpRepository) Count(ctx context.Context, filter domain.RSVPFilter) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, r := range m.byID {
		if filter.Matches(r) {
			n++
		}
	}
	return n, nil
}

func (m *rsvpRepository) Update(ctx context.Context, r *domain.RSVP) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.byID[r.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if m.emailTakenLocked(r.Email, r.ID) {
		return domain.ErrDuplicateEmail
	}
	updated := clone(r)
	updated.UpdateToken = stored.UpdateToken
	updated.CreatedAt = stored.CreatedAt
	m.byID[r.ID] = updated
	return nil
}

func (m *rsvpRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *rsvpRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}
