package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventrsvp/internal/domain"
)

const (
	emailDateLayout     = "Monday, January 2, 2006"
	emailDeadlineLayout = "January 2, 2006 15:04 MST"
)

type rsvpService struct {
	repo         domain.RSVPRepository
	tokenIssuer  domain.UpdateTokenIssuer
	gate         *DeadlineGate
	emailService domain.EmailService
	links        UpdateLinks
	logger       *slog.Logger
	now          func() time.Time
}

// RSVPServiceOption customizes an RSVPService.
type RSVPServiceOption func(*rsvpService)

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) RSVPServiceOption {
	return func(s *rsvpService) { s.now = now }
}

// NewRSVPService creates an RSVPService. emailService may be nil, in which case no confirmation is sent.
func NewRSVPService(
	repo domain.RSVPRepository,
	tokenIssuer domain.UpdateTokenIssuer,
	gate *DeadlineGate,
	emailService domain.EmailService,
	links UpdateLinks,
	logger *slog.Logger,
	opts ...RSVPServiceOption,
) domain.RSVPService {
	s := &rsvpService{
		repo:         repo,
		tokenIssuer:  tokenIssuer,
		gate:         gate,
		emailService: emailService,
		links:        links,
		logger:       logger,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *rsvpService) Create(ctx context.Context, in domain.RSVPInput) (*domain.RSVP, error) {
	now := s.now()
	if err := s.gate.Check(now); err != nil {
		return nil, err
	}
	fields, err := in.Validate()
	if err != nil {
		return nil, err
	}
	token, err := s.tokenIssuer.Issue()
	if err != nil {
		return nil, fmt.Errorf("issue update token: %w", err)
	}

	rsvp := domain.NewRSVP(fields, token, now, now)
	if err := s.repo.Create(ctx, rsvp); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, s.duplicate(ctx, fields.Email)
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, s.rejected(ctx, err)
		}
		return nil, fmt.Errorf("create rsvp: %w", err)
	}

	s.sendConfirmation(ctx, rsvp)
	return rsvp, nil
}

// rejected reports a store-level constraint failure as a validation error.
func (s *rsvpService) rejected(ctx context.Context, err error) error {
	s.logger.WarnContext(ctx, "store rejected rsvp values", "err", err)
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return &domain.ValidationError{Errors: []string{domain.MsgValuesRejected}}
}

// duplicate loads the RSVP that already holds email after the store rejected an insert.
func (s *rsvpService) duplicate(ctx context.Context, email string) error {
	existing, err := s.repo.FindOne(ctx, domain.EmailFilter(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Deleted between the failed insert and this lookup.
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("find existing rsvp: %w", err)
	}
	return &domain.DuplicateRSVPError{Existing: existing}
}

func (s *rsvpService) sendConfirmation(ctx context.Context, rsvp *domain.RSVP) {
	if s.emailService == nil {
		return
	}
	event := s.gate.event
	data := &domain.RSVPConfirmationEmailData{
		Email:         rsvp.Email,
		Name:          rsvp.Name,
		Attending:     rsvp.Attending,
		NumOfGuests:   rsvp.Guests(),
		NumOfChildren: rsvp.Children(),
		UpdateLink:    s.links.ForBase(LinkBase(ctx), rsvp.UpdateToken),
		EventName:     event.Name,
		EventLocation: event.Location,
		EventDate:     event.Date.Format(emailDateLayout),
		Deadline:      event.RSVPDeadline.Format(emailDeadlineLayout),
	}
	if err := s.emailService.SendRSVPConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "rsvp confirmation not sent", "rsvp_id", rsvp.ID, "err", err)
	}
}

func (s *rsvpService) List(ctx context.Context, filter domain.RSVPFilter) (*domain.RSVPList, error) {
	rsvps, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}
	return domain.NewRSVPList(rsvps), nil
}

func (s *rsvpService) Summary(ctx context.Context) (*domain.RSVPSummary, error) {
	total, err := s.repo.Count(ctx, domain.RSVPFilter{})
	if err != nil {
		return nil, fmt.Errorf("count rsvps: %w", err)
	}
	attending, err := s.repo.List(ctx, domain.AttendingFilter(true))
	if err != nil {
		return nil, fmt.Errorf("list attending rsvps: %w", err)
	}
	notAttending, err := s.repo.Count(ctx, domain.AttendingFilter(false))
	if err != nil {
		return nil, fmt.Errorf("count not attending rsvps: %w", err)
	}

	list := domain.NewRSVPList(attending)
	return &domain.RSVPSummary{
		TotalResponses: total,
		Attending:      len(list.RSVPs),
		NotAttending:   notAttending,
		TotalGuests:    list.TotalGuests,
		TotalChildren:  list.TotalChildren,
		TotalPeople:    list.TotalGuests + list.TotalChildren,
	}, nil
}

func (s *rsvpService) EventInfo(ctx context.Context) *domain.EventInfo {
	return s.gate.Info(s.now())
}

func (s *rsvpService) GetByID(ctx context.Context, id string) (*domain.RSVP, error) {
	rsvp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get rsvp: %w", err)
	}
	return rsvp, nil
}

func (s *rsvpService) GetByToken(ctx context.Context, token string) (*domain.RSVP, error) {
	rsvp, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get rsvp by token: %w", err)
	}
	return rsvp, nil
}

func (s *rsvpService) UpdateByToken(ctx context.Context, token string, patch domain.RSVPInput) (*domain.RSVP, error) {
	if err := s.gate.Check(s.now()); err != nil {
		return nil, err
	}
	existing, err := s.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, existing, patch.WithAttendingDefaults())
}

func (s *rsvpService) UpdateByID(ctx context.Context, id string, patch domain.RSVPInput) (*domain.RSVP, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, existing, patch)
}

// update validates existing merged with patch and persists the result.
func (s *rsvpService) update(ctx context.Context, existing *domain.RSVP, patch domain.RSVPInput) (*domain.RSVP, error) {
	fields, err := domain.InputFromRSVP(existing).Merge(patch).Validate()
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Apply(fields)
	updated.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, s.rejected(ctx, err)
		}
		return nil, fmt.Errorf("update rsvp: %w", err)
	}
	return &updated, nil
}

func (s *rsvpService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete rsvp: %w", err)
	}
	return nil
}
