package services

import (
	"context"
	"slices"
	"time"

	"github.com/dmitrijs2005/eventdesk/internal/common"
	"github.com/dmitrijs2005/eventdesk/internal/logging"
	"github.com/dmitrijs2005/eventdesk/internal/models"
	"github.com/dmitrijs2005/eventdesk/internal/store"
	"github.com/google/uuid"
)

// EventService is the event collection of one session's user.
//
// No two events of the user overlap: Create and any Update that moves an
// event fail with common.ErrScheduleConflict instead. Mutations fail with
// common.ErrNotAuthenticated when there is no user; reads return empty
// results. After each successful mutation the whole collection is written
// back; a failed write is logged and the change stays in memory.
type EventService interface {
	List() []models.Event
	Create(ctx context.Context, draft models.EventDraft) (*models.Event, error)
	Update(ctx context.Context, id string, patch models.EventPatch) (*models.Event, error)
	Delete(ctx context.Context, id string) error
	GetByID(id string) *models.Event
	CheckOverlap(draft models.EventDraft, excludeID string) bool
}

type eventService struct {
	store  *store.Store
	user   *models.User
	events []models.Event
	logger logging.Logger

	now   func() time.Time
	newID func() string
}

// NewEventService loads the collection of user. A nil user gives an
// unauthenticated service; switching users means building a new service.
func NewEventService(ctx context.Context, st *store.Store, user *models.User, logger logging.Logger) EventService {
	s := &eventService{
		store:  st,
		user:   clone(user),
		events: []models.Event{},
		logger: logger.With("service", "events"),
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
	if user != nil {
		s.events = st.LoadUserEvents(ctx, user.ID)
		s.logger = s.logger.With("user_id", user.ID)
	}
	return s
}

func (s *eventService) List() []models.Event {
	return slices.Clone(s.events)
}

func (s *eventService) GetByID(id string) *models.Event {
	if i := s.indexOf(id); i >= 0 {
		e := s.events[i]
		return &e
	}
	return nil
}

// CheckOverlap reports whether the draft's interval overlaps any event
// other than excludeID.
func (s *eventService) CheckOverlap(draft models.EventDraft, excludeID string) bool {
	if s.user == nil {
		return false
	}
	return s.conflicts(draft.Start, draft.End, excludeID)
}

func (s *eventService) conflicts(start, end time.Time, excludeID string) bool {
	return slices.ContainsFunc(s.events, func(e models.Event) bool {
		return e.ID != excludeID && e.Overlaps(start, end)
	})
}

func (s *eventService) Create(ctx context.Context, draft models.EventDraft) (*models.Event, error) {
	if s.user == nil {
		return nil, common.ErrNotAuthenticated
	}
	if s.conflicts(draft.Start, draft.End, "") {
		return nil, common.ErrScheduleConflict
	}

	now := s.now()
	e := models.Event{
		ID:          s.newID(),
		Title:       draft.Title,
		Description: draft.Description,
		Type:        draft.Type,
		Location:    draft.Location,
		EventLink:   draft.EventLink,
		Start:       draft.Start,
		End:         draft.End,
		Category:    draft.Category,
		Organizer:   s.user.Name,
		OrganizerID: s.user.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.events = append(s.events, e)
	s.persist(ctx)
	s.logger.Debug(ctx, "event created", "event_id", e.ID)
	return &e, nil
}

func (s *eventService) Update(ctx context.Context, id string, patch models.EventPatch) (*models.Event, error) {
	if s.user == nil {
		return nil, common.ErrNotAuthenticated
	}
	i := s.indexOf(id)
	if i < 0 {
		return nil, common.ErrNotFound
	}

	candidate := s.events[i].Merge(patch)
	if patch.ChangesSchedule() && s.conflicts(candidate.Start, candidate.End, id) {
		return nil, common.ErrScheduleConflict
	}

	candidate.UpdatedAt = s.now()
	s.events[i] = candidate
	s.persist(ctx)
	s.logger.Debug(ctx, "event updated", "event_id", id)
	return &candidate, nil
}

// Delete removes the event. Unknown ids are ignored.
func (s *eventService) Delete(ctx context.Context, id string) error {
	if s.user == nil {
		return common.ErrNotAuthenticated
	}
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	s.events = slices.Delete(s.events, i, i+1)
	s.persist(ctx)
	s.logger.Debug(ctx, "event deleted", "event_id", id)
	return nil
}

func (s *eventService) indexOf(id string) int {
	return slices.IndexFunc(s.events, func(e models.Event) bool { return e.ID == id })
}

func (s *eventService) persist(ctx context.Context) {
	if err := s.store.SaveUserEvents(ctx, s.user.ID, s.events); err != nil {
		s.logger.Warn(ctx, "events not persisted", "err", err)
	}
}
