package scheduling

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/reawakn/matchengine/pkg/errors"
	"github.com/reawakn/matchengine/pkg/util"
)

// Config drives the resolver and the downstream ranking/planning stages.
type Config struct {
	// HorizonDays is how far forward availability is materialized.
	HorizonDays int
	// DefaultTimezone substitutes for a missing or unresolvable zone.
	DefaultTimezone string
	// DefaultChronotype substitutes for an unset chronotype.
	DefaultChronotype Chronotype

	Rank RankConfig
	Plan PlanConfig
}

// Service runs the pairing pipeline: compatibility check, availability
// resolution, ranking, and spaced selection. All computation is
// synchronous and stateless between calls, so concurrent invocations for
// different pairs are safe.
type Service struct {
	cfg      Config
	profiles ProfileRepository
	meetings MeetingRepository
	matcher  Matcher
	now      func() time.Time
	logger   *slog.Logger
}

// NewService constructs the scheduling service.
func NewService(cfg Config, profiles ProfileRepository, meetings MeetingRepository, matcher Matcher, logger *slog.Logger) *Service {
	return &Service{
		cfg:      cfg,
		profiles: profiles,
		meetings: meetings,
		matcher:  matcher,
		now:      util.NowUTC,
		logger:   logger.With("component", "scheduling.service"),
	}
}

// WithClock replaces the time source for deterministic tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ProposeMeetings runs the full pipeline for a pair. Empty intermediate
// results short-circuit into an empty, non-error proposal: "no slots" is a
// legitimate, displayable outcome.
func (s *Service) ProposeMeetings(ctx context.Context, hostID, guestID uuid.UUID) (Proposal, error) {
	match, err := s.matcher.Compare(ctx, hostID, guestID)
	if err != nil {
		return Proposal{}, err
	}
	proposal := Proposal{
		LearnScore:   match.LearnScore,
		TeachScore:   match.TeachScore,
		MatchWorthy:  match.MatchWorthy,
		Skill:        match.Skill,
		SessionCount: match.SessionCount,
	}
	if !match.MatchWorthy {
		return proposal, nil
	}

	hostSchedule, err := s.loadSchedule(ctx, hostID)
	if err != nil {
		return Proposal{}, err
	}
	guestSchedule, err := s.loadSchedule(ctx, guestID)
	if err != nil {
		return Proposal{}, err
	}
	host, err := s.participant(ctx, hostSchedule)
	if err != nil {
		return Proposal{}, err
	}
	guest, err := s.participant(ctx, guestSchedule)
	if err != nil {
		return Proposal{}, err
	}

	slots := s.resolveCandidates(hostSchedule, guestSchedule, host.Meetings, guest.Meetings)
	if len(slots) == 0 {
		return proposal, nil
	}

	ranked := RankSlots(s.cfg.Rank, host, guest, slots, s.now())
	proposal.Slots = PlanSessions(s.cfg.Plan, ranked, match.SessionCount)
	return proposal, nil
}

// ResolveAvailability exposes the candidate-slot stage on its own: the
// intersected, materialized, conflict-filtered instants for a pair.
func (s *Service) ResolveAvailability(ctx context.Context, hostID, guestID uuid.UUID) ([]CandidateSlot, error) {
	hostSchedule, err := s.loadSchedule(ctx, hostID)
	if err != nil {
		return nil, err
	}
	guestSchedule, err := s.loadSchedule(ctx, guestID)
	if err != nil {
		return nil, err
	}
	hostMeetings, err := s.meetings.ListByUser(ctx, hostID)
	if err != nil {
		return nil, apperrors.Wrap("storage_error", "failed to load existing meetings", err)
	}
	guestMeetings, err := s.meetings.ListByUser(ctx, guestID)
	if err != nil {
		return nil, apperrors.Wrap("storage_error", "failed to load existing meetings", err)
	}
	return s.resolveCandidates(hostSchedule, guestSchedule, hostMeetings, guestMeetings), nil
}

func (s *Service) resolveCandidates(hostSchedule, guestSchedule UserSchedule, hostMeetings, guestMeetings []ExistingMeeting) []CandidateSlot {
	shared := IntersectWindows(ParseWindows(hostSchedule.Availability), ParseWindows(guestSchedule.Availability))
	if len(shared) == 0 {
		return nil
	}

	// Availability windows arrive in UTC clock-offset form, so the
	// materialization zone is UTC regardless of either user's timezone.
	slots := Materialize(shared, s.now(), s.cfg.HorizonDays, time.UTC)

	pooled := make([]ExistingMeeting, 0, len(hostMeetings)+len(guestMeetings))
	pooled = append(pooled, hostMeetings...)
	pooled = append(pooled, guestMeetings...)
	return FilterConflicts(slots, pooled)
}

// loadSchedule treats a missing profile as an empty schedule rather than a
// failure; the pairing then resolves to zero candidate slots.
func (s *Service) loadSchedule(ctx context.Context, userID uuid.UUID) (UserSchedule, error) {
	schedule, found, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return UserSchedule{}, apperrors.Wrap("storage_error", "failed to load schedule profile", err)
	}
	if !found {
		return UserSchedule{UserID: userID}, nil
	}
	return schedule, nil
}

func (s *Service) participant(ctx context.Context, schedule UserSchedule) (Participant, error) {
	meetings, err := s.meetings.ListByUser(ctx, schedule.UserID)
	if err != nil {
		return Participant{}, apperrors.Wrap("storage_error", "failed to load existing meetings", err)
	}
	return Participant{
		Location:   s.resolveLocation(schedule.Timezone),
		Chronotype: s.resolveChronotype(schedule.Chronotype),
		Meetings:   meetings,
	}, nil
}

func (s *Service) resolveLocation(name string) *time.Location {
	if name == "" {
		name = s.cfg.DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		s.logger.Warn("unresolvable timezone, falling back to default", "timezone", name)
		if loc, err = time.LoadLocation(s.cfg.DefaultTimezone); err != nil {
			return time.UTC
		}
	}
	return loc
}

func (s *Service) resolveChronotype(c Chronotype) Chronotype {
	switch c {
	case ChronotypeEarlyBird, ChronotypeNightOwl:
		return c
	}
	return s.cfg.DefaultChronotype
}

// BookSlot persists a chosen slot as a pending meeting. The engine never
// books on its own; this is the caller handing back a selection.
func (s *Service) BookSlot(ctx context.Context, hostID, guestID uuid.UUID, slot CandidateSlot, title string) (ExistingMeeting, error) {
	if !slot.EndUTC.After(slot.StartUTC) {
		return ExistingMeeting{}, apperrors.Wrap("invalid_input", "slot end must follow start", nil)
	}
	meeting := ExistingMeeting{
		ID:       uuid.New(),
		HostID:   hostID,
		GuestID:  guestID,
		Title:    title,
		StartUTC: slot.StartUTC.UTC(),
		EndUTC:   slot.EndUTC.UTC(),
	}
	if err := s.meetings.Create(ctx, meeting); err != nil {
		return ExistingMeeting{}, apperrors.Wrap("storage_error", "failed to persist meeting", err)
	}
	return meeting, nil
}
