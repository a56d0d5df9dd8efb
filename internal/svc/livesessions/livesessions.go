package livesessions

import (
	"context"

	"github.com/meetmux/api/data/events"
	"github.com/meetmux/api/data/mutate"
	"github.com/meetmux/api/data/query"
	"github.com/meetmux/api/data/structures"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type Instance interface {
	// Start creates or reactivates a session and announces it to the
	// session's topic
	Start(ctx context.Context, actor structures.User, sessionID string, users []primitive.ObjectID) (structures.LiveSession, error)

	// PushLocation replaces the actor's slot in an active session and fans
	// the update out to session subscribers
	PushLocation(ctx context.Context, sessionID string, userID primitive.ObjectID, lat float64, lng float64) (structures.LiveSession, error)

	// End deactivates a session and announces its closure
	End(ctx context.Context, sessionID string) (structures.LiveSession, error)

	// Get returns a session snapshot
	Get(ctx context.Context, sessionID string) (structures.LiveSession, error)
}

type inst struct {
	mutate *mutate.Mutate
	query  *query.Query
	events events.Instance
}

type Options struct {
	Mutate *mutate.Mutate
	Query  *query.Query
	Events events.Instance
}

func New(opt Options) Instance {
	return &inst{
		mutate: opt.Mutate,
		query:  opt.Query,
		events: opt.Events,
	}
}

func (s *inst) Start(ctx context.Context, actor structures.User, sessionID string, users []primitive.ObjectID) (structures.LiveSession, error) {
	session, err := s.mutate.StartLiveSession(ctx, mutate.LiveSessionStartOptions{
		Actor:     actor,
		SessionID: sessionID,
		Users:     users,
	})
	if err != nil {
		return session, err
	}

	s.dispatch(ctx, events.EventTypeLiveStarted, events.LiveStartedPayload{
		SessionID: session.SessionID,
		StartedBy: session.StartedBy,
		Users:     session.Users,
	}, session.SessionID)

	return session, nil
}

func (s *inst) PushLocation(ctx context.Context, sessionID string, userID primitive.ObjectID, lat float64, lng float64) (structures.LiveSession, error) {
	session, err := s.mutate.PushLiveLocation(ctx, mutate.LiveLocationPushOptions{
		SessionID: sessionID,
		UserID:    userID,
		Lat:       lat,
		Lng:       lng,
	})
	if err != nil {
		return session, err
	}

	slot := session.LiveLocations[userID.Hex()]

	s.dispatch(ctx, events.EventTypeLiveLocation, events.LiveLocationPayload{
		SessionID: session.SessionID,
		UserID:    userID,
		Lat:       slot.Lat,
		Lng:       slot.Lng,
		UpdatedAt: slot.UpdatedAt,
	}, session.SessionID)

	return session, nil
}

func (s *inst) End(ctx context.Context, sessionID string) (structures.LiveSession, error) {
	session, err := s.mutate.EndLiveSession(ctx, mutate.LiveSessionEndOptions{
		SessionID: sessionID,
	})
	if err != nil {
		return session, err
	}

	payload := events.LiveEndedPayload{SessionID: session.SessionID}
	if session.EndedAt != nil {
		payload.EndedAt = *session.EndedAt
	}

	s.dispatch(ctx, events.EventTypeLiveEnded, payload, session.SessionID)

	return session, nil
}

func (s *inst) Get(ctx context.Context, sessionID string) (structures.LiveSession, error) {
	return s.query.LiveSessionByID(ctx, sessionID)
}

func (s *inst) dispatch(ctx context.Context, t events.EventType, body any, sessionID string) {
	err := s.events.Dispatch(ctx, t, body, events.TopicCondition(events.TopicLive(sessionID)))
	if err != nil {
		zap.S().Errorw("livesessions, failed to dispatch event",
			"error", err,
			"type", t,
			"session_id", sessionID,
		)
	}
}
