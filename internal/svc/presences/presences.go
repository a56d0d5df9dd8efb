package presences

import (
	"context"
	"time"

	"github.com/meetmux/api/data/events"
	"github.com/meetmux/api/data/mutate"
	"github.com/meetmux/api/data/structures"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type Instance interface {
	// Authenticate binds a channel identity: the user is marked online and a
	// presence broadcast goes out
	Authenticate(ctx context.Context, userID primitive.ObjectID) (structures.User, error)

	// PushLocation persists a position report and fans it out according to
	// the user's location visibility
	PushLocation(ctx context.Context, userID primitive.ObjectID, lat float64, lng float64) (structures.User, error)

	// Disconnect marks the user offline once in-flight persistence is done,
	// then broadcasts the change
	Disconnect(ctx context.Context, userID primitive.ObjectID) error
}

type inst struct {
	mutate *mutate.Mutate
	events events.Instance
}

type Options struct {
	Mutate *mutate.Mutate
	Events events.Instance
}

func New(opt Options) Instance {
	return &inst{
		mutate: opt.Mutate,
		events: opt.Events,
	}
}

func (p *inst) Authenticate(ctx context.Context, userID primitive.ObjectID) (structures.User, error) {
	user, err := p.mutate.SetUserPresence(ctx, userID, true)
	if err != nil {
		return user, err
	}

	p.broadcastPresence(ctx, user)

	return user, nil
}

func (p *inst) PushLocation(ctx context.Context, userID primitive.ObjectID, lat float64, lng float64) (structures.User, error) {
	user, err := p.mutate.SetUserLocation(ctx, mutate.UserLocationOptions{
		UserID: userID,
		Lat:    lat,
		Lng:    lng,
	})
	if err != nil {
		return user, err
	}

	// The visibility gate reads the snapshot the write returned, so a
	// concurrent visibility flip cannot leak this position
	topic := events.TopicGlobal
	if user.LocationVisibility == structures.LocationVisibilityPrivate {
		topic = events.TopicUser(user.ID)
	}

	err = p.events.Dispatch(ctx, events.EventTypeLocationUpdate, events.LocationUpdatePayload{
		UserID:    user.ID,
		Lat:       lat,
		Lng:       lng,
		Timestamp: time.Now().UnixMilli(),
	}, events.TopicCondition(topic))
	if err != nil {
		zap.S().Errorw("presences, failed to dispatch location update",
			"error", err,
			"user_id", user.ID,
		)
	}

	return user, nil
}

func (p *inst) Disconnect(ctx context.Context, userID primitive.ObjectID) error {
	user, err := p.mutate.SetUserPresence(ctx, userID, false)
	if err != nil {
		return err
	}

	p.broadcastPresence(ctx, user)

	return nil
}

func (p *inst) broadcastPresence(ctx context.Context, user structures.User) {
	err := p.events.Dispatch(ctx, events.EventTypePresenceUpdate, events.PresenceUpdatePayload{
		UserID:   user.ID,
		IsOnline: user.IsOnline,
		LastSeen: user.LastSeen.UnixMilli(),
	}, events.TopicCondition(events.TopicGlobal))
	if err != nil {
		zap.S().Errorw("presences, failed to dispatch presence update",
			"error", err,
			"user_id", user.ID,
		)
	}
}
