package mutate

import (
	"context"
	"time"

	"github.com/meetmux/api/data/structures"
	"github.com/seventv/common/errors"
	"github.com/seventv/common/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type EventCreateOptions struct {
	Actor structures.User

	Name         string
	Description  string
	ActivityType string
	Location     *structures.Location
	StartsAt     time.Time
	EndsAt       time.Time
	Capacity     int32
	Visibility   structures.EventVisibility
}

func (m *Mutate) CreateEvent(ctx context.Context, opt EventCreateOptions) (structures.Event, error) {
	event := structures.Event{}

	if opt.Name == "" || opt.ActivityType == "" || opt.StartsAt.IsZero() || opt.EndsAt.IsZero() {
		return event, errors.ErrMissingRequiredField().SetFields(errors.Fields{
			"required": []string{"name", "activity_type", "starts_at", "ends_at"},
		})
	}

	if !opt.StartsAt.Before(opt.EndsAt) {
		return event, errors.ErrInvalidRequest().SetDetail("The event must start before it ends")
	}

	capacity := opt.Capacity
	if capacity <= 0 {
		capacity = structures.EventDefaultCapacity
	}

	visibility := opt.Visibility
	if visibility == "" {
		visibility = structures.EventVisibilityPublic
	}

	now := time.Now()
	event = structures.Event{
		ID:           primitive.NewObjectID(),
		Name:         opt.Name,
		Description:  opt.Description,
		ActivityType: opt.ActivityType,
		StartsAt:     opt.StartsAt,
		EndsAt:       opt.EndsAt,
		Visibility:   visibility,
		Capacity:     capacity,
		Participants: []primitive.ObjectID{opt.Actor.ID},
		CreatedBy:    opt.Actor.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if opt.Location != nil {
		event.Location = opt.Location
		geo := structures.NewGeoPoint(opt.Location.Lat, opt.Location.Lng)
		event.LocationGeo = &geo
	}

	if _, err := m.mongo.Collection(structures.CollectionNameEvents).InsertOne(ctx, event); err != nil {
		zap.S().Errorw("mongo, failed to insert event",
			"error", err,
		)

		return event, errors.ErrInternalServerError()
	}

	return event, nil
}

type EventJoinOptions struct {
	Actor   structures.User
	EventID primitive.ObjectID
}

// JoinEvent adds the actor to the participant set. The update filter demands
// a free seat and no prior membership, so two racing joins cannot overshoot
// the capacity.
func (m *Mutate) JoinEvent(ctx context.Context, opt EventJoinOptions) (structures.Event, error) {
	event := structures.Event{}

	err := m.mongo.Collection(structures.CollectionNameEvents).FindOneAndUpdate(
		ctx,
		joinEventFilter(opt.EventID, opt.Actor.ID),
		joinEventUpdate(opt.Actor.ID, time.Now()),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&event)

	if err == nil {
		return event, nil
	}

	if err != mongo.ErrNoDocuments {
		zap.S().Errorw("mongo, failed to join event",
			"error", err,
		)

		return event, errors.ErrInternalServerError()
	}

	// the guarded update matched nothing; find out why
	existing := structures.Event{}

	err = m.mongo.Collection(structures.CollectionNameEvents).FindOne(ctx, bson.M{"_id": opt.EventID}).Decode(&existing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return event, errors.ErrNoItems().SetDetail("No such event")
		}

		zap.S().Errorw("mongo, failed to fetch event",
			"error", err,
		)

		return event, errors.ErrInternalServerError()
	}

	if existing.IsParticipant(opt.Actor.ID) {
		return event, errors.ErrInvalidRequest().SetDetail("You have already joined this event")
	}

	return event, errors.ErrNoSpaceAvailable().SetDetail("This event is at capacity")
}

// joinEventFilter matches the event only while the actor is absent and a seat
// remains, so the guarded update can never overshoot the capacity
func joinEventFilter(eventID primitive.ObjectID, userID primitive.ObjectID) bson.M {
	return bson.M{
		"_id":          eventID,
		"participants": bson.M{"$ne": userID},
		"$expr": bson.M{
			"$lt": bson.A{bson.M{"$size": "$participants"}, "$capacity"},
		},
	}
}

func joinEventUpdate(userID primitive.ObjectID, now time.Time) bson.M {
	return bson.M{
		"$addToSet": bson.M{"participants": userID},
		"$set":      bson.M{"updated_at": now},
	}
}

type EventLeaveOptions struct {
	Actor   structures.User
	EventID primitive.ObjectID
}

// LeaveEvent removes the actor from the participant set. Leaving an event the
// actor never joined is a no-op.
func (m *Mutate) LeaveEvent(ctx context.Context, opt EventLeaveOptions) (structures.Event, error) {
	event := structures.Event{}

	err := m.mongo.Collection(structures.CollectionNameEvents).FindOneAndUpdate(
		ctx,
		bson.M{"_id": opt.EventID},
		bson.M{
			"$pull": bson.M{"participants": opt.Actor.ID},
			"$set":  bson.M{"updated_at": time.Now()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return event, errors.ErrNoItems().SetDetail("No such event")
		}

		zap.S().Errorw("mongo, failed to leave event",
			"error", err,
		)

		return event, errors.ErrInternalServerError()
	}

	return event, nil
}
