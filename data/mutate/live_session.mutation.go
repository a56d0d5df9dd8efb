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

type LiveSessionStartOptions struct {
	Actor     structures.User
	SessionID string
	Users     []primitive.ObjectID
}

// StartLiveSession creates or reactivates a session keyed by its session id.
// The participant set is overwritten with the given list; a previous ended_at
// stamp is cleared.
func (m *Mutate) StartLiveSession(ctx context.Context, opt LiveSessionStartOptions) (structures.LiveSession, error) {
	session := structures.LiveSession{}

	if opt.SessionID == "" {
		return session, errors.ErrMissingRequiredField().SetFields(errors.Fields{
			"required": []string{"session_id"},
		})
	}

	users := opt.Users
	if len(users) == 0 {
		users = []primitive.ObjectID{opt.Actor.ID}
	}

	now := time.Now()

	err := m.mongo.Collection(structures.CollectionNameLiveSessions).FindOneAndUpdate(
		ctx,
		bson.M{"session_id": opt.SessionID},
		bson.M{
			"$set": bson.M{
				"users":      users,
				"is_active":  true,
				"started_by": opt.Actor.ID,
				"updated_at": now,
			},
			"$unset": bson.M{"ended_at": ""},
			"$setOnInsert": bson.M{
				"session_id":     opt.SessionID,
				"live_locations": bson.M{},
				"created_at":     now,
			},
		},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&session)
	if err != nil {
		zap.S().Errorw("mongo, failed to start live session",
			"error", err,
			"session_id", opt.SessionID,
		)

		return session, errors.ErrInternalServerError()
	}

	return session, nil
}

type LiveLocationPushOptions struct {
	SessionID string
	UserID    primitive.ObjectID
	Lat       float64
	Lng       float64
}

// PushLiveLocation replaces the caller's location slot in an active session.
// The slot map is keyed by user id, so the $set touches exactly one slot and
// concurrent writers for different users cannot clobber each other.
func (m *Mutate) PushLiveLocation(ctx context.Context, opt LiveLocationPushOptions) (structures.LiveSession, error) {
	session := structures.LiveSession{}

	slot := structures.LiveLocation{
		UserID:    opt.UserID,
		Lat:       opt.Lat,
		Lng:       opt.Lng,
		UpdatedAt: time.Now(),
	}

	err := m.mongo.Collection(structures.CollectionNameLiveSessions).FindOneAndUpdate(
		ctx,
		pushLiveLocationFilter(opt.SessionID, opt.UserID),
		pushLiveLocationUpdate(slot),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return session, errors.ErrNoItems().SetDetail("No active live session for this update")
		}

		zap.S().Errorw("mongo, failed to push live location",
			"error", err,
			"session_id", opt.SessionID,
		)

		return session, errors.ErrInternalServerError()
	}

	return session, nil
}

// pushLiveLocationFilter only matches an active session the user belongs to
func pushLiveLocationFilter(sessionID string, userID primitive.ObjectID) bson.M {
	return bson.M{
		"session_id": sessionID,
		"is_active":  true,
		"users":      userID,
	}
}

// pushLiveLocationUpdate replaces the user's single keyed slot
func pushLiveLocationUpdate(slot structures.LiveLocation) bson.M {
	return bson.M{"$set": bson.M{
		"live_locations." + slot.UserID.Hex(): slot,
		"updated_at":                          slot.UpdatedAt,
	}}
}

type LiveSessionEndOptions struct {
	SessionID string
}

// EndLiveSession deactivates a session and stamps its end time. Ending an
// already ended session only refreshes the stamp.
func (m *Mutate) EndLiveSession(ctx context.Context, opt LiveSessionEndOptions) (structures.LiveSession, error) {
	session := structures.LiveSession{}

	now := time.Now()

	err := m.mongo.Collection(structures.CollectionNameLiveSessions).FindOneAndUpdate(
		ctx,
		bson.M{"session_id": opt.SessionID},
		bson.M{"$set": bson.M{
			"is_active":  false,
			"ended_at":   now,
			"updated_at": now,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return session, errors.ErrNoItems().SetDetail("No such live session")
		}

		zap.S().Errorw("mongo, failed to end live session",
			"error", err,
			"session_id", opt.SessionID,
		)

		return session, errors.ErrInternalServerError()
	}

	return session, nil
}
