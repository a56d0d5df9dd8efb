package query

import (
	"context"

	"github.com/meetmux/api/data/structures"
	"github.com/seventv/common/errors"
	"github.com/seventv/common/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ActiveLiveSessions returns the active sessions a user belongs to
func (q *Query) ActiveLiveSessions(ctx context.Context, userID primitive.ObjectID) ([]structures.LiveSession, error) {
	cur, err := q.mongo.Collection(structures.CollectionNameLiveSessions).Find(ctx, bson.M{
		"users":     userID,
		"is_active": true,
	})
	if err != nil {
		zap.S().Errorw("mongo, failed to query live sessions",
			"error", err,
		)

		return nil, errors.ErrInternalServerError()
	}

	items := []structures.LiveSession{}
	if err = cur.All(ctx, &items); err != nil {
		zap.S().Errorw("mongo, failed to decode live sessions",
			"error", err,
		)

		return nil, errors.ErrInternalServerError()
	}

	return items, nil
}

// LiveSessionByID fetches a live session snapshot by its client-facing
// session id
func (q *Query) LiveSessionByID(ctx context.Context, sessionID string) (structures.LiveSession, error) {
	session := structures.LiveSession{}

	err := q.mongo.Collection(structures.CollectionNameLiveSessions).FindOne(ctx, bson.M{
		"session_id": sessionID,
	}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return session, errors.ErrNoItems().SetDetail("No such live session")
		}

		zap.S().Errorw("mongo, failed to fetch live session",
			"error", err,
			"session_id", sessionID,
		)

		return session, errors.ErrInternalServerError()
	}

	return session, nil
}
