package query

import (
	"context"

	"github.com/meetmux/api/data/structures"
	"github.com/seventv/common/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func (q *Query) Events(ctx context.Context, filter bson.M, opts ...*options.FindOptions) *QueryResult[structures.Event] {
	qr := &QueryResult[structures.Event]{}

	items := []structures.Event{}

	cur, err := q.mongo.Collection(structures.CollectionNameEvents).Find(ctx, filter, opts...)
	if err != nil {
		zap.S().Errorw("mongo, failed to query events",
			"error", err,
		)

		return qr.setError(errors.ErrInternalServerError())
	}

	if err = cur.All(ctx, &items); err != nil {
		zap.S().Errorw("mongo, failed to decode events",
			"error", err,
		)

		return qr.setError(errors.ErrInternalServerError())
	}

	return qr.setItems(items)
}

// UserEvents returns the events a user created and the events they joined,
// both soonest-first
func (q *Query) UserEvents(ctx context.Context, userID primitive.ObjectID) (created []structures.Event, joined []structures.Event, err error) {
	sort := options.Find().SetSort(bson.M{"starts_at": 1})

	created, err = q.Events(ctx, bson.M{"created_by": userID}, sort).Items()
	if err != nil {
		return nil, nil, err
	}

	joined, err = q.Events(ctx, bson.M{
		"participants": userID,
		"created_by":   bson.M{"$ne": userID},
	}, sort).Items()
	if err != nil {
		return nil, nil, err
	}

	return created, joined, nil
}
