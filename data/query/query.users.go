package query

import (
	"context"

	"github.com/meetmux/api/data/structures"
	"github.com/seventv/common/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func (q *Query) Users(ctx context.Context, filter bson.M) *QueryResult[structures.User] {
	qr := &QueryResult[structures.User]{}

	items := []structures.User{}

	cur, err := q.mongo.Collection(structures.CollectionNameUsers).Find(ctx, filter)
	if err != nil {
		zap.S().Errorw("mongo, failed to query users",
			"error", err,
		)

		return qr.setError(errors.ErrInternalServerError())
	}

	if err = cur.All(ctx, &items); err != nil {
		zap.S().Errorw("mongo, failed to decode users",
			"error", err,
		)

		return qr.setError(errors.ErrInternalServerError())
	}

	return qr.setItems(items)
}
