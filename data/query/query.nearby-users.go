package query

import (
	"context"
	"fmt"
	"time"

	"github.com/meetmux/api/data/structures"
	"github.com/seventv/common/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const NEARBY_USERS_LIMIT = 100

type NearbyUsersOptions struct {
	Actor structures.User

	Lat          float64
	Lng          float64
	RadiusMeters float64

	// InterestsOnly keeps only users sharing at least one of the actor's
	// interests
	InterestsOnly bool
}

// NearbyUsers finds users around a point, excluding the actor and anyone with
// a private location. Results are memoized briefly since clients poll this
// while panning a map.
func (q *Query) NearbyUsers(ctx context.Context, opt NearbyUsersOptions) ([]structures.User, error) {
	tag := fmt.Sprintf(
		"nearby-users:%s:%.4f:%.4f:%.0f:%t",
		opt.Actor.ID.Hex(), opt.Lat, opt.Lng, opt.RadiusMeters, opt.InterestsOnly,
	)

	mtx := q.mtx(tag)
	mtx.Lock()
	defer mtx.Unlock()

	k := q.key(tag)

	items := []structures.User{}
	if q.getFromMemCache(ctx, k, &items) {
		return items, nil
	}

	filter := bson.M{
		"_id": bson.M{"$ne": opt.Actor.ID},
		"location_visibility": bson.M{
			"$ne": structures.LocationVisibilityPrivate,
		},
		"location_geo": bson.M{
			"$near": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": bson.A{opt.Lng, opt.Lat},
				},
				"$maxDistance": opt.RadiusMeters,
			},
		},
	}

	if opt.InterestsOnly && len(opt.Actor.Interests) > 0 {
		filter["interests"] = bson.M{"$in": opt.Actor.Interests}
	}

	cur, err := q.mongo.Collection(structures.CollectionNameUsers).Find(
		ctx, filter,
		options.Find().SetLimit(NEARBY_USERS_LIMIT),
	)
	if err != nil {
		zap.S().Errorw("mongo, failed to query nearby users",
			"error", err,
		)

		return nil, errors.ErrInternalServerError()
	}

	if err = cur.All(ctx, &items); err != nil {
		zap.S().Errorw("mongo, failed to decode nearby users",
			"error", err,
		)

		return nil, errors.ErrInternalServerError()
	}

	if err = q.setInMemCache(ctx, k, items, time.Second*10); err != nil {
		zap.S().Warnw("failed to cache nearby users",
			"error", err,
		)
	}

	return items, nil
}
