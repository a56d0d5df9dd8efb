package query

import (
	"context"
	"time"

	"github.com/meetmux/api/data/structures"
	"github.com/seventv/common/errors"
	"github.com/seventv/common/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const EVENTS_QUERY_LIMIT = 200

type SearchEventsOptions struct {
	Actor *structures.User

	ActivityType string
	DateBucket   string
	TimeBucket   string

	// CreatorScope narrows results to events authored by the actor's
	// accepted peers when set to "connections"
	CreatorScope string

	Center       *structures.Location
	RadiusMeters float64

	// Now anchors date bucket resolution
	Now time.Time
}

const CreatorScopeConnections = "connections"

// SearchEvents runs the discovery pipeline. Results are nearest-first when a
// geo window is given, soonest-first otherwise.
func (q *Query) SearchEvents(ctx context.Context, opt SearchEventsOptions) ([]structures.Event, error) {
	now := opt.Now
	if now.IsZero() {
		now = time.Now()
	}

	match := bson.M{
		"visibility": structures.EventVisibilityPublic,
	}

	if opt.ActivityType != "" {
		match["activity_type"] = opt.ActivityType
	}

	if start, end, ok := DateBucketRange(opt.DateBucket, now); ok {
		match["starts_at"] = bson.M{
			"$gte": start,
			"$lt":  end,
		}
	}

	if startHour, endHour, ok := TimeOfDayHours(opt.TimeBucket); ok {
		match["$expr"] = bson.M{"$and": bson.A{
			bson.M{"$gte": bson.A{bson.M{"$hour": "$starts_at"}, startHour}},
			bson.M{"$lt": bson.A{bson.M{"$hour": "$starts_at"}, endHour}},
		}}
	}

	if opt.CreatorScope == CreatorScopeConnections {
		if opt.Actor == nil {
			return nil, errors.ErrUnauthorized().SetDetail("Connection-scoped discovery requires authentication")
		}

		peers, err := q.ConnectionPeers(ctx, opt.Actor.ID)
		if err != nil {
			return nil, err
		}

		// a user with no accepted peers gets an empty result, not an error
		match["created_by"] = bson.M{"$in": peers}
	}

	geo := opt.Center != nil && opt.RadiusMeters > 0

	pipeline := mongo.Pipeline{}

	if geo {
		pipeline = append(pipeline, bson.D{{Key: "$geoNear", Value: bson.M{
			"near": bson.M{
				"type":        "Point",
				"coordinates": bson.A{opt.Center.Lng, opt.Center.Lat},
			},
			"distanceField": "dist",
			"maxDistance":   opt.RadiusMeters,
			"spherical":     true,
			"key":           "location_geo",
		}}})
	}

	pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})

	if geo {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.M{"dist": 1}}})
	} else {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.M{"starts_at": 1}}})
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$limit", Value: EVENTS_QUERY_LIMIT}},
		bson.D{{Key: "$lookup", Value: mongo.Lookup{
			From:         structures.CollectionNameUsers,
			LocalField:   "created_by",
			ForeignField: "_id",
			As:           "creator",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$creator",
			"preserveNullAndEmptyArrays": true,
		}}},
	)

	cur, err := q.mongo.Collection(structures.CollectionNameEvents).Aggregate(ctx, pipeline)
	if err != nil {
		zap.S().Errorw("mongo, failed to run event discovery pipeline",
			"error", err,
		)

		return nil, errors.ErrInternalServerError()
	}

	items := []structures.Event{}
	if err = cur.All(ctx, &items); err != nil {
		zap.S().Errorw("mongo, failed to decode discovered events",
			"error", err,
		)

		return nil, errors.ErrInternalServerError()
	}

	return items, nil
}
