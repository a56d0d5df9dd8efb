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

func (q *Query) Connections(ctx context.Context, filter bson.M, opts ...*options.FindOptions) *QueryResult[structures.Connection] {
	qr := &QueryResult[structures.Connection]{}

	items := []structures.Connection{}

	cur, err := q.mongo.Collection(structures.CollectionNameConnections).Find(ctx, filter, opts...)
	if err != nil {
		zap.S().Errorw("mongo, failed to query connections",
			"error", err,
		)

		return qr.setError(errors.ErrInternalServerError())
	}

	if err = cur.All(ctx, &items); err != nil {
		zap.S().Errorw("mongo, failed to decode connections",
			"error", err,
		)

		return qr.setError(errors.ErrInternalServerError())
	}

	return qr.setItems(items)
}

// AcceptedConnections returns a user's accepted edges, both directions
func (q *Query) AcceptedConnections(ctx context.Context, userID primitive.ObjectID) *QueryResult[structures.Connection] {
	return q.Connections(ctx, bson.M{
		"status": structures.ConnectionStatusAccepted,
		"$or": bson.A{
			bson.M{"requester": userID},
			bson.M{"receiver": userID},
		},
	}, options.Find().SetSort(bson.M{"updated_at": -1}))
}

// PendingConnections returns the pending requests awaiting the user's answer
func (q *Query) PendingConnections(ctx context.Context, userID primitive.ObjectID) *QueryResult[structures.Connection] {
	return q.Connections(ctx, bson.M{
		"receiver": userID,
		"status":   structures.ConnectionStatusPending,
	}, options.Find().SetSort(bson.M{"created_at": -1}))
}

// ConnectionPeers returns the ids of every user the given user holds an
// accepted edge with
func (q *Query) ConnectionPeers(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error) {
	edges, err := q.AcceptedConnections(ctx, userID).Items()
	if err != nil {
		return nil, err
	}

	peers := make([]primitive.ObjectID, len(edges))
	for i, edge := range edges {
		peers[i] = edge.OtherParty(userID)
	}

	return peers, nil
}
