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

type ConnectionRequestOptions struct {
	Actor      structures.User
	ReceiverID primitive.ObjectID
}

// SendConnectionRequest creates a pending edge toward the receiver. A
// terminal edge between the pair is superseded: the old document is removed
// and a fresh pending one takes its place.
func (m *Mutate) SendConnectionRequest(ctx context.Context, opt ConnectionRequestOptions) (structures.Connection, error) {
	edge := structures.Connection{}

	if opt.Actor.ID == opt.ReceiverID {
		return edge, errors.ErrDontBeSilly().SetDetail("You cannot connect with yourself")
	}

	count, err := m.mongo.Collection(structures.CollectionNameUsers).CountDocuments(ctx, bson.M{"_id": opt.ReceiverID})
	if err != nil {
		zap.S().Errorw("mongo, failed to check connection receiver",
			"error", err,
		)

		return edge, errors.ErrInternalServerError()
	}

	if count == 0 {
		return edge, errors.ErrUnknownUser()
	}

	existing := structures.Connection{}

	err = m.mongo.Collection(structures.CollectionNameConnections).FindOne(ctx, connectionPairFilter(opt.Actor.ID, opt.ReceiverID)).Decode(&existing)
	if err != nil && err != mongo.ErrNoDocuments {
		zap.S().Errorw("mongo, failed to check existing connection",
			"error", err,
		)

		return edge, errors.ErrInternalServerError()
	}

	if err == nil {
		if apiErr := duplicateConnectionError(existing); apiErr != nil {
			return edge, apiErr
		}

		// terminal rejection, supersede it
		if _, err = m.mongo.Collection(structures.CollectionNameConnections).DeleteOne(ctx, bson.M{"_id": existing.ID}); err != nil {
			zap.S().Errorw("mongo, failed to supersede connection",
				"error", err,
			)

			return edge, errors.ErrInternalServerError()
		}
	}

	now := time.Now()
	edge = structures.Connection{
		ID:        primitive.NewObjectID(),
		Requester: opt.Actor.ID,
		Receiver:  opt.ReceiverID,
		Status:    structures.ConnectionStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err = m.mongo.Collection(structures.CollectionNameConnections).InsertOne(ctx, edge); err != nil {
		zap.S().Errorw("mongo, failed to insert connection",
			"error", err,
		)

		return edge, errors.ErrInternalServerError()
	}

	return edge, nil
}

// connectionPairFilter matches the edge between two users in either direction
func connectionPairFilter(a primitive.ObjectID, b primitive.ObjectID) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"requester": a, "receiver": b},
		bson.M{"requester": b, "receiver": a},
	}}
}

// duplicateConnectionError maps an existing edge between a pair to the
// conflict reported to the requester. A rejected edge returns nil: it is
// terminal and gets superseded.
func duplicateConnectionError(existing structures.Connection) errors.APIError {
	switch existing.Status {
	case structures.ConnectionStatusPending:
		return errors.ErrInvalidRequest().SetDetail("A request between you is already pending")
	case structures.ConnectionStatusAccepted:
		return errors.ErrInvalidRequest().SetDetail("You are already connected")
	default:
		return nil
	}
}

type ConnectionRespondOptions struct {
	Actor     structures.User
	RequestID primitive.ObjectID
	Accept    bool
}

// RespondConnectionRequest moves a pending edge into a terminal state. Only
// the receiver may answer, and only while the edge is still pending; the
// filter enforces both in a single document update.
func (m *Mutate) RespondConnectionRequest(ctx context.Context, opt ConnectionRespondOptions) (structures.Connection, error) {
	edge := structures.Connection{}

	status := structures.ConnectionStatusRejected
	if opt.Accept {
		status = structures.ConnectionStatusAccepted
	}

	err := m.mongo.Collection(structures.CollectionNameConnections).FindOneAndUpdate(
		ctx,
		bson.M{
			"_id":      opt.RequestID,
			"receiver": opt.Actor.ID,
			"status":   structures.ConnectionStatusPending,
		},
		bson.M{"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&edge)

	if err == nil {
		return edge, nil
	}

	if err != mongo.ErrNoDocuments {
		zap.S().Errorw("mongo, failed to respond to connection",
			"error", err,
		)

		return edge, errors.ErrInternalServerError()
	}

	// distinguish a missing edge from one the actor may not answer
	existing := structures.Connection{}

	err = m.mongo.Collection(structures.CollectionNameConnections).FindOne(ctx, bson.M{"_id": opt.RequestID}).Decode(&existing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return edge, errors.ErrNoItems().SetDetail("No such connection request")
		}

		zap.S().Errorw("mongo, failed to fetch connection",
			"error", err,
		)

		return edge, errors.ErrInternalServerError()
	}

	if existing.Receiver != opt.Actor.ID {
		return edge, errors.ErrInsufficientPrivilege().SetDetail("Only the receiver may answer this request")
	}

	return edge, errors.ErrInvalidRequest().SetDetail("This request was already answered")
}
