package mutate

import (
	"context"
	"strings"
	"time"

	"github.com/meetmux/api/data/structures"
	"github.com/seventv/common/errors"
	"github.com/seventv/common/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserCreateOptions struct {
	Name     string
	Email    string
	Password string
}

func (m *Mutate) CreateUser(ctx context.Context, opt UserCreateOptions) (structures.User, error) {
	user := structures.User{}

	if opt.Name == "" || opt.Email == "" || opt.Password == "" {
		return user, errors.ErrMissingRequiredField().SetFields(errors.Fields{
			"required": []string{"name", "email", "password"},
		})
	}

	email := strings.ToLower(strings.TrimSpace(opt.Email))

	count, err := m.mongo.Collection(structures.CollectionNameUsers).CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		zap.S().Errorw("mongo, failed to check email uniqueness",
			"error", err,
		)

		return user, errors.ErrInternalServerError()
	}

	if count > 0 {
		return user, errors.ErrInvalidRequest().SetDetail("Email is already in use")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opt.Password), bcrypt.DefaultCost)
	if err != nil {
		return user, errors.ErrInternalServerError()
	}

	now := time.Now()
	user = structures.User{
		ID:                 primitive.NewObjectID(),
		Name:               opt.Name,
		Email:              email,
		PasswordHash:       string(hash),
		Interests:          []string{},
		Status:             structures.UserStatusOffline,
		LocationVisibility: structures.LocationVisibilityEveryone,
		LastSeen:           now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if _, err = m.mongo.Collection(structures.CollectionNameUsers).InsertOne(ctx, user); err != nil {
		zap.S().Errorw("mongo, failed to insert user",
			"error", err,
		)

		return user, errors.ErrInternalServerError()
	}

	return user, nil
}

type UserStatusOptions struct {
	Actor  structures.User
	Status structures.UserStatus
}

// SetUserStatus updates the presence status. Going online or offline also
// flips the is_online flag.
func (m *Mutate) SetUserStatus(ctx context.Context, opt UserStatusOptions) (structures.User, error) {
	user := structures.User{}

	if !opt.Status.Valid() {
		return user, errors.ErrInvalidRequest().SetDetail("Unknown status %s", string(opt.Status))
	}

	err := m.mongo.Collection(structures.CollectionNameUsers).FindOneAndUpdate(
		ctx,
		bson.M{"_id": opt.Actor.ID},
		bson.M{"$set": bson.M{
			"status":     opt.Status,
			"is_online":  opt.Status == structures.UserStatusOnline,
			"last_seen":  time.Now(),
			"updated_at": time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, errors.ErrUnknownUser()
		}

		zap.S().Errorw("mongo, failed to update user status",
			"error", err,
		)

		return user, errors.ErrInternalServerError()
	}

	return user, nil
}

type UserLocationOptions struct {
	UserID primitive.ObjectID
	Lat    float64
	Lng    float64
}

// SetUserLocation persists a position report, keeping the GeoJSON point in
// sync with the plain pair. The returned document is the post-write snapshot,
// so visibility gating downstream reads the state this write produced.
func (m *Mutate) SetUserLocation(ctx context.Context, opt UserLocationOptions) (structures.User, error) {
	user := structures.User{}

	err := m.mongo.Collection(structures.CollectionNameUsers).FindOneAndUpdate(
		ctx,
		bson.M{"_id": opt.UserID},
		bson.M{"$set": bson.M{
			"location":     structures.Location{Lat: opt.Lat, Lng: opt.Lng},
			"location_geo": structures.NewGeoPoint(opt.Lat, opt.Lng),
			"last_seen":    time.Now(),
			"updated_at":   time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, errors.ErrUnknownUser()
		}

		zap.S().Errorw("mongo, failed to update user location",
			"error", err,
		)

		return user, errors.ErrInternalServerError()
	}

	return user, nil
}

// SetUserPresence marks a user online or offline
func (m *Mutate) SetUserPresence(ctx context.Context, userID primitive.ObjectID, online bool) (structures.User, error) {
	user := structures.User{}

	status := structures.UserStatusOffline
	if online {
		status = structures.UserStatusOnline
	}

	err := m.mongo.Collection(structures.CollectionNameUsers).FindOneAndUpdate(
		ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{
			"is_online":  online,
			"status":     status,
			"last_seen":  time.Now(),
			"updated_at": time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, errors.ErrUnknownUser()
		}

		zap.S().Errorw("mongo, failed to update user presence",
			"error", err,
		)

		return user, errors.ErrInternalServerError()
	}

	return user, nil
}
