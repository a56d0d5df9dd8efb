package structures

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`

	Name         string `json:"name" bson:"name"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"-" bson:"password"`
	AvatarURL    string `json:"avatar_url" bson:"avatar_url,omitempty"`
	Bio          string `json:"bio" bson:"bio,omitempty"`

	Interests []string `json:"interests" bson:"interests,omitempty"`

	Location    *Location `json:"location,omitempty" bson:"location,omitempty"`
	LocationGeo *GeoPoint `json:"-" bson:"location_geo,omitempty"`

	Status             UserStatus         `json:"status" bson:"status"`
	LocationVisibility LocationVisibility `json:"location_visibility" bson:"location_visibility"`
	IsOnline           bool               `json:"is_online" bson:"is_online"`
	LastSeen           time.Time          `json:"last_seen" bson:"last_seen"`

	TokenVersion float64   `json:"-" bson:"token_version"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

type UserStatus string

const (
	UserStatusOnline  UserStatus = "online"
	UserStatusOffline UserStatus = "offline"
	UserStatusBusy    UserStatus = "busy"
	UserStatusAway    UserStatus = "away"
)

func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusOnline, UserStatusOffline, UserStatusBusy, UserStatusAway:
		return true
	}

	return false
}

type LocationVisibility string

const (
	LocationVisibilityEveryone    LocationVisibility = "everyone"
	LocationVisibilityConnections LocationVisibility = "connections"
	LocationVisibilityPrivate     LocationVisibility = "private"
)

// DeletedUser is a substitute returned in place of users that no longer exist
var DeletedUser = User{
	ID:   primitive.NilObjectID,
	Name: "*DeletedUser",
}
