package structures

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LiveSession is a short-lived location sharing room. Sessions are addressed
// by their client-supplied SessionID rather than the document id.
type LiveSession struct {
	ID primitive.ObjectID `json:"-" bson:"_id,omitempty"`

	SessionID string               `json:"session_id" bson:"session_id"`
	Users     []primitive.ObjectID `json:"users" bson:"users"`

	// LiveLocations holds one slot per sharing user, keyed by the user's hex
	// id so a slot write replaces that slot and nothing else
	LiveLocations map[string]LiveLocation `json:"live_locations" bson:"live_locations"`

	IsActive  bool               `json:"is_active" bson:"is_active"`
	StartedBy primitive.ObjectID `json:"started_by" bson:"started_by"`
	EndedAt   *time.Time         `json:"ended_at,omitempty" bson:"ended_at,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

func (s LiveSession) HasUser(userID primitive.ObjectID) bool {
	for _, u := range s.Users {
		if u == userID {
			return true
		}
	}

	return false
}

type LiveLocation struct {
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id"`
	Lat       float64            `json:"lat" bson:"lat"`
	Lng       float64            `json:"lng" bson:"lng"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
