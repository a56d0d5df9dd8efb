package structures

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Event struct {
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`

	Name         string `json:"name" bson:"name"`
	Description  string `json:"description" bson:"description,omitempty"`
	ActivityType string `json:"activity_type" bson:"activity_type"`

	Location    *Location `json:"location,omitempty" bson:"location,omitempty"`
	LocationGeo *GeoPoint `json:"-" bson:"location_geo,omitempty"`

	StartsAt time.Time `json:"starts_at" bson:"starts_at"`
	EndsAt   time.Time `json:"ends_at" bson:"ends_at"`

	Visibility   EventVisibility      `json:"visibility" bson:"visibility"`
	Capacity     int32                `json:"capacity" bson:"capacity"`
	Participants []primitive.ObjectID `json:"participants" bson:"participants"`

	CreatedBy primitive.ObjectID `json:"created_by" bson:"created_by"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`

	// Distance is set by geo-filtered discovery queries (meters from the
	// requested center). Never persisted.
	Distance float64 `json:"-" bson:"dist,omitempty"`

	// Creator is the denormalized author document, set by lookup stages
	Creator *User `json:"-" bson:"creator,omitempty"`
}

func (e Event) IsParticipant(userID primitive.ObjectID) bool {
	for _, p := range e.Participants {
		if p == userID {
			return true
		}
	}

	return false
}

func (e Event) IsFull() bool {
	return e.Capacity > 0 && int32(len(e.Participants)) >= e.Capacity
}

type EventVisibility string

const (
	EventVisibilityPublic  EventVisibility = "public"
	EventVisibilityPrivate EventVisibility = "private"
)

const EventDefaultCapacity int32 = 50
