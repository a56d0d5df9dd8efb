package structures

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Connection is a single edge between two users. At most one edge exists per
// unordered pair; superseding a terminal edge replaces the document outright.
type Connection struct {
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`

	Requester primitive.ObjectID `json:"requester" bson:"requester"`
	Receiver  primitive.ObjectID `json:"receiver" bson:"receiver"`
	Status    ConnectionStatus   `json:"status" bson:"status"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// OtherParty returns the peer on the opposite side of the edge
func (c Connection) OtherParty(userID primitive.ObjectID) primitive.ObjectID {
	if c.Requester == userID {
		return c.Receiver
	}

	return c.Requester
}

type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	ConnectionStatusRejected ConnectionStatus = "rejected"
)

func (s ConnectionStatus) Terminal() bool {
	return s == ConnectionStatusAccepted || s == ConnectionStatusRejected
}
