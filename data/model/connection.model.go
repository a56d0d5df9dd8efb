package model

import (
	"time"

	"github.com/meetmux/api/data/structures"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ConnectionModel struct {
	ID        primitive.ObjectID `json:"id"`
	Requester primitive.ObjectID `json:"requester"`
	Receiver  primitive.ObjectID `json:"receiver"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`

	// RequesterUser / ReceiverUser are filled when the edge is listed with
	// its user summaries
	RequesterUser *UserPartialModel `json:"requester_user,omitempty"`
	ReceiverUser  *UserPartialModel `json:"receiver_user,omitempty"`
}

func (x *modelizer) Connection(v structures.Connection) ConnectionModel {
	return ConnectionModel{
		ID:        v.ID,
		Requester: v.Requester,
		Receiver:  v.Receiver,
		Status:    string(v.Status),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func (m ConnectionModel) WithUsers(requester, receiver UserPartialModel) ConnectionModel {
	m.RequesterUser = &requester
	m.ReceiverUser = &receiver

	return m
}
