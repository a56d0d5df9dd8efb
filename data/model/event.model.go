package model

import (
	"time"

	"github.com/meetmux/api/data/structures"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventModel struct {
	ID           primitive.ObjectID   `json:"id"`
	Name         string               `json:"name"`
	Description  string               `json:"description,omitempty"`
	ActivityType string               `json:"activity_type"`
	Location     *LocationModel       `json:"location,omitempty"`
	StartsAt     time.Time            `json:"starts_at"`
	EndsAt       time.Time            `json:"ends_at"`
	Visibility   string               `json:"visibility"`
	Capacity     int32                `json:"capacity"`
	Participants []primitive.ObjectID `json:"participants"`
	CreatedBy    primitive.ObjectID   `json:"created_by"`
	Creator      *UserPartialModel    `json:"creator,omitempty"`
	Distance     float64              `json:"distance,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

func (x *modelizer) Event(v structures.Event) EventModel {
	participants := v.Participants
	if participants == nil {
		participants = []primitive.ObjectID{}
	}

	m := EventModel{
		ID:           v.ID,
		Name:         v.Name,
		Description:  v.Description,
		ActivityType: v.ActivityType,
		StartsAt:     v.StartsAt,
		EndsAt:       v.EndsAt,
		Visibility:   string(v.Visibility),
		Capacity:     v.Capacity,
		Participants: participants,
		CreatedBy:    v.CreatedBy,
		Distance:     v.Distance,
		CreatedAt:    v.CreatedAt,
	}

	if v.Location != nil {
		m.Location = &LocationModel{Lat: v.Location.Lat, Lng: v.Location.Lng}
	}

	if v.Creator != nil {
		creator := x.UserPartial(*v.Creator)
		m.Creator = &creator
	}

	return m
}
