package model

import (
	"time"

	"github.com/meetmux/api/data/structures"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LiveSessionModel struct {
	SessionID     string                       `json:"session_id"`
	Users         []primitive.ObjectID         `json:"users"`
	LiveLocations map[string]LiveLocationModel `json:"live_locations"`
	IsActive      bool                         `json:"is_active"`
	StartedBy     primitive.ObjectID           `json:"started_by"`
	EndedAt       *time.Time                   `json:"ended_at,omitempty"`
	CreatedAt     time.Time                    `json:"created_at"`
	UpdatedAt     time.Time                    `json:"updated_at"`
}

type LiveLocationModel struct {
	UserID    primitive.ObjectID `json:"user_id"`
	Lat       float64            `json:"lat"`
	Lng       float64            `json:"lng"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func (x *modelizer) LiveSession(v structures.LiveSession) LiveSessionModel {
	users := v.Users
	if users == nil {
		users = []primitive.ObjectID{}
	}

	locations := make(map[string]LiveLocationModel, len(v.LiveLocations))
	for k, l := range v.LiveLocations {
		locations[k] = LiveLocationModel{
			UserID:    l.UserID,
			Lat:       l.Lat,
			Lng:       l.Lng,
			UpdatedAt: l.UpdatedAt,
		}
	}

	return LiveSessionModel{
		SessionID:     v.SessionID,
		Users:         users,
		LiveLocations: locations,
		IsActive:      v.IsActive,
		StartedBy:     v.StartedBy,
		EndedAt:       v.EndedAt,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}
