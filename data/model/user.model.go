package model

import (
	"time"

	"github.com/meetmux/api/data/structures"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserModel struct {
	ID                 primitive.ObjectID   `json:"id"`
	Name               string               `json:"name"`
	AvatarURL          string               `json:"avatar_url,omitempty"`
	Bio                string               `json:"bio,omitempty"`
	Interests          []string             `json:"interests"`
	Location           *LocationModel       `json:"location,omitempty"`
	Status             structures.UserStatus `json:"status"`
	LocationVisibility string               `json:"location_visibility"`
	IsOnline           bool                 `json:"is_online"`
	LastSeen           time.Time            `json:"last_seen"`
	CreatedAt          time.Time            `json:"created_at"`
}

// UserPartialModel is the trimmed representation embedded in other objects
type UserPartialModel struct {
	ID        primitive.ObjectID `json:"id"`
	Name      string             `json:"name"`
	AvatarURL string             `json:"avatar_url,omitempty"`
	IsOnline  bool               `json:"is_online"`
}

type LocationModel struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (x *modelizer) User(v structures.User) UserModel {
	interests := v.Interests
	if interests == nil {
		interests = []string{}
	}

	m := UserModel{
		ID:                 v.ID,
		Name:               v.Name,
		AvatarURL:          v.AvatarURL,
		Bio:                v.Bio,
		Interests:          interests,
		Status:             v.Status,
		LocationVisibility: string(v.LocationVisibility),
		IsOnline:           v.IsOnline,
		LastSeen:           v.LastSeen,
		CreatedAt:          v.CreatedAt,
	}

	if v.Location != nil && v.LocationVisibility != structures.LocationVisibilityPrivate {
		m.Location = &LocationModel{Lat: v.Location.Lat, Lng: v.Location.Lng}
	}

	return m
}

func (m UserModel) ToPartial() UserPartialModel {
	return UserPartialModel{
		ID:        m.ID,
		Name:      m.Name,
		AvatarURL: m.AvatarURL,
		IsOnline:  m.IsOnline,
	}
}

func (x *modelizer) UserPartial(v structures.User) UserPartialModel {
	return x.User(v).ToPartial()
}
