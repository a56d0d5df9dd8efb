package events

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DispatchPayload struct {
	Type       EventType        `json:"type"`
	Body       json.RawMessage  `json:"body"`
	Hash       *uint32          `json:"hash,omitempty"`
	Conditions []EventCondition `json:"condition,omitempty"`
}

type HelloPayload struct {
	HeartbeatInterval int64  `json:"heartbeat_interval"`
	SessionID         string `json:"session_id"`
}

type AckPayload struct {
	Command string          `json:"command"`
	Data    json.RawMessage `json:"data"`
}

type ErrorPayload struct {
	Message       string         `json:"message"`
	MessageLocale string         `json:"message_locale,omitempty"`
	Fields        map[string]any `json:"fields"`
}

type EndOfStreamPayload struct {
	Code    CloseCode `json:"code"`
	Message string    `json:"message"`
}

// Dispatch bodies

type PresenceUpdatePayload struct {
	UserID   primitive.ObjectID `json:"user_id"`
	IsOnline bool               `json:"is_online"`
	LastSeen int64              `json:"last_seen"`
}

type LocationUpdatePayload struct {
	UserID    primitive.ObjectID `json:"user_id"`
	Lat       float64            `json:"lat"`
	Lng       float64            `json:"lng"`
	Timestamp int64              `json:"ts"`
}

type LiveStartedPayload struct {
	SessionID string               `json:"session_id"`
	StartedBy primitive.ObjectID   `json:"started_by"`
	Users     []primitive.ObjectID `json:"users"`
}

type LiveLocationPayload struct {
	SessionID string             `json:"session_id"`
	UserID    primitive.ObjectID `json:"user_id"`
	Lat       float64            `json:"lat"`
	Lng       float64            `json:"lng"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type LiveEndedPayload struct {
	SessionID string    `json:"session_id"`
	EndedAt   time.Time `json:"ended_at"`
}
