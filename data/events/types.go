package events

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventType string

const (
	// Presence

	EventTypePresenceUpdate EventType = "presence:update"
	EventTypeLocationUpdate EventType = "location-update"

	// Live sessions

	EventTypeLiveStarted  EventType = "live:started"
	EventTypeLiveLocation EventType = "live:location"
	EventTypeLiveEnded    EventType = "live:ended"
)

type EmptyObject = struct{}

type AnyPayload interface {
	json.RawMessage |
		DispatchPayload |
		HelloPayload |
		AckPayload |
		ErrorPayload |
		EndOfStreamPayload |
		IdentifyPayload |
		UpdateLocationPayload |
		LiveStartPayload |
		LiveUpdatePayload |
		LiveEndPayload |
		PresenceUpdatePayload |
		LocationUpdatePayload |
		LiveStartedPayload |
		LiveLocationPayload |
		LiveEndedPayload |
		EmptyObject
}

// EventCondition is matched against a session's subscriptions to decide
// whether a dispatch reaches it
type EventCondition map[string]string

func (evc EventCondition) Match(other EventCondition) bool {
	for k, v := range evc {
		if other[k] != v {
			return false
		}
	}

	return true
}

// TopicCondition scopes a dispatch to a single topic
func TopicCondition(topic string) EventCondition {
	return EventCondition{"topic": topic}
}

const TopicGlobal = "global"

func TopicUser(userID primitive.ObjectID) string {
	return fmt.Sprintf("user:%s", userID.Hex())
}

func TopicLive(sessionID string) string {
	return fmt.Sprintf("live:%s", sessionID)
}
