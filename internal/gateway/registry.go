package gateway

import (
	"sync"

	"github.com/meetmux/api/data/events"
)

// recipient is the registry's view of a connected session
type recipient interface {
	SessionID() string

	// Push delivers a dispatch. It reports false when the session dropped
	// the message, such as a duplicate it already received via another topic.
	Push(msg events.Message[events.DispatchPayload]) bool
}

// Registry tracks which sessions listen on which topics
type Registry struct {
	mx     sync.Mutex
	topics map[string]map[string]recipient
}

func newRegistry() *Registry {
	return &Registry{
		topics: map[string]map[string]recipient{},
	}
}

func (r *Registry) Subscribe(topic string, rec recipient) {
	r.mx.Lock()
	defer r.mx.Unlock()

	m, ok := r.topics[topic]
	if !ok {
		m = map[string]recipient{}
		r.topics[topic] = m
	}

	m[rec.SessionID()] = rec
}

func (r *Registry) Unsubscribe(topic string, sessionID string) {
	r.mx.Lock()
	defer r.mx.Unlock()

	m, ok := r.topics[topic]
	if !ok {
		return
	}

	delete(m, sessionID)

	if len(m) == 0 {
		delete(r.topics, topic)
	}
}

// UnsubscribeAll removes a session from every topic it was listening on
func (r *Registry) UnsubscribeAll(sessionID string) {
	r.mx.Lock()
	defer r.mx.Unlock()

	for topic, m := range r.topics {
		delete(m, sessionID)

		if len(m) == 0 {
			delete(r.topics, topic)
		}
	}
}

// Dispatch pushes a message to every session on the topic and returns the
// number of sessions that accepted it
func (r *Registry) Dispatch(topic string, msg events.Message[events.DispatchPayload]) int {
	r.mx.Lock()
	recipients := make([]recipient, 0, len(r.topics[topic]))

	for _, rec := range r.topics[topic] {
		recipients = append(recipients, rec)
	}
	r.mx.Unlock()

	delivered := 0

	for _, rec := range recipients {
		if rec.Push(msg) {
			delivered++
		}
	}

	return delivered
}
