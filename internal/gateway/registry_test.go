package gateway

import (
	"testing"

	"github.com/meetmux/api/data/events"
	"github.com/meetmux/api/internal/testutil"
	"github.com/seventv/common/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeRecipient struct {
	id       string
	seen     map[uint32]bool
	received []events.Message[events.DispatchPayload]
}

func newFakeRecipient(id string) *fakeRecipient {
	return &fakeRecipient{
		id:   id,
		seen: map[uint32]bool{},
	}
}

func (f *fakeRecipient) SessionID() string {
	return f.id
}

func (f *fakeRecipient) Push(msg events.Message[events.DispatchPayload]) bool {
	if msg.Data.Hash != nil {
		if f.seen[*msg.Data.Hash] {
			return false
		}

		f.seen[*msg.Data.Hash] = true
	}

	f.received = append(f.received, msg)

	return true
}

func dispatchMessage(t events.EventType, hash uint32) events.Message[events.DispatchPayload] {
	return events.NewMessage(events.OpcodeDispatch, events.DispatchPayload{
		Type: t,
		Hash: utils.PointerOf(hash),
	})
}

func TestRegistryDispatch(t *testing.T) {
	reg := newRegistry()

	a := newFakeRecipient("a")
	b := newFakeRecipient("b")

	reg.Subscribe(events.TopicGlobal, a)
	reg.Subscribe(events.TopicGlobal, b)
	reg.Subscribe(events.TopicLive("brunch"), b)

	delivered := reg.Dispatch(events.TopicGlobal, dispatchMessage(events.EventTypePresenceUpdate, 1))
	testutil.Assert(t, 2, delivered, "a global dispatch reaches both sessions")

	delivered = reg.Dispatch(events.TopicLive("brunch"), dispatchMessage(events.EventTypeLiveLocation, 2))
	testutil.Assert(t, 1, delivered, "a live dispatch reaches only the subscribed session")
	testutil.Assert(t, 1, len(a.received), "session a got only the global dispatch")
	testutil.Assert(t, 2, len(b.received), "session b got both dispatches")
}

func TestRegistryDedupe(t *testing.T) {
	reg := newRegistry()

	a := newFakeRecipient("a")

	reg.Subscribe(events.TopicGlobal, a)
	reg.Subscribe(events.TopicLive("run-club"), a)

	msg := dispatchMessage(events.EventTypeLiveStarted, 77)

	delivered := reg.Dispatch(events.TopicGlobal, msg)
	delivered += reg.Dispatch(events.TopicLive("run-club"), msg)

	testutil.Assert(t, 1, delivered, "the same payload is delivered once")
	testutil.Assert(t, 1, len(a.received), "the duplicate was dropped")
}

func TestRegistryUnsubscribe(t *testing.T) {
	reg := newRegistry()

	a := newFakeRecipient("a")
	b := newFakeRecipient("b")

	reg.Subscribe(events.TopicGlobal, a)
	reg.Subscribe(events.TopicGlobal, b)
	reg.Subscribe(events.TopicUser(primitive.ObjectID{1}), a)

	reg.Unsubscribe(events.TopicGlobal, "a")

	delivered := reg.Dispatch(events.TopicGlobal, dispatchMessage(events.EventTypePresenceUpdate, 3))
	testutil.Assert(t, 1, delivered, "unsubscribed session is skipped")

	reg.UnsubscribeAll("b")

	delivered = reg.Dispatch(events.TopicGlobal, dispatchMessage(events.EventTypePresenceUpdate, 4))
	testutil.Assert(t, 0, delivered, "no sessions remain on the topic")
}
