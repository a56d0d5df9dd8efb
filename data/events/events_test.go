package events

import (
	"testing"

	"github.com/meetmux/api/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEventConditionMatch(t *testing.T) {
	t.Parallel()

	cond := TopicCondition("global")

	testutil.Assert(t, true, cond.Match(EventCondition{"topic": "global"}), "exact topic")
	testutil.Assert(t, false, cond.Match(EventCondition{"topic": "user:abc"}), "different topic")
	testutil.Assert(t, false, cond.Match(EventCondition{}), "missing key")

	// extra keys on the subscription side do not block a match
	testutil.Assert(t, true, cond.Match(EventCondition{"topic": "global", "x": "y"}), "superset")
}

func TestTopics(t *testing.T) {
	t.Parallel()

	uid := primitive.NewObjectID()

	testutil.Assert(t, "user:"+uid.Hex(), TopicUser(uid), "user topic")
	testutil.Assert(t, "live:room-9", TopicLive("room-9"), "live topic")
}

func TestMessageRoundTrip(t *testing.T) {
	t.Parallel()

	msg := NewMessage(OpcodeDispatch, DispatchPayload{
		Type:       EventTypeLiveEnded,
		Conditions: []EventCondition{TopicCondition(TopicLive("room-1"))},
	})

	raw := msg.ToRaw()
	testutil.Assert(t, OpcodeDispatch, raw.Op, "opcode survives")

	back, err := ConvertMessage[DispatchPayload](raw)
	testutil.IsNil(t, err, "convert")
	testutil.Assert(t, EventTypeLiveEnded, back.Data.Type, "event type survives")
	testutil.Assert(t, "live:room-1", back.Data.Conditions[0]["topic"], "condition survives")
}

func TestOpcodeStrings(t *testing.T) {
	t.Parallel()

	testutil.Assert(t, "UPDATE_LOCATION", OpcodeUpdateLocation.String(), "command op")
	testutil.Assert(t, "events:op:dispatch", OpcodeDispatch.PublishKey(), "publish key")
}
