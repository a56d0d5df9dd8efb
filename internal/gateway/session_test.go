package gateway

import (
	"testing"
	"time"

	stdjson "encoding/json"
	"github.com/meetmux/api/data/events"
	"github.com/meetmux/api/internal/testutil"
	"github.com/patrickmn/go-cache"
)

// Commands arriving before identify must be dropped without any reply. The
// session under test has no connection, so an attempted answer would panic.
func TestSessionDropsCommandsBeforeIdentify(t *testing.T) {
	t.Parallel()

	s := &session{
		reg:  newRegistry(),
		id:   "pre-auth",
		seen: cache.New(time.Minute, time.Minute),
	}

	msgs := []events.Message[stdjson.RawMessage]{
		{Op: events.OpcodeUpdateLocation, Data: stdjson.RawMessage(`{"lat":1,"lng":2}`)},
		{Op: events.OpcodeLiveStart, Data: stdjson.RawMessage(`{"sessionId":"room-1"}`)},
		{Op: events.OpcodeLiveUpdate, Data: stdjson.RawMessage(`{"sessionId":"room-1","lat":1,"lng":2}`)},
		{Op: events.OpcodeLiveEnd, Data: stdjson.RawMessage(`{"sessionId":"room-1"}`)},
	}

	for _, msg := range msgs {
		switch msg.Op {
		case events.OpcodeUpdateLocation:
			s.handleUpdateLocation(msg)
		case events.OpcodeLiveStart:
			s.handleLiveStart(msg)
		case events.OpcodeLiveUpdate:
			s.handleLiveUpdate(msg)
		case events.OpcodeLiveEnd:
			s.handleLiveEnd(msg)
		}
	}

	testutil.Assert(t, 0, len(s.reg.topics), "no subscriptions made")
}
