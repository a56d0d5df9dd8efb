package gateway

import (
	stdjson "encoding/json"
	"github.com/meetmux/api/data/events"
	"github.com/meetmux/api/internal/global"
	"github.com/seventv/common/utils"
	"go.uber.org/zap"
)

// digest reads dispatches from the redis fanout channel and routes them to
// the sessions subscribed to their topics
type digest struct {
	gctx global.Context
	reg  *Registry
}

func newDigest(gctx global.Context, reg *Registry) *digest {
	d := &digest{
		gctx: gctx,
		reg:  reg,
	}

	go d.subscribe()

	return d
}

func (d *digest) subscribe() {
	key := d.gctx.Inst().Redis.ComposeKey("events", "op", "dispatch")

	ps := d.gctx.Inst().Redis.RawClient().Subscribe(d.gctx, key.String())
	defer ps.Close()

	ch := ps.Channel()

	for {
		select {
		case <-d.gctx.Done():
			return
		case m, ok := <-ch:
			if !ok {
				return
			}

			d.onMessage(utils.S2B(m.Payload))
		}
	}
}

func (d *digest) onMessage(b []byte) {
	var raw events.Message[stdjson.RawMessage]

	if err := json.Unmarshal(b, &raw); err != nil {
		zap.S().Warnw("gateway, dropped a malformed dispatch",
			"error", err,
		)

		return
	}

	msg, err := events.ConvertMessage[events.DispatchPayload](raw)
	if err != nil {
		zap.S().Warnw("gateway, dropped a malformed dispatch",
			"error", err,
		)

		return
	}

	topics := make([]string, 0, len(msg.Data.Conditions))

	for _, cond := range msg.Data.Conditions {
		if t, ok := cond["topic"]; ok {
			topics = append(topics, t)
		}
	}

	// Unconditional dispatches go out to everyone
	if len(topics) == 0 {
		topics = append(topics, events.TopicGlobal)
	}

	delivered := 0

	for _, topic := range topics {
		delivered += d.reg.Dispatch(topic, msg)
	}

	if delivered > 0 {
		d.gctx.Inst().Prometheus.EventsDispatched().Add(float64(delivered))
	}
}
