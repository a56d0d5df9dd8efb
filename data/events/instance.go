package events

import (
	"context"
	"encoding/json"
	"hash/crc32"
	"strings"
	"time"

	"github.com/seventv/common/redis"
	"github.com/seventv/common/utils"
	"go.uber.org/zap"
)

type Instance interface {
	Publish(ctx context.Context, msg Message[json.RawMessage]) error
	Dispatch(ctx context.Context, t EventType, body any, cond ...EventCondition) error
}

type eventsInst struct {
	ctx   context.Context
	redis redis.Instance

	publishQueue utils.Queue[Message[json.RawMessage]]
}

func NewPublisher(ctx context.Context, redis redis.Instance) Instance {
	ticker := time.NewTicker(50 * time.Millisecond)

	inst := &eventsInst{
		ctx:          ctx,
		redis:        redis,
		publishQueue: utils.NewQueue[Message[json.RawMessage]](10),
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if inst.publishQueue.IsEmpty() {
					continue
				}

				p := redis.RawClient().Pipeline()

				for _, m := range inst.publishQueue.Items() {
					j, err := json.Marshal(m)
					if err != nil {
						continue
					}

					k := redis.ComposeKey("events", "op", strings.ToLower(m.Op.String()))
					p.Publish(ctx, k.String(), j)
				}

				inst.publishQueue.Clear()

				if _, err := p.Exec(ctx); err != nil {
					zap.S().Warnw("failed to publish events",
						"error", err.Error(),
					)
				}
			}
		}
	}()

	return inst
}

func (inst *eventsInst) Publish(ctx context.Context, msg Message[json.RawMessage]) error {
	inst.publishQueue.Add(msg)

	return nil
}

func (inst *eventsInst) Dispatch(ctx context.Context, t EventType, body any, cond ...EventCondition) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}

	// Dedupe hash
	h := crc32.New(crc32.MakeTable(2596996162))

	h.Write(utils.S2B(string(t)))
	h.Write(raw)

	msg := NewMessage(OpcodeDispatch, DispatchPayload{
		Type:       t,
		Body:       raw,
		Hash:       utils.PointerOf(h.Sum32()),
		Conditions: cond,
	})

	return inst.Publish(ctx, msg.ToRaw())
}
