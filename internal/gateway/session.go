package gateway

import (
	"strconv"
	"strings"
	"sync"
	"time"

	stdjson "encoding/json"
	"github.com/fasthttp/websocket"
	"github.com/google/uuid"
	"github.com/meetmux/api/data/events"
	"github.com/meetmux/api/data/structures"
	"github.com/meetmux/api/internal/global"
	"github.com/meetmux/api/internal/svc/auth"
	"github.com/patrickmn/go-cache"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type session struct {
	gctx global.Context
	conn *websocket.Conn
	reg  *Registry

	id         string
	hbInterval time.Duration

	mx    sync.Mutex
	actor *structures.User
	seen  *cache.Cache
}

func newSession(gctx global.Context, conn *websocket.Conn, reg *Registry) *session {
	hb := gctx.Config().Gateway.HeartbeatInterval
	if hb == 0 {
		hb = 45000
	}

	return &session{
		gctx:       gctx,
		conn:       conn,
		reg:        reg,
		id:         uuid.New().String(),
		hbInterval: time.Duration(hb) * time.Millisecond,
		seen:       cache.New(time.Minute, time.Minute*3),
	}
}

func (s *session) SessionID() string {
	return s.id
}

// Push delivers a dispatch to the client. Messages already seen through
// another topic are dropped by their hash.
func (s *session) Push(msg events.Message[events.DispatchPayload]) bool {
	if msg.Data.Hash != nil {
		k := strconv.FormatUint(uint64(*msg.Data.Hash), 10)

		if _, ok := s.seen.Get(k); ok {
			return false
		}

		s.seen.SetDefault(k, true)
	}

	return s.write(msg.ToRaw()) == nil
}

func (s *session) run() {
	defer s.destroy()

	s.greet()

	// Sessions do not live forever; clients are told to reconnect
	if ttl := s.gctx.Config().Gateway.TTL; ttl > 0 {
		timer := time.AfterFunc(time.Duration(ttl)*time.Minute, func() {
			s.closeStream(events.CloseCodeRestart, "session lifetime exceeded")
		})
		defer timer.Stop()
	}

	for {
		_ = s.conn.SetReadDeadline(time.Now().Add(s.hbInterval * 3))

		_, b, err := s.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg events.Message[stdjson.RawMessage]
		if err := json.Unmarshal(b, &msg); err != nil {
			s.closeStream(events.CloseCodeInvalidPayload, "bad json")
			return
		}

		switch msg.Op {
		case events.OpcodeHeartbeat:
			s.ack(events.OpcodeHeartbeat, nil)
		case events.OpcodeIdentify:
			if !s.handleIdentify(msg) {
				return
			}
		case events.OpcodeUpdateLocation:
			s.handleUpdateLocation(msg)
		case events.OpcodeLiveStart:
			s.handleLiveStart(msg)
		case events.OpcodeLiveUpdate:
			s.handleLiveUpdate(msg)
		case events.OpcodeLiveEnd:
			s.handleLiveEnd(msg)
		default:
			s.closeStream(events.CloseCodeUnknownOperation, msg.Op.String())
			return
		}
	}
}

// handleIdentify binds a user identity to the session. It reports false when
// the session was closed and the read loop should stop.
func (s *session) handleIdentify(raw events.Message[stdjson.RawMessage]) bool {
	if s.getActor() != nil {
		s.closeStream(events.CloseCodeAlreadyIdentified, "")
		return false
	}

	msg, err := events.ConvertMessage[events.IdentifyPayload](raw)
	if err != nil {
		s.closeStream(events.CloseCodeInvalidPayload, err.Error())
		return false
	}

	var userID primitive.ObjectID

	switch {
	case msg.Data.Token != "":
		claims := &auth.JWTClaimUser{}

		if _, err = s.gctx.Inst().Auth.VerifyJWT(strings.Split(msg.Data.Token, "."), claims); err != nil {
			s.closeStream(events.CloseCodeAuthFailure, err.Error())
			return false
		}

		if userID, err = primitive.ObjectIDFromHex(claims.UserID); err != nil {
			s.closeStream(events.CloseCodeAuthFailure, "bad token")
			return false
		}

		user, err := s.gctx.Inst().Loaders.UserByID().Load(userID)
		if err != nil {
			s.closeStream(events.CloseCodeAuthFailure, "unknown user")
			return false
		}

		if user.TokenVersion != claims.TokenVersion {
			s.closeStream(events.CloseCodeAuthFailure, "token version mismatch")
			return false
		}
	case msg.Data.UserID != "":
		// Bare id fallback for trusted internal clients
		if userID, err = primitive.ObjectIDFromHex(msg.Data.UserID); err != nil {
			s.closeStream(events.CloseCodeInvalidPayload, "bad user id")
			return false
		}
	default:
		s.closeStream(events.CloseCodeInvalidPayload, "missing credentials")
		return false
	}

	user, err := s.gctx.Inst().Presences.Authenticate(s.gctx, userID)
	if err != nil {
		s.closeStream(events.CloseCodeServerError, "")
		return false
	}

	s.setActor(&user)

	s.reg.Subscribe(events.TopicGlobal, s)
	s.reg.Subscribe(events.TopicUser(user.ID), s)

	b, _ := json.Marshal(struct {
		UserID primitive.ObjectID `json:"user_id"`
	}{user.ID})
	s.ack(events.OpcodeIdentify, b)

	return true
}

func (s *session) handleUpdateLocation(raw events.Message[stdjson.RawMessage]) {
	actor := s.getActor()
	if actor == nil {
		// Commands may arrive before identify; they are dropped without a reply
		zap.S().Debugw("gateway, dropped command from unidentified session",
			"op", raw.Op.String(),
		)
		return
	}

	msg, err := events.ConvertMessage[events.UpdateLocationPayload](raw)
	if err != nil {
		s.sendError("invalid payload")
		return
	}

	if _, err = s.gctx.Inst().Presences.PushLocation(s.gctx, actor.ID, msg.Data.Lat, msg.Data.Lng); err != nil {
		s.sendError(err.Error())
		return
	}

	s.ack(events.OpcodeUpdateLocation, nil)
}

func (s *session) handleLiveStart(raw events.Message[stdjson.RawMessage]) {
	actor := s.getActor()
	if actor == nil {
		// Commands may arrive before identify; they are dropped without a reply
		zap.S().Debugw("gateway, dropped command from unidentified session",
			"op", raw.Op.String(),
		)
		return
	}

	msg, err := events.ConvertMessage[events.LiveStartPayload](raw)
	if err != nil {
		s.sendError("invalid payload")
		return
	}

	users := make([]primitive.ObjectID, 0, len(msg.Data.Users))

	for _, u := range msg.Data.Users {
		oid, err := primitive.ObjectIDFromHex(u)
		if err != nil {
			s.sendError("bad user id: " + u)
			return
		}

		users = append(users, oid)
	}

	live, err := s.gctx.Inst().LiveSessions.Start(s.gctx, *actor, msg.Data.SessionID, users)
	if err != nil {
		s.sendError(err.Error())
		return
	}

	s.reg.Subscribe(events.TopicLive(live.SessionID), s)

	b, _ := json.Marshal(struct {
		SessionID string `json:"session_id"`
	}{live.SessionID})
	s.ack(events.OpcodeLiveStart, b)
}

func (s *session) handleLiveUpdate(raw events.Message[stdjson.RawMessage]) {
	actor := s.getActor()
	if actor == nil {
		// Commands may arrive before identify; they are dropped without a reply
		zap.S().Debugw("gateway, dropped command from unidentified session",
			"op", raw.Op.String(),
		)
		return
	}

	msg, err := events.ConvertMessage[events.LiveUpdatePayload](raw)
	if err != nil {
		s.sendError("invalid payload")
		return
	}

	live, err := s.gctx.Inst().LiveSessions.PushLocation(s.gctx, msg.Data.SessionID, actor.ID, msg.Data.Lat, msg.Data.Lng)
	if err != nil {
		s.sendError(err.Error())
		return
	}

	// Participants who joined an already running session start listening on
	// their first push
	s.reg.Subscribe(events.TopicLive(live.SessionID), s)

	s.ack(events.OpcodeLiveUpdate, nil)
}

func (s *session) handleLiveEnd(raw events.Message[stdjson.RawMessage]) {
	actor := s.getActor()
	if actor == nil {
		// Commands may arrive before identify; they are dropped without a reply
		zap.S().Debugw("gateway, dropped command from unidentified session",
			"op", raw.Op.String(),
		)
		return
	}

	msg, err := events.ConvertMessage[events.LiveEndPayload](raw)
	if err != nil {
		s.sendError("invalid payload")
		return
	}

	live, err := s.gctx.Inst().LiveSessions.End(s.gctx, msg.Data.SessionID)
	if err != nil {
		s.sendError(err.Error())
		return
	}

	s.reg.Unsubscribe(events.TopicLive(live.SessionID), s.id)

	s.ack(events.OpcodeLiveEnd, nil)
}

func (s *session) greet() {
	_ = s.write(events.NewMessage(events.OpcodeHello, events.HelloPayload{
		HeartbeatInterval: s.hbInterval.Milliseconds(),
		SessionID:         s.id,
	}).ToRaw())
}

func (s *session) ack(cmd events.Opcode, data stdjson.RawMessage) {
	_ = s.write(events.NewMessage(events.OpcodeAck, events.AckPayload{
		Command: cmd.String(),
		Data:    data,
	}).ToRaw())
}

func (s *session) sendError(message string) {
	_ = s.write(events.NewMessage(events.OpcodeError, events.ErrorPayload{
		Message: message,
		Fields:  map[string]any{},
	}).ToRaw())
}

func (s *session) closeStream(code events.CloseCode, message string) {
	if message == "" {
		message = code.String()
	}

	_ = s.write(events.NewMessage(events.OpcodeEndOfStream, events.EndOfStreamPayload{
		Code:    code,
		Message: message,
	}).ToRaw())

	s.mx.Lock()
	_ = s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(int(code), message))
	s.mx.Unlock()

	_ = s.conn.Close()
}

func (s *session) write(msg events.Message[stdjson.RawMessage]) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	s.mx.Lock()
	defer s.mx.Unlock()

	return s.conn.WriteMessage(websocket.TextMessage, b)
}

func (s *session) destroy() {
	s.reg.UnsubscribeAll(s.id)

	if actor := s.getActor(); actor != nil {
		// The connection is gone at this point; the presence write runs on
		// the gateway's own context
		if err := s.gctx.Inst().Presences.Disconnect(s.gctx, actor.ID); err != nil {
			zap.S().Errorw("gateway, failed to mark user offline",
				"error", err,
				"user_id", actor.ID,
			)
		}
	}

	_ = s.conn.Close()
}

func (s *session) getActor() *structures.User {
	s.mx.Lock()
	defer s.mx.Unlock()

	return s.actor
}

func (s *session) setActor(u *structures.User) {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.actor = u
}
