package live

import (
	"encoding/json"

	"github.com/meetmux/api/internal/global"
	"github.com/meetmux/api/internal/rest/rest"
	"github.com/meetmux/api/internal/rest/v3/middleware"
	"github.com/seventv/common/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type startRoute struct {
	Ctx global.Context
}

func newStart(gCtx global.Context) rest.Route {
	return &startRoute{gCtx}
}

func (r *startRoute) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/start",
		Method:   rest.POST,
		Children: []rest.Route{},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
		},
	}
}

type startBody struct {
	SessionID string   `json:"sessionId"`
	Users     []string `json:"users"`
}

// Start Live Session
// Creates a session, or reactivates it when the id was used before.
func (r *startRoute) Handler(ctx *rest.Ctx) rest.APIError {
	actor, ok := ctx.GetActor()
	if !ok {
		return errors.ErrUnauthorized()
	}

	body := startBody{}
	if err := json.Unmarshal(ctx.Request.Body(), &body); err != nil {
		return errors.ErrInvalidRequest().SetDetail("Invalid Body: %s", err.Error())
	}

	users := make([]primitive.ObjectID, 0, len(body.Users))

	for _, u := range body.Users {
		oid, err := primitive.ObjectIDFromHex(u)
		if err != nil {
			return errors.ErrBadObjectID().SetDetail("Invalid user id: %s", u)
		}

		users = append(users, oid)
	}

	session, err := r.Ctx.Inst().LiveSessions.Start(ctx, *actor, body.SessionID, users)
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.Created, r.Ctx.Inst().Modelizer.LiveSession(session))
}
