package live

import (
	"encoding/json"

	"github.com/meetmux/api/internal/global"
	"github.com/meetmux/api/internal/rest/rest"
	"github.com/meetmux/api/internal/rest/v3/middleware"
	"github.com/seventv/common/errors"
)

type locationRoute struct {
	Ctx global.Context
}

func newLocation(gCtx global.Context) rest.Route {
	return &locationRoute{gCtx}
}

func (r *locationRoute) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/{session.id}/location",
		Method:   rest.PUT,
		Children: []rest.Route{},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
		},
	}
}

type locationBody struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Push Live Location
// Replaces the actor's location slot in an active session.
func (r *locationRoute) Handler(ctx *rest.Ctx) rest.APIError {
	actor, ok := ctx.GetActor()
	if !ok {
		return errors.ErrUnauthorized()
	}

	sessionID, ok := ctx.UserValue("session.id").String()
	if !ok || sessionID == "" {
		return errors.ErrMissingRequiredField().SetFields(errors.Fields{"field": "session.id"})
	}

	body := locationBody{}
	if err := json.Unmarshal(ctx.Request.Body(), &body); err != nil {
		return errors.ErrInvalidRequest().SetDetail("Invalid Body: %s", err.Error())
	}

	session, err := r.Ctx.Inst().LiveSessions.PushLocation(ctx, sessionID, actor.ID, body.Lat, body.Lng)
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, r.Ctx.Inst().Modelizer.LiveSession(session))
}
