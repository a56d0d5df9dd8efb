package live

import (
	"github.com/meetmux/api/internal/global"
	"github.com/meetmux/api/internal/rest/rest"
	"github.com/meetmux/api/internal/rest/v3/middleware"
	"github.com/seventv/common/errors"
)

type endRoute struct {
	Ctx global.Context
}

func newEnd(gCtx global.Context) rest.Route {
	return &endRoute{gCtx}
}

func (r *endRoute) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/{session.id}/end",
		Method:   rest.POST,
		Children: []rest.Route{},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
		},
	}
}

// End Live Session
// Deactivates the session for everyone in it.
func (r *endRoute) Handler(ctx *rest.Ctx) rest.APIError {
	_, ok := ctx.GetActor()
	if !ok {
		return errors.ErrUnauthorized()
	}

	sessionID, ok := ctx.UserValue("session.id").String()
	if !ok || sessionID == "" {
		return errors.ErrMissingRequiredField().SetFields(errors.Fields{"field": "session.id"})
	}

	session, err := r.Ctx.Inst().LiveSessions.End(ctx, sessionID)
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, r.Ctx.Inst().Modelizer.LiveSession(session))
}
