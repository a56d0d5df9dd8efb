package live

import (
	"github.com/meetmux/api/internal/global"
	"github.com/meetmux/api/internal/rest/rest"
	"github.com/seventv/common/errors"
)

type sessionRoute struct {
	Ctx global.Context
}

func newSession(gCtx global.Context) rest.Route {
	return &sessionRoute{gCtx}
}

func (r *sessionRoute) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/{session.id}",
		Method:   rest.GET,
		Children: []rest.Route{},
	}
}

func (r *sessionRoute) Handler(ctx *rest.Ctx) rest.APIError {
	sessionID, ok := ctx.UserValue("session.id").String()
	if !ok || sessionID == "" {
		return errors.ErrMissingRequiredField().SetFields(errors.Fields{"field": "session.id"})
	}

	session, err := r.Ctx.Inst().LiveSessions.Get(ctx, sessionID)
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, r.Ctx.Inst().Modelizer.LiveSession(session))
}
