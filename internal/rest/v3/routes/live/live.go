package live

import (
	"github.com/meetmux/api/data/model"
	"github.com/meetmux/api/internal/global"
	"github.com/meetmux/api/internal/rest/rest"
	"github.com/meetmux/api/internal/rest/v3/middleware"
	"github.com/seventv/common/errors"
)

type Route struct {
	Ctx global.Context
}

func New(gCtx global.Context) rest.Route {
	return &Route{gCtx}
}

func (r *Route) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:    "/live",
		Method: rest.GET,
		Children: []rest.Route{
			newStart(r.Ctx),
			newSession(r.Ctx),
			newLocation(r.Ctx),
			newEnd(r.Ctx),
		},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
		},
	}
}

// My Live Sessions
// Lists the active sessions the actor belongs to.
func (r *Route) Handler(ctx *rest.Ctx) rest.APIError {
	actor, ok := ctx.GetActor()
	if !ok {
		return errors.ErrUnauthorized()
	}

	items, err := r.Ctx.Inst().Query.ActiveLiveSessions(ctx, actor.ID)
	if err != nil {
		return errors.From(err)
	}

	result := make([]model.LiveSessionModel, len(items))
	for i, s := range items {
		result[i] = r.Ctx.Inst().Modelizer.LiveSession(s)
	}

	return ctx.JSON(rest.OK, result)
}
