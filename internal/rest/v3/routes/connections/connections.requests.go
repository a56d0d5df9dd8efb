package connections

import (
	"github.com/meetmux/api/internal/global"
	"github.com/meetmux/api/internal/rest/rest"
	"github.com/meetmux/api/internal/rest/v3/middleware"
	"github.com/seventv/common/errors"
)

type requestsRoute struct {
	Ctx global.Context
}

func newRequests(gCtx global.Context) rest.Route {
	return &requestsRoute{gCtx}
}

func (r *requestsRoute) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/requests",
		Method:   rest.GET,
		Children: []rest.Route{},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
		},
	}
}

// Pending Requests
// Lists the requests awaiting the actor's answer.
func (r *requestsRoute) Handler(ctx *rest.Ctx) rest.APIError {
	actor, ok := ctx.GetActor()
	if !ok {
		return errors.ErrUnauthorized()
	}

	edges, err := r.Ctx.Inst().Query.PendingConnections(ctx, actor.ID).Items()
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, modelizeEdges(r.Ctx, edges))
}
