package routes

import (
	"github.com/meetmux/api/internal/global"
	"github.com/meetmux/api/internal/rest/rest"
	"github.com/meetmux/api/internal/rest/v3/routes/connections"
	"github.com/meetmux/api/internal/rest/v3/routes/events"
	"github.com/meetmux/api/internal/rest/v3/routes/live"
	"github.com/meetmux/api/internal/rest/v3/routes/users"
)

type Route struct {
	Ctx global.Context
}

func New(gCtx global.Context) rest.Route {
	return &Route{gCtx}
}

func (r *Route) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:    "/v3" + r.Ctx.Config().Http.VersionSuffix,
		Method: rest.GET,
		Children: []rest.Route{
			users.New(r.Ctx),
			events.New(r.Ctx),
			connections.New(r.Ctx),
			live.New(r.Ctx),
		},
	}
}

func (r *Route) Handler(ctx *rest.Ctx) rest.APIError {
	return ctx.JSON(rest.OK, &Response{
		Online: true,
	})
}

type Response struct {
	Online bool `json:"online"`
}
