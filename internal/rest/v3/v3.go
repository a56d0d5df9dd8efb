package v3

import (
	"github.com/meetmux/api/internal/global"
	"github.com/meetmux/api/internal/rest/rest"
	"github.com/meetmux/api/internal/rest/v3/routes"
)

func API(gCtx global.Context, router *rest.Router) rest.Route {
	return routes.New(gCtx)
}
