package events

import (
	"github.com/meetmux/api/data/mutate"
	"github.com/meetmux/api/internal/global"
	"github.com/meetmux/api/internal/rest/rest"
	"github.com/meetmux/api/internal/rest/v3/middleware"
	"github.com/seventv/common/errors"
)

type joinRoute struct {
	Ctx global.Context
}

func newJoin(gCtx global.Context) rest.Route {
	return &joinRoute{gCtx}
}

func (r *joinRoute) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/{event.id}/join",
		Method:   rest.POST,
		Children: []rest.Route{},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
		},
	}
}

func (r *joinRoute) Handler(ctx *rest.Ctx) rest.APIError {
	actor, ok := ctx.GetActor()
	if !ok {
		return errors.ErrUnauthorized()
	}

	eventID, err := ctx.UserValue("event.id").ObjectID()
	if err != nil {
		return errors.From(err)
	}

	event, err := r.Ctx.Inst().Mutate.JoinEvent(ctx, mutate.EventJoinOptions{
		Actor:   *actor,
		EventID: eventID,
	})
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, r.Ctx.Inst().Modelizer.Event(event))
}
