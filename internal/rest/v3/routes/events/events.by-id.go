package events

import (
	"github.com/meetmux/api/internal/global"
	"github.com/meetmux/api/internal/rest/rest"
	"github.com/seventv/common/errors"
)

type eventRoute struct {
	Ctx global.Context
}

func newEvent(gCtx global.Context) rest.Route {
	return &eventRoute{gCtx}
}

func (r *eventRoute) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/{event.id}",
		Method:   rest.GET,
		Children: []rest.Route{},
	}
}

func (r *eventRoute) Handler(ctx *rest.Ctx) rest.APIError {
	eventID, err := ctx.UserValue("event.id").ObjectID()
	if err != nil {
		return errors.From(err)
	}

	event, err := r.Ctx.Inst().Loaders.EventByID().Load(eventID)
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, r.Ctx.Inst().Modelizer.Event(event))
}
