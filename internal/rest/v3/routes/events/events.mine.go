package events

import (
	"github.com/meetmux/api/data/model"
	"github.com/meetmux/api/data/structures"
	"github.com/meetmux/api/internal/global"
	"github.com/meetmux/api/internal/rest/rest"
	"github.com/meetmux/api/internal/rest/v3/middleware"
	"github.com/seventv/common/errors"
)

type mineRoute struct {
	Ctx global.Context
}

func newMine(gCtx global.Context) rest.Route {
	return &mineRoute{gCtx}
}

func (r *mineRoute) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/mine",
		Method:   rest.GET,
		Children: []rest.Route{},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
		},
	}
}

// My Events
// Returns the events the actor created and the ones they joined.
func (r *mineRoute) Handler(ctx *rest.Ctx) rest.APIError {
	actor, ok := ctx.GetActor()
	if !ok {
		return errors.ErrUnauthorized()
	}

	created, joined, err := r.Ctx.Inst().Query.UserEvents(ctx, actor.ID)
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, mineResponse{
		Created: modelize(r.Ctx, created),
		Joined:  modelize(r.Ctx, joined),
	})
}

type mineResponse struct {
	Created []model.EventModel `json:"created"`
	Joined  []model.EventModel `json:"joined"`
}

func modelize(gCtx global.Context, items []structures.Event) []model.EventModel {
	result := make([]model.EventModel, len(items))
	for i, e := range items {
		result[i] = gCtx.Inst().Modelizer.Event(e)
	}

	return result
}
