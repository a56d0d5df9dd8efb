package connections

import (
	"github.com/meetmux/api/data/model"
	"github.com/meetmux/api/data/structures"
	"github.com/meetmux/api/internal/global"
	"github.com/meetmux/api/internal/rest/rest"
	"github.com/meetmux/api/internal/rest/v3/middleware"
	"github.com/seventv/common/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Route struct {
	Ctx global.Context
}

func New(gCtx global.Context) rest.Route {
	return &Route{gCtx}
}

func (r *Route) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:    "/connections",
		Method: rest.GET,
		Children: []rest.Route{
			newRequest(r.Ctx),
			newRespond(r.Ctx),
			newRequests(r.Ctx),
		},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
		},
	}
}

// List Connections
// Returns the actor's accepted edges, both directions, with user summaries.
func (r *Route) Handler(ctx *rest.Ctx) rest.APIError {
	actor, ok := ctx.GetActor()
	if !ok {
		return errors.ErrUnauthorized()
	}

	edges, err := r.Ctx.Inst().Query.AcceptedConnections(ctx, actor.ID).Items()
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, modelizeEdges(r.Ctx, edges))
}

func modelizeEdges(gCtx global.Context, edges []structures.Connection) []model.ConnectionModel {
	ids := make([]primitive.ObjectID, 0, len(edges)*2)
	for _, edge := range edges {
		ids = append(ids, edge.Requester, edge.Receiver)
	}

	users, _ := gCtx.Inst().Loaders.UserByID().LoadAll(ids)

	m := make(map[primitive.ObjectID]structures.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}

	partial := func(id primitive.ObjectID) model.UserPartialModel {
		u, ok := m[id]
		if !ok {
			u = structures.DeletedUser
		}

		return gCtx.Inst().Modelizer.UserPartial(u)
	}

	result := make([]model.ConnectionModel, len(edges))
	for i, edge := range edges {
		result[i] = gCtx.Inst().Modelizer.Connection(edge).
			WithUsers(partial(edge.Requester), partial(edge.Receiver))
	}

	return result
}
