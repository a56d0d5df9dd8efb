package connections

import (
	"encoding/json"

	"github.com/meetmux/api/data/mutate"
	"github.com/meetmux/api/internal/global"
	"github.com/meetmux/api/internal/rest/rest"
	"github.com/meetmux/api/internal/rest/v3/middleware"
	"github.com/seventv/common/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type requestRoute struct {
	Ctx global.Context
}

func newRequest(gCtx global.Context) rest.Route {
	return &requestRoute{gCtx}
}

func (r *requestRoute) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/request",
		Method:   rest.POST,
		Children: []rest.Route{},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
		},
	}
}

type requestBody struct {
	ReceiverID string `json:"receiverId"`
}

func (r *requestRoute) Handler(ctx *rest.Ctx) rest.APIError {
	actor, ok := ctx.GetActor()
	if !ok {
		return errors.ErrUnauthorized()
	}

	body := requestBody{}
	if err := json.Unmarshal(ctx.Request.Body(), &body); err != nil {
		return errors.ErrInvalidRequest().SetDetail("Invalid Body: %s", err.Error())
	}

	receiverID, err := primitive.ObjectIDFromHex(body.ReceiverID)
	if err != nil {
		return errors.ErrBadObjectID()
	}

	edge, err := r.Ctx.Inst().Mutate.SendConnectionRequest(ctx, mutate.ConnectionRequestOptions{
		Actor:      *actor,
		ReceiverID: receiverID,
	})
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.Created, r.Ctx.Inst().Modelizer.Connection(edge))
}
