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

type respondRoute struct {
	Ctx global.Context
}

func newRespond(gCtx global.Context) rest.Route {
	return &respondRoute{gCtx}
}

func (r *respondRoute) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/respond",
		Method:   rest.POST,
		Children: []rest.Route{},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
		},
	}
}

type respondBody struct {
	RequestID string `json:"requestId"`
	Action    string `json:"action"`
}

func (r *respondRoute) Handler(ctx *rest.Ctx) rest.APIError {
	actor, ok := ctx.GetActor()
	if !ok {
		return errors.ErrUnauthorized()
	}

	body := respondBody{}
	if err := json.Unmarshal(ctx.Request.Body(), &body); err != nil {
		return errors.ErrInvalidRequest().SetDetail("Invalid Body: %s", err.Error())
	}

	requestID, err := primitive.ObjectIDFromHex(body.RequestID)
	if err != nil {
		return errors.ErrBadObjectID()
	}

	var accept bool

	switch body.Action {
	case "accept":
		accept = true
	case "reject":
		accept = false
	default:
		return errors.ErrInvalidRequest().SetDetail("Action must be accept or reject")
	}

	edge, err := r.Ctx.Inst().Mutate.RespondConnectionRequest(ctx, mutate.ConnectionRespondOptions{
		Actor:     *actor,
		RequestID: requestID,
		Accept:    accept,
	})
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, r.Ctx.Inst().Modelizer.Connection(edge))
}
