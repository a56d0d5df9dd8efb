package users

import (
	"encoding/json"

	"github.com/meetmux/api/data/mutate"
	"github.com/meetmux/api/data/structures"
	"github.com/meetmux/api/internal/global"
	"github.com/meetmux/api/internal/rest/rest"
	"github.com/meetmux/api/internal/rest/v3/middleware"
	"github.com/seventv/common/errors"
)

type statusRoute struct {
	Ctx global.Context
}

func newStatus(gCtx global.Context) rest.Route {
	return &statusRoute{gCtx}
}

func (r *statusRoute) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/status",
		Method:   rest.PUT,
		Children: []rest.Route{},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
		},
	}
}

type statusBody struct {
	Status string `json:"status"`
}

func (r *statusRoute) Handler(ctx *rest.Ctx) rest.APIError {
	actor, ok := ctx.GetActor()
	if !ok {
		return errors.ErrUnauthorized()
	}

	body := statusBody{}
	if err := json.Unmarshal(ctx.Request.Body(), &body); err != nil {
		return errors.ErrInvalidRequest().SetDetail("Invalid Body: %s", err.Error())
	}

	user, err := r.Ctx.Inst().Mutate.SetUserStatus(ctx, mutate.UserStatusOptions{
		Actor:  *actor,
		Status: structures.UserStatus(body.Status),
	})
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, r.Ctx.Inst().Modelizer.User(user))
}
