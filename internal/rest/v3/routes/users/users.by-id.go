package users

import (
	"github.com/meetmux/api/internal/global"
	"github.com/meetmux/api/internal/rest/rest"
	"github.com/seventv/common/errors"
)

type userRoute struct {
	Ctx global.Context
}

func newUser(gctx global.Context) rest.Route {
	return &userRoute{gctx}
}

func (r *userRoute) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/{user.id}",
		Method:   rest.GET,
		Children: []rest.Route{},
	}
}

func (r *userRoute) Handler(ctx *rest.Ctx) rest.APIError {
	userID, err := ctx.UserValue("user.id").ObjectID()
	if err != nil {
		return errors.From(err)
	}

	user, err := r.Ctx.Inst().Loaders.UserByID().Load(userID)
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.OK, r.Ctx.Inst().Modelizer.User(user))
}
