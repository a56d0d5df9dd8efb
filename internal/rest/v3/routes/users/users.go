package users

import (
	"encoding/json"
	"time"

	"github.com/meetmux/api/data/mutate"
	"github.com/meetmux/api/internal/global"
	"github.com/meetmux/api/internal/rest/rest"
	"github.com/meetmux/api/internal/svc/auth"
	"github.com/seventv/common/errors"
)

type Route struct {
	Ctx global.Context
}

func New(gCtx global.Context) rest.Route {
	return &Route{gCtx}
}

func (r *Route) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:    "/users",
		Method: rest.POST,
		Children: []rest.Route{
			newLogin(r.Ctx),
			newNearby(r.Ctx),
			newStatus(r.Ctx),
			newUser(r.Ctx),
		},
	}
}

type registerBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register
// Creates an account and returns it with a fresh access token.
func (r *Route) Handler(ctx *rest.Ctx) rest.APIError {
	body := registerBody{}
	if err := json.Unmarshal(ctx.Request.Body(), &body); err != nil {
		return errors.ErrInvalidRequest().SetDetail("Invalid Body: %s", err.Error())
	}

	user, err := r.Ctx.Inst().Mutate.CreateUser(ctx, mutate.UserCreateOptions{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		return errors.From(err)
	}

	token, expiry, err := r.Ctx.Inst().Auth.CreateAccessToken(user.ID, user.TokenVersion)
	if err != nil {
		return errors.ErrInternalServerError()
	}

	ctx.Response.Header.SetCookie(r.Ctx.Inst().Auth.Cookie(auth.COOKIE_AUTH, token, time.Until(expiry)))

	return ctx.JSON(rest.Created, authResponse{
		Token: token,
		User:  r.Ctx.Inst().Modelizer.User(user),
	})
}
