package users

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/meetmux/api/data/model"
	"github.com/meetmux/api/internal/global"
	"github.com/meetmux/api/internal/rest/rest"
	"github.com/meetmux/api/internal/svc/auth"
	"github.com/seventv/common/errors"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type loginRoute struct {
	Ctx global.Context
}

func newLogin(gCtx global.Context) rest.Route {
	return &loginRoute{gCtx}
}

func (r *loginRoute) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/login",
		Method:   rest.POST,
		Children: []rest.Route{},
	}
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string          `json:"token"`
	User  model.UserModel `json:"user"`
}

func (r *loginRoute) Handler(ctx *rest.Ctx) rest.APIError {
	body := loginBody{}
	if err := json.Unmarshal(ctx.Request.Body(), &body); err != nil {
		return errors.ErrInvalidRequest().SetDetail("Invalid Body: %s", err.Error())
	}

	if body.Email == "" || body.Password == "" {
		return errors.ErrMissingRequiredField().SetFields(errors.Fields{
			"required": []string{"email", "password"},
		})
	}

	user, err := r.Ctx.Inst().Query.Users(ctx, bson.M{
		"email": strings.ToLower(strings.TrimSpace(body.Email)),
	}).First()
	if err != nil {
		return errors.ErrUnauthorized().SetDetail("Invalid credentials")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)) != nil {
		return errors.ErrUnauthorized().SetDetail("Invalid credentials")
	}

	token, expiry, err := r.Ctx.Inst().Auth.CreateAccessToken(user.ID, user.TokenVersion)
	if err != nil {
		return errors.ErrInternalServerError()
	}

	ctx.Response.Header.SetCookie(r.Ctx.Inst().Auth.Cookie(auth.COOKIE_AUTH, token, time.Until(expiry)))

	return ctx.JSON(rest.OK, authResponse{
		Token: token,
		User:  r.Ctx.Inst().Modelizer.User(user),
	})
}
