package middleware

import (
	"strings"

	"github.com/meetmux/api/internal/global"
	"github.com/meetmux/api/internal/rest/rest"
	"github.com/meetmux/api/internal/svc/auth"
	"github.com/seventv/common/errors"
	"github.com/seventv/common/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthOptional runs Auth only when the request carries a token. Anonymous
// requests pass through with no actor bound.
func AuthOptional(gCtx global.Context) rest.Middleware {
	authed := Auth(gCtx)

	return func(ctx *rest.Ctx) rest.APIError {
		if len(ctx.Request.Header.Peek("Authorization")) == 0 &&
			len(ctx.Request.Header.Cookie(auth.COOKIE_AUTH)) == 0 {
			return nil
		}

		return authed(ctx)
	}
}

// Auth binds the requesting user into the request context. The token may
// arrive as a bearer header or the auth cookie.
func Auth(gCtx global.Context) rest.Middleware {
	return func(ctx *rest.Ctx) rest.APIError {
		token := utils.B2S(ctx.Request.Header.Cookie(auth.COOKIE_AUTH))

		if token == "" {
			h := utils.B2S(ctx.Request.Header.Peek("Authorization"))
			s := strings.Split(h, "Bearer ")

			if len(s) != 2 {
				return errors.ErrUnauthorized().SetFields(errors.Fields{"message": "Bad Authorization Header"})
			}

			token = s[1]
		}

		// Verify the token
		claims := &auth.JWTClaimUser{}

		_, err := gCtx.Inst().Auth.VerifyJWT(strings.Split(token, "."), claims)
		if err != nil {
			return errors.ErrUnauthorized().SetFields(errors.Fields{"message": err.Error()})
		}

		// User ID from parsed token
		if claims.UserID == "" {
			return errors.ErrUnauthorized().SetFields(errors.Fields{"message": "Bad Token"})
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			return errors.ErrUnauthorized().SetFields(errors.Fields{"message": err.Error()})
		}

		user, err := gCtx.Inst().Loaders.UserByID().Load(userID)
		if err != nil {
			return errors.From(err)
		}

		if user.TokenVersion != claims.TokenVersion {
			return errors.ErrUnauthorized().SetFields(errors.Fields{"message": "Token Version Mismatch"})
		}

		ctx.SetActor(&user)

		return nil
	}
}
