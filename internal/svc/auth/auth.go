package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/valyala/fasthttp"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type Authorizer interface {
	SignJWT(secret string, claim jwt.Claims) (string, error)
	VerifyJWT(token []string, out jwt.Claims) (*jwt.Token, error)
	CreateAccessToken(targetID primitive.ObjectID, version float64) (string, time.Time, error)
	Cookie(key, token string, duration time.Duration) *fasthttp.Cookie
}

type authorizer struct {
	JWTSecret string
	Domain    string
	Secure    bool
}

const COOKIE_AUTH = "meetmux-auth"

func New(opt AuthorizerOptions) Authorizer {
	return &authorizer{
		JWTSecret: opt.JWTSecret,
		Domain:    opt.Domain,
		Secure:    opt.Secure,
	}
}

type AuthorizerOptions struct {
	JWTSecret string
	Domain    string
	Secure    bool
}

func (a *authorizer) CreateAccessToken(targetID primitive.ObjectID, version float64) (string, time.Time, error) {
	expireAt := time.Now().Add(time.Hour * 24 * 30)

	token, err := a.SignJWT(a.JWTSecret, &JWTClaimUser{
		UserID:       targetID.Hex(),
		TokenVersion: version,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "meetmux-api",
			ExpiresAt: &jwt.NumericDate{Time: expireAt}, // 30 days
			NotBefore: &jwt.NumericDate{Time: time.Now()},
			IssuedAt:  &jwt.NumericDate{Time: time.Now()},
		},
	})
	if err != nil {
		zap.S().Errorw("access_token, sign",
			"error", err,
			"target_id", targetID,
		)

		return "", time.Time{}, err
	}

	return token, expireAt, nil
}

// Cookie returns a cookie
func (a *authorizer) Cookie(key, token string, duration time.Duration) *fasthttp.Cookie {
	cookie := &fasthttp.Cookie{}
	cookie.SetKey(key)
	cookie.SetValue(token)
	cookie.SetExpire(time.Now().Add(duration))
	cookie.SetHTTPOnly(true)
	cookie.SetDomain(a.Domain)
	cookie.SetPath("/")
	cookie.SetSecure(a.Secure)
	cookie.SetSameSite(fasthttp.CookieSameSiteNoneMode)

	return cookie
}
