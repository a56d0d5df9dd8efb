package users

import (
	"github.com/meetmux/api/data/model"
	"github.com/meetmux/api/data/query"
	"github.com/meetmux/api/internal/global"
	"github.com/meetmux/api/internal/rest/rest"
	"github.com/meetmux/api/internal/rest/v3/middleware"
	"github.com/seventv/common/errors"
)

type nearbyRoute struct {
	Ctx global.Context
}

func newNearby(gCtx global.Context) rest.Route {
	return &nearbyRoute{gCtx}
}

func (r *nearbyRoute) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "/nearby",
		Method:   rest.GET,
		Children: []rest.Route{},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
		},
	}
}

// Nearby Users
// Lists users around a point, optionally narrowed to shared interests.
func (r *nearbyRoute) Handler(ctx *rest.Ctx) rest.APIError {
	actor, ok := ctx.GetActor()
	if !ok {
		return errors.ErrUnauthorized()
	}

	lat, okLat := ctx.QueryValue("lat").Float64()
	lng, okLng := ctx.QueryValue("lng").Float64()
	if !okLat || !okLng {
		return errors.ErrMissingRequiredField().SetFields(errors.Fields{
			"required": []string{"lat", "lng"},
		})
	}

	items, err := r.Ctx.Inst().Query.NearbyUsers(ctx, query.NearbyUsersOptions{
		Actor:         *actor,
		Lat:           lat,
		Lng:           lng,
		RadiusMeters:  radiusMeters(ctx.QueryValue("radiusKm").Float64()),
		InterestsOnly: ctx.QueryValue("interestsOnly").Bool(),
	})
	if err != nil {
		return errors.From(err)
	}

	result := make([]model.UserModel, len(items))
	for i, u := range items {
		result[i] = r.Ctx.Inst().Modelizer.User(u)
	}

	return ctx.JSON(rest.OK, result)
}

// radiusMeters converts the radiusKm query parameter, falling back to 5km
func radiusMeters(km float64, ok bool) float64 {
	if !ok || km <= 0 {
		km = 5
	}

	return km * 1000
}
