package events

import (
	"github.com/meetmux/api/data/model"
	"github.com/meetmux/api/data/query"
	"github.com/meetmux/api/data/structures"
	"github.com/meetmux/api/internal/global"
	"github.com/meetmux/api/internal/rest/rest"
	"github.com/meetmux/api/internal/rest/v3/middleware"
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
		URI:    "/events",
		Method: rest.GET,
		Children: []rest.Route{
			newCreate(r.Ctx),
			newMine(r.Ctx),
			newEvent(r.Ctx),
			newJoin(r.Ctx),
			newLeave(r.Ctx),
		},
		Middleware: []rest.Middleware{
			middleware.AuthOptional(r.Ctx),
		},
	}
}

// Event Discovery
// Lists public events filtered by activity, date bucket, time of day,
// creator scope and an optional geo window.
func (r *Route) Handler(ctx *rest.Ctx) rest.APIError {
	actor, _ := ctx.GetActor()

	opt := query.SearchEventsOptions{
		Actor:        actor,
		ActivityType: mustString(ctx.QueryValue("activityType")),
		DateBucket:   mustString(ctx.QueryValue("dateRange")),
		TimeBucket:   mustString(ctx.QueryValue("timeOfDay")),
		CreatorScope: mustString(ctx.QueryValue("createdBy")),
	}

	// the geo stage only engages when the full window parses
	lat, okLat := ctx.QueryValue("lat").Float64()
	lng, okLng := ctx.QueryValue("lng").Float64()
	radius, okRadius := ctx.QueryValue("radius").Float64()

	if okLat && okLng && okRadius && radius > 0 {
		opt.Center = &structures.Location{Lat: lat, Lng: lng}
		opt.RadiusMeters = radius
	}

	items, err := r.Ctx.Inst().Query.SearchEvents(ctx, opt)
	if err != nil {
		return errors.From(err)
	}

	r.Ctx.Inst().Prometheus.DiscoveryQueries().Inc()

	result := make([]model.EventModel, len(items))
	for i, e := range items {
		result[i] = r.Ctx.Inst().Modelizer.Event(e)
	}

	return ctx.JSON(rest.OK, result)
}

func mustString(p *rest.Param) string {
	s, _ := p.String()
	return s
}
