package events

import (
	"encoding/json"
	"time"

	"github.com/meetmux/api/data/mutate"
	"github.com/meetmux/api/data/structures"
	"github.com/meetmux/api/internal/global"
	"github.com/meetmux/api/internal/rest/rest"
	"github.com/meetmux/api/internal/rest/v3/middleware"
	"github.com/seventv/common/errors"
)

type createRoute struct {
	Ctx global.Context
}

func newCreate(gCtx global.Context) rest.Route {
	return &createRoute{gCtx}
}

func (r *createRoute) Config() rest.RouteConfig {
	return rest.RouteConfig{
		URI:      "",
		Method:   rest.POST,
		Children: []rest.Route{},
		Middleware: []rest.Middleware{
			middleware.Auth(r.Ctx),
		},
	}
}

type createEventBody struct {
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	ActivityType string               `json:"activityType"`
	Location     *structures.Location `json:"location"`
	StartsAt     time.Time            `json:"startsAt"`
	EndsAt       time.Time            `json:"endsAt"`
	Capacity     int32                `json:"capacity"`
	Visibility   string               `json:"visibility"`
}

func (r *createRoute) Handler(ctx *rest.Ctx) rest.APIError {
	actor, ok := ctx.GetActor()
	if !ok {
		return errors.ErrUnauthorized()
	}

	body := createEventBody{}
	if err := json.Unmarshal(ctx.Request.Body(), &body); err != nil {
		return errors.ErrInvalidRequest().SetDetail("Invalid Body: %s", err.Error())
	}

	event, err := r.Ctx.Inst().Mutate.CreateEvent(ctx, mutate.EventCreateOptions{
		Actor:        *actor,
		Name:         body.Name,
		Description:  body.Description,
		ActivityType: body.ActivityType,
		Location:     body.Location,
		StartsAt:     body.StartsAt,
		EndsAt:       body.EndsAt,
		Capacity:     body.Capacity,
		Visibility:   structures.EventVisibility(body.Visibility),
	})
	if err != nil {
		return errors.From(err)
	}

	return ctx.JSON(rest.Created, r.Ctx.Inst().Modelizer.Event(event))
}
