package instance

import (
	"github.com/meetmux/api/data/events"
	"github.com/meetmux/api/data/model"
	"github.com/meetmux/api/data/mutate"
	"github.com/meetmux/api/data/query"
	"github.com/meetmux/api/internal/svc/auth"
	"github.com/meetmux/api/internal/svc/livesessions"
	"github.com/meetmux/api/internal/svc/presences"
	"github.com/seventv/common/mongo"
	"github.com/seventv/common/redis"
)

type Instances struct {
	Mongo        mongo.Instance
	Redis        redis.Instance
	Auth         auth.Authorizer
	Prometheus   Prometheus
	Events       events.Instance
	Loaders      Loaders
	Presences    presences.Instance
	LiveSessions livesessions.Instance
	Modelizer    model.Modelizer

	Query  *query.Query
	Mutate *mutate.Mutate
}
