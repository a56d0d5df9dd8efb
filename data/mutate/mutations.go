package mutate

import (
	"github.com/seventv/common/mongo"
	"github.com/seventv/common/redis"
)

type Mutate struct {
	mongo mongo.Instance
	redis redis.Instance
}

func New(opt InstanceOptions) *Mutate {
	return &Mutate{
		mongo: opt.Mongo,
		redis: opt.Redis,
	}
}

type InstanceOptions struct {
	Mongo mongo.Instance
	Redis redis.Instance
}
