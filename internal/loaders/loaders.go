package loaders

import (
	"context"

	"github.com/meetmux/api/data/query"
	"github.com/meetmux/api/internal/instance"
)

type Instance = instance.Loaders

type inst struct {
	userByID  instance.UserLoaderByID
	eventByID instance.EventLoaderByID

	query *query.Query
}

func New(ctx context.Context, quer *query.Query) Instance {
	l := inst{
		query: quer,
	}

	l.userByID = userLoader(ctx, &l)
	l.eventByID = eventLoader(ctx, &l)

	return &l
}

func (l *inst) UserByID() instance.UserLoaderByID {
	return l.userByID
}

func (l *inst) EventByID() instance.EventLoaderByID {
	return l.eventByID
}
