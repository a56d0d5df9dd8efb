package loaders

import (
	"context"
	"time"

	"github.com/meetmux/api/data/structures"
	"github.com/meetmux/api/internal/instance"
	"github.com/seventv/common/dataloader"
	"github.com/seventv/common/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func eventLoader(ctx context.Context, l *inst) instance.EventLoaderByID {
	return dataloader.New(dataloader.Config[primitive.ObjectID, structures.Event]{
		Wait: time.Millisecond * 25,
		Fetch: func(keys []primitive.ObjectID) ([]structures.Event, []error) {
			lCtx, cancel := context.WithTimeout(ctx, time.Second*10)
			defer cancel()

			models := make([]structures.Event, len(keys))
			errs := make([]error, len(keys))

			items, err := l.query.Events(lCtx, bson.M{
				"_id": bson.M{"$in": keys},
			}).Items()
			if err == nil {
				m := make(map[primitive.ObjectID]structures.Event)
				for _, e := range items {
					m[e.ID] = e
				}

				for i, v := range keys {
					if x, ok := m[v]; ok {
						models[i] = x
					} else {
						errs[i] = errors.ErrNoItems().SetDetail("No such event")
					}
				}
			} else {
				for i := range errs {
					errs[i] = err
				}
			}

			return models, errs
		},
	})
}
