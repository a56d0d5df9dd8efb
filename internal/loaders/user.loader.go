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

func userLoader(ctx context.Context, l *inst) instance.UserLoaderByID {
	return dataloader.New(dataloader.Config[primitive.ObjectID, structures.User]{
		Wait: time.Millisecond * 25,
		Fetch: func(keys []primitive.ObjectID) ([]structures.User, []error) {
			lCtx, cancel := context.WithTimeout(ctx, time.Second*10)
			defer cancel()

			models := make([]structures.User, len(keys))
			errs := make([]error, len(keys))

			users, err := l.query.Users(lCtx, bson.M{
				"_id": bson.M{"$in": keys},
			}).Items()
			if err == nil {
				m := make(map[primitive.ObjectID]structures.User)
				for _, u := range users {
					m[u.ID] = u
				}

				for i, v := range keys {
					if x, ok := m[v]; ok {
						models[i] = x
					} else {
						errs[i] = errors.ErrUnknownUser()
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
