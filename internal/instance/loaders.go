package instance

import (
	"github.com/meetmux/api/data/structures"
	"github.com/seventv/common/dataloader"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Loaders interface {
	UserByID() UserLoaderByID
	EventByID() EventLoaderByID
}

type (
	UserLoaderByID  = *dataloader.DataLoader[primitive.ObjectID, structures.User]
	EventLoaderByID = *dataloader.DataLoader[primitive.ObjectID, structures.Event]
)
