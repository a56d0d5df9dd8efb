package model

import (
	"github.com/meetmux/api/data/structures"
)

type Modelizer interface {
	User(v structures.User) UserModel
	UserPartial(v structures.User) UserPartialModel
	Event(v structures.Event) EventModel
	Connection(v structures.Connection) ConnectionModel
	LiveSession(v structures.LiveSession) LiveSessionModel
}

type modelizer struct {
	websiteURL string
}

func NewInstance(opt ModelInstanceOptions) Modelizer {
	return &modelizer{
		websiteURL: opt.Website,
	}
}

type ModelInstanceOptions struct {
	Website string
}
