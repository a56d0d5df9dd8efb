package model

import (
	"testing"
	"time"

	"github.com/meetmux/api/data/structures"
	"github.com/meetmux/api/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var inst = NewInstance(ModelInstanceOptions{Website: "https://meetmux.app"})

func TestUserModelHidesPrivateLocation(t *testing.T) {
	t.Parallel()

	u := structures.User{
		ID:                 primitive.NewObjectID(),
		Name:               "ayla",
		Location:           &structures.Location{Lat: 1, Lng: 2},
		LocationVisibility: structures.LocationVisibilityPrivate,
		Status:             structures.UserStatusOnline,
	}

	m := inst.User(u)
	testutil.Assert(t, true, m.Location == nil, "private location withheld")

	u.LocationVisibility = structures.LocationVisibilityEveryone
	m = inst.User(u)
	testutil.IsNotNil(t, m.Location, "public location present")
	testutil.Assert(t, 1.0, m.Location.Lat, "lat")
}

func TestUserPartial(t *testing.T) {
	t.Parallel()

	u := structures.User{
		ID:        primitive.NewObjectID(),
		Name:      "crono",
		AvatarURL: "https://cdn.meetmux.app/a.png",
		IsOnline:  true,
		Bio:       "should not survive the trim",
	}

	p := inst.UserPartial(u)
	testutil.Assert(t, u.ID, p.ID, "id")
	testutil.Assert(t, "crono", p.Name, "name")
	testutil.Assert(t, true, p.IsOnline, "online flag")
}

func TestEventModelCreator(t *testing.T) {
	t.Parallel()

	creator := structures.User{ID: primitive.NewObjectID(), Name: "marle"}
	ev := structures.Event{
		ID:           primitive.NewObjectID(),
		Name:         "Morning Run",
		ActivityType: "running",
		StartsAt:     time.Now(),
		EndsAt:       time.Now().Add(time.Hour),
		Visibility:   structures.EventVisibilityPublic,
		Capacity:     50,
		CreatedBy:    creator.ID,
		Creator:      &creator,
	}

	m := inst.Event(ev)
	testutil.IsNotNil(t, m.Creator, "creator summary")
	testutil.Assert(t, creator.ID, m.Creator.ID, "creator id")
	testutil.Assert(t, 0, len(m.Participants), "participants default to empty list")
}

func TestLiveSessionModel(t *testing.T) {
	t.Parallel()

	uid := primitive.NewObjectID()
	s := structures.LiveSession{
		SessionID: "room-1",
		Users:     []primitive.ObjectID{uid},
		IsActive:  true,
		LiveLocations: map[string]structures.LiveLocation{
			uid.Hex(): {UserID: uid, Lat: 3, Lng: 4, UpdatedAt: time.Now()},
		},
	}

	m := inst.LiveSession(s)
	testutil.Assert(t, "room-1", m.SessionID, "session id")
	testutil.Assert(t, 1, len(m.LiveLocations), "one slot")
	testutil.Assert(t, 4.0, m.LiveLocations[uid.Hex()].Lng, "slot lng")
}
