package structures

import (
	"testing"

	"github.com/meetmux/api/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGeoPoint(t *testing.T) {
	p := NewGeoPoint(37.7749, -122.4194)

	testutil.Assert(t, "Point", p.Type, "geojson type")
	testutil.Assert(t, 37.7749, p.Lat(), "latitude")
	testutil.Assert(t, -122.4194, p.Lng(), "longitude")
	testutil.Assert(t, -122.4194, p.Coordinates[0], "lng stored first")
}

func TestConnectionOtherParty(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	c := Connection{Requester: a, Receiver: b}

	testutil.Assert(t, b, c.OtherParty(a), "peer of requester")
	testutil.Assert(t, a, c.OtherParty(b), "peer of receiver")
}

func TestConnectionStatusTerminal(t *testing.T) {
	testutil.Assert(t, false, ConnectionStatusPending.Terminal(), "pending")
	testutil.Assert(t, true, ConnectionStatusAccepted.Terminal(), "accepted")
	testutil.Assert(t, true, ConnectionStatusRejected.Terminal(), "rejected")
}

func TestEventCapacity(t *testing.T) {
	ev := Event{
		Capacity:     2,
		Participants: []primitive.ObjectID{primitive.NewObjectID()},
	}

	testutil.Assert(t, false, ev.IsFull(), "one seat left")

	ev.Participants = append(ev.Participants, primitive.NewObjectID())
	testutil.Assert(t, true, ev.IsFull(), "at capacity")

	testutil.Assert(t, true, ev.IsParticipant(ev.Participants[0]), "member")
	testutil.Assert(t, false, ev.IsParticipant(primitive.NewObjectID()), "stranger")
}

func TestUserStatusValid(t *testing.T) {
	testutil.Assert(t, true, UserStatusBusy.Valid(), "busy")
	testutil.Assert(t, false, UserStatus("invisible").Valid(), "unknown status")
}
