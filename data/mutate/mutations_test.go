package mutate

import (
	"testing"
	"time"

	"github.com/meetmux/api/data/structures"
	"github.com/meetmux/api/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestConnectionPairFilter(t *testing.T) {
	t.Parallel()

	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	or := connectionPairFilter(a, b)["$or"].(bson.A)

	testutil.Assert(t, 2, len(or), "both orientations matched")
	testutil.Assert(t, a, or[0].(bson.M)["requester"].(primitive.ObjectID), "forward requester")
	testutil.Assert(t, b, or[0].(bson.M)["receiver"].(primitive.ObjectID), "forward receiver")
	testutil.Assert(t, b, or[1].(bson.M)["requester"].(primitive.ObjectID), "reverse requester")
	testutil.Assert(t, a, or[1].(bson.M)["receiver"].(primitive.ObjectID), "reverse receiver")
}

// A repeat request while an edge exists must conflict instead of writing a
// second edge; only a rejected edge may be superseded.
func TestDuplicateConnectionGuard(t *testing.T) {
	t.Parallel()

	pending := structures.Connection{Status: structures.ConnectionStatusPending}
	accepted := structures.Connection{Status: structures.ConnectionStatusAccepted}
	rejected := structures.Connection{Status: structures.ConnectionStatusRejected}

	testutil.IsNotNil(t, duplicateConnectionError(pending), "pending pair conflicts")
	testutil.IsNotNil(t, duplicateConnectionError(accepted), "accepted pair conflicts")
	testutil.IsNil(t, duplicateConnectionError(rejected), "rejected edge may be superseded")
}

func TestJoinEventGuard(t *testing.T) {
	t.Parallel()

	eventID := primitive.NewObjectID()
	uid := primitive.NewObjectID()

	filter := joinEventFilter(eventID, uid)

	testutil.Assert(t, eventID, filter["_id"].(primitive.ObjectID), "event key")
	testutil.Assert(t, uid, filter["participants"].(bson.M)["$ne"].(primitive.ObjectID), "repeat join excluded")

	bound := filter["$expr"].(bson.M)["$lt"].(bson.A)
	testutil.Assert(t, "$participants", bound[0].(bson.M)["$size"].(string), "seat count is the participant set size")
	testutil.Assert(t, "$capacity", bound[1].(string), "capacity is the upper bound")

	update := joinEventUpdate(uid, time.Now())
	testutil.Assert(t, uid, update["$addToSet"].(bson.M)["participants"].(primitive.ObjectID), "set semantics on join")
}

func TestLiveLocationSlotIsKeyedByUser(t *testing.T) {
	t.Parallel()

	uid := primitive.NewObjectID()
	key := "live_locations." + uid.Hex()

	first := pushLiveLocationUpdate(structures.LiveLocation{UserID: uid, Lat: 1, Lng: 2, UpdatedAt: time.Now()})
	second := pushLiveLocationUpdate(structures.LiveLocation{UserID: uid, Lat: 3, Lng: 4, UpdatedAt: time.Now()})

	slot := first["$set"].(bson.M)[key].(structures.LiveLocation)
	testutil.Assert(t, 2.0, slot.Lng, "slot written under the user key")

	// a rapid second update replaces the same single key rather than appending
	slot = second["$set"].(bson.M)[key].(structures.LiveLocation)
	testutil.Assert(t, 4.0, slot.Lng, "repeat update targets the same slot")

	other := pushLiveLocationUpdate(structures.LiveLocation{UserID: primitive.NewObjectID(), Lat: 5, Lng: 6})
	_, ok := other["$set"].(bson.M)[key]
	testutil.Assert(t, false, ok, "another user's slot leaves this key alone")
}

func TestLiveLocationRequiresMembership(t *testing.T) {
	t.Parallel()

	uid := primitive.NewObjectID()
	filter := pushLiveLocationFilter("room-1", uid)

	testutil.Assert(t, "room-1", filter["session_id"].(string), "session key")
	testutil.Assert(t, true, filter["is_active"].(bool), "active sessions only")
	testutil.Assert(t, uid, filter["users"].(primitive.ObjectID), "participants only")
}
