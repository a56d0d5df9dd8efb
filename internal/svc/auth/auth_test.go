package auth

import (
	"strings"
	"testing"

	"github.com/meetmux/api/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	a := New(AuthorizerOptions{
		JWTSecret: "not-a-real-secret",
		Domain:    "meetmux.app",
	})

	uid := primitive.NewObjectID()

	token, expiry, err := a.CreateAccessToken(uid, 1)
	testutil.IsNil(t, err, "token signed")
	testutil.Assert(t, false, expiry.IsZero(), "expiry set")

	claims := &JWTClaimUser{}
	_, err = a.VerifyJWT(strings.Split(token, "."), claims)
	testutil.IsNil(t, err, "token verifies")
	testutil.Assert(t, uid.Hex(), claims.UserID, "user id claim")
	testutil.Assert(t, 1.0, claims.TokenVersion, "token version claim")
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	t.Parallel()

	signer := New(AuthorizerOptions{JWTSecret: "secret-a"})
	verifier := New(AuthorizerOptions{JWTSecret: "secret-b"})

	token, _, err := signer.CreateAccessToken(primitive.NewObjectID(), 1)
	testutil.IsNil(t, err, "token signed")

	claims := &JWTClaimUser{}
	_, err = verifier.VerifyJWT(strings.Split(token, "."), claims)
	testutil.IsNotNil(t, err, "verification fails across secrets")
}
