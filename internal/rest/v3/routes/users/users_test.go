package users

import (
	"testing"

	"github.com/meetmux/api/internal/rest/rest"
	"github.com/meetmux/api/internal/testutil"
	"github.com/valyala/fasthttp"
)

func TestNearbyRadius(t *testing.T) {
	t.Parallel()

	rctx := &fasthttp.RequestCtx{}
	ctx := &rest.Ctx{RequestCtx: rctx}

	rctx.Request.SetRequestURI("/v3/users/nearby?radiusKm=10")
	testutil.Assert(t, 10000.0, radiusMeters(ctx.QueryValue("radiusKm").Float64()), "kilometers converted to meters")

	rctx.Request.SetRequestURI("/v3/users/nearby")
	testutil.Assert(t, 5000.0, radiusMeters(ctx.QueryValue("radiusKm").Float64()), "default radius")

	rctx.Request.SetRequestURI("/v3/users/nearby?radiusKm=abc")
	testutil.Assert(t, 5000.0, radiusMeters(ctx.QueryValue("radiusKm").Float64()), "malformed radius treated as absent")

	rctx.Request.SetRequestURI("/v3/users/nearby?radiusKm=-2")
	testutil.Assert(t, 5000.0, radiusMeters(ctx.QueryValue("radiusKm").Float64()), "non-positive radius treated as absent")
}
