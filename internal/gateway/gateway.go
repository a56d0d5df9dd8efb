package gateway

import (
	"fmt"
	"net"
	"time"

	"github.com/fasthttp/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/meetmux/api/internal/global"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// New starts the realtime gateway. Clients connect over websocket, identify
// themselves, and receive dispatches for the topics their session covers.
func New(gCtx global.Context) error {
	port := gCtx.Config().Http.Ports.Gateway
	if port == 0 {
		port = 3000
	}

	ltype := gCtx.Config().Http.Type
	if ltype == "" {
		ltype = "tcp"
	}

	listener, err := net.Listen(ltype, fmt.Sprintf("%s:%d", gCtx.Config().Http.Addr, port))
	if err != nil {
		return err
	}

	reg := newRegistry()

	// Fan incoming dispatches out to subscribed sessions
	newDigest(gCtx, reg)

	upgrader := websocket.FastHTTPUpgrader{
		CheckOrigin: func(_ *fasthttp.RequestCtx) bool {
			return true
		},
	}

	srv := &fasthttp.Server{
		Handler: func(ctx *fasthttp.RequestCtx) {
			ctx.Response.Header.Set("X-Node-Name", gCtx.Config().K8S.NodeName)
			ctx.Response.Header.Set("X-Pod-Name", gCtx.Config().K8S.PodName)

			err := upgrader.Upgrade(ctx, func(conn *websocket.Conn) {
				s := newSession(gCtx, conn, reg)

				gCtx.Inst().Prometheus.GatewaySessions().Inc()
				defer gCtx.Inst().Prometheus.GatewaySessions().Dec()

				s.run()
			})
			if err != nil {
				zap.S().Debugw("gateway, websocket upgrade failed",
					"error", err,
				)

				ctx.SetStatusCode(fasthttp.StatusBadRequest)
			}
		},
		ReadTimeout:     time.Second * 600,
		IdleTimeout:     time.Second * 10,
		CloseOnShutdown: true,
		LogAllErrors:    true,
	}

	go func() {
		<-gCtx.Done()
		_ = srv.Shutdown()
	}()

	return srv.Serve(listener)
}
