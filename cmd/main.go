package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/bugsnag/panicwrap"
	"github.com/meetmux/api/data/events"
	"github.com/meetmux/api/data/model"
	"github.com/meetmux/api/data/mutate"
	"github.com/meetmux/api/data/query"
	"github.com/meetmux/api/internal/configure"
	"github.com/meetmux/api/internal/gateway"
	"github.com/meetmux/api/internal/global"
	"github.com/meetmux/api/internal/health"
	"github.com/meetmux/api/internal/loaders"
	"github.com/meetmux/api/internal/monitoring"
	"github.com/meetmux/api/internal/pprof"
	"github.com/meetmux/api/internal/rest"
	"github.com/meetmux/api/internal/svc/auth"
	"github.com/meetmux/api/internal/svc/livesessions"
	"github.com/meetmux/api/internal/svc/presences"
	"github.com/meetmux/api/internal/svc/prometheus"
	"github.com/seventv/common/mongo"
	"github.com/seventv/common/redis"
	"go.uber.org/zap"
)

var (
	Version = "development"
	Unix    = ""
	Time    = "unknown"
	User    = "unknown"
)

func init() {
	debug.SetGCPercent(2000)
	if i, err := strconv.Atoi(Unix); err == nil {
		Time = time.Unix(int64(i), 0).Format(time.RFC3339)
	}
}

func main() {
	config := configure.New()

	exitStatus, err := panicwrap.BasicWrap(func(s string) {
		zap.S().Errorw("panic detected",
			"panic", s,
		)
	})
	if err != nil {
		zap.S().Errorw("failed to setup panic handler",
			"error", err,
		)
		os.Exit(2)
	}

	if exitStatus >= 0 {
		os.Exit(exitStatus)
	}

	if !config.NoHeader {
		zap.S().Info("MeetMux API")
		zap.S().Infof("Version: %s", Version)
		zap.S().Infof("build.Time: %s", Time)
		zap.S().Infof("build.User: %s", User)
	}

	zap.S().Debugf("MaxProcs: %d", runtime.GOMAXPROCS(0))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	gCtx, cancel := global.WithCancel(global.New(context.Background(), config))

	{
		ctx, cancel := context.WithTimeout(gCtx, time.Second*15)
		mongoInst, err := mongo.Setup(ctx, mongo.SetupOptions{
			URI:    config.Mongo.URI,
			DB:     config.Mongo.DB,
			Direct: config.Mongo.Direct,
		})
		cancel()
		if err != nil {
			zap.S().Fatalw("failed to connect to mongo",
				"error", err,
			)
		}

		ctx, cancel = context.WithTimeout(gCtx, time.Second*15)
		redisInst, err := redis.Setup(ctx, redis.SetupOptions{
			Username:   config.Redis.Username,
			Password:   config.Redis.Password,
			Database:   config.Redis.Database,
			Sentinel:   config.Redis.Sentinel,
			Addresses:  config.Redis.Addresses,
			MasterName: config.Redis.MasterName,
		})
		cancel()
		if err != nil {
			zap.S().Fatalw("failed to connect to redis",
				"error", err,
			)
		}

		gCtx.Inst().Mongo = mongoInst
		gCtx.Inst().Redis = redisInst

		gCtx.Inst().Prometheus = prometheus.New(prometheus.Options{
			Labels: config.Monitoring.Labels.ToPrometheus(),
		})

		gCtx.Inst().Auth = auth.New(auth.AuthorizerOptions{
			JWTSecret: config.Credentials.JWTSecret,
			Domain:    config.Http.Cookie.Domain,
			Secure:    config.Http.Cookie.Secure,
		})

		gCtx.Inst().Events = events.NewPublisher(gCtx, redisInst)
		gCtx.Inst().Query = query.New(mongoInst, redisInst)
		gCtx.Inst().Mutate = mutate.New(mutate.InstanceOptions{
			Mongo: mongoInst,
			Redis: redisInst,
		})
		gCtx.Inst().Loaders = loaders.New(gCtx, gCtx.Inst().Query)
		gCtx.Inst().Modelizer = model.NewInstance(model.ModelInstanceOptions{
			Website: config.WebsiteURL,
		})

		gCtx.Inst().Presences = presences.New(presences.Options{
			Mutate: gCtx.Inst().Mutate,
			Events: gCtx.Inst().Events,
		})
		gCtx.Inst().LiveSessions = livesessions.New(livesessions.Options{
			Mutate: gCtx.Inst().Mutate,
			Query:  gCtx.Inst().Query,
			Events: gCtx.Inst().Events,
		})
	}

	wg := sync.WaitGroup{}

	if gCtx.Config().Health.Enabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-health.New(gCtx)
		}()
	}
	if gCtx.Config().Monitoring.Enabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-monitoring.New(gCtx)
		}()
	}
	if gCtx.Config().PProf.Enabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-pprof.New(gCtx)
		}()
	}

	done := make(chan struct{})
	go func() {
		<-sig
		cancel()
		go func() {
			select {
			case <-time.After(time.Minute):
			case <-sig:
			}
			zap.S().Fatal("force shutdown")
		}()

		zap.S().Info("shutting down")

		wg.Wait()

		close(done)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := rest.New(gCtx); err != nil {
			zap.S().Fatalw("rest failed",
				"error", err,
			)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := gateway.New(gCtx); err != nil {
			zap.S().Fatalw("gateway failed",
				"error", err,
			)
		}
	}()

	zap.S().Info("running")

	<-done

	zap.S().Info("shutdown")
	os.Exit(0)
}
