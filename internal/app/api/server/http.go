package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fatflowers/coursehub/docs"
	"github.com/fatflowers/coursehub/internal/app/api/handlers"
	mw "github.com/fatflowers/coursehub/internal/app/api/middleware"
	"github.com/fatflowers/coursehub/internal/app/service/account"
	"github.com/fatflowers/coursehub/internal/app/service/course"
	nh "github.com/fatflowers/coursehub/internal/app/service/notification_handler"
	"github.com/fatflowers/coursehub/internal/app/service/statistics"
	subsvc "github.com/fatflowers/coursehub/internal/app/service/subscription"
	cfgpkg "github.com/fatflowers/coursehub/pkg/config"
	metrics "github.com/fatflowers/coursehub/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newEngine(cfg *cfgpkg.Config) *gin.Engine {
	if cfg.Env != cfgpkg.EnvDev {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	// request logger, access log and error rendering are attached per group in registerRoutes
	r.Use(mw.TraceMiddleware())
	return r
}

type routeParams struct {
	fx.In

	Engine       *gin.Engine
	Log          *zap.SugaredLogger
	Cfg          *cfgpkg.Config
	DB           *gorm.DB
	Accounts     *account.Service
	Courses      *course.Service
	Subscription *subsvc.Service
	Notification *nh.NotificationHandler
	Stats        *statistics.Service
}

func newPrometheus(lc fx.Lifecycle, log *zap.SugaredLogger, cfg *cfgpkg.Config) *metrics.Prometheus {
	p := metrics.NewPrometheus(metrics.NewPrometheusOptions{
		ListenAddress: cfg.MetricsAddr,
		ReqCntURLLabelMappingFn: func(c *gin.Context) string {
			if fp := c.FullPath(); fp != "" {
				return fp
			}
			return "unmatched"
		},
		Logger: log,
	})
	lc.Append(fx.Hook{OnStop: func(context.Context) error { return p.Close() }})
	return p
}

func registerRoutes(p routeParams, prom *metrics.Prometheus) error {
	r, log := p.Engine, p.Log
	prom.Use(r)

	sqlDB, err := p.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}

	// Public group: request logger + access log
	pub := r.Group("/")
	pub.Use(mw.RequestLoggerMiddleware(log), mw.AccessLogMiddleware(log))
	handlers.RegisterHealthRoutes(pub, sqlDB)
	// Swagger UI
	docs.SwaggerInfo.BasePath = "/"
	pub.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := r.Group("/api/v1")
	apiV1.Use(mw.RequestLoggerMiddleware(log), mw.AccessLogMiddleware(log), mw.ErrorHandler(log))
	authn := mw.Authenticate(p.Accounts)
	cookie := handlers.CookieOptions{Secure: p.Cfg.Auth.CookieSecure}

	limit := mw.NewRateLimiter(p.Cfg.Auth.RateLimit, p.Cfg.Auth.RateBurst).Middleware()

	handlers.RegisterUserRoutes(apiV1, authn, limit, p.Accounts, cookie)
	handlers.RegisterCourseRoutes(apiV1, authn, p.Courses)
	handlers.RegisterPaymentRoutes(apiV1, authn, p.Subscription, p.Notification)
	handlers.RegisterAdminRoutes(apiV1, authn, p.Stats, p.Accounts)
	return nil
}

func runServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, log *zap.SugaredLogger, cfg *cfgpkg.Config, r *gin.Engine) {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting HTTP server", "addr", addr)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Errorf("server error: %v", err)
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, 120*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

var Module = fx.Options(
	fx.Provide(newEngine, newPrometheus),
	fx.Invoke(registerRoutes),
	fx.Invoke(runServer),
)
