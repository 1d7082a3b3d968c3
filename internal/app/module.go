package app

import (
	"time"

	"github.com/fatflowers/coursehub/internal/app/api/server"
	"github.com/fatflowers/coursehub/internal/app/service/account"
	"github.com/fatflowers/coursehub/internal/app/service/course"
	notificationhandler "github.com/fatflowers/coursehub/internal/app/service/notification_handler"
	notificationlog "github.com/fatflowers/coursehub/internal/app/service/notification_log"
	"github.com/fatflowers/coursehub/internal/app/service/statistics"
	"github.com/fatflowers/coursehub/internal/app/service/subscription"
	"github.com/fatflowers/coursehub/internal/app/store"
	"github.com/fatflowers/coursehub/internal/platform/auth"
	"github.com/fatflowers/coursehub/internal/platform/cache"
	"github.com/fatflowers/coursehub/internal/platform/changefeed"
	"github.com/fatflowers/coursehub/internal/platform/db"
	"github.com/fatflowers/coursehub/internal/platform/razorpay"
	"github.com/fatflowers/coursehub/pkg/config"
	"github.com/fatflowers/coursehub/pkg/logger"

	"go.uber.org/fx"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

// Base is what every command needs: config, logging and a migrated database.
var Base = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
)

// Module is the full API server.
var Module = fx.Options(
	Base,
	store.Module,
	cache.Module,
	changefeed.Module,
	auth.Module,
	razorpay.Module,
	notificationlog.Module,
	account.Module,
	course.Module,
	subscription.Module,
	notificationhandler.Module,
	statistics.Module,
	statistics.SchedulerModule,
	server.Module,
)

// SnapshotModule provides what appending a statistics snapshot needs.
var SnapshotModule = fx.Options(
	Base,
	store.Module,
	statistics.ServiceModule,
)
