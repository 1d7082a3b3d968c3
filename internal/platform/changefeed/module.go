package changefeed

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewBus picks the Redis bus when a client is configured, otherwise events
// stay in-process.
func NewBus(client *redis.Client, log *zap.SugaredLogger) Bus {
	if client == nil {
		log.Infow("change feed running in-process")
		return NewLocalBus(log)
	}
	return NewRedisBus(client, log)
}

func register(lc fx.Lifecycle, db *gorm.DB, bus Bus, log *zap.SugaredLogger) error {
	if err := RegisterCallbacks(db, bus, log); err != nil {
		return err
	}
	lc.Append(fx.Hook{OnStart: bus.Start, OnStop: bus.Stop})
	return nil
}

var Module = fx.Options(
	fx.Provide(NewBus),
	fx.Invoke(register),
)
