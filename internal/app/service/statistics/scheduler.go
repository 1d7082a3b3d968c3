package statistics

import (
	"context"
	"fmt"
	"time"

	"github.com/fatflowers/coursehub/pkg/config"
	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

const snapshotJobName = "stats-snapshot"

// Scheduler fires the monthly snapshot tick.
type Scheduler struct {
	scheduler gocron.Scheduler
	svc       *Service
	log       *zap.SugaredLogger
}

func NewScheduler(cfg *config.Config, svc *Service, log *zap.SugaredLogger) (*Scheduler, error) {
	loc := time.UTC
	if tz := cfg.Stats.Timezone; tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("stats.timezone: %w", err)
		}
		loc = l
	}
	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, err
	}
	m := &Scheduler{scheduler: s, svc: svc, log: log}

	_, err = s.NewJob(
		gocron.CronJob(cfg.Stats.SnapshotCron, true),
		gocron.NewTask(m.tick),
		gocron.WithName(snapshotJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, fmt.Errorf("register %s job (cron %q): %w", snapshotJobName, cfg.Stats.SnapshotCron, err)
	}
	return m, nil
}

func (m *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := m.svc.Tick(ctx); err != nil {
		m.log.Errorw("stats snapshot tick failed", "error", err)
	}
}

// NextRun reports when the snapshot job fires next.
func (m *Scheduler) NextRun() (time.Time, error) {
	for _, j := range m.scheduler.Jobs() {
		if j.Name() == snapshotJobName {
			return j.NextRun()
		}
	}
	return time.Time{}, fmt.Errorf("job %s not registered", snapshotJobName)
}

func (m *Scheduler) Start() {
	m.scheduler.Start()
	if next, err := m.NextRun(); err == nil {
		m.log.Infow("stats scheduler started", "next_run", next)
	}
}

func (m *Scheduler) Stop() error {
	return m.scheduler.Shutdown()
}
