package main

import (
	"context"
	"fmt"

	"github.com/fatflowers/coursehub/internal/app"
	"github.com/fatflowers/coursehub/internal/app/service/statistics"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, the change feed and the snapshot scheduler",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := fx.New(app.Module)
			startCtx, cancel := context.WithTimeout(cmd.Context(), app.DefaultStartTimeout)
			defer cancel()
			if err := a.Start(startCtx); err != nil {
				return fmt.Errorf("start app: %w", err)
			}

			// Block until signal
			sig := <-a.Wait()

			stopCtx, cancel2 := context.WithTimeout(context.Background(), app.DefaultStopTimeout)
			defer cancel2()
			if err := a.Stop(stopCtx); err != nil {
				return fmt.Errorf("stop app: %w", err)
			}
			if sig.ExitCode != 0 {
				return fmt.Errorf("app exited with code %d", sig.ExitCode)
			}
			return nil
		},
	}
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Auto-migrate the database schema and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOnce(cmd.Context(), app.Base)
		},
	}
}

func newSnapshotCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Append one statistics snapshot now and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOnce(cmd.Context(), app.SnapshotModule,
				fx.Invoke(func(lc fx.Lifecycle, svc *statistics.Service, log *zap.SugaredLogger) {
					lc.Append(fx.Hook{OnStart: func(ctx context.Context) error {
						snap, err := svc.Snapshot(ctx)
						if err != nil {
							return err
						}
						log.Infow("snapshot appended", "id", snap.ID, "users", snap.Users, "subscription", snap.Subscription, "views", snap.Views)
						return nil
					}})
				}))
		},
	}
}

// runOnce starts an fx app, which runs its work in start hooks, then stops it.
func runOnce(ctx context.Context, opts ...fx.Option) error {
	if ctx == nil {
		ctx = context.Background()
	}
	a := fx.New(append(opts, fx.NopLogger)...)
	startCtx, cancel := context.WithTimeout(ctx, app.DefaultStartTimeout)
	defer cancel()
	if err := a.Start(startCtx); err != nil {
		return err
	}
	stopCtx, cancel2 := context.WithTimeout(context.Background(), app.DefaultStopTimeout)
	defer cancel2()
	return a.Stop(stopCtx)
}
