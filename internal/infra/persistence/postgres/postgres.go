package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"matchdeportivo/config"
	"matchdeportivo/internal/domain/lifecycle"
	"matchdeportivo/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary (and any configured replicas) through go-lib and ties
// the pool to the fx lifecycle: ping on start, pool wait sampling while
// running, close on stop.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes (join, leave, capacity) run inside txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	dbCfg := params.Config.Database
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			reporter := &poolWaitReporter{warnThreshold: dbCfg.PoolWaitWarnThreshold, prev: sqlDB.Stats()}
			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbCfg.PoolMonitorInterval, reporter)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration, reporter *poolWaitReporter) {
	if logger == nil || sqlDB == nil || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if level, attrs, ok := reporter.observe(sqlDB.Stats()); ok {
				logger.LogAttrs(ctx, level, "Postgres pool wait", attrs...)
			}
		}
	}
}

// poolWaitReporter turns successive pool stats into a log record whenever
// callers had to wait for a connection since the previous sample.
type poolWaitReporter struct {
	warnThreshold time.Duration
	prev          sql.DBStats
}

func (r *poolWaitReporter) observe(cur sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waits := cur.WaitCount - r.prev.WaitCount
	waited := cur.WaitDuration - r.prev.WaitDuration
	r.prev = cur

	if waits <= 0 {
		return 0, nil, false
	}

	level := slog.LevelDebug
	if waited >= r.warnThreshold {
		level = slog.LevelWarn
	}

	return level, []slog.Attr{
		slog.Int64("wait_count", waits),
		slog.Duration("wait_duration", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("max_open_conns", cur.MaxOpenConnections),
		slog.Int("open_conns", cur.OpenConnections),
		slog.Int("in_use_conns", cur.InUse),
		slog.Int("idle_conns", cur.Idle),
	}, true
}
